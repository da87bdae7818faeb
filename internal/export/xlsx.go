package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tapereport/internal/logger"
	"tapereport/internal/report"
)

const sheetName = "Sales report"

// WriteXLSX writes the rendered report view to an XLSX workbook: one sheet,
// one row per month, cashier, day, receipt and line item, with the level in
// the first column and the totals breakdown alongside.
func WriteXLSX(view report.View, path string) error {
	const op = "WriteXLSX"
	log := logger.WithComponent("export")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("%s: failed to rename sheet: %w", op, err)
	}

	w := &sheetWriter{f: f}
	w.row("Level", "Period / Cashier", "Sales", "Storno", "Returns", "Cancelled", "Deposits", "Withdrawals")

	for _, month := range view.Months {
		w.totalsRow("month", month.Key, month.Totals)

		for _, cashier := range month.Cashiers {
			w.totalsRow("cashier", cashier.Name, cashier.Totals)

			for _, day := range cashier.Days {
				w.totalsRow("day", day.Date, day.Totals,
					day.Deposits.InexactFloat64(), day.Withdrawals.InexactFloat64())

				for _, receipt := range day.Receipts {
					label := fmt.Sprintf("%s  receipt %s (%s)", receipt.Time, receipt.ID, receipt.Kind)
					w.totalsRow("receipt", label, receipt.Totals)

					for _, item := range receipt.Items {
						w.row("item",
							fmt.Sprintf("%s x %s", item.Name, item.Quantity),
							item.Total.InexactFloat64())
					}
				}
			}
		}
	}

	if w.err != nil {
		return fmt.Errorf("%s: failed to fill sheet: %w", op, w.err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%s: failed to save %s: %w", op, path, err)
	}

	log.Info().
		Str("path", path).
		Int("rows", w.line).
		Str("load_id", view.LoadID).
		Msg("Report workbook written")

	return nil
}

// sheetWriter appends rows, remembering the first cell error.
type sheetWriter struct {
	f    *excelize.File
	line int
	err  error
}

func (w *sheetWriter) row(values ...interface{}) {
	w.line++
	for col, v := range values {
		if w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(col+1, w.line)
		if err != nil {
			w.err = err
			return
		}
		if err := w.f.SetCellValue(sheetName, cell, v); err != nil {
			w.err = err
			return
		}
	}
}

func (w *sheetWriter) totalsRow(level, label string, t report.Totals, extra ...float64) {
	values := []interface{}{
		level,
		label,
		t.Sales.InexactFloat64(),
		t.Storno.InexactFloat64(),
		t.Returns.InexactFloat64(),
		t.Cancelled.InexactFloat64(),
	}
	for _, v := range extra {
		values = append(values, v)
	}
	w.row(values...)
}
