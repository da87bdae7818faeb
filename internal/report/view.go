package report

import (
	"time"

	"github.com/shopspring/decimal"

	"tapereport/internal/classify"
)

// View is the render-ready projection of a Report: sorted keys and the
// read-time totals attached at every level. This is what the rendering
// collaborator consumes; the raw tree stays the source of truth.
type View struct {
	LoadID      string      `json:"load_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Totals      Totals      `json:"totals"`
	Months      []MonthView `json:"months"`

	DroppedRows    int `json:"dropped_rows"`
	SkippedRows    int `json:"skipped_rows"`
	MalformedDates int `json:"malformed_dates"`
	InvalidAmounts int `json:"invalid_amounts"`
}

type MonthView struct {
	Key      string        `json:"key"`
	Totals   Totals        `json:"totals"`
	Cashiers []CashierView `json:"cashiers"`
}

type CashierView struct {
	Name   string    `json:"name"`
	Totals Totals    `json:"totals"`
	Days   []DayView `json:"days"`
}

type DayView struct {
	Date        string          `json:"date"`
	Totals      Totals          `json:"totals"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Receipts    []ReceiptView   `json:"receipts"`
}

type ReceiptView struct {
	ID     string              `json:"id"`
	Time   string              `json:"time"`
	Amount decimal.Decimal     `json:"amount"`
	Kind   classify.Kind       `json:"kind"`
	State  string              `json:"state"`
	Totals Totals              `json:"totals"`
	Items  []classify.LineItem `json:"items"`
}

// View projects the report for rendering, computing totals once per node.
func (rep *Report) View(rules classify.Rules) View {
	view := View{
		LoadID:         rep.LoadID,
		GeneratedAt:    rep.GeneratedAt,
		Totals:         rep.Totals(rules),
		DroppedRows:    rep.DroppedRows,
		SkippedRows:    rep.SkippedRows,
		MalformedDates: rep.MalformedDates,
		InvalidAmounts: rep.InvalidAmounts,
	}

	for _, monthKey := range rep.MonthKeys() {
		month := rep.Months[monthKey]
		mv := MonthView{Key: monthKey, Totals: month.Totals(rules)}

		for _, name := range month.CashierNames() {
			cashier := month.Cashiers[name]
			cv := CashierView{Name: name, Totals: cashier.Totals(rules)}

			for _, dayKey := range cashier.DayKeys() {
				day := cashier.Days[dayKey]
				dv := DayView{
					Date:        day.Date,
					Totals:      day.Totals(rules),
					Deposits:    day.Deposits,
					Withdrawals: day.Withdrawals,
				}

				for _, r := range day.Receipts {
					dv.Receipts = append(dv.Receipts, ReceiptView{
						ID:     r.ID,
						Time:   r.Time,
						Amount: r.Amount,
						Kind:   r.Kind,
						State:  r.State,
						Totals: ReceiptTotals([]*Receipt{r}, rules),
						Items:  r.Items,
					})
				}

				cv.Days = append(cv.Days, dv)
			}

			mv.Cashiers = append(mv.Cashiers, cv)
		}

		view.Months = append(view.Months, mv)
	}

	return view
}
