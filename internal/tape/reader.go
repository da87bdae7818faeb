package tape

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"tapereport/internal/logger"
)

// ReadFile reads a tab-delimited register tape export from disk.
func ReadFile(path string, cols Columns) ([]Record, error) {
	const op = "ReadFile"

	file, err := os.Open(path)
	if err != nil {
		return nil, newTapeError(op, err, fmt.Sprintf("open %s", path))
	}
	defer file.Close()

	records, err := Read(file, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return records, nil
}

// Read reads a tab-delimited export with a single header row. Blank lines are
// skipped, values are trimmed, and short rows are padded with empty fields.
// The header must contain the cashier, date, receipt and amount columns;
// anything less is a contract violation and fails the whole load. Zero data
// rows is not an error and yields an empty slice.
func Read(r io.Reader, cols Columns) ([]Record, error) {
	const op = "Read"
	log := logger.WithComponent("tape-reader")

	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, newTapeError(op, ErrUnreadableInput, err.Error())
	}

	header, rows := splitHeader(rows)
	if header == nil {
		return nil, newTapeError(op, ErrEmptyInput, "")
	}

	index, err := indexColumns(header, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []Record
	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		records = append(records, recordFromRow(row, index))
	}

	log.Info().
		Int("total_rows", len(rows)).
		Int("records", len(records)).
		Msg("Tape export read")

	return records, nil
}

// splitHeader returns the first non-blank row as the header and the remainder
// as data rows.
func splitHeader(rows [][]string) ([]string, [][]string) {
	for i, row := range rows {
		if !isRowEmpty(row) {
			return row, rows[i+1:]
		}
	}
	return nil, nil
}

// columnIndex maps Record fields to header positions; -1 means the column is
// absent from this export.
type columnIndex struct {
	cashier, date, time, receipt int
	state, receiptType, opType   int
	itemCode, itemName, price    int
	quantity, amount             int
}

func indexColumns(header []string, cols Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	find := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		cashier:     find(cols.Cashier),
		date:        find(cols.Date),
		time:        find(cols.Time),
		receipt:     find(cols.Receipt),
		state:       find(cols.State),
		receiptType: find(cols.ReceiptType),
		opType:      find(cols.OpType),
		itemCode:    find(cols.ItemCode),
		itemName:    find(cols.ItemName),
		price:       find(cols.Price),
		quantity:    find(cols.Quantity),
		amount:      find(cols.Amount),
	}

	for field, name := range cols.required() {
		if find(name) < 0 {
			return idx, newTapeError("indexColumns", ErrMissingColumn,
				fmt.Sprintf("%s column %q", field, name))
		}
	}

	return idx, nil
}

func recordFromRow(row []string, idx columnIndex) Record {
	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return Record{
		Cashier:     get(idx.cashier),
		Date:        get(idx.date),
		Time:        get(idx.time),
		Receipt:     get(idx.receipt),
		State:       get(idx.state),
		ReceiptType: get(idx.receiptType),
		OpType:      get(idx.opType),
		ItemCode:    get(idx.itemCode),
		ItemName:    get(idx.itemName),
		Price:       get(idx.price),
		Quantity:    get(idx.quantity),
		Amount:      get(idx.amount),
	}
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
