package tape

// Record is one raw line of a register tape export, before classification.
// All fields carry the source text untouched; parsing and validation happen
// in the classifier.
type Record struct {
	Cashier     string // cashier identifier
	Date        string // transaction date, DD.MM.YYYY or DD.MM.YY
	Time        string // transaction time
	Receipt     string // receipt number, unique only within a cashier-day
	State       string // receipt validity state; "1" means valid
	ReceiptType string // receipt-type code: "1" return, "4" deposit, "5" withdrawal
	OpType      string // transaction-type code; carries reversal and void markers
	ItemCode    string
	ItemName    string
	Price       string // unit price, comma decimal separator
	Quantity    string
	Amount      string // line amount, comma decimal, may contain grouping spaces
}

// Columns maps Record fields to header names in the export file. Register
// software localizes its headers, so the mapping is explicit rather than
// positional.
type Columns struct {
	Cashier     string
	Date        string
	Time        string
	Receipt     string
	State       string
	ReceiptType string
	OpType      string
	ItemCode    string
	ItemName    string
	Price       string
	Quantity    string
	Amount      string
}

// DefaultColumns returns the header names used by the standard register
// export.
func DefaultColumns() Columns {
	return Columns{
		Cashier:     "cashier",
		Date:        "date",
		Time:        "time",
		Receipt:     "receipt",
		State:       "state",
		ReceiptType: "receipt_type",
		OpType:      "op_type",
		ItemCode:    "item_code",
		ItemName:    "item_name",
		Price:       "price",
		Quantity:    "qty",
		Amount:      "amount",
	}
}

// required returns the columns without which a row cannot be placed in the
// report at all.
func (c Columns) required() map[string]string {
	return map[string]string{
		"cashier": c.Cashier,
		"date":    c.Date,
		"receipt": c.Receipt,
		"amount":  c.Amount,
	}
}
