package classify

import (
	"github.com/shopspring/decimal"

	"tapereport/internal/logger"
	"tapereport/internal/tape"
)

// Kind is the operation kind of a single tape line.
type Kind string

const (
	KindSale       Kind = "sale"
	KindReturn     Kind = "return"
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// LineItem is one classified tape line, ready for aggregation.
type LineItem struct {
	ItemID   string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
	Kind     Kind            `json:"kind"`

	// Reversal marks a storno line. Independent of Kind: a reversed sale is
	// still a sale, counted in the parallel storno bucket as well.
	Reversal bool `json:"reversal,omitempty"`

	// AmountInvalid marks a line whose amount field did not parse. The line
	// stays in the report with a zero total so drill-down remains complete,
	// and the consumer is expected to surface it as a data-quality warning.
	AmountInvalid bool `json:"amount_invalid,omitempty"`
}

// Classify decides the operation kind and reversal flag for one raw record,
// and whether the record belongs in the report at all. The second return
// value is false for records on the drop list; those leave no trace
// downstream.
//
// Kind priority is fixed: drop list first, then return, deposit, withdrawal
// by receipt-type code, and everything else is a sale.
func (r Rules) Classify(rec tape.Record) (LineItem, bool) {
	if r.dropped(rec.OpType) {
		return LineItem{}, false
	}

	var kind Kind
	switch rec.ReceiptType {
	case r.ReturnCode:
		kind = KindReturn
	case r.DepositCode:
		kind = KindDeposit
	case r.WithdrawalCode:
		kind = KindWithdrawal
	default:
		kind = KindSale
	}

	item := LineItem{
		ItemID:   rec.ItemCode,
		Name:     rec.ItemName,
		Kind:     kind,
		Reversal: rec.OpType == r.ReversalCode,
	}

	item.Quantity, _ = parseOptional(rec.Quantity)
	item.Price, _ = parseOptional(rec.Price)

	total, err := ParseAmount(rec.Amount)
	if err != nil {
		lg := logger.WithComponent("classifier")
		lg.Warn().
			Err(err).
			Str("receipt", rec.Receipt).
			Str("item", rec.ItemCode).
			Str("amount", rec.Amount).
			Msg("Invalid line amount, keeping item with zero total")
		item.AmountInvalid = true
		total = decimal.Zero
	}
	item.Total = total

	return item, true
}

// parseOptional parses a numeric field that may legitimately be empty on
// service lines (deposits, withdrawals).
func parseOptional(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
