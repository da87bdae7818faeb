package report

import (
	"github.com/shopspring/decimal"

	"tapereport/internal/classify"
)

// Totals is the sales/storno/returns/cancelled breakdown at any level of the
// tree. Totals are not stored in the tree; they are recomputed on read by
// walking the receipts below a node, which makes the sum invariant
// (month = Σ cashiers = Σ days = Σ receipts) hold by construction.
type Totals struct {
	Sales     decimal.Decimal `json:"sales"`
	Storno    decimal.Decimal `json:"storno"`
	Returns   decimal.Decimal `json:"returns"`
	Cancelled decimal.Decimal `json:"cancelled"`
}

// ZeroTotals returns a Totals with every bucket at zero.
func ZeroTotals() Totals {
	return Totals{
		Sales:     decimal.Zero,
		Storno:    decimal.Zero,
		Returns:   decimal.Zero,
		Cancelled: decimal.Zero,
	}
}

// Add returns the element-wise sum of two Totals.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Sales:     t.Sales.Add(o.Sales),
		Storno:    t.Storno.Add(o.Storno),
		Returns:   t.Returns.Add(o.Returns),
		Cancelled: t.Cancelled.Add(o.Cancelled),
	}
}

// ItemTotals computes the breakdown of a line-item set, given the validity
// state of the owning receipt. For a non-valid receipt every item amount is
// attributed entirely to Cancelled and no further breakdown is computed.
// Storno is a parallel bucket, not an exclusive one: a reversed sale counts
// in both Sales and Storno.
func ItemTotals(items []classify.LineItem, state string, rules classify.Rules) Totals {
	totals := ZeroTotals()
	if !rules.IsValidState(state) {
		for _, item := range items {
			totals.Cancelled = totals.Cancelled.Add(item.Total)
		}
		return totals
	}

	for _, item := range items {
		if item.Reversal {
			totals.Storno = totals.Storno.Add(item.Total)
		}
		switch item.Kind {
		case classify.KindSale:
			totals.Sales = totals.Sales.Add(item.Total)
		case classify.KindReturn:
			totals.Returns = totals.Returns.Add(item.Total)
		}
	}

	return totals
}

// ReceiptTotals computes the breakdown of a receipt set. A non-valid receipt
// contributes its full declared amount (not the summed items) to Cancelled;
// its items remain visible for drill-down but are excluded from the
// breakdown.
func ReceiptTotals(receipts []*Receipt, rules classify.Rules) Totals {
	totals := ZeroTotals()
	for _, r := range receipts {
		if !rules.IsValidState(r.State) {
			totals.Cancelled = totals.Cancelled.Add(r.Amount)
			continue
		}
		totals = totals.Add(ItemTotals(r.Items, r.State, rules))
	}
	return totals
}

// Totals computes the day breakdown from its receipts.
func (d *Day) Totals(rules classify.Rules) Totals {
	return ReceiptTotals(d.Receipts, rules)
}

// Totals computes the cashier breakdown as the sum of its days.
func (c *Cashier) Totals(rules classify.Rules) Totals {
	totals := ZeroTotals()
	for _, d := range c.Days {
		totals = totals.Add(d.Totals(rules))
	}
	return totals
}

// Totals computes the month breakdown as the sum of its cashiers.
func (m *Month) Totals(rules classify.Rules) Totals {
	totals := ZeroTotals()
	for _, c := range m.Cashiers {
		totals = totals.Add(c.Totals(rules))
	}
	return totals
}

// Totals computes the whole-report breakdown as the sum of its months.
func (rep *Report) Totals(rules classify.Rules) Totals {
	totals := ZeroTotals()
	for _, m := range rep.Months {
		totals = totals.Add(m.Totals(rules))
	}
	return totals
}
