package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"tapereport/internal/classify"
	"tapereport/internal/logger"
	"tapereport/internal/tape"
)

// Report is the aggregated month → cashier → day → receipt → line-item tree
// built from one tape load. It is the only artifact the rendering layer
// reads; a re-load builds a fresh Report with a new LoadID and replaces the
// previous one wholesale.
type Report struct {
	LoadID      string            `json:"load_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Months      map[string]*Month `json:"months"`

	// Data-quality counters for the load.
	DroppedRows    int `json:"dropped_rows"`
	SkippedRows    int `json:"skipped_rows"`
	MalformedDates int `json:"malformed_dates"`
	InvalidAmounts int `json:"invalid_amounts"`
}

// Month groups cashiers for one YYYY-MM key.
type Month struct {
	Cashiers map[string]*Cashier `json:"cashiers"`
}

// Cashier groups days for one cashier within a month.
type Cashier struct {
	Days map[string]*Day `json:"days"`
}

// Day holds one cashier-day: its receipts in arrival order plus the deposit
// and withdrawal counters, which never enter the receipt-level breakdown.
type Day struct {
	Date        string          `json:"date"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Receipts    []*Receipt      `json:"receipts"`

	byID map[string]*Receipt
}

// Receipt merges every line sharing a receipt number within one cashier-day.
// The first line seen fixes the time, declared amount, kind and validity
// state; later lines only append items. A colliding line with a different
// kind is merged anyway and the first-seen kind stays authoritative.
type Receipt struct {
	ID     string              `json:"id"`
	Time   string              `json:"time"`
	Amount decimal.Decimal     `json:"amount"`
	Kind   classify.Kind       `json:"kind"`
	State  string              `json:"state"`
	Items  []classify.LineItem `json:"items"`
}

// Builder folds classified tape records into a Report.
type Builder struct {
	rules classify.Rules
	now   func() time.Time
	log   zerolog.Logger
}

// NewBuilder returns a Builder using the given classification rules.
func NewBuilder(rules classify.Rules) *Builder {
	return &Builder{
		rules: rules,
		now:   time.Now,
		log:   logger.WithComponent("aggregator"),
	}
}

// Build folds the record sequence, left to right, into a fresh Report.
// Every level of the tree is created through the same get-or-create step, so
// replaying the same records yields the same tree (under a new LoadID). An
// empty input yields an empty Report.
func (b *Builder) Build(records []tape.Record) *Report {
	rep := &Report{
		LoadID:      uuid.New().String(),
		GeneratedAt: b.now(),
		Months:      make(map[string]*Month),
	}

	for _, rec := range records {
		b.fold(rep, rec)
	}

	b.log.Info().
		Str("load_id", rep.LoadID).
		Int("records", len(records)).
		Int("months", len(rep.Months)).
		Int("dropped_rows", rep.DroppedRows).
		Int("skipped_rows", rep.SkippedRows).
		Int("malformed_dates", rep.MalformedDates).
		Int("invalid_amounts", rep.InvalidAmounts).
		Msg("Report built")

	return rep
}

func (b *Builder) fold(rep *Report, rec tape.Record) {
	// Rows without a cashier or date can never be bucketed; they leave no
	// trace, not even an empty bucket.
	if rec.Cashier == "" || rec.Date == "" {
		rep.SkippedRows++
		return
	}

	item, keep := b.rules.Classify(rec)
	if !keep {
		rep.DroppedRows++
		return
	}
	if item.AmountInvalid {
		rep.InvalidAmounts++
	}

	when, dayKey, ok := classify.ParseDate(rec.Date, b.now())
	if !ok {
		rep.MalformedDates++
		b.log.Warn().
			Str("date", rec.Date).
			Str("cashier", rec.Cashier).
			Str("receipt", rec.Receipt).
			Str("fallback_day", dayKey).
			Msg("Malformed transaction date, bucketing under current day")
	}

	day := rep.day(classify.MonthKey(when), rec.Cashier, dayKey)

	switch item.Kind {
	case classify.KindDeposit:
		day.Deposits = day.Deposits.Add(item.Total)
	case classify.KindWithdrawal:
		day.Withdrawals = day.Withdrawals.Add(item.Total)
	}

	day.upsertReceipt(rec, item)
}

// day walks month → cashier → day with get-or-create at each level.
func (rep *Report) day(monthKey, cashier, dayKey string) *Day {
	month, ok := rep.Months[monthKey]
	if !ok {
		month = &Month{Cashiers: make(map[string]*Cashier)}
		rep.Months[monthKey] = month
	}

	c, ok := month.Cashiers[cashier]
	if !ok {
		c = &Cashier{Days: make(map[string]*Day)}
		month.Cashiers[cashier] = c
	}

	d, ok := c.Days[dayKey]
	if !ok {
		d = &Day{
			Date:        dayKey,
			Deposits:    decimal.Zero,
			Withdrawals: decimal.Zero,
			byID:        make(map[string]*Receipt),
		}
		c.Days[dayKey] = d
	}

	return d
}

func (d *Day) upsertReceipt(rec tape.Record, item classify.LineItem) {
	if r, ok := d.byID[rec.Receipt]; ok {
		r.Items = append(r.Items, item)
		return
	}

	amount, err := classify.ParseAmount(rec.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	r := &Receipt{
		ID:     rec.Receipt,
		Time:   rec.Time,
		Amount: amount,
		Kind:   item.Kind,
		State:  rec.State,
		Items:  []classify.LineItem{item},
	}
	d.Receipts = append(d.Receipts, r)
	d.byID[rec.Receipt] = r
}

// MonthKeys returns the month keys in ascending order, for deterministic
// rendering.
func (rep *Report) MonthKeys() []string {
	keys := make([]string, 0, len(rep.Months))
	for k := range rep.Months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CashierNames returns the cashier names in ascending order.
func (m *Month) CashierNames() []string {
	names := make([]string, 0, len(m.Cashiers))
	for n := range m.Cashiers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DayKeys returns the day keys in ascending order.
func (c *Cashier) DayKeys() []string {
	keys := make([]string, 0, len(c.Days))
	for k := range c.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
