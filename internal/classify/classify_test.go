package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapereport/internal/tape"
)

func record(receiptType, opType, amount string) tape.Record {
	return tape.Record{
		Cashier:     "Ivanova",
		Date:        "01.10.2023",
		Time:        "10:15",
		Receipt:     "1",
		State:       "1",
		ReceiptType: receiptType,
		OpType:      opType,
		ItemCode:    "prod1",
		ItemName:    "Bread",
		Price:       "50,00",
		Quantity:    "2",
		Amount:      amount,
	}
}

func TestClassify_KindPriority(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		name        string
		receiptType string
		want        Kind
	}{
		{"return code", "1", KindReturn},
		{"deposit code", "4", KindDeposit},
		{"withdrawal code", "5", KindWithdrawal},
		{"anything else is a sale", "0", KindSale},
		{"empty receipt type is a sale", "", KindSale},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, keep := rules.Classify(record(tc.receiptType, "", "100,00"))
			require.True(t, keep)
			assert.Equal(t, tc.want, item.Kind)
		})
	}
}

func TestClassify_DropCodes(t *testing.T) {
	rules := DefaultRules()

	for _, code := range []string{"55", "56"} {
		_, keep := rules.Classify(record("0", code, "100,00"))
		assert.False(t, keep, "op type %s should drop the record", code)
	}

	// The drop list wins even over an explicit receipt-type code.
	_, keep := rules.Classify(record("1", "55", "100,00"))
	assert.False(t, keep)
}

func TestClassify_ReversalFlagIsIndependentOfKind(t *testing.T) {
	rules := DefaultRules()

	item, keep := rules.Classify(record("0", "12", "100,00"))
	require.True(t, keep)
	assert.Equal(t, KindSale, item.Kind)
	assert.True(t, item.Reversal)

	// A reversed return stays a return.
	item, keep = rules.Classify(record("1", "12", "100,00"))
	require.True(t, keep)
	assert.Equal(t, KindReturn, item.Kind)
	assert.True(t, item.Reversal)

	item, _ = rules.Classify(record("0", "", "100,00"))
	assert.False(t, item.Reversal)
}

func TestClassify_Fields(t *testing.T) {
	rules := DefaultRules()

	item, keep := rules.Classify(record("0", "", "100,00"))
	require.True(t, keep)
	assert.Equal(t, "prod1", item.ItemID)
	assert.Equal(t, "Bread", item.Name)
	assert.Equal(t, "2", item.Quantity.String())
	assert.Equal(t, "50", item.Price.String())
	assert.Equal(t, "100", item.Total.String())
	assert.False(t, item.AmountInvalid)
}

func TestClassify_InvalidAmountKeepsItemWithZeroTotal(t *testing.T) {
	rules := DefaultRules()

	item, keep := rules.Classify(record("0", "", "abc"))
	require.True(t, keep)
	assert.True(t, item.AmountInvalid)
	assert.True(t, item.Total.IsZero())
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100,00", "100"},
		{"1 234,56", "1234.56"},
		{"1 234,56", "1234.56"},
		{"-50,25", "-50.25"},
		{"0", "0"},
	}

	for _, tc := range cases {
		d, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, d.String(), "input %q", tc.in)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "12,34,56"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "input %q", in)
	}
}
