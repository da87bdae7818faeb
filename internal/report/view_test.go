package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapereport/internal/classify"
	"tapereport/internal/tape"
)

func TestView(t *testing.T) {
	rules := classify.DefaultRules()
	rep := testBuilder().Build([]tape.Record{
		sale("Petrov", "05.11.2023", "1", "prod1", "75,00"),
		sale("Ivanova", "01.10.2023", "2", "prod2", "100,00"),
		row("Ivanova", "01.10.2023", "3", "0", "0", "", "prod3", "40,00"), // cancelled
		row("Ivanova", "01.10.2023", "4", "1", "4", "", "", "500,00"),     // deposit
	})

	view := rep.View(rules)

	assert.Equal(t, rep.LoadID, view.LoadID)
	assert.Equal(t, rep.GeneratedAt, view.GeneratedAt)

	require.Len(t, view.Months, 2)
	assert.Equal(t, "2023-10", view.Months[0].Key)
	assert.Equal(t, "2023-11", view.Months[1].Key)

	october := view.Months[0]
	require.Len(t, october.Cashiers, 1)
	assert.Equal(t, "Ivanova", october.Cashiers[0].Name)
	assert.Equal(t, "100", october.Totals.Sales.String())
	assert.Equal(t, "40", october.Totals.Cancelled.String())

	day := october.Cashiers[0].Days[0]
	assert.Equal(t, "2023-10-01", day.Date)
	assert.Equal(t, "500", day.Deposits.String())
	require.Len(t, day.Receipts, 3)

	// Per-receipt totals are attached for drill-down rendering.
	assert.Equal(t, "100", day.Receipts[0].Totals.Sales.String())
	assert.Equal(t, "40", day.Receipts[1].Totals.Cancelled.String())
}

func TestView_MarshalsToJSON(t *testing.T) {
	rules := classify.DefaultRules()
	rep := testBuilder().Build([]tape.Record{
		sale("Ivanova", "01.10.2023", "1", "prod1", "100,00"),
	})

	data, err := json.Marshal(rep.View(rules))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "months")
	assert.Contains(t, decoded, "totals")
	assert.Contains(t, decoded, "load_id")
}
