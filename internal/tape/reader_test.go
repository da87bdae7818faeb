package tape

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "cashier\tdate\ttime\treceipt\tstate\treceipt_type\top_type\titem_code\titem_name\tprice\tqty\tamount"

func TestRead(t *testing.T) {
	input := sampleHeader + "\n" +
		"Ivanova\t01.10.2023\t10:15\t1\t1\t0\t\tprod1\tBread\t50,00\t2\t100,00\n" +
		"\n" + // blank lines are skipped
		"Ivanova\t01.10.2023\t10:15\t1\t1\t0\t\tprod2\tMilk\t50,00\t1\t50,00\n"

	records, err := Read(strings.NewReader(input), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ivanova", records[0].Cashier)
	assert.Equal(t, "01.10.2023", records[0].Date)
	assert.Equal(t, "10:15", records[0].Time)
	assert.Equal(t, "1", records[0].Receipt)
	assert.Equal(t, "1", records[0].State)
	assert.Equal(t, "0", records[0].ReceiptType)
	assert.Equal(t, "", records[0].OpType)
	assert.Equal(t, "prod1", records[0].ItemCode)
	assert.Equal(t, "Bread", records[0].ItemName)
	assert.Equal(t, "50,00", records[0].Price)
	assert.Equal(t, "2", records[0].Quantity)
	assert.Equal(t, "100,00", records[0].Amount)

	assert.Equal(t, "Milk", records[1].ItemName)
}

func TestRead_ShortRowsPaddedWithEmptyFields(t *testing.T) {
	input := sampleHeader + "\n" +
		"Ivanova\t01.10.2023\t10:15\t1\n"

	records, err := Read(strings.NewReader(input), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Ivanova", records[0].Cashier)
	assert.Equal(t, "1", records[0].Receipt)
	assert.Equal(t, "", records[0].Amount)
}

func TestRead_ReorderedColumns(t *testing.T) {
	input := "amount\tcashier\treceipt\tdate\n" +
		"100,00\tIvanova\t1\t01.10.2023\n"

	records, err := Read(strings.NewReader(input), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Ivanova", records[0].Cashier)
	assert.Equal(t, "100,00", records[0].Amount)
	assert.Equal(t, "", records[0].ItemName, "absent columns read as empty")
}

func TestRead_HeaderOnlyYieldsNoRecords(t *testing.T) {
	records, err := Read(strings.NewReader(sampleHeader+"\n"), DefaultColumns())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), DefaultColumns())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestRead_MissingRequiredColumn(t *testing.T) {
	// No cashier column.
	input := "date\treceipt\tamount\n01.10.2023\t1\t100,00\n"

	_, err := Read(strings.NewReader(input), DefaultColumns())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "cashier")
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tape.tsv")

	content := sampleHeader + "\nIvanova\t01.10.2023\t10:15\t1\t1\t0\t\tprod1\tBread\t50,00\t2\t100,00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, err := ReadFile(path, DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile("nonexistent.tsv", DefaultColumns())
	assert.Error(t, err)
}
