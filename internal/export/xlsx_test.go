package export

import (
	"bytes"
	"testing"
	"time"

	"feona/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMonthXLSX(t *testing.T) {
	txs := []ledger.Transaction{
		{
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("1200"),
			Description: "salary",
		},
		{
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-42.50"),
			Description: "coffee",
			Repeat:      ledger.Repeat{Every: 1, Unit: ledger.RepeatMonth},
		},
	}

	b, err := MonthXLSX("2024-03", txs, decimal.RequireFromString("1157.50"))
	require.NoError(t, err)

	xlsx, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)

	defer xlsx.Close()

	assert.Equal(t, "2024-03", xlsx.GetSheetName(xlsx.GetActiveSheetIndex()))

	get := func(ref string) string {
		v, err := xlsx.GetCellValue("2024-03", ref)
		require.NoError(t, err)

		return v
	}

	assert.Equal(t, "Date", get("A1"))
	assert.Equal(t, "2024-03-01", get("A2"))
	assert.Equal(t, "salary", get("C2"))
	assert.Equal(t, "-42.5", get("B3"))
	assert.Equal(t, "1m", get("D3"))
	assert.Equal(t, "Sum", get("A4"))
	assert.Equal(t, "1157.5", get("B4"))
}
