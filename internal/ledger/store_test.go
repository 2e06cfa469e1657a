package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoadMissingMonth(t *testing.T) {
	s := NewStore(t.TempDir())
	m := Month{Year: 2024, Month: time.March}

	txs, err := s.Load(m)
	require.NoError(t, err)
	assert.Empty(t, txs)

	sum, err := s.SumAmounts(m)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestSaveSortsByDateStable(t *testing.T) {
	s := NewStore(t.TempDir())
	m := Month{Year: 2024, Month: time.March}

	err := s.Save(m, []Transaction{
		{Date: date(2024, 3, 20), Amount: amt("-3"), Description: "third"},
		{Date: date(2024, 3, 5), Amount: amt("-1"), Description: "first"},
		{Date: date(2024, 3, 5), Amount: amt("-2"), Description: "second"},
	})
	require.NoError(t, err)

	txs, err := s.Load(m)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "first", txs[0].Description)
	assert.Equal(t, "second", txs[1].Description, "same-day entries keep their original order")
	assert.Equal(t, "third", txs[2].Description)
}

func TestAddCreatesMonthFile(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)

	tx := Transaction{Date: date(2024, 3, 5), Amount: amt("-42.50"), Description: "coffee"}
	require.NoError(t, s.Add(tx))

	_, err := os.Stat(filepath.Join(root, "2024", "03.csv"))
	require.NoError(t, err)

	months, err := s.ListMonths()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03"}, months)

	txs, err := s.Load(MonthOf(tx.Date))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(amt("-42.50")))
}

func TestRemoveAt(t *testing.T) {
	s := NewStore(t.TempDir())
	m := Month{Year: 2024, Month: time.March}

	require.NoError(t, s.Save(m, []Transaction{
		{Date: date(2024, 3, 1), Amount: amt("-1"), Description: "a"},
		{Date: date(2024, 3, 2), Amount: amt("-2"), Description: "b"},
		{Date: date(2024, 3, 3), Amount: amt("-3"), Description: "c"},
	}))

	require.NoError(t, s.RemoveAt(m, 1))

	txs, err := s.Load(m)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "a", txs[0].Description)
	assert.Equal(t, "c", txs[1].Description)

	err = s.RemoveAt(m, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = s.RemoveAt(m, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListMonths(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)

	// missing root is an empty catalog, not an error
	missing := NewStore(filepath.Join(root, "nope"))
	months, err := missing.ListMonths()
	require.NoError(t, err)
	assert.Empty(t, months)

	require.NoError(t, s.Add(Transaction{Date: date(2024, 3, 5), Amount: amt("-1")}))
	require.NoError(t, s.Add(Transaction{Date: date(2023, 11, 1), Amount: amt("-1")}))
	require.NoError(t, s.Add(Transaction{Date: date(2024, 1, 2), Amount: amt("-1")}))

	// stray files at the root level and directories inside a year must
	// not show up as months
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024", "backup"), 0o755))

	months, err = s.ListMonths()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-11", "2024-01", "2024-03"}, months)
}

func TestSumAmounts(t *testing.T) {
	s := NewStore(t.TempDir())
	m := Month{Year: 2024, Month: time.March}

	require.NoError(t, s.Save(m, []Transaction{
		{Date: date(2024, 3, 1), Amount: amt("-42.50")},
		{Date: date(2024, 3, 2), Amount: amt("1200")},
		{Date: date(2024, 3, 3), Amount: amt("-0.25")},
	}))

	sum, err := s.SumAmounts(m)
	require.NoError(t, err)
	assert.Equal(t, "1157.25", sum.StringFixed(2))
}

func TestLoadMalformedRow(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)
	m := Month{Year: 2024, Month: time.March}

	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "2024", "03.csv"),
		[]byte("2024-03-01,-1,ok,none\n2024-03-02,not-a-number,broken,none\n"),
		0o644,
	))

	_, err := s.Load(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
