package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecordRoundTrip(t *testing.T) {
	txs := []Transaction{
		{Date: date(2024, 3, 5), Amount: decimal.RequireFromString("-42.50"), Description: "coffee"},
		{Date: date(2024, 3, 5), Amount: decimal.RequireFromString("1200"), Description: "salary"},
		{Date: date(2023, 12, 31), Amount: decimal.RequireFromString("-0.99"), Description: "app store", Repeat: Repeat{Every: 1, Unit: RepeatMonth}},
		{Date: date(2024, 1, 1), Amount: decimal.Zero, Description: ""},
	}

	for _, tx := range txs {
		got, err := parseRecord(tx.record())
		require.NoError(t, err)
		assert.True(t, got.Date.Equal(tx.Date))
		assert.True(t, got.Amount.Equal(tx.Amount))
		assert.Equal(t, tx.Description, got.Description)
		assert.Equal(t, tx.Repeat, got.Repeat)
	}
}

func TestParseRecordTrimsWhitespace(t *testing.T) {
	tx, err := parseRecord([]string{" 2024-03-05", " -42.50", " coffee ", " none "})
	require.NoError(t, err)

	assert.True(t, tx.Date.Equal(date(2024, 3, 5)))
	assert.Equal(t, "-42.5", tx.Amount.String())
	assert.Equal(t, "coffee", tx.Description)
	assert.True(t, tx.Repeat.IsNone())
}

func TestParseRecordFailures(t *testing.T) {
	cases := [][]string{
		{"2024-03-05", "-42.50", "coffee"},         // too few fields
		{"2024-3-5", "-42.50", "coffee", "none"},   // unpadded date
		{"not-a-date", "-42.50", "coffee", "none"}, // bad date
		{"2024-03-05", "lots", "coffee", "none"},   // bad amount
		{"2024-03-05", "-42.50", "coffee", "xd"},   // bad repeat magnitude
	}

	for _, fields := range cases {
		_, err := parseRecord(fields)
		assert.Error(t, err, "fields %v", fields)
	}
}

func TestParseRepeat(t *testing.T) {
	cases := []struct {
		in   string
		want Repeat
	}{
		{"", Repeat{}},
		{"none", Repeat{}},
		{"3d", Repeat{Every: 3, Unit: RepeatDay}},
		{"2w", Repeat{Every: 2, Unit: RepeatWeek}},
		{"1m", Repeat{Every: 1, Unit: RepeatMonth}},
		{"10y", Repeat{Every: 10, Unit: RepeatYear}},
		{"week?", Repeat{}}, // unknown unit degrades to none
	}

	for _, c := range cases {
		got, err := ParseRepeat(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	// a recognized unit with a malformed magnitude is an error:
	// "weekly" ends in the year unit 'y' but "weekl" is no number
	_, err := ParseRepeat("weekly")
	assert.Error(t, err)

	_, err = ParseRepeat("d")
	assert.Error(t, err)
}

func TestRepeatString(t *testing.T) {
	assert.Equal(t, "none", Repeat{}.String())
	assert.Equal(t, "3d", Repeat{Every: 3, Unit: RepeatDay}.String())
	assert.Equal(t, "1y", Repeat{Every: 1, Unit: RepeatYear}.String())
}

func TestTransactionIdentity(t *testing.T) {
	a := Transaction{Date: date(2024, 3, 5), Amount: decimal.RequireFromString("-1"), Description: "coffee"}
	b := Transaction{Date: date(2024, 3, 5), Amount: decimal.RequireFromString("-2"), Description: "coffee"}
	c := Transaction{Date: date(2024, 3, 6), Amount: decimal.RequireFromString("-1"), Description: "coffee"}

	assert.True(t, a.Equal(b), "identity ignores the amount")
	assert.False(t, a.Equal(c))
	assert.True(t, a.Before(c))
	assert.False(t, a.Before(b))
}

func TestDateOrToday(t *testing.T) {
	d, err := DateOrToday("")
	require.NoError(t, err)
	assert.True(t, d.Equal(Today()))

	d, err = DateOrToday("2024-03-05")
	require.NoError(t, err)
	assert.True(t, d.Equal(date(2024, 3, 5)))

	_, err = DateOrToday("05.03.2024")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.March}, m)
	assert.Equal(t, "2024-03", m.String())

	_, err = ParseMonth("march 2024")
	assert.Error(t, err)
}
