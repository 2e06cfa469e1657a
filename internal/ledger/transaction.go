// Package ledger implements the storage layer for feona: dated
// transactions kept in one flat CSV file per month, under a
// caller-supplied storage root.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateFormat is the standard representation of a date in this
// application: "YYYY-MM-DD" with zero-padded month and day.
const DateFormat = "2006-01-02"

// recordFields is the number of CSV fields in one transaction row:
// date, amount, description, repeat.
const recordFields = 4

// Transaction is one dated ledger entry. Two transactions are
// considered the same entry when their date and description match;
// ordering between transactions is by date only.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Repeat      Repeat
}

// NewTransaction returns an empty transaction dated today.
func NewTransaction() Transaction {
	return Transaction{
		Date:   Today(),
		Amount: decimal.Zero,
	}
}

// Equal reports whether tx and other identify the same entry, which
// only considers the date and description.
func (tx Transaction) Equal(other Transaction) bool {
	return tx.Date.Equal(other.Date) && tx.Description == other.Description
}

// Before reports whether tx sorts ahead of other. Ties on equal dates
// are left to the caller's stable sort, so the original file order is
// preserved.
func (tx Transaction) Before(other Transaction) bool {
	return tx.Date.Before(other.Date)
}

// String renders the transaction the way the list command prints it.
func (tx Transaction) String() string {
	return fmt.Sprintf("%s\t%7s\t%s", tx.Date.Format(DateFormat), tx.Amount.StringFixed(2), tx.Description)
}

// record returns the CSV fields for one transaction row.
func (tx Transaction) record() []string {
	return []string{
		tx.Date.Format(DateFormat),
		tx.Amount.String(),
		tx.Description,
		tx.Repeat.String(),
	}
}

// parseRecord builds a transaction from one CSV row. Fields are
// trimmed before parsing. A malformed date or amount is an error; the
// repeat field follows the rules of ParseRepeat.
func parseRecord(fields []string) (Transaction, error) {
	if len(fields) != recordFields {
		return Transaction{}, fmt.Errorf("expected %d fields, got %d", recordFields, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return Transaction{}, err
	}

	amount, err := decimal.NewFromString(fields[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", fields[1], err)
	}

	repeat, err := ParseRepeat(fields[3])
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Date:        date,
		Amount:      amount,
		Description: fields[2],
		Repeat:      repeat,
	}, nil
}

// ParseDate parses a "YYYY-MM-DD" string into a day-granularity time
// value in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, err)
	}

	return t, nil
}

// DateOrToday parses s as a date, or returns today when s is empty.
func DateOrToday(s string) (time.Time, error) {
	if s == "" {
		return Today(), nil
	}

	return ParseDate(s)
}

// Today returns the current local date at day granularity, canonically
// represented at midnight UTC like every other date in the ledger.
func Today() time.Time {
	y, m, d := time.Now().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatAmount renders a decimal amount with two fraction digits and
// thousands separators, for display surfaces only - files always carry
// the plain decimal form.
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("%.2f", d.InexactFloat64())
}
