package ledger

import (
	"fmt"
	"time"
)

// monthLabelFormat is the catalog label for one month: "YYYY-MM".
// Lexicographic order of labels is also chronological order.
const monthLabelFormat = "2006-01"

// Month identifies one backing file: a (year, month) pair.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month key a date belongs to.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a catalog label such as "2024-03".
func ParseMonth(label string) (Month, error) {
	t, err := time.Parse(monthLabelFormat, label)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, want format \"YYYY-MM\": %w", label, err)
	}

	return MonthOf(t), nil
}

// String returns the catalog label for the month.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
