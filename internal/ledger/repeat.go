package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// RepeatUnit is the calendar unit of a repeat tag.
type RepeatUnit byte

const (
	RepeatDay   RepeatUnit = 'd'
	RepeatWeek  RepeatUnit = 'w'
	RepeatMonth RepeatUnit = 'm'
	RepeatYear  RepeatUnit = 'y'
)

// Repeat is the recurrence tag carried on every transaction row. It is
// parsed and written back verbatim but never expanded into recurring
// entries. The zero value means "no repeat" and encodes as "none".
type Repeat struct {
	Every int
	Unit  RepeatUnit
}

// IsNone reports whether the tag is the "no repeat" value.
func (r Repeat) IsNone() bool {
	return r.Unit == 0
}

// String encodes the tag as stored on disk: "none", or a magnitude
// with a trailing unit character such as "3d" or "1m".
func (r Repeat) String() string {
	if r.IsNone() {
		return "none"
	}

	return fmt.Sprintf("%d%c", r.Every, r.Unit)
}

// ParseRepeat parses a repeat tag. Empty input and "none" mean no
// repeat, as does an unknown trailing unit character. A recognized
// unit with a malformed magnitude is an error.
func ParseRepeat(s string) (Repeat, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return Repeat{}, nil
	}

	unit := RepeatUnit(s[len(s)-1])
	switch unit {
	case RepeatDay, RepeatWeek, RepeatMonth, RepeatYear:
	default:
		// unknown tags degrade to "no repeat" rather than failing
		return Repeat{}, nil
	}

	every, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Repeat{}, fmt.Errorf("invalid repeat tag %q: %w", s, err)
	}

	return Repeat{Every: every, Unit: unit}, nil
}
