package valueobject

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the compact YYYYMMDD form used for input, ids and statements.
const DateLayout = "20060102"

// ParseDate parses a YYYYMMDD string into a calendar date.
func ParseDate(s string) (civil.Date, error) {
	if len(s) != len(DateLayout) {
		return civil.Date{}, fmt.Errorf("invalid date %q: want YYYYMMDD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return civil.DateOf(t), nil
}

// FormatDate renders d as YYYYMMDD.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// CompareDates returns -1, 0 or +1 as a is before, equal to or after b.
func CompareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
