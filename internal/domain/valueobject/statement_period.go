package valueobject

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// StatementPeriod is a calendar month for which a statement is produced.
type StatementPeriod struct {
	year  int
	month time.Month
}

func NewStatementPeriod(year int, month time.Month) (StatementPeriod, error) {
	if year < 1 || year > 9999 {
		return StatementPeriod{}, fmt.Errorf("invalid statement year %d", year)
	}
	if month < time.January || month > time.December {
		return StatementPeriod{}, fmt.Errorf("invalid month %d", month)
	}
	return StatementPeriod{year: year, month: month}, nil
}

// ParseStatementPeriod parses a YYYYMM string such as "202306".
func ParseStatementPeriod(s string) (StatementPeriod, error) {
	if len(s) != 6 {
		return StatementPeriod{}, fmt.Errorf("invalid period %q: want YYYYMM", s)
	}
	t, err := time.Parse("200601", s)
	if err != nil {
		return StatementPeriod{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return NewStatementPeriod(t.Year(), t.Month())
}

func StatementPeriodOf(d civil.Date) StatementPeriod {
	return StatementPeriod{year: d.Year, month: d.Month}
}

func (p StatementPeriod) Year() int         { return p.year }
func (p StatementPeriod) Month() time.Month { return p.month }
func (p StatementPeriod) IsZero() bool      { return p.year == 0 }

func (p StatementPeriod) String() string {
	return fmt.Sprintf("%04d%02d", p.year, p.month)
}

func (p StatementPeriod) StartDate() civil.Date {
	return civil.Date{Year: p.year, Month: p.month, Day: 1}
}

// EndDate is the last calendar day of the month.
func (p StatementPeriod) EndDate() civil.Date {
	return p.Next().StartDate().AddDays(-1)
}

func (p StatementPeriod) Days() int {
	return p.EndDate().DaysSince(p.StartDate()) + 1
}

func (p StatementPeriod) Contains(d civil.Date) bool {
	return d.Year == p.year && d.Month == p.month
}

func (p StatementPeriod) Next() StatementPeriod {
	if p.month == time.December {
		return StatementPeriod{year: p.year + 1, month: time.January}
	}
	return StatementPeriod{year: p.year, month: p.month + 1}
}

func (p StatementPeriod) Previous() StatementPeriod {
	if p.month == time.January {
		return StatementPeriod{year: p.year - 1, month: time.December}
	}
	return StatementPeriod{year: p.year, month: p.month - 1}
}
