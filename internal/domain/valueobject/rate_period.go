package valueobject

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RatePeriod is an inclusive run of days over which one annual rate applies.
type RatePeriod struct {
	from        civil.Date
	to          civil.Date
	ratePercent decimal.Decimal
	ruleID      string
}

// NewRatePeriod creates a validated RatePeriod. It enforces from <= to and a non-negative rate.
func NewRatePeriod(from, to civil.Date, ratePercent decimal.Decimal, ruleID string) (RatePeriod, error) {
	if to.Before(from) {
		return RatePeriod{}, fmt.Errorf("rate period end %s is before start %s", to, from)
	}
	if ratePercent.IsNegative() {
		return RatePeriod{}, fmt.Errorf("rate must not be negative")
	}
	return RatePeriod{from: from, to: to, ratePercent: ratePercent, ruleID: ruleID}, nil
}

func (p RatePeriod) From() civil.Date             { return p.from }
func (p RatePeriod) To() civil.Date               { return p.to }
func (p RatePeriod) RatePercent() decimal.Decimal { return p.ratePercent }
func (p RatePeriod) RuleID() string               { return p.ruleID }

// AnnualRate returns the rate as a fraction (e.g. 2.20% -> 0.022).
func (p RatePeriod) AnnualRate() decimal.Decimal {
	return p.ratePercent.Div(hundred)
}

// Days returns the number of days in the period, both ends included.
func (p RatePeriod) Days() int {
	return p.to.DaysSince(p.from) + 1
}
