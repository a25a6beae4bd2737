package service

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
	"github.com/bibbank/gic-ledger/pkg/money"
)

// DaysInYear is the fixed day-count denominator (Actual/365).
const DaysInYear = 365

// ErrMissingBalance is returned when a day inside a rate period has no end-of-day balance.
var ErrMissingBalance = errors.New("missing end-of-day balance")

var daysInYear = decimal.NewFromInt(DaysInYear)

// AccrualEngine is a domain service computing simple daily interest from end-of-day
// balances and the interest rule timeline. It is stateless apart from the rounding mode.
type AccrualEngine struct {
	rounding money.RoundingMode
}

// NewAccrualEngine creates a new AccrualEngine.
func NewAccrualEngine(rounding money.RoundingMode) *AccrualEngine {
	return &AccrualEngine{rounding: rounding}
}

// RatePeriods partitions [start, end] into maximal runs of constant rate. Rule i applies from
// its effective date until the day before rule i+1 (the last rule runs through end). Days before
// the first rule carry no rate and are omitted. rules must be sorted by effective date.
func (e *AccrualEngine) RatePeriods(rules []model.InterestRule, start, end civil.Date) []valueobject.RatePeriod {
	if end.Before(start) {
		return nil
	}

	var periods []valueobject.RatePeriod
	for i, rule := range rules {
		from := rule.EffectiveDate()
		if from.After(end) {
			break
		}

		to := end
		if i+1 < len(rules) {
			if next := rules[i+1].EffectiveDate().AddDays(-1); next.Before(to) {
				to = next
			}
		}
		if to.Before(start) {
			continue
		}
		if from.Before(start) {
			from = start
		}

		period, err := valueobject.NewRatePeriod(from, to, rule.RatePercent(), rule.ID())
		if err != nil {
			continue
		}
		periods = append(periods, period)
	}
	return periods
}

// Accrue returns the interest earned over [start, end]: the sum over every day of
// eod[day] * rate/100, divided by DaysInYear once and rounded to cents once.
func (e *AccrualEngine) Accrue(eod map[civil.Date]decimal.Decimal, rules []model.InterestRule, start, end civil.Date) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range e.RatePeriods(rules, start, end) {
		rate := p.AnnualRate()
		for d := p.From(); !d.After(p.To()); d = d.AddDays(1) {
			balance, ok := eod[d]
			if !ok {
				return decimal.Zero, fmt.Errorf("%w for %s", ErrMissingBalance, valueobject.FormatDate(d))
			}
			sum = sum.Add(balance.Mul(rate))
		}
	}
	return e.rounding.Round(sum.Div(daysInYear), money.MaxPlaces), nil
}

var _ model.InterestCalculator = (*AccrualEngine)(nil)
