package model

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var maxRatePercent = decimal.NewFromInt(100)

// InterestRule is an annual percentage rate effective from a date until the next rule.
type InterestRule struct {
	effectiveDate civil.Date
	id            string
	ratePercent   decimal.Decimal
}

// NewInterestRule creates a validated InterestRule. The rate must lie strictly between 0 and 100.
func NewInterestRule(effectiveDate civil.Date, ruleID string, ratePercent decimal.Decimal) (InterestRule, error) {
	if !effectiveDate.IsValid() {
		return InterestRule{}, fmt.Errorf("%w: effective date is required", ErrInvalidRule)
	}
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return InterestRule{}, fmt.Errorf("%w: rule ID is required", ErrInvalidRule)
	}
	if !ratePercent.IsPositive() || ratePercent.GreaterThanOrEqual(maxRatePercent) {
		return InterestRule{}, fmt.Errorf("%w: rate %s must be between 0 and 100 exclusive", ErrInvalidRule, ratePercent)
	}
	return InterestRule{
		effectiveDate: effectiveDate,
		id:            ruleID,
		ratePercent:   ratePercent,
	}, nil
}

func (r InterestRule) EffectiveDate() civil.Date    { return r.effectiveDate }
func (r InterestRule) ID() string                   { return r.id }
func (r InterestRule) RatePercent() decimal.Decimal { return r.ratePercent }
