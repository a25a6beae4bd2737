package memory

import (
	"context"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/port"
)

var _ port.InterestRuleRepository = (*InterestRuleRepository)(nil)

// InterestRuleRepository stores the shared rule table.
type InterestRuleRepository struct {
	table *model.RuleTable
}

func NewInterestRuleRepository() *InterestRuleRepository {
	return &InterestRuleRepository{table: model.NewRuleTable()}
}

func (r *InterestRuleRepository) Upsert(ctx context.Context, rule model.InterestRule) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.table.Upsert(rule), nil
}

func (r *InterestRuleRepository) List(ctx context.Context) ([]model.InterestRule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.Sorted(), nil
}
