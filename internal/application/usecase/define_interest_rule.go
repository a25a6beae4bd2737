package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/event"
	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// DefineInterestRule adds a rule to the shared table or replaces the rule on the same date.
type DefineInterestRule struct {
	ruleRepo  port.InterestRuleRepository
	publisher port.EventPublisher
}

func NewDefineInterestRule(ruleRepo port.InterestRuleRepository, publisher port.EventPublisher) *DefineInterestRule {
	return &DefineInterestRule{
		ruleRepo:  ruleRepo,
		publisher: publisher,
	}
}

func (uc *DefineInterestRule) Execute(ctx context.Context, req dto.DefineInterestRuleRequest) (dto.InterestRulesResponse, error) {
	rule, err := model.NewInterestRule(req.Date, req.RuleID, req.RatePercent)
	if err != nil {
		return dto.InterestRulesResponse{}, fmt.Errorf("failed to create interest rule: %w", err)
	}

	replaced, err := uc.ruleRepo.Upsert(ctx, rule)
	if err != nil {
		return dto.InterestRulesResponse{}, fmt.Errorf("failed to save interest rule: %w", err)
	}

	defined := event.NewInterestRuleDefined(rule.ID(), valueobject.FormatDate(rule.EffectiveDate()), rule.RatePercent(), replaced)
	publishCommitted(ctx, uc.publisher, TopicInterestRules, defined)

	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return dto.InterestRulesResponse{}, fmt.Errorf("failed to list interest rules: %w", err)
	}

	resp := toInterestRulesResponse(rules)
	resp.Replaced = replaced
	return resp, nil
}

// ListInterestRules returns the rule table sorted by effective date.
type ListInterestRules struct {
	ruleRepo port.InterestRuleRepository
}

func NewListInterestRules(ruleRepo port.InterestRuleRepository) *ListInterestRules {
	return &ListInterestRules{ruleRepo: ruleRepo}
}

func (uc *ListInterestRules) Execute(ctx context.Context) (dto.InterestRulesResponse, error) {
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return dto.InterestRulesResponse{}, fmt.Errorf("failed to list interest rules: %w", err)
	}
	return toInterestRulesResponse(rules), nil
}

func toInterestRulesResponse(rules []model.InterestRule) dto.InterestRulesResponse {
	resp := dto.InterestRulesResponse{Rules: make([]dto.InterestRuleResponse, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, dto.InterestRuleResponse{
			Date:        r.EffectiveDate(),
			RuleID:      r.ID(),
			RatePercent: r.RatePercent(),
		})
	}
	return resp
}
