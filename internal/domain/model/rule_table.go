package model

import (
	"slices"
	"sync"

	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// RuleTable holds the interest rules shared by every account, sorted by effective date,
// with at most one rule per date.
//
// Writers replace the backing slice instead of editing it, so a slice handed out by
// Sorted stays valid while later upserts happen.
type RuleTable struct {
	mu    sync.RWMutex
	rules []InterestRule
}

func NewRuleTable() *RuleTable {
	return &RuleTable{}
}

// Upsert inserts rule, replacing any rule with the same effective date.
// It reports whether an existing rule was replaced.
func (t *RuleTable) Upsert(rule InterestRule) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, found := slices.BinarySearchFunc(t.rules, rule, func(existing, target InterestRule) int {
		return valueobject.CompareDates(existing.effectiveDate, target.effectiveDate)
	})

	next := slices.Clone(t.rules)
	if found {
		next[idx] = rule
	} else {
		next = slices.Insert(next, idx, rule)
	}
	t.rules = next
	return found
}

// Sorted returns the rules ascending by effective date.
func (t *RuleTable) Sorted() []InterestRule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.rules)
}

func (t *RuleTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}
