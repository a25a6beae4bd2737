package port

import (
	"context"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/pkg/events"
)

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	// FindByID retrieves an account, or model.ErrAccountNotFound.
	FindByID(ctx context.Context, id string) (*model.Account, error)
	// Save persists an account (insert or update).
	Save(ctx context.Context, account *model.Account) error
	// List returns every account ordered by id.
	List(ctx context.Context) ([]*model.Account, error)
}

// InterestRuleRepository defines persistence operations for the shared interest rule table.
type InterestRuleRepository interface {
	// Upsert stores rule, replacing any rule on the same effective date.
	Upsert(ctx context.Context, rule model.InterestRule) (replaced bool, err error)
	// List returns the rules sorted by effective date.
	List(ctx context.Context) ([]model.InterestRule, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher = events.EventPublisher
