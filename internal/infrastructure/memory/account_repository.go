package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/port"
)

var _ port.AccountRepository = (*AccountRepository)(nil)

// AccountRepository keeps accounts in a map for the life of the process.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*model.Account)}
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrAccountNotFound, id)
	}
	return account, nil
}

func (r *AccountRepository) Save(ctx context.Context, account *model.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID()] = account
	return nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}
