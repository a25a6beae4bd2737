package usecase_test

import (
	"context"
	"sync"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/pkg/events"
)

// --- Mock implementations ---

type mockAccountRepository struct {
	mu           sync.Mutex
	accounts     map[string]*model.Account
	saveCount    int
	findByIDFunc func(ctx context.Context, id string) (*model.Account, error)
	saveFunc     func(ctx context.Context, account *model.Account) error
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, model.ErrAccountNotFound
}

func (m *mockAccountRepository) Save(ctx context.Context, account *model.Account) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID()] = account
	m.saveCount++
	return nil
}

func (m *mockAccountRepository) List(_ context.Context) ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

type mockInterestRuleRepository struct {
	table      *model.RuleTable
	upsertFunc func(ctx context.Context, rule model.InterestRule) (bool, error)
	listFunc   func(ctx context.Context) ([]model.InterestRule, error)
}

func newMockInterestRuleRepository() *mockInterestRuleRepository {
	return &mockInterestRuleRepository{table: model.NewRuleTable()}
}

func (m *mockInterestRuleRepository) Upsert(ctx context.Context, rule model.InterestRule) (bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, rule)
	}
	return m.table.Upsert(rule), nil
}

func (m *mockInterestRuleRepository) List(ctx context.Context) ([]model.InterestRule, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return m.table.Sorted(), nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []events.DomainEvent
	topics          []string
	publishFunc     func(ctx context.Context, topic string, events ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, topic, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	m.topics = append(m.topics, topic)
	return nil
}

func (m *mockEventPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		types = append(types, e.EventType())
	}
	return types
}
