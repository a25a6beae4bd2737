package memory_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/infrastructure/memory"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	_, err := repo.FindByID(ctx, "AC001")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	for _, id := range []string{"AC002", "AC001"} {
		acct, err := model.NewAccount(id)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, acct))
	}

	found, err := repo.FindByID(ctx, "AC001")
	require.NoError(t, err)
	assert.Equal(t, "AC001", found.ID())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AC001", all[0].ID())
	assert.Equal(t, "AC002", all[1].ID())
}

func TestAccountRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := memory.NewAccountRepository()
	_, err := repo.FindByID(ctx, "AC001")
	assert.ErrorIs(t, err, context.Canceled)

	acct, err := model.NewAccount("AC001")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, acct), context.Canceled)
}

func TestInterestRuleRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInterestRuleRepository()

	day := civil.Date{Year: 2023, Month: time.June, Day: 15}
	first, err := model.NewInterestRule(day, "RULE03", decimal.RequireFromString("2.20"))
	require.NoError(t, err)
	earlier, err := model.NewInterestRule(day.AddDays(-26), "RULE02", decimal.RequireFromString("1.90"))
	require.NoError(t, err)
	replacement, err := model.NewInterestRule(day, "RULE04", decimal.RequireFromString("2.50"))
	require.NoError(t, err)

	replaced, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	assert.False(t, replaced)

	_, err = repo.Upsert(ctx, earlier)
	require.NoError(t, err)

	replaced, err = repo.Upsert(ctx, replacement)
	require.NoError(t, err)
	assert.True(t, replaced)

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "RULE02", rules[0].ID())
	assert.Equal(t, "RULE04", rules[1].ID())
}
