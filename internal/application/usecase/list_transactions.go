package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/port"
)

// ListTransactions returns an account's entries in ledger order.
type ListTransactions struct {
	accountRepo port.AccountRepository
}

func NewListTransactions(accountRepo port.AccountRepository) *ListTransactions {
	return &ListTransactions{accountRepo: accountRepo}
}

func (uc *ListTransactions) Execute(ctx context.Context, accountID string) (dto.AccountTransactionsResponse, error) {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return dto.AccountTransactionsResponse{}, fmt.Errorf("failed to find account: %w", err)
	}
	return toAccountTransactionsResponse(account), nil
}
