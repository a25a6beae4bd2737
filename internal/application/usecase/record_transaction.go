package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/event"
	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// RecordTransaction handles deposits and withdrawals, opening the account on the first
// transaction that references it, whether or not that transaction is accepted.
type RecordTransaction struct {
	accountRepo port.AccountRepository
	publisher   port.EventPublisher

	// serialises the find-or-create path so two first transactions cannot open the same account twice
	openMu sync.Mutex
}

func NewRecordTransaction(accountRepo port.AccountRepository, publisher port.EventPublisher) *RecordTransaction {
	return &RecordTransaction{
		accountRepo: accountRepo,
		publisher:   publisher,
	}
}

func (uc *RecordTransaction) Execute(ctx context.Context, req dto.RecordTransactionRequest) (dto.AccountTransactionsResponse, error) {
	account, err := uc.accountRepo.FindByID(ctx, req.AccountID)
	switch {
	case err == nil:
		return uc.record(ctx, account, false, req)
	case errors.Is(err, model.ErrAccountNotFound):
		return uc.open(ctx, req)
	default:
		return dto.AccountTransactionsResponse{}, fmt.Errorf("failed to find account: %w", err)
	}
}

func (uc *RecordTransaction) open(ctx context.Context, req dto.RecordTransactionRequest) (dto.AccountTransactionsResponse, error) {
	uc.openMu.Lock()
	defer uc.openMu.Unlock()

	account, err := uc.accountRepo.FindByID(ctx, req.AccountID)
	if err == nil {
		return uc.record(ctx, account, false, req)
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return dto.AccountTransactionsResponse{}, fmt.Errorf("failed to find account: %w", err)
	}

	account, err = model.NewAccount(req.AccountID)
	if err != nil {
		return dto.AccountTransactionsResponse{}, fmt.Errorf("failed to open account: %w", err)
	}
	return uc.record(ctx, account, true, req)
}

func (uc *RecordTransaction) record(ctx context.Context, account *model.Account, opened bool, req dto.RecordTransactionRequest) (dto.AccountTransactionsResponse, error) {
	if _, err := account.AddTransaction(req.Date, req.Kind, req.Amount); err != nil {
		// A newly referenced account is kept when its first entry is refused for funds.
		if opened && errors.Is(err, model.ErrInsufficientFunds) {
			if saveErr := uc.accountRepo.Save(ctx, account); saveErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to save account: %w", saveErr))
			}
		}
		rejected := event.NewTransactionRejected(
			account.ID(), valueobject.FormatDate(req.Date), req.Kind.Code(), req.Amount, err.Error(),
		)
		publishCommitted(ctx, uc.publisher, TopicTransactions, rejected)
		return dto.AccountTransactionsResponse{}, fmt.Errorf("transaction rejected: %w", err)
	}

	if err := uc.accountRepo.Save(ctx, account); err != nil {
		return dto.AccountTransactionsResponse{}, fmt.Errorf("failed to save account: %w", err)
	}

	publishCommitted(ctx, uc.publisher, TopicTransactions, account.ClearDomainEvents()...)

	return toAccountTransactionsResponse(account), nil
}

func toAccountTransactionsResponse(a *model.Account) dto.AccountTransactionsResponse {
	txns := a.Transactions()
	resp := dto.AccountTransactionsResponse{
		AccountID:    a.ID(),
		Transactions: make([]dto.TransactionResponse, 0, len(txns)),
	}
	for _, t := range txns {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			Date:   t.Date(),
			ID:     t.ID(),
			Kind:   t.Kind().Code(),
			Amount: t.Amount(),
		})
	}
	return resp
}
