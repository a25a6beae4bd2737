package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/event"
	"github.com/bibbank/gic-ledger/internal/domain/model"
	"github.com/bibbank/gic-ledger/internal/domain/port"
)

// GenerateStatement builds a monthly statement with accrued interest. It never modifies the account.
type GenerateStatement struct {
	accountRepo port.AccountRepository
	ruleRepo    port.InterestRuleRepository
	publisher   port.EventPublisher
	calculator  model.InterestCalculator
}

func NewGenerateStatement(
	accountRepo port.AccountRepository,
	ruleRepo port.InterestRuleRepository,
	publisher port.EventPublisher,
	calculator model.InterestCalculator,
) *GenerateStatement {
	return &GenerateStatement{
		accountRepo: accountRepo,
		ruleRepo:    ruleRepo,
		publisher:   publisher,
		calculator:  calculator,
	}
}

func (uc *GenerateStatement) Execute(ctx context.Context, req dto.GenerateStatementRequest) (dto.StatementResponse, error) {
	if req.Period.IsZero() {
		return dto.StatementResponse{}, fmt.Errorf("statement period is required")
	}

	account, err := uc.accountRepo.FindByID(ctx, req.AccountID)
	if err != nil {
		return dto.StatementResponse{}, fmt.Errorf("failed to find account: %w", err)
	}

	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return dto.StatementResponse{}, fmt.Errorf("failed to list interest rules: %w", err)
	}

	stmt, err := account.Statement(req.Period, rules, uc.calculator)
	if err != nil {
		return dto.StatementResponse{}, fmt.Errorf("failed to build statement: %w", err)
	}

	generated := event.NewStatementGenerated(
		stmt.AccountID(), stmt.Period().String(), stmt.Interest(), stmt.ClosingBalance(), len(stmt.Lines()),
	)
	publishCommitted(ctx, uc.publisher, TopicStatements, generated)

	return toStatementResponse(stmt), nil
}

func toStatementResponse(s model.Statement) dto.StatementResponse {
	lines := s.Lines()
	resp := dto.StatementResponse{
		AccountID:      s.AccountID(),
		Period:         s.Period().String(),
		OpeningBalance: s.OpeningBalance(),
		Interest:       s.Interest(),
		ClosingBalance: s.ClosingBalance(),
		Lines:          make([]dto.StatementLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		t := l.Transaction()
		resp.Lines = append(resp.Lines, dto.StatementLineResponse{
			Date:          t.Date(),
			TransactionID: t.ID(),
			Kind:          t.Kind().Code(),
			Amount:        t.Amount(),
			Balance:       l.Balance(),
		})
	}
	return resp
}
