package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
	"github.com/bibbank/gic-ledger/pkg/money"
)

var errFieldCount = errors.New("wrong number of fields")

// parseTransaction parses "<Date> <Account> <Type> <Amount>".
func parseTransaction(line string) (dto.RecordTransactionRequest, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return dto.RecordTransactionRequest{}, fmt.Errorf("%w: want 4, got %d", errFieldCount, len(fields))
	}

	date, err := valueobject.ParseDate(fields[0])
	if err != nil {
		return dto.RecordTransactionRequest{}, err
	}
	kind, err := valueobject.ParseTransactionKind(fields[2])
	if err != nil {
		return dto.RecordTransactionRequest{}, err
	}
	amount, err := money.ParseAmount(fields[3])
	if err != nil {
		return dto.RecordTransactionRequest{}, err
	}

	return dto.RecordTransactionRequest{
		Date:      date,
		AccountID: fields[1],
		Kind:      kind,
		Amount:    amount.Decimal(),
	}, nil
}

// parseInterestRule parses "<Date> <RuleId> <Rate in %>". Range checks happen in the domain.
func parseInterestRule(line string) (dto.DefineInterestRuleRequest, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return dto.DefineInterestRuleRequest{}, fmt.Errorf("%w: want 3, got %d", errFieldCount, len(fields))
	}

	date, err := valueobject.ParseDate(fields[0])
	if err != nil {
		return dto.DefineInterestRuleRequest{}, err
	}
	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return dto.DefineInterestRuleRequest{}, fmt.Errorf("invalid rate %q: %w", fields[2], err)
	}

	return dto.DefineInterestRuleRequest{
		Date:        date,
		RuleID:      fields[1],
		RatePercent: rate,
	}, nil
}

// parseStatement parses "<Account> <Year><Month>".
func parseStatement(line string) (dto.GenerateStatementRequest, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return dto.GenerateStatementRequest{}, fmt.Errorf("%w: want 2, got %d", errFieldCount, len(fields))
	}

	period, err := valueobject.ParseStatementPeriod(fields[1])
	if err != nil {
		return dto.GenerateStatementRequest{}, err
	}

	return dto.GenerateStatementRequest{
		AccountID: fields[0],
		Period:    period,
	}, nil
}
