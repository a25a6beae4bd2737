package dto

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// --- Transaction DTOs ---

// RecordTransactionRequest is the input DTO for recording a deposit or withdrawal.
type RecordTransactionRequest struct {
	Date      civil.Date
	AccountID string
	Kind      valueobject.TransactionKind
	Amount    decimal.Decimal
}

// TransactionResponse is the output DTO for a single ledger entry.
type TransactionResponse struct {
	Date   civil.Date
	ID     string
	Kind   string
	Amount decimal.Decimal
}

// AccountTransactionsResponse lists an account's entries in ledger order.
type AccountTransactionsResponse struct {
	AccountID    string
	Transactions []TransactionResponse
}

// --- Interest Rule DTOs ---

// DefineInterestRuleRequest is the input DTO for adding or replacing an interest rule.
type DefineInterestRuleRequest struct {
	Date        civil.Date
	RuleID      string
	RatePercent decimal.Decimal
}

// InterestRuleResponse is the output DTO for an interest rule.
type InterestRuleResponse struct {
	Date        civil.Date
	RuleID      string
	RatePercent decimal.Decimal
}

// InterestRulesResponse is the sorted rule table.
type InterestRulesResponse struct {
	Rules    []InterestRuleResponse
	Replaced bool
}

// --- Statement DTOs ---

// GenerateStatementRequest is the input DTO for a monthly statement.
type GenerateStatementRequest struct {
	AccountID string
	Period    valueobject.StatementPeriod
}

// StatementLineResponse is one statement row.
type StatementLineResponse struct {
	Date          civil.Date
	TransactionID string
	Kind          string
	Amount        decimal.Decimal
	Balance       decimal.Decimal
}

// StatementResponse is the output DTO for a monthly statement.
type StatementResponse struct {
	AccountID      string
	Period         string
	OpeningBalance decimal.Decimal
	Interest       decimal.Decimal
	ClosingBalance decimal.Decimal
	Lines          []StatementLineResponse
}
