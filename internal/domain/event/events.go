package event

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/pkg/events"
)

const (
	AggregateTypeAccount      = "Account"
	AggregateTypeInterestRule = "InterestRule"
)

// TransactionRecorded is emitted when a deposit or withdrawal is accepted.
type TransactionRecorded struct {
	events.BaseEvent
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
}

func NewTransactionRecorded(accountID, transactionID, date, kind string, amount decimal.Decimal) TransactionRecorded {
	payload, _ := json.Marshal(struct {
		AccountID     string `json:"account_id"`
		TransactionID string `json:"transaction_id"`
		Date          string `json:"date"`
		Type          string `json:"type"`
		Amount        string `json:"amount"`
	}{accountID, transactionID, date, kind, amount.StringFixed(2)})

	return TransactionRecorded{
		BaseEvent:     events.NewBaseEvent("ledger.transaction.recorded", accountID, AggregateTypeAccount, payload),
		AccountID:     accountID,
		TransactionID: transactionID,
		Date:          date,
		Type:          kind,
		Amount:        amount.StringFixed(2),
	}
}

// TransactionRejected is emitted when a transaction fails validation or would overdraw.
type TransactionRejected struct {
	events.BaseEvent
	AccountID string `json:"account_id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
}

func NewTransactionRejected(accountID, date, kind string, amount decimal.Decimal, reason string) TransactionRejected {
	payload, _ := json.Marshal(struct {
		AccountID string `json:"account_id"`
		Date      string `json:"date"`
		Type      string `json:"type"`
		Amount    string `json:"amount"`
		Reason    string `json:"reason"`
	}{accountID, date, kind, amount.String(), reason})

	return TransactionRejected{
		BaseEvent: events.NewBaseEvent("ledger.transaction.rejected", accountID, AggregateTypeAccount, payload),
		AccountID: accountID,
		Date:      date,
		Type:      kind,
		Amount:    amount.String(),
		Reason:    reason,
	}
}

// InterestRuleDefined is emitted when a rule is added or replaces the rule on its date.
type InterestRuleDefined struct {
	events.BaseEvent
	RuleID        string `json:"rule_id"`
	EffectiveDate string `json:"effective_date"`
	RatePercent   string `json:"rate_percent"`
	Replaced      bool   `json:"replaced"`
}

func NewInterestRuleDefined(ruleID, effectiveDate string, ratePercent decimal.Decimal, replaced bool) InterestRuleDefined {
	payload, _ := json.Marshal(struct {
		RuleID        string `json:"rule_id"`
		EffectiveDate string `json:"effective_date"`
		RatePercent   string `json:"rate_percent"`
		Replaced      bool   `json:"replaced"`
	}{ruleID, effectiveDate, ratePercent.StringFixed(2), replaced})

	return InterestRuleDefined{
		BaseEvent:     events.NewBaseEvent("ledger.interest_rule.defined", effectiveDate, AggregateTypeInterestRule, payload),
		RuleID:        ruleID,
		EffectiveDate: effectiveDate,
		RatePercent:   ratePercent.StringFixed(2),
		Replaced:      replaced,
	}
}

// StatementGenerated is emitted after a monthly statement has been produced.
type StatementGenerated struct {
	events.BaseEvent
	AccountID      string `json:"account_id"`
	Period         string `json:"period"`
	Interest       string `json:"interest"`
	ClosingBalance string `json:"closing_balance"`
	Lines          int    `json:"lines"`
}

func NewStatementGenerated(accountID, period string, interest, closingBalance decimal.Decimal, lines int) StatementGenerated {
	payload, _ := json.Marshal(struct {
		AccountID      string `json:"account_id"`
		Period         string `json:"period"`
		Interest       string `json:"interest"`
		ClosingBalance string `json:"closing_balance"`
		Lines          int    `json:"lines"`
	}{accountID, period, interest.StringFixed(2), closingBalance.StringFixed(2), lines})

	return StatementGenerated{
		BaseEvent:      events.NewBaseEvent("ledger.statement.generated", accountID, AggregateTypeAccount, payload),
		AccountID:      accountID,
		Period:         period,
		Interest:       interest.StringFixed(2),
		ClosingBalance: closingBalance.StringFixed(2),
		Lines:          lines,
	}
}
