package model

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/domain/event"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
	"github.com/bibbank/gic-ledger/pkg/events"
)

// InterestCalculator computes the interest earned over [start, end] from end-of-day balances
// and the rules in force.
type InterestCalculator interface {
	Accrue(eod map[civil.Date]decimal.Decimal, rules []InterestRule, start, end civil.Date) (decimal.Decimal, error)
}

// Account is the aggregate root for a single ledger account.
//
// Transactions are kept sorted by (date, sequence). An Account is safe for concurrent use:
// writes take the exclusive lock, statements and balance queries share it.
type Account struct {
	mu           sync.RWMutex
	id           string
	transactions []Transaction
	perDay       map[civil.Date]int
	domainEvents events.EventCollector
}

// NewAccount creates an empty account. The id is trimmed and must not be blank.
func NewAccount(id string) (*Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	return &Account{
		id:     id,
		perDay: make(map[civil.Date]int),
	}, nil
}

func (a *Account) ID() string { return a.id }

// AddTransaction validates and appends a deposit or withdrawal.
//
// A withdrawal is rejected when it is the first entry on the account or when it exceeds the
// balance at the close of the day before its date. Entries dated later than the withdrawal
// are not consulted, so a backdated withdrawal can leave later balances negative.
func (a *Account) AddTransaction(date civil.Date, kind valueobject.TransactionKind, amount decimal.Decimal) (Transaction, error) {
	if !date.IsValid() {
		return Transaction{}, ErrInvalidDate
	}
	if kind != valueobject.KindDeposit && kind != valueobject.KindWithdrawal {
		return Transaction{}, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if kind == valueobject.KindWithdrawal {
		if len(a.transactions) == 0 {
			return Transaction{}, fmt.Errorf("%w: first transaction on account %s cannot be a withdrawal", ErrInsufficientFunds, a.id)
		}
		available := a.balanceBefore(date)
		if available.LessThan(amount) {
			return Transaction{}, fmt.Errorf("%w: balance %s before %s is less than %s",
				ErrInsufficientFunds, available.StringFixed(2), valueobject.FormatDate(date), amount.StringFixed(2))
		}
	}

	seq := a.perDay[date] + 1
	txn := newTransaction(date, seq, kind, amount)

	idx, _ := slices.BinarySearchFunc(a.transactions, txn, Transaction.Compare)
	a.transactions = slices.Insert(a.transactions, idx, txn)
	a.perDay[date] = seq

	a.domainEvents.Record(event.NewTransactionRecorded(
		a.id, txn.ID(), valueobject.FormatDate(date), kind.Code(), amount,
	))
	return txn, nil
}

// BalanceBefore returns the sum of signed amounts dated strictly before date.
func (a *Account) BalanceBefore(date civil.Date) decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balanceBefore(date)
}

func (a *Account) balanceBefore(date civil.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range a.transactions {
		if !t.date.Before(date) {
			break
		}
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}

// EndOfDayBalances maps every day in [start, end] to the balance after all of that
// day's entries. It returns an empty map when end is before start.
func (a *Account) EndOfDayBalances(start, end civil.Date) map[civil.Date]decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.endOfDayBalances(start, end)
}

func (a *Account) endOfDayBalances(start, end civil.Date) map[civil.Date]decimal.Decimal {
	eod := make(map[civil.Date]decimal.Decimal)
	if end.Before(start) {
		return eod
	}

	balance := decimal.Zero
	i := 0
	for ; i < len(a.transactions) && a.transactions[i].date.Before(start); i++ {
		balance = balance.Add(a.transactions[i].SignedAmount())
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		for ; i < len(a.transactions) && a.transactions[i].date == d; i++ {
			balance = balance.Add(a.transactions[i].SignedAmount())
		}
		eod[d] = balance
	}
	return eod
}

// Transactions returns a copy of all entries in (date, sequence) order.
func (a *Account) Transactions() []Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.transactions)
}

// Statement builds the monthly statement for period. Interest is computed by calc from the
// month's end-of-day balances and shown as a synthetic entry on the last day of the month
// when it is positive. The account is not modified.
func (a *Account) Statement(period valueobject.StatementPeriod, rules []InterestRule, calc InterestCalculator) (Statement, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	start, end := period.StartDate(), period.EndDate()
	opening := a.balanceBefore(start)

	interest, err := calc.Accrue(a.endOfDayBalances(start, end), rules, start, end)
	if err != nil {
		return Statement{}, fmt.Errorf("accruing interest for %s %s: %w", a.id, period, err)
	}

	var entries []Transaction
	for _, t := range a.transactions {
		if t.date.After(end) {
			break
		}
		if period.Contains(t.date) {
			entries = append(entries, t)
		}
	}
	if interest.IsPositive() {
		interestTxn := NewInterestTransaction(end, interest)
		idx, _ := slices.BinarySearchFunc(entries, interestTxn, Transaction.Compare)
		entries = slices.Insert(entries, idx, interestTxn)
	}

	lines := make([]StatementLine, 0, len(entries))
	running := opening
	for _, t := range entries {
		running = running.Add(t.SignedAmount())
		lines = append(lines, StatementLine{transaction: t, balance: running})
	}

	return Statement{
		accountID:      a.id,
		period:         period,
		openingBalance: opening,
		closingBalance: running,
		interest:       interest,
		lines:          lines,
	}, nil
}

// DomainEvents returns collected domain events.
func (a *Account) DomainEvents() []events.DomainEvent {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.domainEvents.Events()
}

// ClearDomainEvents returns and clears the collected domain events.
func (a *Account) ClearDomainEvents() []events.DomainEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.domainEvents.ClearEvents()
}
