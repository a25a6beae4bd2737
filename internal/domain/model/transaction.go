package model

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// Transaction is an immutable ledger entry.
//
// Entries are ordered by (date, sequence). The sequence is the 1-based position of the
// entry among those sharing its date at insertion time and is never renumbered. The
// synthetic interest entry on a statement has sequence 0 and an empty id, so it sorts
// ahead of every real entry on the same day.
type Transaction struct {
	date     civil.Date
	sequence int
	id       string
	kind     valueobject.TransactionKind
	amount   decimal.Decimal
}

func newTransaction(date civil.Date, sequence int, kind valueobject.TransactionKind, amount decimal.Decimal) Transaction {
	return Transaction{
		date:     date,
		sequence: sequence,
		id:       fmt.Sprintf("%s-%02d", valueobject.FormatDate(date), sequence),
		kind:     kind,
		amount:   amount,
	}
}

// NewInterestTransaction builds the statement-only interest credit for date.
func NewInterestTransaction(date civil.Date, amount decimal.Decimal) Transaction {
	return Transaction{
		date:   date,
		kind:   valueobject.KindInterest,
		amount: amount,
	}
}

// Compare orders transactions by date, then by same-day sequence.
func (t Transaction) Compare(other Transaction) int {
	if c := valueobject.CompareDates(t.date, other.date); c != 0 {
		return c
	}
	switch {
	case t.sequence < other.sequence:
		return -1
	case t.sequence > other.sequence:
		return 1
	default:
		return 0
	}
}

// SignedAmount is the entry's effect on the balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.kind.Signed(t.amount)
}

// Accessors
func (t Transaction) Date() civil.Date                  { return t.date }
func (t Transaction) Sequence() int                     { return t.sequence }
func (t Transaction) ID() string                        { return t.id }
func (t Transaction) Kind() valueobject.TransactionKind { return t.kind }
func (t Transaction) Amount() decimal.Decimal           { return t.amount }
