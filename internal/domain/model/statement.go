package model

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
)

// StatementLine is one entry on a statement with the running balance after it.
type StatementLine struct {
	transaction Transaction
	balance     decimal.Decimal
}

func (l StatementLine) Transaction() Transaction { return l.transaction }
func (l StatementLine) Balance() decimal.Decimal { return l.balance }

// Statement is a read-only monthly view of an account.
type Statement struct {
	accountID      string
	period         valueobject.StatementPeriod
	openingBalance decimal.Decimal
	closingBalance decimal.Decimal
	interest       decimal.Decimal
	lines          []StatementLine
}

func (s Statement) AccountID() string                   { return s.accountID }
func (s Statement) Period() valueobject.StatementPeriod { return s.period }
func (s Statement) OpeningBalance() decimal.Decimal     { return s.openingBalance }
func (s Statement) ClosingBalance() decimal.Decimal     { return s.closingBalance }

// Interest is the rounded interest for the month. It is zero when nothing accrued.
func (s Statement) Interest() decimal.Decimal { return s.interest }

// Lines returns a copy of the statement entries in order.
func (s Statement) Lines() []StatementLine {
	return slices.Clone(s.lines)
}
