package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of ledger entry kinds.
type TransactionKind uint8

const (
	kindUnknown TransactionKind = iota
	KindDeposit
	KindWithdrawal
	KindInterest
)

// ParseTransactionKind accepts the user-facing codes D and W (any case).
// Interest entries are only ever synthesised by statements, so "I" is rejected.
func ParseTransactionKind(code string) (TransactionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "D":
		return KindDeposit, nil
	case "W":
		return KindWithdrawal, nil
	default:
		return kindUnknown, fmt.Errorf("invalid transaction type %q: want D or W", code)
	}
}

// Code returns the single-letter code shown on statements.
func (k TransactionKind) Code() string {
	switch k {
	case KindDeposit:
		return "D"
	case KindWithdrawal:
		return "W"
	case KindInterest:
		return "I"
	default:
		return "?"
	}
}

func (k TransactionKind) String() string { return k.Code() }

// IsValid reports whether k is one of the declared kinds.
func (k TransactionKind) IsValid() bool {
	return k == KindDeposit || k == KindWithdrawal || k == KindInterest
}

// Signed applies the kind's direction to a positive amount: withdrawals are negative.
func (k TransactionKind) Signed(amount decimal.Decimal) decimal.Decimal {
	if k == KindWithdrawal {
		return amount.Neg()
	}
	return amount
}
