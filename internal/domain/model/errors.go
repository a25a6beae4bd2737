package model

import "errors"

var (
	// ErrInsufficientFunds rejects a withdrawal that is the account's first transaction
	// or exceeds the balance before its date.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when a statement or listing names an unknown account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount rejects zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidKind rejects anything but deposits and withdrawals on input.
	ErrInvalidKind = errors.New("transaction type must be deposit or withdrawal")

	// ErrInvalidDate rejects a zero or out-of-range calendar date.
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrInvalidRule rejects an interest rule outside its documented range.
	ErrInvalidRule = errors.New("invalid interest rule")
)
