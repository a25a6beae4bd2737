package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPlaces is the number of decimal places an Amount may carry.
const MaxPlaces = 2

// RoundingMode selects how a value exactly halfway between two cents is rounded.
type RoundingMode int

const (
	// RoundHalfEven is banker's rounding: 0.125 -> 0.12, 0.135 -> 0.14.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds halves away from zero: 0.125 -> 0.13.
	RoundHalfUp
)

// ParseRoundingMode converts a configuration string into a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half_even", "bankers", "banker":
		return RoundHalfEven, nil
	case "half_up":
		return RoundHalfUp, nil
	default:
		return RoundHalfEven, fmt.Errorf("unknown rounding mode %q: want half_even or half_up", s)
	}
}

// Round rounds d to the given number of places using the mode.
func (m RoundingMode) Round(d decimal.Decimal, places int32) decimal.Decimal {
	if m == RoundHalfUp {
		return d.Round(places)
	}
	return d.RoundBank(places)
}

func (m RoundingMode) String() string {
	if m == RoundHalfUp {
		return "half_up"
	}
	return "half_even"
}

// Amount is an immutable, strictly positive monetary amount with at most two decimal places.
// Fields are unexported to enforce the invariant.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates d and wraps it as an Amount.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, fmt.Errorf("amount must be positive, got %s", d)
	}
	if !d.Equal(d.Truncate(MaxPlaces)) {
		return Amount{}, fmt.Errorf("amount %s has more than %d decimal places", d, MaxPlaces)
	}
	return Amount{value: d}, nil
}

// ParseAmount parses a user-supplied amount string such as "100" or "12.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewAmount(d)
}

// MustAmount parses s and panics on error. Intended for tests and fixtures.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String formats the amount with exactly two decimal places.
func (a Amount) String() string {
	return Format(a.value)
}

// Format renders d with exactly two decimal places, e.g. "250.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(MaxPlaces)
}
