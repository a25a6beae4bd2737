// Package testutil holds shared test helpers and the reference June 2023 ledger scenario.
package testutil

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Date is a terse civil.Date constructor.
func Date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// Dec parses s and panics on error.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TxnFixture is a transaction input row.
type TxnFixture struct {
	Date      civil.Date
	AccountID string
	Type      string
	Amount    decimal.Decimal
}

// RuleFixture is an interest rule input row.
type RuleFixture struct {
	Date        civil.Date
	RuleID      string
	RatePercent decimal.Decimal
}

// JuneTransactions are the account entries of the reference scenario.
var JuneTransactions = []TxnFixture{
	{Date(2023, time.June, 1), "AC001", "D", Dec("250.00")},
	{Date(2023, time.June, 26), "AC001", "W", Dec("120.00")},
}

// JuneRules are the interest rules of the reference scenario. June 2023 interest is 0.39.
var JuneRules = []RuleFixture{
	{Date(2023, time.January, 1), "RULE01", Dec("1.95")},
	{Date(2023, time.May, 20), "RULE02", Dec("1.90")},
	{Date(2023, time.June, 15), "RULE03", Dec("2.20")},
}

// JuneInterest is the expected interest for AC001 in June 2023.
const JuneInterest = "0.39"
