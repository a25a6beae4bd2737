package testutil_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bibbank/gic-ledger/pkg/testutil"
)

func TestFixturesAreChronological(t *testing.T) {
	for i := 1; i < len(testutil.JuneRules); i++ {
		assert.True(t, testutil.JuneRules[i-1].Date.Before(testutil.JuneRules[i].Date))
	}
	for i := 1; i < len(testutil.JuneTransactions); i++ {
		assert.False(t, testutil.JuneTransactions[i].Date.Before(testutil.JuneTransactions[i-1].Date))
	}
	assert.Equal(t, time.June, testutil.JuneTransactions[0].Date.Month)
}

func TestAssertions(t *testing.T) {
	testutil.AssertCents(t, "1.50", testutil.Dec("1.5"))
	testutil.AssertErrorContains(t, errors.New("insufficient funds: balance 0.00"), "insufficient funds")
	testutil.RequireNoError(t, nil)
}
