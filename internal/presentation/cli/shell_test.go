package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/gic-ledger/internal/application/usecase"
	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/internal/domain/service"
	"github.com/bibbank/gic-ledger/internal/infrastructure/memory"
	"github.com/bibbank/gic-ledger/internal/infrastructure/messaging"
	"github.com/bibbank/gic-ledger/internal/presentation/cli"
	"github.com/bibbank/gic-ledger/pkg/events"
	"github.com/bibbank/gic-ledger/pkg/money"
)

func runSession(t *testing.T, script ...string) string {
	t.Helper()
	out, err := runSessionCtx(context.Background(), script...)
	require.NoError(t, err)
	return out
}

func runSessionCtx(ctx context.Context, script ...string) (string, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return runSessionWith(ctx, messaging.NewLogPublisher(logger), script...)
}

type unreachableBroker struct{}

func (unreachableBroker) Publish(context.Context, string, ...events.DomainEvent) error {
	return errors.New("broker unreachable")
}

func runSessionWith(ctx context.Context, publisher port.EventPublisher, script ...string) (string, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := memory.NewAccountRepository()
	rules := memory.NewInterestRuleRepository()

	var out bytes.Buffer
	shell := cli.NewShell(
		usecase.NewRecordTransaction(accounts, publisher),
		usecase.NewListTransactions(accounts),
		usecase.NewDefineInterestRule(rules, publisher),
		usecase.NewListInterestRules(rules),
		usecase.NewGenerateStatement(accounts, rules, publisher, service.NewAccrualEngine(money.RoundHalfEven)),
		strings.NewReader(strings.Join(script, "\n")+"\n"),
		&out,
		logger,
	)
	err := shell.Run(ctx)
	return out.String(), err
}

func TestShell_FullSession(t *testing.T) {
	out := runSession(t,
		"T",
		"20230601 AC001 D 250",
		"20230626 AC001 W 120",
		"",
		"I",
		"20230101 RULE01 1.95",
		"20230520 RULE02 1.90",
		"20230615 RULE03 2.20",
		"",
		"P",
		"AC001 202306",
		"Q",
	)

	assert.Contains(t, out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	assert.Contains(t, out, "| 20230601 | 20230601-01 |    D | 250.00 |\n")
	assert.Contains(t, out, "| 20230626 | 20230626-01 |    W | 120.00 |\n")

	assert.Contains(t, out, "| Date     | RuleId | Rate (%) |\n"+
		"| 20230101 | RULE01 |     1.95 |\n"+
		"| 20230520 | RULE02 |     1.90 |\n"+
		"| 20230615 | RULE03 |     2.20 |\n")

	assert.Contains(t, out, "Account: AC001\n"+
		"| Date     | Txn Id      | Type | Amount | Balance |\n"+
		"| 20230601 | 20230601-01 |    D | 250.00 |  250.00 |\n"+
		"| 20230626 | 20230626-01 |    W | 120.00 |  130.00 |\n"+
		"| 20230630 |             |    I |   0.39 |  130.39 |\n")

	assert.True(t, strings.HasSuffix(out, "Thank you for banking with AwesomeGIC Bank.\nHave a nice day!\n"))
}

func TestShell_RejectedTransactions(t *testing.T) {
	t.Run("first withdrawal opens an empty account", func(t *testing.T) {
		out := runSession(t, "T", "20230601 AC002 W 10", "", "P", "AC002 202306", "Q")

		assert.Contains(t, out, "Transaction failed due to insufficient balance or invalid first transaction.\n"+
			"Account: AC002\n"+
			"| Date     | Txn Id      | Type | Amount |\n")
		assert.Contains(t, out, "Account: AC002\n"+
			"| Date     | Txn Id      | Type | Amount | Balance |\n")
		assert.NotContains(t, out, "Account not found.")
		assert.NotContains(t, out, "| 2023")
	})

	t.Run("overdraw reprints the unchanged account", func(t *testing.T) {
		out := runSession(t, "T", "20230601 AC001 D 100", "20230602 AC001 W 100.01", "", "Q")

		assert.Contains(t, out, "Transaction failed due to insufficient balance or invalid first transaction.\n"+
			"Account: AC001\n"+
			"| Date     | Txn Id      | Type | Amount |\n"+
			"| 20230601 | 20230601-01 |    D | 100.00 |\n")
	})
}

func TestShell_UnreachableBrokerDoesNotFailLedger(t *testing.T) {
	out, err := runSessionWith(context.Background(), unreachableBroker{},
		"T", "20230601 AC001 D 100", "", "P", "AC001 202306", "Q")
	require.NoError(t, err)

	assert.NotContains(t, out, "Transaction failed")
	assert.NotContains(t, out, "Statement could not be generated")
	assert.Equal(t, 1, strings.Count(out, "| 20230601 | 20230601-01 |    D | 100.00 |\n"))
	assert.Contains(t, out, "| 20230601 | 20230601-01 |    D | 100.00 |  100.00 |\n")
}

func TestShell_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		script []string
	}{
		{"unknown menu option", []string{"X", "Q"}},
		{"transaction with too few fields", []string{"T", "20230601 AC001 D", "", "Q"}},
		{"transaction with bad date", []string{"T", "20230631 AC001 D 10", "", "Q"}},
		{"transaction with bad type", []string{"T", "20230601 AC001 I 10", "", "Q"}},
		{"transaction with zero amount", []string{"T", "20230601 AC001 D 0", "", "Q"}},
		{"transaction with three decimals", []string{"T", "20230601 AC001 D 1.005", "", "Q"}},
		{"rule rate of 100", []string{"I", "20230601 R1 100", "", "Q"}},
		{"rule rate not a number", []string{"I", "20230601 R1 abc", "", "Q"}},
		{"statement with bad month", []string{"P", "AC001 202313", "Q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, tt.script...)
			assert.Contains(t, out, "Invalid input. Please try again.")
			assert.NotContains(t, out, "| 2023")
		})
	}
}

func TestShell_LowercaseCommandsAndTypes(t *testing.T) {
	out := runSession(t, "t", "20230601 AC001 d 5", "", "q")

	assert.Contains(t, out, "| 20230601 | 20230601-01 |    D |   5.00 |")
	assert.Contains(t, out, "Have a nice day!")
}

func TestShell_RuleReplacement(t *testing.T) {
	out := runSession(t, "I", "20230615 OLD 2.00", "20230615 NEW 2.50", "", "Q")

	assert.Contains(t, out, "| Date     | RuleId | Rate (%) |\n| 20230615 | NEW    |     2.50 |\n")
}

func TestShell_RuleScreenShowsCurrentTable(t *testing.T) {
	out := runSession(t, "I", "20230101 RULE01 1.95", "", "I", "", "Q")

	table := "| Date     | RuleId | Rate (%) |\n| 20230101 | RULE01 |     1.95 |\n"
	assert.Equal(t, 2, strings.Count(out, table))
}

func TestShell_EndOfInputExits(t *testing.T) {
	out, err := runSessionCtx(context.Background(), "T", "20230601 AC001 D 5")
	require.NoError(t, err)
	assert.Contains(t, out, "20230601-01")
	assert.NotContains(t, out, "Have a nice day!")
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSessionCtx(ctx, "Q")
	assert.ErrorIs(t, err, context.Canceled)
}
