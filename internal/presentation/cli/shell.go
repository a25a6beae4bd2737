package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bibbank/gic-ledger/internal/application/usecase"
	"github.com/bibbank/gic-ledger/internal/domain/model"
)

const (
	menuText = `Welcome to AwesomeGIC Bank! What would you like to do?
[T] Input transactions
[I] Define interest rules
[P] Print statement
[Q] Quit
`
	prompt       = "> "
	goodbyeText  = "Thank you for banking with AwesomeGIC Bank.\nHave a nice day!"
	invalidInput = "Invalid input. Please try again."
)

// Shell is the interactive menu driving the ledger use cases from a line-oriented reader.
type Shell struct {
	recordTransaction  *usecase.RecordTransaction
	listTransactions   *usecase.ListTransactions
	defineInterestRule *usecase.DefineInterestRule
	listInterestRules  *usecase.ListInterestRules
	generateStatement  *usecase.GenerateStatement

	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewShell creates a new Shell reading commands from in and writing tables to out.
func NewShell(
	recordTransaction *usecase.RecordTransaction,
	listTransactions *usecase.ListTransactions,
	defineInterestRule *usecase.DefineInterestRule,
	listInterestRules *usecase.ListInterestRules,
	generateStatement *usecase.GenerateStatement,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Shell {
	return &Shell{
		recordTransaction:  recordTransaction,
		listTransactions:   listTransactions,
		defineInterestRule: defineInterestRule,
		listInterestRules:  listInterestRules,
		generateStatement:  generateStatement,
		in:                 bufio.NewScanner(in),
		out:                out,
		logger:             logger,
	}
}

// Run loops over the main menu until the user quits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menuText)
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			s.inputTransactions(ctx)
		case "I":
			s.defineInterestRules(ctx)
		case "P":
			s.printStatement(ctx)
		case "Q":
			fmt.Fprintln(s.out, goodbyeText)
			return nil
		default:
			fmt.Fprintln(s.out, invalidInput)
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) inputTransactions(ctx context.Context) {
	fmt.Fprintln(s.out, "Please enter transaction details in <Date> <Account> <Type> <Amount> format")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")

	for {
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		req, err := parseTransaction(line)
		if err != nil {
			s.logger.DebugContext(ctx, "unparseable transaction", "input", line, "error", err)
			fmt.Fprintln(s.out, invalidInput)
			continue
		}

		resp, err := s.recordTransaction.Execute(ctx, req)
		if err != nil {
			s.logger.WarnContext(ctx, "transaction rejected", "account_id", req.AccountID, "error", err)
			fmt.Fprintln(s.out, transactionFailure(err))

			resp, err = s.listTransactions.Execute(ctx, req.AccountID)
			if err != nil {
				continue
			}
		}
		renderTransactions(s.out, resp)
	}
}

func transactionFailure(err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Transaction failed due to insufficient balance or invalid first transaction."
	case errors.Is(err, model.ErrInvalidAmount), errors.Is(err, model.ErrInvalidKind), errors.Is(err, model.ErrInvalidDate):
		return invalidInput
	default:
		return "Transaction failed. Please try again."
	}
}

func (s *Shell) defineInterestRules(ctx context.Context) {
	// Show the table in force before asking for changes.
	if current, err := s.listInterestRules.Execute(ctx); err == nil && len(current.Rules) > 0 {
		renderRules(s.out, current)
	}
	fmt.Fprintln(s.out, "Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")

	for {
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		req, err := parseInterestRule(line)
		if err != nil {
			s.logger.DebugContext(ctx, "unparseable interest rule", "input", line, "error", err)
			fmt.Fprintln(s.out, invalidInput)
			continue
		}

		resp, err := s.defineInterestRule.Execute(ctx, req)
		if err != nil {
			s.logger.WarnContext(ctx, "interest rule rejected", "rule_id", req.RuleID, "error", err)
			fmt.Fprintln(s.out, invalidInput)
			continue
		}
		renderRules(s.out, resp)
	}
}

func (s *Shell) printStatement(ctx context.Context) {
	fmt.Fprintln(s.out, "Please enter account and month to generate the statement <Account> <Year><Month>")
	fmt.Fprintln(s.out, "(or enter blank to go back to main menu):")

	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	req, err := parseStatement(line)
	if err != nil {
		s.logger.DebugContext(ctx, "unparseable statement request", "input", line, "error", err)
		fmt.Fprintln(s.out, invalidInput)
		return
	}

	resp, err := s.generateStatement.Execute(ctx, req)
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		fmt.Fprintln(s.out, "Account not found.")
	case err != nil:
		s.logger.ErrorContext(ctx, "statement failed", "account_id", req.AccountID, "period", req.Period.String(), "error", err)
		fmt.Fprintln(s.out, "Statement could not be generated. Please try again.")
	default:
		renderStatement(s.out, resp)
	}
}
