package cli

import (
	"fmt"
	"io"

	"github.com/bibbank/gic-ledger/internal/application/dto"
	"github.com/bibbank/gic-ledger/internal/domain/valueobject"
	"github.com/bibbank/gic-ledger/pkg/money"
)

func renderTransactions(w io.Writer, resp dto.AccountTransactionsResponse) {
	fmt.Fprintf(w, "Account: %s\n", resp.AccountID)
	fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount |")
	for _, t := range resp.Transactions {
		fmt.Fprintf(w, "| %s | %-11.11s | %4s | %6s |\n",
			valueobject.FormatDate(t.Date), t.ID, t.Kind, money.Format(t.Amount))
	}
}

func renderRules(w io.Writer, resp dto.InterestRulesResponse) {
	fmt.Fprintln(w, "Interest rules:")
	fmt.Fprintln(w, "| Date     | RuleId | Rate (%) |")
	for _, r := range resp.Rules {
		fmt.Fprintf(w, "| %s | %-6s | %8s |\n",
			valueobject.FormatDate(r.Date), r.RuleID, money.Format(r.RatePercent))
	}
}

func renderStatement(w io.Writer, resp dto.StatementResponse) {
	fmt.Fprintf(w, "Account: %s\n", resp.AccountID)
	fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount | Balance |")
	for _, l := range resp.Lines {
		fmt.Fprintf(w, "| %s | %-11.11s | %4s | %6s | %7s |\n",
			valueobject.FormatDate(l.Date), l.TransactionID, l.Kind, money.Format(l.Amount), money.Format(l.Balance))
	}
}
