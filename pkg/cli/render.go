package cli

import (
	"fmt"
	"io"

	domain "github.com/awesomegic/bankledger/pkg/domain/ledger"
)

func renderAccount(w io.Writer, acct *domain.Account) {
	fmt.Fprintf(w, "Account: %s\n", acct.Number)
	fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount |")
	for _, txn := range acct.Transactions {
		fmt.Fprintf(w, "| %-8s | %-11s | %-4s | %6s |\n",
			domain.FormatDate(txn.Date), txn.ID, txn.Kind, txn.Amount.StringFixed(2))
	}
}

func renderRules(w io.Writer, rules []domain.InterestRule) {
	fmt.Fprintln(w, "Interest rules:")
	fmt.Fprintln(w, "| Date     | RuleId | Rate (%) |")
	for _, rule := range rules {
		fmt.Fprintf(w, "| %-8s | %-6s | %8s |\n",
			domain.FormatDate(rule.EffectiveDate), rule.ID, rule.Rate.StringFixed(2))
	}
}

func renderStatement(w io.Writer, account string, rows []domain.StatementRow) {
	fmt.Fprintf(w, "Account: %s\n", account)
	fmt.Fprintln(w, "| Date     | Txn Id      | Type | Amount | Balance |")
	for _, row := range rows {
		fmt.Fprintf(w, "| %-8s | %-11s | %-4s | %6s | %7s |\n",
			domain.FormatDate(row.Date), row.ID, row.Kind,
			row.Amount.StringFixed(2), row.Balance.StringFixed(2))
	}
}
