// Package cli implements the interactive banking menu on top of the ledger
// service. The runner reads from an io.Reader and writes to an io.Writer so
// sessions can be scripted in tests.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	ledgersvc "github.com/awesomegic/bankledger/pkg/service/ledger"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

// Runner drives the interactive menu loop.
type Runner struct {
	svc *ledgersvc.Service
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

func New(svc *ledgersvc.Service, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
}

// Run shows the main menu until the user quits or input is exhausted.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	for {
		r.printMenu()
		line, ok := r.readLine()
		if !ok {
			return r.in.Err()
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "I":
			r.inputTransactions(ctx)
		case "D":
			r.defineInterestRules(ctx)
		case "P":
			r.printStatement(ctx)
		case "Q":
			fmt.Fprintln(r.out, "Thank you for banking with AwesomeGIC Bank.")
			fmt.Fprintln(r.out, "Have a nice day!")
			return nil
		case "":
			continue
		default:
			errorColor.Fprintln(r.out, "Invalid option, please try again.")
		}
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Is there anything else you'd like to do?")
	}
}

func (r *Runner) printMenu() {
	promptColor.Fprintln(r.out, "[I]nput transactions")
	promptColor.Fprintln(r.out, "[D]efine interest rules")
	promptColor.Fprintln(r.out, "[P]rint statement")
	promptColor.Fprintln(r.out, "[Q]uit")
	fmt.Fprint(r.out, "> ")
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

func (r *Runner) inputTransactions(ctx context.Context) {
	for {
		promptColor.Fprintln(r.out, "Please enter transaction details in <Date>|<Account>|<Type>|<Amount> format")
		promptColor.Fprintln(r.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(r.out, "> ")
		line, ok := r.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		input, err := parseTransactionLine(line)
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		acct, err := r.svc.RecordTransaction(ctx, input.account, input.date, input.kind, input.amount)
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		renderAccount(r.out, acct)
	}
}

func (r *Runner) defineInterestRules(ctx context.Context) {
	for {
		promptColor.Fprintln(r.out, "Please enter interest rules details in <Date>|<RuleId>|<Rate in %> format")
		promptColor.Fprintln(r.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(r.out, "> ")
		line, ok := r.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		input, err := parseRuleLine(line)
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		rules, err := r.svc.DefineInterestRule(ctx, input.date, input.ruleID, input.rate)
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		renderRules(r.out, rules)
	}
}

func (r *Runner) printStatement(ctx context.Context) {
	for {
		promptColor.Fprintln(r.out, "Please enter account and month to generate the statement <Account>|<Year><Month>")
		promptColor.Fprintln(r.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(r.out, "> ")
		line, ok := r.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		input, err := parseStatementLine(line, r.now())
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		rows, err := r.svc.Statement(ctx, input.account, input.period)
		if err != nil {
			errorColor.Fprintln(r.out, err.Error())
			continue
		}
		renderStatement(r.out, input.account, rows)
	}
}
