package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	domain "github.com/awesomegic/bankledger/pkg/domain/ledger"
)

// Adapter-level parse failures. The messages are shown verbatim to the user
// before re-prompting.
var (
	errTransactionFormat = errors.New("invalid input format, expected <Date>|<Account>|<Type>|<Amount>")
	errRuleFormat        = errors.New("invalid input format, expected <Date>|<RuleId>|<Rate in %>")
	errStatementFormat   = errors.New("invalid input format, expected <Account>|<Month>")
)

type transactionInput struct {
	account string
	date    civil.Date
	kind    domain.Kind
	amount  decimal.Decimal
}

func parseTransactionLine(line string) (transactionInput, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return transactionInput{}, errTransactionFormat
	}

	date, err := domain.ParseDate(strings.TrimSpace(parts[0]))
	if err != nil {
		return transactionInput{}, err
	}
	account := strings.TrimSpace(parts[1])
	if account == "" {
		return transactionInput{}, domain.ErrEmptyAccountNumber
	}
	kind, err := domain.ParseKind(strings.TrimSpace(parts[2]))
	if err != nil {
		return transactionInput{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		return transactionInput{}, fmt.Errorf("invalid amount %q", strings.TrimSpace(parts[3]))
	}

	return transactionInput{account: account, date: date, kind: kind, amount: amount}, nil
}

type ruleInput struct {
	date   civil.Date
	ruleID string
	rate   decimal.Decimal
}

func parseRuleLine(line string) (ruleInput, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return ruleInput{}, errRuleFormat
	}

	date, err := domain.ParseDate(strings.TrimSpace(parts[0]))
	if err != nil {
		return ruleInput{}, err
	}
	ruleID := strings.TrimSpace(parts[1])
	if ruleID == "" {
		return ruleInput{}, domain.ErrEmptyRuleID
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return ruleInput{}, fmt.Errorf("invalid rate %q", strings.TrimSpace(parts[2]))
	}

	return ruleInput{date: date, ruleID: ruleID, rate: rate}, nil
}

type statementInput struct {
	account string
	period  domain.Period
}

// parseStatementLine accepts <Account>|<YYYYMM>, or a bare <MM> resolved
// against the current year.
func parseStatementLine(line string, now time.Time) (statementInput, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 2 {
		return statementInput{}, errStatementFormat
	}

	account := strings.TrimSpace(parts[0])
	if account == "" {
		return statementInput{}, domain.ErrEmptyAccountNumber
	}

	monthToken := strings.TrimSpace(parts[1])
	switch len(monthToken) {
	case 6:
		period, err := domain.ParsePeriod(monthToken)
		if err != nil {
			return statementInput{}, err
		}
		return statementInput{account: account, period: period}, nil
	case 1, 2:
		month, err := strconv.Atoi(monthToken)
		if err != nil || month < 1 || month > 12 {
			return statementInput{}, fmt.Errorf("invalid month %q", monthToken)
		}
		return statementInput{
			account: account,
			period:  domain.Period{Year: now.Year(), Month: time.Month(month)},
		}, nil
	default:
		return statementInput{}, fmt.Errorf("invalid month %q", monthToken)
	}
}
