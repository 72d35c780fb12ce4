package ledger

import "github.com/shopspring/decimal"

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// Accrue computes the interest the account earns over the period and posts it
// as a synthetic Interest record dated the last day of the month (empty id,
// balance updated). It returns the rounded amount.
//
// Each day accrues end-of-day balance x rate/100/365, where the rate is the
// one in effect that day (zero before the first rule). The daily figures are
// summed and rounded once to two decimals, half away from zero.
//
// Backdated records can make the date-ordered balance negative on days the
// recorded-order solvency check never saw. Such days accrue nothing, so the
// posted amount is never negative and cannot push the account below zero.
//
// Accrue is not idempotent: a second call for the same period posts a second
// interest record. Guarding against re-posting is the caller's concern.
func Accrue(a *Account, p Period, rules *RuleTable) decimal.Decimal {
	total := decimal.Zero
	for d := p.Start(); !d.After(p.End()); d = d.AddDays(1) {
		rate := rules.RateOn(d)
		if rate.IsZero() {
			continue
		}
		eod := a.BalanceAsOf(d)
		if !eod.IsPositive() {
			continue
		}
		total = total.Add(eod.Mul(rate).Div(hundred.Mul(daysPerYear)))
	}
	interest := total.Round(2)
	a.add(TransactionRecord{
		Date:    p.End(),
		Account: a.Number,
		Kind:    Interest,
		Amount:  interest,
	})
	return interest
}
