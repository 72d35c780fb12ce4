package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/bankledger/pkg/domain/ledger"
)

func TestAccrueConstantBalanceSingleRule(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230601"), "RULE02", dec("1.50"))
	require.NoError(t, err)
	_, err = l.RecordTransaction("AC001", date(t, "20230601"), ledger.Deposit, dec("150.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	// 150.00 x 1.5/100/365 x 30 days = 0.1849... rounds to 0.18.
	interest := rows[len(rows)-1]
	assert.Equal(t, ledger.Interest, interest.Kind)
	assert.True(t, interest.Amount.Equal(dec("0.18")), "interest = %s", interest.Amount)
	assert.Equal(t, date(t, "20230630"), interest.Date)
}

func TestAccrueProratesAcrossRuleAndBalanceChanges(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230601"), "RULE01", dec("2.20"))
	require.NoError(t, err)
	_, err = l.DefineRule(date(t, "20230615"), "RULE02", dec("1.90"))
	require.NoError(t, err)

	_, err = l.RecordTransaction("AC001", date(t, "20230601"), ledger.Deposit, dec("100.00"))
	require.NoError(t, err)
	_, err = l.RecordTransaction("AC001", date(t, "20230626"), ledger.Deposit, dec("100.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	// 100 @ 2.2% for 14 days, 100 @ 1.9% for 11 days, 200 @ 1.9% for 5 days,
	// all over 365: 0.1936... rounds to 0.19.
	interest := rows[len(rows)-1]
	assert.True(t, interest.Amount.Equal(dec("0.19")), "interest = %s", interest.Amount)
}

func TestAccrueWithoutAnyRulePostsZero(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.RecordTransaction("AC001", date(t, "20230601"), ledger.Deposit, dec("500.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	interest := rows[1]
	assert.Equal(t, ledger.Interest, interest.Kind)
	assert.True(t, interest.Amount.IsZero(), "interest = %s", interest.Amount)

	// The zero row is still posted, mirroring the statement output.
	acct, ok := l.Account("AC001")
	require.True(t, ok)
	assert.Len(t, acct.Transactions, 2)
}

func TestAccrueRuleDatedInEarlierMonthStillApplies(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230101"), "RULE01", dec("1.50"))
	require.NoError(t, err)
	_, err = l.RecordTransaction("AC001", date(t, "20230601"), ledger.Deposit, dec("150.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	interest := rows[len(rows)-1]
	assert.True(t, interest.Amount.Equal(dec("0.18")), "interest = %s", interest.Amount)
}

func TestAccrueRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230601"), "RULE01", dec("1.00"))
	require.NoError(t, err)
	// Balance exists only on the last day: 182.50 x 1/100/365 = 0.005 exactly.
	_, err = l.RecordTransaction("AC001", date(t, "20230630"), ledger.Deposit, dec("182.50"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	interest := rows[len(rows)-1]
	assert.True(t, interest.Amount.Equal(dec("0.01")), "0.005 must round up, got %s", interest.Amount)
}

func TestAccrueSkipsDaysDrivenNegativeByBackdating(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230101"), "RULE01", dec("10.00"))
	require.NoError(t, err)

	// The withdrawal is recorded after the deposit but dated before it, so
	// the date-ordered balance is -100 for Jun 1-27 and 0 afterwards.
	_, err = l.RecordTransaction("AC001", date(t, "20230628"), ledger.Deposit, dec("100.00"))
	require.NoError(t, err)
	_, err = l.RecordTransaction("AC001", date(t, "20230601"), ledger.Withdrawal, dec("100.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	interest := rows[len(rows)-1]
	assert.True(t, interest.Amount.IsZero(), "interest = %s", interest.Amount)

	acct, ok := l.Account("AC001")
	require.True(t, ok)
	assert.False(t, acct.Balance.IsNegative(), "balance = %s", acct.Balance)
}

func TestAccruePositiveDaysStillEarnAroundBackdatedWithdrawal(t *testing.T) {
	t.Parallel()
	l := ledger.New()

	_, err := l.DefineRule(date(t, "20230101"), "RULE01", dec("10.00"))
	require.NoError(t, err)

	_, err = l.RecordTransaction("AC001", date(t, "20230610"), ledger.Deposit, dec("200.00"))
	require.NoError(t, err)
	_, err = l.RecordTransaction("AC001", date(t, "20230601"), ledger.Withdrawal, dec("150.00"))
	require.NoError(t, err)

	rows, err := l.Statement("AC001", ledger.Period{Year: 2023, Month: 6})
	require.NoError(t, err)

	// Jun 1-9 the date-ordered balance is -150 and earns nothing; Jun 10-30
	// it is 50: 50 x 10/100/365 x 21 days = 0.2876... rounds to 0.29.
	interest := rows[len(rows)-1]
	assert.True(t, interest.Amount.Equal(dec("0.29")), "interest = %s", interest.Amount)
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	p := ledger.Period{Year: 2024, Month: 2}
	assert.Equal(t, date(t, "20240201"), p.Start())
	assert.Equal(t, date(t, "20240229"), p.End(), "leap February")
	assert.Equal(t, 29, p.Days())
	assert.True(t, p.Contains(date(t, "20240215")))
	assert.False(t, p.Contains(date(t, "20240301")))

	parsed, err := ledger.ParsePeriod("202406")
	require.NoError(t, err)
	assert.Equal(t, ledger.Period{Year: 2024, Month: 6}, parsed)
	assert.Equal(t, "202406", parsed.String())

	_, err = ledger.ParsePeriod("2024-06")
	assert.Error(t, err)

	d, err := ledger.ParseDate("20230630")
	require.NoError(t, err)
	assert.Equal(t, "20230630", ledger.FormatDate(d))

	_, err = ledger.ParseDate("20231341")
	assert.Error(t, err)
}
