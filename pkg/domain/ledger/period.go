package ledger

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Canonical text forms used at the adapter boundary. The date layout also
// appears inside transaction ids, so the domain owns both.
const (
	dateLayout   = "20060102"
	periodLayout = "200601"
)

// Period identifies one calendar month, the unit over which statements are
// produced and interest is accrued.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing the given date.
func PeriodOf(d civil.Date) Period {
	return Period{Year: d.Year, Month: d.Month}
}

// ParsePeriod parses the YYYYMM text form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns the first day of the month.
func (p Period) Start() civil.Date {
	return civil.Date{Year: p.Year, Month: p.Month, Day: 1}
}

// End returns the last day of the month.
func (p Period) End() civil.Date {
	// Day zero of the following month normalizes to the last day of p.
	t := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return civil.DateOf(t)
}

// Days returns the number of calendar days in the month.
func (p Period) Days() int {
	return p.End().Day
}

// Contains reports whether d falls inside the month.
func (p Period) Contains(d civil.Date) bool {
	return d.Year == p.Year && d.Month == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d%02d", p.Year, p.Month)
}

// ParseDate parses the canonical YYYYMMDD text form into a calendar date.
func ParseDate(s string) (civil.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return civil.DateOf(t), nil
}

// FormatDate renders a calendar date in the canonical YYYYMMDD text form.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}
