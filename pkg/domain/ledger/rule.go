package ledger

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InterestRule is a dated annual percentage rate. It becomes eligible for
// use from its effective date until a later-dated rule supersedes it.
type InterestRule struct {
	EffectiveDate civil.Date
	ID            string
	Rate          decimal.Decimal
}

// RuleTable is the ordered registry of interest rules, ascending by
// effective date, with at most one rule per date.
type RuleTable struct {
	rules []InterestRule
}

// NewRuleTable returns an empty rule table.
func NewRuleTable() *RuleTable {
	return &RuleTable{}
}

// Upsert inserts r, replacing any existing rule with the same effective date,
// and keeps the table sorted.
func (t *RuleTable) Upsert(r InterestRule) {
	kept := t.rules[:0]
	for _, existing := range t.rules {
		if existing.EffectiveDate != r.EffectiveDate {
			kept = append(kept, existing)
		}
	}
	t.rules = append(kept, r)
	sort.Slice(t.rules, func(i, j int) bool {
		return t.rules[i].EffectiveDate.Before(t.rules[j].EffectiveDate)
	})
}

// RateOn returns the annual rate in effect on day d: the rate of the latest
// rule whose effective date is on or before d, or zero when no rule applies
// yet.
func (t *RuleTable) RateOn(d civil.Date) decimal.Decimal {
	rate := decimal.Zero
	for _, r := range t.rules {
		if r.EffectiveDate.After(d) {
			break
		}
		rate = r.Rate
	}
	return rate
}

// Rules returns a copy of the table in ascending date order.
func (t *RuleTable) Rules() []InterestRule {
	out := make([]InterestRule, len(t.rules))
	copy(out, t.rules)
	return out
}
