package ledger

import "github.com/shopspring/decimal"

// Budgets maps every category to its monthly spending limit.
// A well-formed budget map has an entry for each category in Categories().
type Budgets map[Category]decimal.Decimal

// DefaultBudgets returns the budget map used on first run and whenever no
// usable persisted budget exists.
func DefaultBudgets() Budgets {
	return Budgets{
		CategoryFood:          decimal.NewFromInt(300),
		CategoryTransport:     decimal.NewFromInt(150),
		CategoryEducation:     decimal.NewFromInt(200),
		CategoryEntertainment: decimal.NewFromInt(100),
		CategoryOther:         decimal.NewFromInt(100),
	}
}

// Clone returns an independent copy of the budget map.
func (b Budgets) Clone() Budgets {
	clone := make(Budgets, len(b))
	for category, amount := range b {
		clone[category] = amount
	}

	return clone
}

// Total returns the sum of all category limits.
func (b Budgets) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b {
		total = total.Add(amount)
	}

	return total
}
