// Package report implements the aggregation engine: pure, read-only
// derivations over a ledger snapshot. Nothing in this package mutates state,
// and all functions are total over well-formed snapshots.
package report

import (
	"strings"
	"time"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Selector selects either a single category or all of them.
type Selector struct {
	category ledger.Category
	all      bool
}

// All returns a Selector matching every category.
func All() Selector {
	return Selector{all: true}
}

// Only returns a Selector matching a single category.
func Only(category ledger.Category) Selector {
	return Selector{category: category}
}

// ParseSelector parses "all" or a category name into a Selector.
// An empty string selects all categories.
func ParseSelector(s string) (Selector, error) {
	if s == "" || s == "all" {
		return All(), nil
	}

	category, err := ledger.ParseCategory(s)
	if err != nil {
		return Selector{}, err
	}

	return Only(category), nil
}

func (s Selector) matches(e ledger.Expense) bool {
	return s.all || e.Category == s.category
}

// String returns "all" or the category name.
func (s Selector) String() string {
	if s.all {
		return "all"
	}

	return string(s.category)
}

// FilterByCategory returns the expenses matching the selector,
// preserving the snapshot's insertion order.
func FilterByCategory(snapshot ledger.Snapshot, selector Selector) []ledger.Expense {
	expenses := make([]ledger.Expense, 0, len(snapshot.Expenses))
	for _, expense := range snapshot.Expenses {
		if selector.matches(expense) {
			expenses = append(expenses, expense)
		}
	}

	return expenses
}

// FilterByDateRange returns the expenses whose date falls within
// [from, until], inclusive on both ends. A nil bound leaves that end of the
// range open; with both bounds nil, every expense matches. Expenses without
// a usable date only match the fully open range.
func FilterByDateRange(snapshot ledger.Snapshot, from, until *time.Time) []ledger.Expense {
	expenses := make([]ledger.Expense, 0, len(snapshot.Expenses))
	for _, expense := range snapshot.Expenses {
		if expense.Date.IsZero() && (from != nil || until != nil) {
			continue
		}

		if from != nil && expense.Date.Before(*from) {
			continue
		}

		if until != nil && expense.Date.After(*until) {
			continue
		}

		expenses = append(expenses, expense)
	}

	return expenses
}

// Search returns the expenses whose notes, category or payment method match
// the term. Matching is case-insensitive; the term may contain "*" as a
// wildcard and is otherwise matched as a substring. An empty term matches
// every expense.
func Search(snapshot ledger.Snapshot, term string) []ledger.Expense {
	pattern := "*" + strings.ToLower(term) + "*"

	expenses := make([]ledger.Expense, 0, len(snapshot.Expenses))
	for _, expense := range snapshot.Expenses {
		if glob.Glob(pattern, strings.ToLower(expense.Notes)) ||
			glob.Glob(pattern, strings.ToLower(string(expense.Category))) ||
			glob.Glob(pattern, strings.ToLower(string(expense.PaymentMethod))) {
			expenses = append(expenses, expense)
		}
	}

	return expenses
}

// TotalByCategory returns the sum of all expense amounts matching the
// selector. The total of an empty set is zero.
func TotalByCategory(snapshot ledger.Snapshot, selector Selector) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range snapshot.Expenses {
		if selector.matches(expense) {
			total = total.Add(expense.Amount)
		}
	}

	return total
}

// TotalBudget returns the sum of all category budget limits.
func TotalBudget(snapshot ledger.Snapshot) decimal.Decimal {
	return snapshot.Budgets.Total()
}

// BudgetRemaining returns the budget limit minus the total spent, for a
// single category or overall. The result is negative when the budget is
// overspent; that is a valid result, not an error.
func BudgetRemaining(snapshot ledger.Snapshot, selector Selector) decimal.Decimal {
	if selector.all {
		return TotalBudget(snapshot).Sub(TotalByCategory(snapshot, selector))
	}

	return snapshot.Budgets[selector.category].Sub(TotalByCategory(snapshot, selector))
}

// PercentSpent returns how much of a budget is spent, as a percentage
// clamped to [0, 100].
//
// A budget of zero has no meaningful percentage, so it is defined
// explicitly: 0 when nothing is spent, 100 otherwise.
func PercentSpent(budget, spent decimal.Decimal) int {
	if budget.IsZero() {
		if spent.IsZero() {
			return 0
		}

		return 100
	}

	percent := spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return int(percent)
}

// CategoryTotal is the total spent in one category.
type CategoryTotal struct {
	Category ledger.Category `json:"category" example:"food"`
	Total    decimal.Decimal `json:"total" example:"50.25"`
}

// GroupByCategory returns the total spent per category, with one entry for
// every category of the closed set in canonical order. Categories without
// expenses are included with a zero total so that chart legends stay stable.
func GroupByCategory(snapshot ledger.Snapshot) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(ledger.Categories()))
	for _, category := range ledger.Categories() {
		totals = append(totals, CategoryTotal{
			Category: category,
			Total:    TotalByCategory(snapshot, Only(category)),
		})
	}

	return totals
}

// AverageDailySpend returns the total spent in [from, until] divided by the
// number of days in the range. Ranges shorter than a day count as one day.
func AverageDailySpend(snapshot ledger.Snapshot, from, until time.Time) decimal.Decimal {
	days := int64(until.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	filtered := FilterByDateRange(snapshot, &from, &until)
	total := decimal.Zero
	for _, expense := range filtered {
		total = total.Add(expense.Amount)
	}

	return total.Div(decimal.NewFromInt(days)).Round(2)
}
