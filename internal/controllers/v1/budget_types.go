package v1

import (
	"fmt"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a budget
type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"300"` // The spending limit for the category
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/food"`               // The budget itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=food"` // Expenses for this category
}

type Budget struct {
	Category ledger.Category `json:"category" example:"food"` // Category the budget applies to
	Limit    decimal.Decimal `json:"limit" example:"300"`     // The spending limit
	Links    BudgetLinks     `json:"links"`

	// These fields are computed
	Spent        decimal.Decimal `json:"spent" example:"50.25"`      // Total spent in the category
	Remaining    decimal.Decimal `json:"remaining" example:"249.75"` // Limit minus spent, negative when overspent
	PercentSpent int             `json:"percentSpent" example:"17"`  // Spent share of the limit, clamped to [0, 100]
}

func newBudget(c *gin.Context, snapshot ledger.Snapshot, category ledger.Category) Budget {
	url := c.GetString(httputil.ContextURL)

	limit := snapshot.Budgets[category]
	spent := report.TotalByCategory(snapshot, report.Only(category))

	return Budget{
		Category:     category,
		Limit:        limit,
		Spent:        spent,
		Remaining:    report.BudgetRemaining(snapshot, report.Only(category)),
		PercentSpent: report.PercentSpent(limit, spent),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, category),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, category),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                             // Data for the budget
	Error *string `json:"error" example:"the category is not one of the known categories"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                             // One budget per category
	Error *string  `json:"error" example:"the category is not one of the known categories"` // The error, if any occurred
}
