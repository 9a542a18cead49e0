package v1

import (
	"net/http"
	"sort"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// The number of expenses shown in the dashboard's recent list.
const recentExpenseCount = 5

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

type Dashboard struct {
	TotalBudget  decimal.Decimal `json:"totalBudget" example:"850"`  // Sum of all category limits
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"50.25"` // Sum of all expenses
	Remaining    decimal.Decimal `json:"remaining" example:"799.75"` // Total budget minus total spent, negative when overspent
	PercentSpent int             `json:"percentSpent" example:"6"`   // Spent share of the total budget, clamped to [0, 100]

	Categories     []Budget  `json:"categories"`     // Per-category budget status
	RecentExpenses []Expense `json:"recentExpenses"` // The most recent expenses, newest first
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`  // Data for the dashboard
	Error *string    `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the overall budget status and the most recent expenses
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	snapshot := co.Ledger.Snapshot()

	totalBudget := report.TotalBudget(snapshot)
	totalSpent := report.TotalByCategory(snapshot, report.All())

	categories := make([]Budget, 0, len(ledger.Categories()))
	for _, category := range ledger.Categories() {
		categories = append(categories, newBudget(c, snapshot, category))
	}

	data := Dashboard{
		TotalBudget:    totalBudget,
		TotalSpent:     totalSpent,
		Remaining:      report.BudgetRemaining(snapshot, report.All()),
		PercentSpent:   report.PercentSpent(totalBudget, totalSpent),
		Categories:     categories,
		RecentExpenses: co.recentExpenses(c, snapshot),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

// recentExpenses returns the newest expenses by date, newest first.
func (co Controller) recentExpenses(c *gin.Context, snapshot ledger.Snapshot) []Expense {
	expenses := make([]ledger.Expense, len(snapshot.Expenses))
	copy(expenses, snapshot.Expenses)

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date.Time())
	})

	if len(expenses) > recentExpenseCount {
		expenses = expenses[:recentExpenseCount]
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	return data
}
