package v1

import (
	"fmt"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	Amount        decimal.Decimal      `json:"amount" example:"12.5"`                            // Amount spent
	Category      ledger.Category      `json:"category" example:"food"`                          // Category for the expense
	Date          types.Date           `json:"date" example:"2024-01-31"`                        // Date the expense occurred
	PaymentMethod ledger.PaymentMethod `json:"paymentMethod" example:"cash"`                     // How the expense was paid
	Notes         string               `json:"notes" example:"Lunch at the cafeteria" default:""` // Notes about the expense
}

func (editable ExpenseEditable) model() ledger.NewExpense {
	return ledger.NewExpense{
		Amount:        editable.Amount,
		Category:      editable.Category,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		Notes:         editable.Notes,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"` // The expense itself
}

type Expense struct {
	ledger.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model ledger.Expense) Expense {
	url := c.GetString(httputil.ContextURL)

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseQueryFilter struct {
	Category      string `form:"category"`           // Filter by category or "all"
	From          string `form:"from"`               // Earliest date to include, inclusive
	Until         string `form:"until"`              // Latest date to include, inclusive
	Search        string `form:"search"`             // Search for this text in notes, category and payment method
	PaymentMethod string `form:"paymentMethod"`      // Filter by payment method
	Offset        uint   `form:"offset"`             // The offset of the first expense returned. Defaults to 0.
	Limit         int    `form:"limit,default=50"`   // Maximum number of expenses to return. Defaults to 50.
}
