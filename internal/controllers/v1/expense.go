package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/report"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// parseDateBound parses an optional date query parameter.
func parseDateBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	date, err := types.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", httputil.ErrInvalidDate, s)
	}

	t := date.Time()
	return &t, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_, err = co.Ledger.GetExpense(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create expenses
// @Description	Creates new expenses
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense, err := co.Ledger.AddExpense(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category		query	string	false	"Filter by category or 'all'"
// @Param			from			query	string	false	"Earliest date to include, inclusive"
// @Param			until			query	string	false	"Latest date to include, inclusive"
// @Param			search			query	string	false	"Search for this text in notes, category and payment method"
// @Param			paymentMethod	query	string	false	"Filter by payment method"
// @Param			offset			query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of expenses to return. Defaults to 50."
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	selector, err := report.ParseSelector(filter.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	from, err := parseDateBound(filter.From)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	until, err := parseDateBound(filter.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	snapshot := co.Ledger.Snapshot()
	snapshot.Expenses = report.FilterByCategory(snapshot, selector)

	if from != nil || until != nil {
		snapshot.Expenses = report.FilterByDateRange(snapshot, from, until)
	}

	if filter.Search != "" {
		snapshot.Expenses = report.Search(snapshot, filter.Search)
	}

	if filter.PaymentMethod != "" {
		matching := make([]ledger.Expense, 0, len(snapshot.Expenses))
		for _, expense := range snapshot.Expenses {
			if expense.PaymentMethod == ledger.PaymentMethod(filter.PaymentMethod) {
				matching = append(matching, expense)
			}
		}
		snapshot.Expenses = matching
	}

	total := len(snapshot.Expenses)

	// Apply offset and limit. A negative limit returns all
	// remaining expenses.
	expenses := snapshot.Expenses
	if int(filter.Offset) >= len(expenses) {
		expenses = nil
	} else {
		expenses = expenses[filter.Offset:]
	}

	if filter.Limit >= 0 && filter.Limit < len(expenses) {
		expenses = expenses[:filter.Limit]
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Ledger.GetExpense(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Deleting an ID that does not exist is a no-op and succeeds.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_ = co.Ledger.DeleteExpense(uri.ID.UUID)
	c.JSON(http.StatusNoContent, nil)
}
