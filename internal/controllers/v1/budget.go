package v1

import (
	"net/http"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
	}

	// Budget for a single category
	{
		r.OPTIONS("/:category", co.OptionsBudgetDetail)
		r.GET("/:category", co.GetBudget)
		r.PATCH("/:category", co.UpdateBudget)
	}
}

// bindCategory binds and validates the category URI parameter.
func bindCategory(c *gin.Context) (ledger.Category, error) {
	var uri URICategory
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", err
	}

	return ledger.ParseCategory(uri.Category)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			category	path	URICategory	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, err := bindCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List budgets
// @Description	Returns the budget for every category, including the spent and remaining amounts
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	snapshot := co.Ledger.Snapshot()

	data := make([]Budget, 0, len(ledger.Categories()))
	for _, category := range ledger.Categories() {
		data = append(data, newBudget(c, snapshot, category))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns the budget for a specific category
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Param			category	path	URICategory	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{category} [get]
func (co Controller) GetBudget(c *gin.Context) {
	category, err := bindCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, co.Ledger.Snapshot(), category)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Overwrites the spending limit for a category
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Param			category	path		URICategory		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{category} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	category, err := bindCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	err = co.Ledger.UpdateBudget(category, editable.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, co.Ledger.Snapshot(), category)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
