package v1

import (
	"net/http"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the API root with
// the RouterGroup that is passed.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetV1)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.OptionsV1)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Expenses  string `json:"expenses" example:"https://example.com/api/v1/expenses"`   // URL of expense list endpoint
	Budgets   string `json:"budgets" example:"https://example.com/api/v1/budgets"`     // URL of budget list endpoint
	Dashboard string `json:"dashboard" example:"https://example.com/api/v1/dashboard"` // URL of the dashboard endpoint
	Reports   string `json:"reports" example:"https://example.com/api/v1/reports"`     // URL of the report endpoint
	Demo      string `json:"demo" example:"https://example.com/api/v1/demo"`           // URL of the demo data endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co Controller) GetV1(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses:  url + "/v1/expenses",
			Budgets:   url + "/v1/budgets",
			Dashboard: url + "/v1/dashboard",
			Reports:   url + "/v1/reports",
			Demo:      url + "/v1/demo",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all expenses and restores the default budgets
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	co.Ledger.Reset()
	c.JSON(http.StatusNoContent, nil)
}
