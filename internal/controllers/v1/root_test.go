package v1_test

import (
	"net/http"

	v1 "github.com/HarshadSelokar/campus-budget-buddy-app/internal/controllers/v1"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsV1() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.V1Response
	suite.decodeResponse(&r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/expenses", response.Links.Expenses)
	assert.Equal(suite.T(), "http://example.com/v1/budgets", response.Links.Budgets)
	assert.Equal(suite.T(), "http://example.com/v1/dashboard", response.Links.Dashboard)
	assert.Equal(suite.T(), "http://example.com/v1/reports", response.Links.Reports)
	assert.Equal(suite.T(), "http://example.com/v1/demo", response.Links.Demo)
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/budgets/food", v1.BudgetEditable{Amount: decimal.NewFromInt(999)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// All expenses are gone
	list := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var listResponse v1.ExpenseListResponse
	suite.decodeResponse(&list, &listResponse)
	assert.Empty(suite.T(), listResponse.Data)

	// The budgets are back at their defaults
	budget := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets/food", "")
	var budgetResponse v1.BudgetResponse
	suite.decodeResponse(&budget, &budgetResponse)
	assert.True(suite.T(), budgetResponse.Data.Limit.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestCleanupWithoutConfirmation() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood})

	for _, query := range []string{"", "?confirm=yes"} {
		r := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	// Nothing was deleted
	list := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var listResponse v1.ExpenseListResponse
	suite.decodeResponse(&list, &listResponse)
	assert.Len(suite.T(), listResponse.Data, 1)
}
