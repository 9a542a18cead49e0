package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/HarshadSelokar/campus-budget-buddy-app/internal/controllers/v1"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsBudgetList() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsBudgetDetail() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/budgets/food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/budgets/snacks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromFloat(50.25), Category: ledger.CategoryFood})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	suite.decodeResponse(&r, &response)

	suite.Require().Len(response.Data, 5, "one budget per category")

	// Canonical category order
	assert.Equal(suite.T(), ledger.CategoryFood, response.Data[0].Category)
	assert.Equal(suite.T(), ledger.CategoryTransport, response.Data[1].Category)
	assert.Equal(suite.T(), ledger.CategoryEducation, response.Data[2].Category)
	assert.Equal(suite.T(), ledger.CategoryEntertainment, response.Data[3].Category)
	assert.Equal(suite.T(), ledger.CategoryOther, response.Data[4].Category)

	food := response.Data[0]
	assert.True(suite.T(), food.Limit.Equal(decimal.NewFromInt(300)))
	assert.True(suite.T(), food.Spent.Equal(decimal.NewFromFloat(50.25)))
	assert.True(suite.T(), food.Remaining.Equal(decimal.NewFromFloat(249.75)))
	assert.Equal(suite.T(), 17, food.PercentSpent)
	assert.Equal(suite.T(), "http://example.com/v1/budgets/food", food.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/expenses?category=food", food.Links.Expenses)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets/transport", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	suite.decodeResponse(&r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), ledger.CategoryTransport, response.Data.Category)
	assert.True(suite.T(), response.Data.Limit.Equal(decimal.NewFromInt(150)))
	assert.True(suite.T(), response.Data.Spent.IsZero())
	assert.Equal(suite.T(), 0, response.Data.PercentSpent)
}

func (suite *TestSuiteStandard) TestGetBudgetUnknownCategory() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets/snacks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Error)
	assert.Contains(suite.T(), *response.Error, "the category is not one of the known categories")
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/budgets/food", v1.BudgetEditable{Amount: decimal.NewFromInt(500)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Data)
	assert.True(suite.T(), response.Data.Limit.Equal(decimal.NewFromInt(500)))

	// The update is visible on subsequent reads
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets/food", "")
	suite.decodeResponse(&r, &response)
	assert.True(suite.T(), response.Data.Limit.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestUpdateBudgetInvalid() {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Negative amount", "http://example.com/v1/budgets/food", v1.BudgetEditable{Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"Unknown category", "http://example.com/v1/budgets/snacks", v1.BudgetEditable{Amount: decimal.NewFromInt(100)}, http.StatusBadRequest},
		{"Empty body", "http://example.com/v1/budgets/food", "", http.StatusBadRequest},
		{"Broken body", "http://example.com/v1/budgets/food", `{ broken`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetOverspent() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(500), Category: ledger.CategoryFood})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets/food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	suite.decodeResponse(&r, &response)

	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromInt(-200)), "overspending results in a negative remaining amount")
	assert.Equal(suite.T(), 100, response.Data.PercentSpent, "percent spent is clamped to 100")
}
