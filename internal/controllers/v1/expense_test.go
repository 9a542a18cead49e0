package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/HarshadSelokar/campus-budget-buddy-app/internal/controllers/v1"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExpenseList() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/expenses/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	created := suite.createTestExpense(v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(10),
		Category: ledger.CategoryFood,
	})

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	response := suite.createTestExpense(v1.ExpenseEditable{
		Amount:        decimal.NewFromFloat(12.5),
		Category:      ledger.CategoryFood,
		Date:          suite.date("2024-03-21"),
		PaymentMethod: ledger.PaymentMethodCash,
		Notes:         "Lunch at the cafeteria",
	})

	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	data := response.Data[0].Data
	assert.NotEqual(suite.T(), uuid.Nil, data.ID)
	assert.True(suite.T(), data.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(suite.T(), ledger.CategoryFood, data.Category)
	assert.Equal(suite.T(), "Lunch at the cafeteria", data.Notes)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/expenses/%s", data.ID), data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name     string
		editable v1.ExpenseEditable
		expected string
	}{
		{"Negative amount", v1.ExpenseEditable{Amount: decimal.NewFromInt(-5), Category: ledger.CategoryFood}, "the amount must not be negative"},
		{"Unknown category", v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: "snacks"}, "the category is not one of the known categories"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTestExpense(tt.editable, http.StatusBadRequest)

			suite.Require().Len(response.Data, 1)
			suite.Require().NotNil(response.Data[0].Error)
			assert.Contains(t, *response.Data[0].Error, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpensesPartialSuccess() {
	editables := []v1.ExpenseEditable{
		{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood},
		{Amount: decimal.NewFromInt(-5), Category: ledger.CategoryFood},
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/expenses", editables)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	suite.decodeResponse(&r, &response)

	suite.Require().Len(response.Data, 2)
	assert.Nil(suite.T(), response.Data[0].Error, "the valid expense is created")
	assert.NotNil(suite.T(), response.Data[1].Error)

	// The valid expense is in the ledger
	list := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var listResponse v1.ExpenseListResponse
	suite.decodeResponse(&list, &listResponse)
	assert.Len(suite.T(), listResponse.Data, 1)
}

func (suite *TestSuiteStandard) TestCreateExpenseEmptyBody() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Error)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateExpenseBrokenBody() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/expenses", `{ broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood, Date: suite.date("2024-03-01")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Category: ledger.CategoryTransport, Date: suite.date("2024-03-15")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(15), Category: ledger.CategoryFood, Date: suite.date("2024-03-31"), Notes: "Birthday dinner"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"Category all", "category=all", 3},
		{"Category food", "category=food", 2},
		{"Category without expenses", "category=other", 0},
		{"Date range", "from=2024-03-01&until=2024-03-15", 2},
		{"Date range inclusive bounds", "from=2024-03-15&until=2024-03-15", 1},
		{"Search", "search=birthday", 1},
		{"Search category", "search=transport", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"Negative limit returns all", "limit=-1", 3},
		{"Combined", "category=food&from=2024-03-15", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesPagination() {
	for i := 0; i < 5; i++ {
		suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(int64(i + 1)), Category: ledger.CategoryFood})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	suite.decodeResponse(&r, &response)

	suite.Require().NotNil(response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), 5, response.Pagination.Total)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown category", "category=snacks"},
		{"Broken from date", "from=yesterday"},
		{"Broken until date", "until=2024-13-01"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	created := suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	suite.decodeResponse(&r, &response)
	assert.Equal(suite.T(), created.Data[0].Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidUUID() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Error)
	assert.Equal(suite.T(), "the specified resource ID is not a valid UUID", *response.Error)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	created := suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Category: ledger.CategoryFood})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, created.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpenseIsIdempotent() {
	// Deleting an expense that does not exist succeeds
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestDeleteExpenseInvalidUUID() {
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/expenses/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
