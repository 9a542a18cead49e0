package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/HarshadSelokar/campus-budget-buddy-app/internal/controllers/v1"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/report"
	"github.com/HarshadSelokar/campus-budget-buddy-app/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsReport() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetReport() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Category: ledger.CategoryFood, Date: suite.date("2024-03-01")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(20), Category: ledger.CategoryTransport, Date: suite.date("2024-03-01")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(30), Category: ledger.CategoryFood, Date: suite.date("2024-03-03")})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	suite.decodeResponse(&r, &response)

	data := response.Data
	suite.Require().NotNil(data)

	assert.Equal(suite.T(), report.GranularityDay, data.Granularity)
	assert.True(suite.T(), data.TotalSpent.Equal(decimal.NewFromInt(60)))
	assert.Nil(suite.T(), data.AverageDailySpend, "the average needs both range bounds")

	suite.Require().Len(data.Timeline, 2)
	assert.Equal(suite.T(), "2024-03-01", data.Timeline[0].Label)
	assert.True(suite.T(), data.Timeline[0].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(suite.T(), "2024-03-03", data.Timeline[1].Label)

	suite.Require().Len(data.Categories, 5)
	assert.True(suite.T(), data.Categories[0].Total.Equal(decimal.NewFromInt(40)))
}

func (suite *TestSuiteStandard) TestGetReportWithRange() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Category: ledger.CategoryFood, Date: suite.date("2024-03-01")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(20), Category: ledger.CategoryFood, Date: suite.date("2024-03-03")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(99), Category: ledger.CategoryFood, Date: suite.date("2024-04-01")})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/reports?from=2024-03-01&until=2024-03-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	suite.decodeResponse(&r, &response)

	data := response.Data
	assert.True(suite.T(), data.TotalSpent.Equal(decimal.NewFromInt(30)), "expenses outside the range are excluded")

	suite.Require().NotNil(data.AverageDailySpend)
	assert.True(suite.T(), data.AverageDailySpend.Equal(decimal.NewFromInt(10)), "30 over 3 days")
}

func (suite *TestSuiteStandard) TestGetReportGranularities() {
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Category: ledger.CategoryFood, Date: suite.date("2024-02-29")})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(20), Category: ledger.CategoryFood, Date: suite.date("2024-03-01")})

	tests := []struct {
		granularity string
		buckets     int
		firstLabel  string
	}{
		{"day", 2, "2024-02-29"},
		{"week", 1, "2024-W09"},
		{"month", 2, "2024-02"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.granularity, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/reports?granularity="+tt.granularity, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data.Timeline, tt.buckets)
			assert.Equal(t, tt.firstLabel, response.Data.Timeline[0].Label)
		})
	}
}

func (suite *TestSuiteStandard) TestGetReportInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown granularity", "granularity=year"},
		{"Broken from date", "from=yesterday"},
		{"Broken until date", "until=2024-13-01"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/reports?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
