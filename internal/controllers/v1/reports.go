package v1

import (
	"net/http"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsReport)
	r.GET("", co.GetReport)
}

type ReportQueryFilter struct {
	From        string `form:"from"`                    // Earliest date to include, inclusive
	Until       string `form:"until"`                   // Latest date to include, inclusive
	Granularity string `form:"granularity,default=day"` // Bucket size for the timeline: day, week or month
}

type Report struct {
	Granularity report.Granularity `json:"granularity" example:"day"`  // The bucket size used for the timeline
	TotalSpent  decimal.Decimal    `json:"totalSpent" example:"50.25"` // Sum of all expenses in the range

	// AverageDailySpend is only set when both range bounds are given.
	AverageDailySpend *decimal.Decimal `json:"averageDailySpend,omitempty" example:"1.63"`

	Timeline   []report.BucketTotal   `json:"timeline"`   // Spending over time, chronologically ascending
	Categories []report.CategoryTotal `json:"categories"` // Spending per category, zero totals included
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                               // Data for the report
	Error *string `json:"error" example:"the granularity must be one of day, week or month"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func (co Controller) OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns spending aggregated over time and per category for a date range
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Router			/v1/reports [get]
// @Param			from		query	string	false	"Earliest date to include, inclusive"
// @Param			until		query	string	false	"Latest date to include, inclusive"
// @Param			granularity	query	string	false	"Bucket size for the timeline: day, week or month. Defaults to day."
func (co Controller) GetReport(c *gin.Context) {
	var filter ReportQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	granularity, err := report.ParseGranularity(filter.Granularity)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	from, err := parseDateBound(filter.From)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	until, err := parseDateBound(filter.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	snapshot := co.Ledger.Snapshot()
	if from != nil || until != nil {
		snapshot.Expenses = report.FilterByDateRange(snapshot, from, until)
	}

	data := Report{
		Granularity: granularity,
		TotalSpent:  report.TotalByCategory(snapshot, report.All()),
		Timeline:    report.GroupByDateBucket(snapshot, granularity),
		Categories:  report.GroupByCategory(snapshot),
	}

	if from != nil && until != nil {
		average := report.AverageDailySpend(snapshot, *from, *until)
		data.AverageDailySpend = &average
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}
