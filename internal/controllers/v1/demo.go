package v1

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterDemoRoutes registers the route for demo data seeding with
// the RouterGroup that is passed.
func (co Controller) RegisterDemoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDemo)
	r.POST("", co.CreateDemoData)
}

type DemoResponse struct {
	Data  *DemoObject `json:"data"`  // Data about the seeded expenses
	Error *string     `json:"error"` // The error, if any occurred
}

type DemoObject struct {
	Count int `json:"count" example:"58"` // Number of expenses created
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1/demo [options]
func (co Controller) OptionsDemo(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Seed demo data
// @Description	Creates random sample expenses over the past days
// @Tags			v1
// @Produce		json
// @Success		201		{object}	DemoResponse
// @Failure		400		{object}	DemoResponse
// @Param			confirm	query		string	false	"Confirmation to seed demo data. Must have the value 'yes-please-seed-demo-data'"
// @Param			days	query		int		false	"Number of past days to seed. Defaults to 30."
// @Router			/v1/demo [post]
func (co Controller) CreateDemoData(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
		Days    int    `form:"days,default=30"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-seed-demo-data" {
		s := errDemoConfirmation.Error()
		c.JSON(http.StatusBadRequest, DemoResponse{
			Error: &s,
		})
		return
	}

	categories := ledger.Categories()
	paymentMethods := ledger.PaymentMethods()

	count := 0
	today := time.Now()
	for day := 0; day < params.Days; day++ {
		date := today.AddDate(0, 0, -day)

		// 1-3 expenses per day
		for i := 0; i < rand.Intn(3)+1; i++ {
			_, err := co.Ledger.AddExpense(ledger.NewExpense{
				Amount:        decimal.NewFromInt(int64(rand.Intn(50) + 5)),
				Category:      categories[rand.Intn(len(categories))],
				Date:          types.Date(date),
				PaymentMethod: paymentMethods[rand.Intn(len(paymentMethods))],
				Notes:         fmt.Sprintf("Demo expense %d for %s", i+1, date.Format("2006-01-02")),
			})
			if err != nil {
				s := err.Error()
				c.JSON(status(err), DemoResponse{
					Error: &s,
				})
				return
			}

			count++
		}
	}

	c.JSON(http.StatusCreated, DemoResponse{Data: &DemoObject{Count: count}})
}
