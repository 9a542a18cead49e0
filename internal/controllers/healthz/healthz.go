// Package healthz implements the application health endpoint.
package healthz

import (
	"net/http"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Checker reports whether the persistence backend is reachable.
type Checker interface {
	Ping() error
}

// RegisterRoutes registers the health endpoint routes with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup, checker Checker) {
	r.OPTIONS("", Options)
	r.GET("", Get(checker))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	map[string]string
// @Router			/healthz [get]
func Get(checker Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checker.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
