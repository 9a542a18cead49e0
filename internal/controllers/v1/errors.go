package v1

import (
	"errors"
	"net/http"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
)

type httpError struct {
	Error string `json:"error" example:"the category is not one of the known categories"`
}

// status returns the appropriate HTTP status for a ledger or binding error
func status(err error) int {
	if errors.Is(err, ledger.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Demo data errors
var errDemoConfirmation = errors.New("the confirmation for the demo data API call was incorrect")
