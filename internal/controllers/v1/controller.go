// Package v1 implements the v1 HTTP API for the expense ledger.
package v1

import (
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/keyvalue"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
)

// Controller holds the resources the API handlers operate on. It is passed
// explicitly instead of living in package-level state so that tests and
// alternative wirings can use their own instances.
type Controller struct {
	Ledger *ledger.Ledger
	Store  keyvalue.Store
}
