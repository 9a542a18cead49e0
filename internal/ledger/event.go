package ledger

import "github.com/shopspring/decimal"

// Operation identifies the mutation an Event reports.
type Operation string

const (
	OperationExpenseAdded   Operation = "expense-added"
	OperationExpenseDeleted Operation = "expense-deleted"
	OperationBudgetUpdated  Operation = "budget-updated"
)

// Event is emitted to subscribers after a successful mutation.
//
// Events are advisory: the mutation is already persisted when the
// subscribers run, and subscriber failures cannot roll it back.
type Event struct {
	Operation Operation

	// Expense is set for expense-added and expense-deleted events.
	Expense *Expense

	// Category and Amount are set for budget-updated events.
	Category Category
	Amount   decimal.Decimal
}
