package ledger

import (
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single recorded expense.
//
// Expenses are immutable: there is no update, only creation and deletion.
type Expense struct {
	ID            uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the expense, assigned at creation
	Amount        decimal.Decimal `json:"amount" example:"12.5"`                             // Amount spent
	Category      Category        `json:"category" example:"food"`                           // Category the expense belongs to
	Date          types.Date      `json:"date" example:"2024-01-31"`                         // Date the expense occurred
	PaymentMethod PaymentMethod   `json:"paymentMethod" example:"cash"`                      // How the expense was paid
	Notes         string          `json:"notes,omitempty" example:"Lunch at the cafeteria"`  // Free-text annotation
}

// NewExpense holds the caller-settable fields of an expense.
// The ID is always assigned by the ledger.
type NewExpense struct {
	Amount        decimal.Decimal `json:"amount"`
	Category      Category        `json:"category"`
	Date          types.Date      `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes"`
}

func (n NewExpense) validate() error {
	if n.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !n.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}

// valid reports whether a persisted record satisfies the ledger invariants.
// Records failing this check are treated as malformed on load.
func (e Expense) valid() bool {
	return !e.Amount.IsNegative() && e.Category.Valid()
}
