package ledger

import "errors"

var (
	ErrAmountNegative  = errors.New("the amount must not be negative")
	ErrCategoryInvalid = errors.New("the category is not one of the known categories")
	ErrNotFound        = errors.New("there is no expense matching your query")
)
