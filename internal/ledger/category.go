package ledger

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Category is one of the closed set of spending classifications.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEducation     Category = "education"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories returns all categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEducation,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// ParseCategory returns the Category for a string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrCategoryInvalid, s)
	}

	return c, nil
}

// PaymentMethod describes how an expense was paid.
//
// It is informational only and is not used in any aggregation, so unknown
// values are accepted as-is.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodOther  PaymentMethod = "other"
)

// PaymentMethods returns the well-known payment methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCredit,
		PaymentMethodDebit,
		PaymentMethodOnline,
		PaymentMethodOther,
	}
}
