// Package notifications turns ledger events into human-readable
// confirmation messages.
//
// The messages are advisory. They are emitted after the mutation is
// complete and are not part of the transactional contract.
package notifications

import (
	"fmt"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Notifier formats and logs confirmations for ledger mutations.
type Notifier struct {
	symbol string
	logger zerolog.Logger
}

// New returns a Notifier using the currency of the given BCP 47 locale,
// e.g. "en-US". Unknown locales fall back to the US dollar.
func New(locale string) *Notifier {
	symbol := fmt.Sprintf("%s", currency.Symbol(currency.USD))

	tag, err := language.Parse(locale)
	if err == nil {
		if unit, conf := currency.FromTag(tag); conf != language.No {
			symbol = fmt.Sprintf("%s", currency.Symbol(unit))
		}
	}

	return &Notifier{
		symbol: symbol,
		logger: log.Logger,
	}
}

// Message returns the confirmation message for an event.
func (n *Notifier) Message(event ledger.Event) string {
	switch event.Operation {
	case ledger.OperationExpenseAdded:
		return fmt.Sprintf("Expense added: %s%s for %s", n.symbol, event.Expense.Amount, event.Expense.Category)
	case ledger.OperationExpenseDeleted:
		return "Expense deleted"
	case ledger.OperationBudgetUpdated:
		return fmt.Sprintf("Budget updated: %s set to %s%s", event.Category, n.symbol, event.Amount)
	}

	return ""
}

// HandleEvent logs the confirmation for an event. It is meant to be
// registered as a ledger subscriber.
func (n *Notifier) HandleEvent(event ledger.Event) {
	message := n.Message(event)
	if message == "" {
		return
	}

	n.logger.Info().Str("operation", string(event.Operation)).Msg(message)
}
