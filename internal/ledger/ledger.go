// Package ledger implements the expense ledger: the authoritative list of
// expense records and the per-category budget map, persisted through a
// key-value store.
package ledger

import (
	"encoding/json"
	"sync"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/keyvalue"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Keys used in the key-value store.
const (
	expensesKey = "expenses"
	budgetsKey  = "budgets"
)

// Snapshot is the ledger's expense collection and budget map as observed at
// one instant. It is an independent copy, callers can hold on to it.
type Snapshot struct {
	Expenses []Expense
	Budgets  Budgets
}

// Ledger owns the expense collection and the budget map. All mutations go
// through it; every successful mutation is persisted before it returns.
type Ledger struct {
	mu          sync.Mutex
	store       keyvalue.Store
	expenses    []Expense
	budgets     Budgets
	subscribers []func(Event)
}

// New returns a Ledger initialized from the key-value store.
//
// Missing or corrupt persisted state is never fatal: the expense collection
// falls back to empty, the budget map to its defaults, and individual
// malformed records are skipped with a warning.
func New(store keyvalue.Store) *Ledger {
	l := &Ledger{
		store:   store,
		budgets: DefaultBudgets(),
	}

	l.loadExpenses()
	l.loadBudgets()

	return l
}

// Subscribe registers a function that is called after every successful
// mutation. Subscribers run synchronously on the mutating call.
func (l *Ledger) Subscribe(fn func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subscribers = append(l.subscribers, fn)
}

// AddExpense validates data, assigns a fresh ID and appends the expense to
// the ledger. No state is changed when validation fails.
func (l *Ledger) AddExpense(data NewExpense) (Expense, error) {
	if err := data.validate(); err != nil {
		return Expense{}, err
	}

	expense := Expense{
		ID:            uuid.New(),
		Amount:        data.Amount,
		Category:      data.Category,
		Date:          data.Date,
		PaymentMethod: data.PaymentMethod,
		Notes:         data.Notes,
	}

	l.mu.Lock()
	l.expenses = append(l.expenses, expense)
	l.persistExpenses()
	l.mu.Unlock()

	l.notify(Event{Operation: OperationExpenseAdded, Expense: &expense})
	return expense, nil
}

// GetExpense returns the expense with the given ID.
func (l *Ledger) GetExpense(id uuid.UUID) (Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, expense := range l.expenses {
		if expense.ID == id {
			return expense, nil
		}
	}

	return Expense{}, ErrNotFound
}

// DeleteExpense removes the expense with the given ID. Deleting an ID that
// does not exist is a no-op, not an error.
func (l *Ledger) DeleteExpense(id uuid.UUID) error {
	l.mu.Lock()

	index := -1
	for i, expense := range l.expenses {
		if expense.ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		l.mu.Unlock()
		return nil
	}

	deleted := l.expenses[index]
	l.expenses = append(l.expenses[:index], l.expenses[index+1:]...)
	l.persistExpenses()
	l.mu.Unlock()

	l.notify(Event{Operation: OperationExpenseDeleted, Expense: &deleted})
	return nil
}

// UpdateBudget overwrites the budget limit for a single category.
func (l *Ledger) UpdateBudget(category Category, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	if !category.Valid() {
		return ErrCategoryInvalid
	}

	l.mu.Lock()
	l.budgets[category] = amount
	l.persistBudgets()
	l.mu.Unlock()

	l.notify(Event{Operation: OperationBudgetUpdated, Category: category, Amount: amount})
	return nil
}

// Snapshot returns a copy of the current ledger state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	expenses := make([]Expense, len(l.expenses))
	copy(expenses, l.expenses)

	return Snapshot{
		Expenses: expenses,
		Budgets:  l.budgets.Clone(),
	}
}

// Reset discards all expenses and restores the default budgets.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.expenses = nil
	l.budgets = DefaultBudgets()
	l.persistExpenses()
	l.persistBudgets()
}

// notify calls all subscribers. Must not be called with the mutex held as
// subscribers may call back into the ledger.
func (l *Ledger) notify(event Event) {
	l.mu.Lock()
	subscribers := make([]func(Event), len(l.subscribers))
	copy(subscribers, l.subscribers)
	l.mu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

// persistExpenses writes the full expense collection to the store.
// Write failures are logged, not returned: the in-memory state stays
// authoritative and the application keeps working without durability.
func (l *Ledger) persistExpenses() {
	value, err := json.Marshal(l.expenses)
	if err != nil {
		log.Error().Err(err).Msg("marshalling expenses failed, changes are kept in memory only")
		return
	}

	if err := l.store.Set(expensesKey, value); err != nil {
		log.Error().Err(err).Msg("persisting expenses failed, changes are kept in memory only")
	}
}

func (l *Ledger) persistBudgets() {
	value, err := json.Marshal(l.budgets)
	if err != nil {
		log.Error().Err(err).Msg("marshalling budgets failed, changes are kept in memory only")
		return
	}

	if err := l.store.Set(budgetsKey, value); err != nil {
		log.Error().Err(err).Msg("persisting budgets failed, changes are kept in memory only")
	}
}

func (l *Ledger) loadExpenses() {
	value, ok, err := l.store.Get(expensesKey)
	if err != nil {
		log.Error().Err(err).Msg("reading persisted expenses failed, starting with an empty ledger")
		return
	}
	if !ok {
		return
	}

	var records []json.RawMessage
	if err := json.Unmarshal(value, &records); err != nil {
		log.Warn().Err(err).Msg("persisted expenses are corrupt, starting with an empty ledger")
		return
	}

	seen := make(map[uuid.UUID]bool, len(records))
	for _, record := range records {
		var expense Expense
		if err := json.Unmarshal(record, &expense); err != nil {
			log.Warn().Err(err).Msg("skipping malformed expense record")
			continue
		}

		if expense.ID == uuid.Nil || !expense.valid() {
			log.Warn().RawJSON("record", record).Msg("skipping expense record violating ledger invariants")
			continue
		}

		if seen[expense.ID] {
			log.Warn().Str("id", expense.ID.String()).Msg("skipping expense record with duplicate ID")
			continue
		}

		seen[expense.ID] = true
		l.expenses = append(l.expenses, expense)
	}
}

func (l *Ledger) loadBudgets() {
	value, ok, err := l.store.Get(budgetsKey)
	if err != nil {
		log.Error().Err(err).Msg("reading persisted budgets failed, using default budgets")
		return
	}
	if !ok {
		return
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(value, &entries); err != nil {
		log.Warn().Err(err).Msg("persisted budgets are corrupt, using default budgets")
		return
	}

	// Every category keeps its default unless a usable entry is stored.
	for key, raw := range entries {
		category, err := ParseCategory(key)
		if err != nil {
			log.Warn().Str("category", key).Msg("skipping budget entry for unknown category")
			continue
		}

		var amount decimal.Decimal
		if err := json.Unmarshal(raw, &amount); err != nil || amount.IsNegative() {
			log.Warn().Str("category", key).Msg("skipping malformed budget entry")
			continue
		}

		l.budgets[category] = amount
	}
}
