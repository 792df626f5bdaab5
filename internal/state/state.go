// Package state is the composition root for the tracker. It owns the
// three stores, applies the daily-reset policy at load, and writes
// state back to persistence after every mutation. The stores themselves
// stay pure; only this package touches the storage adapter.
package state

import (
	"fmt"
	"time"

	"github.com/theirongolddev/dburn/internal/history"
	"github.com/theirongolddev/dburn/internal/ledger"
	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/pipeline"
	"github.com/theirongolddev/dburn/internal/profile"
	"github.com/theirongolddev/dburn/internal/store"
)

// Persister is the slice of the storage adapter the tracker needs.
// *store.Store satisfies it; tests substitute an in-memory fake.
type Persister interface {
	LoadProfile() (model.Profile, error)
	SaveDisplayName(name string) error
	SaveDailyBudget(v int) error
	LoadExpenses() ([]model.Expense, error)
	SaveExpenses(expenses []model.Expense) error
	LoadLastResetDate() (string, error)
	SaveLastResetDate(date string) error
	LoadHistory() ([]model.BudgetDay, error)
	SaveHistory(days []model.BudgetDay) error
}

var _ Persister = (*store.Store)(nil)

// Tracker wires the stores to persistence. All mutation methods apply
// the change in memory first, then write through synchronously.
type Tracker struct {
	Ledger  *ledger.Ledger
	Profile *profile.Profile
	History *history.History

	db  Persister
	now func() time.Time
}

// Open loads all persisted state and applies the daily-reset policy:
// if the stored last-reset marker differs from today, the expense
// collection is cleared and the marker advances. This runs before any
// store operation is observable.
func Open(db Persister) (*Tracker, error) {
	return open(db, time.Now)
}

func open(db Persister, now func() time.Time) (*Tracker, error) {
	prof, err := db.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	expenses, err := db.LoadExpenses()
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	lastReset, err := db.LoadLastResetDate()
	if err != nil {
		return nil, fmt.Errorf("loading reset marker: %w", err)
	}

	days, err := db.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("loading budget history: %w", err)
	}

	today := model.Day(now())
	if lastReset != today {
		expenses = nil
		if err := db.SaveExpenses(nil); err != nil {
			return nil, fmt.Errorf("daily reset: %w", err)
		}
		if err := db.SaveLastResetDate(today); err != nil {
			return nil, fmt.Errorf("daily reset: %w", err)
		}
	}

	return &Tracker{
		Ledger:  ledger.New(expenses),
		Profile: profile.New(prof),
		History: history.New(days),
		db:      db,
		now:     now,
	}, nil
}

// AddExpense records a new expense and persists the ledger.
func (t *Tracker) AddExpense(d ledger.Draft) (model.Expense, error) {
	e := t.Ledger.Add(d)
	if err := t.db.SaveExpenses(t.Ledger.All()); err != nil {
		return e, fmt.Errorf("saving expenses: %w", err)
	}
	return e, nil
}

// UpdateExpense patches an existing expense and persists the ledger.
// Unknown ids are a silent no-op, matching the store contract.
func (t *Tracker) UpdateExpense(id string, patch model.ExpensePatch) error {
	t.Ledger.Update(id, patch)
	if err := t.db.SaveExpenses(t.Ledger.All()); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense and persists the ledger.
func (t *Tracker) DeleteExpense(id string) error {
	t.Ledger.Delete(id)
	if err := t.db.SaveExpenses(t.Ledger.All()); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	return nil
}

// SetDisplayName updates the profile and persists it.
func (t *Tracker) SetDisplayName(name string) error {
	t.Profile.SetDisplayName(name)
	if err := t.db.SaveDisplayName(name); err != nil {
		return fmt.Errorf("saving display name: %w", err)
	}
	return nil
}

// SetDailyBudget updates the budget baseline and persists it.
func (t *Tracker) SetDailyBudget(v int) error {
	t.Profile.SetDailyBudget(v)
	if err := t.db.SaveDailyBudget(v); err != nil {
		return fmt.Errorf("saving daily budget: %w", err)
	}
	return nil
}

// SetDailyBudgetString parses and applies a budget value. Invalid input
// is ignored (prior value retained) and nothing is persisted.
func (t *Tracker) SetDailyBudgetString(s string) error {
	if !t.Profile.SetDailyBudgetString(s) {
		return nil
	}
	if err := t.db.SaveDailyBudget(t.Profile.DailyBudget()); err != nil {
		return fmt.Errorf("saving daily budget: %w", err)
	}
	return nil
}

// UpsertBudgetDay replaces-or-inserts a budget-day snapshot and
// persists the history.
func (t *Tracker) UpsertBudgetDay(day model.BudgetDay) error {
	t.History.Upsert(day)
	if err := t.db.SaveHistory(t.History.All()); err != nil {
		return fmt.Errorf("saving budget history: %w", err)
	}
	return nil
}

// UpdateBudgetDay merge-patches a budget-day snapshot and persists the
// history. Unknown dates are a silent no-op.
func (t *Tracker) UpdateBudgetDay(date string, patch model.BudgetDayPatch) error {
	t.History.Update(date, patch)
	if err := t.db.SaveHistory(t.History.All()); err != nil {
		return fmt.Errorf("saving budget history: %w", err)
	}
	return nil
}

// ClearHistory empties the budget history and persists it.
func (t *Tracker) ClearHistory() error {
	t.History.Clear()
	if err := t.db.SaveHistory(nil); err != nil {
		return fmt.Errorf("saving budget history: %w", err)
	}
	return nil
}

// Today returns the current day key.
func (t *Tracker) Today() string {
	return model.Day(t.now())
}

// SummarizeDay derives the figures for the given date from the current
// budget baseline and the ledger.
func (t *Tracker) SummarizeDay(date string) pipeline.DaySummary {
	return pipeline.SummarizeDay(date, t.Profile.DailyBudget(), t.Ledger.ByDate(date))
}

// CategoriesForDay aggregates per-category totals for the given date.
func (t *Tracker) CategoriesForDay(date string) []pipeline.CategoryStats {
	return pipeline.AggregateCategories(t.Ledger.ByDate(date))
}

// SnapshotDay derives the figures for date and upserts them into the
// budget history. This is the only path that populates history from
// ledger data; nothing does it automatically.
func (t *Tracker) SnapshotDay(date string) (model.BudgetDay, error) {
	sum := t.SummarizeDay(date)
	day := model.BudgetDay{
		Date:         date,
		DailyBudget:  sum.DailyBudget,
		Spent:        sum.Spent,
		CarryForward: sum.CarryForward,
		LastUpdated:  model.Millis(t.now()),
	}
	if err := t.UpsertBudgetDay(day); err != nil {
		return day, err
	}
	return day, nil
}
