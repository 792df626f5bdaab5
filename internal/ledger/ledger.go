// Package ledger holds the ordered expense collection and its mutations.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/dburn/internal/model"
)

// Draft is the caller-supplied part of a new expense. Date is optional
// and defaults to the current day. Validating amount positivity is the
// caller's job; the ledger stores what it is given.
type Draft struct {
	Amount   float64
	Merchant string
	Category string
	Note     string
	Date     string
}

// Ledger is the in-memory expense collection, newest first. It carries
// no persistence; whoever owns it saves after each mutation.
type Ledger struct {
	expenses []model.Expense

	now   func() time.Time
	newID func() string
}

// New returns a ledger seeded with previously persisted records.
// Records are expected in ledger order (newest first) and are not re-sorted.
func New(records []model.Expense) *Ledger {
	return &Ledger{
		expenses: records,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Add assigns an id and creation timestamp, defaults the date to the
// current day, and prepends the record. Newest-first ordering is part
// of the contract; consumers must not re-sort.
func (l *Ledger) Add(d Draft) model.Expense {
	now := l.now()
	date := d.Date
	if date == "" {
		date = model.Day(now)
	}

	e := model.Expense{
		ID:        l.newID(),
		Amount:    d.Amount,
		Merchant:  d.Merchant,
		Category:  d.Category,
		Note:      d.Note,
		Timestamp: model.Millis(now),
		Date:      date,
	}

	l.expenses = append([]model.Expense{e}, l.expenses...)
	return e
}

// Update replaces the patchable fields on the record matching id.
// ID, Timestamp, and Date are left untouched. No-op if id is unknown.
func (l *Ledger) Update(id string, patch model.ExpensePatch) {
	for i := range l.expenses {
		if l.expenses[i].ID != id {
			continue
		}
		l.expenses[i].Amount = patch.Amount
		l.expenses[i].Merchant = patch.Merchant
		l.expenses[i].Category = patch.Category
		l.expenses[i].Note = patch.Note
		return
	}
}

// Delete removes the record matching id. No-op if not found.
func (l *Ledger) Delete(id string) {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return
		}
	}
}

// Get returns the record matching id.
func (l *Ledger) Get(id string) (model.Expense, bool) {
	for _, e := range l.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

// ByDate returns all records attributed to the given day, preserving
// ledger order.
func (l *Ledger) ByDate(date string) []model.Expense {
	var result []model.Expense
	for _, e := range l.expenses {
		if e.Date == date {
			result = append(result, e)
		}
	}
	return result
}

// All returns a copy of the full collection in ledger order.
func (l *Ledger) All() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Clear empties the collection. Used by the daily reset at load time.
func (l *Ledger) Clear() {
	l.expenses = nil
}
