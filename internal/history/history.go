// Package history holds per-day budget snapshots keyed by calendar date.
package history

import (
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/dburn/internal/model"
)

// History is the in-memory budget-day collection. At most one record
// exists per date. Like the other stores it carries no persistence.
type History struct {
	days []model.BudgetDay

	now func() time.Time
}

// New returns a history store seeded with persisted records.
func New(days []model.BudgetDay) *History {
	return &History{
		days: days,
		now:  time.Now,
	}
}

// Upsert replaces the record with a matching date, or appends a new one.
// A replace keeps the record's position in the collection.
func (h *History) Upsert(day model.BudgetDay) {
	for i := range h.days {
		if h.days[i].Date == day.Date {
			h.days[i] = day
			return
		}
	}
	h.days = append(h.days, day)
}

// Update merge-patches the record with a matching date and stamps
// LastUpdated. No-op if the date has no record.
func (h *History) Update(date string, patch model.BudgetDayPatch) {
	for i := range h.days {
		if h.days[i].Date != date {
			continue
		}
		if patch.DailyBudget != nil {
			h.days[i].DailyBudget = *patch.DailyBudget
		}
		if patch.Spent != nil {
			h.days[i].Spent = *patch.Spent
		}
		if patch.CarryForward != nil {
			h.days[i].CarryForward = *patch.CarryForward
		}
		h.days[i].LastUpdated = model.Millis(h.now())
		return
	}
}

// ByDate returns the record for the given day.
func (h *History) ByDate(date string) (model.BudgetDay, bool) {
	for _, d := range h.days {
		if d.Date == date {
			return d, true
		}
	}
	return model.BudgetDay{}, false
}

// ForMonth returns records whose date falls in the given year and month.
func (h *History) ForMonth(year, month int) []model.BudgetDay {
	var result []model.BudgetDay
	for _, d := range h.days {
		y, m, ok := splitDate(d.Date)
		if ok && y == year && m == month {
			result = append(result, d)
		}
	}
	return result
}

// ForYear returns records whose date falls in the given year.
func (h *History) ForYear(year int) []model.BudgetDay {
	var result []model.BudgetDay
	for _, d := range h.days {
		y, _, ok := splitDate(d.Date)
		if ok && y == year {
			result = append(result, d)
		}
	}
	return result
}

// All returns a copy of the full collection.
func (h *History) All() []model.BudgetDay {
	out := make([]model.BudgetDay, len(h.days))
	copy(out, h.days)
	return out
}

// Clear empties the collection.
func (h *History) Clear() {
	h.days = nil
}

// splitDate parses the YYYY and MM components of a YYYY-MM-DD key.
func splitDate(date string) (year, month int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return y, m, true
}
