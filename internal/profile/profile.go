// Package profile holds the user's display name and daily budget.
package profile

import (
	"strconv"

	"github.com/theirongolddev/dburn/internal/model"
)

// Profile is the in-memory user profile store. Singleton scope; no
// history is retained, only the current values.
type Profile struct {
	current model.Profile
}

// New returns a profile store seeded with persisted values.
func New(p model.Profile) *Profile {
	return &Profile{current: p}
}

// DisplayName returns the configured display name.
func (p *Profile) DisplayName() string {
	return p.current.DisplayName
}

// SetDisplayName replaces the display name.
func (p *Profile) SetDisplayName(name string) {
	p.current.DisplayName = name
}

// DailyBudget returns the configured daily budget baseline.
func (p *Profile) DailyBudget() int {
	return p.current.DailyBudget
}

// SetDailyBudget replaces the daily budget.
func (p *Profile) SetDailyBudget(v int) {
	p.current.DailyBudget = v
}

// SetDailyBudgetString parses and applies a daily budget value.
// Non-numeric input is ignored and the prior value retained; it reports
// whether the value was applied.
func (p *Profile) SetDailyBudgetString(s string) bool {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return false
	}
	p.current.DailyBudget = v
	return true
}

// Current returns the profile values as a snapshot.
func (p *Profile) Current() model.Profile {
	return p.current
}
