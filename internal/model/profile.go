package model

// Profile defaults applied when nothing has been persisted yet.
const (
	DefaultDisplayName = "User"
	DefaultDailyBudget = 500
)

// Profile holds the user's display name and daily budget baseline.
// Singleton scope; only the current value is retained.
type Profile struct {
	DisplayName string
	DailyBudget int // non-negative, whole currency units
}

// DefaultProfile returns the profile used before any setup has run.
func DefaultProfile() Profile {
	return Profile{
		DisplayName: DefaultDisplayName,
		DailyBudget: DefaultDailyBudget,
	}
}
