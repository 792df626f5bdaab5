// Package model defines domain types for dburn expenses and budgets.
package model

// Expense is a single spend record attributed to one calendar day.
// JSON tags match the persisted storage layout.
type Expense struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Merchant  string  `json:"merchant"`
	Category  string  `json:"category"`
	Note      string  `json:"note"`
	Timestamp int64   `json:"timestamp"` // creation instant, Unix millis, immutable
	Date      string  `json:"date"`      // YYYY-MM-DD, set at creation, immutable
}

// ExpensePatch holds the fields that may change after creation.
// ID, Timestamp, and Date are never patched.
type ExpensePatch struct {
	Amount   float64
	Merchant string
	Category string
	Note     string
}

// Categories is the built-in category set. Custom labels are allowed
// anywhere a category is accepted; this list only drives pickers.
var Categories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertain",
	"Healthcare",
	"Education",
	"Groceries",
	"Travel",
	"Invest",
}

// KnownCategory reports whether name is one of the built-in categories.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
