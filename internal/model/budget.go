package model

// BudgetDay is a per-calendar-day snapshot of configured budget and spend.
// At most one record exists per date.
type BudgetDay struct {
	Date         string  `json:"date"` // YYYY-MM-DD, unique key
	DailyBudget  int     `json:"dailyBudget"`
	Spent        float64 `json:"spent"`
	CarryForward float64 `json:"carryForward"`
	LastUpdated  int64   `json:"lastUpdated"` // Unix millis of last mutation
}

// BudgetDayPatch merge-patches an existing BudgetDay. Nil fields are
// left untouched.
type BudgetDayPatch struct {
	DailyBudget  *int
	Spent        *float64
	CarryForward *float64
}
