// Package pipeline computes derived budget figures from raw records.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/dburn/internal/model"
)

// Tier classifies how much of the daily budget has been consumed.
// Presentation only; never persisted.
type Tier string

const (
	TierLow    Tier = "low"    // < 30% spent
	TierMedium Tier = "medium" // 30–59%
	TierHigh   Tier = "high"   // >= 60%
)

// TotalSpent sums the amounts of the given expenses.
func TotalSpent(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Available returns the budget remaining after spend. May be negative;
// only the carry-forward display figure is clamped.
func Available(dailyBudget int, totalSpent float64) float64 {
	return float64(dailyBudget) - totalSpent
}

// CarryForward is the clamped display figure for unspent budget.
func CarryForward(available float64) float64 {
	if available < 0 {
		return 0
	}
	return available
}

// PercentSpent returns spend as a percentage of the daily budget,
// or 0 when the budget is zero.
func PercentSpent(totalSpent float64, dailyBudget int) float64 {
	if dailyBudget <= 0 {
		return 0
	}
	return totalSpent / float64(dailyBudget) * 100
}

// SpendTier classifies spend against the daily budget. A zero budget
// always reads as low; the thresholds guard against division by zero.
func SpendTier(totalSpent float64, dailyBudget int) Tier {
	pct := PercentSpent(totalSpent, dailyBudget)
	switch {
	case pct >= 60:
		return TierHigh
	case pct >= 30:
		return TierMedium
	default:
		return TierLow
	}
}

// DaySummary bundles the derived figures for one date.
type DaySummary struct {
	Date         string
	DailyBudget  int
	Count        int
	Spent        float64
	Available    float64
	CarryForward float64
	PercentSpent float64
	Tier         Tier
}

// SummarizeDay derives all per-day figures from the configured daily
// budget and the expenses attributed to date. Pure and deterministic.
func SummarizeDay(date string, dailyBudget int, expenses []model.Expense) DaySummary {
	spent := TotalSpent(expenses)
	avail := Available(dailyBudget, spent)

	return DaySummary{
		Date:         date,
		DailyBudget:  dailyBudget,
		Count:        len(expenses),
		Spent:        spent,
		Available:    avail,
		CarryForward: CarryForward(avail),
		PercentSpent: PercentSpent(spent, dailyBudget),
		Tier:         SpendTier(spent, dailyBudget),
	}
}

// CategoryStats holds per-category spend totals for a set of expenses.
type CategoryStats struct {
	Category     string
	Count        int
	Spent        float64
	SharePercent float64
}

// AggregateCategories computes per-category totals, sorted by spend
// descending. Share percentages are of the overall total.
func AggregateCategories(expenses []model.Expense) []CategoryStats {
	catMap := make(map[string]*CategoryStats)
	var total float64

	for _, e := range expenses {
		cs, ok := catMap[e.Category]
		if !ok {
			cs = &CategoryStats{Category: e.Category}
			catMap[e.Category] = cs
		}
		cs.Count++
		cs.Spent += e.Amount
		total += e.Amount
	}

	cats := make([]CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		if total > 0 {
			cs.SharePercent = cs.Spent / total * 100
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Spent != cats[j].Spent {
			return cats[i].Spent > cats[j].Spent
		}
		return cats[i].Category < cats[j].Category
	})

	return cats
}

// RangeStats summarizes a set of budget-day snapshots (month or year view).
type RangeStats struct {
	Days        int
	TotalBudget int
	TotalSpent  float64
	AvgSpent    float64
	OverDays    int // days where spend exceeded that day's budget
}

// AggregateRange computes rollup figures for budget-day snapshots,
// sorting is left to the caller.
func AggregateRange(days []model.BudgetDay) RangeStats {
	var stats RangeStats
	for _, d := range days {
		stats.Days++
		stats.TotalBudget += d.DailyBudget
		stats.TotalSpent += d.Spent
		if d.Spent > float64(d.DailyBudget) {
			stats.OverDays++
		}
	}
	if stats.Days > 0 {
		stats.AvgSpent = stats.TotalSpent / float64(stats.Days)
	}
	return stats
}

// SortByDate orders budget-day snapshots most recent first.
func SortByDate(days []model.BudgetDay) []model.BudgetDay {
	out := make([]model.BudgetDay, len(days))
	copy(out, days)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
