package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/dburn/internal/model"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalSpent(t *testing.T) {
	if got := TotalSpent(nil); got != 0 {
		t.Fatalf("TotalSpent(nil) = %v, want 0", got)
	}

	expenses := []model.Expense{
		{Amount: 150},
		{Amount: 49.5},
		{Amount: 0.5},
	}
	if got := TotalSpent(expenses); !approxEq(got, 200) {
		t.Fatalf("TotalSpent = %v, want 200", got)
	}

	// Order independent
	reversed := []model.Expense{expenses[2], expenses[1], expenses[0]}
	if got := TotalSpent(reversed); !approxEq(got, 200) {
		t.Fatalf("TotalSpent reversed = %v, want 200", got)
	}
}

func TestAvailableMayGoNegative(t *testing.T) {
	if got := Available(500, 150); got != 350 {
		t.Fatalf("Available = %v, want 350", got)
	}
	if got := Available(500, 620); got != -120 {
		t.Fatalf("Available = %v, want -120", got)
	}
}

func TestCarryForwardClamps(t *testing.T) {
	if got := CarryForward(350); got != 350 {
		t.Fatalf("CarryForward(350) = %v, want 350", got)
	}
	if got := CarryForward(-120); got != 0 {
		t.Fatalf("CarryForward(-120) = %v, want 0", got)
	}
}

func TestPercentSpent(t *testing.T) {
	if got := PercentSpent(150, 500); !approxEq(got, 30) {
		t.Fatalf("PercentSpent = %v, want 30", got)
	}
	if got := PercentSpent(150, 0); got != 0 {
		t.Fatalf("PercentSpent with zero budget = %v, want 0", got)
	}
	if got := PercentSpent(600, 500); !approxEq(got, 120) {
		t.Fatalf("PercentSpent over budget = %v, want 120", got)
	}
}

func TestSpendTierThresholds(t *testing.T) {
	tests := []struct {
		spent  float64
		budget int
		want   Tier
	}{
		{0, 500, TierLow},
		{149.99, 500, TierLow},
		{150, 500, TierMedium}, // exactly 30%
		{299.99, 500, TierMedium},
		{300, 500, TierHigh}, // exactly 60%
		{1000, 500, TierHigh},
		{1000, 0, TierLow}, // zero budget always reads low
	}

	for _, tt := range tests {
		if got := SpendTier(tt.spent, tt.budget); got != tt.want {
			t.Fatalf("SpendTier(%v, %d) = %s, want %s", tt.spent, tt.budget, got, tt.want)
		}
	}
}

func TestSummarizeDay(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 150, Category: "Food", Date: "2026-08-31"},
	}

	sum := SummarizeDay("2026-08-31", 500, expenses)

	if sum.Count != 1 {
		t.Fatalf("Count = %d, want 1", sum.Count)
	}
	if !approxEq(sum.Spent, 150) {
		t.Fatalf("Spent = %v, want 150", sum.Spent)
	}
	if !approxEq(sum.Available, 350) {
		t.Fatalf("Available = %v, want 350", sum.Available)
	}
	if !approxEq(sum.CarryForward, 350) {
		t.Fatalf("CarryForward = %v, want 350", sum.CarryForward)
	}
	if !approxEq(sum.PercentSpent, 30) {
		t.Fatalf("PercentSpent = %v, want 30", sum.PercentSpent)
	}
	if sum.Tier != TierMedium {
		t.Fatalf("Tier = %s, want medium", sum.Tier)
	}
}

func TestSummarizeDayEmpty(t *testing.T) {
	sum := SummarizeDay("2026-08-31", 500, nil)

	if sum.Spent != 0 || sum.Count != 0 {
		t.Fatalf("empty summary: %+v", sum)
	}
	if sum.Available != 500 || sum.CarryForward != 500 {
		t.Fatalf("Available/Carry = %v/%v, want 500/500", sum.Available, sum.CarryForward)
	}
	if sum.Tier != TierLow {
		t.Fatalf("Tier = %s, want low", sum.Tier)
	}
}

func TestAggregateCategories(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 100, Category: "Food"},
		{Amount: 50, Category: "Transport"},
		{Amount: 100, Category: "Food"},
		{Amount: 50, Category: "Bills"},
	}

	cats := AggregateCategories(expenses)
	if len(cats) != 3 {
		t.Fatalf("len = %d, want 3", len(cats))
	}

	if cats[0].Category != "Food" || cats[0].Count != 2 || !approxEq(cats[0].Spent, 200) {
		t.Fatalf("top category = %+v, want Food 2x200", cats[0])
	}
	if !approxEq(cats[0].SharePercent, 200.0/300*100) {
		t.Fatalf("Food share = %v", cats[0].SharePercent)
	}

	// Equal spend ties break by category name
	if cats[1].Category != "Bills" || cats[2].Category != "Transport" {
		t.Fatalf("tie order = [%s, %s], want [Bills, Transport]", cats[1].Category, cats[2].Category)
	}
}

func TestAggregateCategoriesEmpty(t *testing.T) {
	if got := AggregateCategories(nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestAggregateRange(t *testing.T) {
	days := []model.BudgetDay{
		{Date: "2026-08-29", DailyBudget: 500, Spent: 620},
		{Date: "2026-08-30", DailyBudget: 500, Spent: 120},
		{Date: "2026-08-31", DailyBudget: 500, Spent: 160},
	}

	stats := AggregateRange(days)
	if stats.Days != 3 {
		t.Fatalf("Days = %d, want 3", stats.Days)
	}
	if stats.TotalBudget != 1500 {
		t.Fatalf("TotalBudget = %d, want 1500", stats.TotalBudget)
	}
	if !approxEq(stats.TotalSpent, 900) {
		t.Fatalf("TotalSpent = %v, want 900", stats.TotalSpent)
	}
	if !approxEq(stats.AvgSpent, 300) {
		t.Fatalf("AvgSpent = %v, want 300", stats.AvgSpent)
	}
	if stats.OverDays != 1 {
		t.Fatalf("OverDays = %d, want 1", stats.OverDays)
	}
}

func TestSortByDate(t *testing.T) {
	days := []model.BudgetDay{
		{Date: "2026-08-29"},
		{Date: "2026-08-31"},
		{Date: "2026-08-30"},
	}

	sorted := SortByDate(days)
	if sorted[0].Date != "2026-08-31" || sorted[2].Date != "2026-08-29" {
		t.Fatalf("order = [%s, %s, %s], want newest first",
			sorted[0].Date, sorted[1].Date, sorted[2].Date)
	}

	// Input left untouched
	if days[0].Date != "2026-08-29" {
		t.Fatalf("input mutated: %s", days[0].Date)
	}
}
