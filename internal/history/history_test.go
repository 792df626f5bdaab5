package history

import (
	"testing"
	"time"

	"github.com/theirongolddev/dburn/internal/model"
)

func testHistory(days ...model.BudgetDay) *History {
	h := New(days)
	fixed, _ := time.Parse("2006-01-02 15:04", "2026-08-31 12:00")
	h.now = func() time.Time { return fixed }
	return h
}

func TestUpsertInsertsThenReplaces(t *testing.T) {
	h := testHistory()

	h.Upsert(model.BudgetDay{Date: "2026-08-30", DailyBudget: 500, Spent: 120})
	h.Upsert(model.BudgetDay{Date: "2026-08-31", DailyBudget: 500, Spent: 40})

	if got := len(h.All()); got != 2 {
		t.Fatalf("len = %d, want 2", got)
	}

	// Same date replaces in place, no duplicate
	h.Upsert(model.BudgetDay{Date: "2026-08-30", DailyBudget: 500, Spent: 200})

	all := h.All()
	if len(all) != 2 {
		t.Fatalf("len after replace = %d, want 2", len(all))
	}
	day, ok := h.ByDate("2026-08-30")
	if !ok {
		t.Fatal("2026-08-30 missing")
	}
	if day.Spent != 200 {
		t.Fatalf("Spent = %v, want 200", day.Spent)
	}
	// Order preserved: replaced entry keeps its slot
	if all[0].Date != "2026-08-30" {
		t.Fatalf("first entry = %s, want 2026-08-30", all[0].Date)
	}
}

func TestUpdateMergePatch(t *testing.T) {
	h := testHistory(model.BudgetDay{
		Date: "2026-08-30", DailyBudget: 500, Spent: 120, CarryForward: 380,
	})

	spent := 150.0
	h.Update("2026-08-30", model.BudgetDayPatch{Spent: &spent})

	day, _ := h.ByDate("2026-08-30")
	if day.Spent != 150 {
		t.Fatalf("Spent = %v, want 150", day.Spent)
	}
	if day.DailyBudget != 500 || day.CarryForward != 380 {
		t.Fatalf("untouched fields changed: %+v", day)
	}
	if day.LastUpdated == 0 {
		t.Fatal("LastUpdated not stamped")
	}
}

func TestUpdateUnknownDateIsNoOp(t *testing.T) {
	h := testHistory(model.BudgetDay{Date: "2026-08-30", DailyBudget: 500})

	spent := 999.0
	h.Update("2000-01-01", model.BudgetDayPatch{Spent: &spent})

	if got := len(h.All()); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	day, _ := h.ByDate("2026-08-30")
	if day.Spent != 0 {
		t.Fatalf("Spent = %v, want 0 untouched", day.Spent)
	}
}

func TestForMonth(t *testing.T) {
	h := testHistory(
		model.BudgetDay{Date: "2026-08-30"},
		model.BudgetDay{Date: "2026-08-31"},
		model.BudgetDay{Date: "2026-07-15"},
		model.BudgetDay{Date: "2025-08-10"},
		model.BudgetDay{Date: "bogus"},
	)

	got := h.ForMonth(2026, 8)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, d := range got {
		if d.Date[:7] != "2026-08" {
			t.Fatalf("unexpected day %s", d.Date)
		}
	}
}

func TestForYear(t *testing.T) {
	h := testHistory(
		model.BudgetDay{Date: "2026-08-30"},
		model.BudgetDay{Date: "2026-01-02"},
		model.BudgetDay{Date: "2025-12-31"},
	)

	got := h.ForYear(2026)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestClear(t *testing.T) {
	h := testHistory(model.BudgetDay{Date: "2026-08-30"})

	h.Clear()
	if got := len(h.All()); got != 0 {
		t.Fatalf("len = %d, want 0", got)
	}
}
