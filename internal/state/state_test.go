package state

import (
	"testing"
	"time"

	"github.com/theirongolddev/dburn/internal/ledger"
	"github.com/theirongolddev/dburn/internal/model"
)

// fakeDB is an in-memory Persister capturing every write.
type fakeDB struct {
	profile   model.Profile
	expenses  []model.Expense
	lastReset string
	history   []model.BudgetDay

	expenseSaves int
	historySaves int
}

func newFakeDB() *fakeDB {
	return &fakeDB{profile: model.DefaultProfile()}
}

func (f *fakeDB) LoadProfile() (model.Profile, error)     { return f.profile, nil }
func (f *fakeDB) SaveDisplayName(name string) error       { f.profile.DisplayName = name; return nil }
func (f *fakeDB) SaveDailyBudget(v int) error             { f.profile.DailyBudget = v; return nil }
func (f *fakeDB) LoadExpenses() ([]model.Expense, error)  { return f.expenses, nil }
func (f *fakeDB) LoadLastResetDate() (string, error)      { return f.lastReset, nil }
func (f *fakeDB) SaveLastResetDate(date string) error     { f.lastReset = date; return nil }
func (f *fakeDB) LoadHistory() ([]model.BudgetDay, error) { return f.history, nil }

func (f *fakeDB) SaveExpenses(expenses []model.Expense) error {
	f.expenses = expenses
	f.expenseSaves++
	return nil
}

func (f *fakeDB) SaveHistory(days []model.BudgetDay) error {
	f.history = days
	f.historySaves++
	return nil
}

func clockAt(s string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02 15:04", s)
	return func() time.Time { return parsed }
}

func openAt(t *testing.T, db Persister, at string) *Tracker {
	t.Helper()
	tracker, err := open(db, clockAt(at))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return tracker
}

func TestOpenAppliesDailyReset(t *testing.T) {
	db := newFakeDB()
	db.expenses = []model.Expense{{ID: "old", Amount: 50, Date: "2026-08-30"}}
	db.lastReset = "2026-08-30"

	tracker := openAt(t, db, "2026-08-31 08:00")

	if tracker.Ledger.Len() != 0 {
		t.Fatalf("Len = %d, want 0 after reset", tracker.Ledger.Len())
	}
	if db.lastReset != "2026-08-31" {
		t.Fatalf("lastReset = %q, want 2026-08-31", db.lastReset)
	}
	if db.expenseSaves != 1 {
		t.Fatalf("expenseSaves = %d, want 1 (reset write)", db.expenseSaves)
	}
	if len(db.expenses) != 0 {
		t.Fatalf("persisted expenses len = %d, want 0", len(db.expenses))
	}
}

func TestOpenSameDayKeepsExpenses(t *testing.T) {
	db := newFakeDB()
	db.expenses = []model.Expense{{ID: "e1", Amount: 50, Date: "2026-08-31"}}
	db.lastReset = "2026-08-31"

	tracker := openAt(t, db, "2026-08-31 20:00")

	if tracker.Ledger.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tracker.Ledger.Len())
	}
	if db.expenseSaves != 0 {
		t.Fatalf("expenseSaves = %d, want 0 (no reset)", db.expenseSaves)
	}
}

func TestOpenFirstRunSetsResetMarker(t *testing.T) {
	db := newFakeDB()

	openAt(t, db, "2026-08-31 08:00")

	if db.lastReset != "2026-08-31" {
		t.Fatalf("lastReset = %q, want 2026-08-31", db.lastReset)
	}
}

func TestAddExpenseWritesThrough(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	tracker := openAt(t, db, "2026-08-31 12:00")

	e, err := tracker.AddExpense(ledger.Draft{Amount: 150, Merchant: "Swiggy", Category: "Food"})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if e.ID == "" {
		t.Fatal("expense has no id")
	}
	if e.Date != "2026-08-31" {
		t.Fatalf("Date = %q, want 2026-08-31", e.Date)
	}

	if len(db.expenses) != 1 || db.expenses[0].ID != e.ID {
		t.Fatalf("persisted = %+v, want the new expense", db.expenses)
	}
}

func TestUpdateAndDeleteWriteThrough(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	tracker := openAt(t, db, "2026-08-31 12:00")

	e, _ := tracker.AddExpense(ledger.Draft{Amount: 150, Category: "Food"})

	if err := tracker.UpdateExpense(e.ID, model.ExpensePatch{
		Amount: 175, Category: "Food", Merchant: "Zomato",
	}); err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if db.expenses[0].Amount != 175 {
		t.Fatalf("persisted Amount = %v, want 175", db.expenses[0].Amount)
	}

	if err := tracker.DeleteExpense(e.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if len(db.expenses) != 0 {
		t.Fatalf("persisted len = %d, want 0", len(db.expenses))
	}
}

func TestProfileWritesThrough(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	tracker := openAt(t, db, "2026-08-31 12:00")

	if err := tracker.SetDisplayName("Asha"); err != nil {
		t.Fatalf("SetDisplayName: %v", err)
	}
	if err := tracker.SetDailyBudget(750); err != nil {
		t.Fatalf("SetDailyBudget: %v", err)
	}

	if db.profile.DisplayName != "Asha" || db.profile.DailyBudget != 750 {
		t.Fatalf("persisted profile = %+v", db.profile)
	}
}

func TestSetDailyBudgetStringRejectsInvalid(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	tracker := openAt(t, db, "2026-08-31 12:00")

	if err := tracker.SetDailyBudgetString("12.5"); err != nil {
		t.Fatalf("SetDailyBudgetString: %v", err)
	}
	if tracker.Profile.DailyBudget() != 500 {
		t.Fatalf("DailyBudget = %d, want 500 untouched", tracker.Profile.DailyBudget())
	}
	if db.profile.DailyBudget != 500 {
		t.Fatalf("persisted DailyBudget = %d, want 500", db.profile.DailyBudget)
	}

	if err := tracker.SetDailyBudgetString("800"); err != nil {
		t.Fatalf("SetDailyBudgetString: %v", err)
	}
	if db.profile.DailyBudget != 800 {
		t.Fatalf("persisted DailyBudget = %d, want 800", db.profile.DailyBudget)
	}
}

func TestSnapshotDay(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	tracker := openAt(t, db, "2026-08-31 12:00")

	tracker.AddExpense(ledger.Draft{Amount: 150, Merchant: "Swiggy", Category: "Food"})

	day, err := tracker.SnapshotDay("2026-08-31")
	if err != nil {
		t.Fatalf("SnapshotDay: %v", err)
	}
	if day.Spent != 150 || day.DailyBudget != 500 || day.CarryForward != 350 {
		t.Fatalf("snapshot = %+v", day)
	}
	if day.LastUpdated == 0 {
		t.Fatal("LastUpdated not stamped")
	}

	if len(db.history) != 1 || db.history[0].Date != "2026-08-31" {
		t.Fatalf("persisted history = %+v", db.history)
	}

	// Snapshotting again replaces, not duplicates
	tracker.AddExpense(ledger.Draft{Amount: 50, Category: "Transport"})
	if _, err := tracker.SnapshotDay("2026-08-31"); err != nil {
		t.Fatalf("SnapshotDay: %v", err)
	}
	if len(db.history) != 1 {
		t.Fatalf("history len = %d, want 1", len(db.history))
	}
	if db.history[0].Spent != 200 {
		t.Fatalf("Spent = %v, want 200", db.history[0].Spent)
	}
}

func TestEndToEndSingleExpenseDay(t *testing.T) {
	db := newFakeDB()
	tracker := openAt(t, db, "2026-08-31 09:00")

	tracker.AddExpense(ledger.Draft{Amount: 150, Merchant: "Swiggy", Category: "Food"})

	sum := tracker.SummarizeDay(tracker.Today())
	if sum.Spent != 150 {
		t.Fatalf("Spent = %v, want 150", sum.Spent)
	}
	if sum.Available != 350 {
		t.Fatalf("Available = %v, want 350", sum.Available)
	}
	if string(sum.Tier) != "medium" {
		t.Fatalf("Tier = %s, want medium (exactly 30%%)", sum.Tier)
	}
}

func TestClearHistoryWritesThrough(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	db.history = []model.BudgetDay{{Date: "2026-08-30"}}
	tracker := openAt(t, db, "2026-08-31 12:00")

	if err := tracker.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if len(db.history) != 0 {
		t.Fatalf("persisted history len = %d, want 0", len(db.history))
	}
	if len(tracker.History.All()) != 0 {
		t.Fatalf("in-memory history not cleared")
	}
}

func TestUpdateBudgetDayMergePatch(t *testing.T) {
	db := newFakeDB()
	db.lastReset = "2026-08-31"
	db.history = []model.BudgetDay{
		{Date: "2026-08-30", DailyBudget: 500, Spent: 120, CarryForward: 380},
	}
	tracker := openAt(t, db, "2026-08-31 12:00")

	spent := 140.0
	if err := tracker.UpdateBudgetDay("2026-08-30", model.BudgetDayPatch{Spent: &spent}); err != nil {
		t.Fatalf("UpdateBudgetDay: %v", err)
	}

	if db.history[0].Spent != 140 {
		t.Fatalf("persisted Spent = %v, want 140", db.history[0].Spent)
	}
	if db.history[0].DailyBudget != 500 {
		t.Fatalf("DailyBudget changed: %d", db.history[0].DailyBudget)
	}
}
