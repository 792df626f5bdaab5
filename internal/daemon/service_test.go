package daemon

import (
	"math"
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Date:        "2026-08-31",
		DailyBudget: 500,
		Expenses:    2,
		Spent:       190,
	}
	curr := Snapshot{
		Date:        "2026-08-31",
		DailyBudget: 500,
		Expenses:    3,
		Spent:       240,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Expenses != 1 {
		t.Fatalf("Expenses delta = %d, want 1", delta.Expenses)
	}
	if math.Abs(delta.Spent-50) > 1e-9 {
		t.Fatalf("Spent delta = %v, want 50", delta.Spent)
	}
	if delta.DailyBudget != 0 {
		t.Fatalf("DailyBudget delta = %d, want 0", delta.DailyBudget)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should produce a zero delta")
	}
}

func TestDiffSnapshotsBudgetChange(t *testing.T) {
	prev := Snapshot{DailyBudget: 500}
	curr := Snapshot{DailyBudget: 750}

	delta := diffSnapshots(prev, curr)
	if delta.DailyBudget != 250 {
		t.Fatalf("DailyBudget delta = %d, want 250", delta.DailyBudget)
	}
	if delta.isZero() {
		t.Fatal("budget-only change should not be zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DBPath:       ".",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestPublishEventNotifiesSubscribers(t *testing.T) {
	s := New(Config{DBPath: "."})

	ch := make(chan Event, 1)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	s.publishEvent(Event{ID: 7, Type: "budget_delta"})

	select {
	case ev := <-ch:
		if ev.ID != 7 {
			t.Fatalf("event ID = %d, want 7", ev.ID)
		}
	default:
		t.Fatal("subscriber did not receive the event")
	}
}

func TestPublishEventSkipsFullSubscriber(t *testing.T) {
	s := New(Config{DBPath: "."})

	ch := make(chan Event) // unbuffered, nobody reading
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Must not block
	done := make(chan struct{})
	go func() {
		s.publishEvent(Event{ID: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publishEvent blocked on a full subscriber")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{})

	if s.cfg.Interval != 30*time.Second {
		t.Fatalf("Interval = %v, want 30s", s.cfg.Interval)
	}
	if s.cfg.EventsBuffer != 200 {
		t.Fatalf("EventsBuffer = %d, want 200", s.cfg.EventsBuffer)
	}
	if s.cfg.Addr != "127.0.0.1:8788" {
		t.Fatalf("Addr = %q, want 127.0.0.1:8788", s.cfg.Addr)
	}
	if s.cfg.DBPath == "" {
		t.Fatal("DBPath not defaulted")
	}
}

func TestSnapshotStatus(t *testing.T) {
	s := New(Config{DBPath: ".", Interval: 15 * time.Second})

	s.publishEvent(Event{ID: 1})

	status := s.snapshotStatus()
	if status.PollIntervalSec != 15 {
		t.Fatalf("PollIntervalSec = %d, want 15", status.PollIntervalSec)
	}
	if status.EventCount != 1 {
		t.Fatalf("EventCount = %d, want 1", status.EventCount)
	}
	if status.SubscriberCount != 0 {
		t.Fatalf("SubscriberCount = %d, want 0", status.SubscriberCount)
	}
}
