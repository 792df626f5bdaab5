// Package daemon provides the long-running budget watch service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/pipeline"
	"github.com/theirongolddev/dburn/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath       string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is today's budget state for status/event payloads.
type Snapshot struct {
	At           time.Time     `json:"at"`
	Date         string        `json:"date"`
	DailyBudget  int           `json:"daily_budget"`
	Expenses     int           `json:"expenses"`
	Spent        float64       `json:"spent"`
	Available    float64       `json:"available"`
	PercentSpent float64       `json:"percent_spent"`
	Tier         pipeline.Tier `json:"tier"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Expenses    int     `json:"expenses"`
	Spent       float64 `json:"spent"`
	DailyBudget int     `json:"daily_budget"`
}

func (d Delta) isZero() bool {
	return d.Expenses == 0 && d.Spent == 0 && d.DailyBudget == 0
}

// Event is emitted whenever the budget snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event

	registry    *prometheus.Registry
	pollsTotal  prometheus.Counter
	eventsTotal prometheus.Counter
	spentGauge  prometheus.Gauge
	availGauge  prometheus.Gauge
	countGauge  prometheus.Gauge
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = store.DefaultPath()
	}

	s := &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
		registry:  prometheus.NewRegistry(),
	}

	s.pollsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dburn_polls_total",
		Help: "Number of store polls performed.",
	})
	s.eventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dburn_events_total",
		Help: "Number of budget change events emitted.",
	})
	s.spentGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dburn_spent",
		Help: "Total spent today in currency units.",
	})
	s.availGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dburn_available",
		Help: "Available budget today in currency units (may be negative).",
	})
	s.countGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dburn_expenses",
		Help: "Number of expenses recorded today.",
	})
	s.registry.MustRegister(s.pollsTotal, s.eventsTotal, s.spentGauge, s.availGauge, s.countGauge)

	return s
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed the initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	s.pollsTotal.Inc()

	snap, err := s.loadSnapshot()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		slog.Warn("dburn daemon poll failed", "err", err)
		return
	}

	s.spentGauge.Set(snap.Spent)
	s.availGauge.Set(snap.Available)
	s.countGauge.Set(float64(snap.Expenses))

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = snap.At
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: snap.At,
			Snapshot:  snap,
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "budget_delta",
				Timestamp: snap.At,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.eventsTotal.Inc()
		s.publishEvent(ev)
	}
}

// loadSnapshot reads the store and derives today's figures. The daemon
// never mutates state; records from previous days simply fall outside
// today's date filter, so no reset is applied here.
func (s *Service) loadSnapshot() (Snapshot, error) {
	db, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return Snapshot{}, err
	}
	defer func() { _ = db.Close() }()

	prof, err := db.LoadProfile()
	if err != nil {
		return Snapshot{}, err
	}
	expenses, err := db.LoadExpenses()
	if err != nil {
		return Snapshot{}, err
	}

	now := time.Now()
	today := model.Day(now)

	var todays []model.Expense
	for _, e := range expenses {
		if e.Date == today {
			todays = append(todays, e)
		}
	}

	sum := pipeline.SummarizeDay(today, prof.DailyBudget, todays)
	return Snapshot{
		At:           now,
		Date:         today,
		DailyBudget:  sum.DailyBudget,
		Expenses:     sum.Count,
		Spent:        sum.Spent,
		Available:    sum.Available,
		PercentSpent: sum.PercentSpent,
		Tier:         sum.Tier,
	}, nil
}

func diffSnapshots(prev, curr Snapshot) Delta {
	// A date rollover looks like a full change; report it as such.
	return Delta{
		Expenses:    curr.Expenses - prev.Expenses,
		Spent:       curr.Spent - prev.Spent,
		DailyBudget: curr.DailyBudget - prev.DailyBudget,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send the current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
