// Package store provides the SQLite-backed key-value persistence for
// tracker state. The layout is one JSON-encoded value per well-known
// key, mirroring the storage keys the stores were designed around.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/dburn/internal/model"
)

// Well-known keys. expenses and budgetHistory hold JSON arrays,
// dailyBudget a string-encoded integer, the rest plain strings.
const (
	keyDisplayName   = "displayName"
	keyDailyBudget   = "dailyBudget"
	keyExpenses      = "expenses"
	keyLastResetDate = "lastResetDate"
	keyBudgetHistory = "budgetHistory"
)

// Store is the durable key-value store backing all tracker state.
type Store struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dburn")
}

// DefaultPath returns the full path to the default database file.
func DefaultPath() string {
	return filepath.Join(DataDir(), "dburn.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get returns the raw value for key, with ok=false when unset.
func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// put writes the value for key, replacing any prior value.
func (s *Store) put(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, now)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// LoadProfile reads the persisted profile, falling back to defaults for
// unset or unparseable values.
func (s *Store) LoadProfile() (model.Profile, error) {
	p := model.DefaultProfile()

	name, ok, err := s.get(keyDisplayName)
	if err != nil {
		return p, err
	}
	if ok && name != "" {
		p.DisplayName = name
	}

	raw, ok, err := s.get(keyDailyBudget)
	if err != nil {
		return p, err
	}
	if ok {
		if v, convErr := strconv.Atoi(raw); convErr == nil {
			p.DailyBudget = v
		} else {
			slog.Warn("stored daily budget is not an integer, using default",
				"value", raw)
		}
	}

	return p, nil
}

// SaveDisplayName persists the display name.
func (s *Store) SaveDisplayName(name string) error {
	return s.put(keyDisplayName, name)
}

// SaveDailyBudget persists the daily budget as a string-encoded integer.
func (s *Store) SaveDailyBudget(v int) error {
	return s.put(keyDailyBudget, strconv.Itoa(v))
}

// LoadExpenses reads the persisted expense array in ledger order.
// Malformed JSON is logged and treated as an empty collection.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	raw, ok, err := s.get(keyExpenses)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		slog.Warn("stored expenses are malformed, starting empty", "err", err)
		return nil, nil
	}
	return expenses, nil
}

// SaveExpenses persists the full expense collection.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	return s.put(keyExpenses, string(data))
}

// LoadLastResetDate reads the daily-reset marker, empty if never set.
func (s *Store) LoadLastResetDate() (string, error) {
	raw, _, err := s.get(keyLastResetDate)
	return raw, err
}

// SaveLastResetDate persists the daily-reset marker.
func (s *Store) SaveLastResetDate(date string) error {
	return s.put(keyLastResetDate, date)
}

// LoadHistory reads the persisted budget-day array. Malformed JSON is
// logged and treated as an empty collection.
func (s *Store) LoadHistory() ([]model.BudgetDay, error) {
	raw, ok, err := s.get(keyBudgetHistory)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var days []model.BudgetDay
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		slog.Warn("stored budget history is malformed, starting empty", "err", err)
		return nil, nil
	}
	return days, nil
}

// SaveHistory persists the full budget-day collection.
func (s *Store) SaveHistory(days []model.BudgetDay) error {
	if days == nil {
		days = []model.BudgetDay{}
	}
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("encoding budget history: %w", err)
	}
	return s.put(keyBudgetHistory, string(data))
}
