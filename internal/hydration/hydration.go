// Package hydration tracks daily water intake against a goal derived from
// body weight, activity level, and climate.
package hydration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
	"github.com/google/uuid"
)

const schemaVersion = 1

// dateLayout is how LastResetDate is stored; day granularity is all the
// rollover check needs.
const dateLayout = "2006-01-02"

// ErrInvalidAmount rejects non-positive intake amounts.
var ErrInvalidAmount = errors.New("amount must be positive")

// MaxEntryAmount is the largest single intake amount client surfaces accept,
// in ml. The tracker itself enforces no upper bound; the HTTP API and the
// MCP tool both reject larger values before calling AddWater, so the two
// surfaces agree.
const MaxEntryAmount = 10000

// Store is the hydration state container. The only automatic transition in
// the whole system lives here: the day-rollover reset, run once at load, not
// on a timer.
type Store struct {
	mu  sync.Mutex
	db  storage.Store
	log *slog.Logger
	now func() time.Time

	state state
}

type state struct {
	Config        models.WaterConfig  `json:"config"`
	DailyGoal     int                 `json:"daily_goal"`
	CurrentIntake int                 `json:"current_intake"`
	Entries       []models.WaterEntry `json:"entries"`
	LastResetDate string              `json:"last_reset_date"`
}

// defaultConfig is used until the user sets their own.
var defaultConfig = models.WaterConfig{
	WeightKg:      70,
	ActivityLevel: models.ActivitySedentary,
	Climate:       models.ClimateTemperate,
}

// New loads hydration state and performs the day-rollover check: if the
// stored LastResetDate is not today, the day's entries and intake are reset
// before the store is handed out.
func New(ctx context.Context, db storage.Store, log *slog.Logger) (*Store, error) {
	return newStore(ctx, db, log, time.Now)
}

func newStore(ctx context.Context, db storage.Store, log *slog.Logger, now func() time.Time) (*Store, error) {
	s := &Store{db: db, log: log, now: now}

	snap, ok, err := db.Load(ctx, storage.KeyWater)
	if err != nil {
		return nil, fmt.Errorf("loading hydration state: %w", err)
	}
	if ok {
		if err := json.Unmarshal(snap.Payload, &s.state); err != nil {
			return nil, fmt.Errorf("decoding hydration state: %w", err)
		}
	} else {
		s.state = state{
			Config:    defaultConfig,
			DailyGoal: models.CalculateWaterGoal(defaultConfig),
			Entries:   []models.WaterEntry{},
		}
	}

	if today := s.now().Format(dateLayout); s.state.LastResetDate != today {
		s.resetLocked(today)
		s.persist(ctx)
	}
	return s, nil
}

// resetLocked zeroes the day. Caller must hold mu (or be in init).
func (s *Store) resetLocked(today string) {
	s.state.CurrentIntake = 0
	s.state.Entries = []models.WaterEntry{}
	s.state.LastResetDate = today
}

// persist writes the current state back. Caller must hold mu.
func (s *Store) persist(ctx context.Context) {
	payload, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error("hydration state marshal failed", "error", err)
		return
	}
	if err := s.db.Save(ctx, storage.KeyWater, schemaVersion, payload); err != nil {
		s.log.Error("hydration state write failed", "error", err)
	}
}

// Status is the tracker's readable summary.
type Status struct {
	DailyGoal     int                 `json:"daily_goal"`
	CurrentIntake int                 `json:"current_intake"`
	Progress      float64             `json:"progress"`
	Entries       []models.WaterEntry `json:"entries"`
	LastResetDate string              `json:"last_reset_date"`
	Config        models.WaterConfig  `json:"config"`
}

// Status reports the goal, running total, and today's entries.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := 0.0
	if s.state.DailyGoal > 0 {
		progress = float64(s.state.CurrentIntake) / float64(s.state.DailyGoal) * 100
	}
	return Status{
		DailyGoal:     s.state.DailyGoal,
		CurrentIntake: s.state.CurrentIntake,
		Progress:      progress,
		Entries:       append([]models.WaterEntry(nil), s.state.Entries...),
		LastResetDate: s.state.LastResetDate,
		Config:        s.state.Config,
	}
}

// Config returns the current goal inputs.
func (s *Store) Config() models.WaterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Config
}

// SetConfig validates and stores new goal inputs, recomputing the daily
// goal. The running intake is untouched.
func (s *Store) SetConfig(ctx context.Context, cfg models.WaterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Config = cfg
	s.state.DailyGoal = models.CalculateWaterGoal(cfg)
	s.persist(ctx)
	return nil
}

// AddWater appends an entry and bumps the running total. No upper bound is
// enforced here; the API layer rejects implausible amounts before calling.
func (s *Store) AddWater(ctx context.Context, amount int, note string) (models.WaterEntry, error) {
	if amount <= 0 {
		return models.WaterEntry{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.WaterEntry{
		ID:        uuid.New(),
		Amount:    amount,
		Timestamp: s.now(),
		Note:      note,
	}
	s.state.Entries = append(s.state.Entries, entry)
	s.state.CurrentIntake += amount
	s.persist(ctx)
	return entry, nil
}

// RemoveEntry deletes the entry and subtracts its amount, clamping the
// running total at zero. Returns false for an unknown id.
func (s *Store) RemoveEntry(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Entries {
		if e.ID != id {
			continue
		}
		s.state.Entries = append(s.state.Entries[:i], s.state.Entries[i+1:]...)
		s.state.CurrentIntake -= e.Amount
		if s.state.CurrentIntake < 0 {
			s.state.CurrentIntake = 0
		}
		s.persist(ctx)
		return true
	}
	return false
}

// ResetDay zeroes the running total, clears the entries, and stamps the
// reset date.
func (s *Store) ResetDay(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(s.now().Format(dateLayout))
	s.persist(ctx)
}
