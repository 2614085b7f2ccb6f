// Package workouts manages workout definitions: named, ordered groups of
// exercise references with display metadata.
package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
	"github.com/google/uuid"
)

const schemaVersion = 1

// Store is the workout state container. Mutations commit in memory first;
// the store write is best-effort.
type Store struct {
	mu  sync.RWMutex
	db  storage.Store
	log *slog.Logger
	now func() time.Time

	workouts []models.Workout
}

type snapshot struct {
	Workouts []models.Workout `json:"workouts"`
}

// New loads workouts from the store.
func New(ctx context.Context, db storage.Store, log *slog.Logger) (*Store, error) {
	s := &Store{db: db, log: log, now: time.Now}

	snap, ok, err := db.Load(ctx, storage.KeyWorkouts)
	if err != nil {
		return nil, fmt.Errorf("loading workout state: %w", err)
	}
	if !ok {
		return s, nil
	}

	var st snapshot
	if err := json.Unmarshal(snap.Payload, &st); err != nil {
		return nil, fmt.Errorf("decoding workout state: %w", err)
	}
	s.workouts = st.Workouts
	return s, nil
}

// persist writes the current state back. Caller must hold mu.
func (s *Store) persist(ctx context.Context) {
	payload, err := json.Marshal(snapshot{Workouts: s.workouts})
	if err != nil {
		s.log.Error("workout state marshal failed", "error", err)
		return
	}
	if err := s.db.Save(ctx, storage.KeyWorkouts, schemaVersion, payload); err != nil {
		s.log.Error("workout state write failed", "error", err)
	}
}

// Update carries the fields of a partial workout update. Nil fields are left
// unchanged.
type Update struct {
	Name              *string      `json:"name,omitempty"`
	ExerciseIDs       *[]uuid.UUID `json:"exercise_ids,omitempty"`
	EstimatedDuration *int         `json:"estimated_duration_min,omitempty"`
	Notes             *string      `json:"notes,omitempty"`
}

// Create adds a workout with the given ordered exercise references. The ids
// are not validated against the catalog.
func (s *Store) Create(ctx context.Context, name string, exerciseIDs []uuid.UUID, estimatedDuration int, notes string) models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exerciseIDs == nil {
		exerciseIDs = []uuid.UUID{}
	}
	now := s.now()
	w := models.Workout{
		ID:                uuid.New(),
		Name:              name,
		ExerciseIDs:       exerciseIDs,
		EstimatedDuration: estimatedDuration,
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.workouts = append(s.workouts, w)
	s.persist(ctx)
	return w
}

// UpdateWorkout merges the update and bumps UpdatedAt. A missing id is a
// silent no-op.
func (s *Store) UpdateWorkout(ctx context.Context, id uuid.UUID, upd Update) (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workouts {
		if s.workouts[i].ID != id {
			continue
		}
		w := &s.workouts[i]
		if upd.Name != nil {
			w.Name = *upd.Name
		}
		if upd.ExerciseIDs != nil {
			w.ExerciseIDs = *upd.ExerciseIDs
		}
		if upd.EstimatedDuration != nil {
			w.EstimatedDuration = *upd.EstimatedDuration
		}
		if upd.Notes != nil {
			w.Notes = *upd.Notes
		}
		w.UpdatedAt = s.now()
		s.persist(ctx)
		return *w, true
	}
	return models.Workout{}, false
}

// Delete hard-deletes the workout. Plans referencing it keep the dangling
// id. A missing id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Duplicate clones the workout under a new id, resets its completion
// counters, and appends " (Copy)" to the name.
func (s *Store) Duplicate(ctx context.Context, id uuid.UUID) (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.workouts {
		if w.ID != id {
			continue
		}
		now := s.now()
		dup := w
		dup.ID = uuid.New()
		dup.Name = w.Name + models.CopySuffix
		dup.ExerciseIDs = append([]uuid.UUID(nil), w.ExerciseIDs...)
		dup.TimesCompleted = 0
		dup.LastCompletedAt = nil
		dup.CreatedAt = now
		dup.UpdatedAt = now
		s.workouts = append(s.workouts, dup)
		s.persist(ctx)
		return dup, true
	}
	return models.Workout{}, false
}

// RecordCompletion bumps the workout's completion counter. Called when a
// plan day referencing it is marked done. A missing id is a silent no-op,
// consistent with dangling-reference tolerance.
func (s *Store) RecordCompletion(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workouts {
		if s.workouts[i].ID == id {
			now := s.now()
			s.workouts[i].TimesCompleted++
			s.workouts[i].LastCompletedAt = &now
			s.persist(ctx)
			return
		}
	}
}

// Workouts returns all workouts in creation order.
func (s *Store) Workouts() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Workout(nil), s.workouts...)
}

// Get looks a workout up by id.
func (s *Store) Get(id uuid.UUID) (models.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}
