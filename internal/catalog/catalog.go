// Package catalog holds the exercise and muscle group reference data that
// workouts and plans point to by id.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
	"github.com/google/uuid"
)

// schemaVersion is the current catalog payload version. Version 2 added the
// progression and warmup fields on exercises.
const schemaVersion = 2

// Store is the catalog state container. All mutations commit in memory first
// and persist best-effort: a failed write is logged, never surfaced.
type Store struct {
	mu  sync.RWMutex
	db  storage.Store
	log *slog.Logger
	now func() time.Time

	groups    []models.MuscleGroup
	exercises []models.Exercise
}

type snapshot struct {
	MuscleGroups []models.MuscleGroup `json:"muscle_groups"`
	Exercises    []models.Exercise    `json:"exercises"`
}

// New loads the catalog from the store, applying payload migrations when the
// stored version is behind.
func New(ctx context.Context, db storage.Store, log *slog.Logger) (*Store, error) {
	s := &Store{db: db, log: log, now: time.Now}

	snap, ok, err := db.Load(ctx, storage.KeyCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog state: %w", err)
	}
	if !ok {
		return s, nil
	}

	payload, err := storage.MigratePayload(snap.Payload, snap.Version, schemaVersion, payloadMigrations)
	if err != nil {
		return nil, fmt.Errorf("migrating catalog state: %w", err)
	}

	var st snapshot
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, fmt.Errorf("decoding catalog state: %w", err)
	}
	s.groups = st.MuscleGroups
	s.exercises = st.Exercises

	if snap.Version < schemaVersion {
		s.persist(ctx)
	}
	return s, nil
}

// persist writes the current state back. Caller must hold mu.
func (s *Store) persist(ctx context.Context) {
	payload, err := json.Marshal(snapshot{MuscleGroups: s.groups, Exercises: s.exercises})
	if err != nil {
		s.log.Error("catalog state marshal failed", "error", err)
		return
	}
	if err := s.db.Save(ctx, storage.KeyCatalog, schemaVersion, payload); err != nil {
		s.log.Error("catalog state write failed", "error", err)
	}
}

// --- Muscle groups ---

// MuscleGroupUpdate carries the fields of a partial muscle group update.
// Nil fields are left unchanged.
type MuscleGroupUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CreateMuscleGroup adds a group. Duplicate names are permitted.
func (s *Store) CreateMuscleGroup(ctx context.Context, name, color string) models.MuscleGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	g := models.MuscleGroup{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.groups = append(s.groups, g)
	s.persist(ctx)
	return g
}

// UpdateMuscleGroup merges the update into the group. A missing id is a
// silent no-op.
func (s *Store) UpdateMuscleGroup(ctx context.Context, id uuid.UUID, upd MuscleGroupUpdate) (models.MuscleGroup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.groups {
		if s.groups[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.groups[i].Name = *upd.Name
		}
		if upd.Color != nil {
			s.groups[i].Color = *upd.Color
		}
		s.groups[i].UpdatedAt = s.now()
		s.persist(ctx)
		return s.groups[i], true
	}
	return models.MuscleGroup{}, false
}

// DeleteMuscleGroup hard-deletes the group. Exercises referencing it keep
// their dangling id; no cascade. A missing id is a silent no-op.
func (s *Store) DeleteMuscleGroup(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// MuscleGroups returns all groups in creation order.
func (s *Store) MuscleGroups() []models.MuscleGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MuscleGroup(nil), s.groups...)
}

// GetMuscleGroup looks a group up by id.
func (s *Store) GetMuscleGroup(id uuid.UUID) (models.MuscleGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.MuscleGroup{}, false
}

// MuscleGroupLabel resolves a group id to its display name, degrading to the
// "Unknown" sentinel for dangling references.
func (s *Store) MuscleGroupLabel(id uuid.UUID) string {
	if g, ok := s.GetMuscleGroup(id); ok {
		return g.Name
	}
	return models.UnknownMuscleGroup
}

// --- Exercises ---

// ExerciseUpdate carries the fields of a partial exercise update. Nil fields
// are left unchanged.
type ExerciseUpdate struct {
	Name            *string                 `json:"name,omitempty"`
	MuscleGroupID   *uuid.UUID              `json:"muscle_group_id,omitempty"`
	DefaultSets     *int                    `json:"default_sets,omitempty"`
	DefaultReps     *int                    `json:"default_reps,omitempty"`
	DefaultRestTime *int                    `json:"default_rest_time_sec,omitempty"`
	DefaultWeight   *float64                `json:"default_weight,omitempty"`
	WeightUnit      *string                 `json:"weight_unit,omitempty"`
	Notes           *string                 `json:"notes,omitempty"`
	ProgressionType *models.ProgressionType `json:"progression_type,omitempty"`
	WarmupSets      *[]models.WarmupSet     `json:"warmup_sets,omitempty"`
	AutoProgression *bool                   `json:"auto_progression,omitempty"`
	IncrementSize   *float64                `json:"increment_size,omitempty"`
}

// CreateExercise adds an exercise, filling unset optional fields with their
// defaults. The muscle group reference is not validated; a dangling id
// resolves to the "Unknown" label later.
func (s *Store) CreateExercise(ctx context.Context, ex models.Exercise) models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ex.ID = uuid.New()
	ex.CreatedAt = now
	ex.UpdatedAt = now
	ex.Normalize()
	s.exercises = append(s.exercises, ex)
	s.persist(ctx)
	return ex
}

// UpdateExercise merges the update and bumps UpdatedAt. A missing id is a
// silent no-op.
func (s *Store) UpdateExercise(ctx context.Context, id uuid.UUID, upd ExerciseUpdate) (models.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.exercises {
		if s.exercises[i].ID != id {
			continue
		}
		ex := &s.exercises[i]
		if upd.Name != nil {
			ex.Name = *upd.Name
		}
		if upd.MuscleGroupID != nil {
			ex.MuscleGroupID = *upd.MuscleGroupID
		}
		if upd.DefaultSets != nil {
			ex.DefaultSets = *upd.DefaultSets
		}
		if upd.DefaultReps != nil {
			ex.DefaultReps = *upd.DefaultReps
		}
		if upd.DefaultRestTime != nil {
			ex.DefaultRestTime = *upd.DefaultRestTime
		}
		if upd.DefaultWeight != nil {
			ex.DefaultWeight = upd.DefaultWeight
		}
		if upd.WeightUnit != nil {
			ex.WeightUnit = *upd.WeightUnit
		}
		if upd.Notes != nil {
			ex.Notes = *upd.Notes
		}
		if upd.ProgressionType != nil {
			ex.ProgressionType = *upd.ProgressionType
		}
		if upd.WarmupSets != nil {
			ex.WarmupSets = *upd.WarmupSets
		}
		if upd.AutoProgression != nil {
			ex.AutoProgression = *upd.AutoProgression
		}
		if upd.IncrementSize != nil {
			ex.IncrementSize = *upd.IncrementSize
		}
		ex.UpdatedAt = s.now()
		s.persist(ctx)
		return *ex, true
	}
	return models.Exercise{}, false
}

// DeleteExercise hard-deletes the exercise. Workouts referencing it keep the
// dangling id. A missing id is a silent no-op.
func (s *Store) DeleteExercise(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.exercises {
		if s.exercises[i].ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Exercises returns all exercises in creation order.
func (s *Store) Exercises() []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Exercise(nil), s.exercises...)
}

// GetExercise looks an exercise up by id.
func (s *Store) GetExercise(id uuid.UUID) (models.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ex := range s.exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// FindExerciseByName returns the first exercise whose name matches
// case-insensitively.
func (s *Store) FindExerciseByName(name string) (models.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ex := range s.exercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// ExercisesByGroup returns all exercises tagged with the given muscle group.
func (s *Store) ExercisesByGroup(groupID uuid.UUID) []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Exercise
	for _, ex := range s.exercises {
		if ex.MuscleGroupID == groupID {
			result = append(result, ex)
		}
	}
	return result
}

// SearchExercises returns exercises whose name contains q,
// case-insensitively. An empty query matches everything.
func (s *Store) SearchExercises(q string) []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = strings.ToLower(q)
	var result []models.Exercise
	for _, ex := range s.exercises {
		if q == "" || strings.Contains(strings.ToLower(ex.Name), q) {
			result = append(result, ex)
		}
	}
	return result
}
