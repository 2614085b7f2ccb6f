// Package planner manages weekly plans: seven-day schedules mapping each
// weekday to a workout or rest, with per-day completion tracking and a
// single active-plan pointer.
package planner

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

// Store is the weekly plan state container. The activePlanID pointer, not
// the per-plan IsActive field, is the source of truth for which plan
// resolves "today's workout"; the flags are kept synchronized for display.
type Store struct {
	mu  sync.RWMutex
	db  storage.Store
	log *slog.Logger
	now func() time.Time

	plans        []models.WeeklyPlan
	activePlanID *uuid.UUID
}

type snapshot struct {
	Plans        []models.WeeklyPlan `json:"plans"`
	ActivePlanID *uuid.UUID          `json:"active_plan_id,omitempty"`
}

// New loads plans from the store. Loaded plans get their seven-day skeleton
// repaired if a stored payload ever violated the invariant, and their
// derived counters rechecked.
func New(ctx context.Context, db storage.Store, log *slog.Logger) (*Store, error) {
	s := &Store{db: db, log: log, now: time.Now}

	snap, ok, err := db.Load(ctx, storage.KeyPlans)
	if err != nil {
		return nil, fmt.Errorf("loading plan state: %w", err)
	}
	if !ok {
		return s, nil
	}

	var st snapshot
	if err := json.Unmarshal(snap.Payload, &st); err != nil {
		return nil, fmt.Errorf("decoding plan state: %w", err)
	}
	s.plans = st.Plans
	s.activePlanID = st.ActivePlanID

	for i := range s.plans {
		s.plans[i].Days = repairDays(s.plans[i].Days)
		s.plans[i].Recompute()
	}
	return s, nil
}

// repairDays rebuilds the seven-slot skeleton, carrying over whatever valid
// slots the stored payload had. Guarantees the one-entry-per-weekday
// invariant regardless of what was persisted.
func repairDays(days []models.DailyWorkout) []models.DailyWorkout {
	fixed := models.NewWeeklyDays()
	for _, d := range days {
		for i := range fixed {
			if fixed[i].Day == d.Day {
				fixed[i] = d
				break
			}
		}
	}
	return fixed
}

// persist writes the current state back. Caller must hold mu.
func (s *Store) persist(ctx context.Context) {
	payload, err := json.Marshal(snapshot{Plans: s.plans, ActivePlanID: s.activePlanID})
	if err != nil {
		s.log.Error("plan state marshal failed", "error", err)
		return
	}
	if err := s.db.Save(ctx, storage.KeyPlans, schemaVersion, payload); err != nil {
		s.log.Error("plan state write failed", "error", err)
	}
}

// Update carries the fields of a partial plan update. Nil fields are left
// unchanged. Day slots are mutated only through the day operations.
type Update struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Create adds a plan with the full seven-day rest skeleton.
func (s *Store) Create(ctx context.Context, name, description string) models.WeeklyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := models.WeeklyPlan{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Days:        models.NewWeeklyDays(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.plans = append(s.plans, p)
	s.persist(ctx)
	return p
}

// UpdatePlan merges the update. A missing id is a silent no-op.
func (s *Store) UpdatePlan(ctx context.Context, id uuid.UUID, upd Update) (models.WeeklyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return models.WeeklyPlan{}, false
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	p.UpdatedAt = s.now()
	s.persist(ctx)
	return *p, true
}

// Delete hard-deletes the plan. Deleting the active plan clears the active
// pointer, so "today's workout" degrades to rest.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			if s.activePlanID != nil && *s.activePlanID == id {
				s.activePlanID = nil
			}
			s.persist(ctx)
			return
		}
	}
}

// Plans returns all plans in creation order.
func (s *Store) Plans() []models.WeeklyPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePlans(s.plans)
}

// Get looks a plan up by id.
func (s *Store) Get(id uuid.UUID) (models.WeeklyPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.find(id); p != nil {
		return clonePlan(*p), true
	}
	return models.WeeklyPlan{}, false
}

// SetActive repoints the active-plan pointer and synchronizes the per-plan
// IsActive flags in the same mutation: the previously active plan is
// deactivated, the new one activated. Returns false for an unknown id.
func (s *Store) SetActive(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return false
	}
	for i := range s.plans {
		s.plans[i].IsActive = s.plans[i].ID == id
	}
	// Copy the id: a pointer into s.plans would go stale when Delete
	// shifts the slice.
	s.activePlanID = &id
	s.persist(ctx)
	return true
}

// ActivePlan returns the plan the active pointer refers to, if any.
func (s *Store) ActivePlan() (models.WeeklyPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activePlanID == nil {
		return models.WeeklyPlan{}, false
	}
	if p := s.find(*s.activePlanID); p != nil {
		return clonePlan(*p), true
	}
	return models.WeeklyPlan{}, false
}

// AssignDay sets the day's workout reference, or rest when workoutID is nil.
// Idempotent and always legal: the reference is not validated against the
// workout catalog, and completion state is left untouched.
func (s *Store) AssignDay(ctx context.Context, planID uuid.UUID, day models.DayOfWeek, workoutID *uuid.UUID) (models.DailyWorkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(planID)
	if p == nil {
		return models.DailyWorkout{}, false
	}
	entry := p.DayEntry(day)
	if entry == nil {
		return models.DailyWorkout{}, false
	}
	entry.WorkoutID = workoutID
	p.UpdatedAt = s.now()
	s.persist(ctx)
	return *entry, true
}

// CompleteDay marks the day done and stamps CompletedAt. Rest days may be
// completed too ("rested as planned"). The plan's derived counters are
// recomputed in the same mutation, so readers never observe a day/counter
// mismatch. changed is false when the day was already completed, so callers
// can keep side effects (like workout completion counters) from repeating.
func (s *Store) CompleteDay(ctx context.Context, planID uuid.UUID, day models.DayOfWeek) (entry models.DailyWorkout, changed, ok bool) {
	return s.toggleDay(ctx, planID, day, true)
}

// UncompleteDay clears the day's completion and CompletedAt, recomputing the
// derived counters. Completing then uncompleting restores the day exactly.
func (s *Store) UncompleteDay(ctx context.Context, planID uuid.UUID, day models.DayOfWeek) (entry models.DailyWorkout, changed, ok bool) {
	return s.toggleDay(ctx, planID, day, false)
}

func (s *Store) toggleDay(ctx context.Context, planID uuid.UUID, day models.DayOfWeek, completed bool) (models.DailyWorkout, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(planID)
	if p == nil {
		return models.DailyWorkout{}, false, false
	}
	entry := p.DayEntry(day)
	if entry == nil {
		return models.DailyWorkout{}, false, false
	}
	if entry.IsCompleted == completed {
		return *entry, false, true
	}

	entry.IsCompleted = completed
	if completed {
		now := s.now()
		entry.CompletedAt = &now
	} else {
		entry.CompletedAt = nil
	}
	p.Recompute()
	p.UpdatedAt = s.now()
	s.persist(ctx)
	return *entry, true, true
}

// UpdateDayNotes sets the free-form note on a day slot.
func (s *Store) UpdateDayNotes(ctx context.Context, planID uuid.UUID, day models.DayOfWeek, notes string) (models.DailyWorkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(planID)
	if p == nil {
		return models.DailyWorkout{}, false
	}
	entry := p.DayEntry(day)
	if entry == nil {
		return models.DailyWorkout{}, false
	}
	entry.Notes = notes
	p.UpdatedAt = s.now()
	s.persist(ctx)
	return *entry, true
}

// Today describes what the active plan schedules for the current weekday.
// Rest is true when no plan is active or the day has no workout assigned.
type Today struct {
	Day         models.DayOfWeek `json:"day"`
	Rest        bool             `json:"rest"`
	PlanID      *uuid.UUID       `json:"plan_id,omitempty"`
	PlanName    string           `json:"plan_name,omitempty"`
	WorkoutID   *uuid.UUID       `json:"workout_id,omitempty"`
	IsCompleted bool             `json:"is_completed"`
	Notes       string           `json:"notes,omitempty"`
}

// TodaysWorkout resolves the current weekday against the active plan.
func (s *Store) TodaysWorkout() Today {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := models.DayFromTime(s.now())
	result := Today{Day: day, Rest: true}

	if s.activePlanID == nil {
		return result
	}
	p := s.find(*s.activePlanID)
	if p == nil {
		return result
	}
	entry := p.DayEntry(day)
	if entry == nil {
		return result
	}

	result.PlanID = &p.ID
	result.PlanName = p.Name
	result.WorkoutID = entry.WorkoutID
	result.IsCompleted = entry.IsCompleted
	result.Notes = entry.Notes
	result.Rest = entry.WorkoutID == nil
	return result
}

// find returns a pointer into s.plans. Caller must hold mu.
func (s *Store) find(id uuid.UUID) *models.WeeklyPlan {
	for i := range s.plans {
		if s.plans[i].ID == id {
			return &s.plans[i]
		}
	}
	return nil
}

func clonePlan(p models.WeeklyPlan) models.WeeklyPlan {
	p.Days = append([]models.DailyWorkout(nil), p.Days...)
	return p
}

func clonePlans(plans []models.WeeklyPlan) []models.WeeklyPlan {
	out := make([]models.WeeklyPlan, len(plans))
	for i, p := range plans {
		out[i] = clonePlan(p)
	}
	return out
}
