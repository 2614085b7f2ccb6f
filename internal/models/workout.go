package models

import (
	"time"

	"github.com/google/uuid"
)

// CopySuffix is appended to a workout's name when it is duplicated.
const CopySuffix = " (Copy)"

// Workout is an ordered collection of exercise references with display
// metadata. It does not own exercise data: deleting an exercise leaves its id
// in ExerciseIDs, and resolution filters the dangling entry silently.
type Workout struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	ExerciseIDs       []uuid.UUID `json:"exercise_ids"`
	EstimatedDuration int         `json:"estimated_duration_min"`
	Notes             string      `json:"notes,omitempty"`
	TimesCompleted    int         `json:"times_completed"`
	LastCompletedAt   *time.Time  `json:"last_completed_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// ResolveExercises maps ordered exercise ids to full exercises using the
// given lookup, dropping ids that no longer resolve. Order is preserved.
func ResolveExercises(ids []uuid.UUID, lookup func(uuid.UUID) (Exercise, bool)) []Exercise {
	resolved := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		if ex, ok := lookup(id); ok {
			resolved = append(resolved, ex)
		}
	}
	return resolved
}
