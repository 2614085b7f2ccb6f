package models

import (
	"time"

	"github.com/google/uuid"
)

// UnknownMuscleGroup is the label shown when an exercise references a muscle
// group that no longer exists. Deleting a group never cascades, so dangling
// references are expected and resolve to this sentinel.
const UnknownMuscleGroup = "Unknown"

// MuscleGroup is a named category (e.g. "Chest") used to tag exercises.
// Identity is immutable; name and color may change.
type MuscleGroup struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
