package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressionType describes how an exercise's working weight advances
// between sessions.
type ProgressionType string

const (
	ProgressionFixed  ProgressionType = "fixed"
	ProgressionRange  ProgressionType = "range"
	ProgressionLinear ProgressionType = "linear"
)

// Valid reports whether p is a known progression type.
func (p ProgressionType) Valid() bool {
	switch p {
	case ProgressionFixed, ProgressionRange, ProgressionLinear:
		return true
	}
	return false
}

// Weight units accepted on exercises.
const (
	WeightUnitKg  = "kg"
	WeightUnitLbs = "lbs"
)

// DefaultIncrementSize is the weight increment applied when auto progression
// is enabled and no explicit increment was configured.
const DefaultIncrementSize = 2.5

// WarmupSet is a single warmup prescription: reps at a percentage of the
// working weight.
type WarmupSet struct {
	Reps       int     `json:"reps"`
	Percentage float64 `json:"percentage"`
}

// Exercise is a reusable movement definition with default set/rep/rest/weight
// parameters. MuscleGroupID is a weak reference: the group may be deleted out
// from under it, and lookups must tolerate that.
type Exercise struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	MuscleGroupID   uuid.UUID       `json:"muscle_group_id"`
	DefaultSets     int             `json:"default_sets"`
	DefaultReps     int             `json:"default_reps"`
	DefaultRestTime int             `json:"default_rest_time_sec"`
	DefaultWeight   *float64        `json:"default_weight,omitempty"`
	WeightUnit      string          `json:"weight_unit"`
	Notes           string          `json:"notes,omitempty"`
	ProgressionType ProgressionType `json:"progression_type"`
	WarmupSets      []WarmupSet     `json:"warmup_sets"`
	AutoProgression bool            `json:"auto_progression"`
	IncrementSize   float64         `json:"increment_size"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Normalize fills unset optional fields with their defaults. Called on
// create and when migrating stored payloads from before these fields existed.
func (e *Exercise) Normalize() {
	if e.WeightUnit == "" {
		e.WeightUnit = WeightUnitKg
	}
	if e.ProgressionType == "" {
		e.ProgressionType = ProgressionFixed
	}
	if e.WarmupSets == nil {
		e.WarmupSets = []WarmupSet{}
	}
	if e.IncrementSize == 0 {
		e.IncrementSize = DefaultIncrementSize
	}
}
