package models

import (
	"testing"

	"github.com/google/uuid"
)

// TestExerciseNormalize verifies defaults are backfilled without touching
// fields that were explicitly set.
func TestExerciseNormalize(t *testing.T) {
	e := Exercise{Name: "Bench Press"}
	e.Normalize()

	if e.WeightUnit != WeightUnitKg {
		t.Errorf("weight unit = %q, want %q", e.WeightUnit, WeightUnitKg)
	}
	if e.ProgressionType != ProgressionFixed {
		t.Errorf("progression = %q, want %q", e.ProgressionType, ProgressionFixed)
	}
	if e.WarmupSets == nil {
		t.Error("warmup sets should be an empty slice, not nil")
	}
	if e.IncrementSize != DefaultIncrementSize {
		t.Errorf("increment = %v, want %v", e.IncrementSize, DefaultIncrementSize)
	}

	set := Exercise{
		Name:            "Squat",
		WeightUnit:      WeightUnitLbs,
		ProgressionType: ProgressionLinear,
		WarmupSets:      []WarmupSet{{Reps: 5, Percentage: 50}},
		IncrementSize:   5,
	}
	set.Normalize()
	if set.WeightUnit != WeightUnitLbs || set.ProgressionType != ProgressionLinear ||
		len(set.WarmupSets) != 1 || set.IncrementSize != 5 {
		t.Errorf("Normalize overwrote explicit fields: %+v", set)
	}
}

// TestProgressionTypeValid covers the accepted progression values.
func TestProgressionTypeValid(t *testing.T) {
	for _, p := range []ProgressionType{ProgressionFixed, ProgressionRange, ProgressionLinear} {
		if !p.Valid() {
			t.Errorf("%q reported invalid", p)
		}
	}
	if ProgressionType("wave").Valid() {
		t.Error("unknown progression type reported valid")
	}
}

// TestResolveExercises verifies dangling ids are filtered silently and order
// is preserved for the ones that resolve.
func TestResolveExercises(t *testing.T) {
	a := Exercise{ID: uuid.New(), Name: "A"}
	b := Exercise{ID: uuid.New(), Name: "B"}
	missing := uuid.New()

	lookup := func(id uuid.UUID) (Exercise, bool) {
		switch id {
		case a.ID:
			return a, true
		case b.ID:
			return b, true
		}
		return Exercise{}, false
	}

	got := ResolveExercises([]uuid.UUID{b.ID, missing, a.ID}, lookup)
	if len(got) != 2 {
		t.Fatalf("resolved %d exercises, want 2", len(got))
	}
	if got[0].Name != "B" || got[1].Name != "A" {
		t.Errorf("order not preserved: %q, %q", got[0].Name, got[1].Name)
	}

	if got := ResolveExercises(nil, lookup); len(got) != 0 {
		t.Errorf("nil ids resolved to %d exercises", len(got))
	}
}
