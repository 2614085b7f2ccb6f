package catalog

import (
	"context"
	"fmt"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
)

// bootstrapPayload is what the first-launch flag key stores once seeding ran.
var bootstrapPayload = []byte(`{"seeded":true}`)

type seedGroup struct {
	name  string
	color string
}

var defaultMuscleGroups = []seedGroup{
	{"Chest", "#E53935"},
	{"Back", "#1E88E5"},
	{"Legs", "#43A047"},
	{"Shoulders", "#FB8C00"},
	{"Arms", "#8E24AA"},
	{"Core", "#FDD835"},
}

type seedExercise struct {
	name    string
	group   string
	sets    int
	reps    int
	restSec int
	notes   string
}

var defaultExercises = []seedExercise{
	{"Bench Press", "Chest", 3, 8, 120, "Barbell, flat bench"},
	{"Pull-Up", "Back", 3, 8, 120, ""},
	{"Barbell Row", "Back", 3, 10, 90, ""},
	{"Squat", "Legs", 5, 5, 180, "High bar"},
	{"Romanian Deadlift", "Legs", 3, 10, 120, ""},
	{"Overhead Press", "Shoulders", 3, 8, 120, ""},
	{"Biceps Curl", "Arms", 3, 12, 60, "Dumbbells"},
	{"Plank", "Core", 3, 1, 60, "Hold 60 seconds per rep"},
}

// Seed creates the default muscle groups and example exercises exactly once.
// A boolean flag under a fixed storage key gates the whole operation, so
// deleting the defaults later does not resurrect them on the next start.
func (s *Store) Seed(ctx context.Context) error {
	_, seeded, err := s.db.Load(ctx, storage.KeyBootstrap)
	if err != nil {
		return fmt.Errorf("checking bootstrap flag: %w", err)
	}
	if seeded {
		return nil
	}

	groupIDs := make(map[string]models.MuscleGroup, len(defaultMuscleGroups))
	for _, g := range defaultMuscleGroups {
		groupIDs[g.name] = s.CreateMuscleGroup(ctx, g.name, g.color)
	}

	for _, e := range defaultExercises {
		s.CreateExercise(ctx, models.Exercise{
			Name:            e.name,
			MuscleGroupID:   groupIDs[e.group].ID,
			DefaultSets:     e.sets,
			DefaultReps:     e.reps,
			DefaultRestTime: e.restSec,
			Notes:           e.notes,
		})
	}

	if err := s.db.Save(ctx, storage.KeyBootstrap, 1, bootstrapPayload); err != nil {
		return fmt.Errorf("writing bootstrap flag: %w", err)
	}
	s.log.Info("seeded default catalog",
		"muscle_groups", len(defaultMuscleGroups),
		"exercises", len(defaultExercises))
	return nil
}
