package catalog

import (
	"encoding/json"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
)

// payloadMigrations upgrades stored catalog payloads. steps[i] migrates
// version i+1 to i+2.
var payloadMigrations = []storage.MigrateFunc{
	migrateV1AddExerciseDefaults,
}

// migrateV1AddExerciseDefaults backfills the exercise fields introduced in
// schema version 2 (weight unit, progression, warmup sets, auto progression,
// increment size, notes) with their defaults when absent. default_weight
// stays absent: it never had an implied value.
func migrateV1AddExerciseDefaults(payload []byte) ([]byte, error) {
	var st struct {
		MuscleGroups json.RawMessage  `json:"muscle_groups"`
		Exercises    []map[string]any `json:"exercises"`
	}
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, err
	}

	for _, ex := range st.Exercises {
		if _, ok := ex["weight_unit"]; !ok {
			ex["weight_unit"] = models.WeightUnitKg
		}
		if _, ok := ex["progression_type"]; !ok {
			ex["progression_type"] = string(models.ProgressionFixed)
		}
		if _, ok := ex["warmup_sets"]; !ok {
			ex["warmup_sets"] = []models.WarmupSet{}
		}
		if _, ok := ex["auto_progression"]; !ok {
			ex["auto_progression"] = false
		}
		if _, ok := ex["increment_size"]; !ok {
			ex["increment_size"] = models.DefaultIncrementSize
		}
		if _, ok := ex["notes"]; !ok {
			ex["notes"] = ""
		}
	}

	return json.Marshal(st)
}
