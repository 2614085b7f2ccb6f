package models

import "testing"

// TestCalculateWaterGoalBaseline verifies the reference case: 70 kg sedentary
// in a temperate climate yields 2450 ml raw, rounded up to 2500.
func TestCalculateWaterGoalBaseline(t *testing.T) {
	goal := CalculateWaterGoal(WaterConfig{
		WeightKg:      70,
		ActivityLevel: ActivitySedentary,
		Climate:       ClimateTemperate,
	})
	if goal != 2500 {
		t.Errorf("goal = %d, want 2500", goal)
	}
}

// TestCalculateWaterGoalClampFloor verifies that a light, inactive person is
// still prescribed the 1500 ml minimum (40 kg raw value is 1400).
func TestCalculateWaterGoalClampFloor(t *testing.T) {
	goal := CalculateWaterGoal(WaterConfig{
		WeightKg:      40,
		ActivityLevel: ActivitySedentary,
		Climate:       ClimateTemperate,
	})
	if goal != 1500 {
		t.Errorf("goal = %d, want 1500", goal)
	}
}

// TestCalculateWaterGoalClampCeiling verifies that extreme inputs clamp to
// the 6000 ml ceiling (150 kg athlete in very hot climate is 11760 raw).
func TestCalculateWaterGoalClampCeiling(t *testing.T) {
	goal := CalculateWaterGoal(WaterConfig{
		WeightKg:      150,
		ActivityLevel: ActivityAthlete,
		Climate:       ClimateVeryHot,
	})
	if goal != 6000 {
		t.Errorf("goal = %d, want 6000", goal)
	}
}

// TestCalculateWaterGoalMultipliers verifies activity and climate multipliers
// compound before rounding.
func TestCalculateWaterGoalMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		activity ActivityLevel
		climate  Climate
		want     int
	}{
		// 70*35 = 2450 base
		{"moderate temperate", ActivityModerate, ClimateTemperate, 2900}, // 2940 -> 2900
		{"active hot", ActivityActive, ClimateHot, 4100},                 // 4116 -> 4100
		{"sedentary very_hot", ActivitySedentary, ClimateVeryHot, 3400},  // 3430 -> 3400
		{"athlete temperate", ActivityAthlete, ClimateTemperate, 3900},   // 3920 -> 3900
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := CalculateWaterGoal(WaterConfig{
				WeightKg:      70,
				ActivityLevel: tt.activity,
				Climate:       tt.climate,
			})
			if goal != tt.want {
				t.Errorf("goal = %d, want %d", goal, tt.want)
			}
		})
	}
}

// TestCalculateWaterGoalCustomOverride verifies that a positive custom goal
// bypasses both the formula and the clamp.
func TestCalculateWaterGoalCustomOverride(t *testing.T) {
	custom := 8000
	goal := CalculateWaterGoal(WaterConfig{
		WeightKg:      70,
		ActivityLevel: ActivitySedentary,
		Climate:       ClimateTemperate,
		CustomGoal:    &custom,
	})
	if goal != 8000 {
		t.Errorf("goal = %d, want 8000", goal)
	}
}

// TestWaterConfigValidate covers the rejection paths callers rely on before
// invoking the goal formula.
func TestWaterConfigValidate(t *testing.T) {
	valid := WaterConfig{WeightKg: 70, ActivityLevel: ActivityModerate, Climate: ClimateHot}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := []WaterConfig{
		{WeightKg: 0, ActivityLevel: ActivityModerate, Climate: ClimateHot},
		{WeightKg: -5, ActivityLevel: ActivityModerate, Climate: ClimateHot},
		{WeightKg: 70, ActivityLevel: "extreme", Climate: ClimateHot},
		{WeightKg: 70, ActivityLevel: ActivityModerate, Climate: "arctic"},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}

	zero := 0
	withZeroCustom := valid
	withZeroCustom.CustomGoal = &zero
	if err := withZeroCustom.Validate(); err == nil {
		t.Error("expected validation error for non-positive custom goal")
	}
}
