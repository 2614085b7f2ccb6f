package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ActivityLevel scales the base hydration need by daily activity.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// Climate scales the base hydration need by ambient conditions.
type Climate string

const (
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
	ClimateVeryHot   Climate = "very_hot"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.0,
	ActivityModerate:  1.2,
	ActivityActive:    1.4,
	ActivityAthlete:   1.6,
}

var climateMultipliers = map[Climate]float64{
	ClimateTemperate: 1.0,
	ClimateHot:       1.2,
	ClimateVeryHot:   1.4,
}

// Daily goal bounds in milliliters.
const (
	MinDailyGoal = 1500
	MaxDailyGoal = 6000
)

// WaterConfig holds the inputs for the daily hydration goal. A positive
// CustomGoal overrides the formula entirely.
type WaterConfig struct {
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Climate       Climate       `json:"climate"`
	CustomGoal    *int          `json:"custom_goal,omitempty"`
}

// Validate checks that the config can be fed to CalculateWaterGoal.
func (c WaterConfig) Validate() error {
	if c.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %v", c.WeightKg)
	}
	if _, ok := activityMultipliers[c.ActivityLevel]; !ok {
		return fmt.Errorf("unknown activity level %q", c.ActivityLevel)
	}
	if _, ok := climateMultipliers[c.Climate]; !ok {
		return fmt.Errorf("unknown climate %q", c.Climate)
	}
	if c.CustomGoal != nil && *c.CustomGoal <= 0 {
		return fmt.Errorf("custom goal must be positive, got %d", *c.CustomGoal)
	}
	return nil
}

// CalculateWaterGoal derives the daily hydration target in milliliters:
// 35 ml per kg of body weight, scaled by activity and climate, rounded to the
// nearest 100 ml and clamped to [1500, 6000]. A positive CustomGoal bypasses
// the formula and the clamp. Callers must validate the config first; the
// function is total over valid inputs.
func CalculateWaterGoal(c WaterConfig) int {
	if c.CustomGoal != nil && *c.CustomGoal > 0 {
		return *c.CustomGoal
	}

	base := c.WeightKg * 35
	goal := base * activityMultipliers[c.ActivityLevel] * climateMultipliers[c.Climate]
	rounded := int(math.Round(goal/100)) * 100

	if rounded < MinDailyGoal {
		return MinDailyGoal
	}
	if rounded > MaxDailyGoal {
		return MaxDailyGoal
	}
	return rounded
}

// WaterEntry is a single logged hydration event in milliliters.
type WaterEntry struct {
	ID        uuid.UUID `json:"id"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}
