package models

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek is a lowercase weekday name as stored and exchanged over the API.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// WeekDays lists the seven days in display order, Monday first.
var WeekDays = [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d names one of the seven weekdays.
func (d DayOfWeek) Valid() bool {
	for _, day := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// DayFromTime maps a point in time to its weekday name.
func DayFromTime(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// DailyWorkout is one slot in a weekly plan. A nil WorkoutID means a rest
// day. Completion is tracked per slot; a rest day may also be marked
// completed ("rested as planned").
type DailyWorkout struct {
	Day         DayOfWeek  `json:"day"`
	WorkoutID   *uuid.UUID `json:"workout_id,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// WeeklyPlan maps each of the seven weekdays to a workout or rest.
// Invariant: Days always holds exactly one entry per weekday, in WeekDays
// order. CompletedDays and CompletionRate are derived; Recompute maintains
// them after every completion toggle.
type WeeklyPlan struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Days           []DailyWorkout `json:"days"`
	CompletedDays  int            `json:"completed_days"`
	CompletionRate float64        `json:"completion_rate"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewWeeklyDays builds the seven-slot skeleton, all rest days.
func NewWeeklyDays() []DailyWorkout {
	days := make([]DailyWorkout, 0, len(WeekDays))
	for _, d := range WeekDays {
		days = append(days, DailyWorkout{Day: d})
	}
	return days
}

// DayEntry returns a pointer into Days for the given weekday, or nil if the
// weekday is unknown. With the seven-slot invariant held, a valid weekday
// always resolves.
func (p *WeeklyPlan) DayEntry(d DayOfWeek) *DailyWorkout {
	for i := range p.Days {
		if p.Days[i].Day == d {
			return &p.Days[i]
		}
	}
	return nil
}

// Recompute rederives CompletedDays and CompletionRate from the day slots.
func (p *WeeklyPlan) Recompute() {
	completed := 0
	for _, d := range p.Days {
		if d.IsCompleted {
			completed++
		}
	}
	p.CompletedDays = completed
	p.CompletionRate = float64(completed) / 7 * 100
}
