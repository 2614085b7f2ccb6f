package models

import (
	"testing"
	"time"
)

// TestNewWeeklyDays verifies the skeleton holds exactly one entry per
// weekday, all rest days, in Monday-first order.
func TestNewWeeklyDays(t *testing.T) {
	days := NewWeeklyDays()
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	seen := map[DayOfWeek]bool{}
	for i, d := range days {
		if d.Day != WeekDays[i] {
			t.Errorf("days[%d].Day = %q, want %q", i, d.Day, WeekDays[i])
		}
		if seen[d.Day] {
			t.Errorf("duplicate day %q", d.Day)
		}
		seen[d.Day] = true
		if d.WorkoutID != nil || d.IsCompleted || d.CompletedAt != nil {
			t.Errorf("days[%d] not a clean rest day: %+v", i, d)
		}
	}
}

// TestRecompute verifies the completion-rate law: rate always equals
// 100 * completed / 7.
func TestRecompute(t *testing.T) {
	p := WeeklyPlan{Days: NewWeeklyDays()}
	p.Recompute()
	if p.CompletedDays != 0 || p.CompletionRate != 0 {
		t.Errorf("empty plan: completed = %d rate = %v, want 0/0", p.CompletedDays, p.CompletionRate)
	}

	p.Days[0].IsCompleted = true
	p.Days[3].IsCompleted = true
	p.Days[6].IsCompleted = true
	p.Recompute()
	if p.CompletedDays != 3 {
		t.Errorf("completed = %d, want 3", p.CompletedDays)
	}
	want := float64(3) / 7 * 100
	if p.CompletionRate != want {
		t.Errorf("rate = %v, want %v", p.CompletionRate, want)
	}

	for i := range p.Days {
		p.Days[i].IsCompleted = true
	}
	p.Recompute()
	if p.CompletedDays != 7 || p.CompletionRate != 100 {
		t.Errorf("full plan: completed = %d rate = %v, want 7/100", p.CompletedDays, p.CompletionRate)
	}
}

// TestDayEntry verifies day lookup resolves every weekday and rejects
// unknown names.
func TestDayEntry(t *testing.T) {
	p := WeeklyPlan{Days: NewWeeklyDays()}
	for _, d := range WeekDays {
		entry := p.DayEntry(d)
		if entry == nil {
			t.Fatalf("DayEntry(%q) = nil", d)
		}
		if entry.Day != d {
			t.Errorf("DayEntry(%q).Day = %q", d, entry.Day)
		}
	}
	if p.DayEntry("someday") != nil {
		t.Error("DayEntry for unknown day should be nil")
	}
}

// TestDayFromTime verifies weekday resolution for a known week
// (2026-08-31 is a Monday).
func TestDayFromTime(t *testing.T) {
	monday := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i, want := range WeekDays {
		got := DayFromTime(monday.AddDate(0, 0, i))
		if got != want {
			t.Errorf("day %d = %q, want %q", i, got, want)
		}
	}
}

// TestDayOfWeekValid exercises the weekday validator used by the API layer.
func TestDayOfWeekValid(t *testing.T) {
	for _, d := range WeekDays {
		if !d.Valid() {
			t.Errorf("%q reported invalid", d)
		}
	}
	for _, d := range []DayOfWeek{"", "Monday", "funday"} {
		if d.Valid() {
			t.Errorf("%q reported valid", d)
		}
	}
}
