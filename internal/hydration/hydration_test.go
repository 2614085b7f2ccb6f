package hydration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/storage"
	"github.com/google/uuid"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var noon = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()
	db := storage.NewMemory()
	s, err := newStore(context.Background(), db, discard(), fixedClock(noon))
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	return s, db
}

// TestFreshStoreDefaults verifies a new tracker starts with the default
// config and its computed goal (70 kg sedentary temperate -> 2500).
func TestFreshStoreDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	st := s.Status()
	if st.DailyGoal != 2500 {
		t.Errorf("goal = %d, want 2500", st.DailyGoal)
	}
	if st.CurrentIntake != 0 || len(st.Entries) != 0 {
		t.Errorf("fresh store not empty: %d intake, %d entries", st.CurrentIntake, len(st.Entries))
	}
	if st.LastResetDate != "2026-08-31" {
		t.Errorf("reset date = %q", st.LastResetDate)
	}
}

// TestAddRemoveRoundTrip verifies the round-trip law: adding then removing
// an entry restores the running total exactly.
func TestAddRemoveRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddWater(ctx, 500, ""); err != nil {
		t.Fatal(err)
	}
	entry, err := s.AddWater(ctx, 300, "post workout")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Status().CurrentIntake; got != 800 {
		t.Fatalf("intake = %d, want 800", got)
	}

	if !s.RemoveEntry(ctx, entry.ID) {
		t.Fatal("remove failed")
	}
	st := s.Status()
	if st.CurrentIntake != 500 {
		t.Errorf("intake after remove = %d, want 500", st.CurrentIntake)
	}
	if len(st.Entries) != 1 {
		t.Errorf("entries after remove = %d, want 1", len(st.Entries))
	}

	if s.RemoveEntry(ctx, entry.ID) {
		t.Error("second remove of same entry reported success")
	}
	if s.RemoveEntry(ctx, uuid.New()) {
		t.Error("remove of unknown entry reported success")
	}
}

// TestIntakeNeverNegative verifies the zero floor holds regardless of call
// order.
func TestIntakeNeverNegative(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	big, _ := s.AddWater(ctx, 1000, "")
	s.ResetDay(ctx)
	s.AddWater(ctx, 200, "")

	// big's entry is gone after reset; removing it is a no-op.
	s.RemoveEntry(ctx, big.ID)
	if got := s.Status().CurrentIntake; got != 200 {
		t.Errorf("intake = %d, want 200", got)
	}
}

// TestAddWaterRejectsNonPositive covers the validation error path.
func TestAddWaterRejectsNonPositive(t *testing.T) {
	s, _ := newTestStore(t)
	for _, amount := range []int{0, -100} {
		if _, err := s.AddWater(context.Background(), amount, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("AddWater(%d) err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

// TestSetConfigRecomputesGoal verifies new inputs immediately rederive the
// goal without touching the running intake.
func TestSetConfigRecomputesGoal(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddWater(ctx, 400, "")

	cfg := models.WaterConfig{WeightKg: 90, ActivityLevel: models.ActivityActive, Climate: models.ClimateHot}
	if err := s.SetConfig(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	st := s.Status()
	// 90*35*1.4*1.2 = 5292 -> 5300
	if st.DailyGoal != 5300 {
		t.Errorf("goal = %d, want 5300", st.DailyGoal)
	}
	if st.CurrentIntake != 400 {
		t.Errorf("intake = %d, want 400 (config change must not reset)", st.CurrentIntake)
	}

	if err := s.SetConfig(ctx, models.WaterConfig{WeightKg: -1}); err == nil {
		t.Error("invalid config accepted")
	}
}

// TestDayRolloverOnLoad verifies the automatic reset: state saved yesterday
// is zeroed when the store is rebuilt today, and same-day reloads keep it.
func TestDayRolloverOnLoad(t *testing.T) {
	db := storage.NewMemory()
	ctx := context.Background()

	s, err := newStore(ctx, db, discard(), fixedClock(noon))
	if err != nil {
		t.Fatal(err)
	}
	s.AddWater(ctx, 1500, "")

	// Same day: intake survives.
	sameDay, err := newStore(ctx, db, discard(), fixedClock(noon.Add(5*time.Hour)))
	if err != nil {
		t.Fatal(err)
	}
	if got := sameDay.Status().CurrentIntake; got != 1500 {
		t.Errorf("same-day reload intake = %d, want 1500", got)
	}

	// Next day: automatic reset.
	nextDay, err := newStore(ctx, db, discard(), fixedClock(noon.AddDate(0, 0, 1)))
	if err != nil {
		t.Fatal(err)
	}
	st := nextDay.Status()
	if st.CurrentIntake != 0 || len(st.Entries) != 0 {
		t.Errorf("rollover did not reset: %d intake, %d entries", st.CurrentIntake, len(st.Entries))
	}
	if st.LastResetDate != "2026-09-01" {
		t.Errorf("reset date = %q, want 2026-09-01", st.LastResetDate)
	}
	if st.DailyGoal != 2500 {
		t.Errorf("rollover clobbered the goal: %d", st.DailyGoal)
	}
}

// TestResetDay verifies the explicit reset clears the day and stamps the
// date.
func TestResetDay(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddWater(ctx, 700, "")
	s.ResetDay(ctx)

	st := s.Status()
	if st.CurrentIntake != 0 || len(st.Entries) != 0 {
		t.Errorf("reset left residue: %d intake, %d entries", st.CurrentIntake, len(st.Entries))
	}
}

// TestCustomGoalOverride verifies a custom goal takes effect through the
// config path.
func TestCustomGoalOverride(t *testing.T) {
	s, _ := newTestStore(t)

	custom := 3000
	cfg := defaultConfig
	cfg.CustomGoal = &custom
	if err := s.SetConfig(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	if got := s.Status().DailyGoal; got != 3000 {
		t.Errorf("goal = %d, want 3000", got)
	}
}
