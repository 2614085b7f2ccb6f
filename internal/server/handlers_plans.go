package server

import (
	"net/http"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/planner"
	"github.com/google/uuid"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(s.planner.Plans()))
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	p := s.planner.Create(r.Context(), req.Name, req.Description)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	p, ok := s.planner.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var upd planner.Update
	if !readJSON(w, r, &upd) {
		return
	}
	p, ok := s.planner.UpdatePlan(r.Context(), id, upd)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	s.planner.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleActivatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !s.planner.SetActive(r.Context(), id) {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	p, _ := s.planner.Get(id)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAssignDay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}
	var req struct {
		WorkoutID *uuid.UUID `json:"workout_id"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	entry, ok := s.planner.AssignDay(r.Context(), id, day, req.WorkoutID)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// handleCompleteDay marks the day done and, when a workout is scheduled,
// bumps that workout's completion counter. Repeats are idempotent: a day
// already completed does not bump the counter again.
func (s *Server) handleCompleteDay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}
	entry, changed, ok := s.planner.CompleteDay(r.Context(), id, day)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	if changed && entry.WorkoutID != nil {
		s.workouts.RecordCompletion(r.Context(), *entry.WorkoutID)
	}
	s.writeDayWithPlan(w, id, entry)
}

func (s *Server) handleUncompleteDay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}
	entry, _, ok := s.planner.UncompleteDay(r.Context(), id, day)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	s.writeDayWithPlan(w, id, entry)
}

func (s *Server) handleUpdateDayNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	entry, ok := s.planner.UpdateDayNotes(r.Context(), id, day, req.Notes)
	if !ok {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// writeDayWithPlan returns the mutated day together with the plan's
// recomputed progress counters, so clients refresh both in one round trip.
func (s *Server) writeDayWithPlan(w http.ResponseWriter, planID uuid.UUID, entry models.DailyWorkout) {
	p, _ := s.planner.Get(planID)
	writeJSON(w, http.StatusOK, struct {
		Day  models.DailyWorkout `json:"day"`
		Plan models.WeeklyPlan   `json:"plan"`
	}{Day: entry, Plan: p})
}

// handleTodaysWorkout resolves the current weekday against the active plan
// and inlines the scheduled workout, if any.
func (s *Server) handleTodaysWorkout(w http.ResponseWriter, r *http.Request) {
	today := s.planner.TodaysWorkout()

	resp := struct {
		planner.Today
		Workout *models.Workout `json:"workout,omitempty"`
	}{Today: today}

	if today.WorkoutID != nil {
		if wk, ok := s.workouts.Get(*today.WorkoutID); ok {
			resp.Workout = &wk
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
