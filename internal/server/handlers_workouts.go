package server

import (
	"net/http"

	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/workouts"
	"github.com/google/uuid"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(s.workouts.Workouts()))
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              string      `json:"name"`
		ExerciseIDs       []uuid.UUID `json:"exercise_ids"`
		EstimatedDuration int         `json:"estimated_duration_min"`
		Notes             string      `json:"notes"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created := s.workouts.Create(r.Context(), req.Name, req.ExerciseIDs, req.EstimatedDuration, req.Notes)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	wk, ok := s.workouts.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var upd workouts.Update
	if !readJSON(w, r, &upd) {
		return
	}
	wk, ok := s.workouts.UpdateWorkout(r.Context(), id, upd)
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	s.workouts.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDuplicateWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	dup, ok := s.workouts.Duplicate(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}

// handleWorkoutExercises returns the workout's exercises resolved against
// the catalog, in workout order, with dangling references dropped.
func (s *Server) handleWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	wk, ok := s.workouts.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	resolved := models.ResolveExercises(wk.ExerciseIDs, s.catalog.GetExercise)
	writeJSON(w, http.StatusOK, orEmpty(resolved))
}
