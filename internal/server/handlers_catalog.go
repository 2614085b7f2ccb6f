package server

import (
	"net/http"

	"github.com/claude/ironweek/internal/catalog"
	"github.com/claude/ironweek/internal/models"
	"github.com/google/uuid"
)

func (s *Server) handleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(s.catalog.MuscleGroups()))
}

func (s *Server) handleCreateMuscleGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	g := s.catalog.CreateMuscleGroup(r.Context(), req.Name, req.Color)
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleGetMuscleGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	g, ok := s.catalog.GetMuscleGroup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "muscle group not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleUpdateMuscleGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var upd catalog.MuscleGroupUpdate
	if !readJSON(w, r, &upd) {
		return
	}
	g, ok := s.catalog.UpdateMuscleGroup(r.Context(), id, upd)
	if !ok {
		writeError(w, http.StatusNotFound, "muscle group not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteMuscleGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	s.catalog.DeleteMuscleGroup(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if group := q.Get("muscle_group"); group != "" {
		id, err := uuid.Parse(group)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid muscle_group id")
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.ExercisesByGroup(id)))
		return
	}
	if search, ok := q["q"]; ok && len(search) > 0 {
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.SearchExercises(search[0])))
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(s.catalog.Exercises()))
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var ex models.Exercise
	if !readJSON(w, r, &ex) {
		return
	}
	if ex.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if ex.ProgressionType != "" && !ex.ProgressionType.Valid() {
		writeError(w, http.StatusBadRequest, "progression_type must be fixed, range, or linear")
		return
	}
	if ex.WeightUnit != "" && ex.WeightUnit != models.WeightUnitKg && ex.WeightUnit != models.WeightUnitLbs {
		writeError(w, http.StatusBadRequest, "weight_unit must be kg or lbs")
		return
	}
	created := s.catalog.CreateExercise(r.Context(), ex)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	ex, ok := s.catalog.GetExercise(id)
	if !ok {
		writeError(w, http.StatusNotFound, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, exerciseResponse{
		Exercise:        ex,
		MuscleGroupName: s.catalog.MuscleGroupLabel(ex.MuscleGroupID),
	})
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var upd catalog.ExerciseUpdate
	if !readJSON(w, r, &upd) {
		return
	}
	if upd.ProgressionType != nil && !upd.ProgressionType.Valid() {
		writeError(w, http.StatusBadRequest, "progression_type must be fixed, range, or linear")
		return
	}
	ex, ok := s.catalog.UpdateExercise(r.Context(), id, upd)
	if !ok {
		writeError(w, http.StatusNotFound, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	s.catalog.DeleteExercise(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// exerciseResponse decorates an exercise with its resolved muscle group
// label; dangling references show as "Unknown" rather than erroring.
type exerciseResponse struct {
	models.Exercise
	MuscleGroupName string `json:"muscle_group_name"`
}
