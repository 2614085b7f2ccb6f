package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/claude/ironweek/internal/catalog"
	"github.com/claude/ironweek/internal/hydration"
	"github.com/claude/ironweek/internal/models"
	"github.com/claude/ironweek/internal/planner"
	"github.com/claude/ironweek/internal/workouts"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog   *catalog.Store
	workouts  *workouts.Store
	planner   *planner.Store
	hydration *hydration.Store
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the API open; tsnet deployments rely on tailnet access control.
func New(cat *catalog.Store, wk *workouts.Store, pl *planner.Store, hy *hydration.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		catalog:   cat,
		workouts:  wk,
		planner:   pl,
		hydration: hy,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(api chi.Router) {
		if s.apiKey != "" {
			api.Use(APIKeyAuth(s.apiKey))
		}

		api.Route("/muscle-groups", func(r chi.Router) {
			r.Get("/", s.handleListMuscleGroups)
			r.Post("/", s.handleCreateMuscleGroup)
			r.Get("/{id}", s.handleGetMuscleGroup)
			r.Patch("/{id}", s.handleUpdateMuscleGroup)
			r.Delete("/{id}", s.handleDeleteMuscleGroup)
		})

		api.Route("/exercises", func(r chi.Router) {
			r.Get("/", s.handleListExercises)
			r.Post("/", s.handleCreateExercise)
			r.Get("/{id}", s.handleGetExercise)
			r.Patch("/{id}", s.handleUpdateExercise)
			r.Delete("/{id}", s.handleDeleteExercise)
		})

		api.Route("/workouts", func(r chi.Router) {
			r.Get("/", s.handleListWorkouts)
			r.Post("/", s.handleCreateWorkout)
			r.Get("/{id}", s.handleGetWorkout)
			r.Patch("/{id}", s.handleUpdateWorkout)
			r.Delete("/{id}", s.handleDeleteWorkout)
			r.Post("/{id}/duplicate", s.handleDuplicateWorkout)
			r.Get("/{id}/exercises", s.handleWorkoutExercises)
		})

		api.Route("/plans", func(r chi.Router) {
			r.Get("/", s.handleListPlans)
			r.Post("/", s.handleCreatePlan)
			r.Get("/today", s.handleTodaysWorkout)
			r.Get("/{id}", s.handleGetPlan)
			r.Patch("/{id}", s.handleUpdatePlan)
			r.Delete("/{id}", s.handleDeletePlan)
			r.Post("/{id}/activate", s.handleActivatePlan)
			r.Post("/{id}/days/{day}/assign", s.handleAssignDay)
			r.Post("/{id}/days/{day}/complete", s.handleCompleteDay)
			r.Post("/{id}/days/{day}/uncomplete", s.handleUncompleteDay)
			r.Put("/{id}/days/{day}/notes", s.handleUpdateDayNotes)
		})

		api.Route("/water", func(r chi.Router) {
			r.Get("/", s.handleWaterStatus)
			r.Post("/entries", s.handleAddWater)
			r.Delete("/entries/{id}", s.handleRemoveWaterEntry)
			r.Post("/reset", s.handleResetWater)
			r.Get("/config", s.handleGetWaterConfig)
			r.Put("/config", s.handleSetWaterConfig)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// readJSON decodes the request body into v, writing a 400 and returning
// false on malformed input.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// orEmpty keeps JSON list responses as [] instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// parseIDParam parses the {id} URL parameter, writing a 400 on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// parseDayParam parses the {day} URL parameter, writing a 400 on failure.
func parseDayParam(w http.ResponseWriter, r *http.Request) (models.DayOfWeek, bool) {
	day := models.DayOfWeek(chi.URLParam(r, "day"))
	if !day.Valid() {
		writeError(w, http.StatusBadRequest, "invalid day of week")
		return "", false
	}
	return day, true
}
