package server

import (
	"errors"
	"net/http"

	"github.com/claude/ironweek/internal/hydration"
	"github.com/claude/ironweek/internal/models"
)

func (s *Server) handleWaterStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hydration.Status())
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int    `json:"amount"`
		Note   string `json:"note"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.Amount > hydration.MaxEntryAmount {
		writeError(w, http.StatusBadRequest, "amount exceeds 10000 ml")
		return
	}
	entry, err := s.hydration.AddWater(r.Context(), req.Amount, req.Note)
	if err != nil {
		if errors.Is(err, hydration.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleRemoveWaterEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if !s.hydration.RemoveEntry(r.Context(), id) {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetWater(w http.ResponseWriter, r *http.Request) {
	s.hydration.ResetDay(r.Context())
	writeJSON(w, http.StatusOK, s.hydration.Status())
}

func (s *Server) handleGetWaterConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hydration.Config())
}

func (s *Server) handleSetWaterConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.WaterConfig
	if !readJSON(w, r, &cfg) {
		return
	}
	if err := s.hydration.SetConfig(r.Context(), cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.hydration.Status())
}
