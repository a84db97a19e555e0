package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"courtvista-backend/internal/compare"
	"courtvista-backend/internal/httpx"
	"courtvista-backend/internal/transport"
)

type compareToggleRequest struct {
	IDs []int `json:"ids" validate:"max=3,dive,gt=0"`
	ID  int   `json:"id" validate:"required,gt=0"`
}

func (s *Server) Compare(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ids, err := httpx.IntList(r.URL.Query(), "ids")
	if err != nil {
		log.Warn("compare: invalid ids")
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	cols := compare.Columns(ids)
	log.Info("compare: ok", slog.Int("count", len(cols)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": cols,
		"max":   compare.MaxLawyers,
	})
}

func (s *Server) CompareToggle(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req compareToggleRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("compare toggle: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("compare toggle: validation error")
		details := httpx.ValidationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ids, err := compare.Toggle(req.IDs, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, compare.ErrCompareLimit):
			log.Warn("compare toggle: limit reached", slog.Int("lawyer_id", req.ID))
			transport.WriteError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, compare.ErrUnknownLawyer):
			log.Warn("compare toggle: lawyer not found", slog.Int("lawyer_id", req.ID))
			transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
		default:
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		}
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ids": ids,
	})
}
