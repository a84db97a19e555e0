package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/identity"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/store"
	"courtvista-backend/internal/validation"
)

// Server serves the catalog, compare, dashboard and health endpoints.
// Cache is optional; a nil Cache always builds fresh responses.
type Server struct {
	Store         store.Store
	Cache         store.Store
	CacheTTL      time.Duration
	Val           *validation.Validator
	Log           *slog.Logger
	Identity      *identity.Service
	Consultations *consultations.Service
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
