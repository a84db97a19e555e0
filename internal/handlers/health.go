package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"courtvista-backend/internal/transport"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		log.Error("health: store unreachable", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"store":  "unreachable",
		})
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  "ok",
	})
}
