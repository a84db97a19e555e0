package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"courtvista-backend/internal/transport"
)

const cachePrefix = "courtvista_cache:"

func writeCachedJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

func encodeJSON(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}

// serveCached answers from the response cache when key is present, otherwise
// builds the payload, stores it and writes it.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, log *slog.Logger, op, key string, build func() interface{}) {
	key = cachePrefix + key
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), key); err == nil && ok {
			log.Info(op + ": cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	response := build()
	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		if err := s.Cache.Set(r.Context(), key, payload, s.CacheTTL); err != nil {
			log.Warn(op+": cache write failed", slog.String("error", err.Error()))
		}
	}

	log.Info(op + ": ok")
	transport.WriteJSON(w, http.StatusOK, response)
}
