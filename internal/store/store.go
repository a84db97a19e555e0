package store

import (
	"context"
	"encoding/json"
	"time"
)

// Store is a flat key/value space. A zero ttl means the value never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

const (
	KeyAccounts      = "courtvista_users"
	KeyConsultations = "courtvista_consultations"
	KeyMessages      = "courtvista_messages"
	KeyQuestions     = "courtvista_questions"

	sessionKeyPrefix = "courtvista_user:"
)

// SessionKey is the slot holding the signed-in principal for one client session.
func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// GetJSON decodes a single JSON value stored under key.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func SetJSON(ctx context.Context, s Store, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw, ttl)
}
