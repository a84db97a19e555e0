package identity

import (
	"context"
	"log/slog"
	"time"

	"courtvista-backend/internal/models"
	"courtvista-backend/internal/store"
)

type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, fn func([]models.Account) ([]models.Account, error)) error
}

type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (models.Principal, bool, error)
	Put(ctx context.Context, sessionID string, p models.Principal, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type StoreAccounts struct {
	col *store.Collection[models.Account]
}

func NewAccountRepository(s store.Store, log *slog.Logger) *StoreAccounts {
	return &StoreAccounts{col: store.NewCollection[models.Account](s, store.KeyAccounts, log)}
}

func (r *StoreAccounts) List(ctx context.Context) ([]models.Account, error) {
	return r.col.Load(ctx)
}

func (r *StoreAccounts) Update(ctx context.Context, fn func([]models.Account) ([]models.Account, error)) error {
	return r.col.Update(ctx, fn)
}

type StoreSessions struct {
	store store.Store
}

func NewSessionRepository(s store.Store) *StoreSessions {
	return &StoreSessions{store: s}
}

func (r *StoreSessions) Get(ctx context.Context, sessionID string) (models.Principal, bool, error) {
	return store.GetJSON[models.Principal](ctx, r.store, store.SessionKey(sessionID))
}

func (r *StoreSessions) Put(ctx context.Context, sessionID string, p models.Principal, ttl time.Duration) error {
	return store.SetJSON(ctx, r.store, store.SessionKey(sessionID), p, ttl)
}

func (r *StoreSessions) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, store.SessionKey(sessionID))
}
