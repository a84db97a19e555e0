package messaging

import (
	"context"
	"log/slog"

	"courtvista-backend/internal/models"
	"courtvista-backend/internal/store"
)

type Repository interface {
	List(ctx context.Context) ([]models.Message, error)
	Update(ctx context.Context, fn func([]models.Message) ([]models.Message, error)) error
}

type StoreRepository struct {
	col *store.Collection[models.Message]
}

func NewRepository(s store.Store, log *slog.Logger) *StoreRepository {
	return &StoreRepository{col: store.NewCollection[models.Message](s, store.KeyMessages, log)}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Message, error) {
	return r.col.Load(ctx)
}

func (r *StoreRepository) Update(ctx context.Context, fn func([]models.Message) ([]models.Message, error)) error {
	return r.col.Update(ctx, fn)
}
