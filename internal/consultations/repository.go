package consultations

import (
	"context"
	"log/slog"

	"courtvista-backend/internal/models"
	"courtvista-backend/internal/store"
)

type Repository interface {
	List(ctx context.Context) ([]models.Consultation, error)
	Update(ctx context.Context, fn func([]models.Consultation) ([]models.Consultation, error)) error
}

type StoreRepository struct {
	col *store.Collection[models.Consultation]
}

func NewRepository(s store.Store, log *slog.Logger) *StoreRepository {
	return &StoreRepository{col: store.NewCollection[models.Consultation](s, store.KeyConsultations, log)}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Consultation, error) {
	return r.col.Load(ctx)
}

func (r *StoreRepository) Update(ctx context.Context, fn func([]models.Consultation) ([]models.Consultation, error)) error {
	return r.col.Update(ctx, fn)
}
