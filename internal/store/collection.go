package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Collection is a JSON array stored whole under a single key. Every write
// replaces the entire array.
//
// Update serialises read-modify-write cycles inside this process only. Two
// processes sharing a backend can still overwrite each other; the last
// writer wins.
type Collection[T any] struct {
	store Store
	key   string
	log   *slog.Logger
	mu    sync.Mutex
}

func NewCollection[T any](s Store, key string, log *slog.Logger) *Collection[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Collection[T]{store: s, key: key, log: log}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored items. Malformed data reads as an empty collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("store: malformed collection, treating as empty",
			slog.String("key", c.key),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// Update loads the collection, applies fn and writes the result back.
// Nothing is written when fn returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, next)
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw, 0); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
