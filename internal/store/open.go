package store

import (
	"context"
	"fmt"
	"log/slog"

	"courtvista-backend/internal/config"
	"courtvista-backend/internal/db"
)

// Open builds the backend selected by cfg.StoreBackend. The returned close
// function releases its connections.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, func(context.Context) error, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		var (
			rs  *RedisStore
			err error
		)
		if cfg.RedisURL != "" {
			rs, err = NewRedisFromURL(cfg.RedisURL)
			if err != nil {
				return nil, nil, fmt.Errorf("redis url: %w", err)
			}
		} else {
			rs = NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		if cfg.RedisURL != "" {
			log.Info("redis connected (url)")
		} else {
			log.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		return rs, func(context.Context) error { return rs.Close() }, nil

	case config.StoreMongo:
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := db.EnsureIndexes(ctx, cols); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info("mongo connected", slog.String("db", cfg.MongoDB))
		return NewMongo(cols.KV), client.Disconnect, nil

	default:
		log.Info("memory store enabled")
		return NewMemory(), func(context.Context) error { return nil }, nil
	}
}
