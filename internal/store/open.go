package store

import (
	"context"
	"fmt"

	"github.com/swelljoe/weekly-wthr/internal/config"
	"github.com/swelljoe/weekly-wthr/internal/db"
)

// Open returns the backend selected by cfg.StoreDriver along with its close func
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.StoreDriver {
	case "sqlite", "":
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return database, database.Close, nil
	case "redis":
		r, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	case "memory":
		return NewMemory(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
