package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lesehilfe/internal/adapter/filestore"
	"github.com/heartmarshall/lesehilfe/internal/adapter/postgres"
	"github.com/heartmarshall/lesehilfe/internal/adapter/postgres/slot"
	"github.com/heartmarshall/lesehilfe/internal/adapter/sqlite"
	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// SlotStore is a slot backend that can also be health-checked.
type SlotStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Ping(ctx context.Context) error
}

// OpenStore opens the slot backend selected by cfg.Store.Driver and applies
// its migrations. The returned close function releases its resources.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (SlotStore, func(), error) {
	driver := cfg.Store.DriverName()
	log := logger.With("store", driver.String())

	switch driver {
	case domain.StoreDriverFile:
		log.InfoContext(ctx, "using file store", slog.String("dir", cfg.Store.Path))
		return filestore.New(cfg.Store.Path), func() {}, nil

	case domain.StoreDriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "using sqlite store", slog.String("path", cfg.Store.Path))
		return store, func() { store.Close() }, nil //nolint:errcheck

	case domain.StoreDriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "using postgres store", slog.Int("max_conns", int(cfg.Database.MaxConns)))
		return slot.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
