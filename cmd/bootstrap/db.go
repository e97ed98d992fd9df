package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"booking-manager/internal/infra/db"
	"booking-manager/internal/infra/gormstore"
	"booking-manager/internal/infra/memory"
	"booking-manager/internal/infra/postgres"
	"booking-manager/internal/pkg/config"
	"booking-manager/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the store selected by STORE_DRIVER and closes it on
// shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		if cfg.Store.AutoMigrate {
			if err := postgres.Migrate(context.Background(), pool); err != nil {
				return nil, err
			}
		}
		logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return postgres.NewUoW(pool, cfg, logger), nil

	case config.StoreDriverSQLite:
		gdb, cleanup, err := db.ConnectSQLite(cfg.Store)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		if cfg.Store.AutoMigrate {
			if err := gormstore.Migrate(context.Background(), gdb); err != nil {
				return nil, err
			}
		}
		logger.Info("using sqlite store", "dsn", cfg.Store.SQLiteDSN)
		return gormstore.NewUoW(gdb, logger), nil

	case config.StoreDriverMemory:
		logger.Info("using in-memory store")
		return memory.NewUoW(logger), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// Migrate applies the schema of the configured store and returns.
func Migrate(ctx context.Context, cfg config.Config) error {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return err
		}
		defer cleanup()
		return postgres.Migrate(ctx, pool)
	case config.StoreDriverSQLite:
		gdb, cleanup, err := db.ConnectSQLite(cfg.Store)
		if err != nil {
			return err
		}
		defer cleanup()
		return gormstore.Migrate(ctx, gdb)
	default:
		return fmt.Errorf("store driver %q has no schema to migrate", cfg.Store.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
