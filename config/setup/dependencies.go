package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"phonebook/app"
	"phonebook/config"
	"phonebook/database"
	"phonebook/services"
	"phonebook/storage"
	"phonebook/storage/redis"
	"phonebook/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitStorage opens the durable storage selected by cfg.StorageDriver.
// The returned closer releases it on shutdown.
func InitStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Provider, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := InitDatabase(cfg.DBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return database.NewKeyValue(db), db, nil

	case config.StorageRedis:
		provider, err := redis.NewProvider(cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		if err := provider.Ping(ctx); err != nil {
			provider.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("redis storage initialized", "prefix", cfg.RedisKeyPrefix)
		return provider, provider, nil

	case config.StorageMemory:
		logger.Warn("using in-memory storage, contacts will not survive a restart")
		return storage.NewMemory(), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp hydrates the contact store from provider and wires the application
func InitApp(ctx context.Context, cfg *config.Config, provider storage.Provider, logger *slog.Logger) *app.App {
	st := store.Open(ctx, store.NewSync(provider, cfg.PersistTimeout, logger), store.Seed())
	logger.Info("contact store ready", "contacts", len(st.Contacts()))

	application := app.New(cfg, services.NewContactService(st), logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases storage
func Shutdown(closer io.Closer, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
			return
		}
		logger.Info("storage closed")
	}
}
