package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	StorageDriver  string
	DBPath         string
	RedisURL       string
	RedisKeyPrefix string
	CORSOrigins    string
	PersistTimeout time.Duration
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	persistTimeout, err := time.ParseDuration(GetEnv("PERSIST_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("PERSIST_TIMEOUT must be a duration: %w", err)
	}

	cfg := &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		StorageDriver:  GetEnv("STORAGE_DRIVER", StorageSQLite),
		DBPath:         GetEnv("DB_PATH", "./data/phonebook.db"),
		RedisURL:       GetEnv("REDIS_URL", ""),
		RedisKeyPrefix: GetEnv("REDIS_KEY_PREFIX", "phonebook:"),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		PersistTimeout: persistTimeout,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageSQLite, StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_DRIVER=%s", StorageRedis)
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, %s, %s; got %q",
			StorageSQLite, StorageRedis, StorageMemory, c.StorageDriver)
	}

	if c.PersistTimeout <= 0 {
		return errors.New("PERSIST_TIMEOUT must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
