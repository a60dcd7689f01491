package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "STORAGE_DRIVER", "DB_PATH", "REDIS_URL", "REDIS_KEY_PREFIX", "CORS_ORIGINS", "PERSIST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "./data/phonebook.db", cfg.DBPath)
	assert.Equal(t, "phonebook:", cfg.RedisKeyPrefix)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.PersistTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		errorMsg string
	}{
		{
			name:     "Unknown storage driver",
			env:      map[string]string{"STORAGE_DRIVER": "localstorage"},
			errorMsg: "STORAGE_DRIVER must be one of",
		},
		{
			name:     "Redis without URL",
			env:      map[string]string{"STORAGE_DRIVER": "redis", "REDIS_URL": ""},
			errorMsg: "REDIS_URL is required",
		},
		{
			name:     "Invalid persist timeout",
			env:      map[string]string{"PERSIST_TIMEOUT": "soon"},
			errorMsg: "PERSIST_TIMEOUT must be a duration",
		},
		{
			name:     "Negative persist timeout",
			env:      map[string]string{"PERSIST_TIMEOUT": "-1s"},
			errorMsg: "PERSIST_TIMEOUT must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", "")
			t.Setenv("PERSIST_TIMEOUT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PERSIST_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.PersistTimeout)
}
