// Package redis stores phonebook snapshots in Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"phonebook/storage"
)

// Provider implements storage.Provider with one Redis key per item.
type Provider struct {
	rdb    *goredis.Client
	prefix string
}

var _ storage.Provider = (*Provider)(nil)

// NewProvider creates a Provider from a URL (e.g., "redis://localhost:6379").
// Every key is stored as prefix+key.
func NewProvider(redisURL, prefix string) (*Provider, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &Provider{rdb: goredis.NewClient(opts), prefix: prefix}, nil
}

// Ping verifies the Redis connection.
func (p *Provider) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (p *Provider) Close() error {
	return p.rdb.Close()
}

func (p *Provider) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := p.rdb.Get(ctx, p.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (p *Provider) SetItem(ctx context.Context, key, value string) error {
	if err := p.rdb.Set(ctx, p.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (p *Provider) RemoveItem(ctx context.Context, key string) error {
	if err := p.rdb.Del(ctx, p.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}
