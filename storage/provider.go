package storage

import "context"

// Provider is a durable key-value store holding string values under string keys.
// It is the phonebook's equivalent of browser local storage: a missing key is
// not an error, it is reported through the ok return value.
type Provider interface {
	// GetItem returns the value stored under key, or ok=false when nothing is stored
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key; removing a missing key is a no-op
	RemoveItem(ctx context.Context, key string) error
}
