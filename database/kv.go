package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"phonebook/storage"
)

// KeyValue implements storage.Provider on top of the kv table.
type KeyValue struct {
	db *DB
}

var _ storage.Provider = (*KeyValue)(nil)

func NewKeyValue(db *DB) *KeyValue {
	return &KeyValue{db: db}
}

func (kv *KeyValue) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return value, true, nil
}

func (kv *KeyValue) SetItem(ctx context.Context, key, value string) error {
	_, err := kv.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (kv *KeyValue) RemoveItem(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}
