package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"phonebook/models"
	"phonebook/storage"
)

// StorageKey is the slot holding the contacts snapshot.
const StorageKey = "contacts"

var errNullSnapshot = errors.New("snapshot is null")

// Encode serializes contacts into the snapshot format: a JSON array of {id, name, number}.
func Encode(contacts []models.Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return json.Marshal(contacts)
}

// Decode parses a snapshot. Later entries repeating an earlier id are dropped
// so the collection never holds two contacts with the same id.
func Decode(data []byte) ([]models.Contact, error) {
	var raw []models.Contact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNullSnapshot
	}

	seen := make(map[string]struct{}, len(raw))
	contacts := make([]models.Contact, 0, len(raw))
	for _, c := range raw {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// Sync mirrors the contact collection into a storage.Provider.
type Sync struct {
	provider storage.Provider
	key      string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSync creates a Sync writing under StorageKey. A zero timeout means 5 seconds.
func NewSync(provider storage.Provider, timeout time.Duration, logger *slog.Logger) *Sync {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sync{
		provider: provider,
		key:      StorageKey,
		timeout:  timeout,
		logger:   logger,
	}
}

// Load reads the stored snapshot. ok is false when nothing usable is stored;
// read failures and malformed snapshots are logged, never returned.
func (s *Sync) Load(ctx context.Context) (contacts []models.Contact, ok bool) {
	value, found, err := s.provider.GetItem(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read contacts snapshot, using seed", "key", s.key, "error", err)
		return nil, false
	}
	if !found {
		s.logger.Debug("no contacts snapshot stored, using seed", "key", s.key)
		return nil, false
	}

	contacts, err = Decode([]byte(value))
	if err != nil {
		s.logger.Warn("malformed contacts snapshot, using seed", "key", s.key, "error", err)
		return nil, false
	}

	return contacts, true
}

// Save overwrites the stored snapshot with contacts. The write is bounded by the
// sync timeout and does not inherit a request context.
func (s *Sync) Save(contacts []models.Contact) error {
	data, err := Encode(contacts)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.provider.SetItem(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}
