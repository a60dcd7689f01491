// Package store holds the phonebook's contact collection and filter.
//
// Every mutation (add, or delete of an existing id) is followed by a write of
// the whole collection to durable storage when the store was opened with Open.
// Operations are serialized, so each one runs to completion, including its
// storage write, before the next begins.
package store

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"phonebook/models"
)

// Seed returns the contacts a fresh phonebook starts with.
func Seed() []models.Contact {
	return []models.Contact{
		{ID: "id-1", Name: "Rosie Simpson", Number: "459-12-56"},
		{ID: "id-2", Name: "Hermione Kline", Number: "443-89-12"},
		{ID: "id-3", Name: "Eden Clements", Number: "645-17-79"},
		{ID: "id-4", Name: "Annie Copeland", Number: "227-91-26"},
	}
}

// Store is the contact collection plus the current name filter. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	contacts []models.Contact
	filter   string
	syncer   *Sync
	logger   *slog.Logger
}

// New creates a store holding contacts, with no persistence attached.
func New(contacts []models.Contact) *Store {
	return &Store{
		contacts: slices.Clone(contacts),
		logger:   slog.Default(),
	}
}

// Open creates a store hydrated from s. The stored snapshot replaces seed when
// present and parseable; otherwise seed stands. Every later mutation is saved through s.
func Open(ctx context.Context, s *Sync, seed []models.Contact) *Store {
	contacts, ok := s.Load(ctx)
	if ok {
		s.logger.Info("contacts restored from storage", "count", len(contacts))
	} else {
		contacts = seed
	}

	st := New(contacts)
	st.syncer = s
	st.logger = s.logger
	return st
}

// AddContact appends c. Callers are responsible for a unique id and a
// validated, non-duplicate name.
func (s *Store) AddContact(c models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, c)
	s.persist()
}

// DeleteContact removes the contact with the given id. Unknown ids are ignored.
func (s *Store) DeleteContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.contacts, func(c models.Contact) bool { return c.ID == id })
	if i < 0 {
		return
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.persist()
}

// SetFilter replaces the name filter. It is not persisted.
func (s *Store) SetFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = value
}

// Filter returns the current name filter.
func (s *Store) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

// Contacts returns a copy of the whole collection in insertion order.
func (s *Store) Contacts() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Contact{}, s.contacts...)
}

// Filtered returns the contacts matching the current filter, in insertion order.
func (s *Store) Filtered() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FilterByName(s.contacts, s.filter)
}

// View returns the filtered contacts together with the filter and the
// collection size they were computed from.
func (s *Store) View() models.ContactList {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.ContactList{
		Contacts: FilterByName(s.contacts, s.filter),
		Filter:   s.filter,
		Total:    len(s.contacts),
	}
}

// FilterByName returns the contacts whose name contains filter, ignoring case.
// An empty filter matches every contact. The result never aliases contacts.
func FilterByName(contacts []models.Contact, filter string) []models.Contact {
	filter = strings.ToLower(filter)

	matched := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), filter) {
			matched = append(matched, c)
		}
	}
	return matched
}

// persist must be called with s.mu held.
func (s *Store) persist() {
	if s.syncer == nil {
		return
	}
	if err := s.syncer.Save(s.contacts); err != nil {
		s.logger.Error("failed to persist contacts", "count", len(s.contacts), "error", err)
	}
}
