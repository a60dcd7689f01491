package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"phonebook/models"
)

// ContactService handles business logic for contacts
type ContactService struct {
	store ContactStore
	newID func() string

	// serializes the duplicate check with the insert
	mu sync.Mutex
}

// NewContactService creates a new contact service
func NewContactService(store ContactStore) *ContactService {
	return &ContactService{
		store: store,
		newID: func() string { return uuid.New().String() },
	}
}

// Add creates a contact from the submitted name and number.
// Names are compared case-insensitively against existing contacts; numbers are not checked.
func (cs *ContactService) Add(name, number string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" || number == "" {
		return nil, ErrEmptyContact
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.exists(name) {
		return nil, ErrContactExists
	}

	contact := models.Contact{
		ID:     cs.newID(),
		Name:   name,
		Number: number,
	}
	cs.store.AddContact(contact)

	return &contact, nil
}

func (cs *ContactService) exists(name string) bool {
	for _, c := range cs.store.Contacts() {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Delete removes a contact; unknown ids are ignored
func (cs *ContactService) Delete(id string) {
	cs.store.DeleteContact(id)
}

// SetFilter replaces the name filter
func (cs *ContactService) SetFilter(value string) {
	cs.store.SetFilter(value)
}

// Filter returns the current name filter
func (cs *ContactService) Filter() string {
	return cs.store.Filter()
}

// List returns the contacts matching the current filter
func (cs *ContactService) List() []models.Contact {
	return cs.store.Filtered()
}

// View returns the filtered list, the filter and the total as one consistent snapshot
func (cs *ContactService) View() models.ContactList {
	return cs.store.View()
}

// All returns every contact regardless of the filter
func (cs *ContactService) All() []models.Contact {
	return cs.store.Contacts()
}
