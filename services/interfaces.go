package services

import "phonebook/models"

// ContactStore defines the contact collection operations used by ContactService.
// Production uses *store.Store.
type ContactStore interface {
	AddContact(c models.Contact)
	DeleteContact(id string)
	SetFilter(value string)
	Filter() string
	Filtered() []models.Contact
	Contacts() []models.Contact
	View() models.ContactList
}
