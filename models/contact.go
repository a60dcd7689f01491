package models

// Contact is a single phonebook entry. The JSON field names are part of the
// persisted snapshot format and must not change.
type Contact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type CreateContactRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=100,contactname"`
	Number string `json:"number" form:"number" validate:"required,max=30,phonenumber"`
}

type SetFilterRequest struct {
	Filter string `json:"filter" form:"filter" validate:"max=100"`
}

// ContactList is the filtered view of the phonebook taken at a single point in time.
type ContactList struct {
	Contacts []Contact `json:"contacts"`
	Filter   string    `json:"filter"`
	Total    int       `json:"total"`
}
