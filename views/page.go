package views

import (
	"net/url"

	"github.com/a-h/templ"

	"phonebook/models"
)

// PhonebookPage is the data rendered by Phonebook.
type PhonebookPage struct {
	Contacts []models.Contact // already filtered
	Total    int
	Filter   string

	// Form state echoed back after a rejected submission
	Name   string
	Number string
	Error  string
}

func deleteAction(id string) templ.SafeURL {
	return templ.URL("/contacts/" + url.PathEscape(id) + "/delete")
}

func emptyMessage(total int) string {
	if total > 0 {
		return "No contacts match the filter."
	}
	return "No contacts yet."
}
