package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"phonebook/app"
	"phonebook/models"
	"phonebook/services"
)

func listResponse(a *app.App) fiber.Map {
	view := a.ContactService.View()
	return fiber.Map{
		"contacts": view.Contacts,
		"filter":   view.Filter,
		"total":    view.Total,
	}
}

// GetContacts returns the contacts matching the current filter
func GetContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, listResponse(a))
	}
}

// CreateContact adds a contact unless one with the same name already exists
func CreateContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		contact, err := addContact(a, &req)
		if err != nil {
			var validationErr *invalidRequest
			switch {
			case errors.As(err, &validationErr):
				return validationError(c, validationErr.err)
			case errors.Is(err, services.ErrContactExists):
				return conflict(c, alreadyExistsMessage(req.Name))
			case errors.Is(err, services.ErrEmptyContact):
				return badRequest(c, err.Error())
			default:
				return serverErrorWithDetails(c, "Failed to add contact", err)
			}
		}

		return created(c, fiber.Map{
			"contact": contact,
			"message": fmt.Sprintf("%s is successfully added to your contacts!", contact.Name),
		})
	}
}

// DeleteContact removes a contact; unknown ids succeed without changes
func DeleteContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return badRequest(c, "contact ID is required")
		}

		a.ContactService.Delete(id)

		return success(c, fiber.Map{"message": "Contact deleted successfully"})
	}
}

// SetFilter replaces the name filter and returns the matching contacts
func SetFilter(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SetFilterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		a.ContactService.SetFilter(req.Filter)

		return success(c, listResponse(a))
	}
}

type invalidRequest struct{ err error }

func (e *invalidRequest) Error() string { return e.err.Error() }
func (e *invalidRequest) Unwrap() error { return e.err }

// addContact trims and validates the request before handing it to the service.
func addContact(a *app.App, req *models.CreateContactRequest) (*models.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Number = strings.TrimSpace(req.Number)

	if err := a.Validator.Validate(req); err != nil {
		return nil, &invalidRequest{err: err}
	}

	return a.ContactService.Add(req.Name, req.Number)
}

func alreadyExistsMessage(name string) string {
	return fmt.Sprintf("%s is already in your contacts!", name)
}
