package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phonebook/app"
	"phonebook/models"
	"phonebook/services"
	"phonebook/views"
)

func renderPage(c *fiber.Ctx, a *app.App, page views.PhonebookPage) error {
	view := a.ContactService.View()
	page.Contacts = view.Contacts
	page.Total = view.Total
	page.Filter = view.Filter

	c.Set("Content-Type", "text/html; charset=utf-8")
	return views.Phonebook(page).Render(c.Context(), c.Response().BodyWriter())
}

// HomePage renders the phonebook. A filter query parameter replaces the current filter.
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Request().URI().QueryArgs().Has("filter") {
			req := models.SetFilterRequest{Filter: c.Query("filter")}
			if err := a.Validator.Validate(&req); err != nil {
				c.Status(fiber.StatusBadRequest)
				return renderPage(c, a, views.PhonebookPage{Error: err.Error()})
			}
			a.ContactService.SetFilter(req.Filter)
		}

		return renderPage(c, a, views.PhonebookPage{})
	}
}

// SubmitContactForm handles the HTML add form
func SubmitContactForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactRequest
		if err := c.BodyParser(&req); err != nil {
			c.Status(fiber.StatusBadRequest)
			return renderPage(c, a, views.PhonebookPage{Error: "Invalid form submission"})
		}

		if _, err := addContact(a, &req); err != nil {
			page := views.PhonebookPage{Name: req.Name, Number: req.Number, Error: err.Error()}

			var validationErr *invalidRequest
			switch {
			case errors.As(err, &validationErr), errors.Is(err, services.ErrEmptyContact):
				c.Status(fiber.StatusBadRequest)
			case errors.Is(err, services.ErrContactExists):
				c.Status(fiber.StatusConflict)
				page.Error = alreadyExistsMessage(req.Name)
			default:
				return err
			}
			return renderPage(c, a, page)
		}

		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// SubmitDeleteForm handles the per-row delete button
func SubmitDeleteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.ContactService.Delete(c.Params("id"))
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}
