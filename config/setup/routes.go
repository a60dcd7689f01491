package setup

import (
	"github.com/gofiber/fiber/v2"

	"phonebook/app"
	"phonebook/handlers"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// HTML phonebook
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Post("/contacts", handlers.SubmitContactForm(application))
	fiberApp.Post("/contacts/:id/delete", handlers.SubmitDeleteForm(application))

	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// JSON API
	api := fiberApp.Group("/api")
	api.Get("/contacts", handlers.GetContacts(application))
	api.Post("/contacts", handlers.CreateContact(application))
	api.Delete("/contacts/:id", handlers.DeleteContact(application))
	api.Put("/filter", handlers.SetFilter(application))
}
