package app

import (
	"log/slog"

	"phonebook/config"
	"phonebook/services"
	"phonebook/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Config         *config.Config
	ContactService *services.ContactService
	Validator      *validator.Validator
	Logger         *slog.Logger
}

// New creates a new App instance with all dependencies
func New(cfg *config.Config, contactService *services.ContactService, logger *slog.Logger) *App {
	return &App{
		Config:         cfg,
		ContactService: contactService,
		Validator:      validator.New(),
		Logger:         logger,
	}
}
