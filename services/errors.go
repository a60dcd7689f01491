package services

import "errors"

// Common service-level errors
var (
	ErrContactExists = errors.New("contact already exists")
	ErrEmptyContact  = errors.New("name and number are required")
)
