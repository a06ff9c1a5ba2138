package service

import "errors"

var (
	// ErrNotFound is returned when an entity or a referenced parent does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidData is returned when a payload is missing required fields or an
	// order references rows that do not exist.
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
