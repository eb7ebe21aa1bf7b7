package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status change is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoChanges is returned when an update carries no fields
	ErrNoChanges = errors.New("no valid fields to update")

	// ErrInvalidImage is returned for uploads that are not a supported image type
	ErrInvalidImage = errors.New("unsupported image type")
)
