package domain

import (
	"errors"
	"time"
)

// APIError is an RFC 7807 style problem document
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// ValidationMessages maps validator tags to user-facing messages
var ValidationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must be greater than or equal to minimum value",
	"lte":      "Must be less than or equal to maximum value",
	"url":      "Must be a valid URL",
	"oneof":    "Must be one of the allowed values",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeValidation   = "validation_error"
	ErrorTypeNotFound     = "not_found"
	ErrorTypeBadRequest   = "bad_request"
	ErrorTypeConflict     = "conflict"
	ErrorTypeUnauthorized = "unauthorized"
	ErrorTypeForbidden    = "forbidden"
	ErrorTypeTooLarge     = "payload_too_large"
	ErrorTypeInternal     = "internal_error"
)

// Record invariant violations
var (
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrStartedBeforeOpen  = errors.New("started_at must not be earlier than created_at")
	ErrCompletedBeforeRun = errors.New("completed_at must not be earlier than started_at")
	ErrDuplicateCaseCode  = errors.New("case code already in use")
)

// ValidateTimeline checks the ordering of a ticket's timestamps and the sign of its price
func ValidateTimeline(createdAt time.Time, startedAt, completedAt *time.Time, price *float64) error {
	if price != nil && *price < 0 {
		return ErrNegativePrice
	}
	if startedAt != nil && startedAt.Before(createdAt) {
		return ErrStartedBeforeOpen
	}
	if startedAt != nil && completedAt != nil && completedAt.Before(*startedAt) {
		return ErrCompletedBeforeRun
	}
	return nil
}
