package services

import (
	"errors"

	apperrors "github.com/trivia-hub/trivia-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")

	// Pagination errors
	ErrInvalidPage = errors.New("requested page does not exist")

	// Question specific errors
	ErrQuestionNotFound = errors.New("question not found")

	// Category specific errors
	ErrCategoryNotFound = errors.New("category not found")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsInvalidPage checks if error represents an out-of-domain page number
func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}
