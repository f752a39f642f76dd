package domain

import "errors"

// Authentication and session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrNotHydrated        = errors.New("session store not hydrated")
	ErrUnauthorized       = errors.New("unauthorized")

	// Onboarding errors
	ErrInvalidTransition = errors.New("invalid onboarding transition")
	ErrNameTaken         = errors.New("company name taken")
	ErrNameUnchecked     = errors.New("company name availability unknown")
	ErrRequestInFlight   = errors.New("request already in flight")

	// Remote call errors
	ErrUnavailable = errors.New("service unreachable")
	ErrRejected    = errors.New("request rejected")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// APIError carries the user-facing message derived from a rejected remote
// call. Message comes from the response body's message/detail field with an
// endpoint-specific fallback.
type APIError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates an APIError for a server-rejected request.
func NewAPIError(statusCode int, message string, cause error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ValidationError is a field-level validation failure caught before any
// network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
