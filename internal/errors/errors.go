package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Resolution levels at which a lookup can fail. Used by NotFoundError so the
// caller knows which ancestor in the resource chain was missing.
const (
	LevelUser        = "user"
	LevelProject     = "project"
	LevelIssue       = "issue"
	LevelComment     = "comment"
	LevelContributor = "contributor"
)

// UnauthenticatedError is returned when a request carries no valid identity.
type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string {
	return "authentication required"
}

// ErrUnauthenticated is the shared unauthenticated error value.
var ErrUnauthenticated = &UnauthenticatedError{}

// ForbiddenError is returned when an authenticated actor is not allowed to
// perform the requested action.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

// NewForbidden creates a ForbiddenError with the given reason.
func NewForbidden(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// NotFoundError is returned when a resource does not exist, or when the
// existence-leakage rule mandates hiding it from the actor.
type NotFoundError struct {
	Level string
}

func (e *NotFoundError) Error() string {
	return e.Level + " not found"
}

// NewNotFound creates a NotFoundError at the given resolution level.
func NewNotFound(level string) *NotFoundError {
	return &NotFoundError{Level: level}
}

// ValidationError is returned when a field-level rule is violated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError naming the offending field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError is returned when a uniqueness constraint is violated.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflict creates a ConflictError with the given reason.
func NewConflict(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// InvalidOperationError is returned for operations the domain never permits,
// such as removing the project author from the contributor set.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

// NewInvalidOperation creates an InvalidOperationError with the given reason.
func NewInvalidOperation(reason string) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		unauthenticated *UnauthenticatedError
		forbidden       *ForbiddenError
		notFound        *NotFoundError
		validation      *ValidationError
		conflict        *ConflictError
		invalidOp       *InvalidOperationError
	)
	switch {
	case errors.As(err, &unauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.As(err, &forbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), strings.ToUpper(notFound.Level)+"_NOT_FOUND")
	case errors.As(err, &validation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.As(err, &conflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.As(err, &invalidOp):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OPERATION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
