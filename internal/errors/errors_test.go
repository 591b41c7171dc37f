package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", NewForbidden("nope"), http.StatusForbidden, "FORBIDDEN"},
		{"project not found", NewNotFound(LevelProject), http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{"issue not found", NewNotFound(LevelIssue), http.StatusNotFound, "ISSUE_NOT_FOUND"},
		{"validation", NewValidation("age", "too young"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", NewConflict("already a contributor"), http.StatusConflict, "CONFLICT"},
		{"invalid operation", NewInvalidOperation("author is permanent"), http.StatusBadRequest, "INVALID_OPERATION"},
		{"unknown errors stay opaque", assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_Wrapped(t *testing.T) {
	// Services wrap storage errors; the mapping must see through the wrap.
	wrapped := fmt.Errorf("delete project: %w", NewForbidden("nope"))
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidation("assignee", "assignee must be a contributor to this project")
	assert.Equal(t, "assignee: assignee must be a contributor to this project", err.Error())
}
