package organizations

import (
	"errors"
	"net/http"
)

// Domain errors for organization operations.
var (
	ErrNotFound    = errors.New("organization not found")
	ErrDuplicate   = errors.New("organization already exists")
	ErrMissingName = errors.New("organization name required")
)

// MapHTTPStatus maps organization domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrMissingName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
