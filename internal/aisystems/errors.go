package aisystems

import (
	"errors"
	"net/http"
)

// Domain errors for AI system operations.
var (
	ErrNotFound      = errors.New("ai system not found")
	ErrDuplicate     = errors.New("ai system already exists")
	ErrInvalidStatus = errors.New("invalid ai system status")
	ErrMissingName   = errors.New("ai system name required")
)

// MapHTTPStatus maps AI system domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrMissingName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
