package remediation

import (
	"errors"
	"net/http"
)

// Domain errors for remediation task operations.
var (
	ErrNotFound         = errors.New("remediation task not found")
	ErrDuplicate        = errors.New("remediation task already exists")
	ErrAlreadyCompleted = errors.New("remediation task already completed")
	ErrInvalidStatus    = errors.New("invalid remediation task status")
	ErrSystemNotFound   = errors.New("ai system not found")
)

// MapHTTPStatus maps remediation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSystemNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrAlreadyCompleted) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
