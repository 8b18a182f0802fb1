package assessments

import (
	"errors"
	"net/http"
)

// Domain errors for assessment operations.
var (
	ErrNotFound            = errors.New("assessment not found")
	ErrDuplicate           = errors.New("assessment already exists")
	ErrSystemNotFound      = errors.New("ai system not found")
	ErrInsufficientAnswers = errors.New("not enough answers to classify")
	ErrInvalidRiskLevel    = errors.New("invalid risk level")
	ErrAlreadyReviewed     = errors.New("assessment already reviewed")
)

// MapHTTPStatus maps assessment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSystemNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrAlreadyReviewed) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInsufficientAnswers) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidRiskLevel) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
