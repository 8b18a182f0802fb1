package organizations_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/JaimeStill/tutela/internal/organizations"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", organizations.ErrNotFound, http.StatusNotFound},
		{"duplicate", organizations.ErrDuplicate, http.StatusConflict},
		{"missing name", organizations.ErrMissingName, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := organizations.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("sector", "health")

	f := organizations.FiltersFromQuery(values)
	if f.Sector == nil || *f.Sector != "health" {
		t.Error("Sector not parsed")
	}

	if f := organizations.FiltersFromQuery(url.Values{}); f.Sector != nil {
		t.Error("empty query should produce zero filters")
	}
}
