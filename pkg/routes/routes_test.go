package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/tutela/pkg/routes"
)

func handlerReturning(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/systems",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: handlerReturning(http.StatusOK)},
			{Method: http.MethodPost, Pattern: "", Handler: handlerReturning(http.StatusCreated)},
			{Method: http.MethodDelete, Pattern: "/{id}", Handler: handlerReturning(http.StatusNoContent)},
		},
	})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list", http.MethodGet, "/systems", http.StatusOK},
		{"find", http.MethodGet, "/systems/abc", http.StatusOK},
		{"create", http.MethodPost, "/systems", http.StatusCreated},
		{"delete", http.MethodDelete, "/systems/abc", http.StatusNoContent},
		{"method not allowed", http.MethodPut, "/systems", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/systems",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/assessment",
				Routes: []routes.Route{
					{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
					{Method: http.MethodPost, Pattern: "/review", Handler: handlerReturning(http.StatusOK)},
				},
			},
		},
	})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"parent route", http.MethodGet, "/systems", http.StatusOK},
		{"child route", http.MethodGet, "/systems/abc/assessment", http.StatusOK},
		{"child action", http.MethodPost, "/systems/abc/assessment/review", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestRegisterMultipleGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux,
		routes.Group{
			Prefix: "/organizations",
			Routes: []routes.Route{
				{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
			},
		},
		routes.Group{
			Prefix: "/remediation",
			Routes: []routes.Route{
				{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
			},
		},
	)

	for _, path := range []string{"/organizations", "/remediation"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}
