package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/tutela/pkg/module"
)

func echoPathHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /systems", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		wantPanic bool
	}{
		{"valid prefix", "/api", false},
		{"empty prefix", "", true},
		{"missing leading slash", "api", true},
		{"multi-level prefix", "/api/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if tt.wantPanic && recovered == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
				if !tt.wantPanic && recovered != nil {
					t.Errorf("New(%q) panicked: %v", tt.prefix, recovered)
				}
			}()

			module.New(tt.prefix, echoPathHandler())
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPathHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/systems", nil)
	rec := httptest.NewRecorder()
	m.Serve(rec, req)

	if got := rec.Body.String(); got != "/systems" {
		t.Errorf("inner path = %q, want /systems", got)
	}
}

func TestServeBarePrefixBecomesRoot(t *testing.T) {
	m := module.New("/api", echoPathHandler())

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	m.Serve(rec, req)

	if got := rec.Body.String(); got != "/" {
		t.Errorf("inner path = %q, want /", got)
	}
}

func TestUseAppliesMiddleware(t *testing.T) {
	m := module.New("/api", echoPathHandler())
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Stamp", "applied")
			next.ServeHTTP(w, r)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/systems", nil)
	rec := httptest.NewRecorder()
	m.Serve(rec, req)

	if rec.Header().Get("X-Stamp") != "applied" {
		t.Error("middleware was not applied")
	}
}

func TestRouterDispatchesToModule(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathHandler()))

	req := httptest.NewRequest(http.MethodGet, "/api/systems", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "/systems" {
		t.Errorf("body = %q, want /systems", got)
	}
}

func TestRouterNativeFallback(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathHandler()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouterTrailingSlashNormalized(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathHandler()))

	req := httptest.NewRequest(http.MethodGet, "/api/systems/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Body.String(); got != "/systems" {
		t.Errorf("body = %q, want /systems", got)
	}
}

func TestRouterUnknownPrefixFallsThrough(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathHandler()))

	req := httptest.NewRequest(http.MethodGet, "/unknown/path", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
