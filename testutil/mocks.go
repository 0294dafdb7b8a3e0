package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockBibleServer creates a test server that mocks the ESV and bible-api.com
// HTTP responses. Tests register per-path handlers and point the service's
// base URLs at it.
type MockBibleServer struct {
	*httptest.Server
	Handlers map[string]http.HandlerFunc
}

// NewMockBibleServer creates a new mock Bible API server
func NewMockBibleServer(t *testing.T) *MockBibleServer {
	t.Helper()
	m := &MockBibleServer{
		Handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		if handler, ok := m.Handlers[key]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(m.Close)
	return m
}

// MockESVPassage adds a handler for the /v3/passage/text/ endpoint
func (m *MockBibleServer) MockESVPassage(canonical string, passages []string) {
	m.Handlers["/v3/passage/text/"] = func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"canonical": canonical,
			"passages":  passages,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response) //nolint:errcheck // test mock response
	}
}

// MockESVSearch adds a handler for the /v3/passage/search/ endpoint
func (m *MockBibleServer) MockESVSearch(results []map[string]string, total int) {
	m.Handlers["/v3/passage/search/"] = func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"results":       results,
			"total_results": total,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response) //nolint:errcheck // test mock response
	}
}

// MockESVStatus makes the passage endpoint answer with a bare status code
func (m *MockBibleServer) MockESVStatus(code int) {
	m.Handlers["/v3/passage/text/"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}

// MockFallbackVerse adds a handler for a bible-api.com style passage path
func (m *MockBibleServer) MockFallbackVerse(path, reference, text, translation string) {
	m.Handlers["/"+path] = func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"reference":        reference,
			"text":             text,
			"translation_name": translation,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response) //nolint:errcheck // test mock response
	}
}
