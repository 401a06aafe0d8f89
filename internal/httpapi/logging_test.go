package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddlewareCounters(t *testing.T) {
	totalBefore := requestsTotal.Value()
	errorsBefore := requestsErrors.Value()

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/ok", "/missing"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := requestsTotal.Value() - totalBefore; got != 2 {
		t.Fatalf("expected requests_total to grow by 2, got %d", got)
	}
	if got := requestsErrors.Value() - errorsBefore; got != 1 {
		t.Fatalf("expected requests_errors_total to grow by 1, got %d", got)
	}
}
