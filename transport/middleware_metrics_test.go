package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware(t *testing.T) {
	// Use a fresh registry for each test to avoid "duplicate registration" errors
	reg := prometheus.NewRegistry()
	m, err := NewMetricsMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	r := mux.NewRouter()
	r.Use(m.Handler())
	r.HandleFunc("/package/find-by-id", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.HandleFunc("/package/delete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}).Methods(http.MethodDelete)
	r.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/package/find-by-id?id=1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/package/find-by-id?id=2", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/package/delete?id=x", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if got := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/package/find-by-id", "200")); got != 2 {
		t.Errorf("expected count 2 for find-by-id, got %f", got)
	}
	if got := testutil.ToFloat64(m.requestCount.WithLabelValues("DELETE", "/package/delete", "400")); got != 1 {
		t.Errorf("expected count 1 for delete, got %f", got)
	}
	if got := testutil.CollectAndCount(m.requestCount); got != 2 {
		t.Errorf("expected 2 series, /metrics must not be counted, got %d", got)
	}
	if got := testutil.CollectAndCount(m.requestDuration); got != 2 {
		t.Errorf("expected 2 histogram series, got %d", got)
	}
}

func TestNewMetricsMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetricsMiddleware(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewMetricsMiddleware(reg); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}
