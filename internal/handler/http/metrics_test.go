package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestUpdateArticlesTotal(t *testing.T) {
	UpdateArticlesTotal(12)

	if got := testutil.ToFloat64(articlesTotal); got != 12 {
		t.Errorf("articles_total = %v, want 12", got)
	}
}

func TestMetricsMiddleware_CountsRequest(t *testing.T) {
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/article/:id", "200"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/article/7", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/article/:id", "200"))
	if after != before+1 {
		t.Errorf("http_requests_total for /article/:id = %v, want %v", after, before+1)
	}
}

func TestMetricsHandler_Serves(t *testing.T) {
	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
