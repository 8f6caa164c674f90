package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserveAndExpose(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/news-cards", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/api/news-cards", "200", 30*time.Millisecond)
	m.ObserveUpstream("NewsCards", "ok", 10*time.Millisecond)
	m.ObserveUpstream("NewsCards", "error", 10*time.Millisecond)
	m.ObserveFlagWrite("diet_plan_form", "ok")

	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/news-cards", "200")); got != 2 {
		t.Fatalf("api requests: want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("NewsCards", "error")); got != 1 {
		t.Fatalf("upstream errors: want=1 got=%v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics handler status: got=%d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"mh1_api_requests_total", "mh1_cms_queries_total", "mh1_flags_writes_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("metrics output missing %s", name)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.ObserveUpstream("x", "ok", time.Millisecond)
	m.ObserveFlagWrite("x", "ok")
	if m.Registry() != nil {
		t.Fatalf("Registry: expected nil for nil metrics")
	}
}

func TestEnabled(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	if Enabled() {
		t.Fatalf("Enabled: expected false")
	}
	t.Setenv("METRICS_ENABLED", "")
	if !Enabled() {
		t.Fatalf("Enabled: expected true by default")
	}
}
