package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// Known exact routes.
		{"/healthz", "/healthz"},
		{"/readyz", "/readyz"},
		{"/metrics", "/metrics"},
		{"/", "other"},
		{"/api/v1/trace", "/api/v1/trace"},
		{"/api/v1/slant", "/api/v1/slant"},
		{"/api/v1/refractivity", "/api/v1/refractivity"},
		{"/api/v1/sweep", "/api/v1/sweep"},

		// Unknown/bot paths collapse to "other".
		{"/wp-admin", "other"},
		{"/robots.txt", "other"},
		{"/.env", "other"},
		{"/api/v1/trace/extra", "other"},
		{"/api/v2/trace", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := normalizeRoute(tt.path)
			if got != tt.want {
				t.Errorf("normalizeRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRecordTrace(t *testing.T) {
	before := testutil.ToFloat64(tracesTotal.WithLabelValues(OutcomeOK))
	clampedBefore := testutil.ToFloat64(clampedShellsTotal)

	RecordTrace(2*time.Millisecond, OutcomeOK, 3)

	if got := testutil.ToFloat64(tracesTotal.WithLabelValues(OutcomeOK)) - before; got != 1 {
		t.Errorf("traces_total{ok} increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(clampedShellsTotal) - clampedBefore; got != 3 {
		t.Errorf("clamped_shells_total increased by %v, want 3", got)
	}
}

func TestRecordSweep(t *testing.T) {
	okBefore := testutil.ToFloat64(sweepPointsTotal.WithLabelValues(OutcomeOK))
	cancelledBefore := testutil.ToFloat64(sweepPointsTotal.WithLabelValues(OutcomeCancelled))

	RecordSweep(time.Second, 7, 0, 2)

	if got := testutil.ToFloat64(sweepPointsTotal.WithLabelValues(OutcomeOK)) - okBefore; got != 7 {
		t.Errorf("sweep ok points increased by %v, want 7", got)
	}
	if got := testutil.ToFloat64(sweepPointsTotal.WithLabelValues(OutcomeCancelled)) - cancelledBefore; got != 2 {
		t.Errorf("sweep cancelled points increased by %v, want 2", got)
	}
}

// TestMiddlewareCardinality verifies that 100 unknown paths produce a single
// "other" label rather than 100 series.
func TestMiddlewareCardinality(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404"))
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest("GET", "/scan/"+string(rune('a'+i%26))+string(rune('a'+i/26)), nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404")) - before; got != 100 {
		t.Errorf("other/GET/404 increased by %v, want 100", got)
	}
}
