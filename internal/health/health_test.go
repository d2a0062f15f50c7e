package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	Healthz(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "ok\n" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ok\n")
	}
}

func TestReadyz(t *testing.T) {
	var r Readiness

	tests := []struct {
		name     string
		ready    bool
		wantCode int
		wantBody string
	}{
		{"before self-check", false, http.StatusServiceUnavailable, "not ready\n"},
		{"after self-check", true, http.StatusOK, "ready\n"},
		{"self-check failed later", false, http.StatusServiceUnavailable, "not ready\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.SetReady(tt.ready)
			w := httptest.NewRecorder()
			r.Readyz(w, httptest.NewRequest("GET", "/readyz", nil))

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
