package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slantpath_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slantpath_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	tracesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slantpath_traces_total",
			Help: "Ray traces by outcome (ok, non_finite, error).",
		},
		[]string{"outcome"},
	)

	traceDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slantpath_trace_duration_seconds",
			Help:    "Duration of a single slant-path trace.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		},
	)

	clampedShellsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slantpath_clamped_shells_total",
			Help: "Shell boundaries where the Bouguer argument exceeded 1 and was clamped.",
		},
	)

	sweepDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slantpath_sweep_duration_seconds",
			Help:    "Duration of a sweep over many trace points.",
			Buckets: prometheus.DefBuckets,
		},
	)

	sweepPointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slantpath_sweep_points_total",
			Help: "Sweep points by outcome (ok, error, cancelled).",
		},
		[]string{"outcome"},
	)

	sweepWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "slantpath_sweep_workers",
			Help: "Configured size of the sweep worker pool.",
		},
	)

	profileMemoHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slantpath_profile_memo_hits_total",
			Help: "Atmospheric profile lookups served from the memo.",
		},
	)

	profileMemoMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slantpath_profile_memo_misses_total",
			Help: "Atmospheric profile lookups that evaluated the underlying profile.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(tracesTotal)
	prometheus.MustRegister(traceDurationSeconds)
	prometheus.MustRegister(clampedShellsTotal)
	prometheus.MustRegister(sweepDurationSeconds)
	prometheus.MustRegister(sweepPointsTotal)
	prometheus.MustRegister(sweepWorkers)
	prometheus.MustRegister(profileMemoHits)
	prometheus.MustRegister(profileMemoMisses)
}

// Trace outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeNonFinite = "non_finite"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
)

// RecordTrace records one trace: its duration, outcome label and the number
// of clamped shell boundaries.
func RecordTrace(d time.Duration, outcome string, clamped int) {
	traceDurationSeconds.Observe(d.Seconds())
	tracesTotal.WithLabelValues(outcome).Inc()
	if clamped > 0 {
		clampedShellsTotal.Add(float64(clamped))
	}
}

// RecordSweep records a finished sweep.
func RecordSweep(d time.Duration, ok, failed, cancelled int) {
	sweepDurationSeconds.Observe(d.Seconds())
	sweepPointsTotal.WithLabelValues(OutcomeOK).Add(float64(ok))
	sweepPointsTotal.WithLabelValues(OutcomeError).Add(float64(failed))
	sweepPointsTotal.WithLabelValues(OutcomeCancelled).Add(float64(cancelled))
}

// SetSweepWorkers sets the sweep worker pool size gauge.
func SetSweepWorkers(n int) {
	sweepWorkers.Set(float64(n))
}

// IncProfileMemoHits counts a profile lookup served from the memo.
func IncProfileMemoHits() { profileMemoHits.Inc() }

// IncProfileMemoMisses counts a profile lookup that had to evaluate the profile.
func IncProfileMemoMisses() { profileMemoMisses.Inc() }

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// knownRoutes are the paths served by the API. Anything else is labelled
// "other" so scanners cannot inflate label cardinality.
var knownRoutes = map[string]bool{
	"/healthz":             true,
	"/readyz":              true,
	"/metrics":             true,
	"/api/v1/trace":        true,
	"/api/v1/slant":        true,
	"/api/v1/refractivity": true,
	"/api/v1/sweep":        true,
}

func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		path := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(path, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(path, r.Method).Observe(duration)
	})
}
