package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/metrics"
	"github.com/star/slantpath/internal/raytrace"
	"github.com/star/slantpath/internal/spectral"
	"github.com/star/slantpath/internal/sweep"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// Service bundles what the handlers evaluate against.
type Service struct {
	Tracer         *raytrace.Tracer
	Pool           *sweep.Pool
	Profile        atmosphere.Profile
	Model          spectral.Model
	MaxSweepPoints int
}

func traceHandler(logger *slog.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req traceRequest
		if !decode(w, r, &req) {
			return
		}

		tracer := *svc.Tracer
		tracer.RecordShells = req.RecordShells

		start := time.Now()
		res := tracer.Trace(req.FrequencyGHz, req.H1Km, req.H2Km, req.AngleRad, svc.Profile)
		respondTrace(w, logger, res, nil, time.Since(start))
	}
}

func slantHandler(logger *slog.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req slantRequest
		if !decode(w, r, &req) {
			return
		}

		tracer := *svc.Tracer
		tracer.RecordShells = req.RecordShells

		start := time.Now()
		res, err := tracer.SlantPath(req.FrequencyGHz, req.H1Km, req.H2Km, req.AngleRad, svc.Profile)
		respondTrace(w, logger, res, err, time.Since(start))
	}
}

// respondTrace writes a single trace result. Structural failures and
// non-finite results answer 422; the partial result is still included.
func respondTrace(w http.ResponseWriter, logger *slog.Logger, res raytrace.Result, err error, d time.Duration) {
	switch {
	case err != nil:
		metrics.RecordTrace(d, metrics.OutcomeError, res.ClampCount)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, raytrace.ErrHeightOrder) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	case !res.Valid():
		metrics.RecordTrace(d, metrics.OutcomeNonFinite, res.ClampCount)
		logger.Warn("trace produced non-finite result", "clamp_count", res.ClampCount)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  sweep.ErrNonFinite.Error(),
			"result": toResultResponse(res),
		})
		return
	}

	metrics.RecordTrace(d, metrics.OutcomeOK, res.ClampCount)
	if res.Clamped() {
		logger.Warn("near-grazing ray clamped", "clamp_count", res.ClampCount)
	}
	writeJSON(w, http.StatusOK, toResultResponse(res))
}

func refractivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refractivityRequest
		if !decode(w, r, &req) {
			return
		}

		o2, h2o := svc.Model.Refractivity(req.FrequencyGHz, req.TemperatureK, req.WaterVapourHPa, req.DryPressureHPa)
		gamma := svc.Model.SpecificAttenuation(req.FrequencyGHz, req.TemperatureK, req.WaterVapourHPa, req.DryPressureHPa)

		writeJSON(w, http.StatusOK, refractivityResponse{
			Oxygen:              finite(o2),
			WaterVapour:         finite(h2o),
			SpecificAttenuation: finite(gamma),
		})
	}
}

func sweepHandler(logger *slog.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sweepRequest
		if !decode(w, r, &req) {
			return
		}

		if len(req.HeightsKm) == 0 {
			if !(req.StepRad > 0) {
				writeError(w, http.StatusBadRequest, "step_rad must be positive for an elevation sweep")
				return
			}
			if !(req.HighKm > req.LowKm) {
				writeError(w, http.StatusBadRequest, "high_km must exceed low_km")
				return
			}
		}

		// CPU budget guard.
		if n := req.size(); n > svc.MaxSweepPoints {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":      "requested sweep exceeds the point budget",
				"points":     n,
				"max_points": svc.MaxSweepPoints,
			})
			return
		}

		points := req.points()
		outcomes, stats := svc.Pool.Run(r.Context(), points, svc.Profile)
		if r.Context().Err() != nil {
			logger.Info("sweep abandoned by client", "points", len(points), "cancelled", stats.Cancelled)
			return
		}

		resp := sweepResponse{
			Points:    make([]sweepPointResponse, len(outcomes)),
			Succeeded: stats.Succeeded,
			Failed:    stats.Failed,
			Cancelled: stats.Cancelled,
			Clamped:   stats.Clamped,
		}
		for i, out := range outcomes {
			p := sweepPointResponse{
				Index:        out.Index,
				FrequencyGHz: out.Point.FrequencyGHz,
				LowKm:        out.Point.LowKm,
				HighKm:       out.Point.HighKm,
				AngleRad:     out.Point.AngleRad,
			}
			if out.Err != nil {
				p.Error = out.Err.Error()
			}
			if out.Err == nil || errors.Is(out.Err, sweep.ErrNonFinite) {
				p.Result = toResultResponse(out.Result)
			}
			resp.Points[i] = p
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// decode reads a JSON body into dst and validates it. On failure it writes
// a 400 response and returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
