package api

import (
	"math"

	"github.com/star/slantpath/internal/raytrace"
	"github.com/star/slantpath/internal/sweep"
)

// traceRequest describes one upward ray. AngleRad is measured from zenith and
// may not exceed the horizontal.
type traceRequest struct {
	FrequencyGHz float64 `json:"frequency_ghz" validate:"gt=0,lte=1000"`
	H1Km         float64 `json:"h1_km" validate:"gte=0,lte=100"`
	H2Km         float64 `json:"h2_km" validate:"gtefield=H1Km,lte=100"`
	AngleRad     float64 `json:"angle_rad" validate:"gte=0,lte=1.5707963267948966"`
	RecordShells bool    `json:"record_shells"`
}

// slantRequest allows launch angles below the horizontal.
type slantRequest struct {
	FrequencyGHz float64 `json:"frequency_ghz" validate:"gt=0,lte=1000"`
	H1Km         float64 `json:"h1_km" validate:"gte=0,lte=100"`
	H2Km         float64 `json:"h2_km" validate:"gtfield=H1Km,lte=100"`
	AngleRad     float64 `json:"angle_rad" validate:"gte=0,lt=3.141592653589793"`
	RecordShells bool    `json:"record_shells"`
}

type refractivityRequest struct {
	FrequencyGHz   float64 `json:"frequency_ghz" validate:"gt=0,lte=1000"`
	TemperatureK   float64 `json:"temperature_k" validate:"gt=0"`
	WaterVapourHPa float64 `json:"water_vapour_hpa" validate:"gte=0"`
	DryPressureHPa float64 `json:"dry_pressure_hpa" validate:"gte=0"`
}

type refractivityResponse struct {
	Oxygen              *float64 `json:"oxygen"`
	WaterVapour         *float64 `json:"water_vapour"`
	SpecificAttenuation *float64 `json:"specific_attenuation_db_km"`
}

// sweepRequest is either an elevation sweep (FromRad..ToRad by StepRad,
// between LowKm and HighKm) or, when HeightsKm is set, a height sweep at a
// fixed AngleRad.
type sweepRequest struct {
	FrequencyGHz float64   `json:"frequency_ghz" validate:"gt=0,lte=1000"`
	LowKm        float64   `json:"low_km" validate:"gte=0,lte=100"`
	HighKm       float64   `json:"high_km" validate:"gte=0,lte=100"`
	FromRad      float64   `json:"from_rad" validate:"gte=0,lt=3.141592653589793"`
	ToRad        float64   `json:"to_rad" validate:"gtefield=FromRad,lt=3.141592653589793"`
	StepRad      float64   `json:"step_rad" validate:"gte=0"`
	HeightsKm    []float64 `json:"heights_km" validate:"omitempty,dive,gte=0,lte=100"`
	AngleRad     float64   `json:"angle_rad" validate:"gte=0,lt=3.141592653589793"`
}

func (r sweepRequest) points() []sweep.Point {
	if len(r.HeightsKm) > 0 {
		return sweep.HeightGrid(r.FrequencyGHz, r.LowKm, r.HeightsKm, r.AngleRad)
	}
	return sweep.ElevationGrid(r.FrequencyGHz, r.LowKm, r.HighKm, r.FromRad, r.ToRad, r.StepRad)
}

func (r sweepRequest) size() int {
	if len(r.HeightsKm) > 0 {
		return len(r.HeightsKm)
	}
	return sweep.GridSize(r.FromRad, r.ToRad, r.StepRad)
}

// resultResponse mirrors raytrace.Result. Non-finite values encode as null.
type resultResponse struct {
	AbsorptionDB       *float64        `json:"absorption_db"`
	BendingRad         *float64        `json:"bending_rad"`
	PathLengthKm       *float64        `json:"path_length_km"`
	ExcessPathLengthKm *float64        `json:"excess_path_length_km"`
	ExitAngleRad       *float64        `json:"exit_angle_rad"`
	ClampCount         int             `json:"clamp_count"`
	Shells             []shellResponse `json:"shells,omitempty"`
}

type shellResponse struct {
	Index               int      `json:"index"`
	LowerHeightKm       float64  `json:"lower_height_km"`
	ThicknessKm         float64  `json:"thickness_km"`
	RefractiveIndex     *float64 `json:"refractive_index"`
	SpecificAttenuation *float64 `json:"specific_attenuation_db_km"`
	EntryAngleRad       *float64 `json:"entry_angle_rad"`
	ExitAngleRad        *float64 `json:"exit_angle_rad"`
	PathLengthKm        *float64 `json:"path_length_km"`
}

type sweepPointResponse struct {
	Index        int             `json:"index"`
	FrequencyGHz float64         `json:"frequency_ghz"`
	LowKm        float64         `json:"low_km"`
	HighKm       float64         `json:"high_km"`
	AngleRad     float64         `json:"angle_rad"`
	Result       *resultResponse `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type sweepResponse struct {
	Points    []sweepPointResponse `json:"points"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Cancelled int                  `json:"cancelled"`
	Clamped   int                  `json:"clamped"`
}

// finite returns nil for NaN and ±Inf, which JSON cannot carry.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func toResultResponse(res raytrace.Result) *resultResponse {
	out := &resultResponse{
		AbsorptionDB:       finite(res.AbsorptionDB),
		BendingRad:         finite(res.BendingRad),
		PathLengthKm:       finite(res.PathLengthKm),
		ExcessPathLengthKm: finite(res.ExcessPathLengthKm),
		ExitAngleRad:       finite(res.ExitAngleRad),
		ClampCount:         res.ClampCount,
	}
	if len(res.Shells) > 0 {
		out.Shells = make([]shellResponse, len(res.Shells))
		for i, s := range res.Shells {
			out.Shells[i] = shellResponse{
				Index:               s.Index,
				LowerHeightKm:       s.LowerHeightKm,
				ThicknessKm:         s.ThicknessKm,
				RefractiveIndex:     finite(s.RefractiveIndex),
				SpecificAttenuation: finite(s.SpecificAttenuation),
				EntryAngleRad:       finite(s.EntryAngleRad),
				ExitAngleRad:        finite(s.ExitAngleRad),
				PathLengthKm:        finite(s.PathLengthKm),
			}
		}
	}
	return out
}
