package sweep

import "github.com/star/slantpath/internal/raytrace"

// Point is one slant path to evaluate.
type Point struct {
	FrequencyGHz float64
	LowKm        float64 // height of the low terminal
	HighKm       float64 // height of the high terminal
	AngleRad     float64 // launch angle from zenith at the low terminal
}

// Outcome is the evaluation of the Point at Index in the input.
type Outcome struct {
	Index  int
	Point  Point
	Result raytrace.Result
	Err    error
}

// Stats summarizes one Run.
type Stats struct {
	Succeeded int
	Failed    int // structural errors and non-finite results
	Cancelled int
	Clamped   int // points with at least one clamped shell boundary
}

// Config holds sweep configuration loaded from the environment.
type Config struct {
	Workers   int // Worker pool size (default: runtime.NumCPU())
	MaxPoints int // Upper bound on points per sweep request (default: 2000)
}
