package raytrace

import "math"

// Result is the outcome of tracing a ray between two terminals.
//
// The trace has no error path. Invalid input shows up as non-finite fields:
//   - a profile returning NaN or Inf at any shell midpoint makes every
//     accumulated field NaN;
//   - a strongly ducting layer, where n_i/n_{i+1}·sin(α_i) exceeds 1, makes
//     BendingRad NaN while the other fields stay finite;
//   - h1 < 0, h2 < h1, h2 = +Inf or a NaN height violates the caller
//     contract and every field except ClampCount is NaN;
//   - h1 == h2 (both finite and non-negative) is an empty path with a zero
//     result and ExitAngleRad equal to the launch angle.
//
// Check Valid before trusting a result.
type Result struct {
	AbsorptionDB       float64 // gaseous absorption along the path
	BendingRad         float64 // total ray bending
	PathLengthKm       float64 // geometric length of the ray
	ExcessPathLengthKm float64 // electrical minus geometric path length
	ExitAngleRad       float64 // angle from zenith at the high terminal

	// ClampCount is the number of Bouguer arguments that exceeded 1 through
	// rounding or super-refraction and were clamped to 1.
	ClampCount int

	// Shells holds per-shell samples when the Tracer records them.
	Shells []ShellSample
}

// ShellSample is one traversed shell together with the ray's angles there.
type ShellSample struct {
	Shell
	EntryAngleRad float64 // β_i, from zenith at the lower boundary
	ExitAngleRad  float64 // α_i, from zenith at the upper boundary
	PathLengthKm  float64 // a_i
}

// Clamped reports whether any Bouguer argument was clamped.
func (r Result) Clamped() bool {
	return r.ClampCount > 0
}

// Valid reports whether every numeric field is finite.
func (r Result) Valid() bool {
	for _, v := range []float64{r.AbsorptionDB, r.BendingRad, r.PathLengthKm, r.ExcessPathLengthKm, r.ExitAngleRad} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// add accumulates another leg of the same ray into r. The exit angle is taken
// from the later leg.
func (r *Result) add(leg Result) {
	r.AbsorptionDB += leg.AbsorptionDB
	r.BendingRad += leg.BendingRad
	r.PathLengthKm += leg.PathLengthKm
	r.ExcessPathLengthKm += leg.ExcessPathLengthKm
	r.ExitAngleRad = leg.ExitAngleRad
	r.ClampCount += leg.ClampCount
	r.Shells = append(r.Shells, leg.Shells...)
}
