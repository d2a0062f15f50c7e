package raytrace

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/batch"
	"github.com/star/slantpath/internal/spectral"
)

// Tracer traces rays shell by shell. The shell crossing runs in blocks of
// Width shells and the per-shell spectral sums in blocks of Width lines; each
// shell and line is always evaluated by the same scalar code, so widths only
// differ in how block partial sums are combined.
//
// A Tracer holds no per-call state and is safe for concurrent use.
type Tracer struct {
	Width batch.Width

	// RecordShells attaches one ShellSample per traversed shell to each Result.
	RecordShells bool
}

// NewTracer returns a Tracer evaluating in blocks of width shells.
func NewTracer(width batch.Width) *Tracer {
	return &Tracer{Width: width}
}

var defaultTracer = Tracer{Width: batch.DefaultWidth}

// Trace traces a ray at fGHz from the low terminal at h1Km up to the high
// terminal at h2Km, launched at beta1Rad from zenith, through profile.
func Trace(fGHz, h1Km, h2Km, beta1Rad float64, profile atmosphere.Profile) Result {
	return defaultTracer.Trace(fGHz, h1Km, h2Km, beta1Rad, profile)
}

// Trace traces a ray at fGHz from h1Km up to h2Km launched at beta1Rad from
// zenith. See Result for how invalid input surfaces.
func (t *Tracer) Trace(fGHz, h1Km, h2Km, beta1Rad float64, profile atmosphere.Profile) Result {
	switch {
	case !(h1Km >= 0) || !(h2Km >= h1Km) || math.IsInf(h2Km, 0):
		nan := math.NaN()
		return Result{AbsorptionDB: nan, BendingRad: nan, PathLengthKm: nan, ExcessPathLengthKm: nan, ExitAngleRad: nan}
	case h2Km == h1Km:
		return Result{ExitAngleRad: beta1Rad}
	}

	g := NewGeometry(h1Km, h2Km)
	count := g.Shells()
	if count <= 0 {
		return Result{ExitAngleRad: beta1Rad}
	}

	shells := t.precompute(fGHz, g, profile)
	topKm := g.Height(g.Upper)

	// Bouguer invariant of the ray is n_1·r_1·sin(β_1).
	n1r1 := shells[0].RefractiveIndex * (EarthRadiusKm + shells[0].LowerHeightKm)
	sinBeta1 := math.Sin(beta1Rad)

	var res Result
	if t.RecordShells {
		res.Shells = make([]ShellSample, count)
	}

	lanes := t.Width.Lanes()
	length := make([]float64, lanes)
	gamma := make([]float64, lanes)
	excess := make([]float64, lanes)
	bend := make([]float64, lanes)

	batch.Blocks(count, t.Width, func(lo, hi int) {
		k := hi - lo
		for j := 0; j < k; j++ {
			i := lo + j
			s := shells[i]

			var c crossing
			if i < count-1 {
				c = cross(s, &shells[i+1], shells[i+1].LowerHeightKm, n1r1, sinBeta1)
			} else {
				// The last shell exits into free space at the high terminal
				// and contributes no further bending.
				c = cross(s, nil, topKm, n1r1, sinBeta1)
				res.ExitAngleRad = c.alpha
			}

			length[j] = c.length
			gamma[j] = s.SpecificAttenuation
			excess[j] = s.RefractiveIndex - 1
			bend[j] = c.bend
			res.ClampCount += c.clamps

			if res.Shells != nil {
				res.Shells[i] = ShellSample{
					Shell:         s,
					EntryAngleRad: c.beta,
					ExitAngleRad:  c.alpha,
					PathLengthKm:  c.length,
				}
			}
		}

		res.PathLengthKm += floats.Sum(length[:k])
		res.AbsorptionDB += floats.Dot(length[:k], gamma[:k])
		res.ExcessPathLengthKm += floats.Dot(length[:k], excess[:k])
		res.BendingRad += floats.Sum(bend[:k])
	})

	return res
}

// precompute samples every shell between the terminals at its midpoint.
// The spectral sum inside each shell runs in blocks of t.Width lines.
func (t *Tracer) precompute(fGHz float64, g Geometry, profile atmosphere.Profile) []Shell {
	model := spectral.Model{Width: t.Width}
	shells := make([]Shell, g.Shells())
	for k := range shells {
		shells[k] = newShell(model, fGHz, g, g.Lower+k, profile)
	}
	return shells
}

// crossing is the ray's passage through one shell.
type crossing struct {
	beta   float64 // angle from zenith at the lower boundary
	alpha  float64 // angle from zenith at the upper boundary
	length float64 // path length inside the shell, km
	bend   float64 // refraction at the upper boundary, zero when leaving the last shell
	clamps int
}

// cross applies Bouguer's rule at both boundaries of s (P.676 Eqs. 17-19,
// 22a). next is the shell above, or nil for the last shell; upperKm is the
// height of the upper boundary of s.
func cross(s Shell, next *Shell, upperKm, n1r1, sinBeta1 float64) crossing {
	r := EarthRadiusKm + s.LowerHeightKm
	rNext := EarthRadiusKm + upperKm

	beta, c1 := clampedAsin(n1r1 / (s.RefractiveIndex * r) * sinBeta1)
	alpha, c2 := clampedAsin(n1r1 / (s.RefractiveIndex * rNext) * sinBeta1)

	d := s.ThicknessKm
	cosBeta := math.Cos(beta)
	length := -r*cosBeta + math.Sqrt(r*r*cosBeta*cosBeta+2*r*d+d*d)

	c := crossing{beta: beta, alpha: alpha, length: length, clamps: c1 + c2}
	if next != nil {
		betaNext := math.Asin(s.RefractiveIndex / next.RefractiveIndex * math.Sin(alpha))
		c.bend = betaNext - alpha
	}
	return c
}

// clampedAsin is asin(min(1, x)). Near-grazing rays can overshoot 1 by
// rounding; the second result is 1 when x was clamped.
func clampedAsin(x float64) (float64, int) {
	if x > 1 {
		return math.Pi / 2, 1
	}
	return math.Asin(x), 0
}
