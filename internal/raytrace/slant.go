package raytrace

import (
	"errors"
	"fmt"
	"math"

	"github.com/star/slantpath/internal/atmosphere"
)

var (
	// ErrHeightOrder is returned when the terminals are not 0 <= h1 < h2.
	ErrHeightOrder = errors.New("terminal heights must satisfy 0 <= h1 < h2")

	// ErrGroundIntersection is returned when a descending ray would reach the
	// surface before grazing.
	ErrGroundIntersection = errors.New("ray intersects the ground")
)

const (
	// Bisection stops once n·r at the grazing height matches the ray
	// invariant to within this many km.
	grazingToleranceKm = 1e-6
	maxBisections      = 100
)

// SlantPath traces from the low terminal at h1Km to the high terminal at h2Km
// for any launch angle in [0, π] from zenith.
//
// Angles up to π/2 are a plain Trace. Larger angles point below the local
// horizontal: the ray descends to the grazing height h_G where
// n(h_G)·(a_0+h_G) equals the ray invariant, then climbs back through h1 and
// on to h2. Both legs are traced upward from h_G at π/2 and summed; the exit
// angle is that of the leg ending at h2.
func (t *Tracer) SlantPath(fGHz, h1Km, h2Km, beta1Rad float64, profile atmosphere.Profile) (Result, error) {
	if !(h1Km >= 0 && h2Km > h1Km) {
		return Result{}, fmt.Errorf("h1=%g km, h2=%g km: %w", h1Km, h2Km, ErrHeightOrder)
	}

	if beta1Rad <= math.Pi/2 {
		return t.Trace(fGHz, h1Km, h2Km, beta1Rad, profile), nil
	}

	hG, err := grazingHeight(profile, h1Km, beta1Rad)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if h1Km > hG {
		res.add(t.Trace(fGHz, hG, h1Km, math.Pi/2, profile))
	}
	res.add(t.Trace(fGHz, hG, h2Km, math.Pi/2, profile))
	return res, nil
}

// SlantPath runs Tracer.SlantPath with the default width.
func SlantPath(fGHz, h1Km, h2Km, beta1Rad float64, profile atmosphere.Profile) (Result, error) {
	return defaultTracer.SlantPath(fGHz, h1Km, h2Km, beta1Rad, profile)
}

// grazingHeight bisects [0, h1] for the height where a ray launched
// downward at beta1Rad from h1 runs horizontally. n·r is assumed to increase
// with height, which holds for any non-ducting profile.
func grazingHeight(profile atmosphere.Profile, h1Km, beta1Rad float64) (float64, error) {
	invariant := func(hKm float64) float64 {
		return atmosphere.IndexAt(profile, hKm) * (EarthRadiusKm + hKm)
	}

	target := invariant(h1Km) * math.Sin(beta1Rad)
	if invariant(0) > target {
		return 0, fmt.Errorf("launch angle %.6f rad from %g km: %w", beta1Rad, h1Km, ErrGroundIntersection)
	}

	lo, hi := 0.0, h1Km
	for i := 0; i < maxBisections; i++ {
		mid := (lo + hi) / 2
		diff := invariant(mid) - target
		if math.Abs(diff) < grazingToleranceKm {
			return mid, nil
		}
		if diff > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2, nil
}
