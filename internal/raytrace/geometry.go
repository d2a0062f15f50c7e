// Package raytrace traces a radio ray through a spherically stratified
// atmosphere between two terminals (ITU-R P.676 Annex 1, Section 2.2).
//
// The atmosphere is cut into thin shells whose thickness grows exponentially
// with height. Bouguer's rule, n·r·sin(β) = constant, fixes the ray angle at
// every shell boundary, and the gaseous specific attenuation of each shell is
// evaluated at its midpoint from the line-by-line spectral model.
package raytrace

import "math"

// EarthRadiusKm is the mean Earth radius used for shell radii.
const EarthRadiusKm = 6371.0

// stepGrowth is the thickness ratio of consecutive shells.
var stepGrowth = math.Exp(1. / 100.)

// Geometry is the discretization of [h1, h2] into shells Lower..Upper-1.
// Boundary i sits at Height(i); Height(Lower) == h1 and Height(Upper) == h2.
type Geometry struct {
	Lower  int     // index of the shell starting at h1
	Upper  int     // index of the boundary at h2
	M      float64 // thickness scale, km
	BaseKm float64 // h1
}

// NewGeometry computes the shell index bounds for heights h1 < h2 (km, >= 0)
// and the scale M that lands boundary Upper exactly on h2 (P.676 Eqs. 16a-c).
func NewGeometry(h1Km, h2Km float64) Geometry {
	lower := int(math.Floor(100*math.Log(1e4*h1Km*(stepGrowth-1)+1) + 1))
	upper := int(math.Ceil(100*math.Log(1e4*h2Km*(stepGrowth-1)+1) + 1))
	m := ((math.Exp(2./100.) - stepGrowth) /
		(math.Exp(float64(upper)/100.) - math.Exp(float64(lower)/100.))) * (h2Km - h1Km)

	return Geometry{Lower: lower, Upper: upper, M: m, BaseKm: h1Km}
}

// Shells returns the number of shells between the terminals.
func (g Geometry) Shells() int {
	return g.Upper - g.Lower
}

// Thickness returns the thickness of shell i in km (P.676 Eq. 14).
func (g Geometry) Thickness(i int) float64 {
	return g.M * math.Exp(float64(i-1)/100.)
}

// Height returns the height of the lower boundary of shell i in km.
func (g Geometry) Height(i int) float64 {
	return g.BaseKm + g.M*(math.Exp(float64(i-1)/100.)-math.Exp(float64(g.Lower-1)/100.))/(stepGrowth-1)
}
