package raytrace

import (
	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/spectral"
)

// Shell is one atmospheric layer as seen by a trace. Index is the stratification
// index i; the optical properties are sampled at the shell's midpoint height.
type Shell struct {
	Index               int
	LowerHeightKm       float64
	ThicknessKm         float64
	RefractiveIndex     float64
	SpecificAttenuation float64 // dB/km
}

// layerProperties samples the profile at hKm and returns the refractive index
// and the specific attenuation in dB/km at fGHz.
func layerProperties(model spectral.Model, fGHz, hKm float64, profile atmosphere.Profile) (n, gamma float64) {
	tK := profile.Temperature(hKm)
	pHPa := profile.DryPressure(hKm)
	eHPa := profile.WetPressure(hKm)

	n = atmosphere.RefractiveIndex(pHPa, tK, eHPa)
	gamma = model.SpecificAttenuation(fGHz, tK, eHPa, pHPa)
	return n, gamma
}

// newShell builds shell i of g with properties sampled at its midpoint.
func newShell(model spectral.Model, fGHz float64, g Geometry, i int, profile atmosphere.Profile) Shell {
	h := g.Height(i)
	d := g.Thickness(i)
	n, gamma := layerProperties(model, fGHz, h+d/2, profile)

	return Shell{
		Index:               i,
		LowerHeightKm:       h,
		ThicknessKm:         d,
		RefractiveIndex:     n,
		SpecificAttenuation: gamma,
	}
}
