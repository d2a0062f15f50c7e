package atmosphere

import "math"

// Reference is the ITU-R P.835 mean annual global reference atmosphere,
// defined from the surface to 100 km.
type Reference struct {
	SurfaceWaterDensity float64 // g/m³ at the surface
	WaterScaleHeightKm  float64 // km
}

// MeanAnnualGlobal returns the reference atmosphere with its standard
// water-vapour parameters (7.5 g/m³, 2 km scale height).
func MeanAnnualGlobal() Reference {
	return Reference{SurfaceWaterDensity: 7.5, WaterScaleHeightKm: 2}
}

const (
	earthRadiusGeopotentialKm = 6356.766
	// Upper limit of the geopotential-height layers; above it the
	// geometric-height formulas apply.
	geopotentialCeilingKm = 84.852
	// Mixing ratio the water-vapour pressure never drops below.
	minMixingRatio = 2e-6
)

// geopotential converts geometric height to geopotential height, in km.
func geopotential(hKm float64) float64 {
	return earthRadiusGeopotentialKm * hKm / (earthRadiusGeopotentialKm + hKm)
}

// Temperature returns the reference temperature in K.
func (r Reference) Temperature(hKm float64) float64 {
	h := geopotential(hKm)
	switch {
	case h <= 11:
		return 288.15 - 6.5*h
	case h <= 20:
		return 216.65
	case h <= 32:
		return 216.65 + (h - 20)
	case h <= 47:
		return 228.65 + 2.8*(h-32)
	case h <= 51:
		return 270.65
	case h <= 71:
		return 270.65 - 2.8*(h-51)
	case h <= geopotentialCeilingKm:
		return 214.65 - 2.0*(h-71)
	case hKm <= 91:
		return 186.8673
	default:
		x := (hKm - 91) / 19.9429
		return 263.1905 - 76.3232*math.Sqrt(1-x*x)
	}
}

// Pressure returns the total reference pressure in hPa.
func (r Reference) Pressure(hKm float64) float64 {
	h := geopotential(hKm)
	switch {
	case h <= 11:
		return 1013.25 * math.Pow(288.15/(288.15-6.5*h), -34.1632/6.5)
	case h <= 20:
		return 226.3226 * math.Exp(-34.1632*(h-11)/216.65)
	case h <= 32:
		return 54.74980 * math.Pow(216.65/(216.65+(h-20)), 34.1632)
	case h <= 47:
		return 8.680422 * math.Pow(228.65/(228.65+2.8*(h-32)), 34.1632/2.8)
	case h <= 51:
		return 1.109106 * math.Exp(-34.1632*(h-47)/270.65)
	case h <= 71:
		return 0.6694167 * math.Pow(270.65/(270.65-2.8*(h-51)), -34.1632/2.8)
	case h <= geopotentialCeilingKm:
		return 0.03956649 * math.Pow(214.65/(214.65-2.0*(h-71)), -34.1632/2.0)
	default:
		return math.Exp(95.571899 - 4.011801*hKm + 6.424731e-2*hKm*hKm -
			4.789660e-4*hKm*hKm*hKm + 1.340543e-6*hKm*hKm*hKm*hKm)
	}
}

// WaterVapourDensity returns the water-vapour density in g/m³.
func (r Reference) WaterVapourDensity(hKm float64) float64 {
	return r.SurfaceWaterDensity * math.Exp(-hKm/r.WaterScaleHeightKm)
}

// WetPressure returns the water-vapour partial pressure in hPa, floored at
// the constant mixing ratio of the upper atmosphere.
func (r Reference) WetPressure(hKm float64) float64 {
	p := r.Pressure(hKm)
	e := r.WaterVapourDensity(hKm) * r.Temperature(hKm) / 216.7
	if e/p < minMixingRatio {
		return p * minMixingRatio
	}
	return e
}

// DryPressure returns the dry-air pressure in hPa.
func (r Reference) DryPressure(hKm float64) float64 {
	return r.Pressure(hKm) - r.WetPressure(hKm)
}
