// Package atmosphere supplies the vertical profiles a ray trace samples:
// temperature, dry-air pressure and water-vapour partial pressure as
// functions of height, plus the conversion from those to a refractive index.
package atmosphere

// Profile maps a height above the surface, in km, to the atmospheric state.
// Implementations must be safe for concurrent use and return finite values
// over every height a trace visits.
type Profile interface {
	Temperature(hKm float64) float64 // K
	DryPressure(hKm float64) float64 // hPa
	WetPressure(hKm float64) float64 // hPa
}

// ProfileFuncs adapts three plain functions to a Profile.
type ProfileFuncs struct {
	TemperatureFunc func(hKm float64) float64
	DryPressureFunc func(hKm float64) float64
	WetPressureFunc func(hKm float64) float64
}

func (f ProfileFuncs) Temperature(hKm float64) float64 { return f.TemperatureFunc(hKm) }
func (f ProfileFuncs) DryPressure(hKm float64) float64 { return f.DryPressureFunc(hKm) }
func (f ProfileFuncs) WetPressure(hKm float64) float64 { return f.WetPressureFunc(hKm) }

// RefractiveIndex converts dry pressure and water-vapour pressure (hPa) and
// temperature (K) to a refractive index (ITU-R P.453 Eqs. 1-3).
func RefractiveIndex(pHPa, tK, eHPa float64) float64 {
	dry := 77.6 * pHPa / tK
	wet := 72*eHPa/tK + 3.75e5*eHPa/(tK*tK)
	return 1 + (dry+wet)*1e-6
}

// IndexAt samples p at hKm and returns the refractive index there.
func IndexAt(p Profile, hKm float64) float64 {
	return RefractiveIndex(p.DryPressure(hKm), p.Temperature(hKm), p.WetPressure(hKm))
}
