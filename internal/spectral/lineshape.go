package spectral

import "math"

// LineShape is the Van Vleck-Weisskopf line shape factor with the
// interference correction delta (P.676 Eq. 5), in 1/GHz.
//
// Both denominators are bounded below by widthGHz², so the factor stays
// finite at f == f0 for any positive width.
func LineShape(fGHz, f0GHz, widthGHz, delta float64) float64 {
	lower := (widthGHz - delta*(f0GHz-fGHz)) / ((f0GHz-fGHz)*(f0GHz-fGHz) + widthGHz*widthGHz)
	upper := (widthGHz - delta*(f0GHz+fGHz)) / ((f0GHz+fGHz)*(f0GHz+fGHz) + widthGHz*widthGHz)
	return fGHz / f0GHz * (lower + upper)
}

// NonresonantDebye is the dry-continuum contribution to the imaginary
// refractivity (P.676 Eq. 8): the Debye spectrum of oxygen below 10 GHz and
// the pressure-induced nitrogen absorption above 100 GHz.
//
// The Debye term is written as d/(d²+f²), which equals 1/(d(1+(f/d)²)) and
// stays finite as the width parameter d goes to zero in a vacuum.
func NonresonantDebye(fGHz, eHPa, pHPa, theta float64) float64 {
	d := 5.6e-4 * (pHPa + eHPa) * math.Pow(theta, 0.8)

	debye := 6.14e-5 * d / (d*d + fGHz*fGHz)
	nitrogen := 1.4e-12 * pHPa * math.Pow(theta, 1.5) / (1 + 1.9e-5*math.Pow(fGHz, 1.5))

	return fGHz * pHPa * theta * theta * (debye + nitrogen)
}
