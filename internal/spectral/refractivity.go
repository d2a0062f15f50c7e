package spectral

import (
	"math"

	"github.com/star/slantpath/internal/batch"
)

// Model sums line contributions in blocks of Width lines. Every width gives
// the same sum up to floating-point reassociation.
type Model struct {
	Width batch.Width
}

// DefaultModel evaluates with batch.DefaultWidth.
var DefaultModel = Model{Width: batch.DefaultWidth}

// Refractivity returns the imaginary part of the complex refractivity due to
// oxygen and to water vapour, in N-units, at frequency fGHz, temperature tK,
// water-vapour partial pressure eHPa and dry-air pressure pHPa.
func Refractivity(fGHz, tK, eHPa, pHPa float64) (oxygen, waterVapour float64) {
	return DefaultModel.Refractivity(fGHz, tK, eHPa, pHPa)
}

// SpecificAttenuation returns the gaseous specific attenuation in dB/km.
func SpecificAttenuation(fGHz, tK, eHPa, pHPa float64) float64 {
	return DefaultModel.SpecificAttenuation(fGHz, tK, eHPa, pHPa)
}

// Refractivity is the per-species imaginary refractivity, in N-units.
func (m Model) Refractivity(fGHz, tK, eHPa, pHPa float64) (oxygen, waterVapour float64) {
	return m.Oxygen(fGHz, tK, eHPa, pHPa), m.WaterVapour(fGHz, tK, eHPa, pHPa)
}

// SpecificAttenuation converts the total imaginary refractivity to dB/km
// (P.676 Eq. 1).
func (m Model) SpecificAttenuation(fGHz, tK, eHPa, pHPa float64) float64 {
	oxygen, waterVapour := m.Refractivity(fGHz, tK, eHPa, pHPa)
	return 0.1820 * fGHz * (oxygen + waterVapour)
}

// Oxygen is the oxygen line sum plus the dry continuum (P.676 Eq. 2a).
func (m Model) Oxygen(fGHz, tK, eHPa, pHPa float64) float64 {
	theta := 300 / tK
	n := batch.Sum(len(oxygenLines), m.Width, func(i int) float64 {
		return oxygenTerm(&oxygenLines[i], fGHz, theta, eHPa, pHPa)
	})
	return n + NonresonantDebye(fGHz, eHPa, pHPa, theta)
}

// WaterVapour is the water-vapour line sum (P.676 Eq. 2b).
func (m Model) WaterVapour(fGHz, tK, eHPa, pHPa float64) float64 {
	theta := 300 / tK
	return batch.Sum(len(waterVapourLines), m.Width, func(i int) float64 {
		return waterVapourTerm(&waterVapourLines[i], fGHz, theta, eHPa, pHPa)
	})
}

func oxygenTerm(l *Line, fGHz, theta, eHPa, pHPa float64) float64 {
	strength := l.Strength[0] * 1e-7 * pHPa * math.Pow(theta, 3) * math.Exp(l.Strength[1]*(1-theta))

	width := l.Broadening[0] * 1e-4 * (pHPa*math.Pow(theta, 0.8-l.Broadening[1]) + 1.1*eHPa*theta)
	// Zeeman splitting
	width = math.Sqrt(width*width + 2.25e-6)

	delta := (l.Correction[0] + l.Correction[1]*theta) * 1e-4 * (pHPa + eHPa) * math.Pow(theta, 0.8)

	return strength * LineShape(fGHz, l.FrequencyGHz, width, delta)
}

func waterVapourTerm(l *Line, fGHz, theta, eHPa, pHPa float64) float64 {
	strength := 0.1 * l.Strength[0] * eHPa * math.Pow(theta, 3.5) * math.Exp(l.Strength[1]*(1-theta))

	b := l.Broadening
	width := 1e-4 * b[0] * (pHPa*math.Pow(theta, b[1]) + b[2]*eHPa*math.Pow(theta, b[3]))
	// Doppler broadening
	width = 0.535*width + math.Sqrt(0.217*width*width+2.1316e-12*l.FrequencyGHz*l.FrequencyGHz/theta)

	return strength * LineShape(fGHz, l.FrequencyGHz, width, 0)
}
