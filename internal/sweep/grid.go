package sweep

import "math"

// ElevationGrid returns points from fromRad to toRad (inclusive, launch
// angles from zenith) in steps of stepRad, all between the same terminals.
// It returns nil for a non-positive step or an empty range.
func ElevationGrid(fGHz, lowKm, highKm, fromRad, toRad, stepRad float64) []Point {
	n := GridSize(fromRad, toRad, stepRad)
	if n == 0 {
		return nil
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			FrequencyGHz: fGHz,
			LowKm:        lowKm,
			HighKm:       highKm,
			AngleRad:     fromRad + float64(i)*stepRad,
		}
	}
	return points
}

// HeightGrid returns one point per high-terminal height, all launched at
// angleRad from lowKm.
func HeightGrid(fGHz, lowKm float64, highKm []float64, angleRad float64) []Point {
	points := make([]Point, len(highKm))
	for i, h := range highKm {
		points[i] = Point{
			FrequencyGHz: fGHz,
			LowKm:        lowKm,
			HighKm:       h,
			AngleRad:     angleRad,
		}
	}
	return points
}

// GridSize is the number of points ElevationGrid would produce. The end of
// the range is included when it falls within a millionth of a step.
func GridSize(fromRad, toRad, stepRad float64) int {
	if !(stepRad > 0) || !(toRad >= fromRad) {
		return 0
	}
	n := math.Floor((toRad-fromRad)/stepRad+1e-6) + 1
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
