// Package spectral evaluates gaseous absorption from the line-by-line
// spectroscopic model of ITU-R P.676 Annex 1: resonance lines of oxygen and
// water vapour plus the nonresonant Debye continuum of dry air.
//
// Everything here is a pure function of its arguments. The line tables are
// built once at package initialization and never modified.
package spectral

// Line is one resonance line of a molecular species.
//
// Oxygen lines use Strength = (a1, a2), Broadening = (a3, a4, 0, 0) and
// Correction = (a5, a6). Water-vapour lines use Strength = (b1, b2),
// Broadening = (b3, b4, b5, b6) and a zero Correction.
type Line struct {
	FrequencyGHz float64
	Strength     [2]float64
	Broadening   [4]float64
	Correction   [2]float64
}

func o2(f0, a1, a2, a3, a4, a5, a6 float64) Line {
	return Line{
		FrequencyGHz: f0,
		Strength:     [2]float64{a1, a2},
		Broadening:   [4]float64{a3, a4},
		Correction:   [2]float64{a5, a6},
	}
}

func h2o(f0, b1, b2, b3, b4, b5, b6 float64) Line {
	return Line{
		FrequencyGHz: f0,
		Strength:     [2]float64{b1, b2},
		Broadening:   [4]float64{b3, b4, b5, b6},
	}
}

// OxygenLines returns a copy of the oxygen line table.
func OxygenLines() []Line {
	return append([]Line(nil), oxygenLines...)
}

// WaterVapourLines returns a copy of the water-vapour line table.
func WaterVapourLines() []Line {
	return append([]Line(nil), waterVapourLines...)
}

// P.676 Annex 1, Table 1.
var oxygenLines = []Line{
	o2(50.474214, 0.975, 9.651, 6.690, 0.0, 2.566, 6.850),
	o2(50.987745, 2.529, 8.653, 7.170, 0.0, 2.246, 6.800),
	o2(51.503360, 6.193, 7.709, 7.640, 0.0, 1.947, 6.729),
	o2(52.021429, 14.320, 6.819, 8.110, 0.0, 1.667, 6.640),
	o2(52.542418, 31.240, 5.983, 8.580, 0.0, 1.388, 6.526),
	o2(53.066934, 64.290, 5.201, 9.060, 0.0, 1.349, 6.206),
	o2(53.595775, 124.600, 4.474, 9.550, 0.0, 2.227, 5.085),
	o2(54.130025, 227.300, 3.800, 9.960, 0.0, 3.170, 3.750),
	o2(54.671180, 389.700, 3.182, 10.370, 0.0, 3.558, 2.654),
	o2(55.221384, 627.100, 2.618, 10.890, 0.0, 2.560, 2.952),
	o2(55.783815, 945.300, 2.109, 11.340, 0.0, -1.172, 6.135),
	o2(56.264774, 543.400, 0.014, 17.030, 0.0, 3.525, -0.978),
	o2(56.363399, 1331.800, 1.654, 11.890, 0.0, -2.378, 6.547),
	o2(56.968211, 1746.600, 1.255, 12.230, 0.0, -3.545, 6.451),
	o2(57.612486, 2120.100, 0.910, 12.620, 0.0, -5.416, 6.056),
	o2(58.323877, 2363.700, 0.621, 12.950, 0.0, -1.932, 0.436),
	o2(58.446588, 1442.100, 0.083, 14.910, 0.0, 6.768, -1.273),
	o2(59.164204, 2379.900, 0.387, 13.530, 0.0, -6.561, 2.309),
	o2(59.590983, 2090.700, 0.207, 14.080, 0.0, 6.957, -0.776),
	o2(60.306056, 2103.400, 0.207, 14.150, 0.0, -6.395, 0.699),
	o2(60.434778, 2438.000, 0.386, 13.390, 0.0, 6.342, -2.825),
	o2(61.150562, 2479.500, 0.621, 12.920, 0.0, 1.014, -0.584),
	o2(61.800158, 2275.900, 0.910, 12.630, 0.0, 5.014, -6.619),
	o2(62.411220, 1915.400, 1.255, 12.170, 0.0, 3.029, -6.759),
	o2(62.486253, 1503.000, 0.083, 15.130, 0.0, -4.499, 0.844),
	o2(62.997984, 1490.200, 1.654, 11.740, 0.0, 1.856, -6.675),
	o2(63.568526, 1078.000, 2.108, 11.340, 0.0, 0.658, -6.139),
	o2(64.127775, 728.700, 2.617, 10.880, 0.0, -3.036, -2.895),
	o2(64.678910, 461.300, 3.181, 10.380, 0.0, -3.968, -2.590),
	o2(65.224078, 274.000, 3.800, 9.960, 0.0, -3.528, -3.680),
	o2(65.764779, 153.000, 4.473, 9.550, 0.0, -2.548, -5.002),
	o2(66.302096, 80.400, 5.200, 9.060, 0.0, -1.660, -6.091),
	o2(66.836834, 39.800, 5.982, 8.580, 0.0, -1.680, -6.393),
	o2(67.369601, 18.560, 6.818, 8.110, 0.0, -1.956, -6.475),
	o2(67.900868, 8.172, 7.708, 7.640, 0.0, -2.216, -6.545),
	o2(68.431006, 3.397, 8.652, 7.170, 0.0, -2.492, -6.600),
	o2(68.960312, 1.334, 9.650, 6.690, 0.0, -2.773, -6.650),
	o2(118.750334, 940.300, 0.010, 16.640, 0.0, -0.439, 0.079),
	o2(368.498246, 67.400, 0.048, 16.400, 0.0, 0.000, 0.000),
	o2(424.763020, 637.700, 0.044, 16.400, 0.0, 0.000, 0.000),
	o2(487.249273, 237.400, 0.049, 16.000, 0.0, 0.000, 0.000),
	o2(715.392902, 98.100, 0.145, 16.000, 0.0, 0.000, 0.000),
	o2(773.839490, 572.300, 0.141, 16.200, 0.0, 0.000, 0.000),
	o2(834.145546, 183.100, 0.145, 14.700, 0.0, 0.000, 0.000),
}

// P.676 Annex 1, Table 2.
var waterVapourLines = []Line{
	h2o(22.235080, 0.1079, 2.144, 26.38, 0.76, 5.087, 1.00),
	h2o(67.803960, 0.0011, 8.732, 28.58, 0.69, 4.930, 0.82),
	h2o(119.995940, 0.0007, 8.353, 29.48, 0.70, 4.780, 0.79),
	h2o(183.310087, 2.273, 0.668, 29.06, 0.77, 5.022, 0.85),
	h2o(321.225630, 0.0470, 6.179, 24.04, 0.67, 4.398, 0.54),
	h2o(325.152888, 1.514, 1.541, 28.23, 0.64, 4.893, 0.74),
	h2o(336.227764, 0.0010, 9.825, 26.93, 0.69, 4.740, 0.61),
	h2o(380.197353, 11.67, 1.048, 28.11, 0.54, 5.063, 0.89),
	h2o(390.134508, 0.0045, 7.347, 21.52, 0.63, 4.810, 0.55),
	h2o(437.346667, 0.0632, 5.048, 18.45, 0.60, 4.230, 0.48),
	h2o(439.150807, 0.9098, 3.595, 20.07, 0.63, 4.483, 0.52),
	h2o(443.018343, 0.1920, 5.048, 15.55, 0.60, 5.083, 0.50),
	h2o(448.001085, 10.41, 1.405, 25.64, 0.66, 5.028, 0.67),
	h2o(470.888999, 0.3254, 3.597, 21.34, 0.66, 4.506, 0.65),
	h2o(474.689092, 1.260, 2.379, 23.20, 0.65, 4.804, 0.64),
	h2o(488.490108, 0.2529, 2.852, 25.86, 0.69, 5.201, 0.72),
	h2o(503.568532, 0.0372, 6.731, 16.12, 0.61, 3.980, 0.43),
	h2o(504.482692, 0.0124, 6.731, 16.12, 0.61, 4.010, 0.45),
	h2o(547.676440, 0.9785, 0.158, 26.00, 0.70, 4.500, 1.00),
	h2o(552.020960, 0.1840, 0.158, 26.00, 0.70, 4.500, 1.00),
	h2o(556.935985, 497.0, 0.159, 30.86, 0.69, 4.552, 1.00),
	h2o(620.700807, 5.015, 2.391, 24.38, 0.71, 4.856, 0.68),
	h2o(645.766085, 0.0067, 8.633, 18.00, 0.60, 4.000, 0.50),
	h2o(658.005280, 0.2732, 7.816, 32.10, 0.69, 4.140, 1.00),
	h2o(752.033113, 243.4, 0.396, 30.86, 0.68, 4.352, 0.84),
	h2o(841.051732, 0.0134, 8.177, 15.90, 0.33, 5.760, 0.45),
	h2o(859.965698, 0.1325, 8.055, 30.60, 0.68, 4.090, 0.84),
	h2o(899.303175, 0.0547, 7.914, 29.85, 0.68, 4.530, 0.90),
	h2o(902.611085, 0.0386, 8.429, 28.65, 0.70, 5.100, 0.95),
	h2o(906.205957, 0.1836, 5.110, 24.08, 0.70, 4.700, 0.53),
	h2o(916.171582, 8.400, 1.441, 26.73, 0.70, 5.150, 0.78),
	h2o(923.112692, 0.0079, 10.293, 29.00, 0.70, 5.000, 0.80),
	h2o(970.315022, 9.009, 1.919, 25.50, 0.64, 4.940, 0.67),
	h2o(987.926764, 134.6, 0.257, 29.85, 0.68, 4.550, 0.90),
	h2o(1780.000000, 17506.0, 0.952, 196.3, 2.00, 24.15, 5.00),
}
