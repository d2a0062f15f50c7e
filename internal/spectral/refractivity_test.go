package spectral

import (
	"math"
	"testing"

	"github.com/star/slantpath/internal/batch"
)

// Sea-level conditions used throughout.
const (
	seaLevelT = 288.15
	seaLevelE = 10.0
	seaLevelP = 1013.25
)

func TestLineTables(t *testing.T) {
	if n := len(OxygenLines()); n != 44 {
		t.Errorf("oxygen lines = %d, want 44", n)
	}
	if n := len(WaterVapourLines()); n != 35 {
		t.Errorf("water vapour lines = %d, want 35", n)
	}

	for i, l := range WaterVapourLines() {
		if l.Correction != [2]float64{} {
			t.Errorf("water vapour line %d has non-zero correction %v", i, l.Correction)
		}
	}

	// Frequencies must be strictly increasing within each table.
	for name, lines := range map[string][]Line{"oxygen": OxygenLines(), "water vapour": WaterVapourLines()} {
		for i := 1; i < len(lines); i++ {
			if lines[i].FrequencyGHz <= lines[i-1].FrequencyGHz {
				t.Errorf("%s line %d: %.6f GHz not above %.6f GHz", name, i, lines[i].FrequencyGHz, lines[i-1].FrequencyGHz)
			}
		}
	}
}

func TestLineTablesAreCopies(t *testing.T) {
	lines := OxygenLines()
	lines[0].FrequencyGHz = -1

	if OxygenLines()[0].FrequencyGHz != 50.474214 {
		t.Error("mutating the returned slice changed the oxygen table")
	}
}

func TestOxygenPeakNear60GHz(t *testing.T) {
	at := func(f float64) float64 {
		o, _ := Refractivity(f, seaLevelT, seaLevelE, seaLevelP)
		return o
	}

	peak := at(60)
	for _, f := range []float64{50, 70} {
		if v := at(f); peak <= v {
			t.Errorf("N_o(60 GHz) = %.6g, want greater than N_o(%g GHz) = %.6g", peak, f, v)
		}
	}
}

func TestWaterVapourPeakNear22GHz(t *testing.T) {
	at := func(f float64) float64 {
		_, w := Refractivity(f, seaLevelT, seaLevelE, seaLevelP)
		return w
	}

	peak := at(22.235)
	for _, f := range []float64{15, 30} {
		if v := at(f); peak <= v {
			t.Errorf("N_w(22.235 GHz) = %.6g, want greater than N_w(%g GHz) = %.6g", peak, f, v)
		}
	}
}

func TestDryAirHasNoWaterVapourTerm(t *testing.T) {
	_, w := Refractivity(22.235, seaLevelT, 0, seaLevelP)
	if w != 0 {
		t.Errorf("N_w with e=0 = %v, want 0", w)
	}
}

func TestVacuumIsFinite(t *testing.T) {
	o, w := Refractivity(60, 200, 0, 0)
	if o != 0 || w != 0 {
		t.Errorf("refractivity in vacuum = (%v, %v), want (0, 0)", o, w)
	}
}

func TestLineShapeAtLineCenter(t *testing.T) {
	for _, l := range OxygenLines() {
		v := LineShape(l.FrequencyGHz, l.FrequencyGHz, 1.5e-3, 0)
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			t.Errorf("LineShape at %.6f GHz center = %v, want finite positive", l.FrequencyGHz, v)
		}
	}
}

func TestSpecificAttenuation(t *testing.T) {
	tests := []struct {
		name     string
		fGHz     float64
		min, max float64 // dB/km
	}{
		{"L band", 1.5, 0.001, 0.02},
		{"water vapour line", 22.235, 0.1, 0.5},
		{"oxygen complex", 60, 5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpecificAttenuation(tt.fGHz, seaLevelT, seaLevelE, seaLevelP)
			if got < tt.min || got > tt.max {
				t.Errorf("gamma(%g GHz) = %.4f dB/km, want within [%g, %g]", tt.fGHz, got, tt.min, tt.max)
			}
		})
	}
}

// TestBatchedMatchesScalar verifies that every batch width reproduces the
// sequential line sum.
func TestBatchedMatchesScalar(t *testing.T) {
	scalar := Model{Width: 1}

	for _, f := range []float64{0.5, 10, 22.235, 57.3, 60, 118.75, 183.31, 325, 1000} {
		wantO, wantW := scalar.Refractivity(f, seaLevelT, seaLevelE, seaLevelP)
		for _, w := range []batch.Width{2, 4, 8} {
			gotO, gotW := Model{Width: w}.Refractivity(f, seaLevelT, seaLevelE, seaLevelP)
			if rel := relErr(gotO, wantO); rel > 1e-10 {
				t.Errorf("f=%g width=%d: N_o rel err %.3g", f, w, rel)
			}
			if rel := relErr(gotW, wantW); rel > 1e-10 {
				t.Errorf("f=%g width=%d: N_w rel err %.3g", f, w, rel)
			}
		}
	}
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func BenchmarkRefractivity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Refractivity(60, seaLevelT, seaLevelE, seaLevelP)
	}
}
