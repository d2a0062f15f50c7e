package atmosphere

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"
)

func TestReferenceSeaLevel(t *testing.T) {
	ref := MeanAnnualGlobal()

	if got := ref.Temperature(0); got != 288.15 {
		t.Errorf("T(0) = %v K, want 288.15", got)
	}
	if got := ref.Pressure(0); math.Abs(got-1013.25) > 1e-9 {
		t.Errorf("P(0) = %v hPa, want 1013.25", got)
	}

	wantE := 7.5 * 288.15 / 216.7
	if got := ref.WetPressure(0); math.Abs(got-wantE) > 1e-9 {
		t.Errorf("e(0) = %v hPa, want %v", got, wantE)
	}
	if got := ref.DryPressure(0); math.Abs(got-(1013.25-wantE)) > 1e-9 {
		t.Errorf("p(0) = %v hPa, want %v", got, 1013.25-wantE)
	}
}

func TestReferenceTemperatureLayers(t *testing.T) {
	ref := MeanAnnualGlobal()

	tests := []struct {
		hKm  float64
		want float64
		tol  float64
	}{
		{15, 216.65, 1e-9},   // tropopause isothermal layer
		{90, 186.8673, 1e-9}, // mesopause
		{5, 288.15 - 6.5*geopotential(5), 1e-9},
		{100, 195.08, 0.05},
	}

	for _, tt := range tests {
		if got := ref.Temperature(tt.hKm); math.Abs(got-tt.want) > tt.tol {
			t.Errorf("T(%g km) = %.4f K, want %.4f", tt.hKm, got, tt.want)
		}
	}
}

func TestReferencePressureDecreases(t *testing.T) {
	ref := MeanAnnualGlobal()

	prev := ref.Pressure(0)
	for h := 0.5; h <= 100; h += 0.5 {
		p := ref.Pressure(h)
		if !(p < prev) || p <= 0 {
			t.Fatalf("P(%g km) = %g hPa, not below P(%g km) = %g hPa", h, p, h-0.5, prev)
		}
		prev = p
	}
}

func TestReferenceMixingRatioFloor(t *testing.T) {
	ref := MeanAnnualGlobal()

	for _, h := range []float64{40, 60, 80, 99} {
		e, p := ref.WetPressure(h), ref.Pressure(h)
		if math.Abs(e/p-minMixingRatio) > 1e-15 {
			t.Errorf("mixing ratio at %g km = %g, want floor %g", h, e/p, minMixingRatio)
		}
	}
}

func TestRefractiveIndexSeaLevel(t *testing.T) {
	ref := MeanAnnualGlobal()
	n := IndexAt(ref, 0)

	// Surface refractivity of the reference atmosphere is roughly 300-330 N-units.
	if n-1 < 2.5e-4 || n-1 > 4e-4 {
		t.Errorf("n(0) - 1 = %g, want between 2.5e-4 and 4e-4", n-1)
	}
	if IndexAt(ref, 10) >= n {
		t.Error("refractive index should decrease with height")
	}
}

func TestProfileFuncs(t *testing.T) {
	p := ProfileFuncs{
		TemperatureFunc: func(h float64) float64 { return 300 - h },
		DryPressureFunc: func(h float64) float64 { return 1000 - 10*h },
		WetPressureFunc: func(h float64) float64 { return 5 },
	}

	if p.Temperature(1) != 299 || p.DryPressure(1) != 990 || p.WetPressure(1) != 5 {
		t.Errorf("ProfileFuncs did not forward to the supplied functions")
	}
}

type countingProfile struct {
	calls atomic.Int64
	Reference
}

func (c *countingProfile) Temperature(h float64) float64 {
	c.calls.Add(1)
	return c.Reference.Temperature(h)
}

func TestMemoizeHitsAndMisses(t *testing.T) {
	inner := &countingProfile{Reference: MeanAnnualGlobal()}
	m := Memoize(inner)

	for i := 0; i < 3; i++ {
		for _, h := range []float64{0, 1.5, 10} {
			if got, want := m.Temperature(h), inner.Reference.Temperature(h); got != want {
				t.Fatalf("memoized T(%g) = %v, want %v", h, got, want)
			}
			if got, want := m.WetPressure(h), inner.Reference.WetPressure(h); got != want {
				t.Fatalf("memoized e(%g) = %v, want %v", h, got, want)
			}
		}
	}

	hits, misses := m.Stats()
	if misses != 3 {
		t.Errorf("misses = %d, want 3", misses)
	}
	if hits != 15 {
		t.Errorf("hits = %d, want 15", hits)
	}
	if inner.calls.Load() != 3 {
		t.Errorf("underlying Temperature called %d times, want 3", inner.calls.Load())
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
}

func TestMemoizeConcurrent(t *testing.T) {
	m := Memoize(MeanAnnualGlobal())
	ref := MeanAnnualGlobal()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				h := float64(i%50) * 0.2
				if m.DryPressure(h) != ref.DryPressure(h) {
					t.Errorf("memoized p(%g) mismatch", h)
					return
				}
			}
		}()
	}
	wg.Wait()

	if m.Len() != 50 {
		t.Errorf("Len = %d, want 50", m.Len())
	}
}

func TestMemoizeLimit(t *testing.T) {
	m := MemoizeLimit(MeanAnnualGlobal(), 2)
	ref := MeanAnnualGlobal()

	for _, h := range []float64{0, 1, 2, 3} {
		if m.Temperature(h) != ref.Temperature(h) {
			t.Fatalf("memoized T(%g) mismatch", h)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}

	// Heights past the limit are recomputed on every call.
	m.Temperature(3)
	if _, misses := m.Stats(); misses != 5 {
		t.Errorf("misses = %d, want 5", misses)
	}
}
