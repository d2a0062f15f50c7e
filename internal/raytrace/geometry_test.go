package raytrace

import (
	"math"
	"testing"
)

func TestGeometryBounds(t *testing.T) {
	tests := []struct {
		h1, h2 float64
	}{
		{0, 10},
		{0.5, 3},
		{1, 100},
		{0.001, 0.002},
		{0, 0.05},
	}

	for _, tt := range tests {
		g := NewGeometry(tt.h1, tt.h2)

		if g.Lower > g.Upper {
			t.Errorf("[%g, %g]: Lower %d > Upper %d", tt.h1, tt.h2, g.Lower, g.Upper)
			continue
		}
		if g.Shells() < 1 {
			t.Errorf("[%g, %g]: %d shells, want at least 1", tt.h1, tt.h2, g.Shells())
		}

		if got := g.Height(g.Lower); got != tt.h1 {
			t.Errorf("[%g, %g]: Height(Lower) = %v, want %v", tt.h1, tt.h2, got, tt.h1)
		}
		if got := g.Height(g.Upper); math.Abs(got-tt.h2) > 1e-9*math.Max(1, tt.h2) {
			t.Errorf("[%g, %g]: Height(Upper) = %.12f, want %.12f", tt.h1, tt.h2, got, tt.h2)
		}

		var total float64
		for i := g.Lower; i < g.Upper; i++ {
			d := g.Thickness(i)
			if !(d > 0) {
				t.Fatalf("[%g, %g]: Thickness(%d) = %v, want > 0", tt.h1, tt.h2, i, d)
			}
			if step := g.Height(i+1) - g.Height(i); math.Abs(step-d) > 1e-9*math.Max(d, 1e-3) {
				t.Errorf("[%g, %g]: boundary step %d = %g, thickness %g", tt.h1, tt.h2, i, step, d)
			}
			if g.Height(i+1) <= g.Height(i) {
				t.Errorf("[%g, %g]: heights not increasing at %d", tt.h1, tt.h2, i)
			}
			total += d
		}
		if math.Abs(total-(tt.h2-tt.h1)) > 1e-9*math.Max(1, tt.h2) {
			t.Errorf("[%g, %g]: shell thicknesses sum to %.12f, want %.12f", tt.h1, tt.h2, total, tt.h2-tt.h1)
		}
	}
}

func TestGeometryGrowsWithHeight(t *testing.T) {
	g := NewGeometry(0, 100)
	first := g.Thickness(g.Lower)
	last := g.Thickness(g.Upper - 1)

	// Exponential stratification: the top shells are orders of magnitude
	// thicker than the ones at the surface.
	if last/first < 1000 {
		t.Errorf("thickness ratio top/bottom = %.1f, want > 1000", last/first)
	}
}
