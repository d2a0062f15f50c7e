// Package batch runs index-space kernels in fixed-width blocks.
//
// Full blocks of Width indices are handed out first, followed by a scalar tail
// of single-index blocks for whatever does not fill a full block. Kernels are
// always scalar functions of one index, so the arithmetic done per index is
// the same for every width. Only the order in which block partial sums are
// combined differs, and that order is fixed for a given width.
package batch

import "gonum.org/v1/gonum/floats"

// DefaultWidth matches four float64 lanes of a 256-bit vector register.
const DefaultWidth Width = 4

// Width is the number of lanes in a block. Values below 1 behave as 1,
// which is plain sequential evaluation.
type Width int

// Lanes returns the effective number of lanes.
func (w Width) Lanes() int {
	if w < 1 {
		return 1
	}
	return int(w)
}

// Blocks calls fn for consecutive [lo, hi) blocks covering [0, n) in order.
func Blocks(n int, w Width, fn func(lo, hi int)) {
	width := w.Lanes()
	i := 0
	for ; i+width <= n; i += width {
		fn(i, i+width)
	}
	for ; i < n; i++ {
		fn(i, i+1)
	}
}

// Sum evaluates kernel over [0, n) and returns the total. The lanes of each
// block are reduced first, then added to the running total.
func Sum(n int, w Width, kernel func(i int) float64) float64 {
	lanes := make([]float64, w.Lanes())
	var total float64
	Blocks(n, w, func(lo, hi int) {
		l := lanes[:hi-lo]
		for k := range l {
			l[k] = kernel(lo + k)
		}
		total += floats.Sum(l)
	})
	return total
}
