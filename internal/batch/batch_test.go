package batch

import (
	"math"
	"testing"
)

func TestBlocksCoverEveryIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 17, 64} {
		for _, w := range []Width{-2, 0, 1, 2, 4, 8} {
			seen := make([]int, n)
			next := 0
			Blocks(n, w, func(lo, hi int) {
				if lo != next {
					t.Fatalf("n=%d w=%d: block starts at %d, want %d", n, w, lo, next)
				}
				if hi <= lo || hi-lo > w.Lanes() {
					t.Fatalf("n=%d w=%d: bad block [%d, %d)", n, w, lo, hi)
				}
				for i := lo; i < hi; i++ {
					seen[i]++
				}
				next = hi
			})
			for i, c := range seen {
				if c != 1 {
					t.Errorf("n=%d w=%d: index %d visited %d times", n, w, i, c)
				}
			}
		}
	}
}

func TestBlocksScalarTail(t *testing.T) {
	var sizes []int
	Blocks(10, 4, func(lo, hi int) { sizes = append(sizes, hi-lo) })

	want := []int{4, 4, 1, 1}
	if len(sizes) != len(want) {
		t.Fatalf("block sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("block sizes = %v, want %v", sizes, want)
			break
		}
	}
}

func TestSumWidthOneIsSequential(t *testing.T) {
	kernel := func(i int) float64 { return 1 / float64(i+1) }

	var want float64
	for i := 0; i < 1000; i++ {
		want += kernel(i)
	}

	if got := Sum(1000, 1, kernel); got != want {
		t.Errorf("Sum width 1 = %v, want exactly %v", got, want)
	}
}

func TestSumWidthsAgree(t *testing.T) {
	kernel := func(i int) float64 { return math.Sin(float64(i)) * math.Exp(-float64(i)/300) }
	ref := Sum(997, 1, kernel)

	for _, w := range []Width{2, 3, 4, 8, 16} {
		got := Sum(997, w, kernel)
		if rel := math.Abs(got-ref) / math.Abs(ref); rel > 1e-12 {
			t.Errorf("width %d: Sum = %v, scalar = %v (rel err %.3g)", w, got, ref, rel)
		}
	}
}

func TestSumEmpty(t *testing.T) {
	if got := Sum(0, DefaultWidth, func(int) float64 { return 1 }); got != 0 {
		t.Errorf("Sum over empty range = %v, want 0", got)
	}
}
