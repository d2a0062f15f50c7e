package atmosphere

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/star/slantpath/internal/metrics"
)

// state is one memoized evaluation of the wrapped profile.
type state struct {
	temperature float64
	dry         float64
	wet         float64
}

// Memoized caches the state of a Profile by exact height. Sweeps that trace
// the same terminal heights repeatedly sample identical shell midpoints, so
// every lookup after the first is a map read.
// Safe for concurrent use by multiple goroutines.
type Memoized struct {
	inner Profile
	limit int

	mu      sync.RWMutex
	entries map[uint64]state

	// Counters (lock-free).
	hits   atomic.Int64
	misses atomic.Int64
}

// DefaultMemoLimit bounds the number of heights Memoize keeps.
const DefaultMemoLimit = 1 << 18

// Memoize wraps p in a concurrent cache holding up to DefaultMemoLimit
// heights. p itself must be deterministic.
func Memoize(p Profile) *Memoized {
	return MemoizeLimit(p, DefaultMemoLimit)
}

// MemoizeLimit is Memoize with an explicit entry limit. Once the cache is
// full, new heights are evaluated but not stored.
func MemoizeLimit(p Profile, limit int) *Memoized {
	return &Memoized{
		inner:   p,
		limit:   limit,
		entries: make(map[uint64]state),
	}
}

func (m *Memoized) Temperature(hKm float64) float64 { return m.lookup(hKm).temperature }
func (m *Memoized) DryPressure(hKm float64) float64 { return m.lookup(hKm).dry }
func (m *Memoized) WetPressure(hKm float64) float64 { return m.lookup(hKm).wet }

// Stats returns the number of cache hits and misses so far.
func (m *Memoized) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}

// Len returns the number of memoized heights.
func (m *Memoized) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memoized) lookup(hKm float64) state {
	key := math.Float64bits(hKm)

	m.mu.RLock()
	s, ok := m.entries[key]
	m.mu.RUnlock()

	if ok {
		m.hits.Add(1)
		metrics.IncProfileMemoHits()
		return s
	}

	// Evaluated outside the lock; concurrent misses on one height compute the
	// same value and the last write wins.
	s = state{
		temperature: m.inner.Temperature(hKm),
		dry:         m.inner.DryPressure(hKm),
		wet:         m.inner.WetPressure(hKm),
	}

	m.mu.Lock()
	if len(m.entries) < m.limit {
		m.entries[key] = s
	}
	m.mu.Unlock()

	m.misses.Add(1)
	metrics.IncProfileMemoMisses()
	return s
}
