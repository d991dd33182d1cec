package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/hello/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // deterministic test data
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64n returns a uniform value in [0, n). n must be positive.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Point returns a point with both coordinates uniform in [-scale, scale).
func (r *RNG) Point(scale float32) distance.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return distance.Pt(
		(r.rand.Float32()*2-1)*scale,
		(r.rand.Float32()*2-1)*scale,
	)
}

// Points returns n random points, see Point.
func (r *RNG) Points(n int, scale float32) []distance.Point {
	pts := make([]distance.Point, n)
	for i := range pts {
		pts[i] = r.Point(scale)
	}
	return pts
}
