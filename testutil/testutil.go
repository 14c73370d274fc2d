package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/geocell/coords"
)

// posBits is the width of the Hilbert position field including the marker.
const posBits = 2*coords.MaxLevel + 1

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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a pseudo-random number in [-n, n].
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(2*n+1) - n
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Face returns a cube face in [0,6).
func (r *RNG) Face() int {
	return r.Intn(6)
}

// Pos returns a Hilbert position suitable for FromFacePosLevel.
func (r *RNG) Pos() uint64 {
	return r.Uint64() & (1<<posBits - 1)
}

// Level returns a level in [0, maxLevel]. Deep levels are as likely as
// shallow ones so that both ends of the marker range get exercised.
func (r *RNG) Level(maxLevel int) int {
	return r.Intn(maxLevel + 1)
}

// Point returns a point distributed uniformly on the unit sphere.
func (r *RNG) Point() coords.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Rejection sampling from the enclosing cube.
	for {
		p := coords.Point{
			X: 2*r.rand.Float64() - 1,
			Y: 2*r.rand.Float64() - 1,
			Z: 2*r.rand.Float64() - 1,
		}
		if n := p.Norm(); n > 1e-6 && n <= 1 {
			return p.Normalize()
		}
	}
}

// LatLng returns a geographic coordinate distributed uniformly on the
// sphere.
func (r *RNG) LatLng() coords.LatLng {
	return coords.LatLngFromPoint(r.Point())
}

// Digits returns n random child positions in [0,4).
func (r *RNG) Digits(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := make([]int, n)
	for k := range d {
		d[k] = r.rand.Intn(4)
	}
	return d
}
