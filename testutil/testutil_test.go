package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacePosLevel(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 1000; i++ {
		f := rng.Face()
		assert.GreaterOrEqual(t, f, 0)
		assert.Less(t, f, 6)

		assert.Less(t, rng.Pos(), uint64(1)<<posBits)

		l := rng.Level(28)
		assert.GreaterOrEqual(t, l, 0)
		assert.LessOrEqual(t, l, 28)
	}
}

func TestPoint(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		assert.InDelta(t, 1.0, rng.Point().Norm(), 1e-12)
		assert.True(t, rng.LatLng().IsValid())
	}
}

func TestDigits(t *testing.T) {
	rng := NewRNG(4711)

	d := rng.Digits(28)
	assert.Len(t, d, 28)
	for _, x := range d {
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 4)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Uint64()
	rng.Reset()
	v2 := rng.Uint64()

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestInt63n(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		v := rng.Int63n(10)
		assert.GreaterOrEqual(t, v, int64(-10))
		assert.LessOrEqual(t, v, int64(10))
	}
}
