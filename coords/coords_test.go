package coords

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSTUVInverse(t *testing.T) {
	for _, s := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999, 1} {
		assert.InDelta(t, s, UVtoST(STtoUV(s)), 1e-12, "s=%v", s)
	}
	assert.InDelta(t, -1.0, STtoUV(0), 1e-15)
	assert.Equal(t, 0.0, STtoUV(0.5))
	assert.InDelta(t, 1.0, STtoUV(1), 1e-15)
}

func TestSTtoIJClamps(t *testing.T) {
	assert.Equal(t, 0, STtoIJ(-0.5))
	assert.Equal(t, 0, STtoIJ(0))
	assert.Equal(t, MaxSize/2, STtoIJ(0.5))
	assert.Equal(t, MaxSize-1, STtoIJ(1))
	assert.Equal(t, MaxSize-1, STtoIJ(7))
	assert.Equal(t, 0.5, IJtoSTMin(MaxSize/2))
	assert.Equal(t, 0.5, SiTitoST(MaxSiTi/2))
}

func TestFaceUVRoundTrip(t *testing.T) {
	for face := 0; face < 6; face++ {
		t.Run(fmt.Sprintf("face %d", face), func(t *testing.T) {
			for _, uv := range [][2]float64{{0, 0}, {0.3, -0.7}, {-0.99, 0.99}} {
				p := FaceUVToXYZ(face, uv[0], uv[1])
				f, u, v := XYZToFaceUV(p)
				require.Equal(t, face, f)
				assert.InDelta(t, uv[0], u, 1e-12)
				assert.InDelta(t, uv[1], v, 1e-12)

				u2, v2, ok := FaceXYZToUV(face, p)
				require.True(t, ok)
				assert.InDelta(t, u, u2, 1e-12)
				assert.InDelta(t, v, v2, 1e-12)

				_, _, ok = FaceXYZToUV((face+3)%6, p)
				assert.False(t, ok)
			}
		})
	}
}

func TestFaceAxes(t *testing.T) {
	assert.Equal(t, 0, Face(Point{1, 0, 0}))
	assert.Equal(t, 1, Face(Point{0, 1, 0}))
	assert.Equal(t, 2, Face(Point{0, 0, 1}))
	assert.Equal(t, 3, Face(Point{-1, 0, 0}))
	assert.Equal(t, 4, Face(Point{0, -1, 0}))
	assert.Equal(t, 5, Face(Point{0, 0, -1}))
}

func TestLatLngPoint(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"origin", 0, 0},
		{"north pole", 90, 0},
		{"sydney", -33.8688, 151.2093},
		{"antimeridian", 12.5, -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll := LatLngFromDegrees(tt.lat, tt.lng)
			require.True(t, ll.IsValid())
			p := PointFromLatLng(ll)
			assert.InDelta(t, 1.0, p.Norm(), 1e-12)

			back := LatLngFromPoint(p)
			lat, lng := back.Degrees()
			assert.InDelta(t, tt.lat, lat, 1e-9)
			if math.Abs(tt.lat) < 90 {
				assert.InDelta(t, math.Cos(tt.lng*math.Pi/180), math.Cos(lng*math.Pi/180), 1e-9)
				assert.InDelta(t, math.Sin(tt.lng*math.Pi/180), math.Sin(lng*math.Pi/180), 1e-9)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	p := Point{3, 4, 0}.Normalize()
	assert.InDelta(t, 0.6, p.X, 1e-12)
	assert.InDelta(t, 0.8, p.Y, 1e-12)
	assert.Equal(t, Point{}, Point{}.Normalize())
}
