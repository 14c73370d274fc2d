package coords

import (
	"fmt"
	"math"
)

// LatLng is a geographic coordinate in radians.
type LatLng struct {
	Lat, Lng float64
}

// LatLngFromDegrees builds a LatLng from degrees.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{Lat: lat * math.Pi / 180, Lng: lng * math.Pi / 180}
}

// Degrees returns the latitude and longitude in degrees.
func (ll LatLng) Degrees() (lat, lng float64) {
	return ll.Lat * 180 / math.Pi, ll.Lng * 180 / math.Pi
}

// IsValid reports whether the latitude is within [-90,90] degrees and the
// longitude within [-180,180] degrees.
func (ll LatLng) IsValid() bool {
	return math.Abs(ll.Lat) <= math.Pi/2 && math.Abs(ll.Lng) <= math.Pi
}

func (ll LatLng) String() string {
	lat, lng := ll.Degrees()
	return fmt.Sprintf("[%.7f, %.7f]", lat, lng)
}

// PointFromLatLng returns the unit-sphere point for ll.
func PointFromLatLng(ll LatLng) Point {
	phi := ll.Lat
	theta := ll.Lng
	cosphi := math.Cos(phi)
	return Point{math.Cos(theta) * cosphi, math.Sin(theta) * cosphi, math.Sin(phi)}
}

// LatLngFromPoint returns the geographic coordinate of p. p need not be
// unit length.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{
		Lat: math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y)),
		Lng: math.Atan2(p.Y, p.X),
	}
}
