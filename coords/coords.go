package coords

import "math"

const (
	// MaxLevel is the deepest subdivision level of the leaf (i,j) grid.
	MaxLevel = 30

	// MaxSize is the number of leaf cells along one edge of a face.
	MaxSize = 1 << MaxLevel

	// MaxSiTi is the resolution of the (si,ti) grid, which addresses cell
	// centers and vertices at twice the leaf resolution.
	MaxSiTi = 1 << (MaxLevel + 1)
)

// Point is a vector in R3. Points produced by this package lie on the unit
// sphere unless documented otherwise.
type Point struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Normalize returns p scaled to unit length. The zero vector is returned
// unchanged.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return Point{p.X / n, p.Y / n, p.Z / n}
}

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

// R2Point is a point in face-local (s,t) or (u,v) space.
type R2Point struct {
	X, Y float64
}

// Rect is a closed axis-aligned rectangle in (s,t) or (u,v) space.
type Rect struct {
	Lo, Hi R2Point
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p R2Point) bool {
	return p.X >= r.Lo.X && p.X <= r.Hi.X && p.Y >= r.Lo.Y && p.Y <= r.Hi.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() R2Point {
	return R2Point{0.5 * (r.Lo.X + r.Hi.X), 0.5 * (r.Lo.Y + r.Hi.Y)}
}

// STtoUV converts an s or t value to the matching u or v value using the
// quadratic projection.
func STtoUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.) * (4*s*s - 1)
	}
	return (1 / 3.) * (1 - 4*(1-s)*(1-s))
}

// UVtoST is the inverse of STtoUV.
func UVtoST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// STtoIJ returns the leaf coordinate containing s, clamped to [0, MaxSize).
func STtoIJ(s float64) int {
	return clampInt(int(math.Floor(MaxSize*s)), 0, MaxSize-1)
}

// IJtoSTMin returns the s or t value of the low edge of leaf coordinate i.
func IJtoSTMin(i int) float64 {
	return float64(i) / MaxSize
}

// SiTitoST converts an (si,ti) coordinate to (s,t) space.
func SiTitoST(si uint32) float64 {
	return float64(si) / MaxSiTi
}

// FaceUVToXYZ turns face-local (u,v) coordinates into an unnormalized point.
func FaceUVToXYZ(face int, u, v float64) Point {
	switch face {
	case 0:
		return Point{1, u, v}
	case 1:
		return Point{-u, 1, v}
	case 2:
		return Point{-u, -v, 1}
	case 3:
		return Point{-1, -v, -u}
	case 4:
		return Point{v, -1, -u}
	default:
		return Point{v, u, -1}
	}
}

// Face returns the cube face whose axis has the largest component of p.
func Face(p Point) int {
	f := 0
	largest := math.Abs(p.X)
	if a := math.Abs(p.Y); a > largest {
		f, largest = 1, a
	}
	if math.Abs(p.Z) > largest {
		f = 2
	}
	var c float64
	switch f {
	case 0:
		c = p.X
	case 1:
		c = p.Y
	default:
		c = p.Z
	}
	if c < 0 {
		f += 3
	}
	return f
}

// validFaceXYZToUV projects p onto face. The caller guarantees that p lies
// in the hemisphere of that face.
func validFaceXYZToUV(face int, p Point) (float64, float64) {
	switch face {
	case 0:
		return p.Y / p.X, p.Z / p.X
	case 1:
		return -p.X / p.Y, p.Z / p.Y
	case 2:
		return -p.X / p.Z, -p.Y / p.Z
	case 3:
		return p.Z / p.X, p.Y / p.X
	case 4:
		return p.Z / p.Y, -p.X / p.Y
	default:
		return -p.Y / p.Z, -p.X / p.Z
	}
}

// XYZToFaceUV returns the face containing p together with its (u,v)
// coordinates on that face.
func XYZToFaceUV(p Point) (face int, u, v float64) {
	face = Face(p)
	u, v = validFaceXYZToUV(face, p)
	return face, u, v
}

// FaceXYZToUV projects p onto the given face. ok is false when p is not in
// the face's hemisphere, in which case (u,v) are meaningless.
func FaceXYZToUV(face int, p Point) (u, v float64, ok bool) {
	switch face {
	case 0:
		ok = p.X > 0
	case 1:
		ok = p.Y > 0
	case 2:
		ok = p.Z > 0
	case 3:
		ok = p.X < 0
	case 4:
		ok = p.Y < 0
	default:
		ok = p.Z < 0
	}
	if !ok {
		return 0, 0, false
	}
	u, v = validFaceXYZToUV(face, p)
	return u, v, true
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
