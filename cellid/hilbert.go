package cellid

import (
	"math"

	"github.com/hupe1980/geocell/coords"
	"github.com/hupe1980/geocell/internal/debug"
)

// The Hilbert curve is evaluated lookupBits levels at a time through two
// tables indexed by [ij or pos][orientation]. Orientation has two bits: the
// swap bit exchanges i and j, the invert bit complements both.
const (
	lookupBits = 4
	swapMask   = 0x01
	invertMask = 0x02
)

var (
	// ijToPos[orientation][ij] is the curve position of subcell ij.
	ijToPos = [4][4]int{
		{0, 1, 3, 2}, // canonical order
		{0, 3, 1, 2}, // axes swapped
		{2, 3, 1, 0}, // bits inverted
		{2, 1, 3, 0}, // swapped & inverted
	}

	// posToIJ[orientation][pos] is the inverse of ijToPos.
	posToIJ = [4][4]int{
		{0, 1, 3, 2}, // canonical order:    (0,0), (0,1), (1,1), (1,0)
		{0, 2, 3, 1}, // axes swapped:       (0,0), (1,0), (1,1), (0,1)
		{3, 2, 0, 1}, // bits inverted:      (1,1), (1,0), (0,0), (0,1)
		{3, 1, 0, 2}, // swapped & inverted: (1,1), (0,1), (0,0), (1,0)
	}

	// posToOrientation[pos] is the orientation change entering subcell pos.
	posToOrientation = [4]int{swapMask, 0, 0, invertMask | swapMask}

	lookupPos [1 << (2*lookupBits + 2)]int
	lookupIJ  [1 << (2*lookupBits + 2)]int
)

func init() {
	initLookupCell(0, 0, 0, 0, 0, 0)
	initLookupCell(0, 0, 0, swapMask, 0, swapMask)
	initLookupCell(0, 0, 0, invertMask, 0, invertMask)
	initLookupCell(0, 0, 0, swapMask|invertMask, 0, swapMask|invertMask)
}

func initLookupCell(level, i, j, origOrientation, pos, orientation int) {
	if level == lookupBits {
		ij := i<<lookupBits + j
		lookupPos[ij<<2+origOrientation] = pos<<2 + orientation
		lookupIJ[pos<<2+origOrientation] = ij<<2 + orientation
		return
	}
	level++
	i <<= 1
	j <<= 1
	pos <<= 2
	r := posToIJ[orientation]
	for k := 0; k < 4; k++ {
		initLookupCell(level, i+r[k]>>1, j+r[k]&1, origOrientation, pos+k, orientation^posToOrientation[k])
	}
}

// FromFaceIJ returns the leaf cell at leaf coordinates (i,j) on face.
func FromFaceIJ(face, i, j int) CellID {
	// Fill in the curve position eight lookupBits chunks at a time,
	// carrying the orientation between chunks.
	n := uint64(face) << (PosBits - 1)
	b := face & swapMask
	const mask = 1<<lookupBits - 1
	for k := 7; k >= 0; k-- {
		b += (i >> uint(k*lookupBits)) & mask << (lookupBits + 2)
		b += (j >> uint(k*lookupBits)) & mask << 2
		b = lookupPos[b]
		n |= uint64(b>>2) << uint(k*2*lookupBits)
		b &= swapMask | invertMask
	}
	return CellID(n*2 + 1)
}

// FaceIJOrientation returns the face, the leaf coordinates of a leaf cell
// inside ci and the Hilbert curve orientation of ci.
func (ci CellID) FaceIJOrientation() (face, i, j, orientation int) {
	debug.Assert(ci.IsValid(), "face ij of %#016x", uint64(ci))
	face = ci.Face()
	b := face & swapMask
	nbits := MaxLevel - 7*lookupBits
	for k := 7; k >= 0; k-- {
		b += int(uint64(ci)>>uint(k*2*lookupBits+1)) & (1<<uint(2*nbits) - 1) << 2
		b = lookupIJ[b]
		i += b >> (lookupBits + 2) << uint(k*lookupBits)
		j += (b >> 2) & (1<<lookupBits - 1) << uint(k*lookupBits)
		b &= swapMask | invertMask
		nbits = lookupBits
	}
	// Cells whose marker sits at an odd level end one swap short.
	if ci.Lsb()&0x1111111111111110 != 0 {
		b ^= swapMask
	}
	return face, i, j, b
}

// fromFaceIJWrap returns the leaf cell containing (i,j) after projecting
// coordinates that fall just outside face onto the adjacent face.
func fromFaceIJWrap(face, i, j int) CellID {
	// Keep the coordinates one leaf past the edge so face cells cannot
	// overflow.
	i = clamp(i, -1, MaxSize)
	j = clamp(j, -1, MaxSize)

	// Go through (x,y,z) using the linear projection and clamp (u,v) to
	// barely outside the face so reprojection lands in the right leaf.
	const scale = 1.0 / MaxSize
	limit := math.Nextafter(1, 2)
	u := math.Max(-limit, math.Min(limit, scale*float64(i<<1+1-MaxSize)))
	v := math.Max(-limit, math.Min(limit, scale*float64(j<<1+1-MaxSize)))

	face, u, v = coords.XYZToFaceUV(coords.FaceUVToXYZ(face, u, v))
	return FromFaceIJ(face, coords.STtoIJ(0.5*(u+1)), coords.STtoIJ(0.5*(v+1)))
}

func fromFaceIJSame(face, i, j int, sameFace bool) CellID {
	if sameFace {
		return FromFaceIJ(face, i, j)
	}
	return fromFaceIJWrap(face, i, j)
}

// FromPoint returns the leaf cell containing p. p need not be unit length.
func FromPoint(p coords.Point) CellID {
	face, u, v := coords.XYZToFaceUV(p)
	return FromFaceIJ(face, coords.STtoIJ(coords.UVtoST(u)), coords.STtoIJ(coords.UVtoST(v)))
}

// FromLatLng returns the leaf cell containing ll.
func FromLatLng(ll coords.LatLng) CellID {
	return FromPoint(coords.PointFromLatLng(ll))
}

// CenterSiTi returns the face of ci and the (si,ti) coordinates of its
// center.
func (ci CellID) CenterSiTi() (face int, si, ti uint32) {
	face, i, j, _ := ci.FaceIJOrientation()
	// The leaf found by FaceIJOrientation is adjacent to the center; the
	// bit above the marker tells on which side.
	delta := 0
	if ci.IsLeaf() {
		delta = 1
	} else if (i^int(uint64(ci)>>2))&1 != 0 {
		delta = 2
	}
	return face, uint32(2*i + delta), uint32(2*j + delta)
}

// ToPointRaw returns the unnormalized center of ci.
func (ci CellID) ToPointRaw() coords.Point {
	face, si, ti := ci.CenterSiTi()
	return coords.FaceUVToXYZ(face, coords.STtoUV(coords.SiTitoST(si)), coords.STtoUV(coords.SiTitoST(ti)))
}

// ToPoint returns the center of ci on the unit sphere.
func (ci CellID) ToPoint() coords.Point { return ci.ToPointRaw().Normalize() }

// ToLatLng returns the center of ci as a geographic coordinate.
func (ci CellID) ToLatLng() coords.LatLng { return coords.LatLngFromPoint(ci.ToPointRaw()) }

// CenterST returns the center of ci in (s,t) space.
func (ci CellID) CenterST() coords.R2Point {
	_, si, ti := ci.CenterSiTi()
	return coords.R2Point{X: coords.SiTitoST(si), Y: coords.SiTitoST(ti)}
}

// CenterUV returns the center of ci in (u,v) space.
func (ci CellID) CenterUV() coords.R2Point {
	st := ci.CenterST()
	return coords.R2Point{X: coords.STtoUV(st.X), Y: coords.STtoUV(st.Y)}
}

// BoundST returns the extent of ci in (s,t) space.
func (ci CellID) BoundST() coords.Rect {
	_, i, j, _ := ci.FaceIJOrientation()
	size := ci.SizeIJ()
	iLo, jLo := i&-size, j&-size
	return coords.Rect{
		Lo: coords.R2Point{X: coords.IJtoSTMin(iLo), Y: coords.IJtoSTMin(jLo)},
		Hi: coords.R2Point{X: coords.IJtoSTMin(iLo + size), Y: coords.IJtoSTMin(jLo + size)},
	}
}

// BoundUV returns the extent of ci in (u,v) space.
func (ci CellID) BoundUV() coords.Rect {
	st := ci.BoundST()
	return coords.Rect{
		Lo: coords.R2Point{X: coords.STtoUV(st.Lo.X), Y: coords.STtoUV(st.Lo.Y)},
		Hi: coords.R2Point{X: coords.STtoUV(st.Hi.X), Y: coords.STtoUV(st.Hi.Y)},
	}
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
