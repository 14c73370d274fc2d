package pathcell

import (
	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/coords"
	"github.com/hupe1980/geocell/internal/debug"
)

// FromCanonical converts c like FromCellID but replaces cells deeper than
// MaxLevel with their MaxLevel ancestor.
func FromCanonical(c cellid.CellID) CellID { return clamp(c) }

// FromFaceIJ returns the MaxLevel cell containing the canonical leaf (i,j)
// on face.
func FromFaceIJ(face, i, j int) CellID {
	if face < 0 || face >= NumFaces {
		return None()
	}
	return clamp(cellid.FromFaceIJ(face, i, j))
}

// FromPoint returns the MaxLevel cell containing p.
func FromPoint(p coords.Point) CellID { return clamp(cellid.FromPoint(p)) }

// FromLatLng returns the MaxLevel cell containing ll.
func FromLatLng(ll coords.LatLng) CellID { return clamp(cellid.FromLatLng(ll)) }

// ChildEnd returns the bound past the last child of id. The bound past the
// last cell of face 5 is None.
func (id CellID) ChildEnd() CellID {
	if !id.IsValid() || id.IsLeaf() {
		debug.Assert(false, "child end of %#016x", uint64(id))
		return None()
	}
	return clamp(id.Canonical().ChildEnd())
}

// ChildEndAt returns the bound past the last descendant of id at level,
// which must be in [id.Level(), MaxLevel].
func (id CellID) ChildEndAt(level int) CellID {
	if !id.IsValid() || level < id.Level() || level > MaxLevel {
		debug.Assert(false, "child end at level %d of %#016x", level, uint64(id))
		return None()
	}
	return clamp(id.Canonical().ChildEndAt(level))
}

// Next returns the following cell at the same level, or None after the
// last one.
func (id CellID) Next() CellID { return clamp(id.Canonical().Next()) }

// Prev returns the preceding cell at the same level, or None before the
// first one.
func (id CellID) Prev() CellID { return clamp(id.Canonical().Prev()) }

// NextWrap is like Next but wraps from the last cell to the first.
func (id CellID) NextWrap() CellID { return clamp(id.Canonical().NextWrap()) }

// PrevWrap is like Prev but wraps from the first cell to the last.
func (id CellID) PrevWrap() CellID { return clamp(id.Canonical().PrevWrap()) }

// Advance moves id by steps cells at its level. Moving before the first
// cell stops there; moving past the last cell yields None.
func (id CellID) Advance(steps int64) CellID {
	return clamp(id.Canonical().Advance(steps))
}

// AdvanceWrap moves id by steps cells at its level, wrapping around the
// sphere.
func (id CellID) AdvanceWrap(steps int64) CellID {
	return clamp(id.Canonical().AdvanceWrap(steps))
}

// DistanceFromBegin returns the number of cells at id's level that precede
// id in Hilbert order.
func (id CellID) DistanceFromBegin() int64 {
	return id.Canonical().DistanceFromBegin()
}

// RangeMin returns the first MaxLevel descendant of id.
func (id CellID) RangeMin() CellID { return clamp(id.Canonical().RangeMin()) }

// RangeMax returns the last MaxLevel descendant of id.
func (id CellID) RangeMax() CellID { return clamp(id.Canonical().RangeMax()) }

// Contains reports whether other is id or one of its descendants.
func (id CellID) Contains(other CellID) bool {
	return id.Canonical().Contains(other.Canonical())
}

// Intersects reports whether id and other overlap.
func (id CellID) Intersects(other CellID) bool {
	return id.Canonical().Intersects(other.Canonical())
}

// CommonAncestorLevel returns the level of the deepest cell containing
// both ids, or -1 when they lie on different faces.
func (id CellID) CommonAncestorLevel(other CellID) int {
	return id.Canonical().CommonAncestorLevel(other.Canonical())
}

// MaximumTile returns the largest cell with the same RangeMin as id that
// ends before limit. A None limit, which is what End returns, stands for
// the end of the last face.
func (id CellID) MaximumTile(limit CellID) CellID {
	bound := cellid.End(cellid.MaxLevel)
	if limit != None() {
		bound = limit.Canonical()
		if !bound.IsValid() {
			debug.Assert(false, "maximum tile below %#016x", uint64(limit))
			return None()
		}
	}
	return clamp(id.Canonical().MaximumTile(bound))
}

// EdgeNeighbors returns the four cells at id's level sharing an edge with
// id: bottom, right, top, left.
func (id CellID) EdgeNeighbors() [4]CellID {
	var out [4]CellID
	for k, c := range id.Canonical().EdgeNeighbors() {
		out[k] = clamp(c)
	}
	return out
}

// AppendVertexNeighbors appends the cells at level touching the vertex of
// id nearest its center. level must be below id.Level().
func (id CellID) AppendVertexNeighbors(level int, dst []CellID) []CellID {
	var buf [4]cellid.CellID
	for _, c := range id.Canonical().AppendVertexNeighbors(level, buf[:0]) {
		dst = append(dst, clamp(c))
	}
	return dst
}

// AppendAllNeighbors appends every cell at level touching id by an edge
// or a vertex. level must be in [id.Level(), MaxLevel].
func (id CellID) AppendAllNeighbors(level int, dst []CellID) []CellID {
	if level > MaxLevel {
		debug.Assert(false, "all neighbors at level %d of %#016x", level, uint64(id))
		return dst
	}
	for _, c := range id.Canonical().AppendAllNeighbors(level, nil) {
		dst = append(dst, clamp(c))
	}
	return dst
}

// ToPoint returns the center of id on the unit sphere, or the zero Point
// for invalid ids.
func (id CellID) ToPoint() coords.Point {
	if !id.IsValid() {
		return coords.Point{}
	}
	return id.Canonical().ToPoint()
}

// ToPointRaw returns the unnormalized center of id, or the zero Point for
// invalid ids.
func (id CellID) ToPointRaw() coords.Point {
	if !id.IsValid() {
		return coords.Point{}
	}
	return id.Canonical().ToPointRaw()
}

// ToLatLng returns the center of id as a geographic coordinate, or the
// zero LatLng for invalid ids.
func (id CellID) ToLatLng() coords.LatLng {
	if !id.IsValid() {
		return coords.LatLng{}
	}
	return id.Canonical().ToLatLng()
}

// FaceIJOrientation returns the face, the coordinates of a leaf inside id
// and the Hilbert curve orientation of id. Invalid ids report face -1.
func (id CellID) FaceIJOrientation() (face, i, j, orientation int) {
	if !id.IsValid() {
		return -1, 0, 0, 0
	}
	return id.Canonical().FaceIJOrientation()
}

// CenterSiTi returns the face of id and the (si,ti) coordinates of its
// center. Invalid ids report face -1.
func (id CellID) CenterSiTi() (face int, si, ti uint32) {
	if !id.IsValid() {
		return -1, 0, 0
	}
	return id.Canonical().CenterSiTi()
}

// CenterST returns the center of id in (s,t) space.
func (id CellID) CenterST() coords.R2Point {
	if !id.IsValid() {
		return coords.R2Point{}
	}
	return id.Canonical().CenterST()
}

// CenterUV returns the center of id in (u,v) space.
func (id CellID) CenterUV() coords.R2Point {
	if !id.IsValid() {
		return coords.R2Point{}
	}
	return id.Canonical().CenterUV()
}

// BoundST returns the extent of id in (s,t) space.
func (id CellID) BoundST() coords.Rect {
	if !id.IsValid() {
		return coords.Rect{}
	}
	return id.Canonical().BoundST()
}

// BoundUV returns the extent of id in (u,v) space. Invalid ids yield the
// zero Rect.
func (id CellID) BoundUV() coords.Rect {
	if !id.IsValid() {
		return coords.Rect{}
	}
	return id.Canonical().BoundUV()
}
