package cellid

import (
	"cmp"
	"math/bits"

	"github.com/hupe1980/geocell/coords"
	"github.com/hupe1980/geocell/internal/debug"
)

// CellID uniquely identifies a cell in the face-major Hilbert hierarchy.
// The zero value is None.
type CellID uint64

const (
	// FaceBits is the number of high bits holding the face.
	FaceBits = 3

	// NumFaces is the number of cube faces.
	NumFaces = 6

	// MaxLevel is the level of leaf cells.
	MaxLevel = coords.MaxLevel

	// PosBits is the number of bits holding the Hilbert position and marker.
	PosBits = 2*MaxLevel + 1

	// MaxSize is the number of leaf cells along a face edge.
	MaxSize = coords.MaxSize

	// wrapOffset is the distance covering all six faces at every level.
	wrapOffset = uint64(NumFaces) << PosBits

	// markerMask has a one at every even bit position a marker may occupy.
	markerMask = 0x1555555555555555
)

// None returns the invalid cell id.
func None() CellID { return 0 }

// Sentinel returns an id greater than every valid id, useful as a terminal
// key in ordered containers.
func Sentinel() CellID { return CellID(^uint64(0)) }

// FromFace returns the level 0 cell of face. Faces outside [0,6) yield None.
func FromFace(face int) CellID {
	if face < 0 || face >= NumFaces {
		debug.Assert(false, "face %d out of range", face)
		return None()
	}
	return CellID(uint64(face)<<PosBits + LsbForLevel(0))
}

// FromFacePosLevel returns the cell at level containing the leaf with
// Hilbert position pos on face. pos is interpreted modulo 2^PosBits.
func FromFacePosLevel(face int, pos uint64, level int) CellID {
	if face < 0 || face >= NumFaces || level < 0 || level > MaxLevel {
		debug.Assert(false, "face %d level %d out of range", face, level)
		return None()
	}
	ci := CellID(uint64(face)<<PosBits + (pos|1)&(1<<PosBits-1))
	return ci.ParentAt(level)
}

// Begin returns the first cell, in Hilbert order, at level.
func Begin(level int) CellID { return FromFace(0).ChildBeginAt(level) }

// End returns the exclusive bound past the last cell at level. It is not a
// valid cell.
func End(level int) CellID { return FromFace(NumFaces - 1).ChildEndAt(level) }

// LsbForLevel returns the marker bit of cells at level.
func LsbForLevel(level int) uint64 { return 1 << uint(2*(MaxLevel-level)) }

// SizeIJ returns the edge length of cells at level in leaf units.
func SizeIJ(level int) int { return 1 << uint(MaxLevel-level) }

// SizeST returns the edge length of cells at level in (s,t) space.
func SizeST(level int) float64 { return coords.IJtoSTMin(SizeIJ(level)) }

// Compare orders ids numerically, which is Hilbert order.
func Compare(a, b CellID) int { return cmp.Compare(a, b) }

// Face returns the cube face of ci.
func (ci CellID) Face() int { return int(uint64(ci) >> PosBits) }

// Pos returns the Hilbert position and marker bits without the face.
func (ci CellID) Pos() uint64 { return uint64(ci) & (^uint64(0) >> FaceBits) }

// Lsb returns the marker bit of ci.
func (ci CellID) Lsb() uint64 { return uint64(ci) & -uint64(ci) }

// Level returns the subdivision level of ci, or -1 for None.
func (ci CellID) Level() int {
	if ci == 0 {
		debug.Assert(false, "level of None")
		return -1
	}
	return MaxLevel - bits.TrailingZeros64(uint64(ci))>>1
}

// IsValid reports whether ci has a face in range and a well formed marker.
func (ci CellID) IsValid() bool {
	return ci.Face() < NumFaces && ci.Lsb()&markerMask != 0
}

// IsLeaf reports whether ci is at MaxLevel.
func (ci CellID) IsLeaf() bool { return uint64(ci)&1 != 0 }

// IsFace reports whether ci is a level 0 cell.
func (ci CellID) IsFace() bool {
	return ci != 0 && uint64(ci)&(LsbForLevel(0)-1) == 0
}

// SizeIJ returns the edge length of ci in leaf units.
func (ci CellID) SizeIJ() int { return SizeIJ(ci.Level()) }

// SizeST returns the edge length of ci in (s,t) space.
func (ci CellID) SizeST() float64 { return SizeST(ci.Level()) }

// ChildPosition returns which child of its parent ci is, in 0..3. Face cells
// and invalid ids return -1.
func (ci CellID) ChildPosition() int {
	if !ci.IsValid() {
		debug.Assert(false, "child position of invalid cell %#016x", uint64(ci))
		return -1
	}
	return ci.ChildPositionAt(ci.Level())
}

// ChildPositionAt returns the child position of the level ancestor of ci
// within its own parent. level must be in [1, ci.Level()].
func (ci CellID) ChildPositionAt(level int) int {
	if !ci.IsValid() || level < 1 || level > ci.Level() {
		debug.Assert(false, "child position at level %d of %#016x", level, uint64(ci))
		return -1
	}
	return int(uint64(ci)>>uint(2*(MaxLevel-level)+1)) & 3
}

// Parent returns the immediate parent of ci. Face cells yield None.
func (ci CellID) Parent() CellID {
	if !ci.IsValid() || ci.IsFace() {
		debug.Assert(false, "parent of %#016x", uint64(ci))
		return None()
	}
	lsb := ci.Lsb() << 2
	return CellID(uint64(ci)&-lsb | lsb)
}

// ParentAt returns the ancestor of ci at level, which must be in
// [0, ci.Level()].
func (ci CellID) ParentAt(level int) CellID {
	if !ci.IsValid() || level < 0 || level > ci.Level() {
		debug.Assert(false, "parent at level %d of %#016x", level, uint64(ci))
		return None()
	}
	lsb := LsbForLevel(level)
	return CellID(uint64(ci)&-lsb | lsb)
}

// Child returns the child of ci at position 0..3. Leaves yield None.
func (ci CellID) Child(position int) CellID {
	if !ci.IsValid() || ci.IsLeaf() || position < 0 || position > 3 {
		debug.Assert(false, "child %d of %#016x", position, uint64(ci))
		return None()
	}
	lsb := ci.Lsb() >> 2
	return CellID(uint64(ci) + uint64(2*position-3)*lsb)
}

// Children returns the four children of ci in Hilbert order.
func (ci CellID) Children() [4]CellID {
	var ch [4]CellID
	for k := range ch {
		ch[k] = ci.Child(k)
	}
	return ch
}

// ChildBegin returns the first child of ci.
func (ci CellID) ChildBegin() CellID {
	if !ci.IsValid() || ci.IsLeaf() {
		debug.Assert(false, "child begin of %#016x", uint64(ci))
		return None()
	}
	lsb := ci.Lsb()
	return CellID(uint64(ci) - lsb + lsb>>2)
}

// ChildBeginAt returns the first descendant of ci at level, which must be in
// [ci.Level(), MaxLevel].
func (ci CellID) ChildBeginAt(level int) CellID {
	if !ci.IsValid() || level < ci.Level() || level > MaxLevel {
		debug.Assert(false, "child begin at level %d of %#016x", level, uint64(ci))
		return None()
	}
	return CellID(uint64(ci) - ci.Lsb() + LsbForLevel(level))
}

// ChildEnd returns the exclusive bound past the last child of ci. The result
// is an iteration bound and need not be a valid cell.
func (ci CellID) ChildEnd() CellID {
	if !ci.IsValid() || ci.IsLeaf() {
		debug.Assert(false, "child end of %#016x", uint64(ci))
		return None()
	}
	lsb := ci.Lsb()
	return CellID(uint64(ci) + lsb + lsb>>2)
}

// ChildEndAt returns the exclusive bound past the last descendant of ci at
// level, which must be in [ci.Level(), MaxLevel].
func (ci CellID) ChildEndAt(level int) CellID {
	if !ci.IsValid() || level < ci.Level() || level > MaxLevel {
		debug.Assert(false, "child end at level %d of %#016x", level, uint64(ci))
		return None()
	}
	return CellID(uint64(ci) + ci.Lsb() + LsbForLevel(level))
}

// Next returns the following cell at the same level. It does not wrap from
// the last face to the first, so the successor of the last cell is End.
func (ci CellID) Next() CellID { return CellID(uint64(ci) + ci.Lsb()<<1) }

// Prev returns the preceding cell at the same level without wrapping.
func (ci CellID) Prev() CellID { return CellID(uint64(ci) - ci.Lsb()<<1) }

// NextWrap is like Next but the last cell at a level is followed by the
// first.
func (ci CellID) NextWrap() CellID {
	if !ci.IsValid() {
		debug.Assert(false, "next wrap of %#016x", uint64(ci))
		return None()
	}
	n := ci.Next()
	if uint64(n) < wrapOffset {
		return n
	}
	return CellID(uint64(n) - wrapOffset)
}

// PrevWrap is like Prev but the first cell at a level is preceded by the
// last.
func (ci CellID) PrevWrap() CellID {
	if !ci.IsValid() {
		debug.Assert(false, "prev wrap of %#016x", uint64(ci))
		return None()
	}
	p := ci.Prev()
	if uint64(p) < wrapOffset {
		return p
	}
	return CellID(uint64(p) + wrapOffset)
}

// Advance moves ci by steps cells at its level. The result is clamped to
// [Begin(level), End(level)] instead of spilling into another level.
func (ci CellID) Advance(steps int64) CellID {
	if steps == 0 || ci == 0 {
		return ci
	}
	// minSteps and maxSteps always fit in an int64.
	shift := uint(2*(MaxLevel-ci.Level()) + 1)
	if steps < 0 {
		if minSteps := -int64(uint64(ci) >> shift); steps < minSteps {
			steps = minSteps
		}
	} else {
		if maxSteps := int64((wrapOffset + ci.Lsb() - uint64(ci)) >> shift); steps > maxSteps {
			steps = maxSteps
		}
	}
	return CellID(uint64(ci) + uint64(steps)<<shift)
}

// AdvanceWrap moves ci by steps cells at its level, wrapping around the
// sphere in either direction.
func (ci CellID) AdvanceWrap(steps int64) CellID {
	if !ci.IsValid() {
		debug.Assert(false, "advance wrap of %#016x", uint64(ci))
		return None()
	}
	if steps == 0 {
		return ci
	}
	shift := uint(2*(MaxLevel-ci.Level()) + 1)
	if steps < 0 {
		if minSteps := -int64(uint64(ci) >> shift); steps < minSteps {
			wrap := int64(wrapOffset >> shift)
			steps %= wrap
			if steps < minSteps {
				steps += wrap
			}
		}
	} else {
		// Unlike Advance, End(level) is never a valid answer here.
		if maxSteps := int64((wrapOffset - uint64(ci)) >> shift); steps > maxSteps {
			wrap := int64(wrapOffset >> shift)
			steps %= wrap
			if steps > maxSteps {
				steps -= wrap
			}
		}
	}
	return CellID(uint64(ci) + uint64(steps)<<shift)
}

// DistanceFromBegin returns the number of cells at ci's level that precede
// ci in Hilbert order.
func (ci CellID) DistanceFromBegin() int64 {
	if ci == 0 {
		return 0
	}
	return int64(uint64(ci) >> uint(2*(MaxLevel-ci.Level())+1))
}

// RangeMin returns the first leaf descendant of ci.
func (ci CellID) RangeMin() CellID {
	if !ci.IsValid() {
		debug.Assert(false, "range min of %#016x", uint64(ci))
		return None()
	}
	return ci.rangeMin()
}

// RangeMax returns the last leaf descendant of ci.
func (ci CellID) RangeMax() CellID {
	if !ci.IsValid() {
		debug.Assert(false, "range max of %#016x", uint64(ci))
		return None()
	}
	return ci.rangeMax()
}

// rangeMin and rangeMax skip validation so that End bounds, which lie on
// face 6, can take part in range comparisons.
func (ci CellID) rangeMin() CellID { return CellID(uint64(ci) - (ci.Lsb() - 1)) }

func (ci CellID) rangeMax() CellID { return CellID(uint64(ci) + (ci.Lsb() - 1)) }

// Contains reports whether other is ci or one of its descendants. It is
// false when either id is invalid.
func (ci CellID) Contains(other CellID) bool {
	if !ci.IsValid() || !other.IsValid() {
		debug.Assert(false, "contains on %#016x, %#016x", uint64(ci), uint64(other))
		return false
	}
	return other >= ci.rangeMin() && other <= ci.rangeMax()
}

// Intersects reports whether ci and other share a leaf. It is false when
// either id is invalid.
func (ci CellID) Intersects(other CellID) bool {
	if !ci.IsValid() || !other.IsValid() {
		debug.Assert(false, "intersects on %#016x, %#016x", uint64(ci), uint64(other))
		return false
	}
	return other.rangeMin() <= ci.rangeMax() && other.rangeMax() >= ci.rangeMin()
}

// CommonAncestorLevel returns the level of the deepest cell containing both
// ci and other, or -1 when they lie on different faces or either is invalid.
func (ci CellID) CommonAncestorLevel(other CellID) int {
	if !ci.IsValid() || !other.IsValid() {
		debug.Assert(false, "common ancestor of %#016x, %#016x", uint64(ci), uint64(other))
		return -1
	}
	// The highest differing bit bounds the shared prefix. The markers of
	// both cells bound it as well.
	b := uint64(ci ^ other)
	if lsb := ci.Lsb(); b < lsb {
		b = lsb
	}
	if lsb := other.Lsb(); b < lsb {
		b = lsb
	}
	msb := 63 - bits.LeadingZeros64(b)
	if msb > PosBits-1 {
		return -1
	}
	return (PosBits - 1 - msb) >> 1
}

// MaximumTile returns the largest cell with the same RangeMin as ci whose
// RangeMax is below limit. If ci.RangeMin() >= limit.RangeMin() the result is
// limit itself. limit is a valid cell or an End bound.
func (ci CellID) MaximumTile(limit CellID) CellID {
	if !ci.IsValid() || limit == 0 {
		debug.Assert(false, "maximum tile of %#016x below %#016x", uint64(ci), uint64(limit))
		return None()
	}
	start := ci.rangeMin()
	if start >= limit.rangeMin() {
		return limit
	}
	if ci.rangeMax() >= limit {
		// Too large: shrink. Terminates by the leaf level because
		// start < limit.RangeMin().
		for {
			ci = ci.ChildBegin()
			if ci.rangeMax() < limit {
				return ci
			}
		}
	}
	for !ci.IsFace() {
		parent := ci.Parent()
		if parent.rangeMin() != start || parent.rangeMax() >= limit {
			break
		}
		ci = parent
	}
	return ci
}
