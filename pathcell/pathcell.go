package pathcell

import (
	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/internal/debug"
)

// CellID is a cell id with an explicit digit path. The zero value is None.
type CellID uint64

const (
	// MaxLevel is the deepest level the digit field can hold.
	MaxLevel = 28

	// NumFaces is the number of cube faces.
	NumFaces = cellid.NumFaces

	levelBits = 5
	pathBits  = 64 - cellid.FaceBits - levelBits
	faceShift = pathBits + levelBits
	levelMask = 1<<levelBits - 1
)

// None returns the invalid id.
func None() CellID { return 0 }

// digitShift is the bit offset of the digit for level.
func digitShift(level int) uint { return uint(faceShift - 2*level) }

func pack(face, level int, path uint64) CellID {
	return CellID(uint64(face)<<faceShift | path | uint64(level+1))
}

// FromFaceDigits builds the cell reached from the root of face by taking
// the child positions in digits, root first. Faces out of range, digits
// outside 0..3 or more than MaxLevel digits yield None.
func FromFaceDigits(face int, digits []int) CellID {
	if face < 0 || face >= NumFaces || len(digits) > MaxLevel {
		return None()
	}
	var path uint64
	for k, d := range digits {
		if d < 0 || d > 3 {
			return None()
		}
		path |= uint64(d) << digitShift(k+1)
	}
	return pack(face, len(digits), path)
}

// FromFace returns the root cell of face, or None when face is out of
// range.
func FromFace(face int) CellID {
	return FromFaceLevel(face, 0)
}

// FromFaceLevel returns the first cell at level on face, the one whose
// digits are all zero.
func FromFaceLevel(face, level int) CellID {
	if face < 0 || face >= NumFaces || level < 0 || level > MaxLevel {
		return None()
	}
	return pack(face, level, 0)
}

// FromFacePosLevel returns the cell at level containing the canonical
// Hilbert position pos on face.
func FromFacePosLevel(face int, pos uint64, level int) CellID {
	if face < 0 || face >= NumFaces || level < 0 || level > MaxLevel {
		return None()
	}
	return FromCellID(cellid.FromFacePosLevel(face, pos, level))
}

// Begin returns the first cell at level in Hilbert order.
func Begin(level int) CellID { return FromFaceLevel(0, level) }

// End returns the bound past the last cell at level. The canonical bound
// lies past face 5 and has no path form, so End is None for every level;
// Next on the last cell returns None as well, which keeps
//
//	for c := Begin(l); c != End(l); c = c.Next()
//
// working.
func End(level int) CellID { return None() }

// Face returns the cube face of id.
func (id CellID) Face() int { return int(uint64(id) >> faceShift) }

// Level returns the subdivision level of id. None reports -1.
func (id CellID) Level() int { return int(uint64(id)&levelMask) - 1 }

// Path returns the digits of id as one integer, the last digit in the low
// two bits.
func (id CellID) Path() uint64 {
	level := id.Level()
	if level <= 0 {
		return 0
	}
	return uint64(id) >> digitShift(level) & (1<<uint(2*level) - 1)
}

// Digits returns the child positions from the face root down to id.
func (id CellID) Digits() []int {
	level := id.Level()
	if level <= 0 {
		return nil
	}
	d := make([]int, level)
	for k := range d {
		d[k] = id.digit(k + 1)
	}
	return d
}

func (id CellID) digit(level int) int {
	return int(uint64(id)>>digitShift(level)) & 3
}

// IsValid reports whether id has a face and level in range and no stray
// bits between its last digit and the level field.
func (id CellID) IsValid() bool {
	if id.Face() >= NumFaces {
		return false
	}
	level := id.Level()
	if level < 0 || level > MaxLevel {
		return false
	}
	stray := (uint64(1)<<digitShift(level) - 1) &^ levelMask
	return uint64(id)&stray == 0
}

// IsLeaf reports whether id is at MaxLevel.
func (id CellID) IsLeaf() bool { return id.Level() == MaxLevel }

// IsFace reports whether id is a face root.
func (id CellID) IsFace() bool { return id.Level() == 0 }

// SizeIJ returns the edge length of id in canonical leaf units.
func (id CellID) SizeIJ() int { return cellid.SizeIJ(id.Level()) }

// SizeST returns the edge length of id in (s,t) space.
func (id CellID) SizeST() float64 { return cellid.SizeST(id.Level()) }

// ChildPosition returns the last digit of id. Face roots and invalid ids
// return -1.
func (id CellID) ChildPosition() int {
	return id.ChildPositionAt(id.Level())
}

// ChildPositionAt returns the digit of id at level, which must be in
// [1, id.Level()].
func (id CellID) ChildPositionAt(level int) int {
	if !id.IsValid() || level < 1 || level > id.Level() {
		debug.Assert(false, "child position at level %d of %#016x", level, uint64(id))
		return -1
	}
	return id.digit(level)
}

// Parent returns the immediate parent of id. Face roots yield None.
func (id CellID) Parent() CellID {
	if !id.IsValid() || id.IsFace() {
		debug.Assert(false, "parent of %#016x", uint64(id))
		return None()
	}
	return id.ParentAt(id.Level() - 1)
}

// ParentAt returns the ancestor of id at level, which must be in
// [0, id.Level()].
func (id CellID) ParentAt(level int) CellID {
	if !id.IsValid() || level < 0 || level > id.Level() {
		debug.Assert(false, "parent at level %d of %#016x", level, uint64(id))
		return None()
	}
	keep := ^(uint64(1)<<digitShift(level) - 1)
	return CellID(uint64(id)&keep | uint64(level+1))
}

// Child returns the child of id at position 0..3. Leaves yield None.
func (id CellID) Child(position int) CellID {
	if !id.IsValid() || id.IsLeaf() || position < 0 || position > 3 {
		debug.Assert(false, "child %d of %#016x", position, uint64(id))
		return None()
	}
	level := id.Level() + 1
	return CellID(uint64(id)&^levelMask | uint64(position)<<digitShift(level) | uint64(level+1))
}

// Children returns the four children of id in Hilbert order.
func (id CellID) Children() [4]CellID {
	var ch [4]CellID
	for k := range ch {
		ch[k] = id.Child(k)
	}
	return ch
}

// ChildBegin returns the first child of id.
func (id CellID) ChildBegin() CellID { return id.Child(0) }

// ChildBeginAt returns the first descendant of id at level, which must be
// in [id.Level(), MaxLevel]. Its remaining digits are all zero.
func (id CellID) ChildBeginAt(level int) CellID {
	if !id.IsValid() || level < id.Level() || level > MaxLevel {
		debug.Assert(false, "child begin at level %d of %#016x", level, uint64(id))
		return None()
	}
	return CellID(uint64(id)&^levelMask | uint64(level+1))
}

// FromCellID converts a canonical id by walking its ancestors and recording
// each child position. Invalid ids and ids deeper than MaxLevel yield
// None.
func FromCellID(c cellid.CellID) CellID {
	if !c.IsValid() {
		return None()
	}
	level := c.Level()
	if level > MaxLevel {
		return None()
	}
	face := c.Face()
	var path uint64
	x := c
	for l := level; l > 0; l-- {
		d := x.ChildPosition()
		if d < 0 || d > 3 {
			return None()
		}
		path |= uint64(d) << digitShift(l)
		x = x.Parent()
	}
	if !x.IsFace() || x.Face() != face {
		return None()
	}
	return pack(face, level, path)
}

// Canonical converts id by replaying its digits as children of the
// canonical face root. Invalid ids yield cellid.None().
func (id CellID) Canonical() cellid.CellID {
	if !id.IsValid() {
		return cellid.None()
	}
	c := cellid.FromFace(id.Face())
	for l := 1; l <= id.Level(); l++ {
		c = c.Child(id.digit(l))
		if !c.IsValid() {
			return cellid.None()
		}
	}
	return c
}

// clamp converts a canonical result, replacing it by its MaxLevel ancestor
// when it is deeper than this layout can hold.
func clamp(c cellid.CellID) CellID {
	if c.IsValid() && c.Level() > MaxLevel {
		c = c.ParentAt(MaxLevel)
	}
	return FromCellID(c)
}
