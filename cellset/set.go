package cellset

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/pathcell"
)

// Set is a set of cells. It is not safe for concurrent mutation.
type Set struct {
	rb *roaring64.Bitmap
}

// New returns a set holding the valid ids among ids.
func New(ids ...cellid.CellID) *Set {
	s := &Set{rb: roaring64.New()}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was absent. Invalid ids are
// ignored.
func (s *Set) Add(id cellid.CellID) bool {
	if !id.IsValid() {
		return false
	}
	return s.rb.CheckedAdd(uint64(id))
}

// AddPath inserts the canonical form of a path id.
func (s *Set) AddPath(id pathcell.CellID) bool {
	return s.Add(id.Canonical())
}

// Remove deletes id and reports whether it was present.
func (s *Set) Remove(id cellid.CellID) bool {
	return s.rb.CheckedRemove(uint64(id))
}

// Contains reports whether id itself is a member.
func (s *Set) Contains(id cellid.CellID) bool {
	return s.rb.Contains(uint64(id))
}

// ContainsPath reports whether the path id is a member.
func (s *Set) ContainsPath(id pathcell.CellID) bool {
	return s.Contains(id.Canonical())
}

// Covers reports whether id or one of its ancestors is a member.
func (s *Set) Covers(id cellid.CellID) bool {
	if !id.IsValid() {
		return false
	}
	for level := id.Level(); level >= 0; level-- {
		if s.Contains(id.ParentAt(level)) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union adds every member of other to s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect keeps only the members of s that are also in other.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Difference removes every member of other from s.
func (s *Set) Difference(other *Set) {
	s.rb.AndNot(other.rb)
}

// Clear removes all members.
func (s *Set) Clear() {
	s.rb.Clear()
}

// All iterates the members in Hilbert order.
func (s *Set) All() iter.Seq[cellid.CellID] {
	return func(yield func(cellid.CellID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(cellid.CellID(it.Next())) {
				return
			}
		}
	}
}

// Paths iterates the members as path ids in Hilbert order. Members deeper
// than pathcell.MaxLevel have no path form and are skipped.
func (s *Set) Paths() iter.Seq[pathcell.CellID] {
	return func(yield func(pathcell.CellID) bool) {
		for id := range s.All() {
			p := pathcell.FromCellID(id)
			if p == pathcell.None() {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Descendants iterates the members contained in c, c included, in Hilbert
// order.
func (s *Set) Descendants(c cellid.CellID) iter.Seq[cellid.CellID] {
	return func(yield func(cellid.CellID) bool) {
		if !c.IsValid() {
			return
		}
		hi := uint64(c.RangeMax())
		it := s.rb.Iterator()
		it.AdvanceIfNeeded(uint64(c.RangeMin()))
		for it.HasNext() {
			v := it.Next()
			if v > hi {
				return
			}
			if !yield(cellid.CellID(v)) {
				return
			}
		}
	}
}

// CountDescendants returns the number of members contained in c, c
// included.
func (s *Set) CountDescendants(c cellid.CellID) int {
	if !c.IsValid() {
		return 0
	}
	// RangeMin of a valid cell is at least 1.
	return int(s.rb.Rank(uint64(c.RangeMax())) - s.rb.Rank(uint64(c.RangeMin())-1))
}

// Optimize compresses runs of consecutive ids.
func (s *Set) Optimize() {
	s.rb.RunOptimize()
}

// SizeInBytes returns the in-memory size of the set.
func (s *Set) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// MarshalBinary encodes the set in the portable roaring format.
func (s *Set) MarshalBinary() ([]byte, error) {
	return s.rb.MarshalBinary()
}

// UnmarshalBinary replaces the contents of s. Bitmaps holding values that
// are not cells are rejected.
func (s *Set) UnmarshalBinary(data []byte) error {
	rb := roaring64.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%w: %w", cellid.ErrCorruptEncoding, err)
	}
	it := rb.Iterator()
	for it.HasNext() {
		if v := cellid.CellID(it.Next()); !v.IsValid() {
			return fmt.Errorf("%w: member %016x is not a cell", cellid.ErrCorruptEncoding, uint64(v))
		}
	}
	s.rb = rb
	return nil
}
