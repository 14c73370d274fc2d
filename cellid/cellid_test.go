package cellid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceCells(t *testing.T) {
	tokens := []string{"1", "3", "5", "7", "9", "b"}
	for face := 0; face < NumFaces; face++ {
		t.Run(fmt.Sprintf("face %d", face), func(t *testing.T) {
			ci := FromFace(face)
			require.True(t, ci.IsValid())
			assert.Equal(t, face, ci.Face())
			assert.Equal(t, 0, ci.Level())
			assert.True(t, ci.IsFace())
			assert.False(t, ci.IsLeaf())
			assert.Equal(t, uint64(1)<<60, ci.Lsb())
			assert.Equal(t, tokens[face], ci.ToToken())
			assert.Equal(t, ci, FromToken(tokens[face]))
		})
	}
}

func TestNoneAndSentinel(t *testing.T) {
	assert.False(t, None().IsValid())
	assert.False(t, None().IsFace())
	assert.False(t, Sentinel().IsValid())
	assert.Greater(t, Sentinel(), End(MaxLevel))
	assert.Greater(t, Sentinel(), FromFace(5).RangeMax())
	assert.Equal(t, "X", None().ToToken())
	assert.Equal(t, "ffffffffffffffff", Sentinel().ToToken())
}

func TestLevelFromMarker(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		ci := FromFacePosLevel(3, 0x12345678, level)
		require.True(t, ci.IsValid(), "level %d", level)
		assert.Equal(t, level, ci.Level())
		assert.Equal(t, 3, ci.Face())
		assert.Equal(t, LsbForLevel(level), ci.Lsb())
		assert.Equal(t, level == MaxLevel, ci.IsLeaf())
		assert.Equal(t, level == 0, ci.IsFace())
	}
}

func TestIsValidRejectsStrayBits(t *testing.T) {
	assert.False(t, CellID(0x2000000000000000).IsValid(), "marker on an odd bit")
	assert.False(t, CellID(0xd000000000000000).IsValid(), "face 6")
	assert.False(t, CellID(0xf000000000000000).IsValid(), "face 7")
	assert.True(t, CellID(0x0000000000000001).IsValid(), "first leaf")
	assert.False(t, CellID(0x0000000000000002).IsValid(), "odd marker")
}

func TestChildArithmetic(t *testing.T) {
	face := FromFace(0)
	assert.Equal(t, CellID(0x0400000000000000), face.Child(0))
	assert.Equal(t, CellID(0x0c00000000000000), face.Child(1))
	assert.Equal(t, CellID(0x1400000000000000), face.Child(2))
	assert.Equal(t, CellID(0x1c00000000000000), face.Child(3))
	assert.Equal(t, face.Child(0), face.ChildBegin())
	assert.Equal(t, face.Child(3).Next(), face.ChildEnd())
	assert.Equal(t, [4]CellID{face.Child(0), face.Child(1), face.Child(2), face.Child(3)}, face.Children())

	for k := 0; k < 4; k++ {
		c := face.Child(k)
		assert.Equal(t, face, c.Parent())
		assert.Equal(t, k, c.ChildPosition())
		assert.Equal(t, 1, c.Level())
	}
}

func TestParentAt(t *testing.T) {
	leaf := FromFacePosLevel(4, 0x0123456789abcdef, MaxLevel)
	require.True(t, leaf.IsLeaf())
	prev := leaf
	for level := MaxLevel - 1; level >= 0; level-- {
		p := leaf.ParentAt(level)
		assert.Equal(t, level, p.Level())
		assert.Equal(t, p, prev.Parent())
		assert.True(t, p.Contains(leaf))
		assert.Equal(t, leaf.ChildPositionAt(level+1), prev.ChildPosition())
		prev = p
	}
	assert.Equal(t, leaf, leaf.ParentAt(MaxLevel))
	assert.Equal(t, FromFace(4), leaf.ParentAt(0))
}

func TestRanges(t *testing.T) {
	face := FromFace(2)
	assert.Equal(t, CellID(0x4000000000000001), face.RangeMin())
	assert.Equal(t, CellID(0x5fffffffffffffff), face.RangeMax())

	ci := FromDebugString("2/0123")
	require.True(t, ci.IsValid())
	assert.Equal(t, ci.ChildBeginAt(MaxLevel), ci.RangeMin())
	assert.Equal(t, ci.ChildEndAt(MaxLevel).Prev(), ci.RangeMax())
	assert.True(t, face.Contains(ci))
	assert.False(t, ci.Contains(face))
	assert.True(t, face.Intersects(ci))
	assert.True(t, ci.Intersects(face))
	assert.False(t, ci.Intersects(ci.Next()))
	assert.True(t, ci.Contains(ci))
}

func TestScenarioChildBeginEnd(t *testing.T) {
	face := FromFace(0)
	begin := face.ChildBeginAt(3)
	end := face.ChildEndAt(3)

	assert.Less(t, begin, end)
	assert.Equal(t, 3, begin.Level())
	assert.Equal(t, 3, end.Level())

	// begin is the first level 3 descendant; end is the exclusive bound,
	// so its predecessor is the last one.
	assert.GreaterOrEqual(t, begin, face.RangeMin())
	assert.LessOrEqual(t, begin, face.RangeMax())
	assert.GreaterOrEqual(t, end.Prev(), face.RangeMin())
	assert.LessOrEqual(t, end.Prev(), face.RangeMax())
	assert.Greater(t, end, face.RangeMax())

	n := 0
	for c := begin; c != end; c = c.Next() {
		assert.True(t, face.Contains(c))
		n++
	}
	assert.Equal(t, 64, n)
}

func TestBeginEndDistance(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		assert.Equal(t, int64(0), Begin(level).DistanceFromBegin(), "level %d", level)
		assert.Equal(t, int64(6)<<uint(2*level), End(level).DistanceFromBegin(), "level %d", level)
		assert.Equal(t, End(level), End(level).Prev().Next())
		assert.True(t, End(level).Prev().IsValid())
		assert.False(t, End(level).IsValid())
	}
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, End(0), FromFace(0).Advance(7))
	assert.Equal(t, End(0), FromFace(0).Advance(6))
	assert.Equal(t, FromFace(5), FromFace(0).Advance(5))
	assert.Equal(t, Begin(0), FromFace(3).Advance(-10))
	assert.Equal(t, FromFace(1), FromFace(3).Advance(-2))

	ci := Begin(10)
	assert.Equal(t, ci.Next().Next().Next(), ci.Advance(3))
	assert.Equal(t, ci, ci.Advance(3).Advance(-3))
	assert.Equal(t, ci, ci.Advance(0))
	assert.Equal(t, End(10), ci.Advance(1<<40))
	assert.Equal(t, Begin(10), End(10).Advance(-(1 << 40)))
	assert.Equal(t, int64(6)<<20, ci.Advance(1<<40).DistanceFromBegin())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, FromFace(0), FromFace(5).NextWrap())
	assert.Equal(t, FromFace(5), FromFace(0).PrevWrap())
	assert.Equal(t, FromFace(0), FromFace(5).AdvanceWrap(1))
	assert.Equal(t, FromFace(5), FromFace(0).AdvanceWrap(-1))
	assert.Equal(t, FromFace(2), FromFace(5).AdvanceWrap(3))
	assert.Equal(t, FromFace(4), FromFace(1).AdvanceWrap(-3))
	assert.Equal(t, FromFace(1), FromFace(1).AdvanceWrap(6*1000))

	for _, level := range []int{1, 7, MaxLevel} {
		last := End(level).Prev()
		assert.Equal(t, Begin(level), last.NextWrap(), "level %d", level)
		assert.Equal(t, last, Begin(level).PrevWrap(), "level %d", level)
		assert.Equal(t, Begin(level).Advance(5), last.AdvanceWrap(6))
		assert.Equal(t, last.Advance(-5), Begin(level).AdvanceWrap(-6))
	}
}

func TestCommonAncestorLevel(t *testing.T) {
	a := FromDebugString("2/0123")
	b := FromDebugString("2/0130")
	assert.Equal(t, 2, a.CommonAncestorLevel(b))
	assert.Equal(t, 2, b.CommonAncestorLevel(a))
	assert.Equal(t, 4, a.CommonAncestorLevel(a))
	assert.Equal(t, 4, a.CommonAncestorLevel(a.RangeMin()))
	assert.Equal(t, 0, a.CommonAncestorLevel(FromFace(2)))
	assert.Equal(t, 0, FromDebugString("2/1").CommonAncestorLevel(FromDebugString("2/2")))
	assert.Equal(t, -1, FromFace(1).CommonAncestorLevel(FromFace(2)))
	assert.Equal(t, -1, a.CommonAncestorLevel(FromDebugString("3/0123")))
	assert.Equal(t, MaxLevel, a.RangeMax().CommonAncestorLevel(a.RangeMax()))
}

func TestMaximumTile(t *testing.T) {
	face := FromFace(0)
	// A limit past the whole face leaves the face cell untouched.
	assert.Equal(t, face, face.MaximumTile(FromFace(1)))
	// Shrinking stops at the first descendant that ends before limit.
	limit := face.Child(1)
	assert.Equal(t, face.Child(0), face.MaximumTile(limit.RangeMin()))
	// Growing from a leaf climbs while the range still starts at the leaf.
	leaf := face.ChildBeginAt(MaxLevel)
	assert.Equal(t, face.Child(0), leaf.MaximumTile(limit.RangeMin()))
	// A start at or past limit returns limit.
	assert.Equal(t, limit, face.Child(2).MaximumTile(limit))

	t.Run("EndBound", func(t *testing.T) {
		c := FromDebugString("5/3")
		assert.Equal(t, c, c.MaximumTile(End(1)))
		assert.Equal(t, c, c.MaximumTile(End(MaxLevel)))
		assert.Equal(t, FromFace(5), FromFace(5).MaximumTile(End(0)))
		assert.Equal(t, face, face.MaximumTile(End(4)))
	})
}

func TestSize(t *testing.T) {
	assert.Equal(t, MaxSize, SizeIJ(0))
	assert.Equal(t, 1, SizeIJ(MaxLevel))
	assert.Equal(t, 1.0, SizeST(0))
	assert.Equal(t, 0.5, FromFace(1).Child(2).SizeST())
	assert.Equal(t, 1<<20, FromFacePosLevel(1, 0, 10).SizeIJ())
}
