//go:build !geocelldebug

package pathcell

import (
	"testing"

	"github.com/hupe1980/geocell/coords"
	"github.com/stretchr/testify/assert"
)

func TestPreconditionsYieldNone(t *testing.T) {
	leaf := FromFaceLevel(1, MaxLevel)
	face := FromFace(1)

	assert.Equal(t, None(), leaf.Child(0))
	assert.Equal(t, None(), leaf.ChildBegin())
	assert.Equal(t, None(), leaf.ChildEnd())
	assert.Equal(t, None(), face.Parent())
	assert.Equal(t, None(), face.Child(4))
	assert.Equal(t, None(), face.Child(1).ParentAt(2))
	assert.Equal(t, None(), face.Child(1).ChildBeginAt(0))
	assert.Equal(t, None(), face.ChildBeginAt(MaxLevel+1))
	assert.Equal(t, None(), face.ChildEndAt(MaxLevel+1))
	assert.Equal(t, None(), None().Parent())
	assert.Equal(t, None(), None().Child(0))
	assert.Equal(t, -1, face.ChildPosition())
	assert.Equal(t, -1, leaf.ChildPositionAt(MaxLevel+1))
	assert.Empty(t, face.AppendAllNeighbors(MaxLevel+1, nil))
	assert.Empty(t, face.AppendVertexNeighbors(0, nil))
}

func TestRangeOpsOnNone(t *testing.T) {
	face := FromFace(4)
	none := None()
	bad := CellID(1<<59 | 1) // face root with a stray first digit

	for _, id := range []CellID{none, bad} {
		assert.Equal(t, None(), id.RangeMin())
		assert.Equal(t, None(), id.RangeMax())
		assert.False(t, id.Contains(face))
		assert.False(t, face.Contains(id))
		assert.False(t, id.Intersects(face))
		assert.Equal(t, -1, id.CommonAncestorLevel(FromFace(0)))
		assert.Equal(t, None(), id.MaximumTile(End(1)))
	}
	assert.Equal(t, None(), face.MaximumTile(bad))
}

func TestGeometryOnNone(t *testing.T) {
	none := None()

	assert.Equal(t, coords.Point{}, none.ToPoint())
	assert.Equal(t, coords.Point{}, none.ToPointRaw())
	assert.Equal(t, coords.LatLng{}, none.ToLatLng())
	assert.Equal(t, coords.R2Point{}, none.CenterST())
	assert.Equal(t, coords.R2Point{}, none.CenterUV())
	assert.Equal(t, coords.Rect{}, none.BoundST())
	assert.Equal(t, coords.Rect{}, none.BoundUV())

	face, i, j, orientation := none.FaceIJOrientation()
	assert.Equal(t, []int{-1, 0, 0, 0}, []int{face, i, j, orientation})

	f, si, ti := none.CenterSiTi()
	assert.Equal(t, -1, f)
	assert.Zero(t, si)
	assert.Zero(t, ti)
}
