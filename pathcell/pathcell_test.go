package pathcell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geocell/cellid"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, 56, pathBits)
	assert.Equal(t, 61, faceShift)

	root := FromFace(0)
	assert.Equal(t, CellID(1), root, "face 0 root must differ from None")
	assert.True(t, root.IsValid())
	assert.False(t, None().IsValid())

	id := FromFaceDigits(2, []int{0, 1, 2, 3})
	assert.Equal(t, CellID(2<<61|0b00011011<<(61-8)|5), id)
	assert.Equal(t, 2, id.Face())
	assert.Equal(t, 4, id.Level())
	assert.Equal(t, uint64(0b00011011), id.Path())
	assert.Equal(t, []int{0, 1, 2, 3}, id.Digits())

	leaf := FromFaceDigits(5, []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3})
	assert.Equal(t, CellID(0xbfffffffffffffff-2), leaf)
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, uint64(1)<<56-1, leaf.Path())
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   CellID
		want bool
	}{
		{"none", 0, false},
		{"face 0", 1, true},
		{"face 5", 5<<61 | 1, true},
		{"face 6", 6<<61 | 1, false},
		{"level field 29", 29, true},
		{"level field 30", 30, false},
		{"level field 31", 31, false},
		{"stray digit below level", 1 | 1<<(61-4), false},
		{"digit at level", 2 | 1<<(61-2), true},
		{"stray bit above level field", 2 | 1<<5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.IsValid())
		})
	}
}

func TestFromFaceLevel(t *testing.T) {
	for face := 0; face < NumFaces; face++ {
		for level := 0; level <= MaxLevel; level++ {
			id := FromFaceLevel(face, level)
			require.True(t, id.IsValid(), "face %d level %d", face, level)
			assert.Equal(t, level, id.Level())
			assert.Equal(t, face, id.Face())
			assert.Equal(t, cellid.FromFacePosLevel(face, 0, level), id.Canonical())
		}
	}

	for _, args := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, MaxLevel + 1}, {3, cellid.MaxLevel}} {
		assert.Equal(t, None(), FromFaceLevel(args[0], args[1]), "%v", args)
	}
	assert.Equal(t, None(), FromFacePosLevel(0, 0, MaxLevel+1))
	assert.Equal(t, None(), FromFacePosLevel(7, 0, 1))
	assert.Equal(t, None(), FromFaceDigits(0, []int{0, 4}))
	assert.Equal(t, None(), FromFaceDigits(0, make([]int, MaxLevel+1)))
	assert.Equal(t, None(), FromFaceDigits(-1, nil))
}

func TestConversionSamples(t *testing.T) {
	tests := []string{"0/", "0/0", "1/3", "2/0123", "5/3333333333333333333333333333", "4/0000000000000000000000000001"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			c := cellid.FromDebugString(s)
			require.True(t, c.IsValid())

			id := FromCellID(c)
			require.True(t, id.IsValid())
			assert.Equal(t, c.Level(), id.Level())
			assert.Equal(t, c.Face(), id.Face())
			assert.Equal(t, c, id.Canonical())
			assert.Equal(t, s, id.ToDebugString())
		})
	}
}

func TestFromCellIDRejects(t *testing.T) {
	assert.Equal(t, None(), FromCellID(cellid.None()))
	assert.Equal(t, None(), FromCellID(cellid.Sentinel()))
	assert.Equal(t, None(), FromCellID(cellid.End(3)))
	assert.Equal(t, None(), FromCellID(cellid.FromFacePosLevel(1, 0, MaxLevel+1)))
	assert.Equal(t, None(), FromCellID(cellid.FromFacePosLevel(1, 0, cellid.MaxLevel)))
	assert.Equal(t, cellid.None(), None().Canonical())
	assert.Equal(t, cellid.None(), CellID(30).Canonical())
}

func TestNativeHierarchy(t *testing.T) {
	id := FromFaceDigits(3, []int{2, 0, 1})
	assert.Equal(t, FromFaceDigits(3, []int{2, 0}), id.Parent())
	assert.Equal(t, FromFaceDigits(3, []int{2}), id.ParentAt(1))
	assert.Equal(t, FromFace(3), id.ParentAt(0))
	assert.Equal(t, id, id.ParentAt(3))
	assert.Equal(t, FromFaceDigits(3, []int{2, 0, 1, 3}), id.Child(3))
	assert.Equal(t, FromFaceDigits(3, []int{2, 0, 1, 0}), id.ChildBegin())
	assert.Equal(t, FromFaceDigits(3, []int{2, 0, 1, 0, 0, 0}), id.ChildBeginAt(6))
	assert.Equal(t, id, id.ChildBeginAt(3))
	assert.Equal(t, 1, id.ChildPosition())
	assert.Equal(t, 2, id.ChildPositionAt(1))
	assert.Equal(t, 0, id.ChildPositionAt(2))
	assert.Equal(t, [4]CellID{id.Child(0), id.Child(1), id.Child(2), id.Child(3)}, id.Children())
	assert.True(t, FromFace(3).IsFace())
	assert.False(t, id.IsFace())
	assert.False(t, None().IsFace())
	assert.Equal(t, -1, None().Level())
}

func TestString(t *testing.T) {
	tests := []struct {
		id   CellID
		want string
	}{
		{FromFace(0), "0"},
		{FromFace(5), "5"},
		{FromFaceDigits(1, []int{3, 0, 2}), "1/302"},
		{None(), "INVALID"},
		{CellID(6<<61 | 1), "INVALID"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())
		})
	}
	assert.Equal(t, "0/", FromFace(0).ToDebugString())
}

func TestFromString(t *testing.T) {
	valid := map[string]CellID{
		"0":      FromFace(0),
		"4/":     FromFace(4),
		"1/302":  FromFaceDigits(1, []int{3, 0, 2}),
		"5/0000": FromFaceLevel(5, 4),
	}
	for s, want := range valid {
		assert.Equal(t, want, FromString(s), "%q", s)
	}

	deepest := "2/" + fmt.Sprintf("%028d", 0)
	assert.Equal(t, FromFaceLevel(2, MaxLevel), FromString(deepest))

	for _, s := range []string{"", "6", "9/0", "-1/0", "1/4", "1/0a", "1x", "1/0/1", " 1/0", deepest + "0"} {
		assert.Equal(t, None(), FromString(s), "%q", s)
	}
}
