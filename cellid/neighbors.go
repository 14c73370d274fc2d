package cellid

import "github.com/hupe1980/geocell/internal/debug"

// EdgeNeighbors returns the four cells at ci's level sharing an edge with
// ci, in the order bottom, right, top, left in face-local (i,j) terms.
// Neighbors across a face boundary are found by reprojecting onto the
// adjacent face.
func (ci CellID) EdgeNeighbors() [4]CellID {
	if !ci.IsValid() {
		debug.Assert(false, "edge neighbors of %#016x", uint64(ci))
		return [4]CellID{}
	}
	level := ci.Level()
	size := SizeIJ(level)
	face, i, j, _ := ci.FaceIJOrientation()
	return [4]CellID{
		fromFaceIJWrap(face, i, j-size).ParentAt(level),
		fromFaceIJWrap(face, i+size, j).ParentAt(level),
		fromFaceIJWrap(face, i, j+size).ParentAt(level),
		fromFaceIJWrap(face, i-size, j).ParentAt(level),
	}
}

// AppendVertexNeighbors appends to dst the cells at level that touch the
// vertex of ci closest to ci's center, and returns the extended slice. ci
// itself is reported through its ancestor at level. Three cells are appended
// at cube corners, four elsewhere. level must be below ci.Level().
func (ci CellID) AppendVertexNeighbors(level int, dst []CellID) []CellID {
	if !ci.IsValid() || level < 0 || level >= ci.Level() {
		debug.Assert(false, "vertex neighbors at level %d of %#016x", level, uint64(ci))
		return dst
	}
	halfSize := SizeIJ(level + 1)
	size := halfSize << 1
	face, i, j, _ := ci.FaceIJOrientation()

	// The vertex lies on the side of the level cell given by the halfSize
	// bit of the leaf coordinates.
	var isame, jsame bool
	var ioffset, joffset int
	if i&halfSize != 0 {
		ioffset = size
		isame = i+size < MaxSize
	} else {
		ioffset = -size
		isame = i-size >= 0
	}
	if j&halfSize != 0 {
		joffset = size
		jsame = j+size < MaxSize
	} else {
		joffset = -size
		jsame = j-size >= 0
	}

	dst = append(dst,
		ci.ParentAt(level),
		fromFaceIJSame(face, i+ioffset, j, isame).ParentAt(level),
		fromFaceIJSame(face, i, j+joffset, jsame).ParentAt(level),
	)
	if isame || jsame {
		dst = append(dst, fromFaceIJSame(face, i+ioffset, j+joffset, isame && jsame).ParentAt(level))
	}
	return dst
}

// AppendAllNeighbors appends to dst every cell at level that touches ci by
// an edge or a vertex and returns the extended slice. level must be at least
// ci.Level(). Cells touching a cube corner may be reported twice.
func (ci CellID) AppendAllNeighbors(level int, dst []CellID) []CellID {
	if !ci.IsValid() || level < ci.Level() || level > MaxLevel {
		debug.Assert(false, "all neighbors at level %d of %#016x", level, uint64(ci))
		return dst
	}
	face, i, j, _ := ci.FaceIJOrientation()

	// Normalize (i,j) to the lower left leaf of ci since level may be
	// deeper than ci.
	size := ci.SizeIJ()
	i &= -size
	j &= -size

	nbrSize := SizeIJ(level)

	// Bottom, top, left, right and diagonal neighbors in one sweep. The
	// exit test sits at the end of the loop to avoid overflow.
	for k := -nbrSize; ; k += nbrSize {
		var sameFace bool
		switch {
		case k < 0:
			sameFace = j+k >= 0
		case k >= size:
			sameFace = j+k < MaxSize
		default:
			sameFace = true
			dst = append(dst,
				fromFaceIJSame(face, i+k, j-nbrSize, j-size >= 0).ParentAt(level),
				fromFaceIJSame(face, i+k, j+size, j+size < MaxSize).ParentAt(level),
			)
		}
		dst = append(dst,
			fromFaceIJSame(face, i-nbrSize, j+k, sameFace && i-size >= 0).ParentAt(level),
			fromFaceIJSame(face, i+size, j+k, sameFace && i+size < MaxSize).ParentAt(level),
		)
		if k >= size {
			break
		}
	}
	return dst
}
