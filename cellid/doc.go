/*
Package cellid implements the canonical 64-bit cell identifier.

# Layout

The sphere is projected onto six cube faces and every face is subdivided as a
quadtree down to MaxLevel. A cell is named by one uint64:

	bits 63..61   face (0..5)
	bits 60..1    Hilbert curve position, two bits per level, root first
	lowest set    marker bit, at position 2*(MaxLevel-level)

Everything below the marker is zero. A leaf cell has the marker in bit 0, a
face cell in bit 60. Because the marker sits in the middle of the range of
its descendants, numeric order of ids equals face-major Hilbert order and the
leaf descendants of a cell c are exactly the ids in [c.RangeMin(), c.RangeMax()].

# Navigation

Parent, Child, Next, Prev, RangeMin and friends are a handful of adds, masks
and shifts on the marker bit. The low level API places a burden of knowledge
on the caller: navigating from an invalid id, asking a leaf for a child or a
face for a parent returns None in release builds and panics when built with
-tags geocelldebug. Functions that accept external input (FromToken,
FromDebugString, DecodeBinary) never panic; they report None or an error.

# Text and binary forms

	id.ToToken()         "89c25"          order preserving, "X" for None
	id.String()          "4/0010132"      face and child positions
	id.AppendBinary(b)   [len][msb bytes] coarser cells are shorter

All values are immutable and safe for concurrent use.
*/
package cellid
