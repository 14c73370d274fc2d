// Package geocell provides hierarchical cell identifiers for the sphere.
//
// The sphere is projected onto the six faces of a cube and every face is
// subdivided recursively into four children, 30 levels deep. Cells are
// numbered along a Hilbert curve so that numeric order is spatial order and
// every cell's descendants form one contiguous range.
//
// Two encodings are provided:
//
//   - cellid.CellID packs face, path and level into 64 bits with a trailing
//     marker bit. Navigation (parent, child, next, range) is pure bit
//     arithmetic.
//   - pathcell.CellID stores the path as explicit digits plus a level field,
//     up to level 28. It converts to and from cellid and borrows its
//     Hilbert curve logic.
//
// # Quick Start
//
//	c := cellid.FromLatLng(coords.LatLngFromDegrees(40.7128, -74.0060)).ParentAt(12)
//	fmt.Println(c.ToToken(), c)           // order preserving token and debug form
//	p := pathcell.FromCellID(c)            // same cell, explicit digits
//	fmt.Println(p.Digits(), p.Canonical() == c)
//
// # Text Forms
//
// Tokens are the portable interchange format: hex with trailing zeros
// removed, "X" for None. Debug strings spell the path as "face/digits".
// Parse and Format convert between cells and the three text forms
// (token, debug, path), and a Converter does so in bulk.
//
// # Storage
//
// Package cellset keeps cells in a compressed roaring bitmap in Hilbert
// order. Package cellvec writes id lists as compact, optionally
// compressed, checksummed frames. Package codec offers both, plus JSON, under
// stable names.
//
// # Debug Builds
//
// Navigation on invalid ids returns None. Building with -tags geocelldebug
// turns such precondition violations into panics.
package geocell
