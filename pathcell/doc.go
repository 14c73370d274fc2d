// Package pathcell implements a cell id that stores the subdivision path as
// explicit digits instead of a trailing marker bit.
//
// The 64 bits are laid out most significant first as
//
//	face (3) | digits (56) | level+1 (5)
//
// where the digit field holds one 2-bit child position per level, root
// first and left aligned, with unused digits zero. Storing level+1 keeps
// every valid id non-zero, so 0 is always None, including for the face 0
// root. The layout caps the depth at MaxLevel (28), two levels short of
// cellid.MaxLevel.
//
// Reading the face, level or any digit is O(1). Everything that depends on
// the Hilbert curve (ordering, stepping, ranges, neighbors, geometry,
// tokens) converts to the canonical cellid.CellID, asks it, and converts
// back. Results deeper than MaxLevel are replaced by their MaxLevel
// ancestor. Raw integer order of path ids is not Hilbert order; use
// Compare, Less and Sort.
//
// Factories taking an explicit face or level reject out of range
// arguments by returning None. FromString rejects paths deeper than
// MaxLevel.
package pathcell
