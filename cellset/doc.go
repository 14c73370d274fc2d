// Package cellset provides a compressed set of cell ids kept in Hilbert
// order.
//
// Members are stored as canonical ids in a 64-bit roaring bitmap, so
// iteration follows the curve and every descendant of a cell occupies one
// contiguous key range. Path ids are converted on the way in and out.
package cellset
