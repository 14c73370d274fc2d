// Package cellvec encodes lists of cell ids into a self-checking frame.
//
// A frame is laid out as
//
//	"GCV1" | compression (1) | count (uvarint) | raw length (uvarint) |
//	stored length (uvarint) | payload | CRC32C (4, little endian)
//
// The raw payload is the concatenation of the ids' binary forms (see
// cellid.CellID.AppendBinary), so coarse cells cost only a few bytes. It may
// be compressed with LZ4 or Zstandard; when compression saves too little the
// payload is stored as is and the compression byte says so. The checksum
// covers every byte before it.
package cellvec
