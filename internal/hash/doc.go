// Package hash provides the CRC32-Castagnoli checksum that closes every
// cellvec frame.
//
// One-shot use:
//
//	sum := hash.CRC32C(data)
//
// Framing helpers append the checksum little endian and split it off again:
//
//	frame := hash.AppendCRC32C(body)
//	body, ok := hash.SplitCRC32C(frame)
package hash
