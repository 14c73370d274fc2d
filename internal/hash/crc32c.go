package hash

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
)

// Size is the length of an encoded checksum.
const Size = 4

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a streaming CRC32-Castagnoli hash.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// AppendCRC32C appends the checksum of body to body.
func AppendCRC32C(body []byte) []byte {
	return binary.LittleEndian.AppendUint32(body, CRC32C(body))
}

// SplitCRC32C verifies the trailing checksum of frame and returns the bytes
// before it. ok is false when frame is too short or the checksum differs.
func SplitCRC32C(frame []byte) (body []byte, ok bool) {
	if len(frame) < Size {
		return nil, false
	}
	body = frame[:len(frame)-Size]
	want := binary.LittleEndian.Uint32(frame[len(body):])
	return body, CRC32C(body) == want
}
