package cellid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// MaxEncodedLen is the longest binary encoding of a cell id.
const MaxEncodedLen = 9

// EncodedLen returns the number of bytes AppendBinary writes for ci.
func (ci CellID) EncodedLen() int {
	return 1 + significantBytes(ci)
}

// significantBytes is the number of leading bytes of ci that are not
// trailing zeros. The marker bit bounds it by level.
func significantBytes(ci CellID) int {
	if ci == 0 {
		return 0
	}
	return 8 - bits.TrailingZeros64(uint64(ci))/8
}

// AppendBinary appends the binary form of ci to dst: one length byte n in
// [0,8] followed by the n most significant bytes of ci, big endian. Face
// cells take two bytes, leaves nine.
func (ci CellID) AppendBinary(dst []byte) ([]byte, error) {
	n := significantBytes(ci)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(ci))
	dst = append(dst, byte(n))
	return append(dst, buf[:n]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ci CellID) MarshalBinary() ([]byte, error) {
	return ci.AppendBinary(make([]byte, 0, ci.EncodedLen()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one encoded id.
func (ci *CellID) UnmarshalBinary(data []byte) error {
	id, n, err := DecodeBinary(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptEncoding, len(data)-n)
	}
	*ci = id
	return nil
}

// DecodeBinary decodes one id from the front of data and returns it with the
// number of bytes consumed. Corrupt input yields ErrCorruptEncoding.
func DecodeBinary(data []byte) (CellID, int, error) {
	if len(data) == 0 {
		return None(), 0, fmt.Errorf("%w: empty input", ErrCorruptEncoding)
	}
	n := int(data[0])
	if n > 8 {
		return None(), 0, fmt.Errorf("%w: length byte %d", ErrCorruptEncoding, n)
	}
	if len(data) < 1+n {
		return None(), 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCorruptEncoding, 1+n, len(data))
	}
	var buf [8]byte
	copy(buf[:], data[1:1+n])
	id, err := checkDecoded(CellID(binary.BigEndian.Uint64(buf[:])), n)
	if err != nil {
		return None(), 0, err
	}
	return id, 1 + n, nil
}

// EncodeTo writes the binary form of ci to w.
func (ci CellID) EncodeTo(w io.Writer) error {
	var buf [MaxEncodedLen]byte
	b, _ := ci.AppendBinary(buf[:0])
	_, err := w.Write(b)
	return err
}

// Decode reads one binary encoded id from r.
func Decode(r io.Reader) (CellID, error) {
	var buf [MaxEncodedLen]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return None(), fmt.Errorf("%w: %w", ErrCorruptEncoding, err)
	}
	n := int(buf[0])
	if n > 8 {
		return None(), fmt.Errorf("%w: length byte %d", ErrCorruptEncoding, n)
	}
	if _, err := io.ReadFull(r, buf[1:1+n]); err != nil {
		return None(), fmt.Errorf("%w: %w", ErrCorruptEncoding, err)
	}
	id, _, err := DecodeBinary(buf[:1+n])
	return id, err
}

// checkDecoded rejects non-minimal encodings and values that are neither a
// valid id, None nor the Sentinel.
func checkDecoded(id CellID, n int) (CellID, error) {
	if significantBytes(id) != n {
		return None(), fmt.Errorf("%w: non-minimal length %d", ErrCorruptEncoding, n)
	}
	if id != 0 && id != Sentinel() && !id.IsValid() {
		return None(), fmt.Errorf("%w: %016x is not a cell", ErrCorruptEncoding, uint64(id))
	}
	return id, nil
}
