package pathcell

import (
	"fmt"
	"strings"

	"github.com/hupe1980/geocell/cellid"
)

const invalidString = "INVALID"

// String returns "f" for face roots, "f/d1d2..." for deeper cells and
// "INVALID" for invalid ids.
func (id CellID) String() string {
	if !id.IsValid() {
		return invalidString
	}
	level := id.Level()
	var b strings.Builder
	b.Grow(2 + level)
	b.WriteByte(byte('0' + id.Face()))
	if level == 0 {
		return b.String()
	}
	b.WriteByte('/')
	for l := 1; l <= level; l++ {
		b.WriteByte(byte('0' + id.digit(l)))
	}
	return b.String()
}

// FromString parses "f", "f/" or "f/d1d2...". Faces outside [0,6), digits
// outside 0..3 and paths deeper than MaxLevel yield None.
func FromString(s string) CellID {
	if len(s) == 0 || s[0] < '0' || s[0] > '5' {
		return None()
	}
	face := int(s[0] - '0')
	if len(s) == 1 {
		return FromFace(face)
	}
	if s[1] != '/' {
		return None()
	}
	digits := s[2:]
	if len(digits) > MaxLevel {
		return None()
	}
	var path uint64
	for k := 0; k < len(digits); k++ {
		d := digits[k]
		if d < '0' || d > '3' {
			return None()
		}
		path |= uint64(d-'0') << digitShift(k+1)
	}
	return pack(face, len(digits), path)
}

// ToToken returns the token of the equivalent canonical id. None maps to
// "X".
func (id CellID) ToToken() string { return id.Canonical().ToToken() }

// FromToken parses a canonical token. Tokens of cells deeper than MaxLevel
// give their MaxLevel ancestor; malformed tokens give None.
func FromToken(token string) CellID { return clamp(cellid.FromToken(token)) }

// ToDebugString returns the canonical debug form, which always carries the
// slash.
func (id CellID) ToDebugString() string { return id.Canonical().ToDebugString() }

// FromDebugString parses the canonical debug form. Unlike FromString it
// accepts up to cellid.MaxLevel digits and keeps the first MaxLevel.
func FromDebugString(s string) CellID { return clamp(cellid.FromDebugString(s)) }

// MarshalText encodes id as its token.
func (id CellID) MarshalText() ([]byte, error) {
	return []byte(id.ToToken()), nil
}

// UnmarshalText decodes a token. The canonical Sentinel has no path form
// and is rejected.
func (id *CellID) UnmarshalText(text []byte) error {
	var c cellid.CellID
	if err := c.UnmarshalText(text); err != nil {
		return err
	}
	if c == cellid.Sentinel() {
		return fmt.Errorf("%w: %q has no path form", cellid.ErrInvalidToken, text)
	}
	*id = clamp(c)
	return nil
}

// EncodedLen returns the size of the binary form of id.
func (id CellID) EncodedLen() int { return id.Canonical().EncodedLen() }

// AppendBinary appends the canonical binary form of id to dst.
func (id CellID) AppendBinary(dst []byte) ([]byte, error) {
	return id.Canonical().AppendBinary(dst)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id CellID) MarshalBinary() ([]byte, error) {
	return id.Canonical().MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *CellID) UnmarshalBinary(data []byte) error {
	var c cellid.CellID
	if err := c.UnmarshalBinary(data); err != nil {
		return err
	}
	got, err := fromDecoded(c)
	if err != nil {
		return err
	}
	*id = got
	return nil
}

// DecodeBinary decodes one id from the front of data and reports the
// number of bytes consumed.
func DecodeBinary(data []byte) (CellID, int, error) {
	c, n, err := cellid.DecodeBinary(data)
	if err != nil {
		return None(), 0, err
	}
	id, err := fromDecoded(c)
	if err != nil {
		return None(), 0, err
	}
	return id, n, nil
}

func fromDecoded(c cellid.CellID) (CellID, error) {
	if c == cellid.Sentinel() {
		return None(), fmt.Errorf("%w: sentinel has no path form", cellid.ErrCorruptEncoding)
	}
	return clamp(c), nil
}
