package cellid

import (
	"fmt"
	"strconv"
	"strings"
)

// noneToken is the token of None. It sorts apart from every hex token.
const noneToken = "X"

// ToToken returns the shortest lowercase hex string that identifies ci:
// the 16 digit hex form with trailing zeros removed. Tokens of valid ids
// sort lexicographically in the same order as the ids.
func (ci CellID) ToToken() string {
	if ci == 0 {
		return noneToken
	}
	s := strconv.FormatUint(uint64(ci), 16)
	// Left pad to 16 digits, then strip what the marker left behind.
	s = strings.Repeat("0", 16-len(s)) + s
	return strings.TrimRight(s, "0")
}

// FromToken parses a token produced by ToToken. Malformed tokens, including
// the empty string, yield None.
func FromToken(token string) CellID {
	if len(token) == 0 || len(token) > 16 {
		return None()
	}
	n, err := strconv.ParseUint(token, 16, 64)
	if err != nil {
		return None()
	}
	// Equivalent to right padding with zeros to 16 digits.
	return CellID(n << (4 * uint(16-len(token))))
}

// String returns the debug form "face/positions", e.g. "3/0231" for the cell
// reached from face 3 through children 0, 2, 3 and 1. Face cells print as
// "3/".
func (ci CellID) String() string {
	if !ci.IsValid() {
		return fmt.Sprintf("Invalid: %016x", uint64(ci))
	}
	level := ci.Level()
	var b strings.Builder
	b.Grow(2 + level)
	b.WriteByte(byte('0' + ci.Face()))
	b.WriteByte('/')
	for l := 1; l <= level; l++ {
		b.WriteByte(byte('0' + ci.ChildPositionAt(l)))
	}
	return b.String()
}

// ToDebugString is an alias of String.
func (ci CellID) ToDebugString() string { return ci.String() }

// FromDebugString parses the debug form produced by String. A bare face
// digit without a slash also names the face cell. Anything else yields None.
func FromDebugString(s string) CellID {
	face, path, ok := splitDebugString(s)
	if !ok || len(path) > MaxLevel {
		return None()
	}
	ci := FromFace(face)
	for k := 0; k < len(path); k++ {
		d := path[k]
		if d < '0' || d > '3' {
			return None()
		}
		ci = ci.Child(int(d - '0'))
	}
	return ci
}

// splitDebugString separates "f", "f/" or "f/digits" into face and digits.
func splitDebugString(s string) (face int, path string, ok bool) {
	if len(s) == 0 || s[0] < '0' || s[0] > '5' {
		return 0, "", false
	}
	face = int(s[0] - '0')
	switch {
	case len(s) == 1:
		return face, "", true
	case s[1] != '/':
		return 0, "", false
	default:
		return face, s[2:], true
	}
}

// MarshalText encodes ci as its token.
func (ci CellID) MarshalText() ([]byte, error) {
	return []byte(ci.ToToken()), nil
}

// UnmarshalText decodes a token. Unlike FromToken it reports malformed input
// and tokens of structurally invalid ids as errors; the None token "X" and
// the Sentinel token decode without error.
func (ci *CellID) UnmarshalText(text []byte) error {
	s := string(text)
	if s == noneToken {
		*ci = None()
		return nil
	}
	id := FromToken(s)
	if !id.IsValid() && id != Sentinel() {
		return &ParseError{Input: s, cause: ErrInvalidToken}
	}
	*ci = id
	return nil
}
