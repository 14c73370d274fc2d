package geocell

import (
	"fmt"
	"strings"

	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/pathcell"
)

// Format names a text form of a cell.
type Format int

const (
	// FormatToken is the order preserving hex token, e.g. "89c25".
	FormatToken Format = iota
	// FormatDebug is the canonical debug form, e.g. "4/0123".
	FormatDebug
	// FormatPath is the path form, e.g. "4" or "4/0123", limited to
	// pathcell.MaxLevel digits.
	FormatPath
)

func (f Format) String() string {
	switch f {
	case FormatToken:
		return "token"
	case FormatDebug:
		return "debug"
	case FormatPath:
		return "path"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "token":
		return FormatToken, nil
	case "debug":
		return FormatDebug, nil
	case "path":
		return FormatPath, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Parse reads a valid cell from s in form f.
func Parse(s string, f Format) (cellid.CellID, error) {
	var id cellid.CellID
	switch f {
	case FormatToken:
		id = cellid.FromToken(s)
	case FormatDebug:
		id = cellid.FromDebugString(s)
	case FormatPath:
		id = pathcell.FromString(s).Canonical()
	default:
		return cellid.None(), &ParseError{Input: s, Format: f, cause: ErrUnknownFormat}
	}
	if !id.IsValid() {
		return cellid.None(), &ParseError{Input: s, Format: f, cause: ErrInvalidCell}
	}
	return id, nil
}

// Detect parses s as a debug string when it contains a slash and as a
// token otherwise.
func Detect(s string) (cellid.CellID, Format, error) {
	f := FormatToken
	if strings.Contains(s, "/") {
		f = FormatDebug
	}
	id, err := Parse(s, f)
	return id, f, err
}

// FormatCell writes id in form f.
func FormatCell(id cellid.CellID, f Format) (string, error) {
	if !id.IsValid() {
		return "", &FormatError{Token: id.ToToken(), Format: f, cause: ErrInvalidCell}
	}
	switch f {
	case FormatToken:
		return id.ToToken(), nil
	case FormatDebug:
		return id.ToDebugString(), nil
	case FormatPath:
		p := pathcell.FromCellID(id)
		if !p.IsValid() {
			return "", &FormatError{Token: id.ToToken(), Format: f, cause: ErrNotRepresentable}
		}
		return p.String(), nil
	default:
		return "", &FormatError{Token: id.ToToken(), Format: f, cause: ErrUnknownFormat}
	}
}
