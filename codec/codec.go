// Package codec centralizes the encodings used to persist lists of cell
// ids.
//
// The JSON codecs write ids as tokens through their text marshalers. The
// cellvec codec writes the compact checksummed binary frame. Persisted data
// should record the codec name so it can be reopened with ByName.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a codec cannot handle a value's type.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cellvec":
		return CellVec{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "cellvec"}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
