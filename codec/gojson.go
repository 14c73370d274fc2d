package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json. Its output is
// interchangeable with JSON.
//
// The zero value writes compact output and ignores unknown object keys.
type GoJSON struct {
	// Indent, when set, pretty-prints output with this per-level indent.
	Indent string
	// Strict rejects object keys that do not map to a struct field.
	Strict bool
}

func (g GoJSON) Marshal(v any) ([]byte, error) {
	if g.Indent != "" {
		return gojson.MarshalIndent(v, "", g.Indent)
	}
	return gojson.Marshal(v)
}

func (g GoJSON) Unmarshal(data []byte, v any) error {
	if !g.Strict {
		return gojson.Unmarshal(data, v)
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes v and appends it to dst.
func (g GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := g.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
