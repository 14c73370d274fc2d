package codec

import (
	"fmt"

	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/cellset"
	"github.com/hupe1980/geocell/cellvec"
	"github.com/hupe1980/geocell/pathcell"
)

// CellVec encodes id lists as cellvec frames. It handles []cellid.CellID,
// []pathcell.CellID and *cellset.Set, and decodes into pointers to the
// same types. Sets are written in Hilbert order.
type CellVec struct {
	// Compression is applied to the frame payload.
	Compression cellvec.Compression
}

// Marshal encodes v as a frame.
func (c CellVec) Marshal(v any) ([]byte, error) {
	opt := cellvec.WithCompression(c.Compression)
	switch x := v.(type) {
	case []cellid.CellID:
		return cellvec.Encode(x, opt)
	case []pathcell.CellID:
		return cellvec.EncodePaths(x, opt)
	case *cellset.Set:
		ids := make([]cellid.CellID, 0, x.Len())
		for id := range x.All() {
			ids = append(ids, id)
		}
		return cellvec.Encode(ids, opt)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Unmarshal decodes a frame into v.
func (CellVec) Unmarshal(data []byte, v any) error {
	switch x := v.(type) {
	case *[]cellid.CellID:
		ids, err := cellvec.Decode(data)
		if err != nil {
			return err
		}
		*x = ids
	case *[]pathcell.CellID:
		ids, err := cellvec.DecodePaths(data)
		if err != nil {
			return err
		}
		*x = ids
	case *cellset.Set:
		ids, err := cellvec.Decode(data)
		if err != nil {
			return err
		}
		*x = *cellset.New(ids...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}

// Name returns the unique name of the codec ("cellvec").
func (CellVec) Name() string { return "cellvec" }
