package cellvec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/internal/conv"
	"github.com/hupe1980/geocell/internal/hash"
	"github.com/hupe1980/geocell/pathcell"
)

const magic = "GCV1"

// Encode packs ids into a frame. Ids are stored in the given order and may
// include None.
func Encode(ids []cellid.CellID, optFns ...Option) ([]byte, error) {
	opts := applyOptions(optFns)

	raw := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		var err error
		if raw, err = id.AppendBinary(raw); err != nil {
			return nil, err
		}
	}

	stored, used, err := compress(raw, opts.Compression, opts.MinSavings)
	if err != nil {
		return nil, err
	}

	count, err := conv.IntToUint64(len(ids))
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(magic)+1+3*binary.MaxVarintLen64+len(stored)+hash.Size)
	frame = append(frame, magic...)
	frame = append(frame, byte(used))
	frame = binary.AppendUvarint(frame, count)
	frame = binary.AppendUvarint(frame, uint64(len(raw)))
	frame = binary.AppendUvarint(frame, uint64(len(stored)))
	frame = append(frame, stored...)
	return hash.AppendCRC32C(frame), nil
}

// Decode unpacks a frame produced by Encode. Only MaxCount from the options
// applies.
func Decode(data []byte, optFns ...Option) ([]cellid.CellID, error) {
	opts := applyOptions(optFns)

	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	body, ok := hash.SplitCRC32C(data)
	if !ok {
		return nil, ErrChecksum
	}

	r := body[len(magic):]
	if len(r) < 1 {
		return nil, ErrTruncated
	}
	c := Compression(r[0])
	r = r[1:]

	count, r, err := readLen(r, opts.MaxCount, ErrTooLarge)
	if err != nil {
		return nil, err
	}
	rawLen, r, err := readLen(r, count*cellid.MaxEncodedLen, ErrTruncated)
	if err != nil {
		return nil, err
	}
	storedLen, r, err := readLen(r, len(r), ErrTruncated)
	if err != nil {
		return nil, err
	}
	if storedLen != len(r) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(r)-storedLen)
	}

	raw, err := decompress(r, c, rawLen)
	if err != nil {
		return nil, err
	}

	ids := make([]cellid.CellID, 0, count)
	for len(raw) > 0 {
		id, n, err := cellid.DecodeBinary(raw)
		if err != nil {
			return nil, fmt.Errorf("cellvec: id %d: %w", len(ids), err)
		}
		ids = append(ids, id)
		raw = raw[n:]
	}
	if len(ids) != count {
		return nil, fmt.Errorf("%w: declared %d ids, found %d", ErrTruncated, count, len(ids))
	}
	return ids, nil
}

// readLen reads one uvarint length no greater than limit.
func readLen(r []byte, limit int, tooLarge error) (int, []byte, error) {
	v, n := binary.Uvarint(r)
	if n <= 0 {
		return 0, nil, ErrTruncated
	}
	l, err := conv.BoundedInt(v, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", tooLarge, err)
	}
	return l, r[n:], nil
}

// EncodePaths packs path ids through their canonical form.
func EncodePaths(ids []pathcell.CellID, optFns ...Option) ([]byte, error) {
	canonical := make([]cellid.CellID, len(ids))
	for k, id := range ids {
		canonical[k] = id.Canonical()
	}
	return Encode(canonical, optFns...)
}

// DecodePaths unpacks a frame into path ids. Cells deeper than
// pathcell.MaxLevel become their MaxLevel ancestor.
func DecodePaths(data []byte, optFns ...Option) ([]pathcell.CellID, error) {
	canonical, err := Decode(data, optFns...)
	if err != nil {
		return nil, err
	}
	ids := make([]pathcell.CellID, len(canonical))
	for k, c := range canonical {
		if c == cellid.Sentinel() {
			return nil, fmt.Errorf("cellvec: id %d: %w: sentinel has no path form", k, cellid.ErrCorruptEncoding)
		}
		ids[k] = pathcell.FromCanonical(c)
	}
	return ids, nil
}

// Write encodes ids and writes the frame to w.
func Write(w io.Writer, ids []cellid.CellID, optFns ...Option) (int64, error) {
	frame, err := Encode(ids, optFns...)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, bytes.NewReader(frame))
}

// Read reads one frame, up to EOF, from r.
func Read(r io.Reader, optFns ...Option) ([]cellid.CellID, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, optFns...)
}
