package cellvec

import (
	"bytes"
	"encoding/binary"
	"slices"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/internal/hash"
	"github.com/hupe1980/geocell/pathcell"
	"github.com/hupe1980/geocell/testutil"
)

// levelRun returns every cell at level inside parent, which compresses
// well.
func levelRun(parent cellid.CellID, level int) []cellid.CellID {
	var ids []cellid.CellID
	for c := parent.ChildBeginAt(level); c != parent.ChildEndAt(level); c = c.Next() {
		ids = append(ids, c)
	}
	return ids
}

func randomIDs(n int) []cellid.CellID {
	rng := testutil.NewRNG(2024)
	ids := make([]cellid.CellID, n)
	for k := range ids {
		ids[k] = cellid.FromFacePosLevel(rng.Face(), rng.Pos(), rng.Level(cellid.MaxLevel))
	}
	return ids
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]cellid.CellID{
		"empty":  {},
		"faces":  {cellid.FromFace(0), cellid.FromFace(5), cellid.None(), cellid.Sentinel()},
		"run":    levelRun(cellid.FromDebugString("3/21"), 7),
		"random": randomIDs(1000),
	}
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for name, ids := range inputs {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				frame, err := Encode(ids, WithCompression(c))
				require.NoError(t, err)
				assert.Equal(t, magic, string(frame[:4]))

				got, err := Decode(frame)
				require.NoError(t, err)
				assert.Len(t, got, len(ids))
				if len(ids) > 0 {
					assert.Equal(t, ids, got)
				}
			})
		}
	}
}

func TestCompressionIsUsedWhenItHelps(t *testing.T) {
	ids := slices.Repeat(levelRun(cellid.FromDebugString("1/0"), 3), 200)
	plain, err := Encode(ids)
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), plain[4])

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		packed, err := Encode(ids, WithCompression(c))
		require.NoError(t, err)
		assert.Equal(t, byte(c), packed[4], c.String())
		assert.Less(t, len(packed), len(plain), c.String())
	}
}

func TestCompressionFallsBack(t *testing.T) {
	ids := []cellid.CellID{cellid.FromFace(2)}
	frame, err := Encode(ids, WithCompression(CompressionZSTD))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), frame[4])

	// Demanding impossible savings always stores the raw payload.
	frame, err = Encode(levelRun(cellid.FromFace(0), 6), WithCompression(CompressionLZ4), WithMinSavings(0.999))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), frame[4])
}

func TestDecodeErrors(t *testing.T) {
	good, err := Encode(levelRun(cellid.FromFace(4), 2), WithCompression(CompressionLZ4), WithMinSavings(0))
	require.NoError(t, err)

	flip := func(i int) []byte {
		b := bytes.Clone(good)
		b[i] ^= 0xff
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrBadMagic},
		{"bad magic", append([]byte("GCV2"), good[4:]...), ErrBadMagic},
		{"checksum", flip(len(good) - 1), ErrChecksum},
		{"payload bit flip", flip(len(good) - 6), ErrChecksum},
		{"truncated", good[:len(good)-3], ErrChecksum},
		{"header only", []byte(magic), ErrChecksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// buildFrame builds a frame with a valid checksum around the given fields.
func buildFrame(c Compression, count, rawLen uint64, payload []byte) []byte {
	b := []byte(magic)
	b = append(b, byte(c))
	b = binary.AppendUvarint(b, count)
	b = binary.AppendUvarint(b, rawLen)
	b = binary.AppendUvarint(b, uint64(len(payload)))
	b = append(b, payload...)
	return hash.AppendCRC32C(b)
}

func TestDecodeRejectsInconsistentFrames(t *testing.T) {
	face := []byte{1, 0x10}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"unknown compression", buildFrame(7, 1, 2, face), ErrUnknownCompression},
		{"count over limit", buildFrame(CompressionNone, 1<<30, 2, face), ErrTooLarge},
		{"raw length over bound", buildFrame(CompressionNone, 1, 10, face), ErrTruncated},
		{"raw length mismatch", buildFrame(CompressionNone, 1, 3, face), ErrTruncated},
		{"count mismatch", buildFrame(CompressionNone, 2, 2, face), ErrTruncated},
		{"corrupt id", buildFrame(CompressionNone, 1, 2, []byte{1, 0x20}), cellid.ErrCorruptEncoding},
		{"bad lz4", buildFrame(CompressionLZ4, 1, 2, []byte{0xff, 0xff}), nil},
		{"bad zstd", buildFrame(CompressionZSTD, 1, 2, []byte{0xff, 0xff}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}

	_, err := Decode(buildFrame(CompressionNone, 3, 2, face), WithMaxCount(2))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDecodeBoundsZstdExpansion(t *testing.T) {
	zeros := make([]byte, 8<<20)

	t.Run("DeclaredContentSize", func(t *testing.T) {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		defer enc.Close()

		payload := enc.EncodeAll(zeros, nil)
		require.Less(t, len(payload), 4096)

		_, err = Decode(buildFrame(CompressionZSTD, 1, 2, payload))
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("StreamWithoutContentSize", func(t *testing.T) {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = enc.Write(zeros)
		require.NoError(t, err)
		require.NoError(t, enc.Close())
		require.Less(t, buf.Len(), 4096)

		_, err = Decode(buildFrame(CompressionZSTD, 1, 2, buf.Bytes()))
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("ShortOutput", func(t *testing.T) {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		defer enc.Close()

		// A frame holding one face id, declared as two.
		payload := enc.EncodeAll([]byte{1, 0x10}, nil)
		_, err = Decode(buildFrame(CompressionZSTD, 2, 4, payload))
		require.Error(t, err)
	})
}

func TestPaths(t *testing.T) {
	ids := []pathcell.CellID{
		pathcell.FromString("0"),
		pathcell.FromString("5/3333"),
		pathcell.None(),
		pathcell.FromFaceLevel(2, pathcell.MaxLevel),
	}
	data, err := EncodePaths(ids, WithCompression(CompressionZSTD))
	require.NoError(t, err)

	got, err := DecodePaths(data)
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	deep, err := Encode([]cellid.CellID{cellid.FromFacePosLevel(1, 0, cellid.MaxLevel)})
	require.NoError(t, err)
	got, err = DecodePaths(deep)
	require.NoError(t, err)
	assert.Equal(t, []pathcell.CellID{pathcell.FromFaceLevel(1, pathcell.MaxLevel)}, got)

	withSentinel, err := Encode([]cellid.CellID{cellid.Sentinel()})
	require.NoError(t, err)
	_, err = DecodePaths(withSentinel)
	assert.ErrorIs(t, err, cellid.ErrCorruptEncoding)
}

func TestWriteRead(t *testing.T) {
	ids := randomIDs(50)
	var buf bytes.Buffer
	n, err := Write(&buf, ids, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCompression("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, got)

	_, err = ParseCompression("brotli")
	assert.ErrorIs(t, err, ErrUnknownCompression)
	assert.Equal(t, "compression(9)", Compression(9).String())
}
