package cellvec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression returns the compression named s: none, lz4 or zstd.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// maxZstdWindow bounds the window a stored frame may request.
const maxZstdWindow = 64 << 20

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxZstdWindow),
	)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the stored payload and the compression actually used.
// It falls back to CompressionNone when the result is not at least
// minSavings smaller than raw.
func compress(raw []byte, c Compression, minSavings float64) ([]byte, Compression, error) {
	if c == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var out []byte
	var err error
	switch c {
	case CompressionLZ4:
		out, err = compressLZ4(raw)
	case CompressionZSTD:
		out, err = compressZSTD(raw)
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
	if err != nil {
		return nil, 0, err
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*(1-minSavings) {
		return raw, CompressionNone, nil
	}
	return out, c, nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		return nil, err
	}
	// Zero means incompressible.
	return dst[:n], nil
}

func compressZSTD(raw []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(raw, nil), nil
}

// decompress expands a stored payload to exactly rawLen bytes.
func decompress(stored []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(stored) != rawLen {
			return nil, fmt.Errorf("%w: stored %d bytes, raw length %d", ErrTruncated, len(stored), rawLen)
		}
		return stored, nil

	case CompressionLZ4:
		raw := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, raw)
		if err != nil {
			return nil, fmt.Errorf("cellvec: lz4: %w", err)
		}
		if n != rawLen {
			return nil, fmt.Errorf("%w: lz4 produced %d of %d bytes", ErrTruncated, n, rawLen)
		}
		return raw, nil

	case CompressionZSTD:
		return decompressZSTD(stored, rawLen)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

// decompressZSTD streams at most rawLen bytes out of stored so that a small
// frame cannot expand past the declared length.
func decompressZSTD(stored []byte, rawLen int) ([]byte, error) {
	var h zstd.Header
	if err := h.Decode(stored); err != nil {
		return nil, fmt.Errorf("cellvec: zstd: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(rawLen) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, raw length %d", ErrTooLarge, h.FrameContentSize, rawLen)
	}

	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	defer putZstdDecoder(dec)

	if err := dec.Reset(bytes.NewReader(stored)); err != nil {
		return nil, fmt.Errorf("cellvec: zstd: %w", err)
	}
	raw := make([]byte, rawLen)
	if _, err := io.ReadFull(dec, raw); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: zstd produced fewer than %d bytes", ErrTruncated, rawLen)
		}
		return nil, fmt.Errorf("cellvec: zstd: %w", err)
	}
	var extra [1]byte
	if n, err := dec.Read(extra[:]); n != 0 || !errors.Is(err, io.EOF) {
		if n != 0 {
			return nil, fmt.Errorf("%w: zstd output exceeds %d bytes", ErrTooLarge, rawLen)
		}
		return nil, fmt.Errorf("cellvec: zstd: %w", err)
	}
	return raw, nil
}
