package cellvec

import "errors"

var (
	// ErrBadMagic is returned when data does not start with a frame header.
	ErrBadMagic = errors.New("cellvec: bad magic")

	// ErrChecksum is returned when the frame checksum does not match.
	ErrChecksum = errors.New("cellvec: checksum mismatch")

	// ErrTruncated is returned when the frame ends early or its lengths
	// disagree.
	ErrTruncated = errors.New("cellvec: truncated frame")

	// ErrUnknownCompression is returned for an unsupported compression
	// byte or name.
	ErrUnknownCompression = errors.New("cellvec: unknown compression")

	// ErrTooLarge is returned when a frame declares more ids than allowed
	// or its payload expands past the declared raw length.
	ErrTooLarge = errors.New("cellvec: frame too large")
)
