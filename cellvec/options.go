package cellvec

// Options configures encoding and decoding.
type Options struct {
	// Compression is the algorithm tried for the payload.
	Compression Compression

	// MinSavings is the fraction of the raw payload compression must save
	// before the compressed form is kept.
	MinSavings float64

	// MaxCount bounds the number of ids a decoded frame may declare.
	MaxCount int
}

// DefaultOptions holds the defaults: no compression, 10% minimum savings
// and at most 1<<24 ids per frame.
var DefaultOptions = Options{
	Compression: CompressionNone,
	MinSavings:  0.1,
	MaxCount:    1 << 24,
}

// Option configures Encode and Decode.
type Option func(*Options)

// WithCompression selects the payload compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithMinSavings sets the minimum fraction compression must save. Values
// outside [0,1) are ignored.
func WithMinSavings(f float64) Option {
	return func(o *Options) {
		if f >= 0 && f < 1 {
			o.MinSavings = f
		}
	}
}

// WithMaxCount bounds the number of ids accepted by Decode.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCount = n
		}
	}
}

func applyOptions(optFns []Option) Options {
	o := DefaultOptions
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
