package geocell

import (
	"context"

	"github.com/hupe1980/geocell/cellid"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of converting one input.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Converter rewrites cells from one text form to another.
//
// A Converter is safe for concurrent use.
type Converter struct {
	from, to Format
	detect   bool
	logger   *Logger
	workers  int
}

// NewConverter returns a Converter reading form from and writing form to.
func NewConverter(from, to Format, optFns ...Option) *Converter {
	o := applyOptions(optFns)
	return &Converter{
		from:    from,
		to:      to,
		logger:  o.logger.WithFormats(from, to),
		workers: o.workers,
	}
}

// NewDetectingConverter returns a Converter that picks the input form per
// value with Detect.
func NewDetectingConverter(to Format, optFns ...Option) *Converter {
	c := NewConverter(FormatToken, to, optFns...)
	c.detect = true
	return c
}

// Convert rewrites a single value.
func (c *Converter) Convert(ctx context.Context, s string) (string, error) {
	out, err := c.convert(s)
	c.logger.LogConvert(ctx, s, out, err)
	return out, err
}

func (c *Converter) convert(s string) (string, error) {
	var (
		id  cellid.CellID
		err error
	)
	if c.detect {
		id, _, err = Detect(s)
	} else {
		id, err = Parse(s, c.from)
	}
	if err != nil {
		return "", err
	}
	return FormatCell(id, c.to)
}

// ConvertAll rewrites inputs concurrently. Results are in input order and
// failures are reported per value. The returned error is only set when ctx
// is cancelled.
func (c *Converter) ConvertAll(ctx context.Context, inputs []string) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := c.convert(in)
			results[i] = Result{Input: in, Output: out, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	c.logger.LogBatchConvert(ctx, len(inputs), failed)
	return results, nil
}
