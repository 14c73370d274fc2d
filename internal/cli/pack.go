package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hupe1980/geocell"
	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/cellset"
	"github.com/hupe1980/geocell/cellvec"
	"github.com/spf13/cobra"
)

func newPackCommand(stdin io.Reader, stdout io.Writer, g *globals) *cobra.Command {
	var (
		compression string
		out         string
		unique      bool
	)
	cmd := &cobra.Command{
		Use:   "pack [cell]...",
		Short: "Write cells as a compact binary frame.",
		Long: `
Encodes cells, given as arguments or one per line on stdin, into a
checksummed and optionally compressed frame. With --unique the
cells are deduplicated and sorted along the Hilbert curve first.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cellvec.ParseCompression(compression)
			if err != nil {
				return err
			}
			logger, err := g.logger()
			if err != nil {
				return err
			}
			inputs, err := inputLines(args, stdin)
			if err != nil {
				return err
			}

			ids := make([]cellid.CellID, 0, len(inputs))
			for _, in := range inputs {
				id, _, err := geocell.Detect(in)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if unique {
				ids = slices.Collect(cellset.New(ids...).All())
			}

			if out == "" || out == "-" {
				n, err := cellvec.Write(stdout, ids, cellvec.WithCompression(c))
				logger.WithCount(len(ids)).LogEncode(context.Background(), len(ids), int(n), err)
				return err
			}
			return writeFrameFile(out, ids, c, logger)
		},
	}
	cmd.Flags().StringVar(&compression, "compression", "none", "Payload compression: none, lz4 or zstd.")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout).")
	cmd.Flags().BoolVar(&unique, "unique", false, "Deduplicate and sort cells.")
	return cmd
}

// createOutput opens the destination of pack.
var createOutput = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// writeFrameFile encodes ids into the file at path. A failed close is
// reported when the write itself succeeded.
func writeFrameFile(path string, ids []cellid.CellID, c cellvec.Compression, logger *geocell.Logger) (err error) {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	n, err := cellvec.Write(f, ids, cellvec.WithCompression(c))
	logger.WithCount(len(ids)).LogEncode(context.Background(), len(ids), int(n), err)
	return err
}

func newUnpackCommand(stdin io.Reader, stdout io.Writer, g *globals) *cobra.Command {
	var (
		format   string
		maxCount int
	)
	cmd := &cobra.Command{
		Use:   "unpack [file|-]",
		Short: "Print the cells of a binary frame.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := geocell.ParseFormat(format)
			if err != nil {
				return err
			}
			logger, err := g.logger()
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			r, err := openInput(path, stdin)
			if err != nil {
				return err
			}
			defer r.Close()
			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			ids, err := cellvec.Decode(data, cellvec.WithMaxCount(maxCount))
			logger.LogDecode(context.Background(), len(data), len(ids), err)
			if err != nil {
				return err
			}
			for _, id := range ids {
				s, err := geocell.FormatCell(id, f)
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "token", "Output form: token, debug or path.")
	cmd.Flags().IntVar(&maxCount, "max-count", cellvec.DefaultOptions.MaxCount, "Largest accepted cell count.")
	return cmd
}
