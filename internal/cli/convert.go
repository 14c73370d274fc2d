package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/geocell"
	"github.com/spf13/cobra"
)

func newConvertCommand(stdin io.Reader, stdout io.Writer, g *globals) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert cells between text forms.",
		Long: `
Reads one cell per line and writes it in the target form. With
--from auto each line is read as a debug string when it contains
a slash and as a token otherwise. Invalid lines are reported on
stderr and the command fails when any line was invalid.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := geocell.ParseFormat(to)
			if err != nil {
				return err
			}
			logger, err := g.logger()
			if err != nil {
				return err
			}
			opts := []geocell.Option{geocell.WithLogger(logger), geocell.WithWorkers(g.workers)}

			var c *geocell.Converter
			if from == "auto" {
				c = geocell.NewDetectingConverter(target, opts...)
			} else {
				source, err := geocell.ParseFormat(from)
				if err != nil {
					return err
				}
				c = geocell.NewConverter(source, target, opts...)
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
			lines, err := readLines(r)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			results, err := c.ConvertAll(ctx, lines)
			if err != nil {
				return err
			}
			failed := 0
			for i, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(g.stderr, "input %d: %v\n", i+1, res.Err)
					continue
				}
				fmt.Fprintln(stdout, res.Output)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "auto", "Input form: auto, token, debug or path.")
	cmd.Flags().StringVar(&to, "to", "token", "Output form: token, debug or path.")
	return cmd
}
