package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/geocell"
	"github.com/hupe1980/geocell/cellid"
	"github.com/spf13/cobra"
)

func newNeighborsCommand(stdin io.Reader, stdout io.Writer, g *globals) *cobra.Command {
	var (
		cell   cellid.CellID
		kind   string
		level  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "neighbors [cell]",
		Short: "List the neighbors of a cell.",
		Long: `
Lists edge neighbors, the cells around the vertex closest to the
cell center (--kind vertex, at a level above the cell), or all
cells touching the cell (--kind all, at its level or below).
The cell is given as an argument or with --cell.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, _, err := geocell.Detect(args[0])
				if err != nil {
					return err
				}
				cell = id
			}
			if !cell.IsValid() {
				return errors.New("a cell is required")
			}
			f, err := geocell.ParseFormat(format)
			if err != nil {
				return err
			}

			var nbrs []cellid.CellID
			switch kind {
			case "edge":
				e := cell.EdgeNeighbors()
				nbrs = e[:]
			case "vertex":
				if level < 0 {
					level = cell.Level() - 1
				}
				if level < 0 || level >= cell.Level() {
					return fmt.Errorf("vertex neighbors need a level in [0,%d)", cell.Level())
				}
				nbrs = cell.AppendVertexNeighbors(level, nil)
			case "all":
				if level < 0 {
					level = cell.Level()
				}
				if level < cell.Level() || level > cellid.MaxLevel {
					return fmt.Errorf("all neighbors need a level in [%d,%d]", cell.Level(), cellid.MaxLevel)
				}
				nbrs = cell.AppendAllNeighbors(level, nil)
			default:
				return fmt.Errorf("unknown neighbor kind %q", kind)
			}

			for _, n := range nbrs {
				s, err := geocell.FormatCell(n, f)
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, s)
			}
			return nil
		},
	}
	cmd.Flags().Var(cellid.NewFlag(&cell), "cell", "Cell token.")
	cmd.Flags().StringVar(&kind, "kind", "edge", "Neighbor kind: edge, vertex or all.")
	cmd.Flags().IntVar(&level, "level", -1, "Neighbor level (default depends on --kind).")
	cmd.Flags().StringVar(&format, "format", "token", "Output form: token, debug or path.")
	return cmd
}
