package cli

import (
	"fmt"
	"io"

	"github.com/hupe1980/geocell"
	"github.com/hupe1980/geocell/cellid"
	"github.com/hupe1980/geocell/codec"
	"github.com/hupe1980/geocell/pathcell"
	"github.com/spf13/cobra"
)

// cellInfo is the inspect output for one cell.
type cellInfo struct {
	Token    string  `json:"token"`
	Debug    string  `json:"debug"`
	Path     string  `json:"path,omitempty"`
	Face     int     `json:"face"`
	Level    int     `json:"level"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RangeMin string  `json:"range_min"`
	RangeMax string  `json:"range_max"`
	SizeIJ   int     `json:"size_ij"`
}

func inspectCell(id cellid.CellID) cellInfo {
	lat, lng := id.ToLatLng().Degrees()
	info := cellInfo{
		Token:    id.ToToken(),
		Debug:    id.ToDebugString(),
		Face:     id.Face(),
		Level:    id.Level(),
		Lat:      lat,
		Lng:      lng,
		RangeMin: id.RangeMin().ToToken(),
		RangeMax: id.RangeMax().ToToken(),
		SizeIJ:   id.SizeIJ(),
	}
	if p := pathcell.FromCellID(id); p.IsValid() {
		info.Path = p.String()
	}
	return info
}

func newInspectCommand(stdin io.Reader, stdout io.Writer, g *globals) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <cell>...",
		Short: "Print the properties of cells.",
		Long: `
Prints face, level, token, debug string, path form, center and
descendant range of each cell. Cells are read from stdin when no
arguments are given.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := inputLines(args, stdin)
			if err != nil {
				return err
			}
			infos := make([]cellInfo, 0, len(inputs))
			for _, in := range inputs {
				id, _, err := geocell.Detect(in)
				if err != nil {
					return err
				}
				infos = append(infos, inspectCell(id))
			}
			if asJSON {
				data, err := codec.GoJSON{Indent: "  "}.Marshal(infos)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(stdout, "%s\n", data)
				return err
			}
			for _, info := range infos {
				path := info.Path
				if path == "" {
					path = "-"
				}
				fmt.Fprintf(stdout, "token:  %s\n", info.Token)
				fmt.Fprintf(stdout, "debug:  %s\n", info.Debug)
				fmt.Fprintf(stdout, "path:   %s\n", path)
				fmt.Fprintf(stdout, "face:   %d\n", info.Face)
				fmt.Fprintf(stdout, "level:  %d\n", info.Level)
				fmt.Fprintf(stdout, "center: %.6f,%.6f\n", info.Lat, info.Lng)
				fmt.Fprintf(stdout, "range:  %s..%s\n", info.RangeMin, info.RangeMax)
				fmt.Fprintf(stdout, "size:   %d\n\n", info.SizeIJ)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text.")
	return cmd
}
