// internal/app/coords.go
package app

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dnadotplot/core/dotplot"
	"dnadotplot/internal/appcore"
)

type coordsOptions struct {
	length int
	grid   int
	width  float64
	window int
}

func (o coordsOptions) validate(gridSet, widthSet bool) error {
	if o.length < 1 {
		return errors.New("--length must be ≥ 1")
	}
	if gridSet == widthSet {
		return errors.New("exactly one of --grid or --width is required")
	}
	if gridSet && o.grid < 1 {
		return errors.New("--grid must be ≥ 1")
	}
	if gridSet && o.grid > dotplot.MaxGridSize {
		return fmt.Errorf("--grid must be ≤ %d", dotplot.MaxGridSize)
	}
	if o.window < 1 {
		return errors.New("--window must be ≥ 1")
	}
	return nil
}

// newCoordsCmd prints where each window start of a sequence lands on the grid.
func newCoordsCmd() *cobra.Command {
	var o coordsOptions
	cmd := &cobra.Command{
		Use:   "coords --length N (--grid N | --width F)",
		Short: "Show the position to grid coordinate mapping",
		Long: `coords lists, for a sequence of the given length, the grid coordinate of
every window start position, and reports grid cells below the last reachable
one that no position maps to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			if err := o.validate(fs.Changed("grid"), fs.Changed("width")); err != nil {
				return &exitError{code: appcore.ExitUsage, err: err}
			}
			size := o.grid
			if fs.Changed("width") {
				n, err := dotplot.GridSize(o.length, o.length, o.width)
				if err != nil {
					return &exitError{code: appcore.ExitUsage, err: err}
				}
				size = n
			}
			return writeCoords(cmd, o.length, o.window, size)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&o.length, "length", 0, "sequence length [*]")
	fs.IntVar(&o.grid, "grid", 0, "grid size in cells")
	fs.Float64Var(&o.width, "width", 0, "grid size as for the main command's --width")
	fs.IntVar(&o.window, "window", dotplot.DefaultWindow, "window size")
	_ = cmd.MarkFlagRequired("length")
	return cmd
}

func writeCoords(cmd *cobra.Command, length, window, size int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "position\tcoordinate")

	hit := make([]bool, size)
	for p := 0; p+window <= length; p++ {
		c := dotplot.Coordinate(p, length, size)
		if c >= 0 && c < size {
			hit[c] = true
			fmt.Fprintf(tw, "%d\t%d\n", p, c)
		} else {
			fmt.Fprintf(tw, "%d\t%d (off grid)\n", p, c)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// gaps below the last reachable coordinate
	last := -1
	for c, ok := range hit {
		if ok {
			last = c
		}
	}
	var missing []int
	for c := 0; c < last; c++ {
		if !hit[c] {
			missing = append(missing, c)
		}
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "grid %d, %d unused coordinates: %v\n", size, len(missing), missing)
	return err
}
