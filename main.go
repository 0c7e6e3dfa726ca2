package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osuushi/geomspace/geom"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "geomspace",
	Short: "Vector, line, and plane algebra demos",
	Long: `Geomspace exercises the geom library from the command line: pairwise
2D line intersection, 3D line form conversion, and implicit plane equations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log library diagnostics to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseVector3 parses "x,y,z" into a 3D vector.
func parseVector3(s string) (geom.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vector{}, fmt.Errorf("expected x,y,z but got %q", s)
	}
	comps := make([]float64, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("invalid component %q: %w", part, err)
		}
		comps[i] = f
	}
	return geom.NewVector3D(comps[0], comps[1], comps[2])
}
