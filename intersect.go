package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/osuushi/geomspace/dbg"
	"github.com/osuushi/geomspace/geom"
)

// Input on stdin should be newline separated lines in the form
// "slope intercept". Blank lines are ignored. Every pair is solved and
// reported; duplicates collapse into one member of the space.

var (
	renderPath  string
	renderScale float64
	renderCat   bool
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Solve every pair of 2D lines read from stdin",
	Long: `Reads "slope intercept" pairs from stdin, one line per line, and
reports the intersection of every pair: a point, "parallel", or
"coincident". With --render, also draws the space to a PNG.`,
	RunE: runIntersect,
}

func init() {
	intersectCmd.Flags().StringVar(&renderPath, "render", "", "write a PNG of the space to this path")
	intersectCmd.Flags().Float64Var(&renderScale, "scale", 50, "pixels per unit when rendering")
	intersectCmd.Flags().BoolVar(&renderCat, "imgcat", false, "show the rendered image inline (iTerm only)")
	rootCmd.AddCommand(intersectCmd)
}

func runIntersect(cmd *cobra.Command, args []string) error {
	space, err := readSpace(os.Stdin)
	if err != nil {
		return err
	}
	if space.Len() < 2 {
		return fmt.Errorf("need at least two distinct lines, got %d", space.Len())
	}

	lines := space.Lines()
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			reportPair(lines[i], lines[j])
		}
	}

	if renderPath != "" {
		if err := space.Render(renderPath, renderScale); err != nil {
			return err
		}
		fmt.Printf("Rendered %d lines to %s\n", space.Len(), renderPath)
	}
	if renderCat {
		return space.RenderTerminal(renderScale)
	}
	return nil
}

func reportPair(l1, l2 geom.TwoDLine) {
	label := fmt.Sprintf("%s × %s", dbg.Name(l1), dbg.Name(l2))
	point, err := geom.SolveTwoDLines(l1, l2)
	switch {
	case errors.Is(err, geom.ErrNoSolution):
		fmt.Printf("%s: %s\n", label, aurora.Red("parallel"))
	case errors.Is(err, geom.ErrInfiniteSolutions):
		fmt.Printf("%s: %s\n", label, aurora.Cyan("coincident"))
	default:
		fmt.Printf("%s: %s (%g, %g)\n", label, aurora.Green("intersect at"),
			point.Component(0), point.Component(1))
	}
}

func readSpace(in *os.File) (*geom.Space2D, error) {
	space := geom.NewSpace2D()
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"slope intercept\", got %q", lineNo, text)
		}
		slope, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid slope %q: %w", lineNo, fields[0], err)
		}
		intercept, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid intercept %q: %w", lineNo, fields[1], err)
		}
		line, err := geom.NewTwoDLine(slope, intercept)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		space.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return space, nil
}
