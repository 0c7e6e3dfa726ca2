package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osuushi/geomspace/geom"
)

var (
	linePoint     string
	lineDirection string
	lineThrough   []string
)

var line3dCmd = &cobra.Command{
	Use:   "line3d",
	Short: "Print the parametric and symmetric forms of a 3D line",
	Long: `Builds a 3D line from --point and --direction (or from two --through
points) and prints its parametric and symmetric forms.`,
	RunE: runLine3D,
}

func init() {
	line3dCmd.Flags().StringVar(&linePoint, "point", "0,0,0", "point on the line, as x,y,z")
	line3dCmd.Flags().StringVar(&lineDirection, "direction", "", "direction vector, as x,y,z")
	line3dCmd.Flags().StringArrayVar(&lineThrough, "through", nil, "build from two points instead (give twice)")
	rootCmd.AddCommand(line3dCmd)
}

func runLine3D(cmd *cobra.Command, args []string) error {
	line, err := buildLine()
	if err != nil {
		return err
	}

	fmt.Println("Parametric form:")
	for _, eq := range line.ParametricForm() {
		fmt.Printf("  %s\n", eq)
	}
	fmt.Println("Symmetric form:")
	fmt.Printf("  %s\n", line.SymmetricForm())
	return nil
}

func buildLine() (geom.ThreeDLine, error) {
	if len(lineThrough) > 0 {
		if len(lineThrough) != 2 {
			return geom.ThreeDLine{}, fmt.Errorf("--through must be given exactly twice, got %d", len(lineThrough))
		}
		p1, err := parseVector3(lineThrough[0])
		if err != nil {
			return geom.ThreeDLine{}, err
		}
		p2, err := parseVector3(lineThrough[1])
		if err != nil {
			return geom.ThreeDLine{}, err
		}
		return geom.ThreeDLineFromPoints(p1, p2)
	}

	if lineDirection == "" {
		return geom.ThreeDLine{}, fmt.Errorf("either --direction or two --through points are required")
	}
	point, err := parseVector3(linePoint)
	if err != nil {
		return geom.ThreeDLine{}, err
	}
	direction, err := parseVector3(lineDirection)
	if err != nil {
		return geom.ThreeDLine{}, err
	}
	return geom.NewThreeDLine(point, direction)
}
