package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osuushi/geomspace/geom"
)

var (
	planeOrigin string
	planeBasis  []string
)

var planeCmd = &cobra.Command{
	Use:   "plane",
	Short: "Print the implicit equation of a plane",
	Long: `Builds a plane from --origin and two --basis vectors (defaults: the
xy-plane through the origin) and prints its implicit equation
Ax + By + Cz + D = 0.`,
	RunE: runPlane,
}

func init() {
	planeCmd.Flags().StringVar(&planeOrigin, "origin", "0,0,0", "origin point, as x,y,z")
	planeCmd.Flags().StringArrayVar(&planeBasis, "basis", nil, "basis vector, as x,y,z (give twice)")
	rootCmd.AddCommand(planeCmd)
}

func runPlane(cmd *cobra.Command, args []string) error {
	p := geom.NewPlane()

	origin, err := parseVector3(planeOrigin)
	if err != nil {
		return err
	}
	if err := p.SetOrigin(origin); err != nil {
		return err
	}

	if len(planeBasis) > 0 {
		if len(planeBasis) != 2 {
			return fmt.Errorf("--basis must be given exactly twice, got %d", len(planeBasis))
		}
		b0, err := parseVector3(planeBasis[0])
		if err != nil {
			return err
		}
		b1, err := parseVector3(planeBasis[1])
		if err != nil {
			return err
		}
		if err := p.SetBasisVectors(b0, b1); err != nil {
			return err
		}
	}

	eq := p.EquationParameters()
	fmt.Println(p)
	fmt.Printf("%gx + %gy + %gz + %g = 0\n", eq.A, eq.B, eq.C, eq.D)
	return nil
}
