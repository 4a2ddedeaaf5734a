package main

import (
	"github.com/joeydtaylor/raysum/pkg/builder"
	"github.com/spf13/cobra"
)

type geometryFlags struct {
	baz, slow   []float64
	north, east []float64
	capacity    int
	output      string
}

func newGeometryCmd() *cobra.Command {
	var flags geometryFlags
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Build ray geometry files",
	}
	cmd.PersistentFlags().Float64SliceVar(&flags.baz, "baz", nil, "backazimuths in degrees")
	cmd.PersistentFlags().Float64SliceVar(&flags.slow, "slow", nil, "slownesses in s/km")
	cmd.PersistentFlags().Float64SliceVar(&flags.north, "north", nil, "north offsets in m, one value or one per ray")
	cmd.PersistentFlags().Float64SliceVar(&flags.east, "east", nil, "east offsets in m, one value or one per ray")
	cmd.PersistentFlags().IntVar(&flags.capacity, "capacity", 500, "maximum number of traces of the solver build")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "write the geometry here instead of stdout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "grid",
			Short: "Sample every slowness at every backazimuth",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := builder.NewGrid(flags.baz, flags.slow, flags.options()...)
				if err != nil {
					return err
				}
				return writeGeometry(cmd, g, flags.output)
			},
		},
		&cobra.Command{
			Use:   "pairs",
			Short: "Zip backazimuths and slownesses of equal length",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := builder.NewPairs(flags.baz, flags.slow, flags.options()...)
				if err != nil {
					return err
				}
				return writeGeometry(cmd, g, flags.output)
			},
		},
	)
	return cmd
}

func (f geometryFlags) options() []builder.GeometryOption {
	opts := []builder.GeometryOption{builder.GeometryWithCapacity(f.capacity)}
	if len(f.north) > 0 || len(f.east) > 0 {
		opts = append(opts, builder.GeometryWithOffsets(f.north, f.east))
	}
	return opts
}

func writeGeometry(cmd *cobra.Command, g *builder.Geometry, path string) error {
	if path != "" {
		return g.WriteFile(path)
	}
	return g.Write(cmd.OutOrStdout())
}
