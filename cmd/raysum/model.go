package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/joeydtaylor/raysum/pkg/builder"
	"github.com/spf13/cobra"
)

type modelFlags struct {
	capacity int
	output   string
	comment  string
}

func newModelCmd() *cobra.Command {
	var flags modelFlags
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect and edit layer model files",
	}
	cmd.PersistentFlags().IntVar(&flags.capacity, "capacity", 15, "maximum number of layers of the solver build")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "write the edited model here instead of stdout")
	cmd.PersistentFlags().StringVar(&flags.comment, "comment", "", "comment line for the written model")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show FILE",
			Short: "Print a model file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return editModel(cmd.OutOrStdout(), args[0], flags, nil)
			},
		},
		&cobra.Command{
			Use:   "edit FILE COMMAND",
			Short: `Apply an edit command such as "t0+10;vp1=7.6"`,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return editModel(cmd.OutOrStdout(), args[0], flags, func(m *builder.Model) error {
					return m.ApplyCommand(args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "split FILE LAYER",
			Short: "Split a layer into two of half the thickness",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := layerArg(args[1])
				if err != nil {
					return err
				}
				return editModel(cmd.OutOrStdout(), args[0], flags, func(m *builder.Model) error { return m.SplitLayer(n) })
			},
		},
		&cobra.Command{
			Use:   "remove FILE LAYER",
			Short: "Remove a layer",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := layerArg(args[1])
				if err != nil {
					return err
				}
				return editModel(cmd.OutOrStdout(), args[0], flags, func(m *builder.Model) error { return m.RemoveLayer(n) })
			},
		},
		&cobra.Command{
			Use:   "combine FILE TOP BOTTOM",
			Short: "Merge consecutive isotropic layers into their thickness weighted average",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				top, err := layerArg(args[1])
				if err != nil {
					return err
				}
				bottom, err := layerArg(args[2])
				if err != nil {
					return err
				}
				return editModel(cmd.OutOrStdout(), args[0], flags, func(m *builder.Model) error { return m.CombineLayers(top, bottom) })
			},
		},
		&cobra.Command{
			Use:   "times FILE",
			Short: "Print the Ps delay of every interface for vertical incidence",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := builder.ReadModelFile(args[0], builder.ModelWithCapacity(flags.capacity))
				if err != nil {
					return err
				}
				for i, t := range m.Times() {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %.4f\n", i, t); err != nil {
						return err
					}
				}
				return nil
			},
		},
	)
	return cmd
}

func layerArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("layer %q: %v: %w", s, err, builder.ErrInvalidArgument)
	}
	return n, nil
}

// editModel reads path, applies edit when set and writes the result to the
// output flag or out.
func editModel(out io.Writer, path string, flags modelFlags, edit func(*builder.Model) error) error {
	m, err := builder.ReadModelFile(path, builder.ModelWithCapacity(flags.capacity))
	if err != nil {
		return err
	}
	if edit != nil {
		if err := edit(m); err != nil {
			return err
		}
	}
	if flags.output != "" {
		return m.WriteFile(flags.output, flags.comment)
	}
	return m.Write(out, flags.comment)
}
