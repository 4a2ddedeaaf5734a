package main

import (
	"github.com/joeydtaylor/raysum/pkg/builder"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage YAML run files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [FILE]",
		Short: "Write a run file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := builder.DefaultConfig()
			if len(args) == 1 {
				return cfg.Save(args[0])
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	})
	return cmd
}
