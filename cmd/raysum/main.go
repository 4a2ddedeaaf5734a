// Command raysum edits layer models and ray geometries and runs forward
// simulations of teleseismic body waves through them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "raysum",
		Short:         "Ray-based synthetic seismograms for layered anisotropic models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newRunCmd(), newModelCmd(), newGeometryCmd(), newConfigCmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "raysum:", err)
		os.Exit(1)
	}
}
