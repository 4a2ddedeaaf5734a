package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/raysum/pkg/builder"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	impulse    bool
	metrics    bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate the configured geometry through the configured model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForward(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "raysum.yaml", "YAML run file")
	cmd.Flags().BoolVar(&opts.impulse, "impulse", false, "use the built-in impulse solver instead of the native plugin")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print the run metrics")
	return cmd
}

func runForward(ctx context.Context, out io.Writer, opts runOptions) error {
	cfg, err := builder.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger := builder.NewLogger(
		builder.LoggerWithLevel(cfg.LogLevel),
		builder.LoggerWithOutput("stderr"),
		builder.LoggerWithRunID(builder.NewRunID()),
	)
	defer logger.Flush()
	mtr := builder.NewMeter(builder.MeterWithLogger(logger))

	var s builder.Solver
	switch {
	case opts.impulse:
		s = builder.ImpulseSolver([3]float64{1, 0, 1})
	case cfg.Solver.Plugin != "":
		if s, err = builder.LoadSolverPlugin(cfg.Solver.Plugin); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no solver: set solver.plugin, %s or --impulse: %w", builder.EnvSolverPlugin, builder.ErrInvalidArgument)
	}

	m, err := cfg.LoadModel(builder.ModelWithLogger(logger), builder.ModelWithMeter(mtr))
	if err != nil {
		return err
	}
	g, err := cfg.LoadGeometry(builder.GeometryWithLogger(logger))
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	target, spec, filtered, err := cfg.FilterSpec()
	if err != nil {
		return err
	}
	fmin, fmax, batch, err := cfg.BatchBand()
	if err != nil {
		return err
	}
	streamEnc, err := builder.StreamEncoder(cfg.Output.Format)
	if err != nil {
		return err
	}
	rfEnc, err := builder.ReceiverFunctionEncoder(cfg.Output.Format)
	if err != nil {
		return err
	}

	sim := builder.NewSimulator(
		builder.SimulatorWithSolver(s),
		builder.SimulatorWithMaxSamples(cfg.Solver.MaxSamples),
		builder.SimulatorWithEngine(builder.NewEngine(
			builder.EngineWithConcurrency(cfg.Concurrency),
			builder.EngineWithLogger(logger),
			builder.EngineWithMeter(mtr),
		)),
		builder.SimulatorWithLogger(logger),
		builder.SimulatorWithMeter(mtr),
	)
	if batch {
		if err := runBatch(ctx, out, sim, m, g, params, fmin, fmax, cfg.Output.Batch); err != nil {
			return err
		}
		return reportMetrics(out, mtr, opts.metrics || cfg.Output.Metrics)
	}

	sl, err := sim.Run(ctx, m, g, params)
	if err != nil {
		return err
	}
	if filtered {
		if err := sl.Filter(target, spec); err != nil {
			return err
		}
	}

	if cfg.Output.Streams != "" {
		if err := writeFile(cfg.Output.Streams, func(w io.Writer) error { return streamEnc.Encode(w, sl.Streams) }); err != nil {
			return err
		}
	}
	if cfg.Output.RFs != "" && sl.RFs != nil {
		if err := writeFile(cfg.Output.RFs, func(w io.Writer) error { return rfEnc.Encode(w, sl.RFs) }); err != nil {
			return err
		}
	}
	if cfg.Output.Streams == "" && cfg.Output.RFs == "" {
		if err := writeSummary(out, sl); err != nil {
			return err
		}
	}
	return reportMetrics(out, mtr, opts.metrics || cfg.Output.Metrics)
}

// runBatch writes the filtered receiver function array to path, or to out
// when path is empty.
func runBatch(ctx context.Context, out io.Writer, sim *builder.Simulator, m *builder.Model, g *builder.Geometry, params builder.Params, fmin, fmax float64, path string) error {
	dst := builder.NewRFArray(g.Len(), params.Samples)
	if err := sim.RunBatch(ctx, m, g, params, fmin, fmax, dst); err != nil {
		return err
	}
	if path == "" {
		return dst.WriteText(out)
	}
	return writeFile(path, dst.WriteText)
}

func reportMetrics(out io.Writer, mtr *builder.Meter, enabled bool) error {
	if !enabled {
		return nil
	}
	return mtr.Report(out, mtr.Snapshot())
}

func writeSummary(out io.Writer, sl *builder.StreamList) error {
	bw := bufio.NewWriter(out)
	for i, summaries := range builder.Summarize(sl.Streams) {
		r := sl.Streams[i]
		fmt.Fprintf(bw, "trace %3d baz %6.2f slow %.4f", i, r.Backazimuth, r.Slowness)
		for _, s := range summaries {
			fmt.Fprintf(bw, "  %s %+.4e @ %6.2fs", s.Channel, s.Peak, s.PeakTime)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
