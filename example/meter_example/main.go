package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joeydtaylor/raysum/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))
	defer logger.Flush()

	// Create a new Meter
	meter := builder.NewMeter(
		builder.MeterWithLogger(logger),
		builder.MeterWithComponentMetadata("forward-run", "meter-1"),
		builder.MeterWithCPUInterval(200*time.Millisecond),
	)

	model, err := builder.NewModel(
		[]float64{10000, 25000, 0},
		[]float64{2600, 2900, 3300},
		[]float64{5000, 6400, 8000},
		[]float64{2900, 3700, 4500},
		builder.ModelWithMeter(meter),
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}
	if err := model.ApplyCommand("vs0-0.2;t1+2"); err != nil {
		fmt.Printf("Error editing model: %v\n", err)
		return
	}

	baz := make([]float64, 36)
	for i := range baz {
		baz[i] = float64(i) * 10
	}
	geometry, err := builder.NewGrid(baz, []float64{0.04, 0.06, 0.08})
	if err != nil {
		fmt.Printf("Error creating geometry: %v\n", err)
		return
	}

	sim := builder.NewSimulator(
		builder.SimulatorWithSolver(builder.ImpulseSolver([3]float64{0.3, 0.05, 1})),
		builder.SimulatorWithEngine(builder.NewEngine(
			builder.EngineWithConcurrency(4),
			builder.EngineWithMeter(meter),
		)),
		builder.SimulatorWithMeter(meter),
	)
	params := builder.DefaultParams()
	params.Samples = 1024
	params.Rotation = builder.RotationRTZ
	params.ReceiverFunctions = true

	streams, err := sim.Run(ctx, model, geometry, params)
	if err != nil {
		fmt.Printf("Error running simulation: %v\n", err)
		return
	}
	if err := streams.Filter(builder.TargetRFs, builder.FilterSpec{Kind: builder.Bandpass, FreqMin: 0.05, FreqMax: 1, Corners: 2, ZeroPhase: true}); err != nil {
		fmt.Printf("Error filtering: %v\n", err)
		return
	}

	if err := meter.Report(os.Stdout, meter.Snapshot()); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
	}
}
