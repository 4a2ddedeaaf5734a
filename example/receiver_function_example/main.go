package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/joeydtaylor/raysum/pkg/builder"
)

// Converted phases from a dipping Moho move with backazimuth. Print the
// strongest radial arrival of every receiver function and save them all.
func main() {
	model, err := builder.NewModel(
		[]float64{32000, 0},
		[]float64{2800, 3300},
		[]float64{6300, 8000},
		[]float64{3600, 4500},
		builder.ModelWithStrike(0, 90),
		builder.ModelWithDip(0, 15),
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}
	fmt.Printf("Ps delay at the Moho for vertical incidence: %.2f s\n", model.Times()[0])

	baz := []float64{0, 45, 90, 135, 180, 225, 270, 315}
	geometry, err := builder.NewGrid(baz, []float64{0.06})
	if err != nil {
		fmt.Printf("Error creating geometry: %v\n", err)
		return
	}

	plugin := builder.EnvOr(builder.EnvSolverPlugin, "")
	var solver builder.Solver = builder.ImpulseSolver([3]float64{0.35, 0, 1})
	if plugin != "" {
		if solver, err = builder.LoadSolverPlugin(plugin); err != nil {
			fmt.Printf("Error loading solver: %v\n", err)
			return
		}
	}

	sim := builder.NewSimulator(builder.SimulatorWithSolver(solver))
	params := builder.DefaultParams()
	params.Samples = 1024
	params.Rotation = builder.RotationRTZ
	params.ReceiverFunctions = true

	streams, err := sim.Run(context.Background(), model, geometry, params)
	if err != nil {
		fmt.Printf("Error running simulation: %v\n", err)
		return
	}
	if err := streams.Filter(builder.TargetRFs, builder.FilterSpec{Kind: builder.Bandpass, FreqMin: 0.05, FreqMax: 0.5, Corners: 2, ZeroPhase: true}); err != nil {
		fmt.Printf("Error filtering: %v\n", err)
		return
	}

	for _, rf := range streams.RFs {
		lags := rf.TimeAxis()
		best := 0
		for i, v := range rf.Radial {
			if lags[i] > 0.5 && (best == 0 || math.Abs(v) > math.Abs(rf.Radial[best])) {
				best = i
			}
		}
		fmt.Printf("baz %5.1f  strongest converted arrival %+.4f at %5.2f s\n", rf.Backazimuth, rf.Radial[best], lags[best])
	}

	// The batch path skips the trace objects: one PVH solver call, filtered
	// straight into a reusable array.
	batch := params
	batch.Rotation = builder.RotationPVH
	batch.ReceiverFunctions = false
	rows := builder.NewRFArray(geometry.Len(), batch.Samples)
	if err := sim.RunBatch(context.Background(), model, geometry, batch, 0.05, 0.5, rows); err != nil {
		fmt.Printf("Error running batch: %v\n", err)
		return
	}
	fmt.Printf("batch: %d traces x 2 rows of %d samples\n", rows.Traces, rows.Samples)

	f, err := os.Create("rfs.txt")
	if err != nil {
		fmt.Printf("Error creating output: %v\n", err)
		return
	}
	defer f.Close()
	if err := builder.WriteReceiverFunctions(f, streams.RFs); err != nil {
		fmt.Printf("Error writing receiver functions: %v\n", err)
	}
}
