package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/joeydtaylor/raysum/pkg/builder"
)

func main() {
	traces := flag.Int("traces", 400, "number of rays")
	samples := flag.Int("samples", 2000, "samples per trace")
	workers := flag.Int("workers", runtime.NumCPU(), "receiver function workers")
	flag.Parse()

	model, err := builder.NewModel(
		[]float64{35000, 0},
		[]float64{2800, 3300},
		[]float64{6400, 8100},
		[]float64{3600, 4600},
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}
	baz := make([]float64, *traces)
	for i := range baz {
		baz[i] = 360 * float64(i) / float64(*traces)
	}
	geometry, err := builder.NewGrid(baz, []float64{0.06})
	if err != nil {
		fmt.Printf("Error creating geometry: %v\n", err)
		return
	}

	params := builder.DefaultParams()
	params.Samples = *samples
	params.Rotation = builder.RotationRTZ
	params.ReceiverFunctions = true

	// The same filter cache serves both engines.
	cache := builder.NewFilterCache()
	for _, n := range []int{1, *workers} {
		sim := builder.NewSimulator(
			builder.SimulatorWithSolver(builder.ImpulseSolver([3]float64{0.3, 0, 1})),
			builder.SimulatorWithEngine(builder.NewEngine(
				builder.EngineWithConcurrency(n),
				builder.EngineWithCache(cache),
			)),
		)

		start := time.Now()
		streams, err := sim.Run(context.Background(), model, geometry, params)
		if err != nil {
			fmt.Printf("Error running simulation: %v\n", err)
			return
		}
		if err := streams.Filter(builder.TargetRFs, builder.FilterSpec{Kind: builder.Bandpass, FreqMin: 0.05, FreqMax: 0.5, Corners: 2, ZeroPhase: true}); err != nil {
			fmt.Printf("Error filtering: %v\n", err)
			return
		}
		fmt.Printf("workers=%-3d traces=%d samples=%d elapsed=%s\n", n, len(streams.RFs), *samples, time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("filter designs=%d cache hits=%d\n", cache.Designs(), cache.Hits())
}
