package main

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true), builder.LoggerWithLevel("debug"))
	defer logger.Flush()

	// Add a file sink
	fileSinkConfig := builder.SinkConfig{
		Type: string(builder.FileSink),
		Config: map[string]interface{}{
			"path": "logs/output.log",
		},
	}
	if err := logger.AddSink("fileSink", fileSinkConfig); err != nil {
		fmt.Printf("Failed to add file sink: %v\n", err)
		return
	}

	model, err := builder.NewModel(
		[]float64{35000, 0},
		[]float64{2800, 3300},
		[]float64{6400, 8100},
		[]float64{3600, 4600},
		builder.ModelWithLogger(logger),
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}
	geometry, err := builder.NewGrid([]float64{0, 90, 180, 270}, []float64{0.06}, builder.GeometryWithLogger(logger))
	if err != nil {
		fmt.Printf("Error creating geometry: %v\n", err)
		return
	}

	sim := builder.NewSimulator(
		builder.SimulatorWithSolver(builder.ImpulseSolver([3]float64{0.4, 0, 1})),
		builder.SimulatorWithLogger(logger),
	)
	params := builder.DefaultParams()
	params.Rotation = builder.RotationRTZ
	params.ReceiverFunctions = true

	if _, err := sim.Run(context.Background(), model, geometry, params); err != nil {
		fmt.Printf("Error running simulation: %v\n", err)
		return
	}

	sinks, _ := logger.ListSinks()
	fmt.Printf("Logged to sinks: %v\n", sinks)
}
