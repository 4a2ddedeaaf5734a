package main

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))
	defer logger.Flush()

	model, err := builder.NewModel(
		[]float64{20000, 15000, 0},
		[]float64{2700, 2900, 3300},
		[]float64{6000, 6600, 8000},
		[]float64{3500, 3800, 4500},
		builder.ModelWithLogger(logger),
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}

	if err := model.ApplyCommand("t0+5;vp1=6.8;psp1=1.75"); err != nil {
		fmt.Printf("Error editing model: %v\n", err)
		return
	}
	if err := model.CombineLayers(0, 1); err != nil {
		fmt.Printf("Error combining layers: %v\n", err)
		return
	}

	fmt.Println("Edited model:")
	fmt.Print(model.String())
}
