package geometry

import "github.com/joeydtaylor/raysum/pkg/internal/types"

// WithOffsets sets the north and east station offsets in m. A single value
// applies to every trace.
func WithOffsets(north, east []float64) types.Option[*Geometry] {
	return func(g *Geometry) {
		g.pendingNorth = append([]float64(nil), north...)
		g.pendingEast = append([]float64(nil), east...)
	}
}

// WithCapacity overrides the trace capacity (maxtr) of the solver build.
func WithCapacity(capacity int) types.Option[*Geometry] {
	return func(g *Geometry) {
		if capacity > 0 {
			g.capacity = capacity
		}
	}
}

func WithLogger(l ...types.Logger) types.Option[*Geometry] {
	return func(g *Geometry) {
		g.ConnectLogger(l...)
	}
}

func WithName(name string) types.Option[*Geometry] {
	return func(g *Geometry) {
		g.componentMetadata.Name = name
	}
}
