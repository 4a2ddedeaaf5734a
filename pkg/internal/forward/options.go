package forward

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// WithSolver sets the native solver capability.
func WithSolver(s solver.Solver) types.Option[*Simulator] {
	return func(sim *Simulator) {
		sim.solver = s
	}
}

// WithMaxSamples sets the sample capacity of the solver build.
func WithMaxSamples(n int) types.Option[*Simulator] {
	return func(sim *Simulator) {
		if n > 0 {
			sim.maxSamples = n
		}
	}
}

// WithEngine sets the receiver function engine, e.g. to share its filter cache.
func WithEngine(e *rf.Engine) types.Option[*Simulator] {
	return func(sim *Simulator) {
		sim.engine = e
	}
}

// WithClock sets the source of record start times.
func WithClock(clock func() time.Time) types.Option[*Simulator] {
	return func(sim *Simulator) {
		if clock != nil {
			sim.clock = clock
		}
	}
}

func WithLogger(l ...types.Logger) types.Option[*Simulator] {
	return func(sim *Simulator) {
		sim.ConnectLogger(l...)
	}
}

func WithMeter(m types.Meter) types.Option[*Simulator] {
	return func(sim *Simulator) {
		sim.meter = m
	}
}

func WithName(name string) types.Option[*Simulator] {
	return func(sim *Simulator) {
		sim.componentMetadata.Name = name
	}
}
