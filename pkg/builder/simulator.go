package builder

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/config"
	"github.com/joeydtaylor/raysum/pkg/internal/forward"
	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type Simulator = forward.Simulator

type StreamList = forward.StreamList

type Target = forward.Target

type Config = config.Config

type BatchConfig = config.BatchConfig

const (
	TargetStreams = forward.TargetStreams
	TargetRFs     = forward.TargetRFs
	TargetAll     = forward.TargetAll
)

func NewSimulator(options ...types.Option[*forward.Simulator]) *forward.Simulator {
	return forward.NewSimulator(options...)
}

func SimulatorWithSolver(s solver.Solver) types.Option[*forward.Simulator] {
	return forward.WithSolver(s)
}

func SimulatorWithMaxSamples(n int) types.Option[*forward.Simulator] {
	return forward.WithMaxSamples(n)
}

func SimulatorWithEngine(e *rf.Engine) types.Option[*forward.Simulator] {
	return forward.WithEngine(e)
}

func SimulatorWithClock(clock func() time.Time) types.Option[*forward.Simulator] {
	return forward.WithClock(clock)
}

func SimulatorWithLogger(l ...types.Logger) types.Option[*forward.Simulator] {
	return forward.WithLogger(l...)
}

func SimulatorWithMeter(m types.Meter) types.Option[*forward.Simulator] {
	return forward.WithMeter(m)
}

// LoadConfig reads a YAML run file and applies the RAYSUM_* overrides.
func LoadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

func DefaultConfig() *config.Config {
	return config.DefaultConfig()
}
