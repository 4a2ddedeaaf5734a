package solver

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// DefaultMaxSamples is the sample capacity (maxsamp) of the stock solver build.
const DefaultMaxSamples = 2000

// Request is everything one solver call receives. Model and Geometry are
// fixed-capacity views; the scalar fields are resolved Params.
type Request struct {
	Model    types.ModelArrays
	Geometry types.GeometryArrays

	Layers     int
	Traces     int
	WaveType   types.WaveType
	Multiples  int
	Samples    int
	Delta      float64
	Align      int
	Shift      float64
	Rotation   int
	Verbose    bool
	MaxSamples int
}

// Output is the raw solver result. Traces is a column-major
// (component, sample, trace) array of shape 3 x MaxSamples x MaxTraces; only
// the first Samples samples of the first Traces traces are meaningful. Aux is
// the second solver output and is not interpreted.
type Output struct {
	Traces     []float64
	Aux        []float64
	MaxSamples int
	MaxTraces  int
}

// NewOutput allocates a zeroed output of the given capacity.
func NewOutput(maxSamples, maxTraces int) Output {
	return Output{
		Traces:     make([]float64, 3*maxSamples*maxTraces),
		MaxSamples: maxSamples,
		MaxTraces:  maxTraces,
	}
}

func (o Output) index(c, s, t int) int {
	return c + 3*(s+o.MaxSamples*t)
}

// At returns component c of sample s of trace t.
func (o Output) At(c, s, t int) float64 {
	return o.Traces[o.index(c, s, t)]
}

// Set stores v at component c, sample s, trace t.
func (o Output) Set(c, s, t int, v float64) {
	o.Traces[o.index(c, s, t)] = v
}

// Check verifies that the output holds at least samples x traces.
func (o Output) Check(samples, traces int) error {
	if o.MaxSamples < samples || o.MaxTraces < traces {
		return fmt.Errorf("output capacity %dx%d smaller than %dx%d: %w", o.MaxSamples, o.MaxTraces, samples, traces, types.ErrInvalidArgument)
	}
	if len(o.Traces) < 3*o.MaxSamples*o.MaxTraces {
		return fmt.Errorf("output holds %d values, need %d: %w", len(o.Traces), 3*o.MaxSamples*o.MaxTraces, types.ErrInvalidArgument)
	}
	return nil
}

// Solver is the native ray-tracing capability.
type Solver interface {
	CallSeisSpread(req Request) (Output, error)
}

// Func adapts a plain function to Solver.
type Func func(req Request) (Output, error)

// CallSeisSpread calls f(req).
func (f Func) CallSeisSpread(req Request) (Output, error) {
	return f(req)
}
