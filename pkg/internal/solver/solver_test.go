package solver_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

func fixtures(t *testing.T) (*model.Model, *geometry.Geometry) {
	t.Helper()
	m, err := model.New([]float64{30000, 0}, []float64{2800, 3300}, []float64{6000, 8000}, []float64{3600, 4500})
	if err != nil {
		t.Fatalf("model.New error: %v", err)
	}
	g, err := geometry.NewGrid([]float64{0, 90, 180}, []float64{0.06, 0.08})
	if err != nil {
		t.Fatalf("geometry.NewGrid error: %v", err)
	}
	return m, g
}

func TestParams_Validate(t *testing.T) {
	if err := solver.DefaultParams().Validate(); err != nil {
		t.Fatalf("default params should validate, got %v", err)
	}

	nan := math.NaN()
	cases := map[string]func(*solver.Params){
		"wave type":   func(p *solver.Params) { p.WaveType = "Love" },
		"multiples":   func(p *solver.Params) { p.Multiples = 3 },
		"samples":     func(p *solver.Params) { p.Samples = 0 },
		"delta":       func(p *solver.Params) { p.Delta = 0 },
		"align":       func(p *solver.Params) { p.Align = 0 },
		"rotation":    func(p *solver.Params) { p.Rotation = 3 },
		"shift":       func(p *solver.Params) { p.Shift = &nan },
		"rf with NEZ": func(p *solver.Params) { p.ReceiverFunctions = true },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := solver.DefaultParams()
			mutate(&p)
			if err := p.Validate(); !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestParams_ResolvedShift(t *testing.T) {
	p := solver.DefaultParams()
	if p.ResolvedShift() != p.Delta {
		t.Fatalf("unset shift should equal delta, got %v", p.ResolvedShift())
	}
	zero := 0.0
	p.Shift = &zero
	if p.ResolvedShift() != 0 {
		t.Fatalf("explicit zero shift must be kept, got %v", p.ResolvedShift())
	}
}

func TestOutput_ColumnMajor(t *testing.T) {
	out := solver.NewOutput(4, 2)
	out.Set(2, 3, 1, 7)
	if out.Traces[2+3*(3+4*1)] != 7 {
		t.Fatalf("Set did not use (component, sample, trace) column-major layout")
	}
	if out.At(2, 3, 1) != 7 || out.At(0, 3, 1) != 0 {
		t.Fatalf("At does not mirror Set")
	}
	if err := out.Check(5, 1); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected capacity error, got %v", err)
	}
}

func TestBridge_Invoke_BuildsRequest(t *testing.T) {
	m, g := fixtures(t)
	var got solver.Request
	calls := 0
	stub := solver.Func(func(req solver.Request) (solver.Output, error) {
		calls++
		got = req
		return solver.NewOutput(req.MaxSamples, req.Geometry.Capacity), nil
	})

	b := solver.NewBridge(stub, solver.WithMaxSamples(1000))
	p := solver.DefaultParams()
	p.Rotation = types.RotationRTZ
	if _, err := b.Invoke(context.Background(), m, g, p); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one solver call, got %d", calls)
	}
	if got.Layers != 2 || got.Traces != 6 || got.MaxSamples != 1000 {
		t.Fatalf("unexpected request sizes: %+v", got)
	}
	if got.Shift != p.Delta || got.Rotation != 1 || got.WaveType != types.WaveP {
		t.Fatalf("unexpected request params: shift=%v rot=%d wave=%s", got.Shift, got.Rotation, got.WaveType)
	}
	if len(got.Model.Thickness) != model.DefaultCapacity || len(got.Geometry.Backazimuth) != geometry.DefaultCapacity {
		t.Fatalf("views not padded to capacity")
	}
}

func TestBridge_Invoke_SolverErrorVerbatim(t *testing.T) {
	m, g := fixtures(t)
	boom := errors.New("seis_spread: ray did not converge")
	meter := &fakeMeter{counts: map[string]uint64{}}
	b := solver.NewBridge(solver.Func(func(solver.Request) (solver.Output, error) {
		return solver.Output{}, boom
	}), solver.WithMeter(meter))

	_, err := b.Invoke(context.Background(), m, g, solver.DefaultParams())
	if err != boom {
		t.Fatalf("expected solver error unchanged, got %v", err)
	}
	if meter.counts[types.MetricSolverCallCount] != 1 || meter.counts[types.MetricSolverErrorCount] != 1 {
		t.Fatalf("unexpected counts: %v", meter.counts)
	}
}

func TestBridge_Invoke_RejectsBeforeCalling(t *testing.T) {
	m, g := fixtures(t)
	called := false
	b := solver.NewBridge(solver.Func(func(req solver.Request) (solver.Output, error) {
		called = true
		return solver.NewOutput(req.MaxSamples, req.Geometry.Capacity), nil
	}), solver.WithMaxSamples(100))

	p := solver.DefaultParams()
	p.ReceiverFunctions = true
	if _, err := b.Invoke(context.Background(), m, g, p); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for rf with rotation 0, got %v", err)
	}

	p = solver.DefaultParams()
	p.Samples = 101
	if _, err := b.Invoke(context.Background(), m, g, p); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for samples over capacity, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Invoke(ctx, m, g, solver.DefaultParams()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("solver must not be called for rejected input")
	}
}

func TestImpulse(t *testing.T) {
	m, g := fixtures(t)
	b := solver.NewBridge(solver.Impulse([3]float64{0.5, 0, 1}))
	p := solver.DefaultParams()
	shift := 0.25
	p.Shift = &shift

	out, err := b.Invoke(context.Background(), m, g, p)
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	for tr := 0; tr < g.Len(); tr++ {
		if out.At(0, 10, tr) != 0.5 || out.At(2, 10, tr) != 1 || out.At(1, 10, tr) != 0 {
			t.Fatalf("trace %d: spike missing at sample 10", tr)
		}
		if out.At(2, 9, tr) != 0 {
			t.Fatalf("trace %d: unexpected energy before the spike", tr)
		}
	}
}

type fakeMeter struct {
	counts map[string]uint64
}

func (f *fakeMeter) IncrementCount(name string)                    { f.counts[name]++ }
func (f *fakeMeter) AddToCount(name string, delta uint64)          { f.counts[name] += delta }
func (f *fakeMeter) GetMetricCount(name string) uint64             { return f.counts[name] }
func (f *fakeMeter) ObserveDuration(string, time.Duration)         {}
func (f *fakeMeter) Snapshot() types.MetricsSnapshot               { return types.MetricsSnapshot{} }
func (f *fakeMeter) GetComponentMetadata() types.ComponentMetadata { return types.ComponentMetadata{} }

func TestLoadPlugin_MissingFile(t *testing.T) {
	s, err := solver.LoadPlugin("testdata/no-such-solver.so")
	if err == nil || s != nil {
		t.Fatalf("expected error for missing plugin, got %v, %v", s, err)
	}
}
