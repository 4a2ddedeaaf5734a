package solver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Bridge turns a model, a geometry and run settings into one solver call.
type Bridge struct {
	componentMetadata types.ComponentMetadata

	solver     Solver
	maxSamples int

	loggers     []types.Logger
	loggersLock sync.Mutex
	meter       types.Meter
}

// NewBridge wraps solver.
func NewBridge(solver Solver, options ...types.Option[*Bridge]) *Bridge {
	b := &Bridge{
		solver:     solver,
		maxSamples: DefaultMaxSamples,
		loggers:    make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "SOLVER_BRIDGE",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Invoke validates params, exports both views and performs exactly one
// synchronous solver call. Errors raised by the solver are returned as is.
func (b *Bridge) Invoke(ctx context.Context, m *model.Model, g *geometry.Geometry, params Params) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if b.solver == nil {
		return Output{}, fmt.Errorf("no solver configured: %w", types.ErrInvalidArgument)
	}
	if m == nil || g == nil {
		return Output{}, fmt.Errorf("model and geometry are required: %w", types.ErrInvalidArgument)
	}
	if err := params.Validate(); err != nil {
		return Output{}, err
	}
	if params.Samples > b.maxSamples {
		return Output{}, fmt.Errorf("%d samples exceed solver capacity %d: %w", params.Samples, b.maxSamples, types.ErrInvalidArgument)
	}

	mv, err := m.Export()
	if err != nil {
		return Output{}, err
	}
	gv, err := g.Export()
	if err != nil {
		return Output{}, err
	}

	req := Request{
		Model:      mv,
		Geometry:   gv,
		Layers:     mv.Layers,
		Traces:     gv.Traces,
		WaveType:   params.WaveType,
		Multiples:  int(params.Multiples),
		Samples:    params.Samples,
		Delta:      params.Delta,
		Align:      int(params.Align),
		Shift:      params.ResolvedShift(),
		Rotation:   int(params.Rotation),
		Verbose:    params.Verbose,
		MaxSamples: b.maxSamples,
	}

	b.count(types.MetricSolverCallCount)
	b.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: PENDING, event: CallSeisSpread, layers: %d, traces: %d, samples: %d => Calling solver", b.componentMetadata, req.Layers, req.Traces, req.Samples)

	start := time.Now()
	out, err := b.solver.CallSeisSpread(req)
	elapsed := time.Since(start)
	if b.meter != nil {
		b.meter.ObserveDuration(types.MetricSolverElapsed, elapsed)
	}
	if err != nil {
		b.count(types.MetricSolverErrorCount)
		b.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: CallSeisSpread, error: %v => Solver failed", b.componentMetadata, err)
		return Output{}, err
	}
	if err := out.Check(req.Samples, req.Traces); err != nil {
		b.count(types.MetricSolverErrorCount)
		return Output{}, err
	}

	b.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: CallSeisSpread, traces: %d, elapsed: %s => Solver returned", b.componentMetadata, req.Traces, elapsed)
	return out, nil
}

// MaxSamples returns the sample capacity the bridge assumes for the solver.
func (b *Bridge) MaxSamples() int { return b.maxSamples }

func (b *Bridge) GetComponentMetadata() types.ComponentMetadata { return b.componentMetadata }

func (b *Bridge) count(name string) {
	if b.meter != nil {
		b.meter.IncrementCount(name)
	}
}

// ConnectLogger attaches loggers to the bridge.
func (b *Bridge) ConnectLogger(l ...types.Logger) {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	b.loggers = append(b.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (b *Bridge) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	b.loggersLock.Lock()
	loggers := append([]types.Logger(nil), b.loggers...)
	b.loggersLock.Unlock()
	if len(loggers) == 0 {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		}
	}
}
