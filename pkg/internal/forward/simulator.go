package forward

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/traces"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Simulator runs the forward pipeline: solver call, unpacking and, on
// request, receiver functions.
type Simulator struct {
	componentMetadata types.ComponentMetadata

	solver     solver.Solver
	maxSamples int
	engine     *rf.Engine
	clock      func() time.Time

	bridge   *solver.Bridge
	unpacker *traces.Unpacker

	loggers     []types.Logger
	loggersLock sync.Mutex
	meter       types.Meter
}

// NewSimulator assembles a simulator. Without WithSolver every Run fails.
func NewSimulator(options ...types.Option[*Simulator]) *Simulator {
	s := &Simulator{
		maxSamples: solver.DefaultMaxSamples,
		clock:      time.Now,
		loggers:    make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "SIMULATOR",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	s.bridge = solver.NewBridge(s.solver,
		solver.WithMaxSamples(s.maxSamples),
		solver.WithLogger(s.loggers...),
		solver.WithMeter(s.meter),
	)
	s.unpacker = traces.NewUnpacker(
		traces.WithClock(s.clock),
		traces.WithLogger(s.loggers...),
		traces.WithMeter(s.meter),
	)
	if s.engine == nil {
		s.engine = rf.NewEngine(rf.WithLogger(s.loggers...), rf.WithMeter(s.meter))
	}
	return s
}

// Run simulates g through m with params and returns the unpacked streams,
// plus receiver functions when params.ReceiverFunctions is set.
func (s *Simulator) Run(ctx context.Context, m *model.Model, g *geometry.Geometry, params solver.Params) (*StreamList, error) {
	out, err := s.Invoke(ctx, m, g, params)
	if err != nil {
		return nil, err
	}

	records, err := s.unpacker.Unpack(out, traces.Layout{
		Traces:   g.Len(),
		Samples:  params.Samples,
		Delta:    params.Delta,
		Shift:    params.ResolvedShift(),
		Rotation: params.Rotation,
		WaveType: params.WaveType,
		Rays:     g.Pairs(),
	})
	if err != nil {
		return nil, err
	}

	sl := &StreamList{
		Model:    m,
		Geometry: g,
		Params:   params,
		Streams:  records,
		engine:   s.engine,
	}
	if params.ReceiverFunctions {
		if _, err := sl.CalculateRFs(ctx); err != nil {
			return nil, err
		}
	}

	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Run, traces: %d, samples: %d, rfs: %t => Forward run complete", s.componentMetadata, len(records), params.Samples, sl.RFs != nil)
	return sl, nil
}

// Invoke validates params and returns the raw solver output for g through
// m without unpacking it.
func (s *Simulator) Invoke(ctx context.Context, m *model.Model, g *geometry.Geometry, params solver.Params) (solver.Output, error) {
	if err := params.Validate(); err != nil {
		return solver.Output{}, err
	}
	return s.bridge.Invoke(ctx, m, g, params)
}

// RunBatch is the inversion path: one P-wave solver call in PVH rotation
// whose output is deconvolved and band passed between fmin and fmax (Hz)
// straight into dst, which must be shaped (g.Len(), 2, params.Samples).
func (s *Simulator) RunBatch(ctx context.Context, m *model.Model, g *geometry.Geometry, params solver.Params, fmin, fmax float64, dst *rf.Array) error {
	if params.Rotation != types.RotationPVH || params.WaveType != types.WaveP {
		return fmt.Errorf("batch receiver functions need wave P and rotation %d, got %s and %d: %w", types.RotationPVH, params.WaveType, params.Rotation, types.ErrInvalidArgument)
	}
	out, err := s.Invoke(ctx, m, g, params)
	if err != nil {
		return err
	}
	if err := s.engine.FilteredArray(ctx, out, g.Len(), params.Samples, params.Delta, fmin, fmax, dst); err != nil {
		return err
	}

	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: RunBatch, traces: %d, samples: %d, fmin: %g, fmax: %g => Batch run complete", s.componentMetadata, g.Len(), params.Samples, fmin, fmax)
	return nil
}

// Engine returns the receiver function engine used by Run.
func (s *Simulator) Engine() *rf.Engine { return s.engine }

func (s *Simulator) GetComponentMetadata() types.ComponentMetadata { return s.componentMetadata }

// ConnectLogger attaches loggers to the simulator. Loggers connected after
// construction do not reach the bridge, unpacker or engine.
func (s *Simulator) ConnectLogger(l ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (s *Simulator) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
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
