package rf

import (
	"context"
	"fmt"
	"sync"

	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/traces"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
	"github.com/mjibson/go-dsp/fft"
	"golang.org/x/sync/errgroup"
)

// BatchOrder is the Butterworth order of the batch pipeline band pass.
const BatchOrder = 2

// Engine computes receiver functions by spectral division and filters them.
type Engine struct {
	componentMetadata types.ComponentMetadata

	cache       *filter.Cache
	concurrency int

	loggers     []types.Logger
	loggersLock sync.Mutex
	meter       types.Meter
}

// NewEngine returns an engine with its own filter cache, working on one
// trace at a time.
func NewEngine(options ...types.Option[*Engine]) *Engine {
	e := &Engine{
		concurrency: 1,
		loggers:     make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "RF_ENGINE",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.cache == nil {
		e.cache = filter.NewCache()
	}
	return e
}

// Cache returns the filter cache shared by all calls on e.
func (e *Engine) Cache() *filter.Cache { return e.cache }

// components returns the radial, transverse and vertical letters.
func components(rotation types.Rotation) ([3]string, error) {
	switch rotation {
	case types.RotationRTZ:
		return [3]string{"R", "T", "Z"}, nil
	case types.RotationPVH:
		return [3]string{"V", "H", "P"}, nil
	case types.RotationNEZ:
		return [3]string{}, fmt.Errorf("receiver functions cannot be calculated with rotation 0: %w", types.ErrInvalidArgument)
	}
	return [3]string{}, fmt.Errorf("invalid rotation %d: %w", int(rotation), types.ErrInvalidArgument)
}

// Calculate deconvolves every record. For P waves the radial and transverse
// components are divided by the vertical; for SV the vertical is divided by
// the radial and for SH by the transverse, negated, leaving the other trace
// zero. Output order follows records.
func (e *Engine) Calculate(ctx context.Context, records []*traces.Record, wave types.WaveType, rotation types.Rotation) ([]*Pair, error) {
	cmpts, err := components(rotation)
	if err != nil {
		return nil, err
	}
	if !wave.Valid() {
		return nil, fmt.Errorf("wave type %q invalid: %w", string(wave), types.ErrInvalidArgument)
	}

	pairs := make([]*Pair, len(records))
	err = e.each(ctx, len(records), func(i int) error {
		p, err := deconvolveRecord(records[i], wave, cmpts)
		if err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
		pairs[i] = p
		return nil
	})
	if err != nil {
		e.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Calculate, error: %v => Receiver functions failed", e.componentMetadata, err)
		return nil, err
	}

	e.add(types.MetricReceiverFunctionCount, uint64(len(pairs)))
	e.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: Calculate, traces: %d, wave: %s => Receiver functions calculated", e.componentMetadata, len(pairs), wave)
	return pairs, nil
}

func deconvolveRecord(r *traces.Record, wave types.WaveType, cmpts [3]string) (*Pair, error) {
	rad, err := r.Component(cmpts[0])
	if err != nil {
		return nil, err
	}
	tra, err := r.Component(cmpts[1])
	if err != nil {
		return nil, err
	}
	ver, err := r.Component(cmpts[2])
	if err != nil {
		return nil, err
	}

	fr, ft, fz := fft.FFTReal(rad), fft.FFTReal(tra), fft.FFTReal(ver)
	p := &Pair{
		Radial:      make([]float64, len(rad)),
		Transverse:  make([]float64, len(tra)),
		Channels:    [2]string{"RF" + cmpts[0], "RF" + cmpts[1]},
		Delta:       r.Delta,
		Backazimuth: r.Backazimuth,
		Slowness:    r.Slowness,
		WaveType:    wave,
		StartTime:   r.StartTime,
	}
	switch wave {
	case types.WaveP:
		p.Radial = deconvolve(fr, fz, 1)
		p.Transverse = deconvolve(ft, fz, 1)
	case types.WaveSV:
		p.Radial = deconvolve(fz, fr, -1)
	case types.WaveSH:
		p.Transverse = deconvolve(fz, ft, -1)
	}
	return p, nil
}

// Filter returns copies of pairs with spec applied to both traces.
func (e *Engine) Filter(pairs []*Pair, spec filter.Spec) ([]*Pair, error) {
	designs, hits := e.cache.Designs(), e.cache.Hits()
	out := make([]*Pair, len(pairs))
	for i, p := range pairs {
		f := *p
		var err error
		if f.Radial, err = filter.Apply(e.cache, spec, p.Delta, p.Radial); err != nil {
			return nil, err
		}
		if f.Transverse, err = filter.Apply(e.cache, spec, p.Delta, p.Transverse); err != nil {
			return nil, err
		}
		out[i] = &f
	}
	e.add(types.MetricFilterDesignCount, e.cache.Designs()-designs)
	e.add(types.MetricFilterCacheHitCount, e.cache.Hits()-hits)
	return out, nil
}

// each runs fn for 0..n-1, fanning out over e.concurrency goroutines.
func (e *Engine) each(ctx context.Context, n int, fn func(i int) error) error {
	if e.concurrency <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (e *Engine) add(name string, delta uint64) {
	if e.meter != nil && delta > 0 {
		e.meter.AddToCount(name, delta)
	}
}

func (e *Engine) GetComponentMetadata() types.ComponentMetadata { return e.componentMetadata }

// ConnectLogger attaches loggers to the engine.
func (e *Engine) ConnectLogger(l ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	e.loggers = append(e.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (e *Engine) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()
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
