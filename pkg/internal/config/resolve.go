package config

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/forward"
	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Params converts the run section into validated solver settings.
func (c *Config) Params() (solver.Params, error) {
	p := solver.Params{
		WaveType:          types.WaveType(c.Run.WaveType),
		Multiples:         types.Multiples(c.Run.Multiples),
		Samples:           c.Run.Samples,
		Delta:             c.Run.Delta,
		Align:             types.Alignment(c.Run.Align),
		Rotation:          types.Rotation(c.Run.Rotation),
		Verbose:           c.Run.Verbose,
		ReceiverFunctions: c.Run.ReceiverFunctions,
	}
	if c.Run.Shift != nil {
		shift := *c.Run.Shift
		p.Shift = &shift
	}
	if err := p.Validate(); err != nil {
		return solver.Params{}, err
	}
	return p, nil
}

// LoadModel reads the model file and applies the configured edit commands
// in order.
func (c *Config) LoadModel(options ...types.Option[*model.Model]) (*model.Model, error) {
	if c.Model.File == "" {
		return nil, fmt.Errorf("model.file is required: %w", types.ErrInvalidArgument)
	}
	opts := append([]types.Option[*model.Model]{model.WithCapacity(c.Model.Capacity)}, options...)
	m, err := model.ReadFile(c.Model.File, opts...)
	if err != nil {
		return nil, err
	}
	for _, cmd := range c.Model.Commands {
		if err := m.ApplyCommand(cmd); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadGeometry reads the geometry file or builds the inline arrays.
func (c *Config) LoadGeometry(options ...types.Option[*geometry.Geometry]) (*geometry.Geometry, error) {
	gc := c.Geometry
	opts := []types.Option[*geometry.Geometry]{geometry.WithCapacity(gc.Capacity)}
	if gc.File != "" {
		if len(gc.Backazimuth) > 0 || len(gc.Slowness) > 0 {
			return nil, fmt.Errorf("geometry.file excludes inline rays: %w", types.ErrInvalidArgument)
		}
		return geometry.ReadFile(gc.File, append(opts, options...)...)
	}

	if len(gc.North) > 0 || len(gc.East) > 0 {
		opts = append(opts, geometry.WithOffsets(gc.North, gc.East))
	}
	opts = append(opts, options...)
	switch gc.Mode {
	case "", "grid":
		return geometry.NewGrid(gc.Backazimuth, gc.Slowness, opts...)
	case "pairs":
		return geometry.NewPairs(gc.Backazimuth, gc.Slowness, opts...)
	}
	return nil, fmt.Errorf("geometry.mode %q is neither grid nor pairs: %w", gc.Mode, types.ErrInvalidArgument)
}

// FilterSpec returns the configured post-run filter. ok is false when the
// run file has no filter section.
func (c *Config) FilterSpec() (target forward.Target, spec filter.Spec, ok bool, err error) {
	if c.Filter == nil {
		return "", filter.Spec{}, false, nil
	}
	f := c.Filter
	target = forward.Target(f.Target)
	if target == "" {
		target = forward.TargetAll
	}
	switch target {
	case forward.TargetStreams, forward.TargetRFs, forward.TargetAll:
	default:
		return "", filter.Spec{}, false, fmt.Errorf("filter.target %q has to be either streams, rfs or all: %w", f.Target, types.ErrInvalidArgument)
	}
	spec = filter.Spec{
		Kind:      filter.Kind(f.Kind),
		Freq:      f.Freq,
		FreqMin:   f.FreqMin,
		FreqMax:   f.FreqMax,
		Corners:   f.Corners,
		ZeroPhase: f.ZeroPhase,
	}
	switch spec.Kind {
	case filter.Bandpass, filter.Lowpass, filter.Highpass:
	default:
		return "", filter.Spec{}, false, fmt.Errorf("filter.kind %q: %w", f.Kind, types.ErrInvalidArgument)
	}
	return target, spec, true, nil
}

// BatchBand returns the batch corners, or ok false when no batch block is
// set. Both corners must lie strictly between 0 and the Nyquist frequency of
// run.delta, fmin below fmax.
func (c *Config) BatchBand() (fmin, fmax float64, ok bool, err error) {
	if c.Batch == nil {
		return 0, 0, false, nil
	}
	fmin, fmax = c.Batch.FreqMin, c.Batch.FreqMax
	nyquist := 0.5 / c.Run.Delta
	if c.Run.Delta <= 0 || fmin <= 0 || fmax <= fmin || fmax >= nyquist {
		return 0, 0, false, fmt.Errorf("batch band [%g, %g] Hz must satisfy 0 < fmin < fmax < %g: %w", fmin, fmax, nyquist, types.ErrInvalidArgument)
	}
	return fmin, fmax, true, nil
}
