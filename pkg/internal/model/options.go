package model

import "github.com/joeydtaylor/raysum/pkg/internal/types"

// WithFlags sets the per-layer isotropy flags (true is isotropic).
func WithFlags(isotropic ...bool) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.flags = append([]bool(nil), isotropic...)
		}
	}
}

// WithAnisotropy sets the per-layer anisotropy in percent.
func WithAnisotropy(values ...float64) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.anisotropy = append([]float64(nil), values...)
		}
	}
}

// WithTrend sets the symmetry axis trend in degrees.
func WithTrend(values ...float64) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.trend = append([]float64(nil), values...)
		}
	}
}

// WithPlunge sets the symmetry axis plunge in degrees.
func WithPlunge(values ...float64) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.plunge = append([]float64(nil), values...)
		}
	}
}

// WithStrike sets the interface strike in degrees.
func WithStrike(values ...float64) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.strike = append([]float64(nil), values...)
		}
	}
}

// WithDip sets the interface dip in degrees.
func WithDip(values ...float64) types.Option[*Model] {
	return func(m *Model) {
		if m.init != nil {
			m.init.dip = append([]float64(nil), values...)
		}
	}
}

// WithCapacity sets the maximum number of layers the solver accepts.
func WithCapacity(capacity int) types.Option[*Model] {
	return func(m *Model) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

// WithLogger connects loggers to the model.
func WithLogger(l ...types.Logger) types.Option[*Model] {
	return func(m *Model) {
		m.ConnectLogger(l...)
	}
}

// WithMeter counts model edits on meter.
func WithMeter(meter types.Meter) types.Option[*Model] {
	return func(m *Model) {
		m.meter = meter
	}
}

// WithName sets the component name used in log lines.
func WithName(name string) types.Option[*Model] {
	return func(m *Model) {
		m.componentMetadata.Name = name
	}
}
