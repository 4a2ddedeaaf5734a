package solver

import "github.com/joeydtaylor/raysum/pkg/internal/types"

// WithMaxSamples sets the sample capacity (maxsamp) of the solver build.
func WithMaxSamples(n int) types.Option[*Bridge] {
	return func(b *Bridge) {
		if n > 0 {
			b.maxSamples = n
		}
	}
}

func WithLogger(l ...types.Logger) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.ConnectLogger(l...)
	}
}

func WithMeter(m types.Meter) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.meter = m
	}
}

func WithName(name string) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.componentMetadata.Name = name
	}
}
