package rf

import (
	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// WithCache shares a filter cache between engines.
func WithCache(cache *filter.Cache) types.Option[*Engine] {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithConcurrency sets how many traces are processed at once.
func WithConcurrency(n int) types.Option[*Engine] {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func WithLogger(l ...types.Logger) types.Option[*Engine] {
	return func(e *Engine) {
		e.ConnectLogger(l...)
	}
}

func WithMeter(m types.Meter) types.Option[*Engine] {
	return func(e *Engine) {
		e.meter = m
	}
}

func WithName(name string) types.Option[*Engine] {
	return func(e *Engine) {
		e.componentMetadata.Name = name
	}
}
