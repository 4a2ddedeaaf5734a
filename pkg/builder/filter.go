package builder

import (
	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type FilterSpec = filter.Spec

type FilterKind = filter.Kind

type FilterCache = filter.Cache

// RFArray holds batch receiver functions in (trace, component, sample) order.
type RFArray = rf.Array

const (
	Bandpass = filter.Bandpass
	Lowpass  = filter.Lowpass
	Highpass = filter.Highpass
)

// NewFilterCache returns an empty design cache to share between engines.
func NewFilterCache() *filter.Cache {
	return filter.NewCache()
}

// NewRFArray allocates the destination of Simulator.RunBatch and
// Engine.FilteredArray.
func NewRFArray(traces, samples int) *rf.Array {
	return rf.NewArray(traces, samples)
}

func NewEngine(options ...types.Option[*rf.Engine]) *rf.Engine {
	return rf.NewEngine(options...)
}

func EngineWithCache(cache *filter.Cache) types.Option[*rf.Engine] {
	return rf.WithCache(cache)
}

// EngineWithConcurrency bounds the number of traces deconvolved at once.
func EngineWithConcurrency(n int) types.Option[*rf.Engine] {
	return rf.WithConcurrency(n)
}

func EngineWithLogger(l ...types.Logger) types.Option[*rf.Engine] {
	return rf.WithLogger(l...)
}

func EngineWithMeter(m types.Meter) types.Option[*rf.Engine] {
	return rf.WithMeter(m)
}
