package rf

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/mjibson/go-dsp/fft"
)

// Array holds filtered receiver functions in (trace, component, sample)
// order, component 0 radial and 1 transverse. It is reused across calls.
type Array struct {
	Traces  int
	Samples int
	Data    []float64
}

// NewArray allocates a zeroed (traces, 2, samples) array.
func NewArray(traces, samples int) *Array {
	return &Array{Traces: traces, Samples: samples, Data: make([]float64, traces*2*samples)}
}

// Row returns the samples of component k of trace n. The slice aliases Data.
func (a *Array) Row(n, k int) []float64 {
	start := (n*2 + k) * a.Samples
	return a.Data[start : start+a.Samples]
}

// At returns sample s of component k of trace n.
func (a *Array) At(n, k, s int) float64 { return a.Data[(n*2+k)*a.Samples+s] }

// FilteredArray is the batch pipeline used by inversions: it reads the raw
// solver output in PVH order, divides V and H by P in the frequency domain,
// removes the mean and applies a zero-phase order 2 band pass between fmin
// and fmax (Hz). Results are written into dst, which must be shaped
// (ntr, 2, npts). The band pass design is cached per corner pair.
func (e *Engine) FilteredArray(ctx context.Context, out solver.Output, ntr, npts int, dt, fmin, fmax float64, dst *Array) error {
	if dst == nil || dst.Traces != ntr || dst.Samples != npts || len(dst.Data) != ntr*2*npts {
		return fmt.Errorf("destination must be shaped (%d, 2, %d): %w", ntr, npts, types.ErrInvalidArgument)
	}
	if ntr <= 0 || npts <= 0 {
		return fmt.Errorf("need positive traces and samples, got %d and %d: %w", ntr, npts, types.ErrInvalidArgument)
	}
	if err := out.Check(npts, ntr); err != nil {
		return err
	}

	designs, hits := e.cache.Designs(), e.cache.Hits()
	coeffs, err := e.cache.Butterworth(BatchOrder, filter.Bandpass, 2*dt*fmin, 2*dt*fmax)
	if err != nil {
		return err
	}
	e.add(types.MetricFilterDesignCount, e.cache.Designs()-designs)
	e.add(types.MetricFilterCacheHitCount, e.cache.Hits()-hits)

	err = e.each(ctx, ntr, func(n int) error {
		var spectra [3][]complex128
		for c := range spectra {
			column := make([]float64, npts)
			for s := range column {
				column[s] = out.At(c, s, n)
			}
			spectra[c] = fft.FFTReal(column)
		}
		for k := 0; k < 2; k++ {
			row := deconvolve(spectra[k+1], spectra[0], 1)
			filter.Demean(row)
			copy(dst.Row(n, k), filter.ZeroPhase(coeffs, row))
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.add(types.MetricFilteredRowCount, uint64(2*ntr))
	e.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: FilteredArray, traces: %d, samples: %d, fmin: %g, fmax: %g => Batch receiver functions filtered", e.componentMetadata, ntr, npts, fmin, fmax)
	return nil
}
