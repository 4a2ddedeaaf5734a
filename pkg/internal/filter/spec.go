package filter

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// DefaultCorners is the filter order used when a Spec leaves it unset.
const DefaultCorners = 4

// Spec describes a filter in physical units, the way seismograms are
// usually filtered: a band pass between FreqMin and FreqMax, or a low or high
// pass at Freq, all in Hz.
type Spec struct {
	Kind      Kind
	Freq      float64
	FreqMin   float64
	FreqMax   float64
	Corners   int
	ZeroPhase bool
}

// Normalized returns the Nyquist-normalized corners of s for sampling
// interval delta.
func (s Spec) Normalized(delta float64) ([]float64, error) {
	if !(delta > 0) {
		return nil, fmt.Errorf("sampling interval must be positive, got %v: %w", delta, types.ErrInvalidArgument)
	}
	nyquist := 0.5 / delta
	switch s.Kind {
	case Bandpass:
		return []float64{s.FreqMin / nyquist, s.FreqMax / nyquist}, nil
	case Lowpass, Highpass:
		return []float64{s.Freq / nyquist}, nil
	}
	return nil, fmt.Errorf("unknown filter kind %q: %w", string(s.Kind), types.ErrInvalidArgument)
}

func (s Spec) order() int {
	if s.Corners <= 0 {
		return DefaultCorners
	}
	return s.Corners
}

// Apply filters x according to s and returns the result. Designs come from
// cache when it is non-nil.
func Apply(cache *Cache, s Spec, delta float64, x []float64) ([]float64, error) {
	corners, err := s.Normalized(delta)
	if err != nil {
		return nil, err
	}
	var c Coefficients
	if cache != nil {
		c, err = cache.Butterworth(s.order(), s.Kind, corners...)
	} else {
		c, err = Butterworth(s.order(), s.Kind, corners...)
	}
	if err != nil {
		return nil, err
	}
	if s.ZeroPhase {
		return ZeroPhase(c, x), nil
	}
	return LFilter(c, x), nil
}
