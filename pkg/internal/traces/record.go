package traces

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Station and Network label synthetic records.
const (
	Station = "synt"
	Network = ""
)

// Record holds the three component seismograms of one trace. It owns its
// arrays.
type Record struct {
	Data        [3][]float64
	Channels    [3]string // "BH" + component letter
	Delta       float64   // s
	Shift       float64   // s
	Backazimuth float64   // deg
	Slowness    float64   // s/km
	WaveType    types.WaveType
	StartTime   time.Time
}

// Samples returns the number of samples per component.
func (r *Record) Samples() int { return len(r.Data[0]) }

// TimeAxis returns i*Delta - Shift for every sample.
func (r *Record) TimeAxis() []float64 {
	axis := make([]float64, r.Samples())
	for i := range axis {
		axis[i] = float64(i)*r.Delta - r.Shift
	}
	return axis
}

// Component returns the seismogram whose channel ends in letter.
func (r *Record) Component(letter string) ([]float64, error) {
	for i, ch := range r.Channels {
		if strings.HasSuffix(ch, letter) {
			return r.Data[i], nil
		}
	}
	return nil, fmt.Errorf("no component %q in channels %v: %w", letter, r.Channels, types.ErrInvalidArgument)
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	out := *r
	for i := range r.Data {
		out.Data[i] = append([]float64(nil), r.Data[i]...)
	}
	return &out
}
