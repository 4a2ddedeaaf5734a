package rf

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Pair is the radial and transverse receiver function of one trace.
type Pair struct {
	Radial      []float64
	Transverse  []float64
	Channels    [2]string // "RF" + component letter
	Delta       float64
	Backazimuth float64
	Slowness    float64
	WaveType    types.WaveType
	StartTime   time.Time
}

// Samples returns the number of samples of each trace.
func (p *Pair) Samples() int { return len(p.Radial) }

// TimeAxis returns the lag of every sample. Zero lag sits in the middle.
func (p *Pair) TimeAxis() []float64 {
	n := p.Samples()
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = (float64(i) - float64(n)/2) * p.Delta
	}
	return axis
}
