package traces

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Summary describes one component of a record.
type Summary struct {
	Channel      string
	DominantFreq float64 // Hz, strongest bin of the one-sided spectrum
	Energy       float64 // sum of squared samples
	Peak         float64 // sample with the largest magnitude, signed
	PeakTime     float64 // s, on the TimeAxis of the record
}

// Summarize returns one Summary per component.
func (r *Record) Summarize() [3]Summary {
	var out [3]Summary
	for c, x := range r.Data {
		out[c] = summarize(x, r.Delta, r.Shift)
		out[c].Channel = r.Channels[c]
	}
	return out
}

func summarize(x []float64, delta, shift float64) Summary {
	var s Summary
	if len(x) == 0 {
		return s
	}
	s.Energy = floats.Dot(x, x)

	mag := make([]float64, len(x))
	for i, v := range x {
		mag[i] = math.Abs(v)
	}
	at := floats.MaxIdx(mag)
	s.Peak = x[at]
	s.PeakTime = float64(at)*delta - shift

	spectrum := fft.FFTReal(x)
	power := make([]float64, len(spectrum)/2+1)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i])
	}
	s.DominantFreq = float64(floats.MaxIdx(power)) / (float64(len(x)) * delta)
	return s
}
