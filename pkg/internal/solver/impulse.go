package solver

import "math"

// Impulse returns a deterministic stand-in for the native solver. Every
// trace gets one spike per component at the alignment sample round(shift/dt),
// scaled by amplitude. It serves tests and dry runs without a native build.
func Impulse(amplitude [3]float64) Func {
	return func(req Request) (Output, error) {
		out := NewOutput(max(req.MaxSamples, req.Samples), max(req.Geometry.Capacity, req.Traces))
		at := int(math.Round(req.Shift / req.Delta))
		if at < 0 {
			at = 0
		}
		if at >= req.Samples {
			at = req.Samples - 1
		}
		for t := 0; t < req.Traces; t++ {
			for c := 0; c < 3; c++ {
				out.Set(c, at, t, amplitude[c])
			}
		}
		out.Aux = make([]float64, out.MaxTraces)
		return out, nil
	}
}
