package model

import "gonum.org/v1/gonum/floats"

// Times returns the delay (s) of the direct P-to-S conversion at each
// interface for a vertically travelling ray: the running sum of h/Vs - h/Vp
// over the layers above it. The half-space has no entry.
func (m *Model) Times() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.layers) < 2 {
		return []float64{}
	}
	delay := make([]float64, len(m.layers))
	for i, l := range m.layers {
		delay[i] = l.Thickness/l.Vs - l.Thickness/l.Vp
	}
	cum := make([]float64, len(delay))
	floats.CumSum(cum, delay)
	return cum[:len(cum)-1]
}
