package filter

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// LFilter runs x through the filter c in direct form II transposed and
// returns the output. Coefficients are normalized by A[0]; a filter without
// a leading denominator term passes x through unchanged.
func LFilter(c Coefficients, x []float64) []float64 {
	if len(c.A) == 0 || c.A[0] == 0 {
		return append([]float64(nil), x...)
	}
	n := max(len(c.A), len(c.B))
	a := make([]float64, n)
	b := make([]float64, n)
	copy(a, c.A)
	copy(b, c.B)
	if a0 := a[0]; a0 != 1 {
		floats.Scale(1/a0, a)
		floats.Scale(1/a0, b)
	}

	y := make([]float64, len(x))
	state := make([]float64, n)
	for i, xi := range x {
		yi := b[0]*xi + state[0]
		for j := 1; j < n; j++ {
			state[j-1] = b[j]*xi + state[j] - a[j]*yi
		}
		y[i] = yi
	}
	return y
}

// ZeroPhase filters x forward, then filters the reversed result and
// reverses it back, cancelling the phase delay.
func ZeroPhase(c Coefficients, x []float64) []float64 {
	y := LFilter(c, x)
	slices.Reverse(y)
	y = LFilter(c, y)
	slices.Reverse(y)
	return y
}

// Demean subtracts the mean of x in place.
func Demean(x []float64) {
	if len(x) == 0 {
		return
	}
	floats.AddConst(-floats.Sum(x)/float64(len(x)), x)
}
