package rf

import (
	"github.com/mjibson/go-dsp/fft"
)

// deconvolve returns the real part of ifft(num/den), rotated so zero lag is
// in the middle. A negative sign flips num.
func deconvolve(num, den []complex128, sign float64) []float64 {
	q := make([]complex128, len(num))
	s := complex(sign, 0)
	for i := range q {
		q[i] = s * num[i] / den[i]
	}
	return fftshift(realPart(fft.IFFT(q)))
}

func realPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

// fftshift rolls x by len(x)/2.
func fftshift(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i, v := range x {
		out[(i+n/2)%n] = v
	}
	return out
}
