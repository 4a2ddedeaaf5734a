package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Kind is the filter response.
type Kind string

const (
	Bandpass Kind = "bandpass"
	Lowpass  Kind = "lowpass"
	Highpass Kind = "highpass"
)

// Coefficients are the numerator B and denominator A of a digital IIR
// filter in transfer-function form, highest power first.
type Coefficients struct {
	B []float64
	A []float64
}

// zpk is a filter in zero-pole-gain form.
type zpk struct {
	z []complex128
	p []complex128
	k float64
}

// Butterworth designs a digital Butterworth filter of the given order.
// Corners are normalized to the Nyquist frequency and must lie in (0, 1):
// one corner for low and high pass, two increasing corners for band pass.
// A band pass of order N has 2N poles.
func Butterworth(order int, kind Kind, corners ...float64) (Coefficients, error) {
	if order < 1 {
		return Coefficients{}, fmt.Errorf("filter order must be at least 1, got %d: %w", order, types.ErrInvalidArgument)
	}
	if err := checkCorners(kind, corners); err != nil {
		return Coefficients{}, err
	}

	// Pre-warp the corners for the bilinear transform at fs = 2.
	const fs = 2.0
	warped := make([]float64, len(corners))
	for i, wn := range corners {
		warped[i] = 2 * fs * math.Tan(math.Pi*wn/fs)
	}

	f := prototype(order)
	switch kind {
	case Lowpass:
		f = f.lowpass(warped[0])
	case Highpass:
		f = f.highpass(warped[0])
	case Bandpass:
		f = f.bandpass(math.Sqrt(warped[0]*warped[1]), warped[1]-warped[0])
	}
	f = f.bilinear(fs)
	return f.transfer(), nil
}

func checkCorners(kind Kind, corners []float64) error {
	want := 1
	switch kind {
	case Bandpass:
		want = 2
	case Lowpass, Highpass:
	default:
		return fmt.Errorf("unknown filter kind %q: %w", string(kind), types.ErrInvalidArgument)
	}
	if len(corners) != want {
		return fmt.Errorf("%s needs %d corner(s), got %d: %w", kind, want, len(corners), types.ErrInvalidArgument)
	}
	for _, c := range corners {
		if !(c > 0 && c < 1) {
			return fmt.Errorf("normalized corner %v outside (0, 1): %w", c, types.ErrInvalidArgument)
		}
	}
	if want == 2 && corners[0] >= corners[1] {
		return fmt.Errorf("low corner %v not below high corner %v: %w", corners[0], corners[1], types.ErrInvalidArgument)
	}
	return nil
}

// prototype is the analog lowpass Butterworth of the given order with unit
// cutoff: no zeros, poles evenly spaced on the left half of the unit circle.
func prototype(order int) zpk {
	p := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		p = append(p, -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*order))))
	}
	return zpk{p: p, k: 1}
}

func (f zpk) degree() int { return len(f.p) - len(f.z) }

func (f zpk) lowpass(wo float64) zpk {
	w := complex(wo, 0)
	return zpk{
		z: scale(f.z, w),
		p: scale(f.p, w),
		k: f.k * math.Pow(wo, float64(f.degree())),
	}
}

func (f zpk) highpass(wo float64) zpk {
	w := complex(wo, 0)
	out := zpk{k: f.k * real(prod(neg(f.z))/prod(neg(f.p)))}
	for _, z := range f.z {
		out.z = append(out.z, w/z)
	}
	for _, p := range f.p {
		out.p = append(out.p, w/p)
	}
	for i := 0; i < f.degree(); i++ {
		out.z = append(out.z, 0)
	}
	return out
}

func (f zpk) bandpass(wo, bw float64) zpk {
	half := complex(bw/2, 0)
	w2 := complex(wo*wo, 0)
	split := func(roots []complex128) []complex128 {
		lo := make([]complex128, 0, 2*len(roots))
		hi := make([]complex128, 0, len(roots))
		for _, r := range roots {
			r *= half
			d := cmplx.Sqrt(r*r - w2)
			lo = append(lo, r+d)
			hi = append(hi, r-d)
		}
		return append(lo, hi...)
	}
	out := zpk{
		z: split(f.z),
		p: split(f.p),
		k: f.k * math.Pow(bw, float64(f.degree())),
	}
	for i := 0; i < f.degree(); i++ {
		out.z = append(out.z, 0)
	}
	return out
}

func (f zpk) bilinear(fs float64) zpk {
	fs2 := complex(2*fs, 0)
	out := zpk{k: f.k * real(prod(sub(fs2, f.z))/prod(sub(fs2, f.p)))}
	for _, z := range f.z {
		out.z = append(out.z, (fs2+z)/(fs2-z))
	}
	for _, p := range f.p {
		out.p = append(out.p, (fs2+p)/(fs2-p))
	}
	for i := 0; i < f.degree(); i++ {
		out.z = append(out.z, -1)
	}
	return out
}

// transfer expands the roots into polynomial coefficients. Roots come in
// conjugate pairs so the imaginary parts cancel.
func (f zpk) transfer() Coefficients {
	b := poly(f.z)
	a := poly(f.p)
	out := Coefficients{B: make([]float64, len(b)), A: make([]float64, len(a))}
	for i, c := range b {
		out.B[i] = f.k * real(c)
	}
	for i, c := range a {
		out.A[i] = real(c)
	}
	return out
}

// poly returns the coefficients of prod(x - r), highest power first.
func poly(roots []complex128) []complex128 {
	c := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(c)+1)
		copy(next, c)
		for i := 1; i < len(next); i++ {
			next[i] -= r * c[i-1]
		}
		c = next
	}
	return c
}

func prod(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= x
	}
	return out
}

func scale(v []complex128, s complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

func neg(v []complex128) []complex128 { return scale(v, -1) }

func sub(s complex128, v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = s - x
	}
	return out
}
