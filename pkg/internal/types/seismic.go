package types

import "fmt"

// WaveType is the incoming wave of the simulation.
type WaveType string

const (
	WaveP  WaveType = "P"
	WaveSV WaveType = "SV"
	WaveSH WaveType = "SH"
)

// Valid reports whether w is one of P, SV or SH.
func (w WaveType) Valid() bool {
	switch w {
	case WaveP, WaveSV, WaveSH:
		return true
	}
	return false
}

// Multiples selects which multiples the solver computes.
type Multiples int

const (
	MultiplesNone        Multiples = 0 // Primary conversions only.
	MultiplesFreeSurface Multiples = 1 // Free-surface multiples of the first interface.
	MultiplesFirstOrder  Multiples = 2 // All first-order multiples.
)

// Alignment selects the phase the seismograms are aligned on.
type Alignment int

const (
	AlignP         Alignment = 1
	AlignConverted Alignment = 2
)

// Rotation is the coordinate system of the three output components.
type Rotation int

const (
	RotationNEZ Rotation = 0 // Geographic north, east, vertical.
	RotationRTZ Rotation = 1 // Radial, transverse, vertical.
	RotationPVH Rotation = 2 // Wave aligned P, SV, SH.
)

// Components returns the component letters in solver output order.
func (r Rotation) Components() ([3]string, error) {
	switch r {
	case RotationNEZ:
		return [3]string{"N", "E", "Z"}, nil
	case RotationRTZ:
		return [3]string{"R", "T", "Z"}, nil
	case RotationPVH:
		return [3]string{"P", "V", "H"}, nil
	}
	return [3]string{}, fmt.Errorf("invalid rotation %d, not in 0, 1, 2: %w", int(r), ErrInvalidArgument)
}

// ModelArrays is the fixed-capacity view of a layer stack handed to the
// solver. Every slice has length Capacity; angles are radians.
type ModelArrays struct {
	Thickness  []float64
	Density    []float64
	Vp         []float64
	Vs         []float64
	Flag       []float64 // 1 isotropic, 0 anisotropic.
	Anisotropy []float64
	Trend      []float64
	Plunge     []float64
	Strike     []float64
	Dip        []float64
	Layers     int
	Capacity   int
}

// GeometryArrays is the fixed-capacity view of a ray geometry handed to the
// solver. Backazimuth is in radians, slowness in s/m, offsets in m.
type GeometryArrays struct {
	Backazimuth []float64
	Slowness    []float64
	North       []float64
	East        []float64
	Traces      int
	Capacity    int
}
