package model

import (
	"fmt"
	"sync"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// DefaultCapacity is the layer capacity of the stock solver build.
const DefaultCapacity = 15

// Layer is one stratum of the model. Lengths are in m, velocities in m/s,
// density in kg/m^3 and angles in degrees.
type Layer struct {
	Thickness  float64
	Density    float64
	Vp         float64
	Vs         float64
	VpVs       float64
	Isotropic  bool
	Anisotropy float64 // percent
	Trend      float64 // symmetry axis trend
	Plunge     float64 // symmetry axis plunge
	Strike     float64 // interface strike, right-hand rule
	Dip        float64 // interface dip, right-hand rule
}

// Model is an ordered stack of layers, index 0 at the surface. The layers
// are the only state; the solver view is derived by Export.
type Model struct {
	componentMetadata types.ComponentMetadata

	mu       sync.RWMutex
	layers   []Layer
	capacity int

	loggers     []types.Logger
	loggersLock sync.Mutex
	meter       types.Meter

	init *columns
}

// columns holds the optional arrays collected by options during New.
type columns struct {
	flags      []bool
	anisotropy []float64
	trend      []float64
	plunge     []float64
	strike     []float64
	dip        []float64
}

// New builds a model from per-layer columns. Vp/Vs is derived from vp and vs.
// Density may be nil, in which case it is zero for every layer.
func New(thickness, density, vp, vs []float64, options ...types.Option[*Model]) (*Model, error) {
	m := &Model{
		capacity: DefaultCapacity,
		loggers:  make([]types.Logger, 0),
		init:     &columns{},
		componentMetadata: types.ComponentMetadata{
			Type: "MODEL",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	cols := m.init
	m.init = nil

	n := len(thickness)
	if len(vp) != n || len(vs) != n {
		return nil, fmt.Errorf("thickness, vp and vs lengths differ (%d, %d, %d): %w", n, len(vp), len(vs), types.ErrInvalidArgument)
	}
	if n > m.capacity {
		return nil, fmt.Errorf("%d layers exceed capacity %d: %w", n, m.capacity, types.ErrInvalidArgument)
	}

	rho, err := optional("density", density, n)
	if err != nil {
		return nil, err
	}
	ani, err := optional("anisotropy", cols.anisotropy, n)
	if err != nil {
		return nil, err
	}
	trend, err := optional("trend", cols.trend, n)
	if err != nil {
		return nil, err
	}
	plunge, err := optional("plunge", cols.plunge, n)
	if err != nil {
		return nil, err
	}
	strike, err := optional("strike", cols.strike, n)
	if err != nil {
		return nil, err
	}
	dip, err := optional("dip", cols.dip, n)
	if err != nil {
		return nil, err
	}
	flags := cols.flags
	switch len(flags) {
	case n:
	case 0:
		flags = make([]bool, n)
		for i := range flags {
			flags[i] = true
		}
	default:
		return nil, fmt.Errorf("flags has %d entries for %d layers: %w", len(flags), n, types.ErrInvalidArgument)
	}

	m.layers = make([]Layer, n)
	for i := range m.layers {
		m.layers[i] = Layer{
			Thickness:  thickness[i],
			Density:    rho[i],
			Vp:         vp[i],
			Vs:         vs[i],
			VpVs:       vp[i] / vs[i],
			Isotropic:  flags[i],
			Anisotropy: ani[i],
			Trend:      trend[i],
			Plunge:     plunge[i],
			Strike:     strike[i],
			Dip:        dip[i],
		}
	}

	m.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: New, layers: %d, capacity: %d => Model created", m.componentMetadata, n, m.capacity)
	return m, nil
}

// FromLayers builds a model from complete rows. VpVs is recomputed.
func FromLayers(layers []Layer, options ...types.Option[*Model]) (*Model, error) {
	n := len(layers)
	thickness := make([]float64, n)
	density := make([]float64, n)
	vp := make([]float64, n)
	vs := make([]float64, n)
	for i, l := range layers {
		thickness[i], density[i], vp[i], vs[i] = l.Thickness, l.Density, l.Vp, l.Vs
	}
	opts := append([]types.Option[*Model]{
		WithFlags(utils.Column(layers, func(l Layer) bool { return l.Isotropic })...),
		WithAnisotropy(utils.Column(layers, func(l Layer) float64 { return l.Anisotropy })...),
		WithTrend(utils.Column(layers, func(l Layer) float64 { return l.Trend })...),
		WithPlunge(utils.Column(layers, func(l Layer) float64 { return l.Plunge })...),
		WithStrike(utils.Column(layers, func(l Layer) float64 { return l.Strike })...),
		WithDip(utils.Column(layers, func(l Layer) float64 { return l.Dip })...),
	}, options...)
	return New(thickness, density, vp, vs, opts...)
}

func optional(name string, values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		return values, nil
	case 0:
		return make([]float64, n), nil
	}
	return nil, fmt.Errorf("%s has %d entries for %d layers: %w", name, len(values), n, types.ErrInvalidArgument)
}
