package model

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Len returns the number of layers.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.layers)
}

// Capacity returns the maximum number of layers.
func (m *Model) Capacity() int {
	return m.capacity
}

// Layer returns a copy of layer i.
func (m *Model) Layer(i int) (Layer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.layers) {
		return Layer{}, fmt.Errorf("layer %d out of range [0, %d): %w", i, len(m.layers), types.ErrInvalidArgument)
	}
	return m.layers[i], nil
}

// Layers returns a copy of all layers.
func (m *Model) Layers() []Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Layer(nil), m.layers...)
}

func (m *Model) column(f func(Layer) float64) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return utils.Column(m.layers, f)
}

func (m *Model) Thickness() []float64  { return m.column(func(l Layer) float64 { return l.Thickness }) }
func (m *Model) Density() []float64    { return m.column(func(l Layer) float64 { return l.Density }) }
func (m *Model) Vp() []float64         { return m.column(func(l Layer) float64 { return l.Vp }) }
func (m *Model) Vs() []float64         { return m.column(func(l Layer) float64 { return l.Vs }) }
func (m *Model) VpVs() []float64       { return m.column(func(l Layer) float64 { return l.VpVs }) }
func (m *Model) Anisotropy() []float64 { return m.column(func(l Layer) float64 { return l.Anisotropy }) }
func (m *Model) Trend() []float64      { return m.column(func(l Layer) float64 { return l.Trend }) }
func (m *Model) Plunge() []float64     { return m.column(func(l Layer) float64 { return l.Plunge }) }
func (m *Model) Strike() []float64     { return m.column(func(l Layer) float64 { return l.Strike }) }
func (m *Model) Dip() []float64        { return m.column(func(l Layer) float64 { return l.Dip }) }

// Flags returns the isotropy flags, true for isotropic layers.
func (m *Model) Flags() []bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return utils.Column(m.layers, func(l Layer) bool { return l.Isotropic })
}

// GetComponentMetadata returns the model metadata.
func (m *Model) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}
