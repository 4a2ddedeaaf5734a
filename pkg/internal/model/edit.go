package model

import (
	"fmt"
	"slices"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// SplitLayer replaces layer n by two copies of half its thickness.
func (m *Model) SplitLayer(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n < 0 || n >= len(m.layers) {
		return fmt.Errorf("layer %d out of range [0, %d): %w", n, len(m.layers), types.ErrInvalidArgument)
	}
	if len(m.layers)+1 > m.capacity {
		return fmt.Errorf("splitting layer %d exceeds capacity %d: %w", n, m.capacity, types.ErrInvalidArgument)
	}

	dup := m.layers[n]
	m.layers = slices.Insert(m.layers, n+1, dup)
	m.layers[n].Thickness /= 2
	m.layers[n+1].Thickness /= 2

	m.countEdit()
	m.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: SplitLayer, layer: %d, layers: %d => Layer split", m.componentMetadata, n, len(m.layers))
	return m.updateLocked(FixNone)
}

// RemoveLayer deletes layer n.
func (m *Model) RemoveLayer(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n < 0 || n >= len(m.layers) {
		return fmt.Errorf("layer %d out of range [0, %d): %w", n, len(m.layers), types.ErrInvalidArgument)
	}
	m.layers = slices.Delete(m.layers, n, n+1)

	m.countEdit()
	m.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: RemoveLayer, layer: %d, layers: %d => Layer removed", m.componentMetadata, n, len(m.layers))
	return m.updateLocked(FixNone)
}

// CombineLayers merges layers top..bottom (inclusive) into one layer at top
// with the summed thickness and thickness-weighted Vp, Vs and density. All
// other attributes are taken from top. Only isotropic layers sharing strike
// and dip can be combined.
func (m *Model) CombineLayers(top, bottom int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if bottom <= top {
		return fmt.Errorf("bottom (%d) must be larger than top (%d): %w", bottom, top, types.ErrInvalidArgument)
	}
	if top < 0 || bottom >= len(m.layers) {
		return fmt.Errorf("range [%d, %d] out of range [0, %d): %w", top, bottom, len(m.layers), types.ErrInvalidArgument)
	}

	span := m.layers[top : bottom+1]
	for i, l := range span {
		if !l.Isotropic {
			return fmt.Errorf("layer %d is anisotropic, can only combine isotropic layers: %w", top+i, types.ErrDomain)
		}
		if l.Dip != span[0].Dip {
			return fmt.Errorf("layer %d dip %v differs from %v, all layers must have the same dip: %w", top+i, l.Dip, span[0].Dip, types.ErrDomain)
		}
		if l.Strike != span[0].Strike {
			return fmt.Errorf("layer %d strike %v differs from %v, all layers must have the same strike: %w", top+i, l.Strike, span[0].Strike, types.ErrDomain)
		}
	}

	h := make([]float64, len(span))
	vp := make([]float64, len(span))
	vs := make([]float64, len(span))
	rho := make([]float64, len(span))
	for i, l := range span {
		h[i], vp[i], vs[i], rho[i] = l.Thickness, l.Vp, l.Vs, l.Density
	}
	total := floats.Sum(h)
	if total == 0 {
		return fmt.Errorf("layers %d to %d have zero total thickness: %w", top, bottom, types.ErrDomain)
	}

	merged := span[0]
	merged.Thickness = total
	merged.Vp = floats.Dot(h, vp) / total
	merged.Vs = floats.Dot(h, vs) / total
	merged.Density = floats.Dot(h, rho) / total

	m.layers[top] = merged
	m.layers = slices.Delete(m.layers, top+1, bottom+1)

	m.countEdit()
	m.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: CombineLayers, top: %d, bottom: %d, layers: %d => Layers combined", m.componentMetadata, top, bottom, len(m.layers))
	return m.updateLocked(FixNone)
}
