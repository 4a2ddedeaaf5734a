package model

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Fix names the velocity held constant when Update reconciles Vp, Vs and Vp/Vs.
type Fix string

const (
	FixNone Fix = ""   // Recompute Vp/Vs from Vp and Vs.
	FixVp   Fix = "vp" // Keep Vp, set Vs = Vp / VpVs.
	FixVs   Fix = "vs" // Keep Vs, set Vp = Vs * VpVs.
)

// Update reconciles the velocity attributes of every layer according to fix.
func (m *Model) Update(fix Fix) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateLocked(fix)
}

func (m *Model) updateLocked(fix Fix) error {
	switch fix {
	case FixNone:
		for i := range m.layers {
			m.layers[i].VpVs = m.layers[i].Vp / m.layers[i].Vs
		}
	case FixVp:
		for i := range m.layers {
			m.layers[i].Vs = m.layers[i].Vp / m.layers[i].VpVs
		}
	case FixVs:
		for i := range m.layers {
			m.layers[i].Vp = m.layers[i].Vs * m.layers[i].VpVs
		}
	default:
		return fmt.Errorf("unknown fix keyword %q: %w", string(fix), types.ErrInvalidArgument)
	}
	return nil
}

// Edit applies fn to layer i and then reconciles velocities with fix. The
// layer is left untouched when fix is invalid.
func (m *Model) Edit(i int, fn func(*Layer), fix Fix) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.layers) {
		return fmt.Errorf("layer %d out of range [0, %d): %w", i, len(m.layers), types.ErrInvalidArgument)
	}
	if fix != FixNone && fix != FixVp && fix != FixVs {
		return fmt.Errorf("unknown fix keyword %q: %w", string(fix), types.ErrInvalidArgument)
	}
	fn(&m.layers[i])
	m.countEdit()
	return m.updateLocked(fix)
}
