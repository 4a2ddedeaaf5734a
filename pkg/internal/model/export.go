package model

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Export renders the fixed-capacity arrays the solver reads: every column
// zero padded to Capacity, angles converted to radians. The view is rebuilt
// on every call so it always matches the current layers.
func (m *Model) Export() (types.ModelArrays, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.layers)
	if n > m.capacity {
		return types.ModelArrays{}, fmt.Errorf("%d layers exceed capacity %d: %w", n, m.capacity, types.ErrInvalidArgument)
	}

	col := func(f func(Layer) float64, scale float64) []float64 {
		// n <= capacity was checked above.
		out, _ := utils.PadScaled(utils.Column(m.layers, f), m.capacity, scale)
		return out
	}
	rad := math.Pi / 180

	return types.ModelArrays{
		Thickness:  col(func(l Layer) float64 { return l.Thickness }, 1),
		Density:    col(func(l Layer) float64 { return l.Density }, 1),
		Vp:         col(func(l Layer) float64 { return l.Vp }, 1),
		Vs:         col(func(l Layer) float64 { return l.Vs }, 1),
		Flag:       col(flagValue, 1),
		Anisotropy: col(func(l Layer) float64 { return l.Anisotropy }, 1),
		Trend:      col(func(l Layer) float64 { return l.Trend }, rad),
		Plunge:     col(func(l Layer) float64 { return l.Plunge }, rad),
		Strike:     col(func(l Layer) float64 { return l.Strike }, rad),
		Dip:        col(func(l Layer) float64 { return l.Dip }, rad),
		Layers:     n,
		Capacity:   m.capacity,
	}, nil
}

func flagValue(l Layer) float64 {
	if l.Isotropic {
		return 1
	}
	return 0
}
