package geometry

import (
	"math"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Export renders the fixed-capacity solver view: backazimuth in radians,
// slowness in s/m, offsets in m, all zero padded to Capacity.
func (g *Geometry) Export() (types.GeometryArrays, error) {
	baz, err := utils.PadScaled(g.Backazimuths(), g.capacity, math.Pi/180)
	if err != nil {
		return types.GeometryArrays{}, err
	}
	slow, err := utils.PadScaled(g.Slownesses(), g.capacity, 1e-3)
	if err != nil {
		return types.GeometryArrays{}, err
	}
	north, err := utils.PadScaled(g.north, g.capacity, 1)
	if err != nil {
		return types.GeometryArrays{}, err
	}
	east, err := utils.PadScaled(g.east, g.capacity, 1)
	if err != nil {
		return types.GeometryArrays{}, err
	}
	return types.GeometryArrays{
		Backazimuth: baz,
		Slowness:    slow,
		North:       north,
		East:        east,
		Traces:      len(g.rays),
		Capacity:    g.capacity,
	}, nil
}
