package builder

import (
	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type Geometry = geometry.Geometry

type Ray = geometry.Ray

// NewGrid samples every slowness at every backazimuth.
func NewGrid(baz, slow []float64, options ...types.Option[*geometry.Geometry]) (*geometry.Geometry, error) {
	return geometry.NewGrid(baz, slow, options...)
}

// NewPairs zips baz and slow, which must have equal length.
func NewPairs(baz, slow []float64, options ...types.Option[*geometry.Geometry]) (*geometry.Geometry, error) {
	return geometry.NewPairs(baz, slow, options...)
}

func NewGeometryFromRays(rays []geometry.Ray, options ...types.Option[*geometry.Geometry]) (*geometry.Geometry, error) {
	return geometry.FromRays(rays, options...)
}

func ReadGeometryFile(path string, options ...types.Option[*geometry.Geometry]) (*geometry.Geometry, error) {
	return geometry.ReadFile(path, options...)
}

func GeometryWithOffsets(north, east []float64) types.Option[*geometry.Geometry] {
	return geometry.WithOffsets(north, east)
}

func GeometryWithCapacity(capacity int) types.Option[*geometry.Geometry] {
	return geometry.WithCapacity(capacity)
}

func GeometryWithLogger(l ...types.Logger) types.Option[*geometry.Geometry] {
	return geometry.WithLogger(l...)
}

func GeometryWithName(name string) types.Option[*geometry.Geometry] {
	return geometry.WithName(name)
}

type GeometryOption = types.Option[*geometry.Geometry]
