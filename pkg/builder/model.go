package builder

import (
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type Model = model.Model

type Layer = model.Layer

type Fix = model.Fix

const (
	FixNone = model.FixNone
	FixVp   = model.FixVp
	FixVs   = model.FixVs
)

// NewModel creates a layer stack from the four required columns; SI units.
func NewModel(thickness, density, vp, vs []float64, options ...types.Option[*model.Model]) (*model.Model, error) {
	return model.New(thickness, density, vp, vs, options...)
}

func NewModelFromLayers(layers []model.Layer, options ...types.Option[*model.Model]) (*model.Model, error) {
	return model.FromLayers(layers, options...)
}

// ReadModelFile parses a ten column model file.
func ReadModelFile(path string, options ...types.Option[*model.Model]) (*model.Model, error) {
	return model.ReadFile(path, options...)
}

func ModelWithFlags(isotropic ...bool) types.Option[*model.Model] {
	return model.WithFlags(isotropic...)
}

func ModelWithAnisotropy(values ...float64) types.Option[*model.Model] {
	return model.WithAnisotropy(values...)
}

func ModelWithTrend(values ...float64) types.Option[*model.Model] {
	return model.WithTrend(values...)
}

func ModelWithPlunge(values ...float64) types.Option[*model.Model] {
	return model.WithPlunge(values...)
}

func ModelWithStrike(values ...float64) types.Option[*model.Model] {
	return model.WithStrike(values...)
}

func ModelWithDip(values ...float64) types.Option[*model.Model] {
	return model.WithDip(values...)
}

// ModelWithCapacity sets the layer capacity of the solver build.
func ModelWithCapacity(capacity int) types.Option[*model.Model] {
	return model.WithCapacity(capacity)
}

func ModelWithLogger(l ...types.Logger) types.Option[*model.Model] {
	return model.WithLogger(l...)
}

func ModelWithMeter(m types.Meter) types.Option[*model.Model] {
	return model.WithMeter(m)
}

func ModelWithName(name string) types.Option[*model.Model] {
	return model.WithName(name)
}
