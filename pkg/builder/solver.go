package builder

import (
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type Params = solver.Params

type Solver = solver.Solver

type SolverFunc = solver.Func

type SolverRequest = solver.Request

type SolverOutput = solver.Output

type WaveType = types.WaveType

type Rotation = types.Rotation

const (
	WaveP  = types.WaveP
	WaveSV = types.WaveSV
	WaveSH = types.WaveSH

	RotationNEZ = types.RotationNEZ
	RotationRTZ = types.RotationRTZ
	RotationPVH = types.RotationPVH

	MultiplesNone        = types.MultiplesNone
	MultiplesFreeSurface = types.MultiplesFreeSurface
	MultiplesFirstOrder  = types.MultiplesFirstOrder

	AlignP         = types.AlignP
	AlignConverted = types.AlignConverted
)

var (
	ErrInvalidArgument = types.ErrInvalidArgument
	ErrDomain          = types.ErrDomain
)

func DefaultParams() solver.Params {
	return solver.DefaultParams()
}

// LoadSolverPlugin opens a native solver build exporting CallSeisSpread.
func LoadSolverPlugin(path string) (solver.Solver, error) {
	return solver.LoadPlugin(path)
}

// ImpulseSolver returns the deterministic stand-in solver.
func ImpulseSolver(amplitude [3]float64) solver.Func {
	return solver.Impulse(amplitude)
}
