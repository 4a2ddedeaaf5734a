package solver

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Params are the run settings passed through to the solver.
type Params struct {
	WaveType          types.WaveType
	Multiples         types.Multiples
	Samples           int     // npts
	Delta             float64 // sampling interval in s
	Align             types.Alignment
	Shift             *float64 // s, positive moves arrivals to later times; nil means Delta
	Rotation          types.Rotation
	Verbose           bool
	ReceiverFunctions bool
}

// DefaultParams mirrors the stock raysum run: incoming P, all first-order
// multiples, 300 samples at 40 Hz, aligned on P, NEZ output.
func DefaultParams() Params {
	return Params{
		WaveType:  types.WaveP,
		Multiples: types.MultiplesFirstOrder,
		Samples:   300,
		Delta:     0.025,
		Align:     types.AlignP,
		Rotation:  types.RotationNEZ,
	}
}

// ResolvedShift returns Shift, or Delta when Shift is unset.
func (p Params) ResolvedShift() float64 {
	if p.Shift == nil {
		return p.Delta
	}
	return *p.Shift
}

// Validate rejects settings the solver does not support.
func (p Params) Validate() error {
	if !p.WaveType.Valid() {
		return fmt.Errorf("wave type %q not in P, SV, SH: %w", string(p.WaveType), types.ErrInvalidArgument)
	}
	if p.Multiples < types.MultiplesNone || p.Multiples > types.MultiplesFirstOrder {
		return fmt.Errorf("multiples %d not in 0, 1, 2: %w", int(p.Multiples), types.ErrInvalidArgument)
	}
	if p.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d: %w", p.Samples, types.ErrInvalidArgument)
	}
	if !(p.Delta > 0) || math.IsInf(p.Delta, 0) {
		return fmt.Errorf("delta must be positive, got %v: %w", p.Delta, types.ErrInvalidArgument)
	}
	if p.Align != types.AlignP && p.Align != types.AlignConverted {
		return fmt.Errorf("align %d not in 1, 2: %w", int(p.Align), types.ErrInvalidArgument)
	}
	if s := p.ResolvedShift(); math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("shift must be finite, got %v: %w", s, types.ErrInvalidArgument)
	}
	if _, err := p.Rotation.Components(); err != nil {
		return err
	}
	if p.ReceiverFunctions && p.Rotation == types.RotationNEZ {
		return fmt.Errorf("receiver functions need rotation 1 or 2, not 0: %w", types.ErrInvalidArgument)
	}
	return nil
}
