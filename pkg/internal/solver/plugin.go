package solver

import (
	"fmt"
	"plugin"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// SymbolName is the function a solver plugin must export.
const SymbolName = "CallSeisSpread"

// LoadPlugin opens a Go plugin wrapping the native solver. The plugin must
// export
//
//	func CallSeisSpread(solver.Request) (solver.Output, error)
func LoadPlugin(path string) (Solver, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open solver plugin %s: %w", path, err)
	}
	sym, err := p.Lookup(SymbolName)
	if err != nil {
		return nil, fmt.Errorf("solver plugin %s: %w", path, err)
	}
	switch fn := sym.(type) {
	case func(Request) (Output, error):
		return Func(fn), nil
	case *func(Request) (Output, error):
		return Func(*fn), nil
	}
	return nil, fmt.Errorf("solver plugin %s: %s has type %T: %w", path, SymbolName, sym, types.ErrInvalidArgument)
}
