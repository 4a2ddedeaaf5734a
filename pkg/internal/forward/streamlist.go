package forward

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/filter"
	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/traces"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Target selects what Filter works on.
type Target string

const (
	TargetStreams Target = "streams"
	TargetRFs     Target = "rfs"
	TargetAll     Target = "all"
)

// StreamList is the result of one forward run.
type StreamList struct {
	Model    *model.Model
	Geometry *geometry.Geometry
	Params   solver.Params
	Streams  []*traces.Record
	RFs      []*rf.Pair

	engine *rf.Engine
}

// CalculateRFs derives receiver functions from Streams and stores them in RFs.
func (sl *StreamList) CalculateRFs(ctx context.Context) ([]*rf.Pair, error) {
	if sl.engine == nil {
		sl.engine = rf.NewEngine()
	}
	pairs, err := sl.engine.Calculate(ctx, sl.Streams, sl.Params.WaveType, sl.Params.Rotation)
	if err != nil {
		return nil, err
	}
	sl.RFs = pairs
	return pairs, nil
}

// Filter replaces Streams, RFs or both with filtered copies. The records
// themselves are never modified, so slices taken before Filter keep the raw
// data. TargetRFs fails when no receiver functions were calculated;
// TargetAll then filters the streams only. On error nothing is replaced.
func (sl *StreamList) Filter(target Target, spec filter.Spec) error {
	if sl.engine == nil {
		sl.engine = rf.NewEngine()
	}
	var streams, rfs bool
	switch target {
	case TargetStreams:
		streams = true
	case TargetRFs:
		if sl.RFs == nil {
			return fmt.Errorf("cannot filter rfs before they are calculated: %w", types.ErrInvalidArgument)
		}
		rfs = true
	case TargetAll:
		streams, rfs = true, sl.RFs != nil
	default:
		return fmt.Errorf("target %q has to be either streams, rfs or all: %w", string(target), types.ErrInvalidArgument)
	}

	filteredStreams, filteredRFs := sl.Streams, sl.RFs
	var err error
	if streams {
		if filteredStreams, err = traces.Filter(sl.Streams, sl.engine.Cache(), spec); err != nil {
			return err
		}
	}
	if rfs {
		if filteredRFs, err = sl.engine.Filter(sl.RFs, spec); err != nil {
			return err
		}
	}
	sl.Streams, sl.RFs = filteredStreams, filteredRFs
	return nil
}
