package geometry_test

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

func TestNewGrid_BackazimuthFastest(t *testing.T) {
	g, err := geometry.NewGrid([]float64{0, 90, 180}, []float64{0.06, 0.08})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if g.Len() != 6 {
		t.Fatalf("expected 6 traces, got %d", g.Len())
	}
	want := []geometry.Ray{
		{0, 0.06}, {90, 0.06}, {180, 0.06},
		{0, 0.08}, {90, 0.08}, {180, 0.08},
	}
	if diff := cmp.Diff(want, g.Pairs()); diff != "" {
		t.Fatalf("grid order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPairs(t *testing.T) {
	g, err := geometry.NewPairs([]float64{0, 90, 180}, []float64{0.06, 0.07, 0.08})
	if err != nil {
		t.Fatalf("NewPairs error: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("expected 3 traces, got %d", g.Len())
	}
	r, _ := g.Ray(1)
	if r != (geometry.Ray{Backazimuth: 90, Slowness: 0.07}) {
		t.Fatalf("unexpected ray: %+v", r)
	}

	if _, err := geometry.NewPairs([]float64{0, 90}, []float64{0.06}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unequal pairs, got %v", err)
	}
}

func TestNew_InfersSampling(t *testing.T) {
	g, err := geometry.New([]float64{0, 90, 180}, []float64{0.06, 0.07, 0.08})
	if err != nil || g.Len() != 3 {
		t.Fatalf("equal lengths should pair, got %v, %v", g, err)
	}
	g, err = geometry.New([]float64{0, 90, 180}, []float64{0.06, 0.08})
	if err != nil || g.Len() != 6 {
		t.Fatalf("unequal lengths should span the grid, got %v, %v", g, err)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := geometry.NewGrid(nil, []float64{0.06}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty geometry, got %v", err)
	}
	_, err := geometry.NewGrid([]float64{0, 1, 2}, []float64{0.06, 0.07}, geometry.WithCapacity(5))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for capacity, got %v", err)
	}
	_, err = geometry.NewPairs([]float64{0, 1, 2}, []float64{1, 2, 3}, geometry.WithOffsets([]float64{1, 2}, nil))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for offset length, got %v", err)
	}
}

func TestWithOffsets_Broadcast(t *testing.T) {
	g, err := geometry.NewPairs([]float64{0, 1, 2}, []float64{1, 2, 3},
		geometry.WithOffsets([]float64{100}, []float64{1, 2, 3}))
	if err != nil {
		t.Fatalf("NewPairs error: %v", err)
	}
	if diff := cmp.Diff([]float64{100, 100, 100}, g.North()); diff != "" {
		t.Fatalf("north not broadcast:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, g.East()); diff != "" {
		t.Fatalf("east changed:\n%s", diff)
	}
}

func TestExport(t *testing.T) {
	g, err := geometry.NewPairs([]float64{90, 180}, []float64{0.06, 0.08},
		geometry.WithOffsets([]float64{5}, []float64{-5}), geometry.WithCapacity(4))
	if err != nil {
		t.Fatalf("NewPairs error: %v", err)
	}
	view, err := g.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	if view.Traces != 2 || view.Capacity != 4 {
		t.Fatalf("unexpected shape %d/%d", view.Traces, view.Capacity)
	}
	if diff := cmp.Diff([]float64{math.Pi / 2, math.Pi, 0, 0}, view.Backazimuth, approx); diff != "" {
		t.Fatalf("backazimuth:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{6e-5, 8e-5, 0, 0}, view.Slowness, approx); diff != "" {
		t.Fatalf("slowness:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{5, 5, 0, 0}, view.North); diff != "" {
		t.Fatalf("north:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-5, -5, 0, 0}, view.East); diff != "" {
		t.Fatalf("east:\n%s", diff)
	}
}

func TestString_Format(t *testing.T) {
	g, err := geometry.NewPairs([]float64{45}, []float64{0.06})
	if err != nil {
		t.Fatalf("NewPairs error: %v", err)
	}
	if got, want := g.String(), "  45.00   0.0600    0.00    0.00\n"; got != want {
		t.Fatalf("row mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWriteRead_YieldsPairs(t *testing.T) {
	g, err := geometry.NewGrid([]float64{0, 120, 240}, []float64{0.05, 0.07},
		geometry.WithOffsets([]float64{10}, []float64{-20}))
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sample.geom")
	if err := g.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	back, err := geometry.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if diff := cmp.Diff(g.Pairs(), back.Pairs()); diff != "" {
		t.Fatalf("rays differ after round trip:\n%s", diff)
	}
	if diff := cmp.Diff(g.North(), back.North()); diff != "" {
		t.Fatalf("north differs:\n%s", diff)
	}
}

func TestRead_TwoColumns(t *testing.T) {
	g, err := geometry.Read(strings.NewReader("# baz slow\n10 0.06\n20 0.07\n"))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 traces, got %d", g.Len())
	}
	if diff := cmp.Diff([]float64{0, 0}, g.East()); diff != "" {
		t.Fatalf("offsets should default to zero:\n%s", diff)
	}

	_, err = geometry.Read(bytes.NewBufferString("10 0.06 1 2\n20 0.07\n"))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for ragged rows, got %v", err)
	}
}
