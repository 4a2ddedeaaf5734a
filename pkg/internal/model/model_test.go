package model_test

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func crustOverMantle(t *testing.T, opts ...types.Option[*model.Model]) *model.Model {
	t.Helper()
	m, err := model.New(
		[]float64{30000, 0},
		[]float64{2800, 3300},
		[]float64{6000, 8000},
		[]float64{3600, 4500},
		opts...,
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func threeLayers(t *testing.T, opts ...types.Option[*model.Model]) *model.Model {
	t.Helper()
	m, err := model.New(
		[]float64{10000, 20000, 0},
		[]float64{2600, 2900, 3300},
		[]float64{5000, 6000, 8000},
		[]float64{2900, 3500, 4500},
		opts...,
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recordingLogger) GetLevel() types.LogLevel               { return types.DebugLevel }
func (r *recordingLogger) SetLevel(types.LogLevel)                {}
func (r *recordingLogger) Debug(msg string, _ ...interface{})     { r.record(msg) }
func (r *recordingLogger) Info(msg string, _ ...interface{})      { r.record(msg) }
func (r *recordingLogger) Warn(msg string, _ ...interface{})      { r.record(msg) }
func (r *recordingLogger) Error(msg string, _ ...interface{})     { r.record(msg) }
func (r *recordingLogger) DPanic(msg string, _ ...interface{})    { r.record(msg) }
func (r *recordingLogger) Panic(msg string, _ ...interface{})     { r.record(msg) }
func (r *recordingLogger) Fatal(msg string, _ ...interface{})     { r.record(msg) }
func (r *recordingLogger) Flush() error                           { return nil }
func (r *recordingLogger) AddSink(string, types.SinkConfig) error { return nil }
func (r *recordingLogger) RemoveSink(string) error                { return nil }
func (r *recordingLogger) ListSinks() ([]string, error)           { return nil, nil }

// countingMeter is a minimal types.Meter for edit accounting.
type countingMeter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func (c *countingMeter) IncrementCount(name string) { c.AddToCount(name, 1) }
func (c *countingMeter) AddToCount(name string, delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]uint64{}
	}
	c.counts[name] += delta
}
func (c *countingMeter) GetMetricCount(name string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}
func (c *countingMeter) ObserveDuration(string, time.Duration)         {}
func (c *countingMeter) Snapshot() types.MetricsSnapshot               { return types.MetricsSnapshot{} }
func (c *countingMeter) GetComponentMetadata() types.ComponentMetadata { return types.ComponentMetadata{} }

func TestNew_DerivesVpVsAndDefaults(t *testing.T) {
	m := crustOverMantle(t)

	if m.Len() != 2 || m.Capacity() != model.DefaultCapacity {
		t.Fatalf("expected 2 layers with default capacity, got %d/%d", m.Len(), m.Capacity())
	}
	if diff := cmp.Diff([]float64{6000.0 / 3600.0, 8000.0 / 4500.0}, m.VpVs()); diff != "" {
		t.Fatalf("VpVs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, true}, m.Flags()); diff != "" {
		t.Fatalf("expected isotropic default flags:\n%s", diff)
	}
	for name, col := range map[string][]float64{
		"anisotropy": m.Anisotropy(), "trend": m.Trend(), "plunge": m.Plunge(), "strike": m.Strike(), "dip": m.Dip(),
	} {
		if diff := cmp.Diff([]float64{0, 0}, col); diff != "" {
			t.Fatalf("%s should default to zero:\n%s", name, diff)
		}
	}
}

func TestNew_RejectsMismatchedLengths(t *testing.T) {
	_, err := model.New([]float64{1, 2}, nil, []float64{1}, []float64{1, 2})
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	_, err = model.New([]float64{1, 2}, nil, []float64{1, 2}, []float64{1, 2}, model.WithDip(1, 2, 3))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for dip length, got %v", err)
	}

	_, err = model.New([]float64{1, 2}, nil, []float64{1, 2}, []float64{1, 2}, model.WithFlags(true))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for flags length, got %v", err)
	}
}

func TestNew_RejectsOverCapacity(t *testing.T) {
	h := []float64{1, 1, 1}
	_, err := model.New(h, nil, h, h, model.WithCapacity(2))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestUpdate_RoundTrip(t *testing.T) {
	m := threeLayers(t, model.WithAnisotropy(0, 4, 0), model.WithFlags(true, false, true))
	if err := m.Update(model.FixNone); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	vp, vs, ratio := m.Vp(), m.Vs(), m.VpVs()
	for i := range vp {
		if ratio[i] != vp[i]/vs[i] {
			t.Fatalf("layer %d: VpVs %v != Vp/Vs %v", i, ratio[i], vp[i]/vs[i])
		}
	}
}

func TestUpdate_FixModes(t *testing.T) {
	m := crustOverMantle(t)

	err := m.Edit(0, func(l *model.Layer) { l.VpVs = 1.8 }, model.FixVs)
	if err != nil {
		t.Fatalf("Edit(FixVs) error: %v", err)
	}
	l, _ := m.Layer(0)
	if math.Abs(l.Vp-3600*1.8) > 1e-9 || l.Vs != 3600 {
		t.Fatalf("FixVs should move Vp, got vp=%v vs=%v", l.Vp, l.Vs)
	}

	err = m.Edit(0, func(l *model.Layer) { l.VpVs = 2 }, model.FixVp)
	if err != nil {
		t.Fatalf("Edit(FixVp) error: %v", err)
	}
	l, _ = m.Layer(0)
	if math.Abs(l.Vs-l.Vp/2) > 1e-9 {
		t.Fatalf("FixVp should move Vs, got vp=%v vs=%v", l.Vp, l.Vs)
	}

	if err := m.Update(model.Fix("vpvs")); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown fix, got %v", err)
	}
}

func TestSplitLayer_PreservesThickness(t *testing.T) {
	m := threeLayers(t)
	before := m.Layers()

	if err := m.SplitLayer(1); err != nil {
		t.Fatalf("SplitLayer error: %v", err)
	}
	after := m.Layers()
	if len(after) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(after))
	}
	if after[1].Thickness+after[2].Thickness != before[1].Thickness {
		t.Fatalf("split halves do not sum to original: %v + %v", after[1].Thickness, after[2].Thickness)
	}
	if diff := cmp.Diff(before[0], after[0]); diff != "" {
		t.Fatalf("layer above split changed:\n%s", diff)
	}
	if diff := cmp.Diff(before[2], after[3]); diff != "" {
		t.Fatalf("layer below split changed:\n%s", diff)
	}
	half := before[1]
	half.Thickness /= 2
	if diff := cmp.Diff(half, after[2]); diff != "" {
		t.Fatalf("duplicate row differs:\n%s", diff)
	}
}

func TestSplitLayer_Errors(t *testing.T) {
	m := threeLayers(t, model.WithCapacity(3))
	if err := m.SplitLayer(0); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := m.SplitLayer(7); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestRemoveLayer(t *testing.T) {
	m := threeLayers(t)
	if err := m.RemoveLayer(1); err != nil {
		t.Fatalf("RemoveLayer error: %v", err)
	}
	if diff := cmp.Diff([]float64{10000, 0}, m.Thickness()); diff != "" {
		t.Fatalf("unexpected thickness after remove:\n%s", diff)
	}
	if err := m.RemoveLayer(5); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestCombineLayers_WeightedAverage(t *testing.T) {
	m := threeLayers(t)
	if err := m.CombineLayers(0, 1); err != nil {
		t.Fatalf("CombineLayers error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 layers, got %d", m.Len())
	}
	l, _ := m.Layer(0)
	want := model.Layer{
		Thickness: 30000,
		Density:   (10000*2600 + 20000*2900) / 30000.0,
		Vp:        (10000*5000 + 20000*6000) / 30000.0,
		Vs:        (10000*2900 + 20000*3500) / 30000.0,
		Isotropic: true,
	}
	want.VpVs = want.Vp / want.Vs
	if diff := cmp.Diff(want, l, approx); diff != "" {
		t.Fatalf("combined layer mismatch (-want +got):\n%s", diff)
	}
	last, _ := m.Layer(1)
	if last.Vp != 8000 {
		t.Fatalf("half-space changed: %+v", last)
	}
}

func TestCombineLayers_Errors(t *testing.T) {
	m := threeLayers(t, model.WithStrike(0, 45, 45))
	if err := m.CombineLayers(0, 1); !errors.Is(err, types.ErrDomain) {
		t.Fatalf("expected ErrDomain for strike mismatch, got %v", err)
	}

	m = threeLayers(t, model.WithDip(0, 10, 10))
	if err := m.CombineLayers(0, 1); !errors.Is(err, types.ErrDomain) {
		t.Fatalf("expected ErrDomain for dip mismatch, got %v", err)
	}

	m = threeLayers(t, model.WithFlags(true, false, true), model.WithAnisotropy(0, 5, 0))
	if err := m.CombineLayers(0, 2); !errors.Is(err, types.ErrDomain) {
		t.Fatalf("expected ErrDomain for anisotropic layer, got %v", err)
	}

	m = threeLayers(t)
	if err := m.CombineLayers(1, 1); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bottom <= top, got %v", err)
	}
	if errors.Is(m.CombineLayers(2, 1), types.ErrDomain) {
		t.Fatalf("reversed range must not be a domain error")
	}
	if m.Len() != 3 {
		t.Fatalf("failed combine must not modify the model")
	}
}

func TestTimes(t *testing.T) {
	m := crustOverMantle(t)
	want := []float64{30000/3600.0 - 30000/6000.0}
	if diff := cmp.Diff(want, m.Times(), approx); diff != "" {
		t.Fatalf("Times mismatch:\n%s", diff)
	}

	m = threeLayers(t)
	d0 := 10000/2900.0 - 10000/5000.0
	d1 := 20000/3500.0 - 20000/6000.0
	if diff := cmp.Diff([]float64{d0, d0 + d1}, m.Times(), approx); diff != "" {
		t.Fatalf("Times mismatch:\n%s", diff)
	}
}

func TestExport_PadsAndConverts(t *testing.T) {
	m := threeLayers(t,
		model.WithFlags(true, false, true),
		model.WithAnisotropy(0, 5, 0),
		model.WithTrend(0, 90, 0),
		model.WithStrike(0, 0, 180),
		model.WithCapacity(5),
	)

	view, err := m.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if view.Layers != 3 || view.Capacity != 5 || len(view.Thickness) != 5 || len(view.Dip) != 5 {
		t.Fatalf("unexpected export shape: layers=%d capacity=%d", view.Layers, view.Capacity)
	}
	if diff := cmp.Diff([]float64{10000, 20000, 0, 0, 0}, view.Thickness); diff != "" {
		t.Fatalf("thickness:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 0, 1, 0, 0}, view.Flag); diff != "" {
		t.Fatalf("flag:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, math.Pi / 2, 0, 0, 0}, view.Trend, approx); diff != "" {
		t.Fatalf("trend radians:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0, math.Pi, 0, 0}, view.Strike, approx); diff != "" {
		t.Fatalf("strike radians:\n%s", diff)
	}

	// The view follows edits immediately.
	if err := m.ApplyCommand("t0=1"); err != nil {
		t.Fatalf("ApplyCommand error: %v", err)
	}
	view, _ = m.Export()
	if view.Thickness[0] != 1000 {
		t.Fatalf("export is stale: %v", view.Thickness[0])
	}
}

func TestEdits_AreLogged(t *testing.T) {
	rec := &recordingLogger{}
	m := threeLayers(t, model.WithLogger(rec))

	_ = m.SplitLayer(0)
	_ = m.RemoveLayer(0)
	_ = m.ApplyCommand("d1+5")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	var sawChange bool
	for _, msg := range rec.msgs {
		if msg == "Changed: dip[1] += 5" {
			sawChange = true
		}
	}
	if !sawChange {
		t.Fatalf("expected change message, got %v", rec.msgs)
	}
}
