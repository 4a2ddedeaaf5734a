package rf_test

import (
	"sync"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

type countingMeter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func newMeter() *countingMeter { return &countingMeter{counts: map[string]uint64{}} }

func (c *countingMeter) get(name string) uint64 { return c.GetMetricCount(name) }

func (c *countingMeter) IncrementCount(name string) { c.AddToCount(name, 1) }

func (c *countingMeter) AddToCount(name string, delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[name] += delta
}

func (c *countingMeter) GetMetricCount(name string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

func (c *countingMeter) ObserveDuration(string, time.Duration) {}

func (c *countingMeter) Snapshot() types.MetricsSnapshot { return types.MetricsSnapshot{} }

func (c *countingMeter) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}
