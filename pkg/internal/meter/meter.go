package meter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Meter counts pipeline events for one run. Counters are created on first
// use and updated atomically.
type Meter struct {
	componentMetadata types.ComponentMetadata

	mu        sync.Mutex
	counts    map[string]*uint64
	startTime time.Time

	cpuInterval time.Duration
	sampleCPU   func(interval time.Duration) (float64, error)
	sampleRAM   func() (float64, error)

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter returns a meter whose elapsed clock starts now. Host usage is
// sampled through gopsutil unless replaced with WithHostSampler.
func NewMeter(options ...types.Option[*Meter]) *Meter {
	m := &Meter{
		counts:      make(map[string]*uint64),
		startTime:   time.Now(),
		cpuInterval: 100 * time.Millisecond,
		sampleCPU:   cpuPercent,
		sampleRAM:   ramPercent,
		loggers:     make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "METER",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	for _, name := range defaultMetricNames {
		m.counter(name)
	}
	return m
}

func (m *Meter) counter(name string) *uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counts[name]
	if !ok {
		c = new(uint64)
		m.counts[name] = c
	}
	return c
}

// IncrementCount adds one to the named counter.
func (m *Meter) IncrementCount(name string) {
	atomic.AddUint64(m.counter(name), 1)
}

// AddToCount adds delta to the named counter.
func (m *Meter) AddToCount(name string, delta uint64) {
	atomic.AddUint64(m.counter(name), delta)
}

// GetMetricCount returns the current value of the named counter.
func (m *Meter) GetMetricCount(name string) uint64 {
	return atomic.LoadUint64(m.counter(name))
}

// ObserveDuration accumulates d, in nanoseconds, on the named counter.
func (m *Meter) ObserveDuration(name string, d time.Duration) {
	if d > 0 {
		m.AddToCount(name, uint64(d.Nanoseconds()))
	}
}

// ResetMetrics zeroes every counter and restarts the elapsed clock.
func (m *Meter) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.counts {
		atomic.StoreUint64(c, 0)
	}
	m.startTime = time.Now()
}

func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}
