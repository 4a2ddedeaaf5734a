package meter

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

func cpuPercent(interval time.Duration) (float64, error) {
	p, err := cpu.Percent(interval, false)
	if err != nil || len(p) == 0 {
		return 0, err
	}
	return p[0], nil
}

func ramPercent() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

// Snapshot copies every counter and samples host CPU, RAM and goroutines.
// Sampling failures leave the percentages at zero and are logged.
func (m *Meter) Snapshot() types.MetricsSnapshot {
	m.mu.Lock()
	counts := make(map[string]uint64, len(m.counts))
	for name, c := range m.counts {
		counts[name] = atomic.LoadUint64(c)
	}
	start := m.startTime
	m.mu.Unlock()

	s := types.MetricsSnapshot{
		Counts:     counts,
		Goroutines: runtime.NumGoroutine(),
		Elapsed:    time.Since(start),
	}

	var err error
	if s.CpuPercent, err = m.sampleCPU(m.cpuInterval); err != nil {
		m.NotifyLoggers(types.WarnLevel, "component: %s, level: WARN, result: FAILURE, event: Snapshot, error: %v => CPU sampling failed", m.componentMetadata, err)
	}
	if s.RamPercent, err = m.sampleRAM(); err != nil {
		m.NotifyLoggers(types.WarnLevel, "component: %s, level: WARN, result: FAILURE, event: Snapshot, error: %v => RAM sampling failed", m.componentMetadata, err)
	}

	s.Counts[types.MetricCurrentCpuPercentage] = uint64(s.CpuPercent)
	s.Counts[types.MetricCurrentRamPercentage] = uint64(s.RamPercent)
	s.Counts[types.MetricCurrentGoRoutinesActive] = uint64(s.Goroutines)
	return s
}
