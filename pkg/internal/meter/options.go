package meter

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// WithLogger adds loggers to the Meter.
func WithLogger(loggers ...types.Logger) types.Option[*Meter] {
	return func(m *Meter) {
		m.ConnectLogger(loggers...)
	}
}

// WithComponentMetadata sets the name and optionally the id of the Meter.
func WithComponentMetadata(name string, id string) types.Option[*Meter] {
	return func(m *Meter) {
		m.componentMetadata.Name = name
		if id != "" {
			m.componentMetadata.ID = id
		}
	}
}

// WithCPUInterval sets how long Snapshot measures CPU usage. Zero compares
// against the previous call.
func WithCPUInterval(d time.Duration) types.Option[*Meter] {
	return func(m *Meter) {
		if d >= 0 {
			m.cpuInterval = d
		}
	}
}

// WithHostSampler replaces the gopsutil probes, e.g. in tests.
func WithHostSampler(cpu func(time.Duration) (float64, error), ram func() (float64, error)) types.Option[*Meter] {
	return func(m *Meter) {
		if cpu != nil {
			m.sampleCPU = cpu
		}
		if ram != nil {
			m.sampleRAM = ram
		}
	}
}
