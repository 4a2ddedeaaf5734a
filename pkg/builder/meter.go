package builder

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/meter"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

type MetricsSnapshot = types.MetricsSnapshot

type Meter = meter.Meter

// Here we re-export the counter names from the types package
const (
	MetricSolverCallCount         MetricName = MetricName(types.MetricSolverCallCount)
	MetricSolverErrorCount        MetricName = MetricName(types.MetricSolverErrorCount)
	MetricSolverElapsed           MetricName = MetricName(types.MetricSolverElapsed)
	MetricTracesUnpackedCount     MetricName = MetricName(types.MetricTracesUnpackedCount)
	MetricReceiverFunctionCount   MetricName = MetricName(types.MetricReceiverFunctionCount)
	MetricFilteredRowCount        MetricName = MetricName(types.MetricFilteredRowCount)
	MetricFilterDesignCount       MetricName = MetricName(types.MetricFilterDesignCount)
	MetricFilterCacheHitCount     MetricName = MetricName(types.MetricFilterCacheHitCount)
	MetricModelEditCount          MetricName = MetricName(types.MetricModelEditCount)
	MetricCurrentRamPercentage    MetricName = MetricName(types.MetricCurrentRamPercentage)
	MetricCurrentCpuPercentage    MetricName = MetricName(types.MetricCurrentCpuPercentage)
	MetricCurrentGoRoutinesActive MetricName = MetricName(types.MetricCurrentGoRoutinesActive)
)

func NewMeter(options ...types.Option[*meter.Meter]) *meter.Meter {
	return meter.NewMeter(options...)
}

func MeterWithLogger(l ...types.Logger) types.Option[*meter.Meter] {
	return meter.WithLogger(l...)
}

// MeterWithComponentMetadata names the meter in log lines.
func MeterWithComponentMetadata(name string, id string) types.Option[*meter.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithCPUInterval sets how long a snapshot samples CPU usage.
func MeterWithCPUInterval(d time.Duration) types.Option[*meter.Meter] {
	return meter.WithCPUInterval(d)
}

func MeterWithHostSampler(cpu func(time.Duration) (float64, error), ram func() (float64, error)) types.Option[*meter.Meter] {
	return meter.WithHostSampler(cpu, ram)
}
