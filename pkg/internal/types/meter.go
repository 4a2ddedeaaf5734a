package types

import "time"

const (
	MetricSolverCallCount         = "solver_call_count"
	MetricSolverErrorCount        = "solver_error_count"
	MetricSolverElapsed           = "solver_elapsed_ns"
	MetricTracesUnpackedCount     = "traces_unpacked_count"
	MetricReceiverFunctionCount   = "receiver_function_count"
	MetricFilteredRowCount        = "filtered_row_count"
	MetricFilterDesignCount       = "filter_design_count"
	MetricFilterCacheHitCount     = "filter_cache_hit_count"
	MetricModelEditCount          = "model_edit_count"
	MetricCurrentRamPercentage    = "current_ram_percentage"
	MetricCurrentCpuPercentage    = "current_cpu_percentage"
	MetricCurrentGoRoutinesActive = "current_go_routines_active"
)

// MetricsSnapshot is a point-in-time copy of a meter's counters plus host
// resource usage.
type MetricsSnapshot struct {
	Counts     map[string]uint64
	RamPercent float64
	CpuPercent float64
	Goroutines int
	Elapsed    time.Duration
}

// Meter counts pipeline events.
type Meter interface {
	IncrementCount(name string)
	AddToCount(name string, delta uint64)
	GetMetricCount(name string) uint64
	ObserveDuration(name string, d time.Duration)
	Snapshot() MetricsSnapshot
	GetComponentMetadata() ComponentMetadata
}
