package meter

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

var metricDisplayNames = map[string]string{
	types.MetricSolverCallCount:         "Solver Calls",
	types.MetricSolverErrorCount:        "Solver Errors",
	types.MetricSolverElapsed:           "Solver Time",
	types.MetricTracesUnpackedCount:     "Traces Unpacked",
	types.MetricReceiverFunctionCount:   "Receiver Functions",
	types.MetricFilteredRowCount:        "Filtered Rows",
	types.MetricFilterDesignCount:       "Filter Designs",
	types.MetricFilterCacheHitCount:     "Filter Cache Hits",
	types.MetricModelEditCount:          "Model Edits",
	types.MetricCurrentCpuPercentage:    "CPU Percentage",
	types.MetricCurrentRamPercentage:    "RAM Percentage",
	types.MetricCurrentGoRoutinesActive: "Active Go Routines",
}

var defaultMetricNames = []string{
	types.MetricSolverCallCount,
	types.MetricSolverErrorCount,
	types.MetricSolverElapsed,
	types.MetricTracesUnpackedCount,
	types.MetricReceiverFunctionCount,
	types.MetricFilteredRowCount,
	types.MetricFilterDesignCount,
	types.MetricFilterCacheHitCount,
	types.MetricModelEditCount,
}

// GetMetricDisplayName returns the label used in reports.
func (m *Meter) GetMetricDisplayName(name string) string {
	if display, ok := metricDisplayNames[name]; ok {
		return display
	}
	return name
}

// Report writes a final summary of s: host usage first, then every
// non-zero counter in name order.
func (m *Meter) Report(w io.Writer, s types.MetricsSnapshot) error {
	if _, err := fmt.Fprintf(w, "Elapsed Time: %s\n", s.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %d, %s: %.2f%%, %s: %.2f%%\n",
		m.GetMetricDisplayName(types.MetricCurrentGoRoutinesActive), s.Goroutines,
		m.GetMetricDisplayName(types.MetricCurrentCpuPercentage), s.CpuPercent,
		m.GetMetricDisplayName(types.MetricCurrentRamPercentage), s.RamPercent,
	); err != nil {
		return err
	}

	names := make([]string, 0, len(s.Counts))
	for name := range s.Counts {
		switch name {
		case types.MetricCurrentCpuPercentage, types.MetricCurrentRamPercentage, types.MetricCurrentGoRoutinesActive:
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		count := s.Counts[name]
		if count == 0 {
			continue
		}
		var err error
		if name == types.MetricSolverElapsed {
			_, err = fmt.Fprintf(w, "%s: %s\n", m.GetMetricDisplayName(name), time.Duration(count))
		} else {
			_, err = fmt.Fprintf(w, "%s: %d\n", m.GetMetricDisplayName(name), count)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
