package builder

import (
	"io"

	"github.com/joeydtaylor/raysum/pkg/internal/codec"
	"github.com/joeydtaylor/raysum/pkg/internal/rf"
	"github.com/joeydtaylor/raysum/pkg/internal/traces"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

type Record = traces.Record

type Summary = traces.Summary

type ReceiverFunction = rf.Pair

// NewRunID returns a fresh identifier for tagging one run's log lines.
func NewRunID() string {
	return utils.GenerateUniqueHash()
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return utils.Radians(deg) }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return utils.Degrees(rad) }

// Summarize returns the per component summary of every record.
func Summarize(records []*traces.Record) [][3]traces.Summary {
	return utils.Column(records, func(r *traces.Record) [3]traces.Summary { return r.Summarize() })
}

// WriteStreams dumps records as plain text columns.
func WriteStreams(w io.Writer, records []*traces.Record) error {
	return traces.WriteText(w, records)
}

// WriteReceiverFunctions dumps receiver functions as plain text columns.
func WriteReceiverFunctions(w io.Writer, pairs []*rf.Pair) error {
	return rf.WriteText(w, pairs)
}

// StreamEncoder returns the text or json encoder for records.
func StreamEncoder(format string) (codec.Encoder[[]*traces.Record], error) {
	return codec.ForFormat(format, traces.WriteText)
}

// ReceiverFunctionEncoder returns the text or json encoder for receiver functions.
func ReceiverFunctionEncoder(format string) (codec.Encoder[[]*rf.Pair], error) {
	return codec.ForFormat(format, rf.WriteText)
}
