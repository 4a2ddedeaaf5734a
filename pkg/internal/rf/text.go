package rf

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText dumps pairs as plain text: a '#' header per pair followed by
// one "lag radial transverse" row per sample.
func WriteText(w io.Writer, pairs []*Pair) error {
	bw := bufio.NewWriter(w)
	for i, p := range pairs {
		fmt.Fprintf(bw, "# rf %d baz %.2f slow %.4f delta %g wave %s\n", i, p.Backazimuth, p.Slowness, p.Delta, p.WaveType)
		fmt.Fprintf(bw, "# lag %s %s\n", p.Channels[0], p.Channels[1])
		for s, lag := range p.TimeAxis() {
			fmt.Fprintf(bw, "%.4f %.6e %.6e\n", lag, p.Radial[s], p.Transverse[s])
		}
	}
	return bw.Flush()
}

// WriteText dumps the array, one line per (trace, component) row.
func (a *Array) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for n := 0; n < a.Traces; n++ {
		for k := 0; k < 2; k++ {
			fmt.Fprintf(bw, "%d %d", n, k)
			for _, v := range a.Row(n, k) {
				fmt.Fprintf(bw, " %.6e", v)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
