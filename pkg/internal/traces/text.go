package traces

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// WriteText dumps records as plain text: a '#' header per record followed by
// one "time c1 c2 c3" row per sample.
func WriteText(w io.Writer, records []*Record) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		fmt.Fprintf(bw, "# trace %d baz %.2f slow %.4f delta %g shift %g start %s\n",
			i, r.Backazimuth, r.Slowness, r.Delta, r.Shift, r.StartTime.UTC().Format(time.RFC3339Nano))
		fmt.Fprintf(bw, "# time %s %s %s\n", r.Channels[0], r.Channels[1], r.Channels[2])
		for s, t := range r.TimeAxis() {
			fmt.Fprintf(bw, "%.4f %.6e %.6e %.6e\n", t, r.Data[0][s], r.Data[1][s], r.Data[2][s])
		}
	}
	return bw.Flush()
}
