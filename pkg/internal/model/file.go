package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

const header = "# thickn     rho      vp      vs  flag aniso  trend  plunge  strike   dip\n"

// column widths of the model table, matching the stock raysum sample files.
var widths = [10]int{8, 7, 7, 7, 1, 5, 6, 5, 6, 5}

// separators printed before each column.
var separators = [10]string{"", " ", " ", " ", "    ", " ", " ", "   ", "  ", " "}

// String renders the column header and one row per layer.
func (m *Model) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	b.WriteString(header)
	for _, l := range m.layers {
		row := [10]float64{l.Thickness, l.Density, l.Vp, l.Vs, flagValue(l), l.Anisotropy, l.Trend, l.Plunge, l.Strike, l.Dip}
		for i, v := range row {
			b.WriteString(separators[i])
			b.WriteString(formatColumn(v, widths[i]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatColumn right-aligns v in width with a leading sign slot. The
// shortest exact representation is used so a written model reads back to
// the same values.
func formatColumn(v float64, width int) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") && width > 1 {
		s += ".0"
	}
	if v >= 0 {
		s = " " + s
	}
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// Write saves the model as a raysum model file with a generated header and
// an optional comment line.
func (m *Model) Write(w io.Writer, comment string) error {
	if !strings.HasPrefix(comment, "#") {
		comment = "# " + comment
	}
	if !strings.HasSuffix(comment, "\n") {
		comment += "\n"
	}

	buf := "# Raysum velocity model created with raysum\n"
	buf += fmt.Sprintf("# on: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	buf += comment
	buf += m.String()

	_, err := io.WriteString(w, buf)
	return err
}

// WriteFile saves the model to path.
func (m *Model) WriteFile(path, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f, comment); err != nil {
		_ = f.Close()
		return err
	}
	m.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: WriteFile, path: %s => Model saved", m.componentMetadata, path)
	return f.Close()
}

// Read parses a model file. Lines starting with '#' and blank lines are
// skipped; every other line holds thickness, density, vp, vs, flag,
// anisotropy, trend, plunge, strike and dip.
func Read(r io.Reader, options ...types.Option[*Model]) (*Model, error) {
	var layers []Layer
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 10 {
			return nil, fmt.Errorf("line %d: expected 10 columns, got %d: %w", lineNo, len(fields), types.ErrInvalidArgument)
		}
		var v [10]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %v: %w", lineNo, i+1, err, types.ErrInvalidArgument)
			}
			v[i] = x
		}
		layers = append(layers, Layer{
			Thickness:  v[0],
			Density:    v[1],
			Vp:         v[2],
			Vs:         v[3],
			Isotropic:  v[4] != 0,
			Anisotropy: v[5],
			Trend:      v[6],
			Plunge:     v[7],
			Strike:     v[8],
			Dip:        v[9],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromLayers(layers, options...)
}

// ReadFile parses the model file at path.
func ReadFile(path string, options ...types.Option[*Model]) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, options...)
}
