package geometry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// String renders one "baz slow north east" row per trace.
func (g *Geometry) String() string {
	var b strings.Builder
	for i, r := range g.rays {
		fmt.Fprintf(&b, "% 7.2f % 8.4f %7.2f %7.2f\n", r.Backazimuth, r.Slowness, g.north[i], g.east[i])
	}
	return b.String()
}

// Write saves the geometry table to w.
func (g *Geometry) Write(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// WriteFile saves the geometry table to path.
func (g *Geometry) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	g.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: WriteFile, path: %s => Geometry saved", g.componentMetadata, path)
	return f.Close()
}

// Read parses a geometry table. Rows hold backazimuth and slowness,
// optionally followed by north and east offsets; '#' lines are skipped. The
// rows are taken as pairs, never as a grid.
func Read(r io.Reader, options ...types.Option[*Geometry]) (*Geometry, error) {
	var (
		rays        []Ray
		north, east []float64
		columns     int
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 2 or 4 columns, got %d: %w", lineNo, len(fields), types.ErrInvalidArgument)
		}
		if columns == 0 {
			columns = len(fields)
		} else if columns != len(fields) {
			return nil, fmt.Errorf("line %d: expected %d columns like the first row, got %d: %w", lineNo, columns, len(fields), types.ErrInvalidArgument)
		}
		v := make([]float64, len(fields))
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %v: %w", lineNo, i+1, err, types.ErrInvalidArgument)
			}
			v[i] = x
		}
		rays = append(rays, Ray{Backazimuth: v[0], Slowness: v[1]})
		if columns == 4 {
			north = append(north, v[2])
			east = append(east, v[3])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	opts := append([]types.Option[*Geometry]{WithOffsets(north, east)}, options...)
	return FromRays(rays, opts...)
}

// ReadFile parses the geometry table at path.
func ReadFile(path string, options ...types.Option[*Geometry]) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, options...)
}
