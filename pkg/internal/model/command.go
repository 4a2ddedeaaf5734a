package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// attribute describes one key of the edit command grammar.
type attribute struct {
	name  string
	scale float64 // km and km/s are given on the command line
	fix   Fix
	field func(*Layer) *float64
}

var attributes = map[string]attribute{
	"t":   {name: "thickn", scale: 1000, field: func(l *Layer) *float64 { return &l.Thickness }},
	"vp":  {name: "vp", scale: 1000, field: func(l *Layer) *float64 { return &l.Vp }},
	"vs":  {name: "vs", scale: 1000, field: func(l *Layer) *float64 { return &l.Vs }},
	"psp": {name: "vpvs", scale: 1, fix: FixVs, field: func(l *Layer) *float64 { return &l.VpVs }},
	"pss": {name: "vpvs", scale: 1, fix: FixVp, field: func(l *Layer) *float64 { return &l.VpVs }},
	"s":   {name: "strike", scale: 1, field: func(l *Layer) *float64 { return &l.Strike }},
	"d":   {name: "dip", scale: 1, field: func(l *Layer) *float64 { return &l.Dip }},
	"a":   {name: "ani", scale: 1, field: func(l *Layer) *float64 { return &l.Anisotropy }},
	"tr":  {name: "trend", scale: 1, field: func(l *Layer) *float64 { return &l.Trend }},
	"pl":  {name: "plunge", scale: 1, field: func(l *Layer) *float64 { return &l.Plunge }},
}

type directive struct {
	attr  attribute
	layer int
	op    byte
	value float64
}

// ApplyCommand edits the model with a ';' separated list of directives of
// the form KEY LAYER OP VALUE, e.g. "t0+10;psp0-0.2;d1+5;s1=45".
//
// KEY is one of
//
//	t    thickness (km)
//	vp   P velocity (km/s)
//	vs   S velocity (km/s)
//	psp  Vp/Vs holding Vs fixed (Vp changes)
//	pss  Vp/Vs holding Vp fixed (Vs changes)
//	s    strike (deg)
//	d    dip (deg)
//	a    anisotropy (%)
//	tr   trend of the symmetry axis (deg)
//	pl   plunge of the symmetry axis (deg)
//
// OP is '=' (set), '+' (increase) or '-' (decrease). The whole command is
// parsed before any directive is applied.
func (m *Model) ApplyCommand(command string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	directives, err := parseCommand(command, len(m.layers))
	if err != nil {
		return err
	}

	for _, d := range directives {
		layer := &m.layers[d.layer]
		field := d.attr.field(layer)
		switch d.op {
		case '=':
			*field = d.value
		case '+':
			*field += d.value
		case '-':
			*field -= d.value
		}
		layer.Isotropic = layer.Anisotropy == 0

		if err := m.updateLocked(d.attr.fix); err != nil {
			return err
		}
		m.countEdit()

		op := string(d.op)
		if d.op == '=' {
			op = ""
		}
		m.NotifyLoggers(types.InfoLevel, "Changed: %s[%d] %s= %v", d.attr.name, d.layer, op, d.value)
	}
	return nil
}

func parseCommand(command string, layers int) ([]directive, error) {
	var out []directive
	for _, part := range strings.Split(command, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := parseDirective(part, layers)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseDirective(part string, layers int) (directive, error) {
	var (
		head, tail string
		op         byte
	)
	for _, sign := range []byte{'=', '+', '-'} {
		pieces := strings.Split(part, string(sign))
		if len(pieces) == 2 {
			head, tail, op = pieces[0], pieces[1], sign
			break
		}
	}
	if op == 0 {
		return directive{}, fmt.Errorf("malformed directive %q, expected KEY LAYER [=+-] VALUE: %w", part, types.ErrInvalidArgument)
	}

	digit := strings.IndexAny(head, "0123456789")
	if digit < 0 {
		return directive{}, fmt.Errorf("directive %q has no layer index: %w", part, types.ErrInvalidArgument)
	}
	key := strings.TrimSpace(head[:digit])
	attr, ok := attributes[key]
	if !ok {
		return directive{}, fmt.Errorf("unknown attribute %q in %q: %w", key, part, types.ErrInvalidArgument)
	}
	layer, err := strconv.Atoi(strings.TrimSpace(head[digit:]))
	if err != nil {
		return directive{}, fmt.Errorf("bad layer index in %q: %w", part, types.ErrInvalidArgument)
	}
	if layer < 0 || layer >= layers {
		return directive{}, fmt.Errorf("layer %d out of range [0, %d): %w", layer, layers, types.ErrInvalidArgument)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(tail), 64)
	if err != nil {
		return directive{}, fmt.Errorf("bad value in %q: %w", part, types.ErrInvalidArgument)
	}

	return directive{attr: attr, layer: layer, op: op, value: value * attr.scale}, nil
}
