package model_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joeydtaylor/raysum/pkg/internal/model"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	m := threeLayers(t,
		model.WithFlags(true, false, true),
		model.WithAnisotropy(0, -4.25, 0),
		model.WithTrend(0, 123.4567, 0),
		model.WithPlunge(0, 12.5, 0),
		model.WithStrike(0, 270, 0),
		model.WithDip(0, 20, 0),
	)

	var buf bytes.Buffer
	if err := m.Write(&buf, "round trip"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "# round trip\n") {
		t.Fatalf("comment missing from output:\n%s", buf.String())
	}

	got, err := model.Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if diff := cmp.Diff(m.Layers(), got.Layers()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestString_ColumnLayout(t *testing.T) {
	m := crustOverMantle(t)
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	want := " 30000.0  2800.0  6000.0  3600.0     1   0.0    0.0     0.0     0.0   0.0"
	if lines[1] != want {
		t.Fatalf("row mismatch:\n got %q\nwant %q", lines[1], want)
	}
}

func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	m := crustOverMantle(t)
	if err := m.WriteFile(path, "# file"); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := model.ReadFile(path, model.WithCapacity(4))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got.Capacity() != 4 {
		t.Fatalf("options not applied on read, capacity %d", got.Capacity())
	}
	if diff := cmp.Diff(m.Layers(), got.Layers()); diff != "" {
		t.Fatalf("file round trip mismatch:\n%s", diff)
	}
}

func TestRead_Errors(t *testing.T) {
	_, err := model.Read(strings.NewReader("# only a comment\n1 2 3\n"))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for short row, got %v", err)
	}
	_, err = model.Read(strings.NewReader("1 2 3 4 1 0 0 0 0 x\n"))
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad number, got %v", err)
	}
	if _, err := model.ReadFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
