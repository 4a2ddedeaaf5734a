package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"gopkg.in/yaml.v3"
)

// Config is a forward run described in YAML.
type Config struct {
	LogLevel    string         `yaml:"log_level"`
	Concurrency int            `yaml:"concurrency"`
	Solver      SolverConfig   `yaml:"solver"`
	Model       ModelConfig    `yaml:"model"`
	Geometry    GeometryConfig `yaml:"geometry"`
	Run         RunConfig      `yaml:"run"`
	Filter      *FilterConfig  `yaml:"filter,omitempty"`
	Batch       *BatchConfig   `yaml:"batch,omitempty"`
	Output      OutputConfig   `yaml:"output"`
}

// SolverConfig locates the native solver.
type SolverConfig struct {
	Plugin     string `yaml:"plugin"`
	MaxSamples int    `yaml:"max_samples"`
}

// ModelConfig names a model file and the edits applied after loading it.
type ModelConfig struct {
	File     string   `yaml:"file"`
	Capacity int      `yaml:"capacity"`
	Commands []string `yaml:"commands,omitempty"`
}

// GeometryConfig is either a geometry file or inline arrays. Mode is grid or
// pairs and only applies to the arrays.
type GeometryConfig struct {
	File        string    `yaml:"file,omitempty"`
	Mode        string    `yaml:"mode,omitempty"`
	Backazimuth []float64 `yaml:"backazimuth,omitempty"`
	Slowness    []float64 `yaml:"slowness,omitempty"`
	North       []float64 `yaml:"north,omitempty"`
	East        []float64 `yaml:"east,omitempty"`
	Capacity    int       `yaml:"capacity"`
}

type RunConfig struct {
	WaveType          string   `yaml:"wave_type"`
	Multiples         int      `yaml:"multiples"`
	Samples           int      `yaml:"samples"`
	Delta             float64  `yaml:"delta"`
	Align             int      `yaml:"align"`
	Shift             *float64 `yaml:"shift,omitempty"`
	Rotation          int      `yaml:"rotation"`
	Verbose           bool     `yaml:"verbose"`
	ReceiverFunctions bool     `yaml:"rfs"`
}

type FilterConfig struct {
	Target    string  `yaml:"target"`
	Kind      string  `yaml:"kind"`
	Freq      float64 `yaml:"freq,omitempty"`
	FreqMin   float64 `yaml:"freqmin,omitempty"`
	FreqMax   float64 `yaml:"freqmax,omitempty"`
	Corners   int     `yaml:"corners,omitempty"`
	ZeroPhase bool    `yaml:"zero_phase"`
}

// BatchConfig switches run to the batch receiver function pipeline, band
// passed between FreqMin and FreqMax (Hz).
type BatchConfig struct {
	FreqMin float64 `yaml:"fmin"`
	FreqMax float64 `yaml:"fmax"`
}

// OutputConfig names the files a run writes, as text or json. Empty paths
// are skipped.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Streams string `yaml:"streams,omitempty"`
	RFs     string `yaml:"rfs,omitempty"`
	Batch   string `yaml:"batch,omitempty"`
	Metrics bool   `yaml:"metrics"`
}

// DefaultConfig returns the settings of a plain P-wave run.
func DefaultConfig() *Config {
	p := solver.DefaultParams()
	return &Config{
		LogLevel:    "info",
		Concurrency: 1,
		Solver:      SolverConfig{MaxSamples: solver.DefaultMaxSamples},
		Model:       ModelConfig{Capacity: 15},
		Geometry:    GeometryConfig{Mode: "grid", Capacity: 500},
		Output:      OutputConfig{Format: "text"},
		Run: RunConfig{
			WaveType:  string(p.WaveType),
			Multiples: int(p.Multiples),
			Samples:   p.Samples,
			Delta:     p.Delta,
			Align:     int(p.Align),
			Rotation:  int(p.Rotation),
		},
	}
}

// Parse reads a run file from r on top of DefaultConfig and applies the
// environment overrides. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %v: %w", err, types.ErrInvalidArgument)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Load parses the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// Save writes c to path.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
