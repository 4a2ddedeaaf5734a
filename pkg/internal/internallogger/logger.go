package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/raysum/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, the initial level and the caller skip.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap. The base core
// writes JSON to stdout, or stderr with LoggerWithOutput; AddSink tees
// additional cores onto it.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerOn    bool
	callerDepth int
	sinks       map[string]sinkEntry
}

// NewLogger builds a ZapLoggerAdapter at info level unless an option says otherwise.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.OutputPaths = []string{"stdout"}
	level := zapcore.InfoLevel
	callerDepth := 1

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg, &level, &callerDepth)
	}

	if cfg.InitialFields == nil {
		cfg.InitialFields = map[string]interface{}{}
	}
	if _, ok := cfg.InitialFields[logschema.FieldSchema]; !ok {
		cfg.InitialFields[logschema.FieldSchema] = logschema.SchemaID
	}

	z := &ZapLoggerAdapter{
		atomicLevel: cfg.Level,
		encConfig:   encoderConfig(cfg.Development),
		baseFields:  initialFields(cfg.InitialFields),
		callerOn:    !cfg.DisableCaller,
		callerDepth: callerDepth,
		sinks:       make(map[string]sinkEntry),
	}
	base := zapcore.Lock(os.Stdout)
	if len(cfg.OutputPaths) > 0 && cfg.OutputPaths[0] == "stderr" {
		base = zapcore.Lock(os.Stderr)
	}
	z.baseCore = zapcore.NewCore(zapcore.NewJSONEncoder(z.encConfig), base, z.atomicLevel)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
