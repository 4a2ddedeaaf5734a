package internallogger

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T, level zapcore.Level) (*ZapLoggerAdapter, *observer.ObservedLogs) {
	t.Helper()
	logger := NewLogger()
	core, obs := observer.New(level)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()
	return logger, obs
}

func TestLog_WritesFields(t *testing.T) {
	logger, obs := observed(t, zapcore.DebugLevel)

	logger.Log(types.InfoLevel, "msg", "a", "b", "c", 3, "orphan")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "a" || fields[1].Key != "c" {
		t.Fatalf("unexpected field keys: %v, %v", fields[0].Key, fields[1].Key)
	}
}

func TestLog_TypedFields(t *testing.T) {
	logger, obs := observed(t, zapcore.DebugLevel)

	meta := types.ComponentMetadata{ID: "1", Type: "MODEL"}
	logger.Log(types.InfoLevel, "typed",
		"component", meta,
		"error", errors.New("boom"),
		"elapsed", 2*time.Second,
		"times", []float64{1.5, 2.5},
		"channels", [3]string{"R", "T", "Z"},
	)

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if got, ok := ctx["elapsed"].(time.Duration); !ok || got != 2*time.Second {
		t.Fatalf("expected elapsed duration field, got %#v", ctx["elapsed"])
	}
	if got, ok := ctx["error"].(string); !ok || got != "boom" {
		t.Fatalf("expected error string, got %#v", ctx["error"])
	}
	comp, ok := ctx["component"].(map[string]interface{})
	if !ok || comp["type"] != "MODEL" || comp["id"] != "1" {
		t.Fatalf("expected component object, got %#v", ctx["component"])
	}
	if got, ok := ctx["channels"].([]interface{}); !ok || len(got) != 3 || got[0] != "R" {
		t.Fatalf("expected channel list, got %#v", ctx["channels"])
	}
}

func TestInitialFields_SortedAndSkipsEmptyKey(t *testing.T) {
	fields := initialFields(map[string]interface{}{"run_id": "r", "": "x", "log_schema": "s"})
	if len(fields) != 2 || fields[0].Key != "log_schema" || fields[1].Key != "run_id" {
		t.Fatalf("unexpected initial fields: %v", fields)
	}
	if initialFields(nil) != nil {
		t.Fatalf("expected nil for no fields")
	}
}

func TestOpenSink_Rejects(t *testing.T) {
	if _, _, err := openSink(types.SinkConfig{Type: "file"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing path, got %v", err)
	}
	if _, _, err := openSink(types.SinkConfig{Type: "kafka"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown type, got %v", err)
	}
	logger := NewLogger()
	if err := logger.RemoveSink("missing"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing sink, got %v", err)
	}
}

func TestUnsyncable(t *testing.T) {
	if !unsyncable(&os.PathError{Op: "sync", Path: "/dev/stdout", Err: syscall.ENOTTY}) {
		t.Fatalf("expected ENOTTY to be ignored")
	}
	if unsyncable(errors.New("disk full")) {
		t.Fatalf("expected plain error to be reported")
	}
}

func TestLog_IgnoresNonStringKeys(t *testing.T) {
	logger, obs := observed(t, zapcore.DebugLevel)

	logger.Log(types.InfoLevel, "msg", 123, "skip", "k", "v")

	fields := obs.All()[0].Context
	if len(fields) != 1 || fields[0].Key != "k" {
		t.Fatalf("expected single field 'k', got %v", fields)
	}
}

func TestLog_RespectsCoreLevel(t *testing.T) {
	logger, obs := observed(t, zapcore.WarnLevel)

	logger.Log(types.InfoLevel, "info")
	logger.Log(types.WarnLevel, "warn")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Entry.Level != zapcore.WarnLevel {
		t.Fatalf("expected warn entry, got %v", entries[0].Entry.Level)
	}
}

func TestFlush_NilLogger(t *testing.T) {
	logger := NewLogger()
	logger.mu.Lock()
	logger.logger = nil
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg")
	if err := logger.Flush(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestConvertLevel_Defaults(t *testing.T) {
	if got := ConvertLevel(types.LogLevel(99)); got != zapcore.InfoLevel {
		t.Fatalf("expected default zapcore.InfoLevel, got %v", got)
	}
	if got := convertZapLevel(zapcore.Level(99)); got != types.InfoLevel {
		t.Fatalf("expected default types.InfoLevel, got %v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]types.LogLevel{
		"debug":  types.DebugLevel,
		"info":   types.InfoLevel,
		"warn":   types.WarnLevel,
		"error":  types.ErrorLevel,
		"dpanic": types.DPanicLevel,
		"panic":  types.PanicLevel,
		"fatal":  types.FatalLevel,
		"bogus":  types.InfoLevel,
	}

	for input, expect := range cases {
		if got := parseLogLevel(input); got != expect {
			t.Fatalf("parseLogLevel(%q) = %v, expected %v", input, got, expect)
		}
	}
}

func captureStreams(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	fn()
	outW.Close()
	errW.Close()
	o, _ := io.ReadAll(outR)
	e, _ := io.ReadAll(errR)
	return string(o), string(e)
}

func TestLoggerWithOutput_Stderr(t *testing.T) {
	stdout, stderr := captureStreams(t, func() {
		logger := NewLogger(LoggerWithOutput("stderr"), LoggerWithoutCaller())
		logger.Info("bridge invoke")
	})
	if stdout != "" {
		t.Fatalf("expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, `"msg":"bridge invoke"`) {
		t.Fatalf("expected log line on stderr, got %q", stderr)
	}
}

func TestLoggerWithOutput_DefaultStdout(t *testing.T) {
	stdout, stderr := captureStreams(t, func() {
		NewLogger(LoggerWithoutCaller()).Info("unpack")
	})
	if stderr != "" || !strings.Contains(stdout, `"msg":"unpack"`) {
		t.Fatalf("expected log line on stdout only, got stdout %q stderr %q", stdout, stderr)
	}
}
