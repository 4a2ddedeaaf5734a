package internallogger

import (
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

type levelMapping struct {
	name  string
	level types.LogLevel
	zap   zapcore.Level
}

// levelTable is ordered from most to least verbose.
var levelTable = []levelMapping{
	{"debug", types.DebugLevel, zapcore.DebugLevel},
	{"info", types.InfoLevel, zapcore.InfoLevel},
	{"warn", types.WarnLevel, zapcore.WarnLevel},
	{"error", types.ErrorLevel, zapcore.ErrorLevel},
	{"dpanic", types.DPanicLevel, zapcore.DPanicLevel},
	{"panic", types.PanicLevel, zapcore.PanicLevel},
	{"fatal", types.FatalLevel, zapcore.FatalLevel},
}

// parseLogLevel maps a RAYSUM_LOG_LEVEL style name onto a level. Unknown
// names are info.
func parseLogLevel(name string) types.LogLevel {
	for _, m := range levelTable {
		if m.name == name {
			return m.level
		}
	}
	return types.InfoLevel
}

// ConvertLevel converts a types.LogLevel to a zap level.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	for _, m := range levelTable {
		if m.level == level {
			return m.zap
		}
	}
	return zapcore.InfoLevel
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	for _, m := range levelTable {
		if m.zap == level {
			return m.level
		}
	}
	return types.InfoLevel
}
