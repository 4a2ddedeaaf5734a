package internallogger

import (
	"sort"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// encoderConfig names every key after pkg/logschema so run logs can be
// parsed back into logschema.LogRecord.
func encoderConfig(development bool) zapcore.EncoderConfig {
	level := zapcore.LowercaseLevelEncoder
	if development {
		level = zapcore.CapitalLevelEncoder
	}
	return zapcore.EncoderConfig{
		TimeKey:        logschema.FieldTimestamp,
		LevelKey:       logschema.FieldLevel,
		NameKey:        logschema.FieldLogger,
		CallerKey:      logschema.FieldCaller,
		MessageKey:     logschema.FieldMessage,
		StacktraceKey:  logschema.FieldStack,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    level,
		EncodeTime:     func(t time.Time, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(t.UTC().Format(time.RFC3339Nano)) },
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// initialFields turns the configured initial fields into zap fields in key
// order, so every line of a run carries them in the same position.
func initialFields(fields map[string]interface{}) []zap.Field {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, fields[key]))
	}
	return out
}

// pairFields converts alternating key/value arguments. Non-string keys and
// a trailing key without a value are dropped.
func pairFields(keysAndValues []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		out = append(out, valueField(key, keysAndValues[i+1]))
	}
	return out
}

func valueField(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case types.ComponentMetadata:
		return zap.Object(key, metadataMarshaler(v))
	case *types.ComponentMetadata:
		if v == nil {
			return zap.Any(key, nil)
		}
		return zap.Object(key, metadataMarshaler(*v))
	case error:
		return zap.NamedError(key, v)
	case time.Duration:
		return zap.Duration(key, v)
	case []float64:
		return zap.Float64s(key, v)
	case [3]string:
		return zap.Strings(key, v[:])
	default:
		return zap.Any(key, value)
	}
}

type metadataMarshaler types.ComponentMetadata

func (m metadataMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", m.ID)
	enc.AddString("type", m.Type)
	enc.AddString("name", m.Name)
	return nil
}
