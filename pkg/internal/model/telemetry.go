package model

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// ConnectLogger attaches loggers to the model.
func (m *Model) ConnectLogger(l ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (m *Model) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	m.loggersLock.Lock()
	loggers := append([]types.Logger(nil), m.loggers...)
	m.loggersLock.Unlock()
	if len(loggers) == 0 {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		}
	}
}

func (m *Model) countEdit() {
	if m.meter != nil {
		m.meter.IncrementCount(types.MetricModelEditCount)
	}
}
