package geometry

import (
	"fmt"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// ConnectLogger attaches loggers to the geometry.
func (g *Geometry) ConnectLogger(l ...types.Logger) {
	g.loggersLock.Lock()
	defer g.loggersLock.Unlock()
	g.loggers = append(g.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (g *Geometry) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	g.loggersLock.Lock()
	loggers := append([]types.Logger(nil), g.loggers...)
	g.loggersLock.Unlock()
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
