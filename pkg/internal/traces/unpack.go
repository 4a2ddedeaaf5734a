package traces

import (
	"fmt"
	"sync"
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/geometry"
	"github.com/joeydtaylor/raysum/pkg/internal/solver"
	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// Layout tells the unpacker how to read a solver output.
type Layout struct {
	Traces   int
	Samples  int
	Delta    float64
	Shift    float64
	Rotation types.Rotation
	WaveType types.WaveType
	Rays     []geometry.Ray
}

// Unpacker converts raw solver output into records.
type Unpacker struct {
	componentMetadata types.ComponentMetadata

	clock func() time.Time

	loggers     []types.Logger
	loggersLock sync.Mutex
	meter       types.Meter
}

// NewUnpacker returns an unpacker stamping records with the wall clock.
func NewUnpacker(options ...types.Option[*Unpacker]) *Unpacker {
	u := &Unpacker{
		clock:   time.Now,
		loggers: make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "TRACE_UNPACKER",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(u)
	}
	return u
}

// Unpack reads the first layout.Samples samples of the first layout.Traces
// traces out of out and returns one record per trace, in trace order.
func Unpack(out solver.Output, layout Layout) ([]*Record, error) {
	return NewUnpacker().Unpack(out, layout)
}

// Unpack reads the first layout.Samples samples of the first layout.Traces
// traces out of out and returns one record per trace, in trace order.
// Padding beyond those bounds is dropped.
func (u *Unpacker) Unpack(out solver.Output, layout Layout) ([]*Record, error) {
	components, err := layout.Rotation.Components()
	if err != nil {
		return nil, err
	}
	if layout.Traces <= 0 || layout.Samples <= 0 {
		return nil, fmt.Errorf("layout needs positive traces and samples, got %d and %d: %w", layout.Traces, layout.Samples, types.ErrInvalidArgument)
	}
	if len(layout.Rays) != layout.Traces {
		return nil, fmt.Errorf("%d rays for %d traces: %w", len(layout.Rays), layout.Traces, types.ErrInvalidArgument)
	}
	if err := out.Check(layout.Samples, layout.Traces); err != nil {
		return nil, err
	}

	var channels [3]string
	for i, c := range components {
		channels[i] = "BH" + c
	}

	records := make([]*Record, layout.Traces)
	for t := range records {
		r := &Record{
			Channels:    channels,
			Delta:       layout.Delta,
			Shift:       layout.Shift,
			Backazimuth: layout.Rays[t].Backazimuth,
			Slowness:    layout.Rays[t].Slowness,
			WaveType:    layout.WaveType,
			StartTime:   u.clock(),
		}
		for c := 0; c < 3; c++ {
			data := make([]float64, layout.Samples)
			for s := range data {
				data[s] = out.At(c, s, t)
			}
			r.Data[c] = data
		}
		records[t] = r
	}

	if u.meter != nil {
		u.meter.AddToCount(types.MetricTracesUnpackedCount, uint64(len(records)))
	}
	u.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: Unpack, traces: %d, samples: %d, channels: %v => Traces unpacked", u.componentMetadata, layout.Traces, layout.Samples, channels)
	return records, nil
}

func (u *Unpacker) GetComponentMetadata() types.ComponentMetadata { return u.componentMetadata }

// ConnectLogger attaches loggers to the unpacker.
func (u *Unpacker) ConnectLogger(l ...types.Logger) {
	u.loggersLock.Lock()
	defer u.loggersLock.Unlock()
	u.loggers = append(u.loggers, l...)
}

// NotifyLoggers emits a log event to all configured loggers.
func (u *Unpacker) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	u.loggersLock.Lock()
	loggers := append([]types.Logger(nil), u.loggers...)
	u.loggersLock.Unlock()
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
