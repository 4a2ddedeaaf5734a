package traces

import (
	"time"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// WithClock sets the source of record start times.
func WithClock(clock func() time.Time) types.Option[*Unpacker] {
	return func(u *Unpacker) {
		if clock != nil {
			u.clock = clock
		}
	}
}

func WithLogger(l ...types.Logger) types.Option[*Unpacker] {
	return func(u *Unpacker) {
		u.ConnectLogger(l...)
	}
}

func WithMeter(m types.Meter) types.Option[*Unpacker] {
	return func(u *Unpacker) {
		u.meter = m
	}
}
