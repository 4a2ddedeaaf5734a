package geometry

import (
	"fmt"
	"sync"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
	"github.com/joeydtaylor/raysum/pkg/internal/utils"
)

// DefaultCapacity is the trace capacity of the stock solver build.
const DefaultCapacity = 500

// Ray is one incoming plane wave: backazimuth in degrees, horizontal
// slowness in s/km.
type Ray struct {
	Backazimuth float64
	Slowness    float64
}

// Geometry is the ordered list of rays to simulate plus the station offsets
// for each of them. A Geometry does not change after construction.
type Geometry struct {
	componentMetadata types.ComponentMetadata

	rays     []Ray
	north    []float64
	east     []float64
	capacity int

	loggers     []types.Logger
	loggersLock sync.Mutex

	pendingNorth []float64
	pendingEast  []float64
}

// NewGrid samples every combination of baz and slow. Backazimuth varies
// fastest: all backazimuths for slow[0], then all for slow[1], and so on.
func NewGrid(baz, slow []float64, options ...types.Option[*Geometry]) (*Geometry, error) {
	rays := make([]Ray, 0, len(baz)*len(slow))
	for _, s := range slow {
		for _, b := range baz {
			rays = append(rays, Ray{Backazimuth: b, Slowness: s})
		}
	}
	return build("grid", rays, options)
}

// NewPairs pairs baz[i] with slow[i].
func NewPairs(baz, slow []float64, options ...types.Option[*Geometry]) (*Geometry, error) {
	if len(baz) != len(slow) {
		return nil, fmt.Errorf("pairs need equal lengths, got %d backazimuths and %d slownesses: %w", len(baz), len(slow), types.ErrInvalidArgument)
	}
	rays := make([]Ray, len(baz))
	for i := range baz {
		rays[i] = Ray{Backazimuth: baz[i], Slowness: slow[i]}
	}
	return build("pairs", rays, options)
}

// New infers the sampling from the input lengths: equal lengths are paired,
// anything else spans the grid. Use NewGrid or NewPairs to be explicit;
// equal-length input cannot request a grid through New.
func New(baz, slow []float64, options ...types.Option[*Geometry]) (*Geometry, error) {
	if len(baz) == len(slow) {
		return NewPairs(baz, slow, options...)
	}
	return NewGrid(baz, slow, options...)
}

// FromRays builds a geometry from explicit rays.
func FromRays(rays []Ray, options ...types.Option[*Geometry]) (*Geometry, error) {
	return build("rays", append([]Ray(nil), rays...), options)
}

func build(mode string, rays []Ray, options []types.Option[*Geometry]) (*Geometry, error) {
	g := &Geometry{
		rays:     rays,
		capacity: DefaultCapacity,
		loggers:  make([]types.Logger, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "GEOMETRY",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	n := len(rays)
	if n == 0 {
		return nil, fmt.Errorf("geometry needs at least one ray: %w", types.ErrInvalidArgument)
	}
	if n > g.capacity {
		return nil, fmt.Errorf("%d rays exceed capacity %d: %w", n, g.capacity, types.ErrInvalidArgument)
	}

	var err error
	if g.north, err = utils.Broadcast(g.pendingNorth, n); err != nil {
		return nil, fmt.Errorf("north offsets: %v: %w", err, types.ErrInvalidArgument)
	}
	if g.east, err = utils.Broadcast(g.pendingEast, n); err != nil {
		return nil, fmt.Errorf("east offsets: %v: %w", err, types.ErrInvalidArgument)
	}
	g.pendingNorth, g.pendingEast = nil, nil

	g.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: New, mode: %s, traces: %d, capacity: %d => Geometry created", g.componentMetadata, mode, n, g.capacity)
	return g, nil
}

// Len returns the number of traces.
func (g *Geometry) Len() int { return len(g.rays) }

// Capacity returns the trace capacity of the export view.
func (g *Geometry) Capacity() int { return g.capacity }

// Pairs returns a copy of the rays in trace order.
func (g *Geometry) Pairs() []Ray { return append([]Ray(nil), g.rays...) }

// Ray returns the ray of trace i.
func (g *Geometry) Ray(i int) (Ray, error) {
	if i < 0 || i >= len(g.rays) {
		return Ray{}, fmt.Errorf("trace %d out of range [0, %d): %w", i, len(g.rays), types.ErrInvalidArgument)
	}
	return g.rays[i], nil
}

func (g *Geometry) Backazimuths() []float64 {
	return utils.Column(g.rays, func(r Ray) float64 { return r.Backazimuth })
}

func (g *Geometry) Slownesses() []float64 {
	return utils.Column(g.rays, func(r Ray) float64 { return r.Slowness })
}

func (g *Geometry) North() []float64 { return append([]float64(nil), g.north...) }
func (g *Geometry) East() []float64  { return append([]float64(nil), g.east...) }

func (g *Geometry) GetComponentMetadata() types.ComponentMetadata {
	return g.componentMetadata
}
