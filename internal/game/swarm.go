package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/fireflies/internal/canvas"
	"github.com/iburimskiy/fireflies/internal/config"
	"github.com/iburimskiy/fireflies/internal/firefly"
)

var (
	ErrSurfaceNotFound = errors.New("surface not found")
	ErrNoContext       = errors.New("surface has no 2d context")
	ErrNoScheduler     = errors.New("no frame scheduler")
	ErrRunning         = errors.New("swarm already running")
)

// Options controls swarm creation. A zero size or a nil Random falls back
// to the config defaults. Count is used as given; negative counts build an
// empty swarm.
type Options struct {
	Width, Height float64
	Count         int
	Random        Random
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = config.CanvasWidth
	}
	if o.Height <= 0 {
		o.Height = config.CanvasHeight
	}
	if o.Count < 0 {
		o.Count = 0
	}
	if o.Random == nil {
		o.Random = NewRandom(0)
	}
	return o
}

// DefaultOptions returns the canvas size and firefly count from config with
// a clock seeded random source.
func DefaultOptions() Options {
	return Options{
		Width:  config.CanvasWidth,
		Height: config.CanvasHeight,
		Count:  config.FireflyCount,
		Random: NewRandom(0),
	}
}

// Swarm is the animation state: the fireflies, the context they are drawn
// into and the surface dimensions, all fixed at setup.
type Swarm struct {
	fireflies []*firefly.Firefly
	ctx       canvas.Context

	width, height float64
	scale         float64
	center        firefly.Vector

	running bool
}

// Setup resolves the element id through provider, sizes its backing buffer
// for the device scale, and creates a swarm drawing into its 2D context.
func Setup(provider canvas.Provider, id string, opts Options) (*Swarm, error) {
	opts = opts.withDefaults()

	el, err := provider.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSurfaceNotFound, id, err)
	}
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, id)
	}

	scale := el.DeviceScale()
	if scale <= 0 {
		scale = 1
	}
	el.Resize(int(opts.Width*scale), int(opts.Height*scale))

	ctx, err := el.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoContext, id, err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoContext, id)
	}
	ctx.Scale(scale, scale)

	s := Initialize(ctx, opts)
	s.scale = scale
	return s, nil
}

// Initialize creates a swarm of opts.Count randomized fireflies drawing into
// ctx. The context is used as is; no transform is applied.
func Initialize(ctx canvas.Context, opts Options) *Swarm {
	opts = opts.withDefaults()

	s := &Swarm{
		fireflies: make([]*firefly.Firefly, 0, opts.Count),
		ctx:       ctx,
		width:     opts.Width,
		height:    opts.Height,
		scale:     1,
		center:    firefly.Vec(opts.Width/2, opts.Height/2),
	}

	rnd := opts.Random
	for i := 0; i < opts.Count; i++ {
		angle := firefly.Vec(
			rnd.Float64()*2*math.Pi*config.AngleOffset,
			rnd.Float64()*2*math.Pi*config.AngleOffset,
		)
		radius := config.RadiusOffset + rnd.Float64()*config.RadiusSpread
		speed := firefly.Vec(
			rnd.Float64()*config.SpeedSpread*2-config.SpeedSpread,
			rnd.Float64()*config.SpeedSpread*2-config.SpeedSpread,
		)
		color := firefly.NewColor(
			rnd.Float64()*config.RGBOffset,
			rnd.Float64()*config.RGBOffset,
			rnd.Float64()*config.RGBOffset,
		)
		s.fireflies = append(s.fireflies, firefly.New(angle, radius, speed, color))
	}

	return s
}

// NewSwarm builds a swarm from explicit fireflies.
func NewSwarm(ctx canvas.Context, width, height float64, fireflies ...*firefly.Firefly) *Swarm {
	return &Swarm{
		fireflies: fireflies,
		ctx:       ctx,
		width:     width,
		height:    height,
		scale:     1,
		center:    firefly.Vec(width/2, height/2),
	}
}

func (s *Swarm) Fireflies() []*firefly.Firefly { return s.fireflies }
func (s *Swarm) Len() int                      { return len(s.fireflies) }
func (s *Swarm) Center() firefly.Vector        { return s.center }
func (s *Swarm) Scale() float64                { return s.scale }
func (s *Swarm) Running() bool                 { return s.running }

// Size returns the logical surface size.
func (s *Swarm) Size() (width, height float64) { return s.width, s.height }

// Frame clears the surface and draws every firefly once.
func (s *Swarm) Frame() {
	s.ctx.ClearRect(config.CanvasPosX, config.CanvasPosY, s.width*s.scale, s.height*s.scale)

	for _, f := range s.fireflies {
		f.UpdateAndDraw(s.ctx, s.center)
	}
}
