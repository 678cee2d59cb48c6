// Package canvastest provides an in-memory canvas that records draw calls.
package canvastest

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/iburimskiy/fireflies/internal/canvas"
)

type Op string

const (
	OpScale        Op = "scale"
	OpClearRect    Op = "clearRect"
	OpBeginPath    Op = "beginPath"
	OpSetFillStyle Op = "setFillStyle"
	OpArc          Op = "arc"
	OpFill         Op = "fill"
)

// Call is one recorded context method invocation.
type Call struct {
	Op    Op
	Args  []float64
	Color color.RGBA
}

func (c Call) String() string {
	if c.Op == OpSetFillStyle {
		return fmt.Sprintf("%s(rgb(%d, %d, %d))", c.Op, c.Color.R, c.Color.G, c.Color.B)
	}
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// ErrNoContext is returned by Context2D when the recorder was built WithoutContext.
var ErrNoContext = errors.New("canvastest: 2d context unavailable")

// Recorder is a canvas.Element and canvas.Context that keeps every call.
type Recorder struct {
	Calls []Call

	Width, Height int

	scale     float64
	noContext bool
}

type Option func(*Recorder)

// WithDeviceScale sets the value reported by DeviceScale.
func WithDeviceScale(scale float64) Option {
	return func(r *Recorder) { r.scale = scale }
}

// WithoutContext makes Context2D fail.
func WithoutContext() Option {
	return func(r *Recorder) { r.noContext = true }
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{scale: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) DeviceScale() float64 { return r.scale }

func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = width, height
}

func (r *Recorder) Context2D() (canvas.Context, error) {
	if r.noContext {
		return nil, ErrNoContext
	}
	return r, nil
}

func (r *Recorder) record(op Op, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) Scale(x, y float64) {
	r.record(OpScale, x, y)
}

func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.record(OpClearRect, x, y, width, height)
}

func (r *Recorder) BeginPath() { r.record(OpBeginPath) }

func (r *Recorder) SetFillStyle(c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpSetFillStyle, Color: c})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(OpArc, x, y, radius, startAngle, endAngle)
}

func (r *Recorder) Fill() { r.record(OpFill) }

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Arcs returns the arguments of every recorded Arc call.
func (r *Recorder) Arcs() [][]float64 {
	var arcs [][]float64
	for _, c := range r.Calls {
		if c.Op == OpArc {
			arcs = append(arcs, c.Args)
		}
	}
	return arcs
}

// Provider serves recorders by id. Unknown ids are reported as missing.
type Provider map[string]*Recorder

func (p Provider) Lookup(id string) (canvas.Element, error) {
	r, ok := p[id]
	if !ok {
		return nil, fmt.Errorf("canvastest: no element %q", id)
	}
	return r, nil
}
