// Package gifhost renders the animation offscreen and writes the frames as an
// animated GIF.
package gifhost

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/iburimskiy/fireflies/internal/canvas"
	"github.com/iburimskiy/fireflies/internal/frame"
)

var errNotSized = errors.New("gifhost: surface has no backing buffer")

// Host is an image-backed surface provider. Frames advance only when
// Record is called.
type Host struct {
	id    string
	scale float64
	delay int

	img *image.RGBA
	ctx *rasterContext

	stepper *frame.Stepper
	frames  []*image.Paletted
}

type Option func(*Host)

func WithDeviceScale(scale float64) Option {
	return func(h *Host) { h.scale = scale }
}

// WithDelay sets the per-frame delay in hundredths of a second.
func WithDelay(delay int) Option {
	return func(h *Host) { h.delay = delay }
}

func New(id string, opts ...Option) *Host {
	h := &Host{id: id, scale: 1, delay: 2, stepper: frame.NewStepper()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Lookup(id string) (canvas.Element, error) {
	if id != h.id {
		return nil, fmt.Errorf("gifhost: no surface %q", id)
	}
	return h, nil
}

func (h *Host) DeviceScale() float64 { return h.scale }

func (h *Host) Resize(width, height int) {
	h.img = image.NewRGBA(image.Rect(0, 0, width, height))
	h.ctx = nil
}

func (h *Host) Context2D() (canvas.Context, error) {
	if h.img == nil {
		return nil, errNotSized
	}
	if h.ctx == nil {
		h.ctx = newRasterContext(h.img)
	}
	return h.ctx, nil
}

func (h *Host) RequestFrame(cb func()) {
	h.stepper.RequestFrame(cb)
}

// Image is the backing buffer as of the last frame.
func (h *Host) Image() *image.RGBA { return h.img }

// Frames is the number of frames captured so far.
func (h *Host) Frames() int { return len(h.frames) }

// Record runs up to n frames, capturing each one, and returns how many ran.
func (h *Host) Record(n int) int {
	ran := 0
	for ; ran < n; ran++ {
		if !h.stepper.Step() {
			break
		}
		h.capture()
	}
	return ran
}

func (h *Host) capture() {
	b := h.img.Bounds()

	flat := image.NewRGBA(b)
	draw.Draw(flat, b, image.Black, image.Point{}, draw.Src)
	draw.Draw(flat, b, h.img, b.Min, draw.Over)

	p := image.NewPaletted(b, palette.Plan9)
	draw.Draw(p, b, flat, b.Min, draw.Src)
	h.frames = append(h.frames, p)
}

// Encode writes the captured frames as a looping GIF.
func (h *Host) Encode(w io.Writer) error {
	if len(h.frames) == 0 {
		return errors.New("gifhost: no frames recorded")
	}

	delays := make([]int, len(h.frames))
	for i := range delays {
		delays[i] = h.delay
	}
	return gif.EncodeAll(w, &gif.GIF{Image: h.frames, Delay: delays})
}
