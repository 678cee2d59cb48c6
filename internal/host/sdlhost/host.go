//go:build sdl

// Package sdlhost runs the animation in an SDL window through an HTML
// canvas style API. Build with -tags sdl; requires the SDL2 libraries.
package sdlhost

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"

	fcanvas "github.com/iburimskiy/fireflies/internal/canvas"
)

var errNoWindow = errors.New("sdlhost: window not created")

type Host struct {
	id    string
	title string

	wnd *sdlcanvas.Window
	cv  *canvas.Canvas
	err error

	pending func()
}

func New(id, title string) *Host {
	return &Host{id: id, title: title}
}

func (h *Host) Lookup(id string) (fcanvas.Element, error) {
	if id != h.id {
		return nil, fmt.Errorf("sdlhost: no surface %q", id)
	}
	return h, nil
}

func (h *Host) DeviceScale() float64 { return 1 }

// Resize creates the window on first use. Later calls are ignored.
func (h *Host) Resize(width, height int) {
	if h.wnd != nil {
		return
	}
	h.wnd, h.cv, h.err = sdlcanvas.CreateWindow(width, height, h.title)
}

func (h *Host) Context2D() (fcanvas.Context, error) {
	if h.err != nil {
		return nil, h.err
	}
	if h.cv == nil {
		return nil, errNoWindow
	}
	return &context{cv: h.cv}, nil
}

func (h *Host) RequestFrame(cb func()) {
	h.pending = cb
}

// Run blocks in the SDL main loop until the window is closed.
func (h *Host) Run() error {
	if h.wnd == nil {
		return errNoWindow
	}
	defer h.wnd.Destroy()

	h.wnd.MainLoop(func() {
		cb := h.pending
		h.pending = nil
		if cb != nil {
			cb()
		}
	})
	return nil
}

type context struct {
	cv *canvas.Canvas
}

func (c *context) Scale(x, y float64)                    { c.cv.Scale(x, y) }
func (c *context) ClearRect(x, y, width, height float64) { c.cv.ClearRect(x, y, width, height) }
func (c *context) BeginPath()                            { c.cv.BeginPath() }
func (c *context) SetFillStyle(clr color.RGBA)           { c.cv.SetFillStyle(clr) }
func (c *context) Fill()                                 { c.cv.Fill() }

func (c *context) Arc(x, y, radius, startAngle, endAngle float64) {
	c.cv.Arc(x, y, radius, startAngle, endAngle, false)
}
