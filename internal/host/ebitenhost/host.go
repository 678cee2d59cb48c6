// Package ebitenhost runs the animation in an ebiten window (or a browser
// canvas when built for js/wasm).
package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fireflies/internal/canvas"
)

// Host is both the surface provider and the frame scheduler. ebiten calls
// Draw once per refresh; the pending frame callback runs there.
type Host struct {
	id    string
	title string

	scale         float64
	width, height int

	ctx     *screenContext
	pending func()
}

type Option func(*Host)

// WithDeviceScale overrides the monitor's device scale factor.
func WithDeviceScale(scale float64) Option {
	return func(h *Host) { h.scale = scale }
}

func WithTitle(title string) Option {
	return func(h *Host) { h.title = title }
}

func New(id string, opts ...Option) *Host {
	h := &Host{id: id, ctx: &screenContext{sx: 1, sy: 1}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Lookup(id string) (canvas.Element, error) {
	if id != h.id {
		return nil, fmt.Errorf("ebitenhost: no surface %q", id)
	}
	return h, nil
}

func (h *Host) DeviceScale() float64 {
	if h.scale > 0 {
		return h.scale
	}
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
}

func (h *Host) Context2D() (canvas.Context, error) {
	return h.ctx, nil
}

func (h *Host) RequestFrame(cb func()) {
	h.pending = cb
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.ctx.target = screen

	cb := h.pending
	h.pending = nil
	if cb != nil {
		cb()
	}
}

// Layout keeps the backing buffer at the size set by Resize, so one logical
// pixel covers DeviceScale screen pixels.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.width == 0 || h.height == 0 {
		return outsideWidth, outsideHeight
	}
	return h.width, h.height
}

// Run opens a window of the given logical size and blocks until it is closed.
func (h *Host) Run(width, height int) error {
	ebiten.SetWindowSize(width, height)
	if h.title != "" {
		ebiten.SetWindowTitle(h.title)
	}

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
