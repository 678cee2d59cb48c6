// Package termhost runs the animation inside a terminal.
package termhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/fireflies/internal/canvas"
	"github.com/iburimskiy/fireflies/internal/frame"
)

// Host exposes a tcell screen as the drawing surface and paces frames with
// a wall clock ticker.
type Host struct {
	id     string
	screen tcell.Screen
	ctx    *cellContext
	ticker *frame.Ticker
}

// New wraps an initialized screen.
func New(screen tcell.Screen, id string, fps int) *Host {
	h := &Host{
		id:     id,
		screen: screen,
		ctx:    &cellContext{screen: screen, sx: 1, sy: 1, glyph: glyphBright},
		ticker: frame.NewTicker(fps),
	}
	h.ticker.AfterFrame = screen.Show
	return h
}

func (h *Host) Lookup(id string) (canvas.Element, error) {
	if id != h.id {
		return nil, fmt.Errorf("termhost: no surface %q", id)
	}
	return h, nil
}

// DeviceScale is always 1; a cell stands for a block of logical pixels.
func (h *Host) DeviceScale() float64 { return 1 }

func (h *Host) Resize(width, height int) {
	h.ctx.width, h.ctx.height = float64(width), float64(height)
}

func (h *Host) Context2D() (canvas.Context, error) {
	return h.ctx, nil
}

func (h *Host) RequestFrame(cb func()) {
	h.ticker.RequestFrame(cb)
}

// Run draws frames until ctx is done or the user presses Esc, Ctrl-C or q.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			if isQuit(ev) {
				cancel()
				return
			}
		}
	}()

	err := h.ticker.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
