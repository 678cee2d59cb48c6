package termhost

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fireflies/internal/config"
	"github.com/iburimskiy/fireflies/internal/firefly"
	"github.com/iburimskiy/fireflies/internal/game"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func TestFillLightsCenterCell(t *testing.T) {
	screen := newScreen(t)
	h := New(screen, config.CanvasID, 60)

	el, err := h.Lookup(config.CanvasID)
	require.NoError(t, err)
	el.Resize(200, 200)
	ctx, err := el.Context2D()
	require.NoError(t, err)

	f := firefly.New(firefly.Vec(0, 0), 50, firefly.Vec(math.Pi/2, math.Pi/2), firefly.NewColor(250, 250, 250))
	s := game.NewSwarm(ctx, config.CanvasWidth, config.CanvasHeight, f)

	s.Frame()

	// (150, 100) on a 200x200 surface maps to column 30, row 10 of 40x20.
	mainc, _, style, _ := screen.GetContent(30, 10)
	require.Equal(t, glyphBright, mainc)
	fg, _, _ := style.Decompose()
	require.Equal(t, tcell.NewRGBColor(250, 250, 250), fg)

	s.Frame()

	mainc, _, _, _ = screen.GetContent(30, 10)
	require.Equal(t, ' ', mainc)
	mainc, _, _, _ = screen.GetContent(20, 15)
	require.Equal(t, glyphBright, mainc)
}

func TestDarkColorsUseDimGlyph(t *testing.T) {
	screen := newScreen(t)
	h := New(screen, config.CanvasID, 60)
	h.Resize(200, 200)

	h.ctx.BeginPath()
	h.ctx.SetFillStyle(firefly.NewColor(20, 10, 30).RGBA())
	h.ctx.Arc(100, 100, 2, 0, 2*math.Pi)
	h.ctx.Fill()

	mainc, _, _, _ := screen.GetContent(20, 10)
	require.Equal(t, glyphDim, mainc)
}

func TestLookupUnknownID(t *testing.T) {
	h := New(newScreen(t), config.CanvasID, 60)
	_, err := h.Lookup("nope")
	require.Error(t, err)
}

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newScreen(t)
	h := New(screen, config.CanvasID, 120)

	s, err := game.Setup(h, config.CanvasID, game.Options{Count: 5, Random: game.NewRandom(9)})
	require.NoError(t, err)
	loop, err := s.Start(h)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}()

	require.NoError(t, h.Run(ctx))
	require.NotZero(t, loop.Frames())
}
