package ebitenhost

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fireflies/internal/config"
	"github.com/iburimskiy/fireflies/internal/game"
)

func TestLookup(t *testing.T) {
	h := New(config.CanvasID)

	el, err := h.Lookup(config.CanvasID)
	require.NoError(t, err)
	require.Same(t, h, el)

	_, err = h.Lookup("other")
	require.Error(t, err)
}

func TestSetupSizesLayout(t *testing.T) {
	h := New(config.CanvasID, WithDeviceScale(2))

	s, err := game.Setup(h, config.CanvasID, game.Options{Count: 5, Random: game.NewRandom(1)})
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())

	w, hgt := h.Layout(640, 480)
	require.Equal(t, 400, w)
	require.Equal(t, 400, hgt)
	require.Equal(t, 2.0, h.ctx.sx)
	require.Equal(t, 2.0, h.ctx.sy)
}

func TestLayoutBeforeResize(t *testing.T) {
	w, h := New(config.CanvasID).Layout(320, 240)
	require.Equal(t, 320, w)
	require.Equal(t, 240, h)
}

func TestDrawRunsPendingFrameOnce(t *testing.T) {
	h := New(config.CanvasID, WithDeviceScale(1))
	s, err := game.Setup(h, config.CanvasID, game.Options{Count: 3})
	require.NoError(t, err)

	loop, err := s.Start(h)
	require.NoError(t, err)
	require.NotNil(t, h.pending)

	// Without a screen image the context drops draw calls, but the frame
	// still advances and reschedules.
	for i := 0; i < 4; i++ {
		h.Draw(nil)
	}
	require.Equal(t, uint64(4), loop.Frames())
	require.NotNil(t, h.pending)
}
