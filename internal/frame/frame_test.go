package frame

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStepper(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := NewStepper()
		require.False(t, s.Step())
		require.Equal(t, 0, s.Run(10))
	})

	t.Run("callback submitted during a step waits", func(t *testing.T) {
		s := NewStepper()
		calls := 0
		var cb func()
		cb = func() {
			calls++
			s.RequestFrame(cb)
		}
		s.RequestFrame(cb)

		require.True(t, s.Step())
		require.Equal(t, 1, calls)
		require.True(t, s.Pending())

		require.Equal(t, 4, s.Run(4))
		require.Equal(t, 5, calls)
		require.Equal(t, 5, s.Frames())
	})

	t.Run("stops when the callback does not resubmit", func(t *testing.T) {
		s := NewStepper()
		s.RequestFrame(func() {})
		require.Equal(t, 1, s.Run(10))
		require.False(t, s.Pending())
	})

	t.Run("later request replaces pending", func(t *testing.T) {
		s := NewStepper()
		var got string
		s.RequestFrame(func() { got = "first" })
		s.RequestFrame(func() { got = "second" })
		s.Step()
		require.Equal(t, "second", got)
	})
}

func TestTicker(t *testing.T) {
	ticker := NewTicker(200)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	frames, presented := 0, 0
	ticker.AfterFrame = func() { presented++ }

	var cb func()
	cb = func() {
		frames++
		if frames == 3 {
			cancel()
			return
		}
		ticker.RequestFrame(cb)
	}
	ticker.RequestFrame(cb)

	err := ticker.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 3, frames)
	require.Equal(t, 3, presented)
}
