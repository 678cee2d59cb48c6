package main

import (
	"bytes"
	"context"
	"image/gif"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownHost(t *testing.T) {
	err := run("plasma", "x", "", settings{}, log.New(io.Discard, "", 0))
	require.ErrorContains(t, err, `unknown host "plasma"`)
}

func TestRunRejectsUnknownProfile(t *testing.T) {
	err := run("gif", "x", "block", settings{}, log.New(io.Discard, "", 0))
	require.ErrorContains(t, err, `unknown profile "block"`)
}

func TestRunGIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "swarm.gif")

	var logs bytes.Buffer
	err := run("gif", "tester", "", settings{seed: 11, frames: 6, out: out}, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "hello tester from go!")
	require.Contains(t, logs.String(), "wrote 6 frames")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 6)
}

func TestRunOnScreenLogsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	err := runOnScreen(ctx, screen, settings{seed: 4, fps: 30, verbose: true}, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "firefly  0: radius=")
	require.Contains(t, logs.String(), "firefly 49: radius=")
	require.Contains(t, logs.String(), "of 50 fireflies")
}
