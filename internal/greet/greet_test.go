package greet

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	require.Equal(t, "hello world from go!", Message("world"))
	require.Equal(t, "hello  from go!", Message(""))
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	Log(log.New(&buf, "", 0), "moth")
	require.Equal(t, "hello moth from go!\n", buf.String())
}

func TestBannerContainsName(t *testing.T) {
	require.Contains(t, Banner("moth"), "moth")
}
