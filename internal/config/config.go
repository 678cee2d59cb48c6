package config

import "math"

const (
	// Canvas
	CanvasID     = "renderer"
	CanvasWidth  = 200.0
	CanvasHeight = 200.0
	CanvasPosX   = 0.0
	CanvasPosY   = 0.0

	// Firefly parameters
	FireflyCount      = 50
	FireflyRadius     = 2.0
	FireflyAngleStart = 0.0
	FireflyAngleEnd   = math.Pi * 2

	AngleOffset  = 2.0
	RadiusOffset = 50.0
	RadiusSpread = 50.0
	SpeedSpread  = 0.05
	RGBOffset    = 255.0

	// Hosts
	WindowTitle     = "Fireflies"
	TerminalFPS     = 60
	GIFFrames       = 120
	GIFDelay        = 2 // hundredths of a second
	GIFOutput       = "fireflies.gif"
	DefaultGreeting = "firefly"
)
