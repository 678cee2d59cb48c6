// Package firefly implements a single orbiting point of the swarm.
package firefly

import (
	"math"

	"github.com/iburimskiy/fireflies/internal/canvas"
	"github.com/iburimskiy/fireflies/internal/config"
)

// Firefly orbits a center point. The X phase drives the horizontal cosine
// term and the Y phase the vertical sine term, so with different speeds the
// path is a Lissajous curve rather than a circle.
//
// Only the phase changes after construction.
type Firefly struct {
	radius float64
	angle  Vector
	speed  Vector
	color  Color
}

func New(angle Vector, radius float64, speed Vector, color Color) *Firefly {
	return &Firefly{
		angle:  angle,
		radius: radius,
		speed:  speed,
		color:  color,
	}
}

func (f *Firefly) Radius() float64 { return f.radius }
func (f *Firefly) Angle() Vector   { return f.angle }
func (f *Firefly) Speed() Vector   { return f.speed }
func (f *Firefly) Color() Color    { return f.color }

// Position returns where the firefly is drawn this frame.
func (f *Firefly) Position(center Vector) Vector {
	return Vector{
		X: center.X + math.Cos(f.angle.X)*f.radius,
		Y: center.Y + math.Sin(f.angle.Y)*f.radius,
	}
}

// UpdateAndDraw draws the firefly at its current position and advances the
// phase by one step.
func (f *Firefly) UpdateAndDraw(ctx canvas.Context, center Vector) {
	pos := f.Position(center)

	f.angle = f.angle.Add(f.speed)

	ctx.BeginPath()
	ctx.SetFillStyle(f.color.RGBA())
	ctx.Arc(pos.X, pos.Y, config.FireflyRadius, config.FireflyAngleStart, config.FireflyAngleEnd)
	ctx.Fill()
}
