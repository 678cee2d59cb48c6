// Package canvas describes the drawing surface the animation renders into.
//
// The shapes follow the HTML canvas element: a Provider resolves an Element
// by id, the Element is sized in backing pixels and hands out a 2D Context,
// and the Context receives path based fill calls in logical units.
package canvas

import "image/color"

// Context is a 2D drawing context.
type Context interface {
	// Scale multiplies the current transform. Coordinates passed to the
	// other methods are in the scaled space.
	Scale(x, y float64)
	ClearRect(x, y, width, height float64)
	BeginPath()
	SetFillStyle(c color.RGBA)
	// Arc adds a clockwise arc to the current path.
	Arc(x, y, radius, startAngle, endAngle float64)
	Fill()
}

// Element is a drawable surface with a backing pixel buffer.
type Element interface {
	// DeviceScale reports the number of backing pixels per logical pixel.
	DeviceScale() float64
	// Resize sets the backing buffer size in pixels.
	Resize(width, height int)
	Context2D() (Context, error)
}

// Provider looks up elements by identifier.
type Provider interface {
	Lookup(id string) (Element, error)
}
