package ebitenhost

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenContext draws into the screen image of the current frame. Calls made
// outside a frame are dropped.
type screenContext struct {
	target *ebiten.Image
	sx, sy float64

	path  vector.Path
	fill  color.RGBA
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *screenContext) Scale(x, y float64) {
	c.sx *= x
	c.sy *= y
}

func (c *screenContext) ClearRect(x, y, width, height float64) {
	if c.target == nil {
		return
	}
	rect := image.Rect(
		int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)),
		int(math.Ceil((x+width)*c.sx)), int(math.Ceil((y+height)*c.sy)),
	).Intersect(c.target.Bounds())
	if rect.Empty() {
		return
	}
	c.target.SubImage(rect).(*ebiten.Image).Clear()
}

func (c *screenContext) BeginPath() {
	c.path = vector.Path{}
}

func (c *screenContext) SetFillStyle(clr color.RGBA) {
	c.fill = clr
}

func (c *screenContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.path.Arc(
		float32(x*c.sx), float32(y*c.sy), float32(radius*c.sx),
		float32(startAngle), float32(endAngle), vector.Clockwise,
	)
}

func (c *screenContext) Fill() {
	if c.target == nil {
		return
	}
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	for i := range c.vertices {
		c.vertices[i].SrcX = 0.5
		c.vertices[i].SrcY = 0.5
		c.vertices[i].ColorR = float32(c.fill.R) / 255
		c.vertices[i].ColorG = float32(c.fill.G) / 255
		c.vertices[i].ColorB = float32(c.fill.B) / 255
		c.vertices[i].ColorA = float32(c.fill.A) / 255
	}
	c.target.DrawTriangles(c.vertices, c.indices, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
