package termhost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	glyphBright = '●'
	glyphDim    = '•'

	// Colors with a CIE L* below this are drawn with the small glyph.
	dimLightness = 0.45
)

type arc struct {
	x, y, r float64
}

// cellContext maps the pixel space set by Resize onto the terminal grid.
// Each filled arc lights the cell under its center.
type cellContext struct {
	screen        tcell.Screen
	width, height float64
	sx, sy        float64

	style tcell.Style
	glyph rune
	path  []arc
}

func (c *cellContext) Scale(x, y float64) {
	c.sx *= x
	c.sy *= y
}

// cell converts a point in pixel space to a cell position.
func (c *cellContext) cell(px, py float64) (int, int) {
	cols, rows := c.screen.Size()
	if c.width <= 0 || c.height <= 0 {
		return int(px), int(py)
	}
	return int(math.Floor(px * float64(cols) / c.width)), int(math.Floor(py * float64(rows) / c.height))
}

func (c *cellContext) ClearRect(x, y, width, height float64) {
	cols, rows := c.screen.Size()
	x0, y0 := c.cell(x*c.sx, y*c.sy)
	x1, y1 := c.cell((x+width)*c.sx, (y+height)*c.sy)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols), min(y1, rows)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (c *cellContext) BeginPath() {
	c.path = c.path[:0]
}

func (c *cellContext) SetFillStyle(clr color.RGBA) {
	col, _ := colorful.MakeColor(clr)
	r, g, b := col.RGB255()
	c.style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

	l, _, _ := col.Lab()
	if l < dimLightness {
		c.glyph = glyphDim
	} else {
		c.glyph = glyphBright
	}
}

func (c *cellContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.path = append(c.path, arc{x: x * c.sx, y: y * c.sy, r: radius * c.sx})
}

func (c *cellContext) Fill() {
	cols, rows := c.screen.Size()
	for _, a := range c.path {
		cx, cy := c.cell(a.x, a.y)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		c.screen.SetContent(cx, cy, c.glyph, nil, c.style)
	}
}
