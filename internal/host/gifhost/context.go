package gifhost

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// arcStep is the largest angle covered by one straight segment of an arc.
const arcStep = math.Pi / 16

// rasterContext fills paths into an RGBA image.
type rasterContext struct {
	dst    *image.RGBA
	sx, sy float64

	z       *vector.Rasterizer
	started bool
	fill    color.RGBA
}

func newRasterContext(dst *image.RGBA) *rasterContext {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return &rasterContext{dst: dst, sx: 1, sy: 1, z: z}
}

func (c *rasterContext) Scale(x, y float64) {
	c.sx *= x
	c.sy *= y
}

func (c *rasterContext) ClearRect(x, y, width, height float64) {
	rect := image.Rect(
		int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)),
		int(math.Ceil((x+width)*c.sx)), int(math.Ceil((y+height)*c.sy)),
	).Intersect(c.dst.Bounds())
	draw.Draw(c.dst, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *rasterContext) BeginPath() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.started = false
}

func (c *rasterContext) SetFillStyle(clr color.RGBA) {
	c.fill = clr
}

func (c *rasterContext) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	if n < 1 {
		n = 1
	}

	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		px := float32((x + math.Cos(a)*radius) * c.sx)
		py := float32((y + math.Sin(a)*radius) * c.sy)
		if !c.started {
			c.z.MoveTo(px, py)
			c.started = true
			continue
		}
		c.z.LineTo(px, py)
	}
}

func (c *rasterContext) Fill() {
	if !c.started {
		return
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(c.fill), image.Point{})
}
