package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/san-kum/stalagsim/internal/render"
)

const ellipseSegments = 48

// Raster is a render.Surface backed by an RGBA image. Shapes are
// anti-aliased with x/image/vector.
type Raster struct {
	W, H       float64
	Background color.Color

	img    *image.RGBA
	tr     render.Scaled
	z      *vector.Rasterizer
	fill   color.Color
	stroke color.Color
	width  float64
}

// NewRaster creates a surface of logical size w×h drawn at scale.
func NewRaster(w, h, scale float64) *Raster {
	pw, ph := int(math.Ceil(w*scale)), int(math.Ceil(h*scale))
	return &Raster{
		W:          w,
		H:          h,
		Background: color.White,
		img:        image.NewRGBA(image.Rect(0, 0, pw, ph)),
		tr:         render.Scaled{Scale: scale},
		z:          vector.NewRasterizer(pw, ph),
		fill:       color.Black,
		stroke:     color.Black,
		width:      1,
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (float64, float64) { return r.W, r.H }

func (r *Raster) ClearRect(x, y, w, h float64) {
	rect := image.Rect(
		int(math.Floor(r.tr.X(x))), int(math.Floor(r.tr.Y(y))),
		int(math.Ceil(r.tr.X(x+w))), int(math.Ceil(r.tr.Y(y+h))),
	)
	draw.Draw(r.img, rect, image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *Raster) SetFillColor(c color.Color)   { r.fill = c }
func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Raster) SetLineWidth(w float64)       { r.width = w }

func (r *Raster) FillRect(x, y, w, h float64) {
	r.FillPolygon(
		render.Point{X: x, Y: y},
		render.Point{X: x + w, Y: y},
		render.Point{X: x + w, Y: y + h},
		render.Point{X: x, Y: y + h},
	)
}

// StrokeLine fills the quad of the given width around the segment.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*r.width/2, dx/l*r.width/2
	r.fillPath(r.stroke, []render.Point{
		{X: x0 + nx, Y: y0 + ny},
		{X: x1 + nx, Y: y1 + ny},
		{X: x1 - nx, Y: y1 - ny},
		{X: x0 - nx, Y: y0 - ny},
	})
}

func (r *Raster) FillEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	r.fillPath(r.fill, EllipsePoints(cx, cy, rx, ry, ellipseSegments))
}

func (r *Raster) FillPolygon(pts ...render.Point) {
	r.fillPath(r.fill, pts)
}

func (r *Raster) fillPath(c color.Color, pts []render.Point) {
	if len(pts) < 3 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	p := r.tr.Point(pts[0])
	r.z.MoveTo(float32(p.X), float32(p.Y))
	for _, q := range pts[1:] {
		p = r.tr.Point(q)
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// EllipsePoints approximates an axis-aligned ellipse with n vertices.
func EllipsePoints(cx, cy, rx, ry float64, n int) []render.Point {
	pts := make([]render.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = render.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
