package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/stalagsim/internal/render"
)

const ellipseSegments = 48

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws onto an ebiten image. The target is swapped in every Draw.
type Surface struct {
	dst    *ebiten.Image
	tr     render.Scaled
	bg     color.Color
	fill   color.Color
	stroke color.Color
	width  float64
}

func NewSurface(bg color.Color) *Surface {
	return &Surface{bg: bg, tr: render.Scaled{Scale: 1}, fill: color.Black, stroke: color.Black, width: 1}
}

// Bind sets the target image and the screen rectangle the canvas is fitted
// into.
func (s *Surface) Bind(dst *ebiten.Image, x, y, w, h float64) {
	s.dst = dst
	s.tr = render.Fit(render.CanvasWidth, render.CanvasHeight, w, h)
	s.tr.OffsetX += x
	s.tr.OffsetY += y
}

func (s *Surface) Size() (float64, float64) { return render.CanvasWidth, render.CanvasHeight }

func (s *Surface) ClearRect(x, y, w, h float64) { s.rect(x, y, w, h, s.bg) }

func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)       { s.width = w }

func (s *Surface) FillRect(x, y, w, h float64) { s.rect(x, y, w, h, s.fill) }

func (s *Surface) rect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(s.tr.X(x)), float32(s.tr.Y(y)), float32(s.tr.L(w)), float32(s.tr.L(h)), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	vector.StrokeLine(s.dst,
		float32(s.tr.X(x0)), float32(s.tr.Y(y0)),
		float32(s.tr.X(x1)), float32(s.tr.Y(y1)),
		float32(s.tr.L(s.width)), s.stroke, true)
}

func (s *Surface) FillEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	pts := make([]render.Point, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = render.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	s.FillPolygon(pts...)
}

func (s *Surface) FillPolygon(pts ...render.Point) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	p := s.tr.Point(pts[0])
	path.MoveTo(float32(p.X), float32(p.Y))
	for _, q := range pts[1:] {
		p = s.tr.Point(q)
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := s.fill.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}
