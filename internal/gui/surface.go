package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stalagsim/internal/render"
)

// Surface draws onto the current raylib frame inside a viewport, scaling
// the logical canvas to fit. Calls must happen between BeginDrawing and
// EndDrawing.
type Surface struct {
	tr     render.Scaled
	bg     color.RGBA
	fill   color.RGBA
	stroke color.RGBA
	width  float64
}

func NewSurface(bg color.RGBA) *Surface {
	return &Surface{bg: bg, tr: render.Scaled{Scale: 1}, width: 1}
}

// SetViewport places the canvas inside the screen rectangle (x, y, w, h).
func (s *Surface) SetViewport(x, y, w, h float64) {
	s.tr = render.Fit(render.CanvasWidth, render.CanvasHeight, w, h)
	s.tr.OffsetX += x
	s.tr.OffsetY += y
}

func (s *Surface) Size() (float64, float64) { return render.CanvasWidth, render.CanvasHeight }

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.rect(x, y, w, h, s.bg)
}

func (s *Surface) SetFillColor(c color.Color)   { s.fill = rgba(c) }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = rgba(c) }
func (s *Surface) SetLineWidth(w float64)       { s.width = w }

func (s *Surface) FillRect(x, y, w, h float64) { s.rect(x, y, w, h, s.fill) }

func (s *Surface) rect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleV(s.vec(render.Point{X: x, Y: y}), rl.NewVector2(float32(s.tr.L(w)), float32(s.tr.L(h))), c)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	rl.DrawLineEx(s.vec(render.Point{X: x0, Y: y0}), s.vec(render.Point{X: x1, Y: y1}), float32(s.tr.L(s.width)), s.stroke)
}

func (s *Surface) FillEllipse(cx, cy, rx, ry float64) {
	c := s.tr.Point(render.Point{X: cx, Y: cy})
	rl.DrawEllipse(int32(c.X), int32(c.Y), float32(s.tr.L(rx)), float32(s.tr.L(ry)), s.fill)
}

// FillPolygon fans a convex polygon into triangles.
func (s *Surface) FillPolygon(pts ...render.Point) {
	if len(pts) < 3 {
		return
	}
	pts = counterClockwise(pts)
	for i := 1; i+1 < len(pts); i++ {
		rl.DrawTriangle(s.vec(pts[0]), s.vec(pts[i]), s.vec(pts[i+1]), s.fill)
	}
}

func (s *Surface) vec(p render.Point) rl.Vector2 {
	q := s.tr.Point(p)
	return rl.NewVector2(float32(q.X), float32(q.Y))
}

// counterClockwise returns pts in the winding raylib expects on a y-down
// screen, which is a negative shoelace sum.
func counterClockwise(pts []render.Point) []render.Point {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area <= 0 {
		return pts
	}
	out := make([]render.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
