package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stalagsim/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Each cell also remembers the colour
// of the last dot drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.Color, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels, (Width*2) x (Height*4).
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the sub-pixel (x, y) in colour clr. A nil colour keeps the
// cell's current one.
func (c *Canvas) Set(x, y int, clr color.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if clr != nil {
		c.Colors[row][col] = clr
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] == blank {
		c.Colors[row][col] = nil
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = nil
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, clr color.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the dots without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the dots with each cell in its colour.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			clr := c.Colors[i][j]
			if clr == nil {
				b.WriteRune(r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(clr))).Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Surface draws the apparatus onto a Canvas, scaling the logical canvas to
// fit the available dots.
type Surface struct {
	canvas *Canvas
	w, h   float64
	tr     render.Scaled

	fill   color.Color
	stroke color.Color
	width  float64
}

func NewSurface(c *Canvas) *Surface {
	dw, dh := c.Dots()
	return &Surface{
		canvas: c,
		w:      render.CanvasWidth,
		h:      render.CanvasHeight,
		tr:     render.Fit(render.CanvasWidth, render.CanvasHeight, float64(dw), float64(dh)),
		width:  1,
	}
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.w && y+h >= s.h {
		s.canvas.Clear()
		return
	}
	s.eachDot(x, y, x+w, y+h, func(px, py int, _, _ float64) {
		s.canvas.Unset(px, py)
	})
}

func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)       { s.width = w }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.eachDot(x, y, x+w, y+h, func(px, py int, _, _ float64) {
		s.canvas.Set(px, py, s.fill)
	})
}

// StrokeLine ignores sub-dot widths; wider lines are drawn as parallel
// Bresenham lines.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	ax, ay := s.tr.X(x0), s.tr.Y(y0)
	bx, by := s.tr.X(x1), s.tr.Y(y1)
	passes := int(math.Round(s.tr.L(s.width)))
	if passes < 1 {
		passes = 1
	}
	l := math.Hypot(bx-ax, by-ay)
	nx, ny := 0.0, 0.0
	if l > 0 {
		nx, ny = -(by-ay)/l, (bx-ax)/l
	}
	for i := 0; i < passes; i++ {
		off := float64(i) - float64(passes-1)/2
		s.canvas.DrawLine(
			int(math.Floor(ax+nx*off)), int(math.Floor(ay+ny*off)),
			int(math.Floor(bx+nx*off)), int(math.Floor(by+ny*off)),
			s.stroke,
		)
	}
}

// FillEllipse lights every dot whose centre lies inside the ellipse, and
// at least the centre dot so that tiny drops stay visible.
func (s *Surface) FillEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.eachDot(cx-rx, cy-ry, cx+rx, cy+ry, func(px, py int, lx, ly float64) {
		dx, dy := (lx-cx)/rx, (ly-cy)/ry
		if dx*dx+dy*dy <= 1 {
			s.canvas.Set(px, py, s.fill)
		}
	})
	s.canvas.Set(int(math.Floor(s.tr.X(cx))), int(math.Floor(s.tr.Y(cy))), s.fill)
}

func (s *Surface) FillPolygon(pts ...render.Point) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	lit := false
	s.eachDot(minX, minY, maxX, maxY, func(px, py int, lx, ly float64) {
		if insidePolygon(pts, lx, ly) {
			s.canvas.Set(px, py, s.fill)
			lit = true
		}
	})
	if !lit {
		p := s.tr.Point(pts[0])
		s.canvas.Set(int(math.Floor(p.X)), int(math.Floor(p.Y)), s.fill)
	}
}

// eachDot visits the dots covering the logical rectangle, passing the dot
// coordinates and the logical position of the dot centre.
func (s *Surface) eachDot(x0, y0, x1, y1 float64, fn func(px, py int, lx, ly float64)) {
	px0 := int(math.Floor(s.tr.X(x0)))
	py0 := int(math.Floor(s.tr.Y(y0)))
	px1 := int(math.Ceil(s.tr.X(x1)))
	py1 := int(math.Ceil(s.tr.Y(y1)))
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			lx := (float64(px) + 0.5 - s.tr.OffsetX) / s.tr.Scale
			ly := (float64(py) + 0.5 - s.tr.OffsetY) / s.tr.Scale
			if lx < x0 || lx > x1 || ly < y0 || ly > y1 {
				continue
			}
			fn(px, py, lx, ly)
		}
	}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []render.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
