package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/stalagsim/internal/render"
)

// SVG is a render.Surface that builds an SVG document.
type SVG struct {
	W, H       float64
	Background color.Color

	body   strings.Builder
	fill   color.Color
	stroke color.Color
	width  float64
}

func NewSVG(w, h float64) *SVG {
	return &SVG{W: w, H: h, fill: color.Black, stroke: color.Black, width: 1}
}

func (s *SVG) Size() (float64, float64) { return s.W, s.H }

// ClearRect over the whole canvas discards everything drawn so far;
// partial clears paint the background colour.
func (s *SVG) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.W && y+h >= s.H {
		s.body.Reset()
		return
	}
	bg := s.Background
	if bg == nil {
		bg = color.White
	}
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n", x, y, w, h, hex(bg))
}

func (s *SVG) SetFillColor(c color.Color)   { s.fill = c }
func (s *SVG) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *SVG) SetLineWidth(w float64)       { s.width = w }

func (s *SVG) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
		x, y, w, h, hex(s.fill), opacity("fill", s.fill))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1 float64) {
	fmt.Fprintf(&s.body, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		x0, y0, x1, y1, hex(s.stroke), s.width, opacity("stroke", s.stroke))
}

func (s *SVG) FillEllipse(cx, cy, rx, ry float64) {
	fmt.Fprintf(&s.body, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s"%s/>`+"\n",
		cx, cy, rx, ry, hex(s.fill), opacity("fill", s.fill))
}

func (s *SVG) FillPolygon(pts ...render.Point) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, `<polygon points="%s" fill="%s"%s/>`+"\n",
		strings.Join(coords, " "), hex(s.fill), opacity("fill", s.fill))
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.W, s.H, s.W, s.H))
	if s.Background != nil {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(s.Background)))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func opacity(attr string, c color.Color) string {
	_, _, _, a := c.RGBA()
	if a == 0xffff {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(a)/0xffff)
}
