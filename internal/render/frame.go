package render

import (
	"image/color"

	"github.com/san-kum/stalagsim/internal/droplet"
)

// Apparatus layout in canvas pixels.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 450.0

	TubeX      = 300.0
	TubeY      = 50.0
	TubeWidth  = 20.0
	TubeHeight = 300.0

	// Half width of the detachment line marker.
	LineHalfWidth = 50.0
	LineWidth     = 2.0

	ArrowLength = 30.0
	ArrowHead   = 10.0
	ArrowSpread = 5.0
)

// CSS named colours used by the apparatus.
var (
	Gray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Blue    = color.RGBA{B: 255, A: 255}
	SkyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Red     = color.RGBA{R: 255, A: 255}
)

// Frame clears the surface and draws one animation frame for s.
func Frame(sf Surface, s droplet.State) {
	w, h := sf.Size()
	sf.ClearRect(0, 0, w, h)
	Apparatus(sf)
	Droplet(sf, s)
	GravityArrow(sf, s)
}

// Apparatus draws the tube and the detachment line.
func Apparatus(sf Surface) {
	sf.SetFillColor(Gray)
	sf.FillRect(TubeX-TubeWidth/2, TubeY, TubeWidth, TubeHeight)

	sf.SetStrokeColor(Blue)
	sf.SetLineWidth(LineWidth)
	sf.StrokeLine(TubeX-LineHalfWidth, droplet.MaxDropY, TubeX+LineHalfWidth, droplet.MaxDropY)
}

// Droplet draws the drop as an ellipse on the tube axis.
func Droplet(sf Surface, s droplet.State) {
	rx, ry := s.Radii()
	sf.SetFillColor(SkyBlue)
	sf.FillEllipse(TubeX, s.Y, rx, ry)
}

// GravityArrow draws a fixed-length arrow just below the drop. Its size
// does not depend on the selected gravity.
func GravityArrow(sf Surface, s droplet.State) {
	base := s.Y + s.Radius
	tip := base + ArrowLength

	sf.SetStrokeColor(Red)
	sf.SetLineWidth(LineWidth)
	sf.StrokeLine(TubeX, base, TubeX, tip)

	sf.SetFillColor(Red)
	sf.FillPolygon(
		Point{TubeX - ArrowSpread, tip - ArrowHead},
		Point{TubeX, tip},
		Point{TubeX + ArrowSpread, tip - ArrowHead},
	)
}
