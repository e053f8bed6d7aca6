// Package render draws the stalagmometer apparatus onto any 2D surface.
package render

import "image/color"

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Surface is the drawing capability a front end provides. Coordinates are
// logical canvas pixels; implementations scale to their device.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillEllipse(cx, cy, rx, ry float64)
	FillPolygon(pts ...Point)
}
