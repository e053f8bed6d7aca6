package render

// Scaled maps logical canvas coordinates onto a device of a different size
// with a uniform scale and centring offset.
type Scaled struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit returns the transform that fits a w×h canvas inside a dw×dh device.
func Fit(w, h, dw, dh float64) Scaled {
	sx, sy := dw/w, dh/h
	s := sx
	if sy < s {
		s = sy
	}
	return Scaled{
		Scale:   s,
		OffsetX: (dw - w*s) / 2,
		OffsetY: (dh - h*s) / 2,
	}
}

func (t Scaled) X(x float64) float64 { return x*t.Scale + t.OffsetX }
func (t Scaled) Y(y float64) float64 { return y*t.Scale + t.OffsetY }
func (t Scaled) L(l float64) float64 { return l * t.Scale }

func (t Scaled) Point(p Point) Point { return Point{t.X(p.X), t.Y(p.Y)} }
