package render

import "image/color"

// Op is one recorded drawing call.
type Op struct {
	Kind   string
	Args   []float64
	Points []Point
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

// Recorder is a Surface that keeps a display list of drawing calls. Replay
// sends the list to another surface.
type Recorder struct {
	W, H   float64
	Ops    []Op
	fill   color.Color
	stroke color.Color
	width  float64
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, fill: color.Black, stroke: color.Black, width: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// ClearRect over the whole surface also drops the recorded list.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= r.W && y+h >= r.H {
		r.Ops = r.Ops[:0]
	}
	r.add("clear", []float64{x, y, w, h}, nil)
}

func (r *Recorder) SetFillColor(c color.Color)   { r.fill = c }
func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Recorder) SetLineWidth(w float64)       { r.width = w }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add("rect", []float64{x, y, w, h}, nil)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.add("line", []float64{x0, y0, x1, y1}, nil)
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64) {
	r.add("ellipse", []float64{cx, cy, rx, ry}, nil)
}

func (r *Recorder) FillPolygon(pts ...Point) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.add("polygon", nil, cp)
}

func (r *Recorder) add(kind string, args []float64, pts []Point) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Points: pts, Fill: r.fill, Stroke: r.stroke, Width: r.width})
}

// Replay issues the recorded calls against dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.Ops {
		dst.SetFillColor(op.Fill)
		dst.SetStrokeColor(op.Stroke)
		dst.SetLineWidth(op.Width)
		switch op.Kind {
		case "clear":
			dst.ClearRect(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case "rect":
			dst.FillRect(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case "line":
			dst.StrokeLine(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case "ellipse":
			dst.FillEllipse(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case "polygon":
			dst.FillPolygon(op.Points...)
		}
	}
}

// Find returns the recorded operations of the given kind.
func (r *Recorder) Find(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
