package export

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/stalagsim/internal/droplet"
	"github.com/san-kum/stalagsim/internal/render"
)

func TestSVGFrame(t *testing.T) {
	svg := NewSVG(render.CanvasWidth, render.CanvasHeight)
	svg.FillRect(0, 0, 1, 1)
	render.Frame(svg, droplet.Initial())
	doc := svg.String()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="450"`,
		`<rect x="290.00" y="50.00" width="20.00" height="300.00" fill="#808080"/>`,
		`<line x1="250.00" y1="350.00" x2="350.00" y2="350.00" stroke="#0000ff" stroke-width="2.00"/>`,
		`<ellipse cx="300.00" cy="50.00" rx="8.00" ry="11.20" fill="#87ceeb"/>`,
		`<polygon points="295.00,78.00 300.00,88.00 305.00,78.00" fill="#ff0000"/>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %s in\n%s", want, doc)
		}
	}
	if strings.Count(doc, "<rect") != 1 {
		t.Error("full clear should discard earlier shapes")
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestSVGBackgroundAndOpacity(t *testing.T) {
	svg := NewSVG(10, 10)
	svg.Background = render.Gray
	svg.ClearRect(0, 0, 5, 5)
	svg.SetFillColor(render.SkyBlue)
	svg.FillEllipse(1, 1, 1, 1)

	var buf bytes.Buffer
	if _, err := svg.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, `<rect width="100%" height="100%" fill="#808080"/>`) {
		t.Error("missing background")
	}
	if !strings.Contains(doc, `<rect x="0.00" y="0.00" width="5.00" height="5.00" fill="#808080"/>`) {
		t.Error("partial clear should paint the background")
	}
}

func TestRasterDrawsDroplet(t *testing.T) {
	r := NewRaster(render.CanvasWidth, render.CanvasHeight, 1)
	render.Frame(r, droplet.Initial())
	img := r.Image()

	if got := img.RGBAAt(300, 200); got != render.Gray {
		t.Errorf("expected tube gray at (300,200), got %v", got)
	}
	if got := img.RGBAAt(10, 10); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("expected white background, got %v", got)
	}

	r2 := NewRaster(render.CanvasWidth, render.CanvasHeight, 1)
	render.Frame(r2, droplet.State{Y: 380, Radius: 6, IsDetaching: true})
	if got := r2.Image().RGBAAt(300, 380); got != render.SkyBlue {
		t.Errorf("expected droplet sky blue at (300,380), got %v", got)
	}
	if got := r2.Image().RGBAAt(300, 400); got != render.Red {
		t.Errorf("expected red arrow at (300,400), got %v", got)
	}
}

func TestRasterScale(t *testing.T) {
	r := NewRaster(100, 50, 2)
	if b := r.Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("unexpected bounds %v", b)
	}
	r.ClearRect(0, 0, 100, 50)
	r.SetFillColor(render.Red)
	r.FillRect(10, 10, 10, 10)
	if got := r.Image().RGBAAt(30, 30); got != render.Red {
		t.Errorf("expected scaled rect, got %v", got)
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := EllipsePoints(0, 0, 2, 1, 4)
	if len(pts) != 4 || pts[0].X != 2 || pts[0].Y != 0 {
		t.Errorf("unexpected points %v", pts)
	}
}

func TestRecordCycle(t *testing.T) {
	var buf bytes.Buffer
	n, err := RecordCycle(context.Background(), &buf, GIFOptions{Scale: 0.25, Stride: 40, FPS: 60})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	want := (droplet.CycleLength() + 39) / 40
	if n != want {
		t.Errorf("expected %d frames, got %d", want, n)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(g.Image) != n {
		t.Errorf("decoded %d frames, expected %d", len(g.Image), n)
	}
	if g.Delay[0] != 66 {
		t.Errorf("expected delay 66, got %d", g.Delay[0])
	}
}

func TestRecordCycleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RecordCycle(ctx, &bytes.Buffer{}, GIFOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
}
