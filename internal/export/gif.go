package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/droplet"
	"github.com/san-kum/stalagsim/internal/render"
)

// Palette covers the apparatus colours; anti-aliased edges snap to the
// nearest entry.
var Palette = color.Palette{
	color.White,
	color.Black,
	render.Gray,
	render.Blue,
	render.SkyBlue,
	render.Red,
	color.RGBA{R: 192, G: 192, B: 192, A: 255},
	color.RGBA{R: 195, G: 230, B: 245, A: 255},
	color.RGBA{R: 255, G: 128, B: 128, A: 255},
	color.RGBA{R: 128, G: 128, B: 255, A: 255},
}

// GIFOptions controls cycle recording.
type GIFOptions struct {
	Scale float64
	// Stride is the number of ticks between captured frames.
	Stride int
	FPS    int
}

func (o GIFOptions) withDefaults() GIFOptions {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Stride <= 0 {
		o.Stride = 4
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	return o
}

// RecordCycle renders one full drip cycle, from the initial droplet until
// it resets, into an animated GIF.
func RecordCycle(ctx context.Context, w io.Writer, opts GIFOptions) (int, error) {
	opts = opts.withDefaults()
	raster := NewRaster(render.CanvasWidth, render.CanvasHeight, opts.Scale)
	d := anim.New(raster)

	delay := opts.Stride * 100 / opts.FPS
	if delay < 2 {
		delay = 2
	}

	out := &gif.GIF{}
	n := droplet.CycleLength()
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return len(out.Image), ctx.Err()
		default:
		}
		if i%opts.Stride != 0 {
			d.Advance()
			continue
		}
		d.Frame()
		out.Image = append(out.Image, Palettize(raster.Image()))
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return len(out.Image), fmt.Errorf("encode gif: %w", err)
	}
	return len(out.Image), nil
}

// Palettize maps img onto Palette with nearest-colour matching.
func Palettize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, Palette)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return p
}
