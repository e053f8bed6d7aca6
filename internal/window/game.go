// Package window is the ebiten front end: the drip animation with the
// experiment form drawn beside it, and SVG snapshots through a native save
// dialog.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/config"
	"github.com/san-kum/stalagsim/internal/export"
	"github.com/san-kum/stalagsim/internal/form"
	"github.com/san-kum/stalagsim/internal/lab"
	"github.com/san-kum/stalagsim/internal/render"
)

const (
	windowWidth  = 1024
	windowHeight = 512
	panelWidth   = 360
	lineHeight   = 18
)

var (
	colPanel  = color.RGBA{R: 20, G: 25, B: 35, A: 255}
	colBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	colFocus  = color.RGBA{R: 135, G: 206, B: 235, A: 90}
)

type Game struct {
	form    *form.Form
	driver  *anim.Driver
	trace   *anim.Trace
	surface *Surface
	running bool
	chars   []rune
	notice  string
}

func NewGame(session *lab.Session, initial lab.Form, observers ...anim.Observer) *Game {
	driver := anim.New(nil)
	trace := anim.NewCycleTrace()
	driver.AddObserver(trace)
	for _, o := range observers {
		driver.AddObserver(o)
	}
	return &Game{
		form:    form.New(session, initial),
		driver:  driver,
		trace:   trace,
		surface: NewSurface(color.White),
		running: true,
	}
}

// Run opens the window for cfg and blocks until it is closed.
func Run(cfg *config.Config, observers ...anim.Observer) error {
	session, err := cfg.NewSession(lab.WithLogger(log.Default()))
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("stalagsim - Tab: move, Enter: calculate, S: save SVG, Esc: quit")
	ebiten.SetTPS(cfg.FPS)

	g := NewGame(session, cfg.Form(), observers...)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.form.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.form.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.form.Calculate()
	case g.form.OnField():
		if len(g.chars) > 0 {
			g.form.Type(string(g.chars))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.form.Backspace()
		}
	default:
		g.selectorKeys()
	}

	if g.running {
		g.driver.Advance()
	}
	return nil
}

func (g *Game) selectorKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.form.Cycle(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.form.Cycle(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.form.Focus() == form.FocusCalculate {
			g.form.Calculate()
		} else {
			g.running = !g.running
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset()
		g.trace.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.notice = err.Error()
		}
	}
}

// saveSnapshot asks for a file name and writes the current frame as SVG.
func (g *Game) saveSnapshot() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save frame as SVG"),
		zenity.Filename("stalagsim-frame.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG images",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("save dialog: %w", err)
	}

	svg := export.NewSVG(render.CanvasWidth, render.CanvasHeight)
	svg.Background = color.White
	render.Frame(svg, g.driver.State())
	if err := os.WriteFile(path, []byte(svg.String()), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	g.notice = "saved " + path
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.surface.Bind(screen, panelWidth, 0, windowWidth-panelWidth, windowHeight)
	render.Frame(g.surface, g.driver.State())

	g.drawPanel(screen)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, panelWidth, windowHeight, colPanel, false)
	vector.StrokeLine(screen, panelWidth, 0, panelWidth, windowHeight, 2, colBorder, false)

	x, y := 16, 16
	ebitenutil.DebugPrintAt(screen, "STALAGMOMETER", x, y)
	y += 2 * lineHeight

	for _, row := range g.form.Rows(true) {
		if row.Focused {
			vector.DrawFilledRect(screen, float32(x-4), float32(y-2), panelWidth-24, lineHeight, colFocus, false)
		}
		ebitenutil.DebugPrintAt(screen, row.Label, x, y)
		ebitenutil.DebugPrintAt(screen, row.Value, x+100, y)
		y += lineHeight + 4
	}

	y += lineHeight
	if status, isErr := g.form.Status(); isErr {
		ebitenutil.DebugPrintAt(screen, "error: "+status, x, y)
	} else if res, ok := g.form.Session().Last(); ok {
		// the debug font has no Cyrillic glyphs
		p := g.form.Session().Model().Parameters()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("surface tension (%s): %s N/m", p.Liquid, res.Text), x, y)
	}
	y += 2 * lineHeight

	st := g.driver.State()
	state := "dripping"
	if !g.running {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s, drops: %d", state, g.trace.Detaches), x, y)
	y += lineHeight
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("y %.2f  r %.1f  %s", st.Y, st.Radius, st.Phase()), x, y)
	y += 2 * lineHeight

	if g.notice != "" {
		ebitenutil.DebugPrintAt(screen, g.notice, x, y)
	}
	ebitenutil.DebugPrintAt(screen, "Space pause  R restart  S save SVG", x, windowHeight-24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
