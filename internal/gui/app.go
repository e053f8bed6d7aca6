package gui

import (
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/config"
	"github.com/san-kum/stalagsim/internal/form"
	"github.com/san-kum/stalagsim/internal/lab"
	"github.com/san-kum/stalagsim/internal/render"
)

const (
	screenWidth  = 1100
	screenHeight = 600
	panelWidth   = 420
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColCanvas  = rl.NewColor(250, 250, 250, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColResult  = rl.NewColor(135, 206, 235, 255)
	ColError   = rl.NewColor(255, 90, 90, 255)
)

type App struct {
	Form    *form.Form
	Driver  *anim.Driver
	Trace   *anim.Trace
	Surface *Surface
	Running bool
	Font    rl.Font

	quit bool
}

func initWindow(fps int) {
	rl.InitWindow(screenWidth, screenHeight, "stalagsim")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono with the Latin and Cyrillic glyphs the
// result label needs.
func loadFont() rl.Font {
	codepoints := make([]rune, 0, 96+256+2)
	for r := rune(32); r < 127; r++ {
		codepoints = append(codepoints, r)
	}
	for r := rune(0x0400); r <= 0x04ff; r++ {
		codepoints = append(codepoints, r)
	}
	codepoints = append(codepoints, '²', '▸')
	font := rl.LoadFontEx(fontPath, 32, codepoints)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(session *lab.Session, initial lab.Form, observers ...anim.Observer) *App {
	surface := NewSurface(ColCanvas)
	surface.SetViewport(panelWidth, 0, screenWidth-panelWidth, screenHeight)

	driver := anim.New(surface)
	trace := anim.NewCycleTrace()
	driver.AddObserver(trace)
	for _, o := range observers {
		driver.AddObserver(o)
	}

	return &App{
		Form:    form.New(session, initial),
		Driver:  driver,
		Trace:   trace,
		Surface: surface,
		Running: true,
		Font:    loadFont(),
	}
}

// Run opens the raylib window for cfg and blocks until it is closed.
func Run(cfg *config.Config, observers ...anim.Observer) error {
	session, err := cfg.NewSession(lab.WithLogger(log.Default()))
	if err != nil {
		return err
	}
	initWindow(cfg.FPS)
	defer rl.CloseWindow()

	app := NewApp(session, cfg.Form(), observers...)
	defer rl.UnloadFont(app.Font)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	// drain the char queue every frame so keys typed on a selector do not
	// land in the next field
	var typed []rune
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		typed = append(typed, rune(c))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeyTab), rl.IsKeyPressed(rl.KeyDown):
		a.Form.Next()
		return
	case rl.IsKeyPressed(rl.KeyUp):
		a.Form.Prev()
		return
	case rl.IsKeyPressed(rl.KeyEnter):
		a.Form.Calculate()
		return
	}

	if a.Form.OnField() {
		if len(typed) > 0 {
			a.Form.Type(string(typed))
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			a.Form.Backspace()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyLeft) {
		a.Form.Cycle(-1)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.Form.Cycle(1)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if a.Form.Focus() == form.FocusCalculate {
			a.Form.Calculate()
		} else {
			a.Running = !a.Running
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Driver.Reset()
		a.Trace.Reset()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.Running {
		a.Driver.Frame()
	} else {
		render.Frame(a.Surface, a.Driver.State())
	}
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawPanel() {
	x, y := float32(30), float32(40)
	a.text("STALAGMOMETER", x, y, 28, ColSelect)
	y += 34
	a.text("drop-weight surface tension", x, y, 16, ColTextDim)
	y += 50

	for _, row := range a.Form.Rows(false) {
		col := ColText
		marker := "  "
		if row.Focused {
			col, marker = ColSelect, "▸ "
		}
		a.text(marker+row.Label, x, y, 20, col)
		a.text(row.Value, x+150, y, 20, col)
		y += 32
	}

	y += 20
	if status, isErr := a.Form.Status(); status != "" {
		col := ColResult
		if isErr {
			col = ColError
		}
		a.text(status, x, y, 18, col)
	}
	y += 50

	state := "dripping"
	if !a.Running {
		state = "paused"
	}
	st := a.Driver.State()
	a.text(fmt.Sprintf("%s  drops %d", state, a.Trace.Detaches), x, y, 18, ColAccent)
	y += 26
	a.text(fmt.Sprintf("y %.2f px  r %.1f px  %s", st.Y, st.Radius, st.Phase()), x, y, 18, ColAccent)

	a.text("TAB move  ARROWS select  ENTER calc  SPACE pause  R restart  ESC quit", x, screenHeight-30, 14, ColTextDim)
}

func (a *App) text(s string, x, y, size float32, col color.RGBA) {
	rl.DrawTextEx(a.Font, s, rl.NewVector2(x, y), size, 1, col)
}
