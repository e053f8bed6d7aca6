package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/config"
	"github.com/san-kum/stalagsim/internal/form"
	"github.com/san-kum/stalagsim/internal/lab"
	"github.com/san-kum/stalagsim/internal/render"
)

const (
	defaultCanvasW = 40
	defaultCanvasH = 16
	formWidth      = 46
	graphHeight    = 5
	traceWindow    = 680
)

type TickMsg time.Time

// Options configure the interactive app.
type Options struct {
	FPS       int
	Theme     string
	Observers []anim.Observer
}

// App is the interactive lab: experiment form, drip animation and a
// height plot.
type App struct {
	driver  *anim.Driver
	trace   *anim.Trace
	surface *Surface

	form    *form.Form
	running bool
	fps     int
	theme   Theme
	styles  Styles
	width   int
	height  int
}

func NewApp(session *lab.Session, initial lab.Form, opts Options) App {
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	theme := GetTheme(opts.Theme)

	surface := NewSurface(NewCanvas(defaultCanvasW, defaultCanvasH))
	driver := anim.New(surface)
	trace := anim.NewTrace(traceWindow)
	driver.AddObserver(trace)
	for _, o := range opts.Observers {
		driver.AddObserver(o)
	}

	return App{
		driver:  driver,
		trace:   trace,
		surface: surface,
		form:    form.New(session, initial),
		running: true,
		fps:     fps,
		theme:   theme,
		styles:  NewStyles(theme),
		width:   formWidth + defaultCanvasW + 8,
		height:  defaultCanvasH + graphHeight + 8,
	}
}

func (m App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m App) Init() tea.Cmd { return m.tick() }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if m.running {
			m.driver.Frame()
		} else {
			render.Frame(m.surface, m.driver.State())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *App) resize(w, h int) {
	m.width, m.height = w, h
	cw := max(w-formWidth-8, 10)
	ch := max(h-graphHeight-10, 4)
	m.surface = NewSurface(NewCanvas(cw, ch))
	m.driver.SetSurface(m.surface)
}

func (m App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.form.Next()
		return m, nil
	case "shift+tab", "up":
		m.form.Prev()
		return m, nil
	case "enter":
		m.form.Calculate()
		return m, nil
	case "ctrl+p":
		m.running = !m.running
		return m, nil
	case "ctrl+r":
		m.restart()
		return m, nil
	case "ctrl+t":
		m.nextTheme()
		return m, nil
	}

	if m.form.OnField() {
		switch msg.Type {
		case tea.KeyBackspace:
			m.form.Backspace()
		case tea.KeyRunes:
			m.form.Type(string(msg.Runes))
		case tea.KeySpace:
			m.form.Type(" ")
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		if m.form.Focus() == form.FocusCalculate {
			m.form.Calculate()
		} else {
			m.running = !m.running
		}
	case "r":
		m.restart()
	case "t":
		m.nextTheme()
	case "left", "h":
		m.form.Cycle(-1)
	case "right", "l":
		m.form.Cycle(1)
	}
	return m, nil
}

func (m *App) restart() {
	m.driver.Reset()
	m.trace.Reset()
}

func (m *App) nextTheme() {
	m.theme = NextTheme(m.theme)
	m.styles = NewStyles(m.theme)
}

func (m App) View() string {
	s := m.styles
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Panel.Width(formWidth).Render(m.viewForm()),
		s.Panel.Render(m.surface.Canvas().Render()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("STALAGMOMETER")+"  "+s.Subtle.Render("drop-weight surface tension lab"),
		top,
		m.viewGraph(),
		m.viewHelp(),
	)
}

func (m App) viewForm() string {
	s := m.styles

	var b strings.Builder
	for _, row := range m.form.Rows(false) {
		marker, value := "  ", s.Value.Render(row.Value)
		if row.Focused {
			marker, value = s.Focused.Render("▸ "), s.Focused.Render(row.Value)
		}
		b.WriteString(marker + s.Label.Render(row.Label) + value + "\n")
	}

	b.WriteString("\n" + Separator(s, formWidth-4) + "\n\n")
	status, isErr := m.form.Status()
	switch {
	case status == "":
		b.WriteString(s.Subtle.Render("press enter to calculate"))
	case isErr:
		b.WriteString(s.Error.Render(status))
	default:
		b.WriteString(s.Result.Render(status))
	}
	b.WriteString("\n\n")

	st := m.driver.State()
	state := s.Running.Render("● dripping")
	if !m.running {
		state = s.Paused.Render("❚❚ paused")
	}
	b.WriteString(state + "\n")
	b.WriteString(fmt.Sprintf("%s%d\n", s.Label.Render("Drops"), m.trace.Detaches))
	b.WriteString(fmt.Sprintf("%s%.2f px\n", s.Label.Render("Height"), st.Y))
	b.WriteString(fmt.Sprintf("%s%.1f px  %s\n", s.Label.Render("Radius"), st.Radius, st.Phase()))
	b.WriteString(s.Label.Render("Profile") + s.Graph.Render(SparklineChart(m.trace.Radii(), 24)))
	return b.String()
}

func (m App) viewGraph() string {
	ys := m.trace.Ys()
	if len(ys) < 2 {
		return ""
	}
	w := max(m.width-16, 20)
	plot := asciigraph.Plot(ys,
		asciigraph.Height(graphHeight),
		asciigraph.Width(w),
		asciigraph.Caption("droplet y (px)"),
	)
	return m.styles.Graph.Render(plot)
}

func (m App) viewHelp() string {
	return m.styles.KeyHint.Render("tab move · ←/→ select · enter calculate · space pause · r restart · t theme · esc quit")
}

// Result returns the last calculation shown, if any.
func (m App) Result() (lab.FormattedResult, bool) { return m.form.Session().Last() }

// RunInteractive runs the terminal lab for cfg. Selection changes are
// logged to stalagsim.log.
func RunInteractive(cfg *config.Config, observers ...anim.Observer) error {
	f, err := tea.LogToFile("stalagsim.log", "stalagsim")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	session, err := cfg.NewSession(lab.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	app := NewApp(session, cfg.Form(), Options{FPS: cfg.FPS, Theme: cfg.Theme, Observers: observers})
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
