package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/audio"
	"github.com/san-kum/stalagsim/internal/config"
	"github.com/san-kum/stalagsim/internal/droplet"
	"github.com/san-kum/stalagsim/internal/gui"
	"github.com/san-kum/stalagsim/internal/viz"
	"github.com/san-kum/stalagsim/internal/window"
)

var (
	// Config file
	configFile string
	// Preset name
	preset string

	liquid    string
	planet    string
	dropMass  string
	radius    string
	dropCount string
	strict    bool
	frameRate int
	theme     string
	withAudio bool
	label     string
	unit      string
	verbose   bool

	// Headless runs
	atTick int
	scale  float64
	stride int

	// Sweep and uncertainty
	massMin, massMax     float64
	radiusMin, radiusMax float64
	steps                int
	trials               int
	massSigma            float64
	radiusSigma          float64
	seed                 int64
)

// main registers the stalagsim commands and runs the terminal lab when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stalagsim",
		Short:        "stalagmometer surface tension lab",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&liquid, "liquid", "water", "liquid key")
	pf.StringVar(&planet, "planet", "earth", "planet key")
	pf.StringVar(&dropMass, "mass", config.DefaultDropMass, "drop mass (kg)")
	pf.StringVar(&radius, "radius", config.DefaultRadius, "tube radius (cm)")
	pf.StringVar(&dropCount, "count", config.DefaultDropCount, "number of drops")
	pf.BoolVar(&strict, "strict", false, "reject unknown keys and non-numeric input")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")
	pf.BoolVar(&withAudio, "audio", false, "play a sound for every drop")
	pf.StringVar(&label, "label", "", "result label")
	pf.StringVar(&unit, "unit", "", "result unit")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log selection changes to stderr")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal lab",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the lab in a raylib window",
		RunE:  runGUI,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the lab in an ebiten window",
		RunE:  runWindow,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, windowCmd)
	rootCmd.AddCommand(labCommands()...)
	rootCmd.AddCommand(simCommands()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the preset, the config file and finally the
// flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("liquid") {
		cfg.Liquid = liquid
	}
	if flags.Changed("planet") {
		cfg.Planet = planet
	}
	if flags.Changed("mass") {
		cfg.DropMass = dropMass
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("count") {
		cfg.DropCount = dropCount
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("audio") {
		cfg.Audio = withAudio
	}
	if flags.Changed("label") {
		cfg.Label = label
	}
	if flags.Changed("unit") {
		cfg.Unit = unit
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}

// observers starts the drip sound when enabled. The returned stop function
// is always safe to call.
func observers(cfg *config.Config) ([]anim.Observer, func()) {
	if !cfg.Audio {
		return nil, func() {}
	}
	engine := audio.NewEngine()
	if err := engine.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
		return nil, func() {}
	}
	return []anim.Observer{engine}, engine.Stop
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	obs, stop := observers(cfg)
	defer stop()
	return viz.RunInteractive(cfg, obs...)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	obs, stop := observers(cfg)
	defer stop()
	return gui.Run(cfg, obs...)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	obs, stop := observers(cfg)
	defer stop()
	return window.Run(cfg, obs...)
}

// cycleTicks is the default length of headless runs.
func cycleTicks(n int) int { return n * droplet.CycleLength() }
