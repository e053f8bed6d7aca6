package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stalagsim/internal/automation"
	"github.com/san-kum/stalagsim/internal/config"
	"github.com/san-kum/stalagsim/internal/lab"
)

func labCommands() []*cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "calculate surface tension from the flags",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list liquids and planets",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tLIQUID\tPLANET\tMASS\tRADIUS\tCOUNT")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", name, p.Liquid, p.Planet, p.DropMass, p.Radius, p.DropCount)
			}
			w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("config written to %s\n", args[0])
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "calculate over a grid of drop masses and radii",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&massMin, "mass-min", 0.001, "lowest drop mass (kg)")
	sweepCmd.Flags().Float64Var(&massMax, "mass-max", 0.005, "highest drop mass (kg)")
	sweepCmd.Flags().Float64Var(&radiusMin, "radius-min", 0.2, "smallest radius (cm)")
	sweepCmd.Flags().Float64Var(&radiusMax, "radius-max", 1.0, "largest radius (cm)")
	sweepCmd.Flags().IntVar(&steps, "steps", 5, "grid points per axis")

	uncertaintyCmd := &cobra.Command{
		Use:   "uncertainty",
		Short: "monte carlo spread of the estimate under measurement noise",
		Args:  cobra.NoArgs,
		RunE:  runUncertainty,
	}
	uncertaintyCmd.Flags().IntVar(&trials, "trials", 10000, "number of trials")
	uncertaintyCmd.Flags().Float64Var(&massSigma, "mass-sigma", 0.0001, "drop mass standard deviation (kg)")
	uncertaintyCmd.Flags().Float64Var(&radiusSigma, "radius-sigma", 0.01, "radius standard deviation (cm)")
	uncertaintyCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "replay a yaml scenario of lab commands",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	return []*cobra.Command{calcCmd, catalogCmd, presetsCmd, initCmd, sweepCmd, uncertaintyCmd, scriptCmd}
}

// newSession builds a session for a headless command. Verbose mode logs
// selection changes to stderr.
func newSession(cfg *config.Config, opts ...lab.SessionOption) (*lab.Session, error) {
	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return cfg.NewSession(append(opts, lab.WithLogger(logger))...)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	session, err := newSession(cfg, lab.WithSink(lab.SinkFunc(func(text string) {
		fmt.Println(text)
	})))
	if err != nil {
		return err
	}

	res := session.OnCalculateRequested()
	if verbose {
		p := session.Model().Parameters()
		fmt.Fprintf(os.Stderr, "tension=%g gravity=%g mass=%g radius=%g count=%g raw=%g\n",
			p.Tension, p.Gravity, p.DropMass, p.Radius, p.DropCount, res.Value)
	}
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.Catalogs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LIQUID\tNAME\tTENSION (N/m)")
	for _, key := range c.Liquids.Names() {
		v, _ := c.Liquids.Lookup(key)
		fmt.Fprintf(w, "%s\t%s\t%g\n", key, c.DisplayName(key), v)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PLANET\tNAME\tGRAVITY (m/s²)")
	for _, key := range c.Planets.Names() {
		v, _ := c.Planets.Lookup(key)
		fmt.Fprintf(w, "%s\t%s\t%g\n", key, c.DisplayName(key), v)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", steps)
	}
	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	masses := lab.Linspace(massMin, massMax, steps)
	radii := lab.Linspace(radiusMin, radiusMax, steps)
	grid, err := lab.NewGrid(
		[]lab.Field{lab.FieldDropMass, lab.FieldRadius},
		[][]float64{masses, radii},
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	base := session.Model().Parameters()
	points, err := grid.Sweep(ctx, base)
	if err != nil {
		return err
	}

	fmt.Printf("sweep: %s on %s, %d points\n\n",
		session.Model().Catalogs().DisplayName(base.Liquid), base.Planet, len(points))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MASS (kg)\tRADIUS (cm)\tTENSION (N/m)")
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%g\t%s\n", p.DropMass, p.Radius, p.Result.Text)
	}
	w.Flush()

	// one series per mass, radius along the x axis
	series := make([][]float64, 0, len(masses))
	for i := range masses {
		row := make([]float64, 0, len(radii))
		for _, p := range points[i*len(radii) : (i+1)*len(radii)] {
			row = append(row, p.Result.Value)
		}
		series = append(series, row)
	}
	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("tension vs radius %g..%g cm, one line per mass", radiusMin, radiusMax)),
	))
	return nil
}

func runUncertainty(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	base := session.Model().Parameters()
	res, err := automation.RunMonteCarlo(ctx, automation.MonteCarloConfig{
		Trials:      trials,
		MassSigma:   massSigma,
		RadiusSigma: radiusSigma,
		Seed:        seed,
	}, base)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Nominal:\t%s N/m\n", lab.Calculate(base).Text)
	fmt.Fprintf(w, "Trials:\t%d (%d finite)\n", res.Trials, res.Finite)
	fmt.Fprintf(w, "Mean:\t%.4f N/m\n", res.Mean)
	fmt.Fprintf(w, "StdDev:\t%.4f N/m\n", res.StdDev)
	fmt.Fprintf(w, "Range:\t%.4f .. %.4f N/m\n", res.Min, res.Max)
	return w.Flush()
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	results, err := automation.RunScenario(ctx, scenario, session, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%d calculations\n", len(results))
	return nil
}
