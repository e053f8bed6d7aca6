package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stalagsim/internal/analysis"
	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/export"
	"github.com/san-kum/stalagsim/internal/render"
	"github.com/san-kum/stalagsim/internal/store"
)

func simCommands() []*cobra.Command {
	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run the drip animation headless and plot it",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntP("ticks", "n", cycleTicks(2), "number of frames")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "find the drip period from the radius spectrum",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().IntP("ticks", "n", cycleTicks(8), "number of frames")

	svgCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "render a single frame to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	svgCmd.Flags().IntVar(&atTick, "tick", 0, "frame to render")

	gifCmd := &cobra.Command{
		Use:   "export-gif [file]",
		Short: "record one drip cycle as an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportGIF,
	}
	gifCmd.Flags().Float64Var(&scale, "scale", 0.5, "pixel scale")
	gifCmd.Flags().IntVar(&stride, "stride", 4, "frames between captures")

	csvCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "write a droplet trace as csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, _, err := recordTrace(cmd)
			if err != nil {
				return err
			}
			if err := store.ExportCSV(args[0], trace); err != nil {
				return err
			}
			fmt.Printf("%d samples written to %s\n", len(trace.Samples), args[0])
			return nil
		},
	}
	csvCmd.Flags().IntP("ticks", "n", cycleTicks(1), "number of frames")

	jsonCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "write a droplet trace as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, fps, err := recordTrace(cmd)
			if err != nil {
				return err
			}
			if err := store.ExportJSON(args[0], trace, fps); err != nil {
				return err
			}
			fmt.Printf("%d samples written to %s\n", len(trace.Samples), args[0])
			return nil
		},
	}
	jsonCmd.Flags().IntP("ticks", "n", cycleTicks(1), "number of frames")

	return []*cobra.Command{traceCmd, analyzeCmd, svgCmd, gifCmd, csvCmd, jsonCmd}
}

// recordTrace runs ticks frames without drawing and returns the full
// trace together with the configured frame rate.
func recordTrace(cmd *cobra.Command) (*anim.Trace, int, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, 0, err
	}
	ticks, err := cmd.Flags().GetInt("ticks")
	if err != nil {
		return nil, 0, err
	}
	if ticks <= 0 {
		return nil, 0, fmt.Errorf("ticks must be positive, got %d", ticks)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	d := anim.New(nil)
	trace := anim.NewTrace(0)
	d.AddObserver(trace)
	if err := d.RunTicks(ctx, ticks); err != nil {
		return nil, 0, err
	}
	return trace, cfg.FPS, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	trace, fps, err := recordTrace(cmd)
	if err != nil {
		return err
	}

	last := trace.Samples[len(trace.Samples)-1]
	fmt.Printf("Frames: %d (%.1f s at %d fps)\n", len(trace.Samples), float64(len(trace.Samples))/float64(fps), fps)
	fmt.Printf("Drops:  %d detached, %d reset\n", trace.Detaches, trace.Resets)
	fmt.Printf("Final:  y=%.2f radius=%.1f detaching=%v\n\n", last.Y, last.Radius, last.IsDetaching)

	fmt.Println(asciigraph.Plot(trace.Ys(),
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("droplet y (px)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(trace.Radii(),
		asciigraph.Height(6),
		asciigraph.Width(70),
		asciigraph.Caption("droplet radius (px)"),
	))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	trace, fps, err := recordTrace(cmd)
	if err != nil {
		return err
	}

	report, err := analysis.DripPeriod(trace.Radii(), float64(fps))
	if err != nil {
		return err
	}

	fmt.Printf("Samples:    %d\n", report.Samples)
	fmt.Printf("Peak bin:   %d\n", report.PeakBin)
	fmt.Printf("Period:     %.1f frames\n", report.PeriodTicks)
	fmt.Printf("Frequency:  %.4f Hz\n", report.FrequencyHz)
	fmt.Printf("Drip rate:  %.2f drops/min\n", report.DropsPerMinute())
	fmt.Printf("Counted:    %d drops\n\n", trace.Detaches)

	spectrum := analysis.PowerSpectrum(trace.Radii())
	if len(spectrum) > 64 {
		spectrum = spectrum[1:64]
	}
	fmt.Println(asciigraph.Plot(spectrum,
		asciigraph.Height(8),
		asciigraph.Width(63),
		asciigraph.Caption("radius power spectrum (bins 1-63)"),
	))
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	if atTick < 0 {
		return fmt.Errorf("tick must not be negative, got %d", atTick)
	}

	d := anim.New(nil)
	for i := 0; i < atTick; i++ {
		d.Advance()
	}

	svg := export.NewSVG(render.CanvasWidth, render.CanvasHeight)
	render.Frame(svg, d.State())
	if err := os.WriteFile(args[0], []byte(svg.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	s := d.State()
	fmt.Printf("frame %d (y=%.2f radius=%.1f %s) written to %s\n", atTick, s.Y, s.Radius, s.Phase(), args[0])
	return nil
}

func runExportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	frames, err := export.RecordCycle(ctx, f, export.GIFOptions{Scale: scale, Stride: stride, FPS: cfg.FPS})
	if err != nil {
		return err
	}
	fmt.Printf("%d frames written to %s\n", frames, args[0])
	return nil
}
