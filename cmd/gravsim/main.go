package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/analysis"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/optim"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/viz"
	"github.com/spf13/cobra"
)

const defaultPreset = "threebody"

var (
	dt         float64
	duration   float64
	configFile string
	verbose    bool
	// Live view
	frameRate int
	theme     string
	// GUI
	withAudio bool
	// Headless output
	trace   bool
	sample  int
	body    int
	axis    string
	outFile string
	// Sweep
	dtValues        []float64
	softeningValues []float64
	sweepMetric     string
)

var logger = slog.Default()

// main registers the commands and opens the window when no subcommand is
// given. It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "gravsim",
		Short:        "2D gravity and collision sandbox",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
		RunE: runGUI,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().BoolVar(&withAudio, "audio", false, "start with sound")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "run the simulation in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "start with sound")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run the simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a headless simulation and print metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "write sampled body states as CSV to stdout")
	runCmd.Flags().IntVar(&sample, "sample", 1, "record every n-th tick")

	plotCmd := &cobra.Command{
		Use:   "plot [preset]",
		Short: "plot energy and body position of a headless run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	addRunFlags(plotCmd)
	plotCmd.Flags().IntVar(&body, "body", 1, "body index to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "frequency analysis of one body's trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeRun,
	}
	addRunFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&body, "body", 1, "body index")
	analyzeCmd.Flags().StringVar(&axis, "axis", "x", "coordinate: x, y, vx or vy")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [preset]",
		Short: "write a preset as an editable config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}
	initCmd.Flags().StringVarP(&outFile, "out", "o", "gravsim.yaml", "output path")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [preset]",
		Short: "run headless and write the final frame as SVG to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	addRunFlags(snapshotCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "grid search over dt and softening",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&dtValues, "dt-values", []float64{0.001, 0.004, 0.016, 0.05}, "timesteps to try")
	sweepCmd.Flags().Float64SliceVar(&softeningValues, "softening-values", []float64{1e-6}, "softening constants to try")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "energy_drift", "metric to minimise")

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, plotCmd, analyzeCmd, presetsCmd, initCmd, snapshotCmd, sweepCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
}

// loadConfig resolves the preset, then the config file, then explicit flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	name := defaultPreset
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Name == "" {
			fileCfg.Name = configFile
		}
		cfg = fileCfg
	}

	if f := cmd.Flags().Lookup("dt"); f != nil && f.Changed {
		cfg.Dt = dt
	}
	if f := cmd.Flags().Lookup("time"); f != nil && f.Changed {
		cfg.Duration = duration
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSimulator(cfg *config.Config) (*sim.Simulator, error) {
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	s := sim.New(w, nil, cfg.Params())
	for _, m := range metrics.Defaults(cfg.Gravity, cfg.Softening) {
		s.AddMetric(m)
	}
	return s, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	logger.Debug("opening window", "preset", cfg.Name, "bodies", len(cfg.Bodies), "viewport", cfg.Viewport)
	gui.Run(s, gui.Options{
		Name:     cfg.Name,
		Viewport: cfg.Viewport,
		Audio:    withAudio,
		Logger:   logger,
	})
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(s, cfg.Viewport, cfg.Name, frameRate, theme))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	runCfg := cfg.RunConfig()
	runCfg.SampleEvery = sample

	logger.Debug("running", "preset", cfg.Name, "dt", runCfg.Dt, "duration", runCfg.Duration, "steps", runCfg.Steps())
	start := time.Now()
	result, err := s.Run(cmd.Context(), runCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := io.Writer(os.Stdout)
	if trace {
		if err := writeTrace(os.Stdout, result, runCfg.SampleEvery); err != nil {
			return err
		}
		summary = os.Stderr
	}

	fmt.Fprintf(summary, "%s: %d steps in %v\n\n", cfg.Name, result.StepsTaken, elapsed)
	w := tabwriter.NewWriter(summary, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range []string{"energy_drift", "momentum_drift", "contacts"} {
		fmt.Fprintf(w, "%s\t%.6g\n", m, result.Metrics[m])
	}
	fmt.Fprintln(w, "\nBODY\tX\tY\tVX\tVY")
	final := result.States[len(result.States)-1]
	for i, b := range final {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.3f\n", i, b.X, b.Y, b.VX, b.VY)
	}
	return w.Flush()
}

func writeTrace(out io.Writer, result *sim.Result, every int) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"tick", "time", "body", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for k, states := range result.States {
		tick := strconv.Itoa(k * every)
		for i, b := range states {
			rec := []string{tick, ff(result.Times[k]), strconv.Itoa(i), ff(b.X), ff(b.Y), ff(b.VX), ff(b.VY)}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	if body < 0 || body >= len(cfg.Bodies) {
		return fmt.Errorf("body %d out of range [0,%d)", body, len(cfg.Bodies))
	}

	energy := &energyTrace{g: cfg.Gravity, softening: cfg.Softening}
	s.AddObserver(energy)

	result, err := s.Run(cmd.Context(), cfg.RunConfig())
	if err != nil {
		return err
	}

	fmt.Printf("preset: %s\n", cfg.Name)
	fmt.Printf("steps: %d\n\n", result.StepsTaken)

	fmt.Println(asciigraph.Plot(energy.values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))
	fmt.Println()

	for _, ax := range []analysis.Axis{analysis.AxisX, analysis.AxisY} {
		series, err := analysis.BodySeries(result, body, ax)
		if err != nil {
			return err
		}
		caption := fmt.Sprintf("body %d %s", body, [...]string{"x", "y"}[ax])
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	result, err := s.Run(cmd.Context(), cfg.RunConfig())
	if err != nil {
		return err
	}
	series, err := analysis.BodySeries(result, body, ax)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s body %d %s\n\n", cfg.Name, body, axis)

	ps := analysis.PowerSpectrum(series)
	plotData := ps
	if len(ps) > 8 {
		plotData = ps[:len(ps)/4]
	}
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+axis+")"),
	))
	fmt.Println()

	period, err := analysis.DominantPeriod(series, analysis.SampleInterval(result))
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.3f hz\n", 1/period)
	fmt.Printf("period: %.3f s\n", period)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODIES\tDURATION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.1fs\n", name, len(p.Bodies), p.Duration)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := config.Save(outFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	if _, err := s.Run(cmd.Context(), cfg.RunConfig()); err != nil {
		return err
	}

	sink := export.NewSVGSink(os.Stdout, cfg.Viewport)
	sink.Draw(scene.Build(s.World()))
	return sink.Err()
}

func sweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	run := func(ctx context.Context, params map[string]float64) (*sim.Result, error) {
		cfg := base.Clone()
		cfg.Dt = params["dt"]
		cfg.Softening = params["softening"]
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		s, err := newSimulator(cfg)
		if err != nil {
			return nil, err
		}
		logger.Debug("sweep trial", "dt", cfg.Dt, "softening", cfg.Softening)
		return s.Run(ctx, cfg.RunConfig())
	}

	g := optim.NewGridSearch([]string{"dt", "softening"}, [][]float64{dtValues, softeningValues})
	best, bestVal, trials, err := g.Search(cmd.Context(), run, sweepMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DT\tSOFTENING\t%s\n", sweepMetric)
	for _, tr := range trials {
		if tr.Err != nil {
			fmt.Fprintf(w, "%g\t%g\terror: %v\n", tr.Params["dt"], tr.Params["softening"], tr.Err)
			continue
		}
		fmt.Fprintf(w, "%g\t%g\t%.6g\n", tr.Params["dt"], tr.Params["softening"], tr.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best == nil {
		return fmt.Errorf("no trial produced %s", sweepMetric)
	}
	fmt.Printf("\nbest: dt=%g softening=%g %s=%.6g\n", best["dt"], best["softening"], sweepMetric, bestVal)
	return nil
}

// energyTrace records total energy after every tick.
type energyTrace struct {
	g, softening float64
	values       []float64
}

func (e *energyTrace) OnStep(w *dynamo.World, contacts []dynamo.Contact, t float64) {
	e.values = append(e.values, physics.Energy(w, e.g, e.softening))
}
