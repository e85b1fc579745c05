package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/export"
	"github.com/san-kum/plexus/internal/gui"
	"github.com/san-kum/plexus/internal/metrics"
	"github.com/san-kum/plexus/internal/render"
	"github.com/san-kum/plexus/internal/scene"
	"github.com/san-kum/plexus/internal/sdlview"
	"github.com/san-kum/plexus/internal/sim"
	"github.com/san-kum/plexus/internal/storage"
	"github.com/san-kum/plexus/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	particles  int
	debug      bool
	// view
	fps    int
	width  int
	height int
	scale  float64
	theme  string
	gifOut string
	hud    bool
	// headless runs
	frames   int
	pointer  string
	save     bool
	runsDir  string
	ensemble int
)

// main registers the commands and runs the terminal view when no subcommand
// is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "plexus",
		Short:        "animated particle field with pointer repulsion",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := setupLogging(debug); f != nil {
			cobra.OnFinalize(func() { f.Close() })
		}
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.IntVar(&particles, "particles", config.DefaultConfig().Field.Particles, "number of particles")
	pf.BoolVar(&debug, "debug", false, "write logs to logs/plexus.log")

	addTUIFlags := func(c *cobra.Command) {
		c.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		c.Flags().Float64Var(&scale, "scale", config.DefaultScale, "world units per braille dot")
		c.Flags().StringVar(&theme, "theme", "night", "colour theme")
		c.Flags().StringVar(&gifOut, "gif", "plexus.gif", "GIF recording path")
	}
	addTUIFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	addTUIFlags(tuiCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a raylib window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&width, "width", int(config.DefaultWidth), "window width")
	guiCmd.Flags().IntVar(&height, "height", int(config.DefaultHeight), "window height")
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	guiCmd.Flags().BoolVar(&hud, "hud", true, "show frame counter and key hints")

	canvasCmd := &cobra.Command{
		Use:   "canvas",
		Short: "run in an SDL window through an HTML5-style canvas",
		RunE:  runCanvas,
	}
	canvasCmd.Flags().IntVar(&width, "width", int(config.DefaultWidth), "window width")
	canvasCmd.Flags().IntVar(&height, "height", int(config.DefaultHeight), "window height")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and plot per-frame statistics",
		RunE:  runStats,
	}
	addHeadlessFlags(statsCmd)
	statsCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "pace frames at this rate (unset runs flat out)")
	statsCmd.Flags().BoolVar(&save, "save", false, "save the run record")
	statsCmd.Flags().IntVar(&ensemble, "ensemble", 0, "also compare this many consecutive seeds")
	statsCmd.Flags().StringVar(&runsDir, "runs-dir", "runs", "run record directory")

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "run headless and export the last frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSVG,
	}
	addHeadlessFlags(svgCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES\tPOINTER\tDISTANCE\tFRICTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.2f\n", name, p.Particles, p.PointerRadius, p.MaxDistance, p.Friction)
			}
			return w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "list saved run records, or plot one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRuns,
	}
	runsCmd.Flags().StringVar(&runsDir, "runs-dir", "runs", "run record directory")

	rootCmd.AddCommand(tuiCmd, guiCmd, canvasCmd, statsCmd, svgCmd, presetsCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addHeadlessFlags(c *cobra.Command) {
	c.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	c.Flags().IntVar(&width, "width", int(config.DefaultWidth), "surface width")
	c.Flags().IntVar(&height, "height", int(config.DefaultHeight), "surface height")
	c.Flags().StringVar(&pointer, "pointer", "none", fmt.Sprintf("scripted pointer path %v", sim.PointerPathNames()))
}

// loadConfig resolves defaults, then the config file, then the preset, then
// any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg.Preset, cfg.Field = preset, p.Field
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("particles") {
		cfg.Field.Particles = particles
	}
	if flags.Changed("fps") {
		cfg.View.FPS = fps
	}
	if flags.Changed("scale") {
		cfg.View.Scale = scale
	}
	if flags.Changed("width") {
		cfg.View.Width = float64(width)
	}
	if flags.Changed("height") {
		cfg.View.Height = float64(height)
	}
	if flags.Changed("frames") {
		cfg.Run.Frames = frames
	}
	if flags.Changed("pointer") {
		cfg.Run.PointerPath = pointer
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg.SceneOptions(), viz.Options{
		FPS:     cfg.View.FPS,
		Scale:   cfg.View.Scale,
		Theme:   theme,
		GIFPath: gifOut,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg.SceneOptions(), gui.Options{
		Width:   int(cfg.View.Width),
		Height:  int(cfg.View.Height),
		FPS:     cfg.View.FPS,
		ShowHUD: hud,
	})
	return nil
}

func runCanvas(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return sdlview.Run(cfg.SceneOptions(), sdlview.Options{
		Width:  int(cfg.View.Width),
		Height: int(cfg.View.Height),
	})
}

// headless runs the configured scene on a recorder until the frame budget
// is spent or the process is interrupted.
func headless(cmd *cobra.Command, cfg *config.Config, observers ...sim.Observer) (*render.Recorder, *sim.Result, error) {
	path, err := sim.LookupPointerPath(cfg.Run.PointerPath)
	if err != nil {
		return nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc := scene.New(cfg.View.Width, cfg.View.Height, cfg.SceneOptions())
	rec := render.NewRecorder()
	// Headless runs only pace frames when asked to.
	runFPS := 0
	if cmd.Flags().Changed("fps") {
		runFPS = cfg.View.FPS
	}
	runner := sim.New()
	for _, o := range observers {
		runner.AddObserver(o)
	}
	result, err := runner.Run(ctx, sc, rec, sim.Config{
		Frames:  cfg.Run.Frames,
		FPS:     runFPS,
		Pointer: path,
	})
	if err != nil && ctx.Err() == nil {
		return nil, nil, err
	}
	return rec, result, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	collector := metrics.NewCollector(metrics.Defaults(cfg.Field.Particles)...)
	_, result, err := headless(cmd, cfg, collector)
	if err != nil {
		return err
	}
	if len(result.Frames) == 0 {
		fmt.Println("no frames simulated")
		return nil
	}

	fmt.Println(asciigraph.Plot(result.Lines(), asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("lines per frame")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.MeanPush(), asciigraph.Height(6), asciigraph.Width(70), asciigraph.Caption("mean push")))
	fmt.Println()

	minLines, maxLines, sumLines := result.Frames[0].Lines, result.Frames[0].Lines, 0
	for _, f := range result.Frames {
		minLines = min(minLines, f.Lines)
		maxLines = max(maxLines, f.Lines)
		sumLines += f.Lines
	}
	n := len(result.Frames)
	last := result.Frames[n-1]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "particles\t%d\n", cfg.Field.Particles)
	fmt.Fprintf(w, "surface\t%.0fx%.0f\n", cfg.View.Width, cfg.View.Height)
	fmt.Fprintf(w, "pointer\t%s\n", cfg.Run.PointerPath)
	fmt.Fprintf(w, "frames\t%d\n", n)
	fmt.Fprintf(w, "lines\tmin %d  max %d  mean %.1f\n", minLines, maxLines, float64(sumLines)/float64(n))
	fmt.Fprintf(w, "mean speed\t%.3f\n", last.MeanSpeed)
	for _, m := range collector.Metrics() {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	fmt.Fprintf(w, "elapsed\t%v (%.0f frames/s)\n", result.Elapsed.Round(time.Millisecond), float64(n)/result.Elapsed.Seconds())
	if err := w.Flush(); err != nil {
		return err
	}

	if ensemble > 1 {
		if err := compareSeeds(cfg); err != nil {
			return err
		}
	}

	if !save {
		return nil
	}
	st := storage.New(runsDir)
	if err := st.Init(); err != nil {
		return fmt.Errorf("init run store: %w", err)
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset:      cfg.Preset,
		Seed:        cfg.Seed,
		Particles:   cfg.Field.Particles,
		Width:       cfg.View.Width,
		Height:      cfg.View.Height,
		PointerPath: cfg.Run.PointerPath,
		Metrics:     collector.Values(),
	}, result)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("\nsaved run %s\n", runID)
	return nil
}

// compareSeeds runs the field under consecutive seeds in parallel and prints
// one row per seed.
func compareSeeds(cfg *config.Config) error {
	path, err := sim.LookupPointerPath(cfg.Run.PointerPath)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := sim.NewEnsemble(cfg.View.Width, cfg.View.Height, cfg.SceneOptions(), ensemble, cfg.Seed)
	results, err := e.Run(ctx, sim.Config{Frames: cfg.Run.Frames, Pointer: path})
	if err != nil {
		return fmt.Errorf("ensemble: %w", err)
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tCONNECTIVITY\tAGITATION\tSETTLING")
	for i, r := range results {
		c := metrics.NewCollector(metrics.Defaults(cfg.Field.Particles)...)
		for _, f := range r.Frames {
			c.OnFrame(f)
		}
		v := c.Values()
		fmt.Fprintf(w, "%d\t%.4f\t%.3f\t%.3f\n", e.Seed(i), v["connectivity"], v["agitation"], v["settling"])
	}
	return w.Flush()
}

func runRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(runsDir)
	if len(args) == 1 {
		return showRun(st, args[0])
	}

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPARTICLES\tPOINTER\tFRAMES\tMEAN LINES\tPEAK LINES\tMEAN PUSH")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%.1f\t%.0f\t%.3f\n",
			r.ID, r.Particles, r.PointerPath, r.Frames,
			r.Metrics["mean_lines"], r.Metrics["peak_lines"], r.Metrics["mean_push"])
	}
	return w.Flush()
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rec, result, err := headless(cmd, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}
	defer f.Close()

	if err := export.FrameToSVG(f, rec, color.RGBA{10, 10, 10, 255}); err != nil {
		return err
	}
	fmt.Printf("wrote frame %d (%d lines, %d particles) to %s\n", len(result.Frames), len(rec.Lines), len(rec.Circles), args[0])
	return nil
}

func showRun(st *storage.Store, id string) error {
	meta, err := st.Load(id)
	if err != nil {
		return fmt.Errorf("load run %s: %w", id, err)
	}
	frames, err := st.LoadFrames(id)
	if err != nil {
		return fmt.Errorf("load frames %s: %w", id, err)
	}
	if len(frames) == 0 {
		fmt.Printf("run %s has no frames\n", id)
		return nil
	}

	result := &sim.Result{Frames: frames, Elapsed: meta.Elapsed}
	fmt.Printf("%s  seed %d  %d particles  %.0fx%.0f  pointer %s\n\n",
		meta.ID, meta.Seed, meta.Particles, meta.Width, meta.Height, meta.PointerPath)
	fmt.Println(asciigraph.Plot(result.Lines(), asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("lines per frame")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.MeanPush(), asciigraph.Height(6), asciigraph.Width(70), asciigraph.Caption("mean push")))
	return nil
}
