package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/config"
	"github.com/san-kum/heartcloud/internal/export"
	"github.com/san-kum/heartcloud/internal/gui"
	"github.com/san-kum/heartcloud/internal/heart"
	"github.com/san-kum/heartcloud/internal/logging"
	"github.com/san-kum/heartcloud/internal/metrics"
	"github.com/san-kum/heartcloud/internal/tui"
	"github.com/san-kum/heartcloud/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	logLevel   string
	logFile    string
	theme      string

	count   int
	scale   float64
	workers int
	easing  string

	// sample outputs
	jsonOut string
	csvOut  string
	svgOut  string
	bins    int

	// render
	outDir   string
	frames   int
	fps      int
	acceptAt int
	width    int
	height   int

	pulseTime float64
)

// main registers the commands and flags, shows the terminal card when no
// subcommand is given and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "heartcloud",
		Short:         "particle heart greeting card",
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "log file for interactive surfaces")
	pf.IntVarP(&count, "count", "n", heart.DefaultCount, "number of particles")
	pf.Float64Var(&scale, "scale", heart.DefaultScale, "heart scale")
	pf.IntVar(&workers, "workers", 1, "sampler goroutines")
	pf.StringVar(&easing, "easing", "frame", "viewpoint easing (frame, time)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the card in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "rose", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().AddFlag(tuiCmd.Flags().Lookup("theme"))

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the card in a 3D window",
		RunE:  runGUI,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample the heart volume and print statistics",
		RunE:  runSample,
	}
	sampleCmd.Flags().StringVar(&jsonOut, "json", "", "write the cloud as json")
	sampleCmd.Flags().StringVar(&csvOut, "csv", "", "write the cloud as csv")
	sampleCmd.Flags().StringVar(&svgOut, "svg", "", "write a projected svg of the cloud")
	sampleCmd.Flags().IntVar(&bins, "bins", 20, "radial histogram bins")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render animation frames to png",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	renderCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	renderCmd.Flags().IntVar(&acceptAt, "accept-at", -1, "frame at which the card is accepted (-1 never)")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height")

	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "plot the breathing scale over time",
		RunE:  runPulse,
	}
	pulseCmd.Flags().Float64Var(&pulseTime, "time", 4.0, "duration in seconds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, sampleCmd, renderCmd, pulseCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}

	if configFile != "" {
		if _, err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("count") {
		cfg.Sampler.Count = count
	}
	if flags.Changed("scale") {
		cfg.Sampler.Scale = scale
	}
	if flags.Changed("workers") {
		cfg.Sampler.Workers = workers
	}
	if flags.Changed("easing") {
		cfg.Animator.Easing = easing
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if flags.Changed("frames") {
		cfg.Render.Frames = frames
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func sampleCloud(cfg *config.Config, log zerolog.Logger) (*heart.SampleResult, error) {
	sc, err := cfg.SamplerConfig()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var res *heart.SampleResult
	if cfg.Sampler.Workers > 1 {
		res, err = heart.SampleParallel(sc, cfg.Seed, cfg.Sampler.Workers)
	} else {
		res, err = heart.Sample(sc, rand.New(rand.NewSource(cfg.Seed)))
	}
	if err != nil {
		return nil, fmt.Errorf("sampling failed: %w", err)
	}

	log.Debug().
		Int("points", res.Cloud.Len()).
		Int("attempts", res.Attempts).
		Float64("acceptance", res.AcceptanceRate()).
		Dur("took", time.Since(start)).
		Msg("cloud sampled")
	return res, nil
}

// newCard samples a cloud and wires it to a fresh animator.
func newCard(cfg *config.Config, log zerolog.Logger) (*card.Card, *animator.Animator, error) {
	res, err := sampleCloud(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	params := cfg.AnimatorParams()
	return card.New(res.Cloud, params, cfg.CardOptions()), animator.New(params), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logging.ForTerminalUI(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cmd.Flags().Changed("theme") {
		viz.SetTheme(theme)
	}

	c, anim, err := newCard(cfg, log)
	if err != nil {
		return err
	}
	return tui.Run(c, anim, tui.Options{
		FPS:            cfg.Render.FPS,
		CharsPerSecond: cfg.Card.CharsPerSecond,
		Seed:           cfg.Seed,
		Log:            log,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logging.ForTerminalUI(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	c, anim, err := newCard(cfg, log)
	if err != nil {
		return err
	}
	gui.Run(c, anim, gui.Options{
		FPS:            cfg.Render.FPS,
		CharsPerSecond: cfg.Card.CharsPerSecond,
		Seed:           cfg.Seed,
		Log:            log,
	})
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, logLevel, true)

	res, err := sampleCloud(cfg, log)
	if err != nil {
		return err
	}
	st := metrics.Cloud(res.Cloud, bins)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "points\t%d\n", st.Count)
	fmt.Fprintf(w, "attempts\t%d\n", res.Attempts)
	fmt.Fprintf(w, "acceptance\t%.4f\n", res.AcceptanceRate())
	fmt.Fprintf(w, "seed\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "mean radius\t%.4f\n", st.MeanRadius)
	fmt.Fprintf(w, "max radius\t%.4f\n", st.MaxRadius)
	fmt.Fprintf(w, "bounds\t(%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
		st.Min.X, st.Min.Y, st.Min.Z, st.Max.X, st.Max.Y, st.Max.Z)
	w.Flush()

	hist := make([]float64, len(st.Histogram))
	for i, n := range st.Histogram {
		hist[i] = float64(n)
	}
	if len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("points by radial distance (0 .. 1)"),
		))
	}

	if jsonOut != "" {
		if err := writeFile(jsonOut, func(f *os.File) error { return export.WriteJSON(f, res, cfg.Seed) }); err != nil {
			return err
		}
		log.Info().Str("path", jsonOut).Msg("json written")
	}
	if csvOut != "" {
		if err := writeFile(csvOut, func(f *os.File) error { return export.WriteCSV(f, res.Cloud) }); err != nil {
			return err
		}
		log.Info().Str("path", csvOut).Msg("csv written")
	}
	if svgOut != "" {
		anim := animator.New(cfg.AnimatorParams())
		tr := anim.Step(0, animator.PointerState{})
		svg := export.CloudToSVG(res.Cloud, tr, viz.NewCamera(), cfg.Render.Width, cfg.Render.Height,
			cfg.Render.PointSize, cfg.BackgroundColor())
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		log.Info().Str("path", svgOut).Msg("svg written")
	}
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, logLevel, true)

	c, anim, err := newCard(cfg, log)
	if err != nil {
		return err
	}

	// slow circle of the pointer so the viewpoint easing shows up in the frames
	n := cfg.Render.Frames
	pointer := func(i int) animator.PointerState {
		t := float64(i) / float64(n)
		return animator.PointerState{X: 0.6 * sinTurn(t), Y: 0.4 * sinTurn(t+0.25)}
	}

	start := time.Now()
	paths, err := export.RenderFrames(c, anim, export.FrameSpec{
		Dir:      outDir,
		Frames:   n,
		FPS:      cfg.Render.FPS,
		AcceptAt: acceptAt,
		Pointer:  pointer,
	}, export.PNGOptions{
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		PointSize:  cfg.Render.PointSize,
		Background: cfg.BackgroundColor(),
	}, log)
	if err != nil {
		return err
	}

	log.Info().
		Int("frames", len(paths)).
		Str("dir", filepath.Clean(outDir)).
		Dur("took", time.Since(start)).
		Msg("render complete")
	return nil
}

func runPulse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.AnimatorParams()
	trace := metrics.PulseTrace(params, pulseTime, cfg.Render.FPS)
	if len(trace) == 0 {
		return fmt.Errorf("time must be positive, got %v", pulseTime)
	}

	fmt.Println(asciigraph.Plot(trace,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("scale, speed %.2f rad/s, amplitude %.2f", params.PulseSpeed(), params.PulseAmplitude)),
	))

	params.BoostPulse(cfg.Card.PulseBoost)
	fmt.Println()
	fmt.Println(asciigraph.Plot(metrics.PulseTrace(params, pulseTime, cfg.Render.FPS),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("after accept, speed %.2f rad/s", params.PulseSpeed())),
	))
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "heartcloud.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

func sinTurn(t float64) float64 { return math.Sin(2 * math.Pi * t) }
