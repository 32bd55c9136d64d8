package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/yulelog/internal/config"
	"github.com/san-kum/yulelog/internal/export"
	"github.com/san-kum/yulelog/internal/feed"
	"github.com/san-kum/yulelog/internal/logging"
	"github.com/san-kum/yulelog/internal/palette"
	"github.com/san-kum/yulelog/internal/render"
	"github.com/san-kum/yulelog/internal/sim"
	"github.com/san-kum/yulelog/internal/term"
	"github.com/san-kum/yulelog/internal/viz"
	"github.com/spf13/cobra"
)

var (
	username   string
	pastDays   int
	contribs   bool
	speed      int
	smoke      int
	noTicker   bool
	offline    bool
	renderer   string
	seed       int64
	configFile string
	preset     string
	logFile    string
	logLevel   string
	// snapshot
	ticks    int
	width    int
	height   int
	outFile  string
	cellSize float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yulelog",
		Short:         "fireplace animation fed by your GitHub activity",
		RunE:          runAnimation,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&username, "username", "u", config.DefaultUsername, "GitHub username")
	pf.IntVar(&pastDays, "past-days", config.DefaultPastDays, "only count events from the last N days")
	pf.BoolVar(&contribs, "contribs", false, "use the contribution graph palette")
	pf.IntVarP(&speed, "speed", "s", config.DefaultSpeed, "animation speed (1-10)")
	pf.IntVar(&smoke, "smoke", config.DefaultSmoke, "minimum heat of cooled cells (0-20)")
	pf.BoolVar(&noTicker, "no-ticker", false, "hide the event ticker")
	pf.BoolVar(&offline, "offline", false, "skip fetching events")
	pf.StringVar(&renderer, "renderer", config.RendererTcell, "frontend: tcell or tea")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "list the events that feed the fire",
		RunE:  listEvents,
	}

	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "plot events per day",
		RunE:  plotActivity,
	}

	paletteCmd := &cobra.Command{
		Use:   "palette [name...]",
		Short: "show the fire and contribution palettes",
		RunE:  showPalettes,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render headless frames and write the last one as SVG",
		RunE:  takeSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 120, "frames to simulate")
	snapshotCmd.Flags().IntVar(&width, "width", 80, "frame width in cells")
	snapshotCmd.Flags().IntVar(&height, "height", 24, "frame height in cells")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "yulelog.svg", "output file")
	snapshotCmd.Flags().Float64Var(&cellSize, "cell", 14, "glyph height in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(eventsCmd, activityCmd, paletteCmd, snapshotCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig applies defaults, then the preset, then the config file,
// then every flag the user actually set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("username") {
		cfg.Username = username
	}
	if flags.Changed("past-days") {
		cfg.PastDays = pastDays
	}
	if flags.Changed("contribs") {
		cfg.Contribs = contribs
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("smoke") {
		cfg.Smoke = smoke
	}
	if flags.Changed("no-ticker") {
		cfg.NoTicker = noTicker
	}
	if flags.Changed("offline") {
		cfg.Offline = offline
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closer.Close() }, nil
}

// loadEvents returns the filtered event list. Fetch failures degrade to an
// empty list so the fire still burns.
func loadEvents(ctx context.Context, cfg *config.Config, logger *log.Logger) []feed.Event {
	if cfg.Offline {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client := feed.NewClient(cfg.APIURL, feed.WithToken(feed.Token(ctx)))
	events, err := client.UserEvents(ctx, cfg.Username)
	if err != nil {
		logger.Warn("fetching events failed", "user", cfg.Username, "err", err)
		return nil
	}

	events = feed.FilterByDays(events, cfg.PastDays, time.Now())
	if cfg.Contribs {
		events = feed.FilterContrib(events)
	}
	logger.Info("fetched events", "user", cfg.Username, "count", len(events))
	return events
}

func animation(cfg *config.Config, events []feed.Event) sim.Config {
	msg, meta, ok := feed.TickerText(events, time.Now())
	return cfg.Animation(len(events), msg, meta, ok)
}

func source(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	anim := animation(cfg, loadEvents(ctx, cfg, logger))
	opts := []sim.Option{sim.WithSource(source(cfg)), sim.WithLogger(logger)}

	if cfg.Renderer == config.RendererTea {
		err = viz.Run(ctx, anim, opts...)
	} else {
		err = runTerminal(ctx, anim, logger, opts)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTerminal(ctx context.Context, anim sim.Config, logger *log.Logger, opts []sim.Option) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	w, h := screen.Size()
	s := sim.New(anim, w, h, opts...)
	s.AddObserver(&sim.StatsLogger{Logger: logger, Every: 100})
	return s.Run(ctx, screen)
}

func listEvents(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	events := loadEvents(cmd.Context(), cfg, logger)
	if len(events) == 0 {
		fmt.Println("no events found")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tTYPE\tREPO")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n", feed.Age(e.CreatedAt, now), e.Type, e.Repo.Name)
	}
	return w.Flush()
}

func plotActivity(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	events := loadEvents(cmd.Context(), cfg, logger)
	if len(events) == 0 {
		return fmt.Errorf("no data to plot")
	}

	days := min(cfg.PastDays, 90)
	counts := feed.DailyCounts(events, days, time.Now())
	graph := asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: events per day, last %d days", cfg.Username, days)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("events"), viz.ValueStyle.Render(fmt.Sprint(len(events))))
	return nil
}

func showPalettes(cmd *cobra.Command, args []string) error {
	pals, err := lookupPalettes(args)
	if err != nil {
		return err
	}
	for _, p := range pals {
		fmt.Println(viz.Swatch(p))
	}
	fmt.Println(viz.KeyHint.Render("--contribs switches the animation to the contrib palette"))
	return nil
}

// lookupPalettes resolves palette names; no names selects every palette.
func lookupPalettes(names []string) ([]palette.Palette, error) {
	if len(names) == 0 {
		return palette.Palettes, nil
	}
	pals := make([]palette.Palette, 0, len(names))
	for _, name := range names {
		p, ok := palette.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown palette: %s (available: %v)", name, palette.Names())
		}
		pals = append(pals, p)
	}
	return pals, nil
}

func takeSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 || ticks < 0 {
		return fmt.Errorf("snapshot needs a positive size and non-negative ticks")
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	frame := snapshot(animation(cfg, loadEvents(cmd.Context(), cfg, logger)), source(cfg), width, height, ticks)
	if err := os.WriteFile(outFile, []byte(export.FrameToSVG(frame, cellSize)), 0644); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("wrote"), viz.ValueStyle.Render(outFile))
	return nil
}

// snapshot steps a simulator n times into an in-memory frame.
func snapshot(anim sim.Config, src *rand.Rand, w, h, n int) *render.Frame {
	frame := render.NewFrame(w, h)
	s := sim.New(anim, w, h, sim.WithSource(src))
	for i := 0; i < n; i++ {
		s.Step(frame)
	}
	return frame
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPALETTE\tSPEED\tSMOKE")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		pal := palette.Select(p.Contribs)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", name, pal.Name, p.Speed, p.Smoke)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "yulelog.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.LabelStyle.Render("created"), viz.ValueStyle.Render(path))
	return nil
}
