package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pthm-cable/wave/config"
	"github.com/pthm-cable/wave/game"
	"github.com/pthm-cable/wave/mesh"
	"github.com/pthm-cable/wave/renderer"
	"github.com/pthm-cable/wave/telemetry"
	"github.com/pthm-cable/wave/ui"
)

func init() {
	// GL contexts are bound to the thread that created them.
	runtime.LockOSThread()
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	variant := flag.String("variant", "", "Shading variant: noise or analytic (empty = use config)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = until the window closes)")
	outputDir := flag.String("output-dir", "", "Output directory for frames.csv and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *variant != "" {
		if err := cfg.SetVariant(*variant); err != nil {
			slog.Error("invalid variant", "error", err)
			os.Exit(1)
		}
	}

	logger := telemetry.NewLogger(os.Stderr, cfg.Derived.LogLevel, cfg.Log.Format)
	slog.SetDefault(logger)
	game.RouteRaylibLogs(logger)

	if err := run(cfg, *maxFrames, *outputDir, *logStats || cfg.Telemetry.LogStats); err != nil {
		slog.Error("wave demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, maxFrames int64, outputDir string, logStats bool) error {
	rows, columns := cfg.GridSize()
	grid, err := mesh.Generate(rows, columns)
	if err != nil {
		return err
	}

	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	win, err := game.OpenWindow(game.WindowOptions{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		VSync:     cfg.Window.VSync,
		MSAA:      cfg.Window.MSAA,
	})
	if err != nil {
		return err
	}

	api, err := renderer.InitOpenGL()
	if err != nil {
		win.Close()
		return err
	}
	slog.Info("opengl ready", "version", api.Version())

	scene := renderer.NewWaveRenderer(api, slog.Default(), cfg.Derived.Variant, grid)

	var frames *telemetry.FrameCollector
	if logStats || output != nil || cfg.HUD.Enabled {
		frames = telemetry.NewFrameCollector(cfg.Telemetry.FrameWindow)
	}

	opts := game.Options{
		TimeStep:      cfg.Derived.TimeStep32,
		MaxFrames:     maxFrames,
		Frames:        frames,
		Output:        output,
		LogStats:      logStats,
		StatsInterval: time.Duration(cfg.Telemetry.StatsWindow * float64(time.Second)),
		Logger:        slog.Default(),
	}
	if cfg.HUD.Enabled {
		opts.Overlay = ui.NewHUD(ui.HUDData{
			Variant: cfg.Derived.Variant.String(),
			Rows:    rows,
			Columns: columns,
		}, frames)
	}

	slog.Info("starting wave demo",
		"variant", cfg.Derived.Variant,
		"rows", rows,
		"columns", columns,
		"vertices", len(grid.Vertices),
		"indices", len(grid.Indices),
	)

	loop := game.NewLoop(win, scene, opts)
	if err := loop.Run(); err != nil {
		loop.Terminate()
		return err
	}
	return nil
}
