// Wave debug tool - renders one frame of the wave grid to a PNG file.
//
// Usage: go run ./cmd/wavedebug -variant analytic -time 1.5 -out wave.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wave/game"
	"github.com/pthm-cable/wave/mesh"
	"github.com/pthm-cable/wave/renderer"
	"github.com/pthm-cable/wave/shading"
	"github.com/pthm-cable/wave/telemetry"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	variantName := flag.String("variant", "noise", "Shading variant: noise or analytic")
	t := flag.Float64("time", 0, "Value of the time uniform")
	outPath := flag.String("out", "wave.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 800, "Render height")
	rows := flag.Int("rows", 0, "Grid rows (0 = variant preset)")
	columns := flag.Int("columns", 0, "Grid columns (0 = variant preset)")
	flag.Parse()

	logger := telemetry.NewLogger(os.Stderr, slog.LevelInfo, "text")
	game.RouteRaylibLogs(logger)

	variant, err := shading.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	r, c := variant.Preset()
	if *rows > 0 {
		r = *rows
	}
	if *columns > 0 {
		c = *columns
	}
	grid, err := mesh.Generate(r, c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	win, err := game.OpenWindow(game.WindowOptions{
		Width:  *width,
		Height: *height,
		Title:  "Wave Debug",
		Hidden: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := render(logger, variant, grid, float32(*t), int32(*width), int32(*height), *outPath); err != nil {
		win.Close()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	win.Close()

	fmt.Printf("Wave rendered to: %s (%s %dx%d, t=%.2f)\n", *outPath, variant, r, c, *t)
}

func render(logger *slog.Logger, variant shading.Variant, grid *mesh.Grid, t float32, width, height int32, outPath string) error {
	api, err := renderer.InitOpenGL()
	if err != nil {
		return err
	}

	wave := renderer.NewWaveRenderer(api, logger, variant, grid)
	if err := wave.Init(); err != nil {
		return err
	}
	defer wave.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(width, height)
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	wave.Draw(t, width, height)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, outPath) {
		return fmt.Errorf("failed to export image to %s", outPath)
	}
	return nil
}
