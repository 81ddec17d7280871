// Wave preview tool - interactive top-down heatmap of the height function.
//
// Usage: go run ./cmd/wavepreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wave/shading"
)

const (
	windowWidth  = 900
	windowHeight = 600
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	fieldSize    = 128
)

// PreviewParams holds the interactive view settings.
type PreviewParams struct {
	Variant shading.Variant
	Extent  float32
	Speed   float32
}

func defaultParams() PreviewParams {
	return PreviewParams{
		Variant: shading.VariantNoise,
		Extent:  1,
		Speed:   1,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Wave Height Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	field := make([]float32, fieldSize*fieldSize)
	pixels := make([]color.RGBA, fieldSize*fieldSize)
	img := rl.GenImageColor(fieldSize, fieldSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	// Same per-frame step as the demo loop, scaled by Speed.
	var time float32
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			time += 0.01 * params.Speed
		}

		sampleField(field, fieldSize, params.Variant, params.Extent, time)
		for i, h := range field {
			pixels[i] = heatColor(h)
		}
		rl.UpdateTexture(texture, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: fieldSize, Height: fieldSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		s := fieldSummary(field)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f  Std: %.3f", s.Min, s.Max, s.Mean, s.StdDev), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.2f", time), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Wave Height", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 30
		rl.DrawText(fmt.Sprintf("Variant: %s", params.Variant), int32(panelX), int32(panelY), 16, rl.Gray)
		panelY += 30

		// Extent slider
		rl.DrawText("Extent (half-width in grid units)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Extent = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "4",
			params.Extent, 0.5, 4,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Extent), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Speed slider
		rl.DrawText("Speed (time steps per frame)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Speed = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "10",
			params.Speed, 0, 10,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Speed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Time scrub, only while paused
		if !animating {
			rl.DrawText("Time", int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			time = gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"0", "20",
				time, 0, 20,
			)
			panelY += 35
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Pause", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			time = 0
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Next Variant") {
			params.Variant = nextVariant(params.Variant)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			time = 0
		}

		rl.DrawText("Blue = trough, white = crest", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		rl.EndDrawing()
	}
}

func nextVariant(v shading.Variant) shading.Variant {
	if v == shading.VariantNoise {
		return shading.VariantAnalytic
	}
	return shading.VariantNoise
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
