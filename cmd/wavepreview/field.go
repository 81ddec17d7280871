package main

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/pthm-cable/wave/shading"
	"github.com/pthm-cable/wave/telemetry"
)

// heightRange bounds the colour ramp; both variants stay within it.
const heightRange = 0.5

// sampleField fills field with the variant height over [-extent, extent]²,
// viewed from above with +z pointing down the image.
func sampleField(field []float32, size int, variant shading.Variant, extent, t float32) {
	step := 2 * extent / float32(size)
	for y := 0; y < size; y++ {
		z := -extent + (float32(y)+0.5)*step
		for x := 0; x < size; x++ {
			xx := -extent + (float32(x)+0.5)*step
			field[y*size+x] = shading.Height(variant, xx, z, t)
		}
	}
}

// fieldSummary reports range and spread of the sampled heights.
func fieldSummary(field []float32) telemetry.Summary {
	values := make([]float64, len(field))
	for i, v := range field {
		values[i] = float64(v)
	}
	return telemetry.Summarize(values)
}

// heatColor maps a height onto a deep blue to white ramp.
func heatColor(h float32) color.RGBA {
	v := clamp01((h + heightRange) / (2 * heightRange))

	var r, g, b float32
	switch {
	case v < 0.5:
		// Deep blue to cyan
		t := v / 0.5
		r = 10 + t*30
		g = 20 + t*180
		b = 80 + t*140
	default:
		// Cyan to white
		t := (v - 0.5) / 0.5
		r = 40 + t*215
		g = 200 + t*55
		b = 220 + t*35
	}
	return color.RGBA{R: uint8(math32.Round(r)), G: uint8(math32.Round(g)), B: uint8(math32.Round(b)), A: 255}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
