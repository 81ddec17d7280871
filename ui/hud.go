package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wave/game"
	"github.com/pthm-cable/wave/telemetry"
)

const (
	statusBarHeight = 22
	panelWidth      = 220
)

// HUDData holds the static facts shown alongside the loop status.
type HUDData struct {
	Variant string
	Rows    int
	Columns int
}

// HUD renders a status bar and, when frame timing is available, a timing
// panel. It implements game.Overlay.
type HUD struct {
	renderer *Renderer
	data     HUDData
	frames   *telemetry.FrameCollector
}

// NewHUD creates a HUD. frames may be nil.
func NewHUD(data HUDData, frames *telemetry.FrameCollector) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		data:     data,
		frames:   frames,
	}
}

// Draw renders the HUD on top of the scene.
func (h *HUD) Draw(status game.Status) {
	bar := rl.Rectangle{
		X:      0,
		Y:      float32(status.Height - statusBarHeight),
		Width:  float32(status.Width),
		Height: statusBarHeight,
	}
	gui.StatusBar(bar, h.StatusText(status, rl.GetFPS()))

	if h.frames == nil || h.frames.Len() == 0 {
		return
	}
	h.drawTiming(h.frames.Stats())
}

// StatusText formats the status bar line.
func (h *HUD) StatusText(status game.Status, fps int32) string {
	return fmt.Sprintf("FPS: %d | t: %.2f | frame: %d | %s %dx%d | %dx%d",
		fps, status.Time, status.Frame,
		h.data.Variant, h.data.Rows, h.data.Columns,
		status.Width, status.Height)
}

func (h *HUD) drawTiming(stats telemetry.FrameStats) {
	r := h.renderer
	pad := r.Theme.Padding
	x, y := pad, pad
	height := 6*r.Theme.LineHeight + 2*pad

	r.DrawPanel(x, y, panelWidth, height)
	x += pad
	y += pad

	y = r.DrawLabelValue(x, y, "avg", stats.AvgFrame.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "p95", stats.P95Frame.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "jitter", stats.StdDevFrame.Round(time.Microsecond).String())

	inner := int32(panelWidth) - 2*pad
	y = r.DrawPercentBar(x, y, telemetry.PhaseDraw, stats.PhasePct[telemetry.PhaseDraw], inner)
	y = r.DrawPercentBar(x, y, telemetry.PhaseHUD, stats.PhasePct[telemetry.PhaseHUD], inner)
	r.DrawPercentBar(x, y, telemetry.PhasePresent, stats.PhasePct[telemetry.PhasePresent], inner)
}
