package game

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowOptions configures the raylib window.
type WindowOptions struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	VSync     bool
	MSAA      bool
	Hidden    bool
}

// RaylibWindow is a fixed-size raylib window with Escape bound to close.
type RaylibWindow struct {
	closeRequested bool
	closed         bool

	isKeyPressed      func(key int32) bool
	windowShouldClose func() bool
}

// OpenWindow creates the window and makes its GL context current on the
// calling thread.
func OpenWindow(opts WindowOptions) (*RaylibWindow, error) {
	var flags uint32
	if opts.VSync {
		flags |= rl.FlagVsyncHint
	}
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if opts.Hidden {
		flags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window could not be created")
	}

	// Escape is handled in EndFrame so it flows through the close flag.
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	return &RaylibWindow{
		isKeyPressed:      rl.IsKeyPressed,
		windowShouldClose: rl.WindowShouldClose,
	}, nil
}

// ShouldClose reports a window-manager close request or an Escape press.
func (w *RaylibWindow) ShouldClose() bool {
	return w.closeRequested || w.windowShouldClose()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (w *RaylibWindow) FramebufferSize() (int32, int32) {
	return int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight())
}

// BeginFrame starts raylib's frame timing.
func (w *RaylibWindow) BeginFrame() {
	rl.BeginDrawing()
}

// EndFrame flushes raylib's batch, swaps buffers and polls events.
func (w *RaylibWindow) EndFrame() {
	rl.EndDrawing()
	w.pollKeys()
}

// pollKeys applies the key bindings for the events just processed.
func (w *RaylibWindow) pollKeys() {
	if w.isKeyPressed(rl.KeyEscape) {
		w.RequestClose()
	}
}

// RequestClose sets the close flag; the loop stops before the next frame.
func (w *RaylibWindow) RequestClose() {
	w.closeRequested = true
}

// Close destroys the window and its context.
func (w *RaylibWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}
