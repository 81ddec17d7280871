// Package game drives the frame loop: it owns the time counter, the window
// and the scene, and moves through Uninitialized → Running → Terminating.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/wave/telemetry"
)

// ErrNotRunning is returned when the loop is stepped outside the Running state.
var ErrNotRunning = errors.New("frame loop is not running")

// State is the lifecycle phase of a Loop.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is the host window the loop presents into.
type Window interface {
	// ShouldClose reports a close request from the window manager or Escape.
	ShouldClose() bool
	FramebufferSize() (width, height int32)
	BeginFrame()
	// EndFrame presents the frame and processes pending input events.
	EndFrame()
	Close()
}

// Scene draws the animated content for a given time.
type Scene interface {
	Init() error
	Draw(t float32, width, height int32)
	Unload()
}

// Overlay is drawn after the scene, before presenting.
type Overlay interface {
	Draw(status Status)
}

// Status is a read-only view of loop progress for overlays.
type Status struct {
	Frame  int64
	Time   float32
	Width  int32
	Height int32
}

// Options configures a Loop.
type Options struct {
	TimeStep  float32 // added to the time uniform each frame
	MaxFrames int64   // 0 = until the window closes

	Overlay Overlay // optional

	Frames        *telemetry.FrameCollector // optional
	Output        *telemetry.OutputManager  // optional
	LogStats      bool
	StatsInterval time.Duration
	Logger        *slog.Logger
}

// Loop owns the per-process animation state.
type Loop struct {
	win   Window
	scene Scene
	opts  Options

	state State
	time  float32
	frame int64

	lastReport time.Time
	now        func() time.Time
}

// NewLoop creates a loop in the Uninitialized state.
func NewLoop(win Window, scene Scene, opts Options) *Loop {
	if opts.TimeStep == 0 {
		opts.TimeStep = 0.01
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.StatsInterval <= 0 {
		opts.StatsInterval = 5 * time.Second
	}
	return &Loop{
		win:   win,
		scene: scene,
		opts:  opts,
		now:   time.Now,
	}
}

// Start initializes the scene and enters Running. A failed Start leaves the
// loop Uninitialized; the caller is expected to exit.
func (l *Loop) Start() error {
	if l.state != StateUninitialized {
		return fmt.Errorf("start from state %s", l.state)
	}
	if err := l.scene.Init(); err != nil {
		return fmt.Errorf("initializing scene: %w", err)
	}
	l.state = StateRunning
	l.lastReport = l.now()
	l.opts.Logger.Info("frame loop running", "time_step", l.opts.TimeStep, "max_frames", l.opts.MaxFrames)
	return nil
}

// Step runs one iteration. It returns false once the loop should stop,
// either because the window asked to close or MaxFrames was reached.
func (l *Loop) Step() (bool, error) {
	if l.state != StateRunning {
		return false, ErrNotRunning
	}
	if l.win.ShouldClose() {
		return false, nil
	}
	if l.opts.MaxFrames > 0 && l.frame >= l.opts.MaxFrames {
		return false, nil
	}

	frames := l.opts.Frames
	if frames != nil {
		frames.StartFrame()
		frames.StartPhase(telemetry.PhaseDraw)
	}

	width, height := l.win.FramebufferSize()
	l.win.BeginFrame()

	l.time += l.opts.TimeStep
	l.scene.Draw(l.time, width, height)

	if l.opts.Overlay != nil {
		if frames != nil {
			frames.StartPhase(telemetry.PhaseHUD)
		}
		l.opts.Overlay.Draw(Status{Frame: l.frame + 1, Time: l.time, Width: width, Height: height})
	}

	if frames != nil {
		frames.StartPhase(telemetry.PhasePresent)
	}
	l.win.EndFrame()
	l.frame++

	if frames != nil {
		frames.EndFrame()
		l.maybeReport()
	}
	return true, nil
}

// Run starts the loop if needed, steps until it stops, then terminates.
func (l *Loop) Run() error {
	if l.state == StateUninitialized {
		if err := l.Start(); err != nil {
			return err
		}
	}

	for {
		ok, err := l.Step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	l.Terminate()
	return nil
}

// Terminate releases the scene and window. Safe to call more than once.
func (l *Loop) Terminate() {
	if l.state == StateTerminating {
		return
	}
	wasRunning := l.state == StateRunning
	l.state = StateTerminating

	if wasRunning {
		l.report()
		l.scene.Unload()
	}
	l.win.Close()
	l.opts.Logger.Info("frame loop terminated", "frames", l.frame, "time", l.time)
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Time returns the value last uploaded to the time uniform.
func (l *Loop) Time() float32 { return l.time }

// Frame returns the number of frames presented.
func (l *Loop) Frame() int64 { return l.frame }

func (l *Loop) maybeReport() {
	if l.now().Sub(l.lastReport) < l.opts.StatsInterval {
		return
	}
	l.report()
}

// report logs and records the current frame window.
func (l *Loop) report() {
	l.lastReport = l.now()
	if l.opts.Frames == nil || l.opts.Frames.Len() == 0 {
		return
	}

	stats := l.opts.Frames.Stats()
	if l.opts.LogStats {
		l.opts.Logger.Info("frames", "frame", l.frame, "time", l.time, "stats", stats)
	}
	if err := l.opts.Output.WriteFrames(stats.ToCSV(l.frame, l.time)); err != nil {
		l.opts.Logger.Warn("failed to write frame stats", "error", err)
	}
}
