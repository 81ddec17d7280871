package telemetry

import (
	"log/slog"
	"time"
)

// Phase names within a rendered frame.
const (
	PhaseDraw    = "draw"
	PhaseHUD     = "hud"
	PhasePresent = "present"
)

// framePhases lists phases in reporting order.
var framePhases = []string{PhaseDraw, PhaseHUD, PhasePresent}

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	Duration time.Duration
	Phases   map[string]time.Duration
}

// FrameCollector tracks frame timing over a rolling window.
type FrameCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	now func() time.Time
}

// NewFrameCollector creates a collector averaging over windowSize frames.
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (c *FrameCollector) StartFrame() {
	c.frameStart = c.now()
	c.currentPhases = make(map[string]time.Duration)
	c.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (c *FrameCollector) StartPhase(phase string) {
	now := c.now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.phaseStart = now
	c.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (c *FrameCollector) EndFrame() {
	now := c.now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}

	c.samples[c.writeIndex] = FrameSample{
		Duration: now.Sub(c.frameStart),
		Phases:   c.currentPhases,
	}
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}
	c.lastPhase = ""
}

// Len returns the number of samples currently in the window.
func (c *FrameCollector) Len() int {
	return c.sampleCount
}

// FrameStats holds aggregated frame statistics.
type FrameStats struct {
	Frames int

	AvgFrame    time.Duration
	MinFrame    time.Duration
	MaxFrame    time.Duration
	StdDevFrame time.Duration
	P95Frame    time.Duration
	FPS         float64

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64
}

// Stats computes aggregated statistics over the current window.
func (c *FrameCollector) Stats() FrameStats {
	if c.sampleCount == 0 {
		return FrameStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	durations := make([]float64, c.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < c.sampleCount; i++ {
		s := c.samples[i]
		durations[i] = float64(s.Duration)
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	summary := Summarize(durations)
	avg := time.Duration(summary.Mean)

	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(c.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	return FrameStats{
		Frames:      c.sampleCount,
		AvgFrame:    avg,
		MinFrame:    time.Duration(summary.Min),
		MaxFrame:    time.Duration(summary.Max),
		StdDevFrame: time.Duration(summary.StdDev),
		P95Frame:    time.Duration(summary.P95),
		FPS:         fps,
		PhaseAvg:    phaseAvg,
		PhasePct:    phasePct,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
		slog.Int64("stddev_frame_us", s.StdDevFrame.Microseconds()),
		slog.Float64("fps", s.FPS),
	}

	for _, phase := range framePhases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Frame      int64   `csv:"frame"`
	Time       float32 `csv:"time"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	MinFrameUS int64   `csv:"min_frame_us"`
	MaxFrameUS int64   `csv:"max_frame_us"`
	P95FrameUS int64   `csv:"p95_frame_us"`
	StdDevUS   int64   `csv:"stddev_frame_us"`
	FPS        float64 `csv:"fps"`
	DrawPct    float64 `csv:"draw_pct"`
	HUDPct     float64 `csv:"hud_pct"`
	PresentPct float64 `csv:"present_pct"`
}

// ToCSV converts FrameStats to a CSV row tagged with the frame number and
// shader time at which the stats window was reported.
func (s FrameStats) ToCSV(frame int64, t float32) FrameStatsCSV {
	return FrameStatsCSV{
		Frame:      frame,
		Time:       t,
		AvgFrameUS: s.AvgFrame.Microseconds(),
		MinFrameUS: s.MinFrame.Microseconds(),
		MaxFrameUS: s.MaxFrame.Microseconds(),
		P95FrameUS: s.P95Frame.Microseconds(),
		StdDevUS:   s.StdDevFrame.Microseconds(),
		FPS:        s.FPS,
		DrawPct:    s.PhasePct[PhaseDraw],
		HUDPct:     s.PhasePct[PhaseHUD],
		PresentPct: s.PhasePct[PhasePresent],
	}
}
