package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/wave/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}

	// Nil manager methods are no-ops
	if err := om.WriteFrames(FrameStatsCSV{}); err != nil {
		t.Errorf("WriteFrames on nil manager: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("WriteConfig on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := int64(1); i <= 3; i++ {
		if err := om.WriteFrames(FrameStatsCSV{Frame: i * 100, FPS: 60}); err != nil {
			t.Fatalf("WriteFrames: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "avg_frame_us"); n != 1 {
		t.Errorf("expected one header line, found %d", n)
	}

	var rows []FrameStatsCSV
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		t.Fatalf("parsing frames.csv: %v", err)
	}
	if len(rows) != 3 || rows[2].Frame != 300 {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("snapshot is not a loadable config: %v", err)
	}
}
