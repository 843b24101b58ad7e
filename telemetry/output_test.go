package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/wildfire/fire"
)

func TestNilOutputManagerIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// All methods must tolerate the nil manager.
	if err := om.WriteSteps([]StepStats{{Step: 1}}); err != nil {
		t.Errorf("WriteSteps on nil manager: %v", err)
	}
	if err := om.WriteHistory(nil); err != nil {
		t.Errorf("WriteHistory on nil manager: %v", err)
	}
	om.Close()
}

func TestOutputManagerWritesCSVs(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	steps := []StepStats{
		{Step: 1, NewIgnitions: 1, IgnitedTotal: 1, BurnedFraction: 0.01},
		{Step: 2, NewIgnitions: 3, IgnitedTotal: 4, BurnedFraction: 0.04},
	}
	if err := om.WriteSteps(steps[:1]); err != nil {
		t.Fatalf("WriteSteps: %v", err)
	}
	// Second write must append rows without a second header.
	if err := om.WriteSteps(steps[1:]); err != nil {
		t.Fatalf("WriteSteps append: %v", err)
	}

	history := []fire.Ignition{{Row: 0, Col: 0, Step: 1}, {Row: 0, Col: 1, Step: 2}}
	if err := om.WriteHistory(history); err != nil {
		t.Fatalf("WriteHistory: %v", err)
	}
	om.Close()

	stepsData, err := os.ReadFile(filepath.Join(dir, "steps.csv"))
	if err != nil {
		t.Fatalf("reading steps.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(stepsData)), "\n")
	if len(lines) != 3 {
		t.Fatalf("steps.csv has %d lines, want header + 2 rows:\n%s", len(lines), stepsData)
	}
	if !strings.Contains(lines[0], "step") || !strings.Contains(lines[0], "burned_fraction") {
		t.Errorf("unexpected steps header: %s", lines[0])
	}
	if strings.Contains(lines[1], "step") {
		t.Errorf("second line looks like a header: %s", lines[1])
	}

	ignData, err := os.ReadFile(filepath.Join(dir, "ignitions.csv"))
	if err != nil {
		t.Fatalf("reading ignitions.csv: %v", err)
	}
	ignLines := strings.Split(strings.TrimSpace(string(ignData)), "\n")
	if len(ignLines) != 3 {
		t.Fatalf("ignitions.csv has %d lines, want header + 2 rows", len(ignLines))
	}
	if !strings.Contains(ignLines[0], "order") {
		t.Errorf("unexpected ignitions header: %s", ignLines[0])
	}
}
