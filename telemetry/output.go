package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/wildfire/config"
	"github.com/pthm-cable/wildfire/fire"
)

// OutputManager handles structured run output with CSV logging. A nil
// manager is valid and discards everything, so callers can thread it
// through unconditionally.
type OutputManager struct {
	dir string

	stepsFile     *os.File
	ignitionsFile *os.File

	stepsHeaderWritten bool
}

// NewOutputManager creates the output directory and opens the CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "steps.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating steps.csv: %w", err)
	}
	om.stepsFile = f

	f, err = os.Create(filepath.Join(dir, "ignitions.csv"))
	if err != nil {
		om.stepsFile.Close()
		return nil, fmt.Errorf("creating ignitions.csv: %w", err)
	}
	om.ignitionsFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML next to the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSteps appends step records to steps.csv. The first call writes the
// header; later calls append rows only.
func (om *OutputManager) WriteSteps(steps []StepStats) error {
	if om == nil || len(steps) == 0 {
		return nil
	}

	if !om.stepsHeaderWritten {
		if err := gocsv.Marshal(steps, om.stepsFile); err != nil {
			return fmt.Errorf("writing steps: %w", err)
		}
		om.stepsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(steps, om.stepsFile); err != nil {
		return fmt.Errorf("writing steps: %w", err)
	}
	return nil
}

// WriteHistory writes the full ignition history to ignitions.csv.
func (om *OutputManager) WriteHistory(history []fire.Ignition) error {
	if om == nil {
		return nil
	}
	if err := gocsv.Marshal(HistoryRecords(history), om.ignitionsFile); err != nil {
		return fmt.Errorf("writing ignition history: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	om.stepsFile.Close()
	om.ignitionsFile.Close()
}
