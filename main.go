// Command wildfire runs a single fire-spread simulation headlessly and
// writes its telemetry to CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pthm-cable/wildfire/config"
	"github.com/pthm-cable/wildfire/fire"
	"github.com/pthm-cable/wildfire/landscape"
	"github.com/pthm-cable/wildfire/telemetry"
)

// cellList collects repeatable "-ignite row,col" flags.
type cellList []fire.Cell

func (c *cellList) String() string {
	parts := make([]string, len(*c))
	for i, cell := range *c {
		parts[i] = fmt.Sprintf("%d,%d", cell.Row, cell.Col)
	}
	return strings.Join(parts, " ")
}

func (c *cellList) Set(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return fmt.Errorf("expected row,col, got %q", v)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("parsing row in %q: %w", v, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("parsing col in %q: %w", v, err)
	}
	*c = append(*c, fire.Cell{Row: row, Col: col})
	return nil
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	landscapeDir := flag.String("landscape", "", "Load landscape layer CSVs from this directory instead of generating")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for landscape and stochastic draws (0 = time-based)")
	policy := flag.String("policy", "", "Acceptance policy: stochastic or threshold (overrides config)")
	maxSteps := flag.Int("max-steps", -1, "Step bound, 0 = 10*rows*cols (-1 = use config)")
	upperLimit := flag.Float64("upper-limit", -1, "Probability cap in [0,1] (-1 = use config)")
	saveLandscape := flag.Bool("save-landscape", false, "Also write the landscape layers into the output directory")
	var ignitions cellList
	flag.Var(&ignitions, "ignite", "Ignition cell as row,col (repeatable; overrides config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *policy != "" {
		cfg.Spread.Policy = *policy
	}
	if *maxSteps >= 0 {
		cfg.Spread.MaxSteps = *maxSteps
	}
	if *upperLimit >= 0 {
		cfg.Spread.UpperLimit = *upperLimit
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Landscape: load from CSV layers or generate from the seed
	var land *landscape.Grid
	if *landscapeDir != "" {
		var err error
		land, err = landscape.Load(*landscapeDir, cfg.Grid.Resolution)
		if err != nil {
			slog.Error("failed to load landscape", "dir", *landscapeDir, "error", err)
			os.Exit(1)
		}
	} else {
		land = landscape.Generate(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Resolution, cfg.GenParams(), rngSeed)
	}

	cells := []fire.Cell(ignitions)
	if len(cells) == 0 {
		cells = cfg.IgnitionCells()
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	collector := telemetry.NewCollector(land.Rows(), land.Cols())
	observer := fire.Observer(collector.Observe)
	if cfg.Telemetry.LogSteps {
		observer = func(step int, batch []fire.Ignition) {
			collector.Observe(step, batch)
			slog.Info("step", "step", step, "new_ignitions", len(batch),
				"ignited_total", collector.IgnitedTotal())
		}
	}

	sim, err := fire.NewSimulator(land, cfg.FireCoefficients(), cells, fire.Options{
		UpperLimit: cfg.Spread.UpperLimit,
		MaxSteps:   cfg.Spread.MaxSteps,
		Policy:     cfg.Policy(rngSeed),
		Observer:   observer,
	})
	if err != nil {
		slog.Error("failed to set up simulation", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"rows", land.Rows(),
		"cols", land.Cols(),
		"seed", rngSeed,
		"policy", cfg.Spread.Policy,
		"upper_limit", cfg.Spread.UpperLimit,
		"ignitions", len(cells),
	)

	start := time.Now()
	result := sim.Run()
	elapsed := time.Since(start)

	summary := collector.Summary()
	slog.Info("simulation finished",
		"steps", result.Steps,
		"ignited", result.Count,
		"burned_fraction", result.BurnedFraction(),
		"growth_mean", summary.GrowthMean,
		"growth_max", summary.GrowthMax,
		"peak_step", summary.PeakStep,
		"elapsed", elapsed.Round(time.Microsecond).String(),
	)

	if err := out.WriteSteps(collector.Steps()); err != nil {
		slog.Error("failed to write steps", "error", err)
		os.Exit(1)
	}
	if err := out.WriteHistory(result.History); err != nil {
		slog.Error("failed to write ignition history", "error", err)
		os.Exit(1)
	}
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}
	if *saveLandscape && *outputDir != "" {
		if err := land.Save(*outputDir); err != nil {
			slog.Error("failed to save landscape", "error", err)
			os.Exit(1)
		}
	}
}
