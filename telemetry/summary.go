package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunSummary aggregates a whole run for logging and sweep output.
type RunSummary struct {
	Steps          int     `csv:"steps"`
	IgnitedTotal   int     `csv:"ignited_total"`
	BurnedFraction float64 `csv:"burned_fraction"`

	// Growth statistics over per-step new-ignition counts, the step-1
	// ignition batch excluded.
	GrowthMean float64 `csv:"growth_mean"`
	GrowthStd  float64 `csv:"growth_std"`
	GrowthMax  float64 `csv:"growth_max"`
	PeakStep   int     `csv:"peak_step"`
}

// Summary computes the run summary from the collected steps.
func (c *Collector) Summary() RunSummary {
	s := RunSummary{
		IgnitedTotal: c.ignited,
	}
	if c.totalCells > 0 {
		s.BurnedFraction = float64(c.ignited) / float64(c.totalCells)
	}
	if len(c.steps) == 0 {
		return s
	}
	s.Steps = c.steps[len(c.steps)-1].Step

	// Spread steps only; the seed batch is not growth.
	if len(c.steps) < 2 {
		return s
	}
	growth := make([]float64, 0, len(c.steps)-1)
	peak := c.steps[1]
	for _, st := range c.steps[1:] {
		growth = append(growth, float64(st.NewIgnitions))
		if st.NewIgnitions > peak.NewIgnitions {
			peak = st
		}
	}
	s.GrowthMean = stat.Mean(growth, nil)
	if len(growth) > 1 {
		s.GrowthStd = stat.StdDev(growth, nil)
	}
	s.GrowthMax = floats.Max(growth)
	s.PeakStep = peak.Step
	return s
}
