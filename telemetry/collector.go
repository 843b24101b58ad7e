// Package telemetry collects per-step statistics from a fire run and writes
// them as structured CSV output.
package telemetry

import (
	"github.com/pthm-cable/wildfire/fire"
)

// StepStats holds the statistics of one simulation step.
type StepStats struct {
	Step           int     `csv:"step"`
	NewIgnitions   int     `csv:"new_ignitions"`
	IgnitedTotal   int     `csv:"ignited_total"`
	BurnedFraction float64 `csv:"burned_fraction"`
}

// IgnitionRecord is one row of the ignition history output. Order is the
// global ignition sequence number, starting at 0.
type IgnitionRecord struct {
	Order int `csv:"order"`
	Step  int `csv:"step"`
	Row   int `csv:"row"`
	Col   int `csv:"col"`
}

// Collector accumulates step statistics through the simulator's observer
// hook. It assumes the single-threaded run contract: Observe is called
// sequentially, once per productive step.
type Collector struct {
	totalCells int
	ignited    int
	steps      []StepStats
}

// NewCollector creates a collector for a rows×cols landscape.
func NewCollector(rows, cols int) *Collector {
	return &Collector{totalCells: rows * cols}
}

// Observe records one step's newly ignited batch. It satisfies
// fire.Observer.
func (c *Collector) Observe(step int, batch []fire.Ignition) {
	c.ignited += len(batch)
	c.steps = append(c.steps, StepStats{
		Step:           step,
		NewIgnitions:   len(batch),
		IgnitedTotal:   c.ignited,
		BurnedFraction: float64(c.ignited) / float64(c.totalCells),
	})
}

// Steps returns the per-step records collected so far.
func (c *Collector) Steps() []StepStats { return c.steps }

// IgnitedTotal returns the cumulative ignited count.
func (c *Collector) IgnitedTotal() int { return c.ignited }

// HistoryRecords converts a run's ignition history into CSV rows.
func HistoryRecords(history []fire.Ignition) []IgnitionRecord {
	records := make([]IgnitionRecord, len(history))
	for i, ig := range history {
		records[i] = IgnitionRecord{Order: i, Step: ig.Step, Row: ig.Row, Col: ig.Col}
	}
	return records
}
