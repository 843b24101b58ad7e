package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/wildfire/fire"
)

func batch(step, n int) []fire.Ignition {
	out := make([]fire.Ignition, n)
	for i := range out {
		out[i] = fire.Ignition{Row: i, Col: step, Step: step}
	}
	return out
}

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector(10, 10)
	c.Observe(1, batch(1, 2))
	c.Observe(2, batch(2, 5))
	c.Observe(3, batch(3, 3))

	steps := c.Steps()
	if len(steps) != 3 {
		t.Fatalf("got %d step records, want 3", len(steps))
	}

	tests := []struct {
		idx          int
		step, newIgn int
		total        int
	}{
		{0, 1, 2, 2},
		{1, 2, 5, 7},
		{2, 3, 3, 10},
	}
	for _, tt := range tests {
		got := steps[tt.idx]
		if got.Step != tt.step || got.NewIgnitions != tt.newIgn || got.IgnitedTotal != tt.total {
			t.Errorf("record %d = %+v, want step %d new %d total %d",
				tt.idx, got, tt.step, tt.newIgn, tt.total)
		}
		wantFrac := float64(tt.total) / 100
		if math.Abs(got.BurnedFraction-wantFrac) > 1e-12 {
			t.Errorf("record %d burned fraction = %v, want %v", tt.idx, got.BurnedFraction, wantFrac)
		}
	}

	if c.IgnitedTotal() != 10 {
		t.Errorf("IgnitedTotal = %d, want 10", c.IgnitedTotal())
	}
}

func TestCollectorTotalsNeverDecrease(t *testing.T) {
	c := NewCollector(20, 20)
	for step := 1; step <= 8; step++ {
		c.Observe(step, batch(step, step%3+1))
	}
	prev := 0
	for _, s := range c.Steps() {
		if s.IgnitedTotal < prev {
			t.Fatalf("ignited total shrank: %d after %d", s.IgnitedTotal, prev)
		}
		prev = s.IgnitedTotal
	}
}

func TestSummary(t *testing.T) {
	c := NewCollector(10, 10)
	c.Observe(1, batch(1, 1)) // seed batch, excluded from growth stats
	c.Observe(2, batch(2, 4))
	c.Observe(3, batch(3, 8))
	c.Observe(4, batch(4, 2))

	s := c.Summary()
	if s.Steps != 4 {
		t.Errorf("steps = %d, want 4", s.Steps)
	}
	if s.IgnitedTotal != 15 {
		t.Errorf("ignited total = %d, want 15", s.IgnitedTotal)
	}
	if math.Abs(s.BurnedFraction-0.15) > 1e-12 {
		t.Errorf("burned fraction = %v, want 0.15", s.BurnedFraction)
	}
	if math.Abs(s.GrowthMean-14.0/3.0) > 1e-9 {
		t.Errorf("growth mean = %v, want %v", s.GrowthMean, 14.0/3.0)
	}
	if s.GrowthMax != 8 {
		t.Errorf("growth max = %v, want 8", s.GrowthMax)
	}
	if s.PeakStep != 3 {
		t.Errorf("peak step = %d, want 3", s.PeakStep)
	}
}

func TestSummaryEmptyRun(t *testing.T) {
	c := NewCollector(4, 4)
	s := c.Summary()
	if s.Steps != 0 || s.IgnitedTotal != 0 || s.BurnedFraction != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
}

func TestSummarySeedOnlyRun(t *testing.T) {
	c := NewCollector(4, 4)
	c.Observe(1, batch(1, 3))
	s := c.Summary()
	if s.Steps != 1 || s.IgnitedTotal != 3 {
		t.Errorf("summary = %+v, want steps 1, total 3", s)
	}
	if s.GrowthMean != 0 || s.GrowthMax != 0 {
		t.Errorf("seed-only run must have zero growth stats, got %+v", s)
	}
}

func TestHistoryRecords(t *testing.T) {
	history := []fire.Ignition{
		{Row: 2, Col: 2, Step: 1},
		{Row: 1, Col: 2, Step: 2},
		{Row: 3, Col: 3, Step: 2},
	}
	records := HistoryRecords(history)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, r := range records {
		if r.Order != i {
			t.Errorf("record %d order = %d", i, r.Order)
		}
		if r.Row != history[i].Row || r.Col != history[i].Col || r.Step != history[i].Step {
			t.Errorf("record %d = %+v, want %+v", i, r, history[i])
		}
	}
}
