package fire

import (
	"fmt"

	"github.com/pthm-cable/wildfire/landscape"
)

// Observer receives each step's newly ignited batch as it is produced.
// External consumers (telemetry, animation) attach here; the simulator
// itself never reads anything back.
type Observer func(step int, ignited []Ignition)

// Options configures a run.
type Options struct {
	// UpperLimit caps every computed probability; must lie in [0, 1].
	UpperLimit float64

	// MaxSteps bounds the step loop. 0 means 10 × rows × cols, a
	// non-limiting bound for typical grids.
	MaxSteps int

	// Policy decides acceptance. Nil defaults to the deterministic
	// Threshold policy.
	Policy Policy

	// Observer, if set, is called once per step that ignited cells,
	// starting with the step-1 ignition batch.
	Observer Observer
}

// Simulator owns the burn mask and the frontier for a single run. All
// validation happens in NewSimulator; Run cannot fail.
//
// Processing order is a contract, not an accident: burning cells are
// visited in frontier insertion order and neighbors in the fixed direction
// table order. A cell is marked ignited the moment a draw accepts it, so
// when two burning cells contend for the same neighbor in one step, the
// first evaluation in iteration order decides the outcome. Stochastic
// draws are consumed in this same order, which is what makes runs
// reproducible under a fixed seed.
type Simulator struct {
	land  *landscape.Grid
	model *Model

	policy   Policy
	maxSteps int
	observer Observer

	ignitions []Cell
}

// NewSimulator validates coefficients, ignition coordinates and the
// landscape's vegetation classes, and prepares a single-use simulator.
func NewSimulator(land *landscape.Grid, coeffs Coefficients, ignitions []Cell, opts Options) (*Simulator, error) {
	model, err := NewModel(coeffs, NewDirectionTable(land.Resolution()), opts.UpperLimit)
	if err != nil {
		return nil, err
	}

	for _, ig := range ignitions {
		if !land.InBounds(ig.Row, ig.Col) {
			return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d grid",
				ErrInvalidIgnitionCell, ig.Row, ig.Col, land.Rows(), land.Cols())
		}
	}

	// Every burnable class on the landscape must have an intercept. An
	// unmapped class is a configuration error, caught here rather than
	// mid-run.
	for r := 0; r < land.Rows(); r++ {
		for c := 0; c < land.Cols(); c++ {
			v := land.At(r, c).Vegetation
			if v == landscape.NonBurnable {
				continue
			}
			if v < 0 || v >= model.Intercepts() {
				return nil, fmt.Errorf("%w: class %d at (%d,%d) with %d intercepts",
					ErrInvalidVegetationIndex, v, r, c, model.Intercepts())
			}
		}
	}

	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 10 * land.Rows() * land.Cols()
	}
	policy := opts.Policy
	if policy == nil {
		policy = Threshold{}
	}

	return &Simulator{
		land:      land,
		model:     model,
		policy:    policy,
		maxSteps:  maxSteps,
		observer:  opts.Observer,
		ignitions: ignitions,
	}, nil
}

// Run executes the step loop to extinction or the step bound and returns
// the final mask, the ordered ignition history and the ignited count.
func (s *Simulator) Run() *Result {
	rows, cols := s.land.Rows(), s.land.Cols()
	ignited := make([]bool, rows*cols)
	history := make([]Ignition, 0, len(s.ignitions))

	// Seed the frontier with the ignition cells as the step-1 batch,
	// skipping duplicates so the frontier never holds a cell twice.
	batch := make([]Ignition, 0, len(s.ignitions))
	for _, ig := range s.ignitions {
		i := s.land.Index(ig.Row, ig.Col)
		if ignited[i] {
			continue
		}
		ignited[i] = true
		batch = append(batch, Ignition{Row: ig.Row, Col: ig.Col, Step: 1})
	}
	history = append(history, batch...)

	step := 1
	lastStep := 1
	if s.observer != nil && len(batch) > 0 {
		s.observer(step, batch)
	}

	for len(batch) > 0 && step < s.maxSteps {
		step++
		var next []Ignition

		for _, b := range batch {
			burning := s.land.At(b.Row, b.Col)

			for d := 0; d < NumDirections; d++ {
				dr, dc := Offset(d)
				nr, nc := b.Row+dr, b.Col+dc
				if !s.land.InBounds(nr, nc) {
					continue
				}
				ni := s.land.Index(nr, nc)
				if ignited[ni] {
					continue
				}
				neighbor := s.land.At(nr, nc)
				if neighbor.Vegetation == landscape.NonBurnable {
					continue
				}

				p := s.model.IgniteProbability(neighbor.Vegetation, burning, neighbor, d)
				if !s.policy.Accept(p) {
					continue
				}

				// Mark immediately so no later burning cell in this
				// same step re-evaluates the neighbor.
				ignited[ni] = true
				ig := Ignition{Row: nr, Col: nc, Step: step}
				history = append(history, ig)
				next = append(next, ig)
			}
		}

		if len(next) > 0 {
			lastStep = step
			if s.observer != nil {
				s.observer(step, next)
			}
		}
		batch = next
	}

	return &Result{
		Rows:    rows,
		Cols:    cols,
		Ignited: ignited,
		History: history,
		Count:   len(history),
		Steps:   lastStep,
	}
}
