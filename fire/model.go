package fire

import (
	"fmt"
	"math"

	"github.com/pthm-cable/wildfire/landscape"
)

// Coefficients holds the fitted logistic-regression parameters of the
// spread model: one intercept per burnable vegetation class plus the two
// shared terrain coefficients.
type Coefficients struct {
	VegIntercepts []float64
	Slope         float64
	Wind          float64
}

// Validate checks the coefficient set is usable: a non-empty intercept
// vector and finite values throughout.
func (c Coefficients) Validate() error {
	if len(c.VegIntercepts) == 0 {
		return fmt.Errorf("%w: empty vegetation intercept vector", ErrMalformedCoefficients)
	}
	for i, v := range c.VegIntercepts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: intercept %d is not finite", ErrMalformedCoefficients, i)
		}
	}
	if math.IsNaN(c.Slope) || math.IsInf(c.Slope, 0) {
		return fmt.Errorf("%w: slope coefficient is not finite", ErrMalformedCoefficients)
	}
	if math.IsNaN(c.Wind) || math.IsInf(c.Wind, 0) {
		return fmt.Errorf("%w: wind coefficient is not finite", ErrMalformedCoefficients)
	}
	return nil
}

// Model computes per-neighbor ignition probabilities. It owns the direction
// table and the probability cap; acceptance is delegated to a Policy so the
// stochastic and threshold variants share this computation exactly.
type Model struct {
	coeffs     Coefficients
	dirs       DirectionTable
	upperLimit float64
}

// NewModel validates the coefficients and builds a model. upperLimit caps
// every computed probability; it must lie in [0, 1], where 1 permits
// saturating spread and 0 suppresses all spread.
func NewModel(coeffs Coefficients, dirs DirectionTable, upperLimit float64) (*Model, error) {
	if err := coeffs.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(upperLimit) || upperLimit < 0 || upperLimit > 1 {
		return nil, fmt.Errorf("%w: upper limit %v outside [0,1]", ErrMalformedCoefficients, upperLimit)
	}
	return &Model{coeffs: coeffs, dirs: dirs, upperLimit: upperLimit}, nil
}

// UpperLimit returns the probability cap the model was built with.
func (m *Model) UpperLimit() float64 { return m.upperLimit }

// Intercepts returns how many vegetation classes the model can score.
func (m *Model) Intercepts() int { return len(m.coeffs.VegIntercepts) }

// IgniteProbability returns the probability that the burning cell ignites
// the neighbor in direction dir. targetVeg must index a valid intercept;
// the simulator guarantees this during pre-flight validation.
func (m *Model) IgniteProbability(targetVeg int, burning, neighbor landscape.Terrain, dir int) float64 {
	wind := math.Cos(SourceAngle(dir)-burning.WindDir) * burning.WindSpeed * m.coeffs.Wind

	// Only uphill spread gets a slope boost; downhill and flat terrain
	// contribute nothing.
	var slope float64
	if dz := neighbor.Elevation - burning.Elevation; dz > 0 {
		slope = math.Sin(math.Atan(dz/m.dirs.Distance(dir))) * m.coeffs.Slope
	}

	lp := m.coeffs.VegIntercepts[targetVeg] + slope + wind
	return logistic(lp) * m.upperLimit
}

// logistic maps a linear predictor to (0, 1).
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
