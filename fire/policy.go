package fire

import "math/rand/v2"

// Policy decides whether a computed ignition probability results in an
// ignition. The stochastic and threshold simulators differ only here.
type Policy interface {
	Accept(p float64) bool
}

// Threshold accepts any probability of at least 0.5. It makes runs fully
// deterministic regardless of seed.
type Threshold struct{}

// Accept implements Policy. The rule is >=, so a probability of exactly 0.5
// ignites.
func (Threshold) Accept(p float64) bool { return p >= 0.5 }

// Stochastic accepts with a Bernoulli trial against an injected random
// source. Draws are consumed in simulator iteration order, so the same seed
// reproduces the same run bit for bit.
type Stochastic struct {
	rng *rand.Rand
}

// NewStochastic builds a stochastic policy over the given random source.
func NewStochastic(rng *rand.Rand) *Stochastic {
	return &Stochastic{rng: rng}
}

// NewStochasticSeeded builds a stochastic policy from a bare seed.
func NewStochasticSeeded(seed int64) *Stochastic {
	return NewStochastic(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// Accept implements Policy.
func (s *Stochastic) Accept(p float64) bool {
	return s.rng.Float64() < p
}
