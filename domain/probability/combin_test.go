package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestExactlyNOf_Scenario(t *testing.T) {
	ps := []float64{0.1, 0.2, 0.3}

	assert.InDelta(t, 0.006, ExactlyNOf(ps, 3), 1e-12)
	assert.InDelta(t, 0.504, ExactlyNOf(ps, 0), 1e-12)
	assert.InDelta(t, 0.398, ExactlyNOf(ps, 1), 1e-12)
	assert.InDelta(t, 0.092, ExactlyNOf(ps, 2), 1e-12)
}

func TestAtLeastNOf_Scenario(t *testing.T) {
	ps := []float64{0.1, 0.2, 0.3}

	assert.InDelta(t, 1-0.9*0.8*0.7, AtLeastNOf(ps, 1), 1e-12)
	assert.InDelta(t, 0.496, AtLeastNOf(ps, 1), 1e-12)
}

func TestExactlyNOf_SumsToOne(t *testing.T) {
	vectors := [][]float64{
		{},
		{0.5},
		{0.1, 0.9},
		{0.65, 0.58, 0.5, 0.52, 0.4},
		{0, 1, 0.33, 0.77, 0.01, 0.99},
	}
	for _, ps := range vectors {
		sum := 0.0
		for k := 0; k <= len(ps); k++ {
			sum += ExactlyNOf(ps, k)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "vector %v", ps)
	}
}

func TestAtLeastNOf_Boundaries(t *testing.T) {
	vectors := [][]float64{
		{0.5},
		{0.1, 0.2, 0.3},
		{0.65, 0.58, 0.5, 0.52, 0.4, 0.45},
	}
	for _, ps := range vectors {
		assert.InDelta(t, 1.0, AtLeastNOf(ps, 0), 1e-12)
		assert.InDelta(t, floats.Prod(ps), AtLeastNOf(ps, len(ps)), 1e-12)
		assert.InDelta(t, 0, AtLeastNOf(ps, len(ps)+1), 1e-12)
	}
}

func TestExactlyNOf_OutOfRange(t *testing.T) {
	assert.Zero(t, ExactlyNOf([]float64{0.5}, -1))
	assert.Zero(t, ExactlyNOf([]float64{0.5}, 2))
	assert.InDelta(t, 1, ExactlyNOf(nil, 0), 0)
}

// TestExactlyNOf_MatchesBinomial cross-checks identical probabilities against
// the closed-form binomial pmf.
func TestExactlyNOf_MatchesBinomial(t *testing.T) {
	const p = 0.37
	ps := []float64{p, p, p, p, p, p}
	binomial := distuv.Binomial{N: float64(len(ps)), P: p}

	for k := 0; k <= len(ps); k++ {
		assert.InDelta(t, binomial.Prob(float64(k)), ExactlyNOf(ps, k), 1e-12, "k=%d", k)
	}
}

func TestSequential(t *testing.T) {
	selection := Sequential([]float64{0.5, 0.5, 1.5, 0.2})

	assert.InDelta(t, 0.5, selection.Rates[0], 1e-12)
	assert.InDelta(t, 0.25, selection.Rates[1], 1e-12)
	assert.InDelta(t, 0.25, selection.Rates[2], 1e-12, "rates above one are clamped")
	assert.InDelta(t, 0, selection.Rates[3], 1e-12)
	assert.InDelta(t, 1.0, selection.Total, 1e-12)
	assert.InDelta(t, 0, selection.Residual(), 1e-12)

	independent := []float64{0.3, 0.4, 0.1}
	assert.InDelta(t, AtLeastNOf(independent, 1), Sequential(independent).Total, 1e-12)
}
