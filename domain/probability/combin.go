// Package probability computes exact event-count probabilities over small sets
// of independent Bernoulli trials.
package probability

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// ExactlyNOf returns the probability that exactly n of the independent events
// with the given probabilities occur. Every size-n subset is enumerated, so the
// input is expected to stay small (equipment slots, fleet members).
func ExactlyNOf(probabilities []float64, n int) float64 {
	size := len(probabilities)
	if n < 0 || n > size {
		return 0
	}

	total := 0.0
	chosen := make([]bool, size)
	for _, subset := range combin.Combinations(size, n) {
		for i := range chosen {
			chosen[i] = false
		}
		for _, idx := range subset {
			chosen[idx] = true
		}

		terms := make([]float64, size)
		for i, p := range probabilities {
			if chosen[i] {
				terms[i] = p
			} else {
				terms[i] = 1 - p
			}
		}
		total += floats.Prod(terms)
	}
	return total
}

// AtLeastNOf returns the probability that n or more of the events occur.
func AtLeastNOf(probabilities []float64, n int) float64 {
	if n <= 0 {
		return 1
	}
	total := 0.0
	for k := n; k <= len(probabilities); k++ {
		total += ExactlyNOf(probabilities, k)
	}
	return total
}

// Selection is the outcome of trying candidates one after another until one
// triggers.
type Selection struct {
	// Rates holds, per candidate, the probability that it is the first to trigger.
	Rates []float64
	// Total is the probability that any candidate triggers.
	Total float64
}

// Sequential evaluates candidates in order; candidate i is selected with
// probability p_i times the chance that every earlier candidate failed.
func Sequential(probabilities []float64) Selection {
	rates := make([]float64, len(probabilities))
	remaining := 1.0
	for i, p := range probabilities {
		p = clamp01(p)
		rates[i] = remaining * p
		remaining *= 1 - p
	}
	return Selection{Rates: rates, Total: 1 - remaining}
}

// Residual is the probability that no candidate triggers.
func (s Selection) Residual() float64 {
	return 1 - s.Total
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
