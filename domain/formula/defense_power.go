package formula

import (
	"math"
	"math/rand"
)

// DefensePower expands a basic defense value into equally likely rolls
// basic·0.7 + i·0.6 for i in [0, floor(basic)).
type DefensePower struct {
	Basic float64 `json:"basic"`
}

// NewDefensePower clamps basic to at least 1 so the roll set is never empty.
func NewDefensePower(basic float64) DefensePower {
	return DefensePower{Basic: math.Max(basic, 1)}
}

// Len returns the number of rolls.
func (d DefensePower) Len() int {
	return int(math.Floor(d.Basic))
}

// Min returns the lowest roll.
func (d DefensePower) Min() float64 {
	return d.Basic * 0.7
}

// Max returns the highest roll.
func (d DefensePower) Max() float64 {
	return d.At(d.Len() - 1)
}

// At returns the i-th roll in ascending order.
func (d DefensePower) At(i int) float64 {
	return d.Basic*0.7 + float64(i)*0.6
}

// Rolls returns every roll in ascending order.
func (d DefensePower) Rolls() []float64 {
	rolls := make([]float64, d.Len())
	for i := range rolls {
		rolls[i] = d.At(i)
	}
	return rolls
}

// Choose draws one roll uniformly. Only samplers use it.
func (d DefensePower) Choose(rng *rand.Rand) float64 {
	return d.At(rng.Intn(d.Len()))
}
