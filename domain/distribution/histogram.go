// Package distribution holds the small distribution algebra the analyzers are
// built on: weighted histograms over comparable keys and the tri-state
// Estimation wrapper.
package distribution

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Histogram maps an outcome key to its accumulated weight.
// The zero value (nil) is the empty histogram and is safe to read; use New
// before calling Add.
type Histogram[K comparable] map[K]float64

// New returns an empty histogram ready for accumulation.
func New[K comparable]() Histogram[K] {
	return make(Histogram[K])
}

// Of builds a histogram from key/weight pairs.
func Of[K comparable](pairs map[K]float64) Histogram[K] {
	h := make(Histogram[K], len(pairs))
	for k, w := range pairs {
		h.Add(k, w)
	}
	return h
}

// Add accumulates weight onto key, creating the entry at zero first.
func (h Histogram[K]) Add(key K, weight float64) {
	h[key] += weight
}

// Get returns the weight stored for key, zero when absent.
func (h Histogram[K]) Get(key K) float64 {
	return h[key]
}

// Len returns the number of distinct keys.
func (h Histogram[K]) Len() int {
	return len(h)
}

// IsEmpty reports whether the histogram has no entries.
func (h Histogram[K]) IsEmpty() bool {
	return len(h) == 0
}

// Keys returns the keys in unspecified order.
func (h Histogram[K]) Keys() []K {
	keys := make([]K, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys ordered by cmp.
func (h Histogram[K]) SortedKeys(cmp func(a, b K) int) []K {
	keys := h.Keys()
	slices.SortFunc(keys, cmp)
	return keys
}

// Total returns the sum of all weights.
func (h Histogram[K]) Total() float64 {
	if len(h) == 0 {
		return 0
	}
	weights := make([]float64, 0, len(h))
	for _, w := range h {
		weights = append(weights, w)
	}
	return floats.Sum(weights)
}

// Clone returns an independent copy.
func (h Histogram[K]) Clone() Histogram[K] {
	out := make(Histogram[K], len(h))
	for k, w := range h {
		out[k] = w
	}
	return out
}

// Scale returns a new histogram with every weight multiplied by s.
func (h Histogram[K]) Scale(s float64) Histogram[K] {
	out := make(Histogram[K], len(h))
	for k, w := range h {
		out[k] = w * s
	}
	return out
}

// Merge returns the entry-wise sum of h and other over the union of keys.
func (h Histogram[K]) Merge(other Histogram[K]) Histogram[K] {
	out := h.Clone()
	for k, w := range other {
		out.Add(k, w)
	}
	return out
}

// AddScaled accumulates s·other into h in place.
func (h Histogram[K]) AddScaled(other Histogram[K], s float64) {
	for k, w := range other {
		h.Add(k, w*s)
	}
}

// Density normalizes the weights into a probability mass function.
// A histogram whose total is zero yields an empty result.
func (h Histogram[K]) Density() Histogram[K] {
	total := h.Total()
	if total == 0 {
		return New[K]()
	}
	out := make(Histogram[K], len(h))
	for k, w := range h {
		out[k] = w / total
	}
	return out
}

// Density converts a histogram of counts into a probability mass function.
func Density[K comparable](counts Histogram[K]) Histogram[K] {
	return counts.Density()
}

// Map re-keys h through f, summing the weights of keys that collide.
func Map[K, J comparable](h Histogram[K], f func(K) J) Histogram[J] {
	out := make(Histogram[J], len(h))
	for k, w := range h {
		out.Add(f(k), w)
	}
	return out
}

// Filter returns the entries whose key satisfies keep.
func (h Histogram[K]) Filter(keep func(K) bool) Histogram[K] {
	out := New[K]()
	for k, w := range h {
		if keep(k) {
			out[k] = w
		}
	}
	return out
}
