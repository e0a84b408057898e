package distribution

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Number is the set of numeric types the algebra operates on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// unzip splits a numeric histogram into ascending values and matching weights.
func unzip[K Number](h Histogram[K]) ([]float64, []float64) {
	keys := h.SortedKeys(cmp.Compare[K])
	xs := make([]float64, len(keys))
	ws := make([]float64, len(keys))
	for i, k := range keys {
		xs[i] = float64(k)
		ws[i] = h[k]
	}
	return xs, ws
}

// Mean returns the weighted mean of a numeric-keyed histogram, NaN when empty.
func Mean[K Number](h Histogram[K]) float64 {
	if h.Total() == 0 {
		return math.NaN()
	}
	xs, ws := unzip(h)
	return stat.Mean(xs, ws)
}

// StdDev returns the weighted population standard deviation.
func StdDev[K Number](h Histogram[K]) float64 {
	if h.Total() == 0 {
		return math.NaN()
	}
	xs, ws := unzip(h)
	_, std := stat.PopMeanStdDev(xs, ws)
	return std
}

// Quantile returns the smallest key whose cumulative weight reaches p.
func Quantile[K Number](h Histogram[K], p float64) float64 {
	if h.Total() == 0 {
		return math.NaN()
	}
	p = math.Min(math.Max(p, 0), 1)
	xs, ws := unzip(h)
	return stat.Quantile(p, stat.Empirical, xs, ws)
}

// CDF returns the normalized weight of keys less than or equal to x.
func CDF[K Number](h Histogram[K], x K) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	acc := 0.0
	for k, w := range h {
		if k <= x {
			acc += w
		}
	}
	return acc / total
}

// Support returns the keys in ascending order.
func Support[K Number](h Histogram[K]) []K {
	keys := h.Keys()
	slices.Sort(keys)
	return keys
}
