package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for the Monte-Carlo
// cross-check. The analysis core never draws random numbers.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
