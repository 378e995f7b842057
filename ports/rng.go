package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic sampling.
// The returned source is exclusively owned by the caller: the Monte Carlo
// sampler must exhaust it single-threaded so a fixed seed reproduces the
// exact draw sequence.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
