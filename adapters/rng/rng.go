// Package rng provides the deterministic random-source adapter. Stream seeds
// are derived from the base seed and the stream name, so differently named
// operations never share a draw sequence even under the same run seed.
package rng

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// DeterministicRNG implements ports.RNGPort with name-derived stream seeds
type DeterministicRNG struct{}

// NewDeterministicRNG creates the adapter
func NewDeterministicRNG() *DeterministicRNG {
	return &DeterministicRNG{}
}

// SeededStream creates an exclusively owned random source for one operation
func (r *DeterministicRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("stream name cannot be empty")
	}
	return rand.New(rand.NewSource(deriveSeed(name, seed))), nil
}

// deriveSeed mixes the stream name into the base seed via FNV-1a
func deriveSeed(name string, seed int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	fmt.Fprintf(h, "|%d", seed)
	return int64(h.Sum64())
}
