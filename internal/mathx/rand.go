// Package mathx carries the deterministic-randomness helpers shared by
// the generation stages. Every stage derives its own PCG stream from the
// master seed and a label, so no two stages ever share random state.
package mathx

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG returns a PCG generator for one derived seed.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// SeedFromLabel derives a stage- or tile-scoped sub-seed from the master
// seed, so parallel consumers never share a random stream.
func SeedFromLabel(seed int64, label string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, label)))
	return int64(h.Sum64() & 0x7fffffffffffffff)
}
