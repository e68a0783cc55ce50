package raffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the randomness a draw consumes. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Int64N(n int64) int64
}

// Candidate is one weighted entry in a draw
type Candidate struct {
	ID     string
	Weight int
}

// NewSource returns a PCG generator seeded from crypto/rand.
// Every draw gets its own source so no state is shared between raffles.
func NewSource() (Source, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	seed1 := binary.LittleEndian.Uint64(b[:8])
	seed2 := binary.LittleEndian.Uint64(b[8:])
	return rand.New(rand.NewPCG(seed1, seed2)), nil //nolint:gosec // seeded from crypto/rand
}

// SelectWinners draws up to count distinct candidates without replacement.
// Each pick is proportional to the remaining weights. Weights below 1 count as 1.
// An empty pool or a non-positive count yields no winners.
func SelectWinners(candidates []Candidate, count int, rng Source) []string {
	if len(candidates) == 0 || count <= 0 {
		return []string{}
	}
	if count > len(candidates) {
		count = len(candidates)
	}

	pool := make([]Candidate, len(candidates))
	var total int64
	for i, c := range candidates {
		if c.Weight < 1 {
			c.Weight = 1
		}
		pool[i] = c
		total += int64(c.Weight)
	}

	winners := make([]string, 0, count)
	for len(winners) < count {
		var idx int
		if total <= 0 {
			// Equal weights once the mass is exhausted
			idx = int(rng.Int64N(int64(len(pool))))
		} else {
			idx = pick(pool, rng.Int64N(total))
		}

		winners = append(winners, pool[idx].ID)
		total -= int64(pool[idx].Weight)
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return winners
}

// pick returns the first index whose running weight sum exceeds target
func pick(pool []Candidate, target int64) int {
	var running int64
	for i, c := range pool {
		running += int64(c.Weight)
		if running > target {
			return i
		}
	}
	return len(pool) - 1
}

// TotalWeight sums the effective weights of candidates
func TotalWeight(candidates []Candidate) int64 {
	var total int64
	for _, c := range candidates {
		if c.Weight < 1 {
			total++
			continue
		}
		total += int64(c.Weight)
	}
	return total
}
