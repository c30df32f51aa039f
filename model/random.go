package model

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic PCG source for the provided seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewSeed returns a fresh non-negative seed derived from the clock
func NewSeed() int64 {
	return NewRNG(time.Now().UnixNano()).Int64N(1<<31 - 1)
}

// Randomize sets every cell alive with probability 1/2, drawing one bit per cell in
// row-major order, and returns the number of living cells
func Randomize(g *Grid, rng *rand.Rand) (alive int) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.IntN(2) == 1
			if g.cells[y][x] {
				alive++
			}
		}
	}
	return
}

// RandomizeSeed fills the grid from a fresh source for seed, so the same seed on a grid
// of the same size always reproduces the same pattern
func RandomizeSeed(g *Grid, seed int64) int {
	return Randomize(g, NewRNG(seed))
}
