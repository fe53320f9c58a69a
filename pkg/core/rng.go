package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Random returns a grid of the given size with each cell alive with
// probability one half. The same seed always yields the same grid.
func Random(s Size, seed int64) (Grid, error) {
	if err := checkDimensions(s.Rows, s.Cols); err != nil {
		return Grid{}, err
	}
	rng := NewRNG(seed)
	b := NewBuilder(s)
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			b.Set(i, j, rng.Bool())
		}
	}
	return b.Grid(), nil
}
