package evo

import (
	"math/rand"

	"github.com/ntoll/sann/internal/ann"
)

// Selector picks a parent from an evaluated population. Implementations
// must be monotonic: a strictly higher fitness never yields a strictly
// lower selection probability.
type Selector interface {
	Select(rng *rand.Rand, p Population) *ann.Network
}

// Tournament selection draws Size members uniformly at random (with
// replacement) and returns the fittest of them.
type Tournament struct {
	Size int
}

func (t Tournament) Select(rng *rand.Rand, p Population) *ann.Network {
	size := t.Size
	if size < 1 {
		size = 1
	}
	best := p[rng.Intn(len(p))]
	for i := 1; i < size; i++ {
		candidate := p[rng.Intn(len(p))]
		if fitter(candidate, best) {
			best = candidate
		}
	}
	return best
}

// RouletteWheel is fitness-proportionate selection: a member's chance of
// being picked is its share of the population's total positive fitness.
// Members with negative or unset fitness get no slice of the wheel; when
// the wheel is empty a uniformly random member is returned.
type RouletteWheel struct{}

func (RouletteWheel) Select(rng *rand.Rand, p Population) *ann.Network {
	total := 0.0
	for _, n := range p {
		if n.Fitness != nil && *n.Fitness > 0 {
			total += *n.Fitness
		}
	}
	if total == 0 {
		return p[rng.Intn(len(p))]
	}

	point := rng.Float64() * total
	tally := 0.0
	for _, n := range p {
		if n.Fitness != nil && *n.Fitness > 0 {
			tally += *n.Fitness
			if tally > point {
				return n
			}
		}
	}
	// Floating point accumulation can leave point just beyond the tally.
	return p[len(p)-1]
}

// fitter reports whether a has strictly higher fitness than b, treating
// unset fitness as lowest.
func fitter(a, b *ann.Network) bool {
	if a.Fitness == nil {
		return false
	}
	if b.Fitness == nil {
		return true
	}
	return *a.Fitness > *b.Fitness
}
