package evo

import (
	"fmt"
	"math/rand"

	"github.com/ntoll/sann/internal/ann"
)

// Crossover recombines two parent networks into two children by uniform
// per-gene crossover: for every weight and bias position, with probability
// 1/2 the children swap which parent the value comes from, so the siblings
// are complementary and every child value exists in one of the parents.
//
// Both children have their fitness unset. Parents are never modified.
// Fails with ann.ErrStructureMismatch when the parents' structures differ.
func Crossover(rng *rand.Rand, a, b *ann.Network) (*ann.Network, *ann.Network, error) {
	if !a.SameStructure(b) {
		return nil, nil, fmt.Errorf("%w: cannot cross %v with %v", ann.ErrStructureMismatch, a.Structure, b.Structure)
	}

	c1, c2 := a.Clone(), b.Clone()
	c1.Fitness, c2.Fitness = nil, nil

	for i := range c1.Layers {
		for j := range c1.Layers[i] {
			n1, n2 := &c1.Layers[i][j], &c2.Layers[i][j]
			if rng.Float64() < 0.5 {
				n1.Bias, n2.Bias = n2.Bias, n1.Bias
			}
			for k := range n1.Weights {
				if rng.Float64() < 0.5 {
					n1.Weights[k], n2.Weights[k] = n2.Weights[k], n1.Weights[k]
				}
			}
		}
	}

	return c1, c2, nil
}

// Mutate perturbs the network in place: each weight and bias independently,
// with probability rate, has a uniform random delta from
// [-magnitude, magnitude] added to it. Values are left unclamped, matching
// the unbounded weights gradient training produces. The genome has changed,
// so any recorded fitness is reset.
func Mutate(rng *rand.Rand, n *ann.Network, rate, magnitude float64) {
	n.Fitness = nil
	for i := range n.Layers {
		for j := range n.Layers[i] {
			node := &n.Layers[i][j]
			for k := range node.Weights {
				if rng.Float64() < rate {
					node.Weights[k] += (rng.Float64()*2 - 1) * magnitude
				}
			}
			if rng.Float64() < rate {
				node.Bias += (rng.Float64()*2 - 1) * magnitude
			}
		}
	}
}
