// Package evo implements neuro-evolution: populations of networks scored
// by an externally supplied fitness function and bred by selection,
// crossover and mutation.
package evo

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/ntoll/sann/internal/ann"
)

// FitnessFunc scores a single network. Higher scores are fitter. The
// function typically runs the network (repeated forward passes in some
// simulated task) and returns a scalar reward.
type FitnessFunc func(n *ann.Network) float64

// Population is one generation of networks sharing an identical structure.
type Population []*ann.Network

// NewPopulation creates size randomly initialized networks with the given
// structure, drawing all weights and biases from rng.
func NewPopulation(rng *rand.Rand, size int, structure ...int) (Population, error) {
	if size <= 0 {
		return nil, fmt.Errorf("population size must be positive, got %d", size)
	}
	pop := make(Population, size)
	for i := range pop {
		n, err := ann.New(rng, structure...)
		if err != nil {
			return nil, err
		}
		pop[i] = n
	}
	return pop, nil
}

// Evaluate invokes fn for every member and writes the result into the
// member's Fitness field.
func (p Population) Evaluate(fn FitnessFunc) {
	for _, n := range p {
		n.SetFitness(fn(n))
	}
}

// EvaluateParallel scores members concurrently across the given number of
// workers. Each member's score is independent of evaluation order, so fn
// must not share mutable state between calls.
func (p Population) EvaluateParallel(fn FitnessFunc, workers int) {
	if workers <= 1 || len(p) < 2 {
		p.Evaluate(fn)
		return
	}
	if workers > len(p) {
		workers = len(p)
	}

	jobs := make(chan *ann.Network)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				n.SetFitness(fn(n))
			}
		}()
	}
	for _, n := range p {
		jobs <- n
	}
	close(jobs)
	wg.Wait()
}

// SortByFitness orders the population fittest first. Unevaluated members
// sort after evaluated ones; ties keep their relative order.
func (p Population) SortByFitness() {
	sort.SliceStable(p, func(i, j int) bool {
		fi, fj := p[i].Fitness, p[j].Fitness
		switch {
		case fi == nil:
			return false
		case fj == nil:
			return true
		default:
			return *fi > *fj
		}
	})
}

// Best returns the evaluated member with the highest fitness, or nil when
// no member has been evaluated.
func (p Population) Best() *ann.Network {
	var best *ann.Network
	for _, n := range p {
		if n.Fitness == nil {
			continue
		}
		if best == nil || *n.Fitness > *best.Fitness {
			best = n
		}
	}
	return best
}

// MeanFitness returns the mean fitness over evaluated members, or 0 when
// none have been evaluated.
func (p Population) MeanFitness() float64 {
	mean, _ := p.Stats()
	return mean
}

// Stats returns the mean and standard deviation of fitness over evaluated
// members.
func (p Population) Stats() (mean, stddev float64) {
	scores := make([]float64, 0, len(p))
	for _, n := range p {
		if n.Fitness != nil {
			scores = append(scores, *n.Fitness)
		}
	}
	if len(scores) == 0 {
		return 0, 0
	}
	return stat.Mean(scores, nil), stat.StdDev(scores, nil)
}
