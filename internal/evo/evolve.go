package evo

import (
	"fmt"
	"math/rand"
)

// Options configures a run of Evolve.
type Options struct {
	// Generations is the maximum number of generational turnovers.
	Generations int

	// Elitism carries the fittest Elitism members unchanged into the
	// next generation.
	Elitism int

	// MutationRate is the per-gene probability of a perturbation.
	MutationRate float64

	// MutationMagnitude bounds the uniform perturbation delta.
	MutationMagnitude float64

	// Selector chooses parents; Tournament{Size: 3} when nil.
	Selector Selector

	// Parallelism is the number of workers used for fitness evaluation;
	// values below 2 evaluate sequentially.
	Parallelism int

	// Halt, when non-nil, is consulted after each generation has been
	// evaluated and sorted; returning true ends the run early. It
	// receives the sorted population and the number of completed
	// generational turnovers.
	Halt func(p Population, generation int) bool

	// Log, when non-nil, observes each evaluated, sorted generation.
	// Purely observational.
	Log func(generation int, p Population)
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.Selector == nil {
		opts.Selector = Tournament{Size: 3}
	}
	return opts
}

func (o *Options) validate() error {
	if o.Generations < 0 {
		return fmt.Errorf("generations cannot be negative, got %d", o.Generations)
	}
	if o.Elitism < 0 {
		return fmt.Errorf("elitism cannot be negative, got %d", o.Elitism)
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0, 1], got %g", o.MutationRate)
	}
	if o.MutationMagnitude < 0 {
		return fmt.Errorf("mutation magnitude cannot be negative, got %g", o.MutationMagnitude)
	}
	return nil
}

// Evolve runs the generational loop over pop: evaluate every member with
// fn, sort fittest-first, carry over elites, then fill the next generation
// with mutated crossover children of selected parents. The loop runs for
// opts.Generations turnovers or until opts.Halt fires.
//
// The returned population is evaluated and sorted, so the fittest network
// is its first member. The input population is consumed; all randomness
// comes from rng, so a seed fixes the whole run.
func Evolve(rng *rand.Rand, pop Population, fn FitnessFunc, opts Options) (Population, error) {
	if len(pop) < 2 {
		return nil, fmt.Errorf("evolution needs at least two members, got %d", len(pop))
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	evaluate := func(p Population) {
		if opts.Parallelism > 1 {
			p.EvaluateParallel(fn, opts.Parallelism)
		} else {
			p.Evaluate(fn)
		}
	}

	evaluate(pop)
	pop.SortByFitness()
	if opts.Log != nil {
		opts.Log(0, pop)
	}

	for gen := 1; gen <= opts.Generations; gen++ {
		if opts.Halt != nil && opts.Halt(pop, gen-1) {
			return pop, nil
		}

		next := make(Population, 0, len(pop))
		for i := 0; i < opts.Elitism && i < len(pop); i++ {
			next = append(next, pop[i].Clone())
		}
		for len(next) < len(pop) {
			parentA := opts.Selector.Select(rng, pop)
			parentB := opts.Selector.Select(rng, pop)
			childA, childB, err := Crossover(rng, parentA, parentB)
			if err != nil {
				return nil, err
			}
			Mutate(rng, childA, opts.MutationRate, opts.MutationMagnitude)
			Mutate(rng, childB, opts.MutationRate, opts.MutationMagnitude)
			next = append(next, childA)
			if len(next) < len(pop) {
				next = append(next, childB)
			}
		}

		pop = next
		evaluate(pop)
		pop.SortByFitness()
		if opts.Log != nil {
			opts.Log(gen, pop)
		}
	}

	return pop, nil
}
