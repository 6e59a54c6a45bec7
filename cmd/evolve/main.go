package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ntoll/sann/sann"
)

// xorFitness rewards networks that approximate XOR: 4 minus the summed
// squared error over the four cases, so a perfect network scores 4.
func xorFitness(n *sann.Network) float64 {
	cases := []sann.Sample{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
	score := 4.0
	for _, c := range cases {
		out, err := n.Forward(c.Inputs)
		if err != nil {
			return 0
		}
		diff := out[0] - c.Targets[0]
		score -= diff * diff
	}
	return score
}

func main() {
	configPath := flag.String("config", "evolve.ini", "evolution run configuration")
	resume := flag.String("resume", "", "checkpoint file to resume from")
	checkpoint := flag.String("checkpoint", "evolve.checkpoint", "file for periodic checkpoints")
	checkpointEvery := flag.Int("checkpoint-every", 25, "generations between checkpoints, 0 disables")
	output := flag.String("output", "evolved_network.json", "file to save the fittest network to")
	flag.Parse()

	cfg, err := sann.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(cfg.Evolution.Seed))

	var pop sann.Population
	startGen := 0
	if *resume != "" {
		pop, startGen, err = sann.LoadCheckpoint(*resume)
		if err != nil {
			fmt.Printf("Error loading checkpoint: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Resumed %d networks from generation %d\n", len(pop), startGen)
	} else {
		pop, err = sann.NewPopulation(rng, cfg.Evolution.PopulationSize, cfg.Network.Structure...)
		if err != nil {
			fmt.Printf("Error creating population: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %d networks with structure %v\n", len(pop), cfg.Network.Structure)
	}

	opts := cfg.Evolution.Options()
	opts.Log = func(gen int, p sann.Population) {
		mean, stddev := p.Stats()
		fmt.Printf("Generation %d: best=%.4f mean=%.4f stddev=%.4f\n",
			startGen+gen, *p.Best().Fitness, mean, stddev)
		if *checkpointEvery > 0 && gen > 0 && gen%*checkpointEvery == 0 {
			if err := sann.SaveCheckpoint(*checkpoint, p, startGen+gen); err != nil {
				fmt.Printf("Warning: checkpoint failed: %v\n", err)
			}
		}
	}
	opts.Halt = func(p sann.Population, generation int) bool {
		// A near-perfect network ends the run early.
		return *p.Best().Fitness > 3.99
	}

	result, err := sann.Evolve(rng, pop, xorFitness, opts)
	if err != nil {
		fmt.Printf("Error during evolution: %v\n", err)
		os.Exit(1)
	}

	best := result.Best()
	fmt.Printf("\nFittest network scored %.4f\n", *best.Fitness)
	for _, inputs := range [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		out, _ := best.Forward(inputs)
		fmt.Printf("Input: %v, Output: %.4f\n", inputs, out[0])
	}

	if err := best.Save(*output); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved fittest network to %s\n", *output)
}
