package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ntoll/sann/sann"
)

func main() {
	seed := flag.Int64("seed", 42, "seed for weight initialization")
	epochs := flag.Int("epochs", 10000, "training epochs")
	learningRate := flag.Float64("lr", 0.5, "learning rate")
	output := flag.String("output", "xor_network.json", "file to save the trained network to")
	flag.Parse()

	fmt.Println("=== XOR Training Example ===")

	// XOR needs a hidden layer: 2 inputs -> 3 hidden -> 1 output.
	fmt.Println("Network architecture: 2-3-1")
	fmt.Printf("Learning rate %g, %d epochs, seed %d\n", *learningRate, *epochs, *seed)

	rng := rand.New(rand.NewSource(*seed))
	network, err := sann.New(rng, 2, 3, 1)
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	data := []sann.Sample{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}

	err = sann.Train(network, data, *epochs, *learningRate, sann.NewLogger(*epochs/10))
	if err != nil {
		fmt.Printf("Error training network: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nTesting trained network:")
	for _, s := range data {
		pred, err := network.Forward(s.Inputs)
		if err != nil {
			fmt.Printf("Error running network: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", s.Inputs, pred[0], s.Targets[0])
	}

	mse, err := sann.MeanSquaredError(network, data)
	if err != nil {
		fmt.Printf("Error evaluating network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nFinal mse: %.6f\n", mse)

	fmt.Printf("Saving network to %s...\n", *output)
	if err := network.Save(*output); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		os.Exit(1)
	}

	// Round-trip the saved document to make sure it reproduces the model.
	loaded, err := sann.Load(*output)
	if err != nil {
		fmt.Printf("Error loading network: %v\n", err)
		os.Exit(1)
	}
	for _, s := range data {
		original, _ := network.Forward(s.Inputs)
		reloaded, _ := loaded.Forward(s.Inputs)
		if original[0] != reloaded[0] {
			fmt.Println("FAILURE: loaded network predictions differ!")
			os.Exit(1)
		}
	}
	fmt.Println("Network saved and verified.")
}
