package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/ntoll/sann/sann"
)

// Trains a network on a CSV dataset: every column not named in -labels is a
// feature. Samples are min-max normalized and split into train and test
// portions before training.
func main() {
	dataPath := flag.String("data", "", "CSV file with training data")
	labelsFlag := flag.String("labels", "", "comma-separated label column indices")
	structureFlag := flag.String("structure", "", "space-separated layer sizes, e.g. \"4 8 3\"")
	hasHeader := flag.Bool("header", true, "first CSV row is a header")
	epochs := flag.Int("epochs", 2000, "training epochs")
	learningRate := flag.Float64("lr", 0.5, "learning rate")
	splitRatio := flag.Float64("split", 0.8, "fraction of samples used for training")
	seed := flag.Int64("seed", 42, "seed for weight initialization")
	logPath := flag.String("log", "", "CSV file for per-epoch progress, empty disables")
	patience := flag.Int("patience", 0, "early stopping patience in epochs, 0 disables")
	output := flag.String("output", "trained_network.json", "file to save the trained network to")
	flag.Parse()

	if *dataPath == "" || *structureFlag == "" {
		fmt.Println("Usage: train -data samples.csv -labels 4 -structure \"4 8 3\"")
		os.Exit(1)
	}

	structure, err := parseInts(strings.Fields(*structureFlag))
	if err != nil {
		fmt.Printf("Error parsing structure: %v\n", err)
		os.Exit(1)
	}
	var labelCols []int
	if *labelsFlag != "" {
		labelCols, err = parseInts(strings.Split(*labelsFlag, ","))
		if err != nil {
			fmt.Printf("Error parsing label columns: %v\n", err)
			os.Exit(1)
		}
	}

	dataset, err := sann.LoadCSV(*dataPath, labelCols, *hasHeader)
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	dataset.Normalize()
	train, test := dataset.Split(*splitRatio)
	fmt.Printf("Loaded %d samples: %d training, %d test\n",
		len(dataset.Samples), len(train.Samples), len(test.Samples))

	rng := rand.New(rand.NewSource(*seed))
	network, err := sann.New(rng, structure...)
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	callbacks := []sann.Callback{sann.NewLogger(*epochs / 10)}
	if *logPath != "" {
		callbacks = append(callbacks, sann.NewCSVLogger(*logPath, false))
	}
	if *patience > 0 {
		callbacks = append(callbacks, sann.NewEarlyStopping(*patience, 1e-6))
	}

	if err := sann.Train(network, train.Training(), *epochs, *learningRate, callbacks...); err != nil {
		fmt.Printf("Error training network: %v\n", err)
		os.Exit(1)
	}

	trainMSE, err := sann.MeanSquaredError(network, train.Training())
	if err != nil {
		fmt.Printf("Error evaluating network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nTraining mse: %.6f\n", trainMSE)

	if len(test.Samples) > 0 {
		testMSE, err := sann.MeanSquaredError(network, test.Training())
		if err != nil {
			fmt.Printf("Error evaluating network: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Test mse: %.6f\n", testMSE)
	}

	if err := network.Save(*output); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved trained network to %s\n", *output)
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
