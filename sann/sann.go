// Package sann is the public surface of the toolkit: a minimal
// feed-forward neural network with supervised backpropagation training and
// a neuro-evolution engine, re-exported from the internal packages.
package sann

import (
	"math/rand"

	"github.com/ntoll/sann/internal/ann"
	"github.com/ntoll/sann/internal/evo"
	"github.com/ntoll/sann/internal/trainer"
)

// Re-export common types for easier access
type (
	Network     = ann.Network
	Node        = ann.Node
	Sample      = trainer.Sample
	Dataset     = trainer.Dataset
	Callback    = trainer.Callback
	Population  = evo.Population
	FitnessFunc = evo.FitnessFunc
	Options     = evo.Options
	Selector    = evo.Selector
	Tournament  = evo.Tournament
	Config      = evo.Config
)

// Errors
var (
	ErrInvalidStructure  = ann.ErrInvalidStructure
	ErrDimensionMismatch = ann.ErrDimensionMismatch
	ErrStructureMismatch = ann.ErrStructureMismatch
)

// RouletteWheel is fitness-proportionate parent selection.
var RouletteWheel = evo.RouletteWheel{}

// Network creation and persistence

func New(rng *rand.Rand, structure ...int) (*Network, error) {
	return ann.New(rng, structure...)
}

func Load(path string) (*Network, error) {
	return ann.Load(path)
}

// Supervised training

func Train(n *Network, data []Sample, epochs int, learningRate float64, cbs ...Callback) error {
	return trainer.Train(n, data, epochs, learningRate, cbs...)
}

func MeanSquaredError(n *Network, data []Sample) (float64, error) {
	return trainer.MeanSquaredError(n, data)
}

func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	return trainer.LoadCSV(filename, labelCols, hasHeader)
}

// Callbacks

func NewLogger(interval int) trainer.Logger {
	return trainer.Logger{Interval: interval}
}

func NewEarlyStopping(patience int, minDelta float64) *trainer.EarlyStopping {
	return trainer.NewEarlyStopping(patience, minDelta)
}

func NewCSVLogger(filename string, append bool) *trainer.CSVLogger {
	return trainer.NewCSVLogger(filename, append)
}

// Neuro-evolution

func NewPopulation(rng *rand.Rand, size int, structure ...int) (Population, error) {
	return evo.NewPopulation(rng, size, structure...)
}

func Evolve(rng *rand.Rand, pop Population, fn FitnessFunc, opts Options) (Population, error) {
	return evo.Evolve(rng, pop, fn, opts)
}

func Crossover(rng *rand.Rand, a, b *Network) (*Network, *Network, error) {
	return evo.Crossover(rng, a, b)
}

func Mutate(rng *rand.Rand, n *Network, rate, magnitude float64) {
	evo.Mutate(rng, n, rate, magnitude)
}

// Run configuration and checkpoints

func LoadConfig(path string) (*Config, error) {
	return evo.LoadConfig(path)
}

func SaveCheckpoint(path string, pop Population, generation int) error {
	return evo.SaveCheckpoint(path, pop, generation)
}

func LoadCheckpoint(path string) (Population, int, error) {
	return evo.LoadCheckpoint(path)
}
