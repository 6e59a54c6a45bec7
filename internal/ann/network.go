// Package ann provides the fully-connected feed-forward network model and
// its forward propagation.
package ann

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidStructure reports a malformed layer-size sequence.
	ErrInvalidStructure = errors.New("invalid network structure")

	// ErrDimensionMismatch reports a vector whose length disagrees with
	// the network structure.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrStructureMismatch reports an operation combining networks whose
	// structures differ.
	ErrStructureMismatch = errors.New("structure mismatch")
)

// Node is a single unit holding its bias and one weight per incoming
// connection from the previous layer.
type Node struct {
	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

// Network is a fully-connected feed-forward neural network.
//
// Structure lists the number of nodes in every layer, input layer included,
// and is immutable after creation. Layers materializes every layer except
// the input one (the input layer has no weights or biases; its activations
// are the raw input vector), so len(Layers) == len(Structure)-1 and a node
// in Layers[i] has Structure[i] weights.
//
// Fitness is written only by the evolution engine and is nil until a
// network has been evaluated. The struct serializes to the interchange
// document used by the example tools, with an unset fitness as null.
type Network struct {
	Structure []int    `json:"structure"`
	Fitness   *float64 `json:"fitness"`
	Layers    [][]Node `json:"layers"`
}

// New creates a network with the given layer sizes. Weights and biases are
// drawn independently from a uniform distribution over [-1, 1] using rng,
// so the same seed reproduces the same network.
func New(rng *rand.Rand, structure ...int) (*Network, error) {
	if err := checkStructure(structure); err != nil {
		return nil, err
	}

	layers := make([][]Node, len(structure)-1)
	for i := range layers {
		fanIn := structure[i]
		layer := make([]Node, structure[i+1])
		for j := range layer {
			weights := make([]float64, fanIn)
			for k := range weights {
				weights[k] = rng.Float64()*2 - 1
			}
			layer[j] = Node{
				Bias:    rng.Float64()*2 - 1,
				Weights: weights,
			}
		}
		layers[i] = layer
	}

	return &Network{
		Structure: append([]int(nil), structure...),
		Layers:    layers,
	}, nil
}

// Clone returns a deep, independent copy of the network. Mutating the copy
// never affects the original.
func (n *Network) Clone() *Network {
	clone := &Network{
		Structure: append([]int(nil), n.Structure...),
		Layers:    make([][]Node, len(n.Layers)),
	}
	if n.Fitness != nil {
		fitness := *n.Fitness
		clone.Fitness = &fitness
	}
	for i, layer := range n.Layers {
		clone.Layers[i] = make([]Node, len(layer))
		for j, node := range layer {
			clone.Layers[i][j] = Node{
				Bias:    node.Bias,
				Weights: append([]float64(nil), node.Weights...),
			}
		}
	}
	return clone
}

// SetFitness records an evaluation score on the network.
func (n *Network) SetFitness(score float64) {
	n.Fitness = &score
}

// SameStructure reports whether the other network has an identical layer
// layout, the precondition for genetic recombination.
func (n *Network) SameStructure(other *Network) bool {
	if len(n.Structure) != len(other.Structure) {
		return false
	}
	for i, size := range n.Structure {
		if other.Structure[i] != size {
			return false
		}
	}
	return true
}

// NumInputs returns the size of the input layer.
func (n *Network) NumInputs() int {
	return n.Structure[0]
}

// NumOutputs returns the size of the output layer.
func (n *Network) NumOutputs() int {
	return n.Structure[len(n.Structure)-1]
}

func checkStructure(structure []int) error {
	if len(structure) < 2 {
		return fmt.Errorf("%w: need at least an input and an output layer, got %d", ErrInvalidStructure, len(structure))
	}
	for i, size := range structure {
		if size <= 0 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalidStructure, i, size)
		}
	}
	return nil
}

// validate checks the internal consistency of a network against its
// declared structure. Used when reading untrusted serialized documents.
func (n *Network) validate() error {
	if err := checkStructure(n.Structure); err != nil {
		return err
	}
	if len(n.Layers) != len(n.Structure)-1 {
		return fmt.Errorf("%w: %d layers for a %d-entry structure", ErrInvalidStructure, len(n.Layers), len(n.Structure))
	}
	for i, layer := range n.Layers {
		if len(layer) != n.Structure[i+1] {
			return fmt.Errorf("%w: layer %d has %d nodes, structure expects %d", ErrInvalidStructure, i, len(layer), n.Structure[i+1])
		}
		for j, node := range layer {
			if len(node.Weights) != n.Structure[i] {
				return fmt.Errorf("%w: node %d of layer %d has %d weights, fan-in is %d", ErrInvalidStructure, j, i, len(node.Weights), n.Structure[i])
			}
		}
	}
	return nil
}
