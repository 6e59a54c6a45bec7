package ann

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ntoll/sann/internal/activations"
)

var sigmoid = activations.Sigmoid{}

// Forward evaluates the network against an input vector and returns the
// output layer's activations. The pass is pure: the network is never
// mutated, and identical weights and inputs yield identical outputs.
func (n *Network) Forward(inputs []float64) ([]float64, error) {
	trace, err := n.ForwardTrace(inputs)
	if err != nil {
		return nil, err
	}
	return trace[len(trace)-1], nil
}

// ForwardTrace runs the same pass as Forward but retains every layer's
// activation vector: trace[i] holds the activations of Layers[i], so the
// last entry is the network output. Backpropagation needs the full trace.
func (n *Network) ForwardTrace(inputs []float64) ([][]float64, error) {
	if len(inputs) != n.Structure[0] {
		return nil, fmt.Errorf("%w: got %d inputs, network expects %d", ErrDimensionMismatch, len(inputs), n.Structure[0])
	}

	trace := make([][]float64, len(n.Layers))
	current := inputs
	for i, layer := range n.Layers {
		next := make([]float64, len(layer))
		for j, node := range layer {
			next[j] = sigmoid.Activate(floats.Dot(node.Weights, current) + node.Bias)
		}
		trace[i] = next
		current = next
	}
	return trace, nil
}
