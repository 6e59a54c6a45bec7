// Package trainer implements supervised training of a network by
// backpropagation of errors with gradient descent.
package trainer

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/ntoll/sann/internal/activations"
	"github.com/ntoll/sann/internal/ann"
)

// Sample pairs one input vector with the output vector the network should
// learn to produce for it.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// Train runs epochs of backpropagation over data, updating the network's
// weights and biases in place. Samples are visited in the order given, with
// no shuffling, so a run is fully deterministic.
//
// Every sample's dimensions are checked against the network before any
// weight moves: a single malformed pair fails the whole call with
// ann.ErrDimensionMismatch and leaves the network untouched.
//
// Callbacks observe progress (per-epoch mean squared error) and never
// affect the result, except that an EarlyStopping callback may end the run
// before all epochs have elapsed.
func Train(n *ann.Network, data []Sample, epochs int, learningRate float64, cbs ...Callback) error {
	if epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", epochs)
	}
	if learningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %g", learningRate)
	}
	in, out := n.NumInputs(), n.NumOutputs()
	for i, s := range data {
		if len(s.Inputs) != in {
			return fmt.Errorf("%w: sample %d has %d inputs, network expects %d", ann.ErrDimensionMismatch, i, len(s.Inputs), in)
		}
		if len(s.Targets) != out {
			return fmt.Errorf("%w: sample %d has %d targets, network expects %d", ann.ErrDimensionMismatch, i, len(s.Targets), out)
		}
	}

	for _, cb := range cbs {
		cb.OnTrainBegin(n)
	}

	sampleErrs := make([]float64, len(data))
	for epoch := 1; epoch <= epochs; epoch++ {
		for i, s := range data {
			sampleErrs[i] = backpropagate(n, s, learningRate)
		}
		mse := 0.0
		if len(sampleErrs) > 0 {
			mse = stat.Mean(sampleErrs, nil)
		}
		stopped := false
		for _, cb := range cbs {
			cb.OnEpochEnd(epoch, mse, n)
			if es, ok := cb.(*EarlyStopping); ok && es.Stopped {
				stopped = true
			}
		}
		if stopped {
			break
		}
	}

	for _, cb := range cbs {
		cb.OnTrainEnd(n)
	}
	return nil
}

// backpropagate adjusts the network's weights and biases toward the
// sample's target output and returns the sample's pre-update mean squared
// error.
//
// Error signals for every layer are computed first, against the weights the
// forward pass used; only then are the updates applied.
func backpropagate(n *ann.Network, s Sample, learningRate float64) float64 {
	// Dimensions were validated by Train.
	trace, _ := n.ForwardTrace(s.Inputs)
	outputs := trace[len(trace)-1]

	// Output layer error signal: (a - target) * a * (1 - a).
	deltas := make([]float64, len(outputs))
	sqErr := 0.0
	for j, a := range outputs {
		diff := a - s.Targets[j]
		sqErr += diff * diff
		deltas[j] = diff * activations.SigmoidPrime(a)
	}

	for i := len(n.Layers) - 1; i >= 0; i-- {
		layer := n.Layers[i]

		layerInputs := s.Inputs
		if i > 0 {
			layerInputs = trace[i-1]
		}

		// Error signals for the layer below, using this layer's weights
		// before they are updated.
		var below []float64
		if i > 0 {
			below = make([]float64, len(n.Layers[i-1]))
			for k := range below {
				sum := 0.0
				for j := range layer {
					sum += deltas[j] * layer[j].Weights[k]
				}
				below[k] = sum * activations.SigmoidPrime(trace[i-1][k])
			}
		}

		for j := range layer {
			node := &layer[j]
			for k := range node.Weights {
				node.Weights[k] -= learningRate * deltas[j] * layerInputs[k]
			}
			node.Bias -= learningRate * deltas[j]
		}

		deltas = below
	}

	return sqErr / float64(len(outputs))
}

// MeanSquaredError evaluates the network against data without updating it,
// returning the mean over samples of the per-sample mean squared error.
func MeanSquaredError(n *ann.Network, data []Sample) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	errs := make([]float64, len(data))
	for i, s := range data {
		outputs, err := n.Forward(s.Inputs)
		if err != nil {
			return 0, err
		}
		if len(s.Targets) != len(outputs) {
			return 0, fmt.Errorf("%w: sample %d has %d targets, network produces %d outputs", ann.ErrDimensionMismatch, i, len(s.Targets), len(outputs))
		}
		sqErr := 0.0
		for j, a := range outputs {
			diff := a - s.Targets[j]
			sqErr += diff * diff
		}
		errs[i] = sqErr / float64(len(outputs))
	}
	return stat.Mean(errs, nil), nil
}
