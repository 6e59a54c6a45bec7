// Package activations provides the fixed set of activation functions used
// by the network model.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Sigmoid activation function. This is the function applied by every node
// during a forward pass.
type Sigmoid struct{}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes 1 / (1 + e^-x).
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x)).
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// SigmoidPrime is the sigmoid derivative expressed in terms of the
// activation value a = sigmoid(x) rather than x. Backpropagation only keeps
// the activations around, so this form avoids recomputing the exponential.
func SigmoidPrime(a float64) float64 {
	return a * (1 - a)
}

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x).
func (t Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - tanh(x)^2.
func (t Tanh) Derivative(x float64) float64 {
	tanhX := math.Tanh(x)
	return 1 - tanhX*tanhX
}

// TLU is a threshold logic unit: output is 1 when the activation reaches
// the threshold, 0 otherwise. Useful for hard binary decisions driven by a
// trained or evolved network; it has no usable gradient.
type TLU struct {
	Threshold float64
}

// Activate returns 1 if x >= threshold, else 0.
func (u TLU) Activate(x float64) float64 {
	if x >= u.Threshold {
		return 1
	}
	return 0
}

// Derivative is zero everywhere the function is differentiable.
func (u TLU) Derivative(x float64) float64 {
	return 0
}
