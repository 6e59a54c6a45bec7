// Package ann provides unit tests for the network model.
package ann

import (
	"errors"
	"math/rand"
	"testing"
)

// TestNewShape checks the created network matches its structure.
func TestNewShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n, err := New(rng, 2, 3, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(n.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(n.Layers))
	}
	if len(n.Layers[0]) != 3 {
		t.Errorf("hidden layer has %d nodes, want 3", len(n.Layers[0]))
	}
	if len(n.Layers[1]) != 1 {
		t.Errorf("output layer has %d nodes, want 1", len(n.Layers[1]))
	}
	for j, node := range n.Layers[0] {
		if len(node.Weights) != 2 {
			t.Errorf("hidden node %d has %d weights, want 2", j, len(node.Weights))
		}
	}
	for j, node := range n.Layers[1] {
		if len(node.Weights) != 3 {
			t.Errorf("output node %d has %d weights, want 3", j, len(node.Weights))
		}
	}
	if n.Fitness != nil {
		t.Errorf("new network should have unset fitness")
	}
}

// TestNewInitRange checks weights and biases are drawn from [-1, 1].
func TestNewInitRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n, err := New(rng, 10, 20, 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, layer := range n.Layers {
		for _, node := range layer {
			if node.Bias < -1 || node.Bias > 1 {
				t.Fatalf("bias %v outside [-1, 1]", node.Bias)
			}
			for _, w := range node.Weights {
				if w < -1 || w > 1 {
					t.Fatalf("weight %v outside [-1, 1]", w)
				}
			}
		}
	}
}

// TestNewInvalidStructure tests rejection of malformed layer sequences.
func TestNewInvalidStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name      string
		structure []int
	}{
		{"empty", nil},
		{"single layer", []int{3}},
		{"zero size", []int{2, 0, 1}},
		{"negative size", []int{2, -3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(rng, tt.structure...)
			if !errors.Is(err, ErrInvalidStructure) {
				t.Errorf("New(%v) error = %v, want ErrInvalidStructure", tt.structure, err)
			}
		})
	}
}

// TestNewDeterministic checks that a seed fixes the initialization.
func TestNewDeterministic(t *testing.T) {
	a, err := New(rand.New(rand.NewSource(42)), 3, 4, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(rand.New(rand.NewSource(42)), 3, 4, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := range a.Layers {
		for j := range a.Layers[i] {
			if a.Layers[i][j].Bias != b.Layers[i][j].Bias {
				t.Fatalf("biases differ at layer %d node %d", i, j)
			}
			for k := range a.Layers[i][j].Weights {
				if a.Layers[i][j].Weights[k] != b.Layers[i][j].Weights[k] {
					t.Fatalf("weights differ at layer %d node %d weight %d", i, j, k)
				}
			}
		}
	}
}

// TestClone checks the copy is deep and independent.
func TestClone(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n, err := New(rng, 2, 2, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	n.SetFitness(3.5)

	clone := n.Clone()

	if !n.SameStructure(clone) {
		t.Fatalf("clone structure differs")
	}
	if clone.Fitness == nil || *clone.Fitness != 3.5 {
		t.Errorf("clone fitness not copied")
	}

	original := n.Layers[0][0].Weights[0]
	clone.Layers[0][0].Weights[0] = 99.0
	clone.SetFitness(-1)
	if n.Layers[0][0].Weights[0] != original {
		t.Errorf("mutating clone changed the original's weights")
	}
	if *n.Fitness != 3.5 {
		t.Errorf("mutating clone changed the original's fitness")
	}
}

// TestSameStructure tests structure comparison.
func TestSameStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a, _ := New(rng, 2, 3, 1)
	b, _ := New(rng, 2, 3, 1)
	c, _ := New(rng, 2, 4, 1)
	d, _ := New(rng, 2, 3, 1, 1)

	if !a.SameStructure(b) {
		t.Errorf("identical structures reported as different")
	}
	if a.SameStructure(c) {
		t.Errorf("different layer sizes reported as same")
	}
	if a.SameStructure(d) {
		t.Errorf("different layer counts reported as same")
	}
}

// TestNumInputsOutputs tests the input and output layer sizes.
func TestNumInputsOutputs(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	n, _ := New(rng, 4, 7, 3)

	if got := n.NumInputs(); got != 4 {
		t.Errorf("NumInputs = %d, want 4", got)
	}
	if got := n.NumOutputs(); got != 3 {
		t.Errorf("NumOutputs = %d, want 3", got)
	}
}
