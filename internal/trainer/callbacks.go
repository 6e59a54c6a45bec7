package trainer

import (
	"fmt"
	"math"

	"github.com/ntoll/sann/internal/ann"
)

// Callback defines the interface for training callbacks. Callbacks are
// purely observational: training results do not depend on them.
type Callback interface {
	OnTrainBegin(n *ann.Network)
	OnEpochEnd(epoch int, mse float64, n *ann.Network)
	OnTrainEnd(n *ann.Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *ann.Network)                       {}
func (c BaseCallback) OnEpochEnd(epoch int, mse float64, n *ann.Network) {}
func (c BaseCallback) OnTrainEnd(n *ann.Network)                         {}

// LogFunc adapts a plain string-logging function to the Callback
// interface, for callers that just want progress lines.
type LogFunc func(msg string)

func (f LogFunc) OnTrainBegin(n *ann.Network) {
	f("training started")
}

func (f LogFunc) OnEpochEnd(epoch int, mse float64, n *ann.Network) {
	f(fmt.Sprintf("epoch %d: mse=%.6f", epoch, mse))
}

func (f LogFunc) OnTrainEnd(n *ann.Network) {
	f("training complete")
}

// Logger prints training progress to the console every Interval epochs.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, mse float64, n *ann.Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: mse = %.6f\n", epoch, mse)
	}
}

// EarlyStopping ends training when the epoch error has stopped improving.
type EarlyStopping struct {
	BaseCallback
	Patience int
	MinDelta float64

	bestMSE      float64
	numBadEpochs int
	Stopped      bool
}

// NewEarlyStopping creates an EarlyStopping callback that stops training
// after patience epochs without an improvement of at least minDelta.
func NewEarlyStopping(patience int, minDelta float64) *EarlyStopping {
	return &EarlyStopping{
		Patience: patience,
		MinDelta: minDelta,
		bestMSE:  math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, mse float64, n *ann.Network) {
	if mse < c.bestMSE-c.MinDelta {
		c.bestMSE = mse
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		c.Stopped = true
	}
}
