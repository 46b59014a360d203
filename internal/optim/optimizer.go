// Package optim implements the parameter update rule used during training.
//
// Gradients are accumulated over the whole dataset and applied once per
// epoch:
//
//	param = param - lr * (accumulatedGradient / sampleCount)
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5}, linalg.Default())
//
//	for epoch := range epochs {
//	    grads := accumulate(network, dataset)
//	    w, err := sgd.StepMatrix(w, grads.Weights, len(dataset))
//	    ...
//	}
package optim

import (
	"errors"

	"github.com/born-ml/xornet/internal/linalg"
)

// ErrEmptyBatch is returned when a step is requested for zero samples.
var ErrEmptyBatch = errors.New("optim: sample count must be > 0")

// Optimizer is the interface implemented by update rules.
//
// Steps return the updated parameter as a new container; callers decide
// whether to replace their parameters with it.
type Optimizer interface {
	// StepMatrix returns the updated weight matrix.
	StepMatrix(param, grad linalg.Matrix, count int) (linalg.Matrix, error)

	// StepVector returns the updated bias vector.
	StepVector(param, grad linalg.Vector, count int) (linalg.Vector, error)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
