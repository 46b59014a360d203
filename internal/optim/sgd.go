package optim

import (
	"fmt"

	"github.com/born-ml/xornet/internal/linalg"
)

// SGD implements plain full-batch gradient descent.
//
// Update rule:
//
//	param = param - lr * (gradient / count)
//
// where gradient is the sum of per-sample gradients and count the number of
// samples it was accumulated over.
type SGD struct {
	lr     float64
	kernel linalg.Kernel
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer running its arithmetic on kernel.
func NewSGD(config SGDConfig, kernel linalg.Kernel) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:     config.LR,
		kernel: kernel,
	}
}

// StepMatrix returns param - lr * (grad / count).
func (s *SGD) StepMatrix(param, grad linalg.Matrix, count int) (linalg.Matrix, error) {
	if count <= 0 {
		return nil, ErrEmptyBatch
	}
	mean := s.kernel.ScaleMatrix(grad, 1/float64(count))
	updated, err := s.kernel.SubMatrix(param, s.kernel.ScaleMatrix(mean, s.lr))
	if err != nil {
		return nil, fmt.Errorf("sgd step: %w", err)
	}
	return updated, nil
}

// StepVector returns param - lr * (grad / count).
func (s *SGD) StepVector(param, grad linalg.Vector, count int) (linalg.Vector, error) {
	if count <= 0 {
		return nil, ErrEmptyBatch
	}
	mean := s.kernel.Scale(grad, 1/float64(count))
	updated, err := s.kernel.Sub(param, s.kernel.Scale(mean, s.lr))
	if err != nil {
		return nil, fmt.Errorf("sgd step: %w", err)
	}
	return updated, nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

var _ Optimizer = (*SGD)(nil)
