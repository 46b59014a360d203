// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// ErrEmptyBatch is returned when a step is requested for zero samples.
var ErrEmptyBatch = optim.ErrEmptyBatch

// SGD (Stochastic Gradient Descent)

// SGD represents the full-batch gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(
//	    optim.SGDConfig{LR: 0.5},
//	    linalg.Default(),
//	)
func NewSGD(config SGDConfig, kernel linalg.Kernel) *SGD {
	return optim.NewSGD(config, kernel)
}
