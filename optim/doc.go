// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the update rule used to train xornet.
//
// # Overview
//
// This package contains:
//   - SGD: full-batch gradient descent over accumulated gradients
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xornet/linalg"
//	    "github.com/born-ml/xornet/optim"
//	)
//
//	func main() {
//	    sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5}, linalg.Default())
//
//	    // After accumulating gradients over n samples:
//	    w, err := sgd.StepMatrix(w, gradW, n)
//	    b, err := sgd.StepVector(b, gradB, n)
//	}
//
// Steps never modify their inputs; they return updated copies.
package optim
