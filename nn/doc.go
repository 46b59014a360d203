// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the activations, losses and dense layer used by xornet.
//
// # Overview
//
// This package contains:
//   - Sigmoid, Tanh and ReLU with their derivatives
//   - Binary cross-entropy on probabilities and on logits
//   - Dense layers with Xavier/Glorot uniform initialization
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xornet/linalg"
//	    "github.com/born-ml/xornet/nn"
//	    "github.com/born-ml/xornet/rng"
//	)
//
//	func main() {
//	    src := rng.New()
//	    src.Init(42)
//
//	    layer, err := nn.NewDense(2, 4, nn.XavierLimit(2, 4), src)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    z, _ := layer.Logits(linalg.Default(), linalg.Vector{1, 0})
//	    a := nn.TanhActivation.Apply(z)
//	}
//
// # Losses
//
// BCEWithLogits is the numerically stable form used for training:
//
//	loss  = max(z, 0) - z*t + log(1 + exp(-|z|))
//	delta = sigmoid(z) - t
//
// BCE clamps its probability argument to [Eps, 1-Eps] before taking logs.
package nn
