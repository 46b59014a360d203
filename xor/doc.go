// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package xor trains a two-layer feedforward network on the XOR truth table.
//
// # Overview
//
// The network maps 2 inputs through a tanh hidden layer to a single sigmoid
// output and is trained with full-batch gradient descent on binary
// cross-entropy. An Engine owns the parameters and exposes one epoch at a
// time so callers control reporting.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xornet/rng"
//	    "github.com/born-ml/xornet/xor"
//	)
//
//	func main() {
//	    cfg := xor.DefaultConfig()
//	    engine, err := xor.NewEngine(cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := engine.Initialize(rng.New(), 42); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for range cfg.Epochs {
//	        res, err := engine.TrainEpoch()
//	        ...
//	    }
//
//	    p, _ := engine.Predict(linalg.Vector{1, 0}) // close to 1
//	}
package xor
