// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/nn"
)

// Eps is the probability clamp used by BCE.
const Eps = nn.Eps

// Activations

// Activation pairs an elementwise function with its derivative.
type Activation = nn.Activation

var (
	// SigmoidActivation is the logistic function.
	SigmoidActivation = nn.SigmoidActivation
	// TanhActivation is the hyperbolic tangent.
	TanhActivation = nn.TanhActivation
	// ReLUActivation is max(0, x).
	ReLUActivation = nn.ReLUActivation
)

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 { return nn.Sigmoid(x) }

// SigmoidDerivative returns σ(x)(1-σ(x)).
func SigmoidDerivative(x float64) float64 { return nn.SigmoidDerivative(x) }

// Tanh returns tanh(x).
func Tanh(x float64) float64 { return nn.Tanh(x) }

// TanhDerivative returns 1 - tanh²(x).
func TanhDerivative(x float64) float64 { return nn.TanhDerivative(x) }

// ReLU returns max(0, x).
func ReLU(x float64) float64 { return nn.ReLU(x) }

// ReLUDerivative returns 1 for x > 0 and 0 otherwise.
func ReLUDerivative(x float64) float64 { return nn.ReLUDerivative(x) }

// Losses

// BCE returns the binary cross-entropy of a probability prediction.
func BCE(target, pred float64) float64 { return nn.BCE(target, pred) }

// BCEDelta returns ∂BCE/∂logit when pred = σ(logit).
func BCEDelta(target, pred float64) float64 { return nn.BCEDelta(target, pred) }

// BCEWithLogits returns the binary cross-entropy of σ(logit).
func BCEWithLogits(logit, target float64) float64 { return nn.BCEWithLogits(logit, target) }

// BCEWithLogitsDelta returns ∂BCEWithLogits/∂logit.
func BCEWithLogitsDelta(logit, target float64) float64 { return nn.BCEWithLogitsDelta(logit, target) }

// Layers

// Sampler draws uniform values in [min, max); the upper bound is exclusive.
type Sampler = nn.Sampler

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a layer with weights drawn from U(-bound, bound) and zero biases.
//
// Example:
//
//	layer, err := nn.NewDense(2, 4, nn.XavierLimit(2, 4), src)
func NewDense(in, out int, bound float64, src Sampler) (*Dense, error) {
	return nn.NewDense(in, out, bound, src)
}

// XavierLimit returns sqrt(6 / (fanIn + fanOut)).
func XavierLimit(fanIn, fanOut int) float64 { return nn.XavierLimit(fanIn, fanOut) }

// Xavier returns a rows×cols matrix drawn from U(-bound, bound), row by row.
func Xavier(rows, cols int, bound float64, src Sampler) (linalg.Matrix, error) {
	return nn.Xavier(rows, cols, bound, src)
}

// WeightsGradient returns delta ⊗ input.
func WeightsGradient(delta, input linalg.Vector) linalg.Matrix {
	return nn.WeightsGradient(delta, input)
}
