// Package nn implements the scalar activations, losses and dense layer
// used to build the XOR network.
//
// This package provides:
//   - Activations: Sigmoid, Tanh, ReLU and their derivatives
//   - Loss functions: BCE on probabilities, BCEWithLogits on logits
//   - Initialization: XavierLimit and uniform Xavier draws
//   - Dense: weights, biases and the affine forward step
//
// Everything here is a pure function of its arguments except Xavier, which
// consumes values from a Sampler in row-major order.
package nn
