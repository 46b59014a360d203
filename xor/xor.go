// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package xor

import (
	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/xor"
)

// Network dimensions fixed by the dataset.
const (
	InputSize  = xor.InputSize
	OutputSize = xor.OutputSize
)

var (
	// ErrNotInitialized is returned when the engine is used before Initialize.
	ErrNotInitialized = xor.ErrNotInitialized
	// ErrAlreadyInitialized is returned when Initialize is called a second time.
	ErrAlreadyInitialized = xor.ErrAlreadyInitialized
	// ErrInvalidConfig is returned for configurations that cannot be trained with.
	ErrInvalidConfig = config.ErrInvalidConfig
)

// Config captures the runtime knobs for a training run.
type Config = config.Config

// DefaultConfig returns 5000 epochs at learning rate 0.5 with 4 hidden units.
func DefaultConfig() *Config { return config.Default() }

// LoadConfig reads a YAML config on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// Sample is one row of the training set.
type Sample = xor.Sample

// Dataset returns the XOR truth table in training order.
func Dataset() []Sample { return xor.Dataset() }

// Engine trains the network one epoch at a time.
type Engine = xor.Engine

// NewEngine validates cfg and returns an uninitialized engine.
func NewEngine(cfg *Config) (*Engine, error) { return xor.NewEngine(cfg) }

// EpochResult summarizes one call to Engine.TrainEpoch.
type EpochResult = xor.EpochResult

// Prediction is the network output for one sample.
type Prediction = xor.Prediction

// Parameters is a snapshot of the network parameters.
type Parameters = xor.Parameters
