// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rng provides the seed-once MT19937 uniform generator used to
// initialize weights.
//
// Example:
//
//	src := rng.New()
//	src.Init(42)
//	w, err := src.Sample(-0.5, 0.5)
package rng

import "github.com/born-ml/xornet/internal/rng"

// Source is a seed-once uniform random generator.
type Source = rng.Source

// ErrUninitialized is returned when a Source is sampled before Init.
var ErrUninitialized = rng.ErrUninitialized

// New returns an unseeded Source.
func New() *Source { return rng.New() }
