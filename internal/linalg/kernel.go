package linalg

import (
	"github.com/born-ml/xornet/internal/parallel"
)

// Kernel runs the linear algebra operations with a fixed parallel configuration.
//
// The zero value runs everything sequentially.
type Kernel struct {
	cfg parallel.Config
}

// NewKernel returns a Kernel using cfg for worker fan-out.
func NewKernel(cfg parallel.Config) Kernel {
	return Kernel{cfg: cfg}
}

// Config returns the parallel configuration of the kernel.
func (k Kernel) Config() parallel.Config {
	return k.cfg
}

var defaultKernel = NewKernel(parallel.DefaultConfig())

// Default returns the kernel used by the package-level functions.
func Default() Kernel {
	return defaultKernel
}
