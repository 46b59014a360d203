package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/xornet/internal/linalg"
)

// Sampler draws uniform values in [min, max). *rng.Source implements it.
type Sampler interface {
	Sample(min, max float64) (float64, error)
}

// XavierLimit returns the Xavier (Glorot) uniform bound sqrt(6 / (fanIn + fanOut)).
//
// Weights drawn from U(-limit, limit) keep the variance of activations
// roughly constant across layers.
func XavierLimit(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// Xavier creates a rows x cols weight matrix with values drawn from
// U(-bound, bound).
//
// Values are drawn in row-major order, so a seeded sampler always yields the
// same matrix.
//
// Parameters:
//   - rows: Number of output units
//   - cols: Number of input units
//   - bound: Symmetric bound, usually XavierLimit(cols, rows)
//   - src: Source of uniform values
//
// Returns an error if the sampler fails (e.g. it was never seeded).
func Xavier(rows, cols int, bound float64, src Sampler) (linalg.Matrix, error) {
	w := linalg.NewMatrix(rows, cols)
	for i := range w {
		for j := range w[i] {
			v, err := src.Sample(-bound, bound)
			if err != nil {
				return nil, fmt.Errorf("xavier init [%d][%d]: %w", i, j, err)
			}
			w[i][j] = v
		}
	}
	return w, nil
}

// Zeros creates a zero vector, used for bias initialization.
func Zeros(n int) linalg.Vector {
	return linalg.NewVector(n)
}
