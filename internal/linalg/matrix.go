package linalg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/xornet/internal/parallel"
)

// Matrix is a rectangular sequence of row vectors.
//
// For a weight matrix, rows are output units and columns are input units.
type Matrix []Vector

// NewMatrix returns a rows x cols zero matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make(Vector, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the rows, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that every row has the same length.
func (m Matrix) Validate() error {
	cols := m.Cols()
	for _, row := range m {
		if len(row) != cols {
			return mismatch("matrix", "columns", cols, len(row))
		}
	}
	return nil
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}
	return out
}

// AddMatrix returns m1 + m2.
func (k Kernel) AddMatrix(m1, m2 Matrix) (Matrix, error) {
	if err := sameShape("add", m1, m2); err != nil {
		return nil, err
	}
	return k.rowwise(m1, func(i int, dst Vector) {
		floats.AddTo(dst, m1[i], m2[i])
	}), nil
}

// SubMatrix returns m1 - m2.
func (k Kernel) SubMatrix(m1, m2 Matrix) (Matrix, error) {
	if err := sameShape("sub", m1, m2); err != nil {
		return nil, err
	}
	return k.rowwise(m1, func(i int, dst Vector) {
		floats.SubTo(dst, m1[i], m2[i])
	}), nil
}

// ScaleMatrix returns m * c.
func (k Kernel) ScaleMatrix(m Matrix, c float64) Matrix {
	return k.rowwise(m, func(i int, dst Vector) {
		floats.ScaleTo(dst, c, m[i])
	})
}

// MatVecMul returns the vector whose r-th element is Dot(m[r], v).
func (k Kernel) MatVecMul(m Matrix, v Vector) (Vector, error) {
	for _, row := range m {
		if len(row) != len(v) {
			return nil, mismatch("matvec", "columns", len(v), len(row))
		}
	}
	out := make(Vector, len(m))
	parallel.For(len(m), func(r int) {
		out[r] = floats.Dot(m[r], v)
	}, k.cfg)
	return out, nil
}

// Outer returns the matrix with element [i][j] = a[i] * b[j].
func (k Kernel) Outer(a, b Vector) Matrix {
	if len(a) == 0 || len(b) == 0 {
		return NewMatrix(len(a), len(b))
	}
	var d mat.Dense
	d.Outer(1, mat.NewVecDense(len(a), a.Clone()), mat.NewVecDense(len(b), b.Clone()))

	out := make(Matrix, len(a))
	parallel.For(len(a), func(i int) {
		out[i] = Vector(mat.Row(nil, i, &d))
	}, k.cfg)
	return out
}

// rowwise allocates a matrix shaped like m and fills each row with f.
func (k Kernel) rowwise(m Matrix, f func(i int, dst Vector)) Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make(Vector, len(m[i]))
	}
	parallel.For(len(m), func(i int) {
		f(i, out[i])
	}, k.cfg)
	return out
}

func sameShape(op string, m1, m2 Matrix) error {
	if len(m1) != len(m2) {
		return mismatch(op, "rows", len(m1), len(m2))
	}
	for i := range m1 {
		if len(m1[i]) != len(m2[i]) {
			return mismatch(op, "columns", len(m1[i]), len(m2[i]))
		}
	}
	return nil
}

// AddMatrix returns m1 + m2 using the default kernel.
func AddMatrix(m1, m2 Matrix) (Matrix, error) { return defaultKernel.AddMatrix(m1, m2) }

// SubMatrix returns m1 - m2 using the default kernel.
func SubMatrix(m1, m2 Matrix) (Matrix, error) { return defaultKernel.SubMatrix(m1, m2) }

// ScaleMatrix returns m * c using the default kernel.
func ScaleMatrix(m Matrix, c float64) Matrix { return defaultKernel.ScaleMatrix(m, c) }

// MatVecMul returns m * v using the default kernel.
func MatVecMul(m Matrix, v Vector) (Vector, error) { return defaultKernel.MatVecMul(m, v) }

// Outer returns the outer product of a and b using the default kernel.
func Outer(a, b Vector) Matrix { return defaultKernel.Outer(a, b) }
