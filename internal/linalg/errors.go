package linalg

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when operands have incompatible dimensions.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes which operation rejected its operands and why.
type ShapeError struct {
	Op   string // Operation name (e.g. "dot", "matvec")
	Dim  string // Dimension compared: "length", "rows" or "columns"
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s %d != %d", e.Op, ErrShapeMismatch, e.Dim, e.Got, e.Want)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func mismatch(op, dim string, want, got int) error {
	return &ShapeError{Op: op, Dim: dim, Want: want, Got: got}
}
