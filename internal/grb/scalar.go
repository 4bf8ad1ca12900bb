package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// Scalar holds a single optional typed value, used as a reduction
// target or accumulator seed. An empty Scalar has no value, which is
// distinct from holding zero.
type Scalar[T ops.Value] struct {
	val     T
	present bool
}

// NewScalar creates an empty Scalar.
func NewScalar[T ops.Value]() *Scalar[T] { return &Scalar[T]{} }

// SetValue stores a value.
func (s *Scalar[T]) SetValue(v T) {
	s.val = v
	s.present = true
}

// Clear removes the stored value.
func (s *Scalar[T]) Clear() {
	var zero T
	s.val = zero
	s.present = false
}

// NVals returns 1 if a value is stored, 0 otherwise.
func (s *Scalar[T]) NVals() int {
	if s.present {
		return 1
	}
	return 0
}

// Value returns the stored value, or ErrNoValue when empty.
func (s *Scalar[T]) Value() (T, error) {
	if !s.present {
		var zero T
		return zero, fmt.Errorf("%w: empty scalar", ErrNoValue)
	}
	return s.val, nil
}

// DType returns the runtime element type.
func (s *Scalar[T]) DType() ops.DataType { return ops.TypeOf[T]() }
