// Copyright 2026 The grb Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grb provides the public API of the grb sparse linear algebra
// core: typed sparse Vector/Matrix/Scalar containers and GraphBLAS-style
// masked, accumulated operations over pluggable semirings.
//
// Example:
//
//	v, _ := grb.NewVector[int64](7)
//	_ = v.SetElement(1, 0)
//	a, _ := grb.NewMatrix[int64](7, 7, grb.RowMajor)
//	// ... build a, then relax distances:
//	_ = v.VxM(nil, grb.Min[int64](), grb.MinPlus[int64](), v, a, nil)
package grb

import (
	"fmt"

	igrb "github.com/grb-ml/grb/internal/grb"
	"github.com/grb-ml/grb/internal/ops"
	"github.com/grb-ml/grb/internal/parallel"
)

// Value is the constraint for supported container element types.
// Supported types: bool, int32, int64, uint8, float32, float64.
type Value = ops.Value

// Number is the subset of Value supporting arithmetic operators.
type Number = ops.Number

// DataType represents the runtime element type of a container or a
// registered operator's domain.
type DataType = ops.DataType

// Data type constants.
const (
	Bool    DataType = ops.Bool
	Int32   DataType = ops.Int32
	Int64   DataType = ops.Int64
	Uint8   DataType = ops.Uint8
	Float32 DataType = ops.Float32
	Float64 DataType = ops.Float64
)

// TypeOf infers the DataType of a generic element type.
func TypeOf[T Value]() DataType { return ops.TypeOf[T]() }

// Order selects the compressed storage direction of a Matrix, fixed at
// creation. It determines which multiply direction is native.
type Order = igrb.Order

// Storage order constants.
const (
	RowMajor Order = igrb.RowMajor
	ColMajor Order = igrb.ColMajor
)

// Vector is a typed sparse vector over a fixed dense index range.
type Vector[T Value] = igrb.Vector[T]

// Matrix is a typed sparse matrix with compressed row or column storage.
type Matrix[T Value] = igrb.Matrix[T]

// Scalar holds a single optional typed value.
type Scalar[T Value] = igrb.Scalar[T]

// Descriptor carries per-call modifier flags (mask complement, value
// mask, replace). A nil Descriptor selects the defaults.
type Descriptor = igrb.Descriptor

// Mask gates which output positions an operation may write. Any Vector
// or Matrix matching the output shape can serve as a mask.
type Mask = igrb.Mask

// Config controls parallel kernel execution; see Configure.
type Config = parallel.Config

// Errors (matched with errors.Is).
var (
	ErrDimensionMismatch     = igrb.ErrDimensionMismatch
	ErrDuplicateIndex        = igrb.ErrDuplicateIndex
	ErrNoValue               = igrb.ErrNoValue
	ErrIndexOutOfBounds      = igrb.ErrIndexOutOfBounds
	ErrInvalidShape          = igrb.ErrInvalidShape
	ErrReadOnlyView          = igrb.ErrReadOnlyView
	ErrSemiringType          = ops.ErrSemiringType
	ErrUninitializedOperator = ops.ErrUninitializedOperator
	ErrOperatorExists        = ops.ErrOperatorExists
)

// NewVector creates an empty Vector with the given size.
func NewVector[T Value](size int) (*Vector[T], error) {
	return igrb.NewVector[T](size)
}

// NewMatrix creates an empty Matrix with the given bounds and storage
// order.
func NewMatrix[T Value](nrows, ncols int, order Order) (*Matrix[T], error) {
	return igrb.NewMatrix[T](nrows, ncols, order)
}

// NewScalar creates an empty Scalar.
func NewScalar[T Value]() *Scalar[T] { return igrb.NewScalar[T]() }

// VectorFromValues creates a Vector of the given size and bulk-loads
// the entries. A negative size is inferred as max(indices)+1.
func VectorFromValues[T Value](indices []int, values []T, size int, dup BinaryOp[T]) (*Vector[T], error) {
	if size < 0 {
		if len(indices) == 0 {
			return nil, fmt.Errorf("%w: cannot infer size from empty indices", ErrInvalidShape)
		}
		for _, i := range indices {
			if i >= size {
				size = i
			}
		}
		size++
	}
	v, err := igrb.NewVector[T](size)
	if err != nil {
		return nil, err
	}
	if err := v.Build(indices, values, dup); err != nil {
		return nil, err
	}
	return v, nil
}

// MatrixFromValues creates a Matrix with the given bounds and storage
// order and bulk-loads the entries. Negative bounds are inferred from
// the maximum indices.
func MatrixFromValues[T Value](rows, cols []int, values []T, nrows, ncols int, order Order, dup BinaryOp[T]) (*Matrix[T], error) {
	if nrows < 0 || ncols < 0 {
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: cannot infer bounds from empty indices", ErrInvalidShape)
		}
		if nrows < 0 {
			for _, r := range rows {
				if r >= nrows {
					nrows = r
				}
			}
			nrows++
		}
		if ncols < 0 {
			for _, c := range cols {
				if c >= ncols {
					ncols = c
				}
			}
			ncols++
		}
	}
	m, err := igrb.NewMatrix[T](nrows, ncols, order)
	if err != nil {
		return nil, err
	}
	if err := m.Build(rows, cols, values, dup); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure sets the process-wide parallel kernel configuration. It may
// be called at most once, before any operation runs; a second call
// panics.
func Configure(cfg Config) { igrb.Configure(cfg) }

// DefaultConfig returns the default kernel configuration.
func DefaultConfig() Config { return parallel.DefaultConfig() }
