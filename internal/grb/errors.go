package grb

import "errors"

// Sentinel errors returned by container and operation entry points.
// Callers match them with errors.Is; operations never panic on
// user-triggered conditions.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes,
	// including a mask whose shape differs from the output.
	ErrDimensionMismatch = errors.New("grb: dimension mismatch")

	// ErrDuplicateIndex indicates a bulk build with a repeated index
	// and no combining operator.
	ErrDuplicateIndex = errors.New("grb: duplicate index")

	// ErrNoValue indicates extraction of an absent entry. An absent
	// entry is distinct from a stored zero.
	ErrNoValue = errors.New("grb: no value at index")

	// ErrIndexOutOfBounds indicates an index outside [0, dim).
	ErrIndexOutOfBounds = errors.New("grb: index out of bounds")

	// ErrInvalidShape indicates invalid construction dimensions or
	// mismatched index/value slice lengths.
	ErrInvalidShape = errors.New("grb: invalid shape")

	// ErrReadOnlyView indicates an attempt to mutate a transpose view
	// or to use one as an operation output. Views are inputs only.
	ErrReadOnlyView = errors.New("grb: transposed view is read-only")
)
