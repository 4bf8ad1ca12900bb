package grb

import (
	"fmt"
	"sort"

	"github.com/grb-ml/grb/internal/ops"
)

// Vector is a typed sparse vector over the dense index range [0, size).
// Indices with stored entries are kept sorted and unique; the size is
// immutable after creation.
type Vector[T ops.Value] struct {
	size int
	ix   []int
	vals []T
}

// NewVector creates an empty Vector with the given size.
func NewVector[T ops.Value](size int) (*Vector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: vector size %d", ErrInvalidShape, size)
	}
	return &Vector[T]{size: size}, nil
}

// Size returns the dense index range bound.
func (v *Vector[T]) Size() int { return v.size }

// NVals returns the number of stored entries.
func (v *Vector[T]) NVals() int { return len(v.ix) }

// DType returns the runtime element type.
func (v *Vector[T]) DType() ops.DataType { return ops.TypeOf[T]() }

// Clear removes all stored entries without changing the size.
func (v *Vector[T]) Clear() {
	v.ix = v.ix[:0]
	v.vals = v.vals[:0]
}

// Dup returns a deep copy of the vector.
func (v *Vector[T]) Dup() *Vector[T] {
	w := &Vector[T]{size: v.size, ix: make([]int, len(v.ix)), vals: make([]T, len(v.vals))}
	copy(w.ix, v.ix)
	copy(w.vals, v.vals)
	return w
}

// String returns a compact description, e.g. "Vector 3/7:int64".
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector %d/%d:%s", v.NVals(), v.size, v.DType())
}

// find returns the slice position of index i and whether it is stored.
func (v *Vector[T]) find(i int) (int, bool) {
	pos := sort.SearchInts(v.ix, i)
	return pos, pos < len(v.ix) && v.ix[pos] == i
}

// SetElement inserts or overwrites the entry at index i.
func (v *Vector[T]) SetElement(i int, val T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.size)
	}
	pos, ok := v.find(i)
	if ok {
		v.vals[pos] = val
		return nil
	}
	v.ix = append(v.ix, 0)
	copy(v.ix[pos+1:], v.ix[pos:])
	v.ix[pos] = i
	var zero T
	v.vals = append(v.vals, zero)
	copy(v.vals[pos+1:], v.vals[pos:])
	v.vals[pos] = val
	return nil
}

// RemoveElement deletes the entry at index i if present. Removing an
// absent entry is not an error.
func (v *Vector[T]) RemoveElement(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.size)
	}
	pos, ok := v.find(i)
	if !ok {
		return nil
	}
	v.ix = append(v.ix[:pos], v.ix[pos+1:]...)
	v.vals = append(v.vals[:pos], v.vals[pos+1:]...)
	return nil
}

// ExtractElement returns the stored value at index i, or ErrNoValue if
// the entry is absent.
func (v *Vector[T]) ExtractElement(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.size)
	}
	pos, ok := v.find(i)
	if !ok {
		return zero, fmt.Errorf("%w: index %d", ErrNoValue, i)
	}
	return v.vals[pos], nil
}

// Build bulk-loads the full entry set, replacing any existing content.
// Repeated indices are combined with dup; without dup they fail with
// ErrDuplicateIndex. All preconditions are checked before any mutation,
// so a failed Build leaves the vector untouched.
func (v *Vector[T]) Build(indices []int, values []T, dup ops.BinaryOp[T]) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: %d indices, %d values", ErrInvalidShape, len(indices), len(values))
	}
	for _, i := range indices {
		if i < 0 || i >= v.size {
			return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.size)
		}
	}
	type pair struct {
		i int
		v T
	}
	pairs := make([]pair, len(indices))
	for k, i := range indices {
		pairs[k] = pair{i: i, v: values[k]}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].i < pairs[b].i })

	ix := make([]int, 0, len(pairs))
	vals := make([]T, 0, len(pairs))
	for _, p := range pairs {
		if n := len(ix); n > 0 && ix[n-1] == p.i {
			if dup == nil {
				return fmt.Errorf("%w: index %d", ErrDuplicateIndex, p.i)
			}
			vals[n-1] = dup(vals[n-1], p.v)
			continue
		}
		ix = append(ix, p.i)
		vals = append(vals, p.v)
	}
	v.ix, v.vals = ix, vals
	return nil
}

// ToValues returns the stored entries as parallel index/value slices in
// ascending index order. The slices are copies.
func (v *Vector[T]) ToValues() ([]int, []T) {
	ix := make([]int, len(v.ix))
	vals := make([]T, len(v.vals))
	copy(ix, v.ix)
	copy(vals, v.vals)
	return ix, vals
}

// setEntries replaces the entry set with already-sorted unique slices.
func (v *Vector[T]) setEntries(ix []int, vals []T) {
	v.ix, v.vals = ix, vals
}
