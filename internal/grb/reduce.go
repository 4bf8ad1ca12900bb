package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// Reductions fold stored entries with a monoid. The fold is seeded with
// the first entry rather than the identity, so empty rows, columns and
// containers yield absent results, never identity values.

// ReduceRows reduces each row of a into w[row].
func (w *Vector[T]) ReduceRows(mask Mask, accum ops.BinaryOp[T], m ops.Monoid[T], a *Matrix[T], d *Descriptor) error {
	if w.size != a.NRows() {
		return fmt.Errorf("%w: reduceRows output size %d vs matrix rows %d", ErrDimensionMismatch, w.size, a.NRows())
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	ptr, _, vals := a.csrLogical()
	resIx, resVals := reduceMajors(m, ptr, vals)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// ReduceColumns reduces each column of a into w[col].
func (w *Vector[T]) ReduceColumns(mask Mask, accum ops.BinaryOp[T], m ops.Monoid[T], a *Matrix[T], d *Descriptor) error {
	if w.size != a.NCols() {
		return fmt.Errorf("%w: reduceColumns output size %d vs matrix cols %d", ErrDimensionMismatch, w.size, a.NCols())
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	ptr, _, vals := a.cscLogical()
	resIx, resVals := reduceMajors(m, ptr, vals)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

func reduceMajors[T ops.Value](m ops.Monoid[T], ptr []int, vals []T) ([]int, []T) {
	var ix []int
	var out []T
	for i := 0; i+1 < len(ptr); i++ {
		lo, hi := ptr[i], ptr[i+1]
		if lo == hi {
			continue
		}
		acc := vals[lo]
		for p := lo + 1; p < hi; p++ {
			acc = m.Op(acc, vals[p])
		}
		ix = append(ix, i)
		out = append(out, acc)
	}
	return ix, out
}

// ReduceVector folds all entries of u into the scalar. An empty input
// leaves the scalar untouched; with an accumulator and a present prior
// value the two are combined, otherwise the fresh reduction overwrites.
func (s *Scalar[T]) ReduceVector(accum ops.BinaryOp[T], m ops.Monoid[T], u *Vector[T]) error {
	if len(u.vals) == 0 {
		return nil
	}
	acc := u.vals[0]
	for _, v := range u.vals[1:] {
		acc = m.Op(acc, v)
	}
	s.accumulate(accum, acc)
	return nil
}

// ReduceMatrix folds all entries of a into the scalar.
func (s *Scalar[T]) ReduceMatrix(accum ops.BinaryOp[T], m ops.Monoid[T], a *Matrix[T]) error {
	if len(a.vals) == 0 {
		return nil
	}
	acc := a.vals[0]
	for _, v := range a.vals[1:] {
		acc = m.Op(acc, v)
	}
	s.accumulate(accum, acc)
	return nil
}

func (s *Scalar[T]) accumulate(accum ops.BinaryOp[T], t T) {
	if accum != nil && s.present {
		s.val = accum(s.val, t)
		return
	}
	s.val = t
	s.present = true
}
