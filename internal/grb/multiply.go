package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
	"github.com/grb-ml/grb/internal/parallel"
)

// The multiply family evaluates w[j] = ⊕ over the intersection of the
// operand supports of products under the semiring's multiply. A result
// entry exists only where that reduction set is non-empty: sparsity is
// structural, so a stored zero is preserved and "no entry" means no
// contributing pair, never a suppressed zero. Work is proportional to
// the nonzero pairs actually examined; values are never densified.

// VxM computes w = u·A under semiring s, gated by mask/accum/descriptor.
func (w *Vector[T]) VxM(mask Mask, accum ops.BinaryOp[T], s ops.Semiring[T], u *Vector[T], a *Matrix[T], d *Descriptor) error {
	if u.size != a.NRows() {
		return fmt.Errorf("%w: vxm input size %d vs matrix rows %d", ErrDimensionMismatch, u.size, a.NRows())
	}
	if w.size != a.NCols() {
		return fmt.Errorf("%w: vxm output size %d vs matrix cols %d", ErrDimensionMismatch, w.size, a.NCols())
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	// Output aliasing is safe: nothing is mutated until resolution
	// swaps in the merged entry set.
	resIx, resVals := vxmCompute(s, u, a)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// MxV computes w = A·u under semiring s.
func (w *Vector[T]) MxV(mask Mask, accum ops.BinaryOp[T], s ops.Semiring[T], a *Matrix[T], u *Vector[T], d *Descriptor) error {
	if u.size != a.NCols() {
		return fmt.Errorf("%w: mxv input size %d vs matrix cols %d", ErrDimensionMismatch, u.size, a.NCols())
	}
	if w.size != a.NRows() {
		return fmt.Errorf("%w: mxv output size %d vs matrix rows %d", ErrDimensionMismatch, w.size, a.NRows())
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	resIx, resVals := mxvCompute(s, a, u)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// MxM computes c = A·B under semiring s via row-wise Gustavson
// expansion, parallel across independent output rows.
func (c *Matrix[T]) MxM(mask Mask, accum ops.BinaryOp[T], s ops.Semiring[T], a, b *Matrix[T], d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if a.NCols() != b.NRows() {
		return fmt.Errorf("%w: mxm inner dims %d vs %d", ErrDimensionMismatch, a.NCols(), b.NRows())
	}
	if c.NRows() != a.NRows() || c.NCols() != b.NCols() {
		return fmt.Errorf("%w: mxm output %dx%d, want %dx%d",
			ErrDimensionMismatch, c.NRows(), c.NCols(), a.NRows(), b.NCols())
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}

	aptr, aind, avals := a.csrLogical()
	bptr, bind, bvals := b.csrLogical()
	n := a.NRows()

	type rowRes struct {
		cols []int
		vals []T
	}
	rows := make([]rowRes, n)
	parallel.For(n, func(i int) {
		var acc map[int]T
		for p := aptr[i]; p < aptr[i+1]; p++ {
			k, av := aind[p], avals[p]
			for q := bptr[k]; q < bptr[k+1]; q++ {
				j := bind[q]
				prod := s.Mul(av, bvals[q])
				if acc == nil {
					acc = make(map[int]T)
				}
				if cur, ok := acc[j]; ok {
					acc[j] = s.Add.Op(cur, prod)
				} else {
					acc[j] = prod
				}
			}
		}
		if len(acc) > 0 {
			rowIx, rowVals := sortedFromMap(acc)
			rows[i] = rowRes{cols: rowIx, vals: rowVals}
		}
	}, execConfig)

	nnz := 0
	for i := range rows {
		nnz += len(rows[i].cols)
	}
	resRows := make([]int, 0, nnz)
	resCols := make([]int, 0, nnz)
	resVals := make([]T, 0, nnz)
	for i := range rows {
		for k := range rows[i].cols {
			resRows = append(resRows, i)
			resCols = append(resCols, rows[i].cols[k])
			resVals = append(resVals, rows[i].vals[k])
		}
	}
	resolveMatrix(c, resRows, resCols, resVals, ms, accum, d.replace())
	return nil
}

// vxmCompute produces the unresolved result entries of u·A. With A
// column-compressed each output position is an independent
// merge-intersection, run in parallel; with A row-compressed the
// support of u is scattered through A's rows instead of converting.
func vxmCompute[T ops.Value](s ops.Semiring[T], u *Vector[T], a *Matrix[T]) ([]int, []T) {
	if a.rowsCompressed() {
		var acc map[int]T
		for k, i := range u.ix {
			minors, vals := a.majorView(i)
			for p, j := range minors {
				prod := s.Mul(u.vals[k], vals[p])
				if acc == nil {
					acc = make(map[int]T)
				}
				if cur, ok := acc[j]; ok {
					acc[j] = s.Add.Op(cur, prod)
				} else {
					acc[j] = prod
				}
			}
		}
		return sortedFromMap(acc)
	}

	ncols := a.NCols()
	type slot struct {
		v  T
		ok bool
	}
	slots := make([]slot, ncols)
	parallel.For(ncols, func(j int) {
		minors, vals := a.majorView(j)
		if v, ok := dot(s, u.ix, u.vals, minors, vals, false); ok {
			slots[j] = slot{v: v, ok: true}
		}
	}, execConfig)

	var ix []int
	var vals []T
	for j := range slots {
		if slots[j].ok {
			ix = append(ix, j)
			vals = append(vals, slots[j].v)
		}
	}
	return ix, vals
}

// mxvCompute produces the unresolved result entries of A·u.
func mxvCompute[T ops.Value](s ops.Semiring[T], a *Matrix[T], u *Vector[T]) ([]int, []T) {
	if !a.rowsCompressed() {
		var acc map[int]T
		for k, j := range u.ix {
			minors, vals := a.majorView(j)
			for p, i := range minors {
				prod := s.Mul(vals[p], u.vals[k])
				if acc == nil {
					acc = make(map[int]T)
				}
				if cur, ok := acc[i]; ok {
					acc[i] = s.Add.Op(cur, prod)
				} else {
					acc[i] = prod
				}
			}
		}
		return sortedFromMap(acc)
	}

	nrows := a.NRows()
	type slot struct {
		v  T
		ok bool
	}
	slots := make([]slot, nrows)
	parallel.For(nrows, func(i int) {
		minors, vals := a.majorView(i)
		if v, ok := dot(s, u.ix, u.vals, minors, vals, true); ok {
			slots[i] = slot{v: v, ok: true}
		}
	}, execConfig)

	var ix []int
	var vals []T
	for i := range slots {
		if slots[i].ok {
			ix = append(ix, i)
			vals = append(vals, slots[i].v)
		}
	}
	return ix, vals
}

// dot merge-intersects two sorted supports and reduces the products
// with the additive monoid. The reduction is seeded with the first
// product rather than the identity, so monoid identities such as +Inf
// or MaxInt64 never enter the arithmetic. matrixLeft selects the
// multiply operand order: A[i,j]⊗u[j] for mxv, u[i]⊗A[i,j] for vxm.
func dot[T ops.Value](s ops.Semiring[T], uIx []int, uVals []T, mIx []int, mVals []T, matrixLeft bool) (T, bool) {
	var acc T
	found := false
	i, j := 0, 0
	for i < len(uIx) && j < len(mIx) {
		switch {
		case uIx[i] < mIx[j]:
			i++
		case uIx[i] > mIx[j]:
			j++
		default:
			var prod T
			if matrixLeft {
				prod = s.Mul(mVals[j], uVals[i])
			} else {
				prod = s.Mul(uVals[i], mVals[j])
			}
			if found {
				acc = s.Add.Op(acc, prod)
			} else {
				acc = prod
				found = true
			}
			i++
			j++
		}
	}
	return acc, found
}
