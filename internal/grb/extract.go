package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// Extract reads the sub-vector u[indices] into w. A nil index slice
// selects all of u (the GrB_ALL analog). Output position k receives
// u[indices[k]] when that entry is stored.
func (w *Vector[T]) Extract(mask Mask, accum ops.BinaryOp[T], u *Vector[T], indices []int, d *Descriptor) error {
	if indices == nil {
		indices = allIndices(u.size)
	}
	if w.size != len(indices) {
		return fmt.Errorf("%w: extract output size %d vs %d indices", ErrDimensionMismatch, w.size, len(indices))
	}
	for _, i := range indices {
		if i < 0 || i >= u.size {
			return fmt.Errorf("%w: extract index %d, size %d", ErrIndexOutOfBounds, i, u.size)
		}
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	var resIx []int
	var resVals []T
	for k, i := range indices {
		if pos, ok := u.find(i); ok {
			resIx = append(resIx, k)
			resVals = append(resVals, u.vals[pos])
		}
	}
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// Extract reads the sub-matrix a[rows, cols] into c. Nil row/col
// slices select the full range.
func (c *Matrix[T]) Extract(mask Mask, accum ops.BinaryOp[T], a *Matrix[T], rows, cols []int, d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if rows == nil {
		rows = allIndices(a.NRows())
	}
	if cols == nil {
		cols = allIndices(a.NCols())
	}
	if c.NRows() != len(rows) || c.NCols() != len(cols) {
		return fmt.Errorf("%w: extract output %dx%d vs %dx%d indices",
			ErrDimensionMismatch, c.NRows(), c.NCols(), len(rows), len(cols))
	}
	for _, r := range rows {
		if r < 0 || r >= a.NRows() {
			return fmt.Errorf("%w: extract row %d, bounds %d", ErrIndexOutOfBounds, r, a.NRows())
		}
	}
	for _, cc := range cols {
		if cc < 0 || cc >= a.NCols() {
			return fmt.Errorf("%w: extract col %d, bounds %d", ErrIndexOutOfBounds, cc, a.NCols())
		}
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}

	ptr, ind, vals := a.csrLogical()
	var rr, rc []int
	var rv []T
	rowVals := make(map[int]T)
	for rk, r := range rows {
		clear(rowVals)
		for p := ptr[r]; p < ptr[r+1]; p++ {
			rowVals[ind[p]] = vals[p]
		}
		if len(rowVals) == 0 {
			continue
		}
		for ck, cc := range cols {
			if v, ok := rowVals[cc]; ok {
				rr = append(rr, rk)
				rc = append(rc, ck)
				rv = append(rv, v)
			}
		}
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}

func allIndices(n int) []int {
	ix := make([]int, n)
	for i := range ix {
		ix[i] = i
	}
	return ix
}
