package grb

import (
	"fmt"
	"sort"

	"github.com/grb-ml/grb/internal/ops"
)

// Assign writes the entries of u into w at the listed target positions:
// w[indices[k]] receives u[k]. A nil index slice targets all of w.
// Target indices must be unique; duplicates fail with
// ErrDuplicateIndex before any mutation.
func (w *Vector[T]) Assign(mask Mask, accum ops.BinaryOp[T], u *Vector[T], indices []int, d *Descriptor) error {
	if indices == nil {
		indices = allIndices(w.size)
	}
	if u.size != len(indices) {
		return fmt.Errorf("%w: assign source size %d vs %d indices", ErrDimensionMismatch, u.size, len(indices))
	}
	if err := checkTargets(indices, w.size); err != nil {
		return err
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	type pair struct {
		p int
		v T
	}
	pairs := make([]pair, 0, len(u.ix))
	for k, srcPos := range u.ix {
		pairs = append(pairs, pair{p: indices[srcPos], v: u.vals[k]})
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].p < pairs[b].p })
	resIx := make([]int, len(pairs))
	resVals := make([]T, len(pairs))
	for k, pr := range pairs {
		resIx[k] = pr.p
		resVals[k] = pr.v
	}
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// AssignScalar broadcasts val to every selected position of w. A nil
// index slice selects all of w; the mask then gates which of those
// positions are written.
func (w *Vector[T]) AssignScalar(mask Mask, accum ops.BinaryOp[T], val T, indices []int, d *Descriptor) error {
	if indices == nil {
		indices = allIndices(w.size)
	}
	if err := checkTargets(indices, w.size); err != nil {
		return err
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	resIx := make([]int, len(indices))
	copy(resIx, indices)
	sort.Ints(resIx)
	resVals := make([]T, len(resIx))
	for k := range resVals {
		resVals[k] = val
	}
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// Assign writes the entries of a into c at the listed row/col targets:
// c[rows[i], cols[j]] receives a[i, j]. Nil slices target the full
// range.
func (c *Matrix[T]) Assign(mask Mask, accum ops.BinaryOp[T], a *Matrix[T], rows, cols []int, d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if rows == nil {
		rows = allIndices(c.NRows())
	}
	if cols == nil {
		cols = allIndices(c.NCols())
	}
	if a.NRows() != len(rows) || a.NCols() != len(cols) {
		return fmt.Errorf("%w: assign source %dx%d vs %dx%d indices",
			ErrDimensionMismatch, a.NRows(), a.NCols(), len(rows), len(cols))
	}
	if err := checkTargets(rows, c.NRows()); err != nil {
		return err
	}
	if err := checkTargets(cols, c.NCols()); err != nil {
		return err
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}
	ar, ac, av := a.ToValues()
	type triple struct {
		r, c int
		v    T
	}
	ts := make([]triple, len(ar))
	for k := range ar {
		ts[k] = triple{r: rows[ar[k]], c: cols[ac[k]], v: av[k]}
	}
	sort.Slice(ts, func(x, y int) bool {
		if ts[x].r != ts[y].r {
			return ts[x].r < ts[y].r
		}
		return ts[x].c < ts[y].c
	})
	rr := make([]int, len(ts))
	rc := make([]int, len(ts))
	rv := make([]T, len(ts))
	for k, t := range ts {
		rr[k] = t.r
		rc[k] = t.c
		rv[k] = t.v
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}

// AssignScalar broadcasts val to every selected (row, col) position.
func (c *Matrix[T]) AssignScalar(mask Mask, accum ops.BinaryOp[T], val T, rows, cols []int, d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if rows == nil {
		rows = allIndices(c.NRows())
	}
	if cols == nil {
		cols = allIndices(c.NCols())
	}
	if err := checkTargets(rows, c.NRows()); err != nil {
		return err
	}
	if err := checkTargets(cols, c.NCols()); err != nil {
		return err
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}
	sortedRows := append([]int(nil), rows...)
	sortedCols := append([]int(nil), cols...)
	sort.Ints(sortedRows)
	sort.Ints(sortedCols)
	rr := make([]int, 0, len(sortedRows)*len(sortedCols))
	rc := make([]int, 0, len(sortedRows)*len(sortedCols))
	rv := make([]T, 0, len(sortedRows)*len(sortedCols))
	for _, r := range sortedRows {
		for _, cc := range sortedCols {
			rr = append(rr, r)
			rc = append(rc, cc)
			rv = append(rv, val)
		}
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}

// checkTargets validates assignment target indices: in bounds, unique.
func checkTargets(indices []int, dim int) error {
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= dim {
			return fmt.Errorf("%w: assign index %d, bound %d", ErrIndexOutOfBounds, i, dim)
		}
		if _, ok := seen[i]; ok {
			return fmt.Errorf("%w: assign index %d repeated", ErrDuplicateIndex, i)
		}
		seen[i] = struct{}{}
	}
	return nil
}
