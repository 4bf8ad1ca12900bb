package grb

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/grb-ml/grb/internal/ops"
)

// Mask gates which output positions an operation may write. Any Vector
// or Matrix of the output's shape can serve as a mask; by default only
// the presence of stored entries matters (structural mask), while
// Descriptor.ValueMask switches to value semantics.
type Mask interface {
	maskShape() (rows, cols int, vector bool)
	maskSupport(valueMode bool) *roaring64.Bitmap
}

func (v *Vector[T]) maskShape() (int, int, bool) { return v.size, 1, true }

func (v *Vector[T]) maskSupport(valueMode bool) *roaring64.Bitmap {
	bm := roaring64.New()
	for k, i := range v.ix {
		if valueMode && !truthy(v.vals[k]) {
			continue
		}
		bm.Add(uint64(i))
	}
	return bm
}

func (m *Matrix[T]) maskShape() (int, int, bool) { return m.NRows(), m.NCols(), false }

func (m *Matrix[T]) maskSupport(valueMode bool) *roaring64.Bitmap {
	bm := roaring64.New()
	ncols := uint64(m.NCols())
	ptr, ind, vals := m.csrLogical()
	for i := 0; i+1 < len(ptr); i++ {
		for p := ptr[i]; p < ptr[i+1]; p++ {
			if valueMode && !truthy(vals[p]) {
				continue
			}
			bm.Add(uint64(i)*ncols + uint64(ind[p]))
		}
	}
	return bm
}

// truthy reports value-mask truthiness: true for bool, non-zero for
// numeric domains.
func truthy[T ops.Value](v T) bool {
	switch x := any(v).(type) {
	case bool:
		return x
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return false
	}
}

// maskSpec is the dispatch-time snapshot of a mask: a compressed bitmap
// of covered positions plus the complement flag. The snapshot is taken
// before any output mutation, so a mask may alias the output container.
type maskSpec struct {
	bm         *roaring64.Bitmap
	complement bool
}

// allowed reports whether position key is masked in.
func (ms *maskSpec) allowed(key uint64) bool {
	if ms == nil {
		return true
	}
	return ms.bm.Contains(key) != ms.complement
}

// newVectorMask validates a vector-shaped mask against the output size
// and snapshots its support set.
func newVectorMask(m Mask, d *Descriptor, size int) (*maskSpec, error) {
	if m == nil {
		return nil, nil
	}
	rows, _, vector := m.maskShape()
	if !vector || rows != size {
		return nil, fmt.Errorf("%w: mask shape does not match output size %d", ErrDimensionMismatch, size)
	}
	return &maskSpec{bm: m.maskSupport(d.valueMask()), complement: d.complement()}, nil
}

// newMatrixMask validates a matrix-shaped mask against the output
// bounds and snapshots its support set keyed by row*ncols+col.
func newMatrixMask(m Mask, d *Descriptor, nrows, ncols int) (*maskSpec, error) {
	if m == nil {
		return nil, nil
	}
	rows, cols, vector := m.maskShape()
	if vector || rows != nrows || cols != ncols {
		return nil, fmt.Errorf("%w: mask shape does not match output bounds %dx%d", ErrDimensionMismatch, nrows, ncols)
	}
	return &maskSpec{bm: m.maskSupport(d.valueMask()), complement: d.complement()}, nil
}

// resolveVector merges freshly computed entries into the output through
// the mask/accumulator resolution table. Per position p with computed
// value t (possibly absent) and existing value o (possibly absent):
//
//  1. p masked out: replace clears p; otherwise o is kept.
//  2. p masked in (or no mask):
//     t absent            -> o kept, unless replace clears p;
//     t present, no accum -> t;
//     t present, accum, o present -> accum(o, t);
//     t present, accum, o absent  -> t.
//
// The computed slices must be sorted by index with unique indices. The
// swap at the end is the only output mutation of the whole operation.
func resolveVector[T ops.Value](w *Vector[T], resIx []int, resVals []T, ms *maskSpec, accum ops.BinaryOp[T], replace bool) {
	ix := make([]int, 0, len(w.ix)+len(resIx))
	vals := make([]T, 0, len(w.vals)+len(resVals))

	oi, ti := 0, 0
	for oi < len(w.ix) || ti < len(resIx) {
		var p int
		hasO, hasT := false, false
		switch {
		case oi >= len(w.ix):
			p = resIx[ti]
			hasT = true
		case ti >= len(resIx):
			p = w.ix[oi]
			hasO = true
		case w.ix[oi] < resIx[ti]:
			p = w.ix[oi]
			hasO = true
		case w.ix[oi] > resIx[ti]:
			p = resIx[ti]
			hasT = true
		default:
			p = w.ix[oi]
			hasO, hasT = true, true
		}

		if out, keep := resolveEntry(uint64(p), hasO, hasT, oi, ti, w.vals, resVals, ms, accum, replace); keep {
			ix = append(ix, p)
			vals = append(vals, out)
		}
		if hasO {
			oi++
		}
		if hasT {
			ti++
		}
	}
	w.setEntries(ix, vals)
}

// resolveEntry applies the four-way mask x accumulator x presence table
// to a single position.
func resolveEntry[T ops.Value](key uint64, hasO, hasT bool, oi, ti int, oVals, tVals []T, ms *maskSpec, accum ops.BinaryOp[T], replace bool) (T, bool) {
	var zero T
	if !ms.allowed(key) {
		if replace || !hasO {
			return zero, false
		}
		return oVals[oi], true
	}
	if !hasT {
		if replace || !hasO {
			return zero, false
		}
		return oVals[oi], true
	}
	if accum != nil && hasO {
		return accum(oVals[oi], tVals[ti]), true
	}
	return tVals[ti], true
}

// resolveMatrix is the matrix analog of resolveVector. The computed
// triples must be sorted row-major with unique (row,col) pairs.
func resolveMatrix[T ops.Value](c *Matrix[T], resRows, resCols []int, resVals []T, ms *maskSpec, accum ops.BinaryOp[T], replace bool) {
	oldRows, oldCols, oldVals := c.ToValues()
	ncols := uint64(c.NCols())

	rows := make([]int, 0, len(oldRows)+len(resRows))
	cols := make([]int, 0, len(oldCols)+len(resCols))
	vals := make([]T, 0, len(oldVals)+len(resVals))

	less := func(r1, c1, r2, c2 int) bool {
		if r1 != r2 {
			return r1 < r2
		}
		return c1 < c2
	}

	oi, ti := 0, 0
	for oi < len(oldRows) || ti < len(resRows) {
		var r, cc int
		hasO, hasT := false, false
		switch {
		case oi >= len(oldRows):
			r, cc = resRows[ti], resCols[ti]
			hasT = true
		case ti >= len(resRows):
			r, cc = oldRows[oi], oldCols[oi]
			hasO = true
		case less(oldRows[oi], oldCols[oi], resRows[ti], resCols[ti]):
			r, cc = oldRows[oi], oldCols[oi]
			hasO = true
		case less(resRows[ti], resCols[ti], oldRows[oi], oldCols[oi]):
			r, cc = resRows[ti], resCols[ti]
			hasT = true
		default:
			r, cc = oldRows[oi], oldCols[oi]
			hasO, hasT = true, true
		}

		key := uint64(r)*ncols + uint64(cc)
		if out, keep := resolveEntry(key, hasO, hasT, oi, ti, oldVals, resVals, ms, accum, replace); keep {
			rows = append(rows, r)
			cols = append(cols, cc)
			vals = append(vals, out)
		}
		if hasO {
			oi++
		}
		if hasT {
			ti++
		}
	}
	c.setFromRowMajor(rows, cols, vals)
}
