package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// EWiseAdd computes the element-wise union of u and v: positions
// present in both are combined with op, positions present in exactly
// one keep their value.
func (w *Vector[T]) EWiseAdd(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], u, v *Vector[T], d *Descriptor) error {
	if u.size != v.size || w.size != u.size {
		return fmt.Errorf("%w: ewiseAdd sizes %d, %d -> %d", ErrDimensionMismatch, u.size, v.size, w.size)
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	resIx, resVals := mergeVectors(op, u, v, true)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// EWiseMult computes the element-wise intersection of u and v: only
// positions present in both produce an entry, combined with op.
func (w *Vector[T]) EWiseMult(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], u, v *Vector[T], d *Descriptor) error {
	if u.size != v.size || w.size != u.size {
		return fmt.Errorf("%w: ewiseMult sizes %d, %d -> %d", ErrDimensionMismatch, u.size, v.size, w.size)
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	resIx, resVals := mergeVectors(op, u, v, false)
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// mergeVectors walks both sorted supports; union keeps single-sided
// entries, intersection drops them.
func mergeVectors[T ops.Value](op ops.BinaryOp[T], u, v *Vector[T], union bool) ([]int, []T) {
	var ix []int
	var vals []T
	i, j := 0, 0
	for i < len(u.ix) || j < len(v.ix) {
		switch {
		case j >= len(v.ix) || (i < len(u.ix) && u.ix[i] < v.ix[j]):
			if union {
				ix = append(ix, u.ix[i])
				vals = append(vals, u.vals[i])
			}
			i++
		case i >= len(u.ix) || u.ix[i] > v.ix[j]:
			if union {
				ix = append(ix, v.ix[j])
				vals = append(vals, v.vals[j])
			}
			j++
		default:
			ix = append(ix, u.ix[i])
			vals = append(vals, op(u.vals[i], v.vals[j]))
			i++
			j++
		}
	}
	return ix, vals
}

// EWiseAdd computes the element-wise union of matrices a and b.
func (c *Matrix[T]) EWiseAdd(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], a, b *Matrix[T], d *Descriptor) error {
	return c.ewise(mask, accum, op, a, b, d, true)
}

// EWiseMult computes the element-wise intersection of matrices a and b.
func (c *Matrix[T]) EWiseMult(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], a, b *Matrix[T], d *Descriptor) error {
	return c.ewise(mask, accum, op, a, b, d, false)
}

func (c *Matrix[T]) ewise(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], a, b *Matrix[T], d *Descriptor, union bool) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if a.NRows() != b.NRows() || a.NCols() != b.NCols() {
		return fmt.Errorf("%w: ewise operands %dx%d vs %dx%d",
			ErrDimensionMismatch, a.NRows(), a.NCols(), b.NRows(), b.NCols())
	}
	if c.NRows() != a.NRows() || c.NCols() != a.NCols() {
		return fmt.Errorf("%w: ewise output %dx%d, want %dx%d",
			ErrDimensionMismatch, c.NRows(), c.NCols(), a.NRows(), a.NCols())
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}

	ar, ac, av := a.ToValues()
	br, bc, bv := b.ToValues()
	var rr, rc []int
	var rv []T
	before := func(r1, c1, r2, c2 int) bool {
		if r1 != r2 {
			return r1 < r2
		}
		return c1 < c2
	}
	i, j := 0, 0
	for i < len(ar) || j < len(br) {
		switch {
		case j >= len(br) || (i < len(ar) && before(ar[i], ac[i], br[j], bc[j])):
			if union {
				rr = append(rr, ar[i])
				rc = append(rc, ac[i])
				rv = append(rv, av[i])
			}
			i++
		case i >= len(ar) || before(br[j], bc[j], ar[i], ac[i]):
			if union {
				rr = append(rr, br[j])
				rc = append(rc, bc[j])
				rv = append(rv, bv[j])
			}
			j++
		default:
			rr = append(rr, ar[i])
			rc = append(rc, ac[i])
			rv = append(rv, op(av[i], bv[j]))
			i++
			j++
		}
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}
