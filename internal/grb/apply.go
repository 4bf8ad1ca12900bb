package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// Apply transforms every stored entry of u with op. The sparsity
// pattern of the input is preserved: no entry is ever introduced for a
// position without an input value. Binary operators with a bound scalar
// are applied through ops.Bind1st / ops.Bind2nd.
func (w *Vector[T]) Apply(mask Mask, accum ops.BinaryOp[T], op ops.UnaryOp[T], u *Vector[T], d *Descriptor) error {
	if w.size != u.size {
		return fmt.Errorf("%w: apply output size %d vs input %d", ErrDimensionMismatch, w.size, u.size)
	}
	ms, err := newVectorMask(mask, d, w.size)
	if err != nil {
		return err
	}
	resIx := make([]int, len(u.ix))
	copy(resIx, u.ix)
	resVals := make([]T, len(u.vals))
	for k, v := range u.vals {
		resVals[k] = op(v)
	}
	resolveVector(w, resIx, resVals, ms, accum, d.replace())
	return nil
}

// Apply transforms every stored entry of a with op, preserving the
// sparsity pattern.
func (c *Matrix[T]) Apply(mask Mask, accum ops.BinaryOp[T], op ops.UnaryOp[T], a *Matrix[T], d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if c.NRows() != a.NRows() || c.NCols() != a.NCols() {
		return fmt.Errorf("%w: apply output %dx%d vs input %dx%d",
			ErrDimensionMismatch, c.NRows(), c.NCols(), a.NRows(), a.NCols())
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}
	rr, rc, rv := a.ToValues()
	for k, v := range rv {
		rv[k] = op(v)
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}
