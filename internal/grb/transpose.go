package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// TransposeInto writes the transpose of a into c through the usual
// mask/accumulator resolution. For a plain operand-position transpose
// prefer the zero-copy view a.T(); this operation exists for the cases
// where the transposed entries must be materialized or merged into an
// existing output.
func (c *Matrix[T]) TransposeInto(mask Mask, accum ops.BinaryOp[T], a *Matrix[T], d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if c.NRows() != a.NCols() || c.NCols() != a.NRows() {
		return fmt.Errorf("%w: transpose output %dx%d, want %dx%d",
			ErrDimensionMismatch, c.NRows(), c.NCols(), a.NCols(), a.NRows())
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}

	// Column-compressed iteration of a yields the transposed entries
	// already sorted in the output's row-major order.
	ptr, ind, vals := a.cscLogical()
	var rr, rc []int
	var rv []T
	for j := 0; j+1 < len(ptr); j++ {
		for p := ptr[j]; p < ptr[j+1]; p++ {
			rr = append(rr, j)
			rc = append(rc, ind[p])
			rv = append(rv, vals[p])
		}
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}
