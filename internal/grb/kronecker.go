package grb

import (
	"fmt"

	"github.com/grb-ml/grb/internal/ops"
)

// Kronecker computes the Kronecker product of a and b: entry
// (ia,ja) of a and (ib,jb) of b combine with op into output position
// (ia*b.NRows()+ib, ja*b.NCols()+jb). The output has
// a.NRows()*b.NRows() x a.NCols()*b.NCols() bounds.
func (c *Matrix[T]) Kronecker(mask Mask, accum ops.BinaryOp[T], op ops.BinaryOp[T], a, b *Matrix[T], d *Descriptor) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	wantRows, wantCols := a.NRows()*b.NRows(), a.NCols()*b.NCols()
	if c.NRows() != wantRows || c.NCols() != wantCols {
		return fmt.Errorf("%w: kronecker output %dx%d, want %dx%d",
			ErrDimensionMismatch, c.NRows(), c.NCols(), wantRows, wantCols)
	}
	ms, err := newMatrixMask(mask, d, c.NRows(), c.NCols())
	if err != nil {
		return err
	}

	aptr, aind, avals := a.csrLogical()
	bptr, bind, bvals := b.csrLogical()
	bRows, bCols := b.NRows(), b.NCols()

	var rr, rc []int
	var rv []T
	for ia := 0; ia+1 < len(aptr); ia++ {
		if aptr[ia] == aptr[ia+1] {
			continue
		}
		for ib := 0; ib+1 < len(bptr); ib++ {
			row := ia*bRows + ib
			for p := aptr[ia]; p < aptr[ia+1]; p++ {
				for q := bptr[ib]; q < bptr[ib+1]; q++ {
					rr = append(rr, row)
					rc = append(rc, aind[p]*bCols+bind[q])
					rv = append(rv, op(avals[p], bvals[q]))
				}
			}
		}
	}
	resolveMatrix(c, rr, rc, rv, ms, accum, d.replace())
	return nil
}
