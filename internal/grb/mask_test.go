package grb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grb-ml/grb/internal/ops"
)

// The resolver tests drive the mask x accumulator x replace table
// through Apply with the identity operator, so the computed result
// equals the input's entry set and every table row can be pinned down.

func vecOf(t *testing.T, size int, ix []int, vals []int64) *Vector[int64] {
	t.Helper()
	v, err := NewVector[int64](size)
	require.NoError(t, err)
	require.NoError(t, v.Build(ix, vals, nil))
	return v
}

func vecEntries(v *Vector[int64]) map[int]int64 {
	out := make(map[int]int64)
	ix, vals := v.ToValues()
	for k, i := range ix {
		out[i] = vals[k]
	}
	return out
}

func TestResolveDefaultKeepsOldWhereAbsent(t *testing.T) {
	w := vecOf(t, 5, []int{0, 2}, []int64{100, 200})
	u := vecOf(t, 5, []int{2, 4}, []int64{7, 8})

	require.NoError(t, w.Apply(nil, nil, ops.Identity[int64](), u, nil))

	// Computed entries land, old entries without a computed value stay.
	assert.Equal(t, map[int]int64{0: 100, 2: 7, 4: 8}, vecEntries(w))
}

func TestResolveReplaceClearsWhereAbsent(t *testing.T) {
	w := vecOf(t, 5, []int{0, 2}, []int64{100, 200})
	u := vecOf(t, 5, []int{2, 4}, []int64{7, 8})

	require.NoError(t, w.Apply(nil, nil, ops.Identity[int64](), u, &Descriptor{Replace: true}))

	assert.Equal(t, map[int]int64{2: 7, 4: 8}, vecEntries(w))
}

func TestResolveAccum(t *testing.T) {
	// Existing 5, computed 3, accumulator min: min(5, 3) = 3.
	w := vecOf(t, 3, []int{1}, []int64{5})
	u := vecOf(t, 3, []int{1, 2}, []int64{3, 9})

	require.NoError(t, w.Apply(nil, ops.Min[int64](), ops.Identity[int64](), u, nil))

	// Position 2 had no prior value, so the accumulator is skipped there.
	assert.Equal(t, map[int]int64{1: 3, 2: 9}, vecEntries(w))
}

func TestResolveAccumKeepsLargerOld(t *testing.T) {
	w := vecOf(t, 3, []int{1}, []int64{2})
	u := vecOf(t, 3, []int{1}, []int64{3})

	require.NoError(t, w.Apply(nil, ops.Min[int64](), ops.Identity[int64](), u, nil))
	assert.Equal(t, map[int]int64{1: 2}, vecEntries(w))
}

func TestResolveMaskedOut(t *testing.T) {
	u := vecOf(t, 4, []int{0, 1, 2, 3}, []int64{10, 11, 12, 13})
	mask := vecOf(t, 4, []int{1, 3}, []int64{1, 1})

	// Without replace, masked-out old entries survive.
	w := vecOf(t, 4, []int{0, 1}, []int64{100, 101})
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, nil))
	assert.Equal(t, map[int]int64{0: 100, 1: 11, 3: 13}, vecEntries(w))

	// With replace, masked-out old entries are cleared.
	w = vecOf(t, 4, []int{0, 1}, []int64{100, 101})
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, &Descriptor{Replace: true}))
	assert.Equal(t, map[int]int64{1: 11, 3: 13}, vecEntries(w))
}

func TestResolveComplementMask(t *testing.T) {
	u := vecOf(t, 4, []int{0, 1, 2, 3}, []int64{10, 11, 12, 13})
	mask := vecOf(t, 4, []int{1, 3}, []int64{1, 1})

	w, _ := NewVector[int64](4)
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, &Descriptor{Complement: true}))
	assert.Equal(t, map[int]int64{0: 10, 2: 12}, vecEntries(w))
}

// A structural mask counts any stored entry, including falsy values; a
// value mask only counts truthy ones.
func TestStructuralVsValueMask(t *testing.T) {
	u := vecOf(t, 3, []int{0, 1, 2}, []int64{10, 11, 12})
	mask := vecOf(t, 3, []int{0, 1}, []int64{0, 5}) // stored zero at 0

	w, _ := NewVector[int64](3)
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, nil))
	assert.Equal(t, map[int]int64{0: 10, 1: 11}, vecEntries(w))

	w, _ = NewVector[int64](3)
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, &Descriptor{ValueMask: true}))
	assert.Equal(t, map[int]int64{1: 11}, vecEntries(w))
}

func TestBoolValueMask(t *testing.T) {
	u, _ := NewVector[int64](3)
	require.NoError(t, u.Build([]int{0, 1, 2}, []int64{10, 11, 12}, nil))
	mask, _ := NewVector[bool](3)
	require.NoError(t, mask.Build([]int{0, 1}, []bool{false, true}, nil))

	w, _ := NewVector[int64](3)
	require.NoError(t, w.Apply(mask, nil, ops.Identity[int64](), u, &Descriptor{ValueMask: true}))
	assert.Equal(t, map[int]int64{1: 11}, vecEntries(w))
}

// The mask is snapshotted before the output mutates, so the output may
// serve as its own mask.
func TestMaskAliasesOutput(t *testing.T) {
	w := vecOf(t, 4, []int{1, 2}, []int64{100, 200})
	u := vecOf(t, 4, []int{0, 1, 2, 3}, []int64{10, 11, 12, 13})

	require.NoError(t, w.Apply(w, nil, ops.Identity[int64](), u, nil))
	assert.Equal(t, map[int]int64{1: 11, 2: 12}, vecEntries(w))
}

func TestMaskShapeMismatch(t *testing.T) {
	u := vecOf(t, 3, []int{0}, []int64{1})
	w, _ := NewVector[int64](3)

	badVec := vecOf(t, 4, nil, nil)
	assert.ErrorIs(t, w.Apply(badVec, nil, ops.Identity[int64](), u, nil), ErrDimensionMismatch)

	m, _ := NewMatrix[int64](3, 1, RowMajor)
	assert.ErrorIs(t, w.Apply(m, nil, ops.Identity[int64](), u, nil), ErrDimensionMismatch)
}

func TestMatrixMaskResolution(t *testing.T) {
	a, _ := NewMatrix[int64](2, 2, RowMajor)
	require.NoError(t, a.Build([]int{0, 0, 1, 1}, []int{0, 1, 0, 1}, []int64{1, 2, 3, 4}, nil))

	mask, _ := NewMatrix[int64](2, 2, RowMajor)
	require.NoError(t, mask.SetElement(0, 1, 1))
	require.NoError(t, mask.SetElement(1, 0, 1))

	c, _ := NewMatrix[int64](2, 2, RowMajor)
	require.NoError(t, c.SetElement(0, 0, 99))
	require.NoError(t, c.Apply(mask, nil, ops.Identity[int64](), a, nil))

	gr, gc, gv := c.ToValues()
	assert.Equal(t, []int{0, 0, 1}, gr)
	assert.Equal(t, []int{0, 1, 0}, gc)
	assert.Equal(t, []int64{99, 2, 3}, gv)

	// Same call with replace drops the masked-out stale entry.
	c2, _ := NewMatrix[int64](2, 2, RowMajor)
	require.NoError(t, c2.SetElement(0, 0, 99))
	require.NoError(t, c2.Apply(mask, nil, ops.Identity[int64](), a, &Descriptor{Replace: true}))
	gr, gc, gv = c2.ToValues()
	assert.Equal(t, []int{0, 1}, gr)
	assert.Equal(t, []int{1, 0}, gc)
	assert.Equal(t, []int64{2, 3}, gv)
}

func TestMatrixMaskShapeMismatch(t *testing.T) {
	a, _ := NewMatrix[int64](2, 2, RowMajor)
	c, _ := NewMatrix[int64](2, 2, RowMajor)

	badMask, _ := NewMatrix[int64](2, 3, RowMajor)
	assert.ErrorIs(t, c.Apply(badMask, nil, ops.Identity[int64](), a, nil), ErrDimensionMismatch)

	vecMask, _ := NewVector[int64](2)
	assert.ErrorIs(t, c.Apply(vecMask, nil, ops.Identity[int64](), a, nil), ErrDimensionMismatch)
}
