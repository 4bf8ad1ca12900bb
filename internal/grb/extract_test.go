package grb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorExtract(t *testing.T) {
	u := vecOf(t, 6, []int{0, 2, 5}, []int64{10, 20, 50})

	w, _ := NewVector[int64](3)
	require.NoError(t, w.Extract(nil, nil, u, []int{5, 1, 2}, nil))

	// Output position k takes u[indices[k]]; u[1] is absent.
	assert.Equal(t, map[int]int64{0: 50, 2: 20}, vecEntries(w))
}

func TestVectorExtractAll(t *testing.T) {
	u := vecOf(t, 4, []int{1, 3}, []int64{11, 33})

	w, _ := NewVector[int64](4)
	require.NoError(t, w.Extract(nil, nil, u, nil, nil))
	assert.Equal(t, vecEntries(u), vecEntries(w))
}

func TestVectorExtractRepeatedIndices(t *testing.T) {
	// Extraction may repeat source indices; only assignment requires
	// unique targets.
	u := vecOf(t, 3, []int{1}, []int64{7})

	w, _ := NewVector[int64](3)
	require.NoError(t, w.Extract(nil, nil, u, []int{1, 1, 1}, nil))
	assert.Equal(t, map[int]int64{0: 7, 1: 7, 2: 7}, vecEntries(w))
}

func TestVectorExtractErrors(t *testing.T) {
	u := vecOf(t, 3, nil, nil)

	wBad, _ := NewVector[int64](2)
	assert.ErrorIs(t, wBad.Extract(nil, nil, u, []int{0, 1, 2}, nil), ErrDimensionMismatch)

	w, _ := NewVector[int64](2)
	assert.ErrorIs(t, w.Extract(nil, nil, u, []int{0, 3}, nil), ErrIndexOutOfBounds)
}

func TestMatrixExtract(t *testing.T) {
	// | 1 2 . |
	// | . 3 4 |
	// | 5 . 6 |
	a := matOf(t, 3, 3, RowMajor,
		[]int{0, 0, 1, 1, 2, 2}, []int{0, 1, 1, 2, 0, 2}, []int64{1, 2, 3, 4, 5, 6})

	c, _ := NewMatrix[int64](2, 2, RowMajor)
	require.NoError(t, c.Extract(nil, nil, a, []int{2, 0}, []int{0, 2}, nil))

	gr, gc, gv := c.ToValues()
	assert.Equal(t, []int{0, 0, 1}, gr)
	assert.Equal(t, []int{0, 1, 0}, gc)
	assert.Equal(t, []int64{5, 6, 1}, gv)
}

func TestMatrixExtractAll(t *testing.T) {
	a := matOf(t, 2, 3, ColMajor, []int{0, 1}, []int{2, 1}, []int64{1, 2})

	c, _ := NewMatrix[int64](2, 3, RowMajor)
	require.NoError(t, c.Extract(nil, nil, a, nil, nil, nil))

	ar, ac, av := a.ToValues()
	cr, cc, cv := c.ToValues()
	assert.Equal(t, ar, cr)
	assert.Equal(t, ac, cc)
	assert.Equal(t, av, cv)
}

func TestMatrixExtractErrors(t *testing.T) {
	a := matOf(t, 3, 3, RowMajor, nil, nil, nil)

	cBad, _ := NewMatrix[int64](2, 3, RowMajor)
	assert.ErrorIs(t, cBad.Extract(nil, nil, a, []int{0}, []int{0, 1, 2}, nil), ErrDimensionMismatch)

	c, _ := NewMatrix[int64](1, 1, RowMajor)
	assert.ErrorIs(t, c.Extract(nil, nil, a, []int{5}, []int{0}, nil), ErrIndexOutOfBounds)
	assert.ErrorIs(t, c.Extract(nil, nil, a, []int{0}, []int{-1}, nil), ErrIndexOutOfBounds)
}
