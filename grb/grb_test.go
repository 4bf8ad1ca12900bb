// Copyright 2026 The grb Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grb-ml/grb/grb"
)

// The 7-vertex weighted digraph used by the traversal tests.
var (
	edgeSrc = []int{3, 0, 3, 5, 6, 0, 6, 1, 6, 2, 4, 1}
	edgeDst = []int{0, 1, 2, 2, 2, 3, 3, 4, 4, 5, 5, 6}
	edgeW   = []int64{3, 2, 3, 1, 5, 3, 7, 8, 3, 1, 7, 4}
)

const nVertices = 7

func adjacency(t *testing.T) *grb.Matrix[int64] {
	t.Helper()
	a, err := grb.MatrixFromValues(edgeSrc, edgeDst, edgeW, nVertices, nVertices, grb.RowMajor, nil)
	require.NoError(t, err)
	return a
}

func entries(v *grb.Vector[int64]) map[int]int64 {
	out := make(map[int]int64)
	ix, vals := v.ToValues()
	for k, i := range ix {
		out[i] = vals[k]
	}
	return out
}

// bellmanFord is the dense reference the sparse fixed point is checked
// against. Unreachable vertices keep MaxInt64.
func bellmanFord(src int) []int64 {
	dist := make([]int64, nVertices)
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	dist[src] = 0
	for iter := 0; iter < nVertices-1; iter++ {
		for k, u := range edgeSrc {
			if dist[u] == math.MaxInt64 {
				continue
			}
			if d := dist[u] + edgeW[k]; d < dist[edgeDst[k]] {
				dist[edgeDst[k]] = d
			}
		}
	}
	return dist
}

// Single-source shortest paths as a min-plus fixed point: with a zero
// diagonal on A, v = v.vxm(A) under min-plus both keeps settled
// distances and relaxes one more edge per sweep.
func TestSSSP(t *testing.T) {
	a := adjacency(t)
	for i := 0; i < nVertices; i++ {
		require.NoError(t, a.SetElement(i, i, 0))
	}

	v, err := grb.NewVector[int64](nVertices)
	require.NoError(t, err)
	require.NoError(t, v.SetElement(1, 0))

	for {
		before := entries(v)
		require.NoError(t, v.VxM(nil, nil, grb.MinPlus[int64](), v, a, nil))
		if assert.ObjectsAreEqual(before, entries(v)) {
			break
		}
	}

	want := bellmanFord(1)
	assert.Equal(t, []int64{14, 0, 9, 11, 7, 10, 4}, want)

	got := entries(v)
	assert.Len(t, got, nVertices)
	for i, d := range want {
		assert.Equal(t, d, got[i], "distance to vertex %d", i)
	}
}

// Parent-tracking BFS: the frontier carries vertex ids, min-first vxm
// picks a parent for every newly reached vertex, and the complemented
// structural mask over the parents vector keeps settled vertices out of
// the next wavefront.
func TestBFSParents(t *testing.T) {
	a := adjacency(t)
	desc := &grb.Descriptor{Complement: true, Replace: true}

	parents, err := grb.NewVector[int64](nVertices)
	require.NoError(t, err)
	require.NoError(t, parents.SetElement(1, 1)) // the root is its own parent

	frontier, err := grb.NewVector[int64](nVertices)
	require.NoError(t, err)
	require.NoError(t, frontier.SetElement(1, 1))

	for frontier.NVals() > 0 {
		next, err := grb.NewVector[int64](nVertices)
		require.NoError(t, err)
		require.NoError(t, next.VxM(parents, nil, grb.MinFirst[int64](), frontier, a, desc))

		require.NoError(t, parents.Apply(nil, nil, grb.Identity[int64](), next, nil))

		ix, _ := next.ToValues()
		ids := make([]int64, len(ix))
		for k, i := range ix {
			ids[k] = int64(i)
		}
		frontier, err = grb.VectorFromValues(ix, ids, nVertices, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, map[int]int64{0: 3, 1: 1, 2: 6, 3: 6, 4: 1, 5: 4, 6: 1}, entries(parents))
}

func TestVectorFromValuesInference(t *testing.T) {
	v, err := grb.VectorFromValues([]int{2, 9}, []int64{1, 2}, -1, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Size())

	_, err = grb.VectorFromValues[int64](nil, nil, -1, nil)
	assert.ErrorIs(t, err, grb.ErrInvalidShape)
}

func TestMatrixFromValuesInference(t *testing.T) {
	m, err := grb.MatrixFromValues([]int{0, 4}, []int{3, 1}, []int64{1, 2}, -1, -1, grb.ColMajor, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, m.NRows())
	assert.Equal(t, 4, m.NCols())

	_, err = grb.MatrixFromValues[int64](nil, nil, nil, -1, 4, grb.RowMajor, nil)
	assert.ErrorIs(t, err, grb.ErrInvalidShape)
}

func TestRegistryThroughPublicAPI(t *testing.T) {
	require.NoError(t, grb.RegisterSemiring("public.minplus", grb.MinPlus[int64](), grb.Int64))

	s, err := grb.LookupSemiring[int64]("public.minplus")
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.Add.Op(s.Mul(2, 3), s.Mul(4, 9)))

	_, err = grb.LookupSemiring[float64]("public.minplus")
	assert.ErrorIs(t, err, grb.ErrSemiringType)
}
