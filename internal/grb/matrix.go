package grb

import (
	"fmt"
	"sort"

	"github.com/grb-ml/grb/internal/ops"
)

// Order selects the compressed storage direction of a Matrix. It is
// chosen at creation and fixed for the object's lifetime; it determines
// which multiply direction is "native" (no internal conversion).
type Order int

const (
	// RowMajor stores compressed sparse rows (CSR).
	RowMajor Order = iota
	// ColMajor stores compressed sparse columns (CSC).
	ColMajor
)

// String returns a human-readable storage order name.
func (o Order) String() string {
	if o == RowMajor {
		return "row-major"
	}
	return "col-major"
}

// Matrix is a typed sparse matrix over [0,nrows)x[0,ncols) with
// compressed sparse row or column storage. (row,col) pairs are unique;
// bounds are immutable after creation.
//
// A Matrix obtained from T() is a logical transpose view sharing the
// same storage: it is valid as an operation input but rejects mutation.
type Matrix[T ops.Value] struct {
	nrows, ncols int // stored (untransposed) bounds
	order        Order
	trans        bool

	ptr  []int // per stored major axis, len major+1
	ind  []int // minor indices, sorted within each major
	vals []T
}

// NewMatrix creates an empty Matrix with the given logical bounds and
// storage order.
func NewMatrix[T ops.Value](nrows, ncols int, order Order) (*Matrix[T], error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("%w: matrix bounds %dx%d", ErrInvalidShape, nrows, ncols)
	}
	if order != RowMajor && order != ColMajor {
		return nil, fmt.Errorf("%w: unknown storage order %d", ErrInvalidShape, order)
	}
	m := &Matrix[T]{nrows: nrows, ncols: ncols, order: order}
	m.ptr = make([]int, m.majorDim()+1)
	return m, nil
}

// NRows returns the logical row bound.
func (m *Matrix[T]) NRows() int {
	if m.trans {
		return m.ncols
	}
	return m.nrows
}

// NCols returns the logical column bound.
func (m *Matrix[T]) NCols() int {
	if m.trans {
		return m.nrows
	}
	return m.ncols
}

// NVals returns the number of stored entries.
func (m *Matrix[T]) NVals() int { return len(m.ind) }

// Order returns the storage order chosen at creation.
func (m *Matrix[T]) Order() Order { return m.order }

// DType returns the runtime element type.
func (m *Matrix[T]) DType() ops.DataType { return ops.TypeOf[T]() }

// IsTransposed reports whether this matrix is a logical transpose view.
func (m *Matrix[T]) IsTransposed() bool { return m.trans }

// T returns the logical transpose as a view. No storage is copied; the
// flag is resolved when the view is used as an operation input. The
// view is read-only: mutating methods return ErrReadOnlyView.
func (m *Matrix[T]) T() *Matrix[T] {
	t := *m
	t.trans = !t.trans
	return &t
}

// String returns a compact description, e.g. "Matrix 4x7 3:float64".
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix %dx%d %d:%s", m.NRows(), m.NCols(), m.NVals(), m.DType())
}

// Dup returns a deep, unmutated-view copy of the matrix.
func (m *Matrix[T]) Dup() *Matrix[T] {
	d := &Matrix[T]{
		nrows: m.nrows, ncols: m.ncols, order: m.order, trans: m.trans,
		ptr: make([]int, len(m.ptr)), ind: make([]int, len(m.ind)), vals: make([]T, len(m.vals)),
	}
	copy(d.ptr, m.ptr)
	copy(d.ind, m.ind)
	copy(d.vals, m.vals)
	return d
}

// majorDim returns the stored major axis length.
func (m *Matrix[T]) majorDim() int {
	if m.order == RowMajor {
		return m.nrows
	}
	return m.ncols
}

// minorDim returns the stored minor axis length.
func (m *Matrix[T]) minorDim() int {
	if m.order == RowMajor {
		return m.ncols
	}
	return m.nrows
}

// rowsCompressed reports whether logical rows are the compressed axis.
func (m *Matrix[T]) rowsCompressed() bool {
	return (m.order == RowMajor) != m.trans
}

// phys maps logical coordinates to stored coordinates.
func (m *Matrix[T]) phys(r, c int) (int, int) {
	if m.trans {
		return c, r
	}
	return r, c
}

// major maps stored coordinates to (major, minor) per the storage order.
func (m *Matrix[T]) major(pr, pc int) (int, int) {
	if m.order == RowMajor {
		return pr, pc
	}
	return pc, pr
}

// majorView returns the minor indices and values stored under major j.
func (m *Matrix[T]) majorView(j int) ([]int, []T) {
	lo, hi := m.ptr[j], m.ptr[j+1]
	return m.ind[lo:hi], m.vals[lo:hi]
}

func (m *Matrix[T]) checkBounds(r, c int) error {
	if r < 0 || r >= m.NRows() || c < 0 || c >= m.NCols() {
		return fmt.Errorf("%w: (%d,%d), bounds %dx%d", ErrIndexOutOfBounds, r, c, m.NRows(), m.NCols())
	}
	return nil
}

func (m *Matrix[T]) checkMutable() error {
	if m.trans {
		return fmt.Errorf("%w", ErrReadOnlyView)
	}
	return nil
}

// locate finds the storage position of logical (r,c).
func (m *Matrix[T]) locate(r, c int) (int, bool) {
	pr, pc := m.phys(r, c)
	maj, min := m.major(pr, pc)
	lo, hi := m.ptr[maj], m.ptr[maj+1]
	pos := lo + sort.SearchInts(m.ind[lo:hi], min)
	return pos, pos < hi && m.ind[pos] == min
}

// SetElement inserts or overwrites the entry at logical (r,c).
// Single-entry insertion shifts the compressed arrays and is O(nvals);
// prefer Build for bulk loads.
func (m *Matrix[T]) SetElement(r, c int, val T) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	if err := m.checkBounds(r, c); err != nil {
		return err
	}
	pos, ok := m.locate(r, c)
	if ok {
		m.vals[pos] = val
		return nil
	}
	maj, min := m.major(m.phys(r, c))
	m.ind = append(m.ind, 0)
	copy(m.ind[pos+1:], m.ind[pos:])
	m.ind[pos] = min
	var zero T
	m.vals = append(m.vals, zero)
	copy(m.vals[pos+1:], m.vals[pos:])
	m.vals[pos] = val
	for k := maj + 1; k < len(m.ptr); k++ {
		m.ptr[k]++
	}
	return nil
}

// RemoveElement deletes the entry at logical (r,c) if present.
func (m *Matrix[T]) RemoveElement(r, c int) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	if err := m.checkBounds(r, c); err != nil {
		return err
	}
	pos, ok := m.locate(r, c)
	if !ok {
		return nil
	}
	maj, _ := m.major(m.phys(r, c))
	m.ind = append(m.ind[:pos], m.ind[pos+1:]...)
	m.vals = append(m.vals[:pos], m.vals[pos+1:]...)
	for k := maj + 1; k < len(m.ptr); k++ {
		m.ptr[k]--
	}
	return nil
}

// ExtractElement returns the stored value at logical (r,c), or
// ErrNoValue if the entry is absent.
func (m *Matrix[T]) ExtractElement(r, c int) (T, error) {
	var zero T
	if err := m.checkBounds(r, c); err != nil {
		return zero, err
	}
	pos, ok := m.locate(r, c)
	if !ok {
		return zero, fmt.Errorf("%w: (%d,%d)", ErrNoValue, r, c)
	}
	return m.vals[pos], nil
}

// Clear removes all entries without changing the bounds.
func (m *Matrix[T]) Clear() error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	m.ptr = make([]int, m.majorDim()+1)
	m.ind = m.ind[:0]
	m.vals = m.vals[:0]
	return nil
}

// Build bulk-loads the full entry set, replacing any existing content.
// Repeated (row,col) pairs are combined with dup; without dup they fail
// with ErrDuplicateIndex. All preconditions are checked before any
// mutation.
func (m *Matrix[T]) Build(rows, cols []int, values []T, dup ops.BinaryOp[T]) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	if len(rows) != len(cols) || len(rows) != len(values) {
		return fmt.Errorf("%w: %d rows, %d cols, %d values",
			ErrInvalidShape, len(rows), len(cols), len(values))
	}
	for k := range rows {
		if err := m.checkBounds(rows[k], cols[k]); err != nil {
			return err
		}
	}
	type triple struct {
		maj, min int
		r, c     int
		v        T
	}
	ts := make([]triple, len(rows))
	for k := range rows {
		maj, min := m.major(m.phys(rows[k], cols[k]))
		ts[k] = triple{maj: maj, min: min, r: rows[k], c: cols[k], v: values[k]}
	}
	sort.SliceStable(ts, func(a, b int) bool {
		if ts[a].maj != ts[b].maj {
			return ts[a].maj < ts[b].maj
		}
		return ts[a].min < ts[b].min
	})

	majors := make([]int, 0, len(ts))
	ind := make([]int, 0, len(ts))
	vals := make([]T, 0, len(ts))
	for _, t := range ts {
		if n := len(ind); n > 0 && majors[n-1] == t.maj && ind[n-1] == t.min {
			if dup == nil {
				return fmt.Errorf("%w: (%d,%d)", ErrDuplicateIndex, t.r, t.c)
			}
			vals[n-1] = dup(vals[n-1], t.v)
			continue
		}
		majors = append(majors, t.maj)
		ind = append(ind, t.min)
		vals = append(vals, t.v)
	}

	ptr := make([]int, m.majorDim()+1)
	for _, maj := range majors {
		ptr[maj+1]++
	}
	for i := 0; i < m.majorDim(); i++ {
		ptr[i+1] += ptr[i]
	}
	m.ptr, m.ind, m.vals = ptr, ind, vals
	return nil
}

// ToValues returns the stored entries as parallel row/col/value slices
// in row-major-then-column order, regardless of the storage order.
func (m *Matrix[T]) ToValues() ([]int, []int, []T) {
	ptr, ind, vals := m.csrLogical()
	rows := make([]int, 0, len(ind))
	cols := make([]int, 0, len(ind))
	out := make([]T, 0, len(vals))
	for i := 0; i+1 < len(ptr); i++ {
		for p := ptr[i]; p < ptr[i+1]; p++ {
			rows = append(rows, i)
			cols = append(cols, ind[p])
			out = append(out, vals[p])
		}
	}
	return rows, cols, out
}

// csrLogical returns the matrix compressed by logical rows. When the
// storage already has that orientation the underlying slices are
// returned without copying.
func (m *Matrix[T]) csrLogical() ([]int, []int, []T) {
	if m.rowsCompressed() {
		return m.ptr, m.ind, m.vals
	}
	return m.convertCompressed(m.NRows())
}

// cscLogical returns the matrix compressed by logical columns.
func (m *Matrix[T]) cscLogical() ([]int, []int, []T) {
	if !m.rowsCompressed() {
		return m.ptr, m.ind, m.vals
	}
	return m.convertCompressed(m.NCols())
}

// convertCompressed flips the compression axis: entries stored under
// major j with minor i are regrouped under major i with minor j,
// preserving sorted minor order. O(nvals + dims).
func (m *Matrix[T]) convertCompressed(newMajor int) ([]int, []int, []T) {
	ptr := make([]int, newMajor+1)
	for _, i := range m.ind {
		ptr[i+1]++
	}
	for i := 0; i < newMajor; i++ {
		ptr[i+1] += ptr[i]
	}
	ind := make([]int, len(m.ind))
	vals := make([]T, len(m.vals))
	next := make([]int, newMajor)
	copy(next, ptr[:newMajor])
	for j := 0; j+1 < len(m.ptr); j++ {
		for p := m.ptr[j]; p < m.ptr[j+1]; p++ {
			i := m.ind[p]
			ind[next[i]] = j
			vals[next[i]] = m.vals[p]
			next[i]++
		}
	}
	return ptr, ind, vals
}

// setFromRowMajor replaces the entry set from triples sorted in logical
// row-major order with unique (row,col) pairs. The output must not be a
// transposed view; callers validate that before computing.
func (m *Matrix[T]) setFromRowMajor(rows, cols []int, vals []T) {
	if m.order == RowMajor {
		ptr := make([]int, m.nrows+1)
		for _, r := range rows {
			ptr[r+1]++
		}
		for i := 0; i < m.nrows; i++ {
			ptr[i+1] += ptr[i]
		}
		m.ptr = ptr
		m.ind = append([]int(nil), cols...)
		m.vals = append([]T(nil), vals...)
		return
	}
	// Column-major target: regroup by column, preserving row order.
	ptr := make([]int, m.ncols+1)
	for _, c := range cols {
		ptr[c+1]++
	}
	for i := 0; i < m.ncols; i++ {
		ptr[i+1] += ptr[i]
	}
	ind := make([]int, len(rows))
	out := make([]T, len(vals))
	next := make([]int, m.ncols)
	copy(next, ptr[:m.ncols])
	for k := range rows {
		c := cols[k]
		ind[next[c]] = rows[k]
		out[next[c]] = vals[k]
		next[c]++
	}
	m.ptr, m.ind, m.vals = ptr, ind, out
}
