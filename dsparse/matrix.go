package dsparse

import (
	"fmt"
	"sync"

	"github.com/arnauddri/drange/comm"
)

// Matrix is a distributed sparse CSR container: nnz (row, col, value)
// triples split across ranks under a Distribution, exposing the same
// proxy-iterator contract as dvector.Vector via Segments and via
// Matrix itself as a proxy.ROContainer[Entry[T]] over the full,
// row-major nnz order.
type Matrix[T any] struct {
	c      comm.Communicator
	shape  Shape
	rowPtr []int    // replicated row_ptr, length Rows+1
	ranges [][2]int // per-rank [start,end) nnz range, original CSR order
	dist   Distribution

	valWin *comm.Window[T]
	colWin *comm.Window[int]

	cursorMu sync.Mutex
	cursors  []int // per-rank cached "current_row" scan cursor

	log Logger
}

// NewFromRoot builds a Matrix by broadcasting shape and row_ptr from
// root, then scattering col_idx/vals per dist. rowPtr, colIdx and
// vals are only read on root; every rank must call NewFromRoot the
// same way.
func NewFromRoot[T any](c comm.Communicator, root int, shape Shape, rowPtr []int, colIdx []int, vals []T, dist Distribution, opts ...Option) (*Matrix[T], error) {
	s := newSettings(opts...)

	// Validation happens on root, but its outcome must be broadcast
	// with the header: a root that bailed out before the collective
	// while the other ranks joined it would deadlock the job.
	type header struct {
		shape Shape
		err   error
	}
	hdr := header{shape: shape}
	if c.Rank() == root {
		switch {
		case shape.Rows <= 0 || shape.Cols <= 0:
			hdr.err = fmt.Errorf("dsparse: %w: rows=%d cols=%d", ErrBadShape, shape.Rows, shape.Cols)
		case len(rowPtr) != shape.Rows+1:
			hdr.err = fmt.Errorf("dsparse: %w: got %d, want %d", ErrRowPtrLength, len(rowPtr), shape.Rows+1)
		}
	}
	hdr, err := comm.Broadcast(c, root, hdr)
	if err != nil {
		return nil, err
	}
	if hdr.err != nil {
		return nil, hdr.err
	}
	shape = hdr.shape

	rowPtrAll, err := comm.Broadcast(c, root, rowPtr)
	if err != nil {
		return nil, err
	}

	ranges := dist.Ranges(shape, rowPtrAll, c.Size())
	mine := ranges[c.Rank()]
	localSize := mine[1] - mine[0]

	localCols := make([]int, localSize)
	if err := comm.Scatter(c, root, colIdx, localCols); err != nil {
		return nil, err
	}
	localVals := make([]T, localSize)
	if err := comm.Scatter(c, root, vals, localVals); err != nil {
		return nil, err
	}

	colWin := comm.NewWindow(c, localCols)
	valWin := comm.NewWindow(c, localVals)

	m := &Matrix[T]{
		c:       c,
		shape:   shape,
		rowPtr:  rowPtrAll,
		ranges:  ranges,
		dist:    dist,
		valWin:  valWin,
		colWin:  colWin,
		cursors: make([]int, c.Size()),
		log:     s.logger,
	}
	m.log.Debugf("dsparse: constructed shape=%+v nnz=%d rank=%d segment=[%d,%d)",
		shape, m.Size(), c.Rank(), mine[0], mine[1])
	return m, nil
}

// Shape returns the matrix's (rows, cols).
func (m *Matrix[T]) Shape() Shape { return m.shape }

// Size returns nnz, the total number of stored non-zeros.
func (m *Matrix[T]) Size() int {
	if len(m.rowPtr) == 0 {
		return 0
	}
	return m.rowPtr[len(m.rowPtr)-1]
}

// Distribution returns the strategy this Matrix was partitioned
// under.
func (m *Matrix[T]) Distribution() Distribution { return m.dist }

// Conforms reports whether m and other share the same shape, nnz and
// segment partitioning — the prerequisite for fast-pathing aligned
// element-wise algorithms. Two matrices conform iff every rank owns
// the same nnz range in both.
func (m *Matrix[T]) Conforms(other *Matrix[T]) bool {
	if m.shape != other.shape || len(m.ranges) != len(other.ranges) {
		return false
	}
	for r := range m.ranges {
		if m.ranges[r] != other.ranges[r] {
			return false
		}
	}
	return true
}

// Close frees the value and column-index windows. Free performs its
// own final collective Fence.
func (m *Matrix[T]) Close() {
	m.valWin.Free()
	m.colWin.Free()
}

// rankOffset maps a global nnz index (original CSR order) to its
// owning rank and local-within-segment offset.
func (m *Matrix[T]) rankOffset(i int) (rank, offset int) {
	for r, rg := range m.ranges {
		if i >= rg[0] && i < rg[1] {
			return r, i - rg[0]
		}
	}
	panic(fmt.Errorf("%w: global nnz index %d", ErrIndexOutOfRange, i))
}

// Get implements proxy.ROContainer[Entry[T]] over the full matrix in
// row-major CSR order.
func (m *Matrix[T]) Get(i int) Entry[T] {
	if i < 0 || i >= m.Size() {
		panic(fmt.Errorf("%w: global nnz index %d, nnz %d", ErrIndexOutOfRange, i, m.Size()))
	}
	rank, offset := m.rankOffset(i)
	return m.reconstructOne(rank, offset)
}

// reconstructOne fetches a single entry from segment rank at
// segment-local offset: fetch vals[k], col_idx[k], scan row_ptr from
// the cached cursor.
func (m *Matrix[T]) reconstructOne(rank, offset int) Entry[T] {
	entries := m.reconstructRange(rank, offset, 1)
	return entries[0]
}

// reconstructRange fetches the vals/col_idx for `size` consecutive
// segment-local offsets in one pass, then runs the row_ptr scan once,
// advancing the cursor monotonically. The fetches are not merged into
// one RMA per buffer: each element costs one Get on each window. A
// start before the cursor's row resets the cursor to row 0.
func (m *Matrix[T]) reconstructRange(rank, offset, size int) []Entry[T] {
	rg := m.ranges[rank]
	segLen := rg[1] - rg[0]
	if offset < 0 || offset+size > segLen {
		panic(fmt.Errorf("%w: segment %d offset %d size %d exceeds length %d",
			ErrIndexOutOfRange, rank, offset, size, segLen))
	}

	absStart := rg[0] + offset
	vals := make([]T, size)
	cols := make([]int, size)
	for k := 0; k < size; k++ {
		vals[k] = m.valWin.Get(rank, offset+k)
		cols[k] = m.colWin.Get(rank, offset+k)
	}

	m.cursorMu.Lock()
	cursor := m.cursors[rank]
	if absStart < m.rowPtr[cursor] {
		cursor = 0 // backward access: cheaper to rescan than binary-search here
	}
	entries := make([]Entry[T], size)
	for k := 0; k < size; k++ {
		idx := absStart + k
		for cursor+1 < len(m.rowPtr) && m.rowPtr[cursor+1] <= idx {
			cursor++
		}
		entries[k] = Entry[T]{Row: cursor, Col: cols[k], Value: vals[k]}
	}
	m.cursors[rank] = cursor
	m.cursorMu.Unlock()

	return entries
}
