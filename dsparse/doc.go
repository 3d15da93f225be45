// Package dsparse provides a distributed sparse matrix: a segmented
// CSR container whose nnz (row, col, value) triples are split across a
// comm.Communicator's ranks while exposing the same proxy-iterator
// contract (package proxy) as dvector.Vector.
//
// A CSR matrix is the triad (row_ptr[M+1], col_idx[nnz], vals[nnz]).
// Construction (NewFromRoot) broadcasts the shape and row_ptr from a
// root rank, then scatters col_idx and vals per the chosen
// Distribution:
//
//   - EqDistribution — nnz split into P equal (±1) contiguous runs;
//     segment boundaries may fall mid-row.
//   - RowDistribution — M rows split into P contiguous blocks of
//     ceil(M/P) rows; every segment holds exactly its own rows' data.
//
// Both yield the same global iteration order: row-major, original CSR
// order. Each rank then holds one Segment — slices of col_idx/vals
// behind two comm.Windows — plus the replicated row_ptr.
//
// Row reconstruction. A segment's row index is not stored: Get scans
// the replicated row_ptr forward from a cached per-segment cursor
// (rowPtr[row+1] <= nnzIndex advances the row), so sequential
// iteration pays amortized O(1) per element and a mid-row segment
// boundary still resolves the correct row. Segment.Local fetches the
// whole segment's vals/cols in one pass (one Get per element on each
// window) and runs that scan once.
//
// Surface:
//
//	Shape() / Size()              // (rows, cols) / nnz
//	Get(i), At(i), Begin(), End() // read-only proxy access, CSR order
//	Segments() / SegmentAt(i)     // per-rank locality handles
//	Segment.Local()               // batched local view, resident only
//	Conforms / Congruent          // alignment fast-path tests
//	Close()                       // collective window teardown
//
// Matrices are read-only after construction: iterators dereference to
// an Entry[T] value (proxy.ROReference), not a writable slot. All
// collective calls (NewFromRoot, Close) must be executed by every rank
// in the same order.
package dsparse
