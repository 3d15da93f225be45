package dsparse

import "errors"

// Sentinel errors for distributed sparse matrix construction and
// iteration.
var (
	// ErrBadShape indicates a non-positive row or column count.
	ErrBadShape = errors.New("dsparse: invalid shape")

	// ErrRowPtrLength indicates row_ptr's length does not equal
	// shape.Rows+1.
	ErrRowPtrLength = errors.New("dsparse: row_ptr length must be Rows+1")

	// ErrIndexOutOfRange indicates a global or segment-local nnz index
	// outside its valid range.
	ErrIndexOutOfRange = errors.New("dsparse: index out of range")

	// ErrNotResident indicates Segment.Local was called for a segment
	// not owned by the calling rank.
	ErrNotResident = errors.New("dsparse: segment is not resident on this rank")
)
