package dvector

import "errors"

// Sentinel errors for Vector construction and operation.
var (
	// ErrDecompSizeMismatch indicates a Decomposition's rank count does
	// not match the Communicator's size.
	ErrDecompSizeMismatch = errors.New("dvector: decomposition size does not match communicator size")

	// ErrIndexOutOfRange indicates a global index outside [0, N).
	ErrIndexOutOfRange = errors.New("dvector: index out of range")

	// ErrNotResident indicates Segment.Local was called for a segment
	// not owned by the calling rank.
	ErrNotResident = errors.New("dvector: segment is not resident on this rank")
)
