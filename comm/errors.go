package comm

import "errors"

// Sentinel errors reported by collective and window operations. They
// are wrapped with github.com/pkg/errors (Wrap/Wrapf) at the call site
// so callers can still match with errors.Is.
var (
	// ErrSizeMismatch is returned when a scatter/gather buffer does not
	// match the expected aggregate size.
	ErrSizeMismatch = errors.New("comm: size mismatch")

	// ErrRankOutOfRange is returned by a collective whose root falls
	// outside [0, size); Get/Put panic with it when the target rank
	// does.
	ErrRankOutOfRange = errors.New("comm: rank out of range")

	// ErrWindowClosed is the panic value of Get, Put and Local on a
	// window that has already been Free'd. Fence and Flush do not check.
	ErrWindowClosed = errors.New("comm: window already freed")

	// ErrOffsetOutOfRange is the panic value of Get/Put when offset falls
	// outside the target rank's registered slab.
	ErrOffsetOutOfRange = errors.New("comm: offset out of range")
)
