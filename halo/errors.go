package halo

import "errors"

// Sentinel errors for halo exchange.
var (
	// ErrRadiusTooLarge indicates a stencil radius exceeds a neighbor's
	// own interior size, so a single Exchange cannot fill it from one
	// neighbor's data.
	ErrRadiusTooLarge = errors.New("halo: stencil radius exceeds neighbor interior size")

	// ErrNoNeighbor is returned by PrevNeighbor/NextNeighbor on a side
	// with no neighbor rank (a non-periodic global boundary).
	ErrNoNeighbor = errors.New("halo: no neighbor on this side")
)
