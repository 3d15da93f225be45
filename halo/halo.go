package halo

import (
	"context"

	"github.com/pkg/errors"

	"github.com/arnauddri/drange/comm"
	"github.com/arnauddri/drange/decomp"
)

// Halo is the ghost-cell manager: given a rank's Topology, it knows
// which neighbor owns each of this rank's leading and trailing ghost
// regions and how to fill them. It holds no data of its own — the
// ghost cells live in the dvector.Vector's slab, behind the same
// Window that Exchange reads and writes through.
type Halo struct {
	c    comm.Communicator
	topo decomp.Topology
}

// New builds a Halo for topo as observed from c's rank. topo's
// Stencil may be zero, in which case Exchange is a no-op.
func New(c comm.Communicator, topo decomp.Topology) Halo {
	return Halo{c: c, topo: topo}
}

// PrevNeighbor reports the rank bordering this one on the leading
// side, or ErrNoNeighbor at a non-periodic global boundary.
func (h Halo) PrevNeighbor() (int, error) {
	prev, _, ok, _ := h.topo.Neighbors(h.c.Rank())
	if !ok {
		return 0, errors.Wrapf(ErrNoNeighbor, "halo: rank %d has no leading neighbor", h.c.Rank())
	}
	return prev, nil
}

// NextNeighbor reports the rank bordering this one on the trailing
// side, or ErrNoNeighbor at a non-periodic global boundary.
func (h Halo) NextNeighbor() (int, error) {
	_, next, _, ok := h.topo.Neighbors(h.c.Rank())
	if !ok {
		return 0, errors.Wrapf(ErrNoNeighbor, "halo: rank %d has no trailing neighbor", h.c.Rank())
	}
	return next, nil
}

// Exchange fills this rank's ghost regions from its neighbors'
// interior boundary cells, via one-sided Get/Put against win followed
// by a single Fence. Halo exchange is always explicit: ordinary
// element access (proxy get/put) never consults the halo, only
// Exchange does.
//
// Exchange fails with ErrRadiusTooLarge if either stencil radius
// exceeds the corresponding neighbor's own interior length. On a
// non-periodic global boundary the outward ghost region is left
// untouched and no error is reported. ctx cancellation is also
// honored, since Exchange is a suspension point.
func Exchange[T any](ctx context.Context, h Halo, win *comm.Window[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stencil := h.topo.Stencil()
	if stencil.IsZero() {
		return nil
	}

	rank := h.c.Rank()
	_, last := h.topo.Interior(rank)
	prevRank, nextRank, prevOK, nextOK := h.topo.Neighbors(rank)

	// Every rank must call win.Fence() exactly once here regardless of
	// whether its own ghost fill failed: Fence is collective, and a
	// rank that short-circuited on error while its peers still fenced
	// would deadlock them. So failures are accumulated, not returned
	// early; Fence always runs, and the first error (if any) surfaces
	// after it.
	var errPrev, errNext error

	// A non-periodic boundary rank's outward ghost is simply unused;
	// there is nothing to fill and no error.
	if stencil.Prev > 0 && prevOK {
		errPrev = fillGhost(win, rank, prevRank, 0, stencil.Prev, h.topo, true)
	}
	if stencil.Next > 0 && nextOK {
		errNext = fillGhost(win, rank, nextRank, last, stencil.Next, h.topo, false)
	}

	win.Fence()
	if errPrev != nil {
		return errPrev
	}
	return errNext
}

// fillGhost copies radius elements from neighbor's interior into this
// rank's ghost region starting at dstOffset. fromTail selects whether
// the source is the neighbor's trailing radius elements (this rank's
// leading ghost, mirroring the last `radius` elements of rank-1) or
// its leading radius elements (this rank's trailing ghost, mirroring
// the first `radius` of rank+1).
func fillGhost[T any](win *comm.Window[T], rank, neighbor, dstOffset, radius int, topo decomp.Topology, fromTail bool) error {
	nFirst, nLast := topo.Interior(neighbor)
	interiorLen := nLast - nFirst
	if radius > interiorLen {
		return errors.Wrapf(ErrRadiusTooLarge,
			"halo: rank %d wants radius %d from neighbor %d with interior length %d",
			rank, radius, neighbor, interiorLen)
	}
	srcStart := nFirst
	if fromTail {
		srcStart = nLast - radius
	}
	for k := 0; k < radius; k++ {
		v := win.Get(neighbor, srcStart+k)
		win.Put(rank, dstOffset+k, v)
	}
	return nil
}
