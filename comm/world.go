package comm

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// World is the reference SPMD backend: size goroutines sharing one
// process, each addressed as a rank. It backs every Communicator handed
// to a program run through Run.
type World struct {
	size int

	createRDV    *rendezvous
	freeRDV      *rendezvous
	scatterRDV   *rendezvous
	gatherRDV    *rendezvous
	broadcastRDV *rendezvous
}

// NewWorld allocates a World of the given size. size must be positive.
func NewWorld(size int) *World {
	if size <= 0 {
		panic("comm: World size must be positive")
	}
	return &World{
		size:         size,
		createRDV:    newRendezvous(size),
		freeRDV:      newRendezvous(size),
		scatterRDV:   newRendezvous(size),
		gatherRDV:    newRendezvous(size),
		broadcastRDV: newRendezvous(size),
	}
}

// Rank returns the Communicator handle bound to rank r.
func (w *World) Rank(r int) Communicator {
	if r < 0 || r >= w.size {
		panic(fmt.Sprintf("comm: rank %d out of range [0,%d)", r, w.size))
	}
	return Communicator{world: w, rank: r}
}

// Communicator is the rank/size façade: rank/size queries plus the
// entry point (via the package-level Scatter, Gather, Broadcast and
// NewWindow functions) for collectives and RMA windows. It is a small
// value type, cheap to pass and store alongside a container.
type Communicator struct {
	world *World
	rank  int
}

// Rank returns this communicator's rank in [0, Size()).
func (c Communicator) Rank() int { return c.rank }

// Size returns the number of ranks participating in this communicator's
// World.
func (c Communicator) Size() int { return c.world.size }

// Run launches an SPMD program: fn is invoked once per rank in
// [0, size), each on its own goroutine, all sharing one World. Run
// blocks until every invocation returns, then returns the first non-nil
// error (if any) — a single rank's failure aborts the job, matching the
// "no fault tolerance" scheduling model; the remaining goroutines still
// run to completion since collectives would otherwise deadlock them.
func Run(size int, fn func(Communicator) error, opts ...RunOption) error {
	s := newRunSettings(opts...)
	w := NewWorld(size)
	s.logger.Debugf("comm: launching world size=%d", size)

	var g errgroup.Group
	for r := 0; r < size; r++ {
		rank := r
		g.Go(func() error {
			if err := fn(w.Rank(rank)); err != nil {
				s.logger.Debugf("comm: rank %d returned error: %v", rank, err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
