package comm

import (
	"sync"

	"github.com/pkg/errors"
)

// sharedWindow is the registered memory region behind a Window[T]: one
// slab per rank, plus the two rendezvous points (fence, free) that are
// collective across every rank holding a handle to it.
type sharedWindow[T any] struct {
	mu     sync.RWMutex
	bufs   [][]T
	closed bool

	fenceRDV *rendezvous
	freeRDV  *rendezvous
}

// Window is a handle, scoped to one rank, onto memory registered for
// one-sided access across an entire World. Get/Put touch only the
// addressed rank's slab; Fence and Free are collective across every
// rank that opened this window.
type Window[T any] struct {
	c      Communicator
	shared *sharedWindow[T]
}

// NewWindow collectively registers local (this rank's contribution to
// the window) with every other rank in c's World, and performs an
// initial Fence before returning: allocate local slab, open window,
// run a collective fence. Every rank must call NewWindow the same
// number of times, in the same order, contributing a (possibly
// differently sized) local buffer each time.
func NewWindow[T any](c Communicator, local []T) *Window[T] {
	type contribution struct {
		rank int
		buf  []T
	}
	res := c.world.createRDV.join(c.rank, contribution{c.rank, local}, func(payloads []any) any {
		bufs := make([][]T, len(payloads))
		for _, p := range payloads {
			cb := p.(contribution)
			bufs[cb.rank] = cb.buf
		}
		return &sharedWindow[T]{
			bufs:     bufs,
			fenceRDV: newRendezvous(len(payloads)),
			freeRDV:  newRendezvous(len(payloads)),
		}
	})
	w := &Window[T]{c: c, shared: res.(*sharedWindow[T])}
	w.Fence()
	return w
}

// Get performs a one-sided read of element offset on rank's slab. Its
// result reflects whatever the target rank's memory held as of the
// issuing rank's last Fence or Flush(rank) — never guaranteed to be
// more current than that.
func (w *Window[T]) Get(rank, offset int) T {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	w.checkOpen()
	w.checkAddr(rank, offset)
	return w.shared.bufs[rank][offset]
}

// Put performs a one-sided write of v to offset on rank's slab. The
// write is not guaranteed visible to other ranks (including rank
// itself, if observed through another window view) until the next
// Fence, or a Flush(rank) issued by this same caller.
func (w *Window[T]) Put(rank, offset int, v T) {
	w.shared.mu.Lock()
	defer w.shared.mu.Unlock()
	w.checkOpen()
	w.checkAddr(rank, offset)
	w.shared.bufs[rank][offset] = v
}

// Local returns this rank's own slab directly, with no lock round
// trip and no RMA — the backing store for dvector.Vector.Local() /
// dsparse's local buffer access, neither of which ever communicates.
// Concurrent Puts from other ranks targeting this rank's slab while it
// is read this way are a data race: the core makes no attempt to
// detect it.
func (w *Window[T]) Local() []T {
	w.checkOpen()
	return w.shared.bufs[w.c.rank]
}

// Fence closes the current RMA epoch: a collective barrier across every
// rank holding this window. All Get/Put issued by any rank before its
// call to Fence are globally visible to every rank after Fence returns.
func (w *Window[T]) Fence() {
	w.shared.fenceRDV.join(w.c.rank, nil, func([]any) any { return nil })
}

// Flush guarantees local completion of this rank's prior Put calls
// targeting rank — a weaker, non-collective guarantee than Fence: it
// says nothing about visibility at ranks other than rank, and nothing
// about other ranks' writes.
func (w *Window[T]) Flush(int) {
	w.shared.mu.Lock()
	w.shared.mu.Unlock() //nolint:staticcheck // deliberate: round-trip the lock to publish prior writes
}

// Free collectively releases the window. Every rank must call Free
// exactly once; Free performs the final fence itself.
func (w *Window[T]) Free() {
	w.Fence()
	w.shared.freeRDV.join(w.c.rank, nil, func([]any) any {
		w.shared.mu.Lock()
		defer w.shared.mu.Unlock()
		w.shared.closed = true
		return nil
	})
}

func (w *Window[T]) checkOpen() {
	if w.shared.closed {
		panic(errors.Wrap(ErrWindowClosed, "comm: Get/Put on freed window"))
	}
}

func (w *Window[T]) checkAddr(rank, offset int) {
	if rank < 0 || rank >= len(w.shared.bufs) {
		panic(errors.Wrapf(ErrRankOutOfRange, "comm: Get/Put target rank %d", rank))
	}
	if offset < 0 || offset >= len(w.shared.bufs[rank]) {
		panic(errors.Wrapf(ErrOffsetOutOfRange, "comm: Get/Put offset %d on rank %d (slab size %d)",
			offset, rank, len(w.shared.bufs[rank])))
	}
}
