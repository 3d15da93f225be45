package dvector

import (
	"context"
	"fmt"

	"github.com/arnauddri/drange/comm"
	"github.com/arnauddri/drange/decomp"
	"github.com/arnauddri/drange/halo"
)

// Vector is a distributed dense container: N logical elements, split
// across its Communicator's ranks per a decomp.Topology, backed by
// one comm.Window[T]. It implements
// proxy.Container[T] (Get/Put), so every proxy.Iterator[T, *Vector[T]]
// built over it gets RMA-backed read-on-convert / write-on-assign
// references for free.
type Vector[T any] struct {
	c    comm.Communicator
	topo decomp.Topology
	win  *comm.Window[T]
	halo halo.Halo
	n    int
	log  Logger
}

// New builds a Vector of n elements over c using the equal-block
// (MethodDiv) decomposition and no halo.
func New[T any](c comm.Communicator, n int, opts ...Option) *Vector[T] {
	return NewDecomp[T](c, decomp.NewDiv(c.Size()), n, opts...)
}

// NewWithAlloc is New, using alloc to materialize the local slab.
func NewWithAlloc[T any](c comm.Communicator, n int, alloc Allocator[T], opts ...Option) *Vector[T] {
	return newVector[T](c, decomp.NewDiv(c.Size()), decomp.Stencil{}, n, alloc, opts...)
}

// NewDecomp builds a Vector of n elements under an explicit
// Decomposition. d's rank count must match c.Size().
func NewDecomp[T any](c comm.Communicator, d decomp.Decomposition, n int, opts ...Option) *Vector[T] {
	return newVector[T](c, d, decomp.Stencil{}, n, DefaultAllocator[T]{}, opts...)
}

// NewStencil builds a Vector of n elements under the equal-block
// decomposition with a ghost-cell Stencil.
func NewStencil[T any](c comm.Communicator, stencil decomp.Stencil, n int, opts ...Option) *Vector[T] {
	return newVector[T](c, decomp.NewDiv(c.Size()), stencil, n, DefaultAllocator[T]{}, opts...)
}

// NewStencilAlloc is NewStencil, using alloc to materialize the local
// slab.
func NewStencilAlloc[T any](c comm.Communicator, stencil decomp.Stencil, alloc Allocator[T], n int, opts ...Option) *Vector[T] {
	return newVector[T](c, decomp.NewDiv(c.Size()), stencil, n, alloc, opts...)
}

// NewRadius builds a Vector of n elements with a symmetric halo of
// the given radius.
func NewRadius[T any](c comm.Communicator, radius int, periodic bool, n int, opts ...Option) *Vector[T] {
	return NewStencil[T](c, decomp.NewStencil(radius, periodic), n, opts...)
}

// NewFilled builds a Vector of n elements under d, with every logical
// index initialized to value: each rank fills only its own interior
// directly (no RMA, no root rank needed), then a single collective
// Fence makes the uniform fill globally visible.
func NewFilled[T any](c comm.Communicator, n int, value T, d decomp.Decomposition, opts ...Option) *Vector[T] {
	v := NewDecomp[T](c, d, n, opts...)
	first, last := v.topo.Interior(v.c.Rank())
	local := v.win.Local()
	for i := first; i < last; i++ {
		local[i] = value
	}
	v.win.Fence()
	v.log.Debugf("dvector: NewFilled rank=%d filled interior [%d,%d) with %v", v.c.Rank(), first, last, value)
	return v
}

func newVector[T any](c comm.Communicator, d decomp.Decomposition, stencil decomp.Stencil, n int, alloc Allocator[T], opts ...Option) *Vector[T] {
	if d.Size() != c.Size() {
		panic(fmt.Sprintf("dvector: %v: decomposition has %d ranks, communicator has %d",
			ErrDecompSizeMismatch, d.Size(), c.Size()))
	}
	s := newSettings(opts...)
	topo := decomp.NewTopology(d, stencil, n)
	local := alloc.Alloc(topo.SlabSize(c.Rank()))
	win := comm.NewWindow(c, local)
	v := &Vector[T]{c: c, topo: topo, win: win, n: n, log: s.logger}
	v.halo = halo.New(c, topo)
	v.log.Debugf("dvector: constructed n=%d rank=%d slab=%d", n, c.Rank(), len(local))
	return v
}

// Size returns the global logical length N.
func (v *Vector[T]) Size() int { return v.n }

// Communicator returns the Communicator this Vector was built over.
func (v *Vector[T]) Communicator() comm.Communicator { return v.c }

// Topology returns the addressing layout this Vector uses.
func (v *Vector[T]) Topology() decomp.Topology { return v.topo }

// Get performs the one-sided RMA read backing every proxy dereference
// of this Vector: exactly one comm.Window.Get, never more.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	rank, offset := v.topo.RankOffset(i)
	return v.win.Get(rank, offset)
}

// Put performs the one-sided RMA write backing every proxy assignment
// into this Vector: exactly one comm.Window.Put, never more. Not
// visible to other ranks until the next Fence or a Flush(rank) issued
// by the writing rank for the owning rank.
func (v *Vector[T]) Put(i int, val T) {
	v.checkIndex(i)
	rank, offset := v.topo.RankOffset(i)
	v.win.Put(rank, offset, val)
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.n))
	}
}

// Scatter distributes src (valid and sized N only on root) so that,
// after return, each rank's interior equals its slice of src. A size
// mismatch is reported via comm.ErrSizeMismatch to every rank.
// Cross-rank visibility of the scattered values still requires an
// explicit Fence.
func (v *Vector[T]) Scatter(src []T, root int) error {
	first, last := v.topo.Interior(v.c.Rank())
	return comm.Scatter(v.c, root, src, v.win.Local()[first:last])
}

// Gather is the inverse of Scatter: on root, dst (sized N) receives
// the concatenation, in rank order, of every rank's current interior.
func (v *Vector[T]) Gather(dst []T, root int) error {
	first, last := v.topo.Interior(v.c.Rank())
	return comm.Gather(v.c, root, v.win.Local()[first:last], dst)
}

// Fence closes the current RMA epoch: every Get/Put issued by any
// rank before its call to Fence becomes globally visible once Fence
// returns on every rank.
func (v *Vector[T]) Fence() { v.win.Fence() }

// Flush guarantees local completion of this rank's prior Put calls
// targeting rank, a weaker non-collective guarantee than Fence.
func (v *Vector[T]) Flush(rank int) { v.win.Flush(rank) }

// Local returns this rank's local slab, including any halo ghost
// cells — the one efficient, non-RMA path to bulk-read or bulk-write
// this rank's own data.
func (v *Vector[T]) Local() []T { return v.win.Local() }

// Exchange runs the halo manager's ghost-cell exchange against this
// Vector's window: an explicit operation, never triggered implicitly
// by Get/Put.
func (v *Vector[T]) Exchange(ctx context.Context) error {
	return halo.Exchange(ctx, v.halo, v.win)
}

// Conforms reports whether v and other share the same Decomposition
// and size — the prerequisite for fast-pathing element-wise
// operations on aligned operands.
func (v *Vector[T]) Conforms(other *Vector[T]) bool {
	return v.topo.Decomposition().Equal(other.topo.Decomposition()) && v.n == other.n
}

// Close performs the final collective Fence and frees v's window.
func (v *Vector[T]) Close() { v.win.Free() }
