// Package dvector provides a distributed dense vector: a 1-D container
// of N logical elements whose storage is split across a
// comm.Communicator's ranks per a decomp.Topology, while exposing a
// single logical sequence through proxy iterators and references.
//
// The Vector supports:
//
//   - Seven construction modes — New, NewWithAlloc, NewDecomp,
//     NewStencil, NewStencilAlloc, NewRadius, NewFilled — all sharing
//     one validated path (newVector) and differing only in defaults.
//   - Transparent remote element access: dv.At(i).Value() issues
//     exactly one one-sided Get against the owning rank's window,
//     dv.At(i).Set(x) exactly one Put. Never more, never batched.
//   - Random-access iteration over [0, N) via Begin/End
//     (proxy.Iterator), with pure, communication-free arithmetic.
//   - Bulk collective transfer: Scatter fills every rank's interior
//     from a root-resident slice, Gather concatenates the interiors
//     back in rank order.
//   - Ghost cells for stencil codes: a decomp.Stencil inflates the
//     local slab, and Exchange fills the ghost regions from the
//     neighbor ranks' boundary interiors (package halo).
//   - Segment access: Segments()/SegmentAt(i) expose each rank's
//     interior as a locally-iterable range — the only efficient
//     iteration path for distributed algorithms.
//
// Core methods:
//
//	Get(i) / Put(i, v)          // one RMA op each            O(1)
//	At(i), Begin(), End()       // proxy handles, no comms    O(1)
//	Scatter(src, root)          // collective                 O(N/P)
//	Gather(dst, root)           // collective                 O(N/P)
//	Fence() / Flush(rank)       // epoch close / local compl.
//	Local()                     // this rank's slab, no RMA   O(1)
//	Exchange(ctx)               // halo fill + fence
//	Segments() / SegmentAt(i)   // locality handles           O(P)/O(1)
//	Conforms / Congruent        // alignment fast-path tests  O(1)
//
// Visibility contract: Get/Put are one-sided and not guaranteed
// visible to other ranks until the next Fence (collective) or a
// Flush(rank) (local completion only). The vector never auto-fences on
// access — that would serialize every element touch — so algorithms
// that write-then-read across ranks must fence in between.
//
// Construction allocates the local slab (interior elements plus any
// stencil halo), opens a comm.Window over it, and performs the initial
// collective Fence; Close performs a final Fence and frees the window.
// Constructors and Close contain collectives, so every rank must call
// them the same number of times, in the same order.
//
// Typical SPMD usage:
//
//	comm.Run(p, func(c comm.Communicator) error {
//		v := dvector.New[float64](c, n)
//		defer v.Close()
//		if err := v.Scatter(src, 0); err != nil {
//			return err
//		}
//		v.Fence()
//		sum := 0.0
//		for _, x := range v.Local() {
//			sum += x
//		}
//		...
//	})
package dvector
