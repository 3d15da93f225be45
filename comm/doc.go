// Package comm provides the communicator façade that the rest of drange
// is built against: rank/size queries, collective operations (scatter,
// gather, broadcast), and one-sided RMA windows (create, get, put,
// fence, flush, free).
//
// The façade is deliberately thin — see Communicator — so a production
// deployment can swap in a real message-passing backend. This package
// also ships the only backend drange needs to build and test itself:
// World, a goroutine-per-rank SPMD simulator reached through Run. Every
// collective rendezvous through a reusable N-way barrier (rendezvous);
// Get/Put are one-sided and touch only the target rank's slab, under
// the window's shared lock (one per window, not one per rank).
//
// SPMD discipline: collectives carry no operation tags. Correctness
// relies on every rank executing the same sequence of collective calls
// (window create/free, scatter, gather, broadcast, fence) in the same
// program order — the k-th arrival at a rendezvous on any rank always
// belongs to the k-th logical operation. A rank that skips or reorders
// a collective deadlocks the job; code that can fail before a
// collective must either reach it anyway (halo.Exchange's fence) or
// broadcast the failure so every rank bails together
// (dsparse.NewFromRoot's header).
//
// Visibility: Put is not guaranteed visible to other ranks until the
// next Fence or a Flush(target) issued by the writing rank. World happens to
// make writes visible immediately (it is backed by ordinary shared
// memory), but callers must not rely on that — only on the documented
// contract — since another backend may buffer.
//
// Failure model: there is no fault tolerance. Run returns the first
// non-nil error any rank produced; a rank that panics takes the whole
// process down. Precondition violations (bad rank, size mismatch,
// freed window) surface as wrapped sentinel errors — see errors.go.
package comm
