// Package decomp answers the one question every other drange package
// depends on: "who owns global index i, and at what local offset?"
//
// A Decomposition is an immutable value describing how a container of
// size N is split across P ranks (equal blocks, cyclic, or block-cyclic),
// optionally inflated by a Stencil halo radius for ghost cells. Topology
// derives the per-rank layout (slab size, interior bounds, neighbor
// ranks) from a Decomposition, a Stencil, and N.
//
// RankOffset, the hot path, is a pure function: branch-predictable,
// O(1) (except under a salted block-cyclic decomposition, which scans
// preceding blocks), and never touches the communicator.
package decomp
