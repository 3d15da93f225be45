// Package drange is the root of a distributed container runtime: a
// family of partitioned containers whose elements are physically
// spread across a set of cooperating processes ("ranks") yet expose a
// single logical sequence through iterator, reference and segment
// abstractions, the way a data-parallel library's core makes remote
// memory look local for iteration, element access and bulk transfer.
//
// The module is organized as:
//
//	comm/    — the SPMD communicator façade: rank/size, collectives
//	           (Scatter/Gather/Broadcast) and one-sided RMA windows.
//	decomp/  — the partitioning/addressing layer: div, cyclic and
//	           block-cyclic decompositions, plus halo/stencil topology.
//	halo/    — ghost-cell exchange for stencil codes, built on comm and
//	           decomp.
//	proxy/   — the generic iterator/reference machinery every
//	           distributed container instantiates over itself.
//	dvector/ — a dense distributed vector, the reference container for
//	           proxy and halo.
//	dsparse/ — a distributed sparse (CSR) matrix with two row/nnz
//	           distribution strategies.
//
// There is no top-level API beyond these packages; import the
// subpackage matching the container you need.
package drange
