// Package halo exchanges ghost cells between neighboring ranks of a
// dvector.Vector: each rank's leading/trailing stencil radius is filled
// with a copy of the adjacent rank's boundary interior elements, via
// one-sided get/put against the vector's window followed by a fence.
// Exchange is explicit: ordinary element access never consults the
// halo.
package halo
