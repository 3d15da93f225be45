// Package proxy implements the random-access iterator / proxy-reference
// machinery that lets dv[i] = x and x = dv[i] read like local memory
// while actually issuing a remote get or put.
//
// Go has no operator overloading, so where a distributed-range library
// in a language with operator overloading would override *, & and
// assignment, this package exposes the same behavior through explicit
// types: Iterator holds a (container, index) pair and never
// communicates; Reference is the lvalue proxy returned by
// dereferencing an Iterator, converting-to-T on read and
// assigning-through on write. A read-only variant (ROIterator/
// ROReference) covers containers, like a sparse segment, whose entries
// cannot be written back through the iterator.
package proxy
