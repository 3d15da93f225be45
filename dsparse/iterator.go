package dsparse

import "github.com/arnauddri/drange/proxy"

// Iterator and Reference instantiate package proxy's read-only proxy
// machinery over *Matrix[T]: dereferencing yields a reconstructed
// Entry[T], not a writable slot — matrices are built read-only via
// NewFromRoot, with no remote Put.
type (
	Iterator[T any]  = proxy.ROIterator[Entry[T], *Matrix[T]]
	Reference[T any] = proxy.ROReference[Entry[T], *Matrix[T]]
)

// Begin returns the iterator at global nnz index 0, in row-major CSR
// order.
func (m *Matrix[T]) Begin() Iterator[T] { return proxy.NewROIterator[Entry[T]](m, 0) }

// End returns the one-past-the-last iterator, at global nnz index
// m.Size().
func (m *Matrix[T]) End() Iterator[T] { return proxy.NewROIterator[Entry[T]](m, m.Size()) }

// At returns the proxy Reference at global nnz index i.
func (m *Matrix[T]) At(i int) Reference[T] {
	return proxy.NewROIterator[Entry[T]](m, i).Deref()
}

// Congruent reports whether it is exactly m.Begin().
func (m *Matrix[T]) Congruent(it Iterator[T]) bool {
	return it.Equal(m.Begin())
}

// CongruentRange reports whether [first, last) spans m's entire nnz
// space.
func (m *Matrix[T]) CongruentRange(first, last Iterator[T]) bool {
	return first.Equal(m.Begin()) && last.Equal(m.End())
}
