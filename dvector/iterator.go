package dvector

import "github.com/arnauddri/drange/proxy"

// Iterator and Reference instantiate package proxy's generic proxy
// machinery over *Vector[T]: Iterator is a random-access handle
// carrying only a (vector, index) pair, Reference the lvalue proxy a
// dereference yields.
type (
	Iterator[T any]  = proxy.Iterator[T, *Vector[T]]
	Reference[T any] = proxy.Reference[T, *Vector[T]]
)

// Begin returns the iterator at global index 0.
func (v *Vector[T]) Begin() Iterator[T] { return proxy.NewIterator[T](v, 0) }

// End returns the one-past-the-last iterator, at global index N.
func (v *Vector[T]) End() Iterator[T] { return proxy.NewIterator[T](v, v.n) }

// At returns the proxy Reference at global index i — the Go rendering
// of dv[i].
func (v *Vector[T]) At(i int) Reference[T] {
	return proxy.NewIterator[T](v, i).Deref()
}

// Congruent reports whether it is exactly v.Begin().
func (v *Vector[T]) Congruent(it Iterator[T]) bool {
	return it.Equal(v.Begin())
}

// CongruentRange reports whether [first, last) spans v's entire index
// space.
func (v *Vector[T]) CongruentRange(first, last Iterator[T]) bool {
	return first.Equal(v.Begin()) && last.Equal(v.End())
}
