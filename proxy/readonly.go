package proxy

// ROIterator is the immutable counterpart to Iterator, over an
// ROContainer. Used by containers whose entries cannot be written
// back through the iterator — a sparse matrix segment yields
// ((row,col), value) triples this way.
type ROIterator[T any, C ROContainer[T]] struct {
	container C
	index     int
}

// NewROIterator builds a read-only iterator at index over c.
func NewROIterator[T any, C ROContainer[T]](c C, index int) ROIterator[T, C] {
	return ROIterator[T, C]{container: c, index: index}
}

// Index reports this iterator's current position.
func (it ROIterator[T, C]) Index() int { return it.index }

// Container returns the backing container this iterator addresses.
func (it ROIterator[T, C]) Container() C { return it.container }

// Deref returns the read-only proxy Reference this iterator addresses.
func (it ROIterator[T, C]) Deref() ROReference[T, C] {
	checkNonSingular(it.container)
	return ROReference[T, C]{it: it}
}

// At returns *(it + n).
func (it ROIterator[T, C]) At(n int) ROReference[T, C] {
	return it.Add(n).Deref()
}

// Add returns it advanced by n.
func (it ROIterator[T, C]) Add(n int) ROIterator[T, C] {
	it.index += n
	return it
}

// Sub returns it moved back by n.
func (it ROIterator[T, C]) Sub(n int) ROIterator[T, C] {
	it.index -= n
	return it
}

// Diff returns it - other. Both iterators must address the same
// container.
func (it ROIterator[T, C]) Diff(other ROIterator[T, C]) int {
	checkSameContainer(it.container, other.container)
	return it.index - other.index
}

// Equal reports whether it and other address the same container at
// the same index.
func (it ROIterator[T, C]) Equal(other ROIterator[T, C]) bool {
	return it.container == other.container && it.index == other.index
}

// Less orders iterators lexicographically on (container, index).
func (it ROIterator[T, C]) Less(other ROIterator[T, C]) bool {
	checkSameContainer(it.container, other.container)
	return it.index < other.index
}

// ROReference permits only conversion to T: no Set, no write-through.
type ROReference[T any, C ROContainer[T]] struct {
	it ROIterator[T, C]
}

// Value executes container.Get(index).
func (r ROReference[T, C]) Value() T {
	return r.it.container.Get(r.it.index)
}

// Addr returns the Iterator this Reference was dereferenced from.
func (r ROReference[T, C]) Addr() ROIterator[T, C] {
	return r.it
}
