package proxy

// Iterator is a random-access handle into a Container: a non-owning
// (container, index) pair — it holds a raw back-reference and never
// outlives, nor extends, the container's lifetime. Arithmetic only
// adjusts index; it never communicates.
type Iterator[T any, C Container[T]] struct {
	container C
	index     int
}

// NewIterator builds an Iterator at the given index over c. Callers
// normally reach this through a container's Begin/End rather than
// directly.
func NewIterator[T any, C Container[T]](c C, index int) Iterator[T, C] {
	return Iterator[T, C]{container: c, index: index}
}

// Index reports this iterator's current position.
func (it Iterator[T, C]) Index() int { return it.index }

// Container returns the backing container this iterator addresses.
func (it Iterator[T, C]) Container() C { return it.container }

// Deref returns the proxy Reference this iterator addresses — the Go
// rendering of unary *it.
func (it Iterator[T, C]) Deref() Reference[T, C] {
	checkNonSingular(it.container)
	return Reference[T, C]{it: it}
}

// At returns *(it + n) — the Go rendering of it[n].
func (it Iterator[T, C]) At(n int) Reference[T, C] {
	return it.Add(n).Deref()
}

// Add returns it advanced by n (may be negative). Pure index
// arithmetic; never communicates.
func (it Iterator[T, C]) Add(n int) Iterator[T, C] {
	it.index += n
	return it
}

// Sub returns it moved back by n.
func (it Iterator[T, C]) Sub(n int) Iterator[T, C] {
	it.index -= n
	return it
}

// Diff returns it - other, the number of elements between them. Both
// iterators must address the same container.
func (it Iterator[T, C]) Diff(other Iterator[T, C]) int {
	checkSameContainer(it.container, other.container)
	return it.index - other.index
}

// Equal reports whether it and other address the same container at
// the same index: both container identity and equal index are
// required.
func (it Iterator[T, C]) Equal(other Iterator[T, C]) bool {
	return it.container == other.container && it.index == other.index
}

// Less orders iterators lexicographically on (container, index);
// undefined (debug-checked) across distinct containers.
func (it Iterator[T, C]) Less(other Iterator[T, C]) bool {
	checkSameContainer(it.container, other.container)
	return it.index < other.index
}
