package proxy

// Reference is the lvalue proxy returned by dereferencing an Iterator.
// Remote memory cannot hand back a native lvalue, so this object
// stands in for one: converting it to T (Value) performs exactly one
// Container.Get, assigning into it (Set) performs exactly one
// Container.Put. Taking its Addr returns the Iterator it came from,
// so Addr() == it.
type Reference[T any, C Container[T]] struct {
	it Iterator[T, C]
}

// Value executes container.Get(index) — the read-on-convert half of
// the proxy contract.
func (r Reference[T, C]) Value() T {
	return r.it.container.Get(r.it.index)
}

// Set executes container.Put(index, v) — the write-on-assign half. In
// a chained expression such as `dv[i] = dv[j] + 1`, callers must
// evaluate the right-hand side's Value() before calling Set, so the
// read completes before the write.
func (r Reference[T, C]) Set(v T) {
	r.it.container.Put(r.it.index, v)
}

// SetFrom assigns from another reference's current value — the
// rendering of `*it = *other`, reading other before writing through r.
func (r Reference[T, C]) SetFrom(other Reference[T, C]) {
	r.Set(other.Value())
}

// Addr returns the Iterator this Reference was dereferenced from.
func (r Reference[T, C]) Addr() Iterator[T, C] {
	return r.it
}
