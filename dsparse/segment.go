package dsparse

// Segment is the locality unit of a Matrix: one rank's stored
// non-zeros, in original CSR order. It implements
// proxy.ROContainer[Entry[T]] (Get is segment-local), so
// proxy.NewROIterator builds a read-only iterator over it directly.
type Segment[T any] struct {
	m    *Matrix[T]
	rank int
}

// Rank reports which rank owns this segment.
func (s Segment[T]) Rank() int { return s.rank }

// Size reports the number of stored nnz in this segment.
func (s Segment[T]) Size() int {
	rg := s.m.ranges[s.rank]
	return rg[1] - rg[0]
}

// Reserved reports this segment's storage capacity. This
// implementation allocates segments exactly to size, so Reserved
// always equals Size; a capacity-over-provisioning allocator would
// diverge the two.
func (s Segment[T]) Reserved() int { return s.Size() }

// Get implements proxy.ROContainer[Entry[T]]: k is a segment-local
// nnz offset, not a global index.
func (s Segment[T]) Get(k int) Entry[T] {
	return s.m.reconstructOne(s.rank, k)
}

// Local returns this segment's entries as a plain slice, reconstructed
// in one batched pass, iff the segment is resident on the calling
// rank.
func (s Segment[T]) Local() ([]Entry[T], error) {
	if s.rank != s.m.c.Rank() {
		return nil, ErrNotResident
	}
	return s.m.reconstructRange(s.rank, 0, s.Size()), nil
}

// SegmentAt returns the Segment holding global nnz index i — every
// iterator's segment index is recoverable as
// m.SegmentAt(it.Index()).Rank(), and m.SegmentAt(it.Index()).Local()
// is the iterator-level local view: it succeeds iff that segment is
// resident on the calling rank.
func (m *Matrix[T]) SegmentAt(i int) Segment[T] {
	rank, _ := m.rankOffset(i)
	return Segment[T]{m: m, rank: rank}
}

// Segments returns one Segment per rank, indexable in rank order.
func (m *Matrix[T]) Segments() []Segment[T] {
	out := make([]Segment[T], len(m.ranges))
	for r := range out {
		out[r] = Segment[T]{m: m, rank: r}
	}
	return out
}
