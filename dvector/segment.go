package dvector

// Segment is the locality unit behind Vector.Segments: one rank's
// interior, exposed as a locally-iterable range. Segments is the only
// efficient iteration path for distributed algorithms — it never
// issues per-element RMA, unlike indexing through At/Get/Put.
type Segment[T any] struct {
	v    *Vector[T]
	rank int
}

// Rank reports which rank owns this segment.
func (s Segment[T]) Rank() int { return s.rank }

// Size reports the number of elements stored in this segment.
func (s Segment[T]) Size() int {
	first, last := s.v.topo.Interior(s.rank)
	return last - first
}

// Local returns this segment's interior as a plain Go slice, iff the
// segment is resident on the calling rank; otherwise ErrNotResident.
func (s Segment[T]) Local() ([]T, error) {
	if s.rank != s.v.c.Rank() {
		return nil, ErrNotResident
	}
	first, last := s.v.topo.Interior(s.rank)
	return s.v.win.Local()[first:last], nil
}

// SegmentAt returns the Segment owning global index i —
// v.SegmentAt(it.Index()).Local() is the iterator-level local view,
// succeeding iff that segment is resident on the calling rank.
func (v *Vector[T]) SegmentAt(i int) Segment[T] {
	rank, _ := v.topo.RankOffset(i)
	return Segment[T]{v: v, rank: rank}
}

// Segments returns, in rank order, a Segment handle for each rank's
// interior.
func (v *Vector[T]) Segments() []Segment[T] {
	out := make([]Segment[T], v.topo.Decomposition().Size())
	for r := range out {
		out[r] = Segment[T]{v: v, rank: r}
	}
	return out
}
