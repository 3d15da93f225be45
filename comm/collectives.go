package comm

import "github.com/pkg/errors"

// Scatter distributes src, valid only on root, into dstInterior,
// contiguous per rank in rank order: rank 0 receives the first
// len(dstInterior) elements (as measured on rank 0), rank 1 the next
// slice sized by rank 1's own dstInterior, and so on. Every rank must
// call Scatter, including root (root's own dstInterior is filled from
// its own src). On a size mismatch every rank returns ErrSizeMismatch.
func Scatter[T any](c Communicator, root int, src []T, dstInterior []T) error {
	if root < 0 || root >= c.Size() {
		return errors.Wrapf(ErrRankOutOfRange, "comm: Scatter root %d", root)
	}

	type contribution struct {
		rank   int
		src    []T // non-nil only on root
		isRoot bool
		want   int
	}
	type outcome struct {
		chunks [][]T
		err    error
	}

	res := c.world.scatterRDV.join(c.rank, contribution{c.rank, src, c.rank == root, len(dstInterior)}, func(payloads []any) any {
		var rootSrc []T
		wants := make([]int, len(payloads))
		total := 0
		for _, p := range payloads {
			cb := p.(contribution)
			wants[cb.rank] = cb.want
			total += cb.want
			if cb.isRoot {
				rootSrc = cb.src
			}
		}
		if len(rootSrc) != total {
			return outcome{err: errors.Wrapf(ErrSizeMismatch,
				"comm: Scatter root has %d elements, ranks want %d total", len(rootSrc), total)}
		}
		chunks := make([][]T, len(payloads))
		offset := 0
		for r, want := range wants {
			chunks[r] = rootSrc[offset : offset+want]
			offset += want
		}
		return outcome{chunks: chunks}
	})

	out := res.(outcome)
	if out.err != nil {
		return out.err
	}
	copy(dstInterior, out.chunks[c.rank])
	return nil
}

// Gather is the inverse of Scatter: every rank contributes srcInterior;
// on root, dst (sized for the full concatenation in rank order) is
// filled. On other ranks dst is ignored. A size mismatch against dst's
// capacity on root is reported to every rank as ErrSizeMismatch.
func Gather[T any](c Communicator, root int, srcInterior []T, dst []T) error {
	if root < 0 || root >= c.Size() {
		return errors.Wrapf(ErrRankOutOfRange, "comm: Gather root %d", root)
	}

	type contribution struct {
		rank     int
		src      []T
		isRoot   bool
		dstLen   int
		hasDst   bool
	}
	type outcome struct {
		full []T
		err  error
	}

	res := c.world.gatherRDV.join(c.rank, contribution{
		rank: c.rank, src: srcInterior, isRoot: c.rank == root, dstLen: len(dst), hasDst: c.rank == root,
	}, func(payloads []any) any {
		total := 0
		var dstLen int
		var haveDst bool
		srcs := make([][]T, len(payloads))
		for _, p := range payloads {
			cb := p.(contribution)
			srcs[cb.rank] = cb.src
			total += len(cb.src)
			if cb.hasDst {
				dstLen = cb.dstLen
				haveDst = true
			}
		}
		if !haveDst || dstLen != total {
			return outcome{err: errors.Wrapf(ErrSizeMismatch,
				"comm: Gather destination has %d elements, ranks contribute %d total", dstLen, total)}
		}
		full := make([]T, 0, total)
		for _, s := range srcs {
			full = append(full, s...)
		}
		return outcome{full: full}
	})

	out := res.(outcome)
	if out.err != nil {
		return out.err
	}
	if c.rank == root {
		copy(dst, out.full)
	}
	return nil
}

// Broadcast distributes value from root to every rank; the value
// passed by non-root callers is ignored.
func Broadcast[T any](c Communicator, root int, value T) (T, error) {
	var zero T
	if root < 0 || root >= c.Size() {
		return zero, errors.Wrapf(ErrRankOutOfRange, "comm: Broadcast root %d", root)
	}

	type contribution struct {
		isRoot bool
		value  T
	}
	res := c.world.broadcastRDV.join(c.rank, contribution{c.rank == root, value}, func(payloads []any) any {
		for _, p := range payloads {
			cb := p.(contribution)
			if cb.isRoot {
				return cb.value
			}
		}
		var z T
		return z
	})
	return res.(T), nil
}
