// Package decomp: core types — Method, Decomposition, Stencil, and the
// sentinel error set every constructor and validator in this package
// panics with (wrapped, so recover-side code can still errors.Is).
//
// Errors:
//
//	ErrInvalidSize     - N is negative, or smaller than required by a halo radius.
//	ErrInvalidRank     - a rank argument falls outside [0, size).
//	ErrInvalidRadius   - a stencil radius is negative.
//	ErrInvalidBlock    - a block-cyclic block size is <= 0.
//	ErrIndexOutOfRange - a global index falls outside [0, N).

package decomp

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for decomposition and stencil validation.
var (
	// ErrInvalidSize indicates a non-positive or halo-incompatible size.
	ErrInvalidSize = errors.New("decomp: invalid size")

	// ErrInvalidRank indicates a rank argument outside [0, size).
	ErrInvalidRank = errors.New("decomp: rank out of range")

	// ErrInvalidRadius indicates a negative stencil radius.
	ErrInvalidRadius = errors.New("decomp: invalid stencil radius")

	// ErrInvalidBlock indicates a non-positive block-cyclic block size.
	ErrInvalidBlock = errors.New("decomp: invalid block-cyclic block size")

	// ErrIndexOutOfRange indicates a global index outside [0, N).
	ErrIndexOutOfRange = errors.New("decomp: index out of range")
)

// Method names how a Decomposition splits a global index space across
// ranks.
type Method int

const (
	// MethodDiv splits the index space into P contiguous blocks of
	// ceil(N/P) elements; the trailing ranks hold what remains, which
	// may be a shorter or empty block.
	MethodDiv Method = iota

	// MethodCyclic assigns index i to rank i%P — round-robin.
	MethodCyclic

	// MethodBlockCyclic assigns contiguous blocks of Block elements to
	// ranks in round-robin order: block b (elements [b*Block,
	// (b+1)*Block)) is owned by rank b%P.
	MethodBlockCyclic
)

// String renders the method the way log lines and test failures want to
// see it.
func (m Method) String() string {
	switch m {
	case MethodDiv:
		return "div"
	case MethodCyclic:
		return "cyclic"
	case MethodBlockCyclic:
		return "block_cyclic"
	default:
		return "unknown"
	}
}

// Decomposition is an immutable value describing how a container of a
// given size is split across the ranks of a communicator. Two
// Decompositions compare equal (via Equal) — and hence conform — iff
// their Method, Size and Block agree and, for block-cyclic, their salt
// setting (WithBlockCyclicSalt) is the same.
type Decomposition struct {
	method Method
	size   int // number of ranks, P
	block  int // block size, only meaningful for MethodBlockCyclic

	salted bool
	salt   uint64 // xxhash seed, only meaningful when salted
}

// NewDiv builds an equal-block Decomposition over size ranks.
func NewDiv(size int) Decomposition {
	if size <= 0 {
		panic(fmt.Errorf("%w: NewDiv: size %d must be positive", ErrInvalidSize, size))
	}
	return Decomposition{method: MethodDiv, size: size}
}

// NewCyclic builds a round-robin Decomposition over size ranks.
func NewCyclic(size int) Decomposition {
	if size <= 0 {
		panic(fmt.Errorf("%w: NewCyclic: size %d must be positive", ErrInvalidSize, size))
	}
	return Decomposition{method: MethodCyclic, size: size}
}

// BlockCyclicOption customizes NewBlockCyclic's block-to-rank
// assignment.
type BlockCyclicOption func(*Decomposition)

// WithBlockCyclicSalt replaces the plain round-robin block assignment
// (block b -> rank b%size) with a pseudo-random one: block b is
// assigned to rank hash(salt, b) % size, via xxhash/v2. Useful when
// round-robin would correlate block ownership with some property of
// the data (e.g. every block's first row length), concentrating load
// on a few ranks; salting decorrelates the assignment while staying
// fully deterministic and reproducible given the same salt.
func WithBlockCyclicSalt(salt string) BlockCyclicOption {
	return func(d *Decomposition) {
		d.salted = true
		d.salt = xxhash.Sum64String(salt)
	}
}

// NewBlockCyclic builds a block-cyclic Decomposition over size ranks
// with the given block length.
func NewBlockCyclic(size, block int, opts ...BlockCyclicOption) Decomposition {
	if size <= 0 {
		panic(fmt.Errorf("%w: NewBlockCyclic: size %d must be positive", ErrInvalidSize, size))
	}
	if block <= 0 {
		panic(fmt.Errorf("%w: NewBlockCyclic: block %d must be positive", ErrInvalidBlock, block))
	}
	d := Decomposition{method: MethodBlockCyclic, size: size, block: block}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// blockRank reports which rank owns block blockIdx, honoring a salted
// assignment when configured.
func (d Decomposition) blockRank(blockIdx int) int {
	if !d.salted {
		return blockIdx % d.size
	}
	h := xxhash.Sum64String(fmt.Sprintf("%d:%d", d.salt, blockIdx))
	return int(h % uint64(d.size))
}

// Method reports how this Decomposition splits the index space.
func (d Decomposition) Method() Method { return d.method }

// Size reports the number of ranks, P.
func (d Decomposition) Size() int { return d.size }

// Block reports the block-cyclic block length (0 for other methods).
func (d Decomposition) Block() int { return d.block }

// Equal reports whether d and other describe the same partitioning
// policy. Conformance between two containers requires Equal
// decompositions and equal sizes.
func (d Decomposition) Equal(other Decomposition) bool {
	return d == other
}

// Stencil is a halo radius, in elements, on either side of a rank's
// interior, plus a periodicity flag. A zero Stencil (Stencil{}) means no
// halo.
type Stencil struct {
	Prev     int
	Next     int
	Periodic bool
}

// NewStencil builds a symmetric halo of the given radius.
func NewStencil(radius int, periodic bool) Stencil {
	if radius < 0 {
		panic(fmt.Errorf("%w: NewStencil: radius %d", ErrInvalidRadius, radius))
	}
	return Stencil{Prev: radius, Next: radius, Periodic: periodic}
}

// NewAsymmetricStencil builds a halo with independent leading/trailing
// radii.
func NewAsymmetricStencil(prev, next int, periodic bool) Stencil {
	if prev < 0 || next < 0 {
		panic(fmt.Errorf("%w: NewAsymmetricStencil: prev=%d next=%d", ErrInvalidRadius, prev, next))
	}
	return Stencil{Prev: prev, Next: next, Periodic: periodic}
}

// IsZero reports whether this Stencil carries no halo at all.
func (s Stencil) IsZero() bool { return s.Prev == 0 && s.Next == 0 }
