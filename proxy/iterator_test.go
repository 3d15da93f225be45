package proxy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnauddri/drange/proxy"
)

// slabContainer is the simplest possible proxy.Container: a pointer to
// a plain slice, standing in for a real dvector.Vector in these
// container-agnostic iterator tests.
type slabContainer struct {
	data []int
}

func (s *slabContainer) Get(i int) int    { return s.data[i] }
func (s *slabContainer) Put(i int, v int) { s.data[i] = v }

func TestIteratorArithmeticIdentities(t *testing.T) {
	r := require.New(t)
	c := &slabContainer{data: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}

	begin := proxy.NewIterator[int](c, 0)
	end := proxy.NewIterator[int](c, len(c.data))

	// (it - jt) == -(jt - it)
	r.Equal(-(end.Diff(begin)), begin.Diff(end))

	// (it + n) - it == n
	const n = 4
	r.Equal(n, begin.Add(n).Diff(begin))

	// it + 10 == end when N == 10
	r.True(begin.Add(10).Equal(end))
}

func TestIteratorEqualityRequiresSameContainerAndIndex(t *testing.T) {
	r := require.New(t)
	c1 := &slabContainer{data: make([]int, 10)}
	c2 := &slabContainer{data: make([]int, 10)}

	it1 := proxy.NewIterator[int](c1, 5)
	it2 := proxy.NewIterator[int](c1, 5)
	it3 := proxy.NewIterator[int](c2, 5)

	r.True(it1.Equal(it2), "same container, same index")
	r.False(it1.Equal(it3), "different container, same index")
}

func TestReferenceReadOnConvertWriteOnAssign(t *testing.T) {
	r := require.New(t)
	c := &slabContainer{data: []int{10, 20, 30}}

	it := proxy.NewIterator[int](c, 1)
	ref := it.Deref()
	r.Equal(20, ref.Value())

	ref.Set(99)
	r.Equal(99, c.data[1])

	// &*it == it
	r.True(ref.Addr().Equal(it))
}

func TestIteratorIndexedDereference(t *testing.T) {
	r := require.New(t)
	c := &slabContainer{data: []int{1, 2, 3, 4, 5}}
	begin := proxy.NewIterator[int](c, 0)

	r.Equal(4, begin.At(3).Value())

	begin.At(0).Set(100)
	r.Equal(100, c.data[0])
}

func TestReferenceSetFromSequencesReadBeforeWrite(t *testing.T) {
	r := require.New(t)
	c := &slabContainer{data: []int{1, 2, 3}}
	it := proxy.NewIterator[int](c, 0)

	// dv[0] = dv[2]; the source's Value() must be read before the
	// target's Set. Trivial for local data, but remote get/put rely on
	// this sequencing.
	it.Deref().SetFrom(it.Add(2).Deref())
	r.Equal(3, c.data[0])
}
