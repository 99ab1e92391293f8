package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ToSlice(Chunk(OfSlice(xs), 2, true)))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, ToSlice(Chunk(OfSlice(xs), 2, false)))
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ToSlice(Chunk(Filter(OfSlice(xs), always[int, int]), 2, true)))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, ToSlice(Chunk(Filter(OfSlice(xs), always[int, int]), 2, false)))
	require.Empty(t, ToSlice(Chunk(OfSlice([]int{}), 2, true)))

	require.PanicsWithValue(t, ErrBadRange, func() { Chunk(OfSlice(xs), 0, true) })

	c := Chunk(Filter(OfSlice(xs), always[int, int]), 2, true)
	v, ok := Current(c)
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, v)
	MoveNext(c)
	require.Equal(t, [][]int{{3, 4}, {5}}, ToSlice(c))

	c = Chunk(Filter(OfSlice(xs), always[int, int]), 2, false)
	MoveNext(c)
	MoveNext(c)
	_, ok = Current(c)
	require.False(t, ok)
}

func TestChunkIdx(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	require.Equal(t, 3, Len(ChunkIdx(OfSlice(xs), 2, true)))
	require.Equal(t, 2, Len(ChunkIdx(OfSlice(xs), 2, false)))

	c := ChunkIdx(OfSlice(xs), 2, true)
	v, ok := Nth(c, 1)
	require.True(t, ok)
	require.Equal(t, []int{3, 4}, v)
	v, ok = Nth(c, 2)
	require.True(t, ok)
	require.Equal(t, []int{5}, v)
	_, ok = Nth(c, 3)
	require.False(t, ok)
	MoveNext(c)
	require.Equal(t, 2, Len(c))
	v, ok = Current(c)
	require.True(t, ok)
	require.Equal(t, []int{3, 4}, v)

	c = ChunkIdx(OfSlice(xs), 2, false)
	_, ok = Nth(c, 2)
	require.False(t, ok)

	s := Slice(Chunk(Range(1, 8), 3, true), 1, 3)
	require.Equal(t, [][]int{{4, 5, 6}, {7}}, ToSlice(s))

	inf := ChunkIdx(Iota(0, 1), 2, true)
	require.Equal(t, Unbounded, Len(inf))
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, ToSlice(Take(inf, 2)))
}

func TestChunkLength(t *testing.T) {
	for l := range 20 {
		for n := 1; n <= 5; n++ {
			ceil := (l + n - 1) / n
			require.Equal(t, ceil, Len(ChunkIdx(Range(0, l), n, true)), "len %d n %d", l, n)
			require.Equal(t, l/n, Len(ChunkIdx(Range(0, l), n, false)), "len %d n %d", l, n)
			require.Equal(t, ceil, Count(Chunk(Filter(Range(0, l), always[int, Unit]), n, true)), "len %d n %d", l, n)
			require.Equal(t, l/n, Count(Chunk(Filter(Range(0, l), always[int, Unit]), n, false)), "len %d n %d", l, n)
			require.Equal(t, ceil, Count(Chunk(Range(0, l), n, true)), "len %d n %d", l, n)
		}
	}
}

func TestSplitBy(t *testing.T) {
	odd := func(v, _ int) bool { return v%2 == 1 }
	even := func(v, _ int) bool { return v%2 == 0 }

	require.Equal(t, [][]int{{}, {2}, {4}}, ToSlice(SplitBy(OfSlice([]int{1, 2, 3, 4}), odd, false, true)))

	xs := []int{1, 2, 3, 4, 6}
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {6}, {}}, ToSlice(SplitBy(OfSlice(xs), even, true, true)))
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {6}}, ToSlice(SplitBy(OfSlice(xs), even, true, false)))
	require.Equal(t, [][]int{{1}, {3}, {}}, ToSlice(SplitBy(OfSlice(xs), even, false, false)))

	require.Equal(t, [][]int{{}}, ToSlice(SplitBy(OfSlice([]int{}), odd, false, true)))
	require.Empty(t, ToSlice(SplitBy(OfSlice([]int{}), odd, false, false)))

	s := SplitBy(OfSlice([]int{1, 2, 3, 4}), odd, false, true)
	v, ok := Current(s)
	require.True(t, ok)
	require.Equal(t, []int{}, v)
	MoveNext(s)
	require.Equal(t, [][]int{{2}, {4}}, ToSlice(s))

	s = SplitBy(OfSlice([]int{1, 2}), odd, false, true)
	MoveNext(s)
	MoveNext(s)
	_, ok = Current(s)
	require.False(t, ok)
}
