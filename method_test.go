package seq

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionPoint(t *testing.T) {
	from := func(n int) func(int, Unit) bool {
		return func(v int, _ Unit) bool { return v >= n }
	}
	s := Range(0, 1000)
	require.Equal(t, 200, PartitionPoint(s, from(200)))
	require.Equal(t, 0, PartitionPoint(s, from(0)))
	require.Equal(t, 1000, PartitionPoint(s, from(1000)))

	// s is still usable afterwards.
	require.Equal(t, 1000, Len(s))
	require.Equal(t, 499500, Sum(s))

	require.Equal(t, 0, PartitionPoint(OfSlice([]int{}), func(int, int) bool { return true }))
	require.PanicsWithValue(t, ErrUnbounded, func() { PartitionPoint(Iota(0, 1), from(3)) })
}

func TestBinarySearch(t *testing.T) {
	s := OfSlice([]int{1, 3, 5, 7})
	search := func(x int) func(int, int) int {
		return func(v int, _ int) int { return cmp.Compare(v, x) }
	}
	i, ok := BinarySearchFunc(s, search(5))
	require.True(t, ok)
	require.Equal(t, 2, i)
	i, ok = BinarySearchFunc(s, search(4))
	require.False(t, ok)
	require.Equal(t, 2, i)
	i, ok = BinarySearchFunc(s, search(8))
	require.False(t, ok)
	require.Equal(t, 4, i)
	i, ok = BinarySearchFunc(s, search(0))
	require.False(t, ok)
	require.Equal(t, 0, i)

	m := OfMap(map[string]int{"a": 1, "c": 2, "e": 3})
	i, ok = BinarySearchKey(m, "c")
	require.True(t, ok)
	require.Equal(t, 1, i)
	i, ok = BinarySearchKey(m, "d")
	require.False(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, []int{1, 2, 3}, ToSlice(m))
}

func TestNonConsuming(t *testing.T) {
	s := OfSlice([]string{"x", "y", "z"})
	v, k, ok := NthKV(s, 1)
	require.True(t, ok)
	require.Equal(t, "y", v)
	require.Equal(t, 1, k)
	_, ok = Nth(s, -1)
	require.False(t, ok)

	v, k, ok = RCurrentKV(s)
	require.True(t, ok)
	require.Equal(t, "z", v)
	require.Equal(t, 2, k)
	RMoveNext(s)
	MoveNext(s)
	require.Equal(t, 1, Len(s))
	require.Equal(t, []string{"y"}, ToSlice(s))

	require.PanicsWithValue(t, ErrUsed, func() { Len(s) })
	require.PanicsWithValue(t, ErrUsed, func() { Current(s) })
	require.PanicsWithValue(t, ErrUsed, func() { MoveNext(s) })
	require.PanicsWithValue(t, ErrUsed, func() { RCurrent(s) })
	require.PanicsWithValue(t, ErrUnbounded, func() { RCurrent(Iota(0, 1)) })
	require.PanicsWithValue(t, ErrUnbounded, func() { RMoveNext(Repeat("a", Unbounded)) })
}
