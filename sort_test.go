package seq

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortBy(t *testing.T) {
	s := SortFunc(OfSlice([]int{3, 1, 2}), cmp.Compare[int])
	v, ok := Nth(s, 0)
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = Nth(s, 2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	require.Equal(t, []Pair[int, int]{{1, 1}, {2, 2}, {3, 0}}, collect(Sort(OfSlice([]int{3, 1, 2}))))
	require.Equal(t, []int{1, 2, 3}, ToSlice(Sort(Filter(OfSlice([]int{3, 1, 2}), always[int, int]))))
	require.Empty(t, ToSlice(Sort(OfSlice([]int{}))))

	desc := SortBy(OfSlice([]int{3, 1, 2}), func(v1 int, _ int, v2 int, _ int) int { return v2 - v1 })
	require.Equal(t, []int{3, 2, 1}, ToSlice(desc))
}

func TestSortStable(t *testing.T) {
	words := []string{"b1", "a1", "b2", "a2", "b3"}
	byLetter := func(a, b string) int { return strings.Compare(a[:1], b[:1]) }
	require.Equal(t, []string{"a1", "a2", "b1", "b2", "b3"}, ToSlice(SortFunc(OfSlice(words), byLetter)))
}

func TestSortOnce(t *testing.T) {
	calls := 0
	s := SortFunc(OfSlice([]int{5, 3, 4, 1, 2}), func(a, b int) int {
		calls++
		return a - b
	})
	require.Zero(t, calls)
	require.Equal(t, 5, Len(s))
	n := calls
	require.NotZero(t, n)

	v, ok := Nth(s, 4)
	require.True(t, ok)
	require.Equal(t, 5, v)
	MoveNext(s)
	require.Equal(t, []int{3, 4}, ToSlice(Slice(s, 1, 3)))
	require.Equal(t, n, calls)
}

func TestSortSub(t *testing.T) {
	s := Sort(OfSlice([]int{5, 4, 3, 2, 1}))
	require.Equal(t, []int{2, 3}, ToSlice(Slice(s, 1, 3)))

	s = Sort(OfSlice([]int{5, 4, 3, 2, 1}))
	require.Equal(t, []int{4, 5}, ToSlice(Skip(s, 3)))

	require.PanicsWithValue(t, ErrUnbounded, func() { Len(Sort(Iota(0, 1))) })
}
