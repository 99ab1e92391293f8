package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	over := OfMap(map[int]string{1: "a", 3: "c"})
	base := OfMap(map[int]string{1: "A", 2: "B", 3: "C", 4: "D"})
	want := []Pair[string, int]{{"a", 1}, {"B", 2}, {"c", 3}, {"D", 4}}
	require.Equal(t, want, collect(Merge(over, base)))

	m := Merge(OfMap(map[int]string{1: "a", 3: "c"}), OfMap(map[int]string{1: "A", 2: "B", 3: "C", 4: "D"}))
	for _, p := range want {
		v, k, ok := CurrentKV(m)
		require.True(t, ok)
		require.Equal(t, p, Pair[string, int]{v, k})
		MoveNext(m)
	}
	_, ok := Current(m)
	require.False(t, ok)
}

func TestMergeEmpty(t *testing.T) {
	base := OfMap(map[int]string{1: "A", 2: "B"})
	require.Equal(t, []string{"A", "B"}, ToSlice(Merge(Empty[string, int](), base)))
	over := OfMap(map[int]string{1: "a"})
	require.Equal(t, []string{"a"}, ToSlice(Merge(over, Empty[string, int]())))
	require.Empty(t, ToSlice(Merge(Empty[string, int](), Empty[string, int]())))
}

func TestMergeFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	over := Reverse(OfMap(map[int]string{4: "d", 2: "b"}))
	base := Reverse(OfMap(map[int]string{3: "C", 2: "B", 1: "A"}))
	require.Equal(t, []string{"d", "C", "b", "A"}, ToSlice(MergeFunc(Seq[string, int](over), base, desc)))
}
