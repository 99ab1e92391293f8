package seq

import (
	"errors"
	"iter"
	"math"
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOfSlice(t *testing.T) {
	s := OfSlice([]string{"a", "b", "c"})
	require.Equal(t, []Pair[string, int]{{"a", 0}, {"b", 1}, {"c", 2}}, collect(s))

	s = OfSlice([]string{"a", "b", "c", "d"})
	require.Equal(t, 4, Len(s))
	v, ok := Nth(s, 2)
	require.True(t, ok)
	require.Equal(t, "c", v)
	_, ok = Nth(s, 4)
	require.False(t, ok)
	_, ok = Nth(s, -1)
	require.False(t, ok)

	MoveNext(s)
	RMoveNext(s)
	v, k, ok := CurrentKV(s)
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, 1, k)
	v, k, ok = RCurrentKV(s)
	require.True(t, ok)
	require.Equal(t, "c", v)
	require.Equal(t, 2, k)

	// positions are relative to the front, keys stay absolute
	require.Equal(t, []Pair[string, int]{{"c", 2}}, collect(Slice(s, 1, 5)))
}

func TestOfSliceEmpty(t *testing.T) {
	s := OfSlice[int](nil)
	_, ok := Current(s)
	require.False(t, ok)
	MoveNext(s)
	_, ok = RCurrent(s)
	require.False(t, ok)
	require.Empty(t, ToSlice(s))
}

func TestRange(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3, 4}, ToSlice(Range(0, 5)))
	require.Equal(t, []int{5, 4, 3, 2, 1}, ToSlice(Range(5, 0)))
	require.Empty(t, ToSlice(Range(3, 3)))
	require.Equal(t, []int{0, 3, 6, 9}, ToSlice(RangeStep(0, 10, 3)))
	require.Equal(t, []int{10, 7, 4, 1}, ToSlice(RangeStep(10, 0, -3)))
	require.Empty(t, ToSlice(RangeStep(0, 10, -1)))
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75}, ToSlice(RangeStep(0.0, 1.0, 0.25)))
	require.Equal(t, []float64{0, 0.4, 0.8}, ToSlice(RangeStep(0.0, 1.0, 0.4)))

	require.Empty(t, ToSlice(RangeStep(1, 1, 0)))
	require.Equal(t, []int{3, 3, 3}, ToSlice(Take(RangeStep(3, 5, 0), 3)))
	require.Equal(t, Unbounded, Len(RangeStep(3, 5, 0)))

	require.Equal(t, []int{1, 3, 5, 7}, ToSlice(Take(Iota(1, 2), 4)))
	require.Equal(t, []int{20, 21}, ToSlice(Slice(Iota(0, 1), 20, 22)))

	r := Range(0, 10)
	v, ok := Nth(r, 7)
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, []int{9, 8, 7}, ToSlice(Take(Reverse(r), 3)))
}

func TestRangeNarrowTypes(t *testing.T) {
	r := Range[int8](-100, 100)
	require.Equal(t, 200, Len(r))
	v, ok := Nth(r, 0)
	require.True(t, ok)
	require.Equal(t, int8(-100), v)
	v, ok = RCurrent(r)
	require.True(t, ok)
	require.Equal(t, int8(99), v)
	require.Len(t, ToSlice(r), 200)

	require.Equal(t, 200, Count(Range[int8](100, -100)))
	require.Equal(t, 255, Len(Range[int8](-128, 127)))
	require.Equal(t, []int8{126, 125}, ToSlice(Take(Reverse(Range[int8](-128, 127)), 2)))
	require.Equal(t, []int8{100, 50, 0, -50}, ToSlice(RangeStep[int8](100, -100, -50)))
	require.Equal(t, []int8{-128, -1, 126}, ToSlice(RangeStep[int8](-128, 127, 127)))

	require.Equal(t, 255, Len(Range[uint8](0, 255)))
	require.Equal(t, []uint8{0, 100, 200}, ToSlice(RangeStep[uint8](0, 255, 100)))
	last, ok := Last(Range[uint8](0, 255))
	require.True(t, ok)
	require.Equal(t, uint8(254), last)

	require.Equal(t, []int{math.MinInt, -1, math.MaxInt - 1}, ToSlice(RangeStep(math.MinInt, math.MaxInt, math.MaxInt)))
	require.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1}, ToSlice(Range(math.MaxInt-2, math.MaxInt)))
	require.Equal(t, Unbounded, Len(Range(math.MinInt, math.MaxInt)))
}

func TestRangeUnsignedDown(t *testing.T) {
	require.Equal(t, []uint{5, 4, 3, 2, 1}, ToSlice(Range[uint](5, 0)))
	require.Equal(t, []uint{1, 2, 3, 4, 5}, ToSlice(Reverse(Range[uint](5, 0))))
	require.Equal(t, 255, Len(Range[uint8](255, 0)))

	r := Range[uint8](255, 0)
	v, ok := Nth(r, 254)
	require.True(t, ok)
	require.Equal(t, uint8(1), v)
	require.Equal(t, []uint8{253, 252}, ToSlice(Slice(r, 2, 4)))

	require.Empty(t, ToSlice(Range[uint](3, 3)))
}

func TestRepeat(t *testing.T) {
	require.Equal(t, []string{"x", "x", "x"}, ToSlice(Repeat("x", 3)))
	require.Empty(t, ToSlice(Repeat("x", -1)))
	require.Zero(t, Count(Empty[int, string]()))
	require.Equal(t, []int{7}, ToSlice(Once(7)))
	require.Equal(t, []Pair[string, string]{{"v", "k"}}, collect(OnceKV("v", "k")))
	require.Equal(t, []Pair[int, int]{{1, 2}, {1, 2}}, collect(RepeatKV(1, 2, 2)))
	require.Equal(t, []string{"x", "x"}, ToSlice(Take(Repeat("x", Unbounded), 2)))
	require.Equal(t, 2, Len(SliceBidi(Repeat("x", 5), 1, 3)))
}

func TestIterate(t *testing.T) {
	double := func(v int) int { return v * 2 }
	require.Equal(t, []int{1, 2, 4, 8, 16}, ToSlice(Take(Iterate(1, double), 5)))

	s := Iterate(1, double)
	MoveNext(s)
	MoveNext(s)
	v, ok := Current(s)
	require.True(t, ok)
	require.Equal(t, 4, v)
}

func TestOfPull(t *testing.T) {
	calls := 0
	next := func() (int, string, bool) {
		calls++
		if calls > 3 {
			return 0, "", false
		}
		return calls * 10, "k", true
	}
	s := OfPull(next)
	require.Zero(t, calls)
	require.Equal(t, []int{10, 20, 30}, ToSlice(s))
	require.Equal(t, 4, calls)

	calls = 0
	s = OfPull(next)
	v, ok := Current(s)
	require.True(t, ok)
	require.Equal(t, 10, v)
	MoveNext(s)
	require.Equal(t, []int{20, 30}, ToSlice(s))
}

func TestOfSeq(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, ToSlice(OfSeq(slices.Values([]int{1, 2, 3}))))

	s := OfSeq2(slices.All([]string{"a", "b", "c"}))
	v, k, ok := CurrentKV(s)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 0, k)
	MoveNext(s)
	require.Equal(t, []Pair[string, int]{{"b", 1}, {"c", 2}}, collect(s))

	s = OfSeq2(slices.All([]string{"a", "b", "c"}))
	require.Equal(t, []string{"a", "b"}, ToSlice(Take(s, 2)))
}

// naturals counts up until stopped and closes done on return.
func naturals(done chan<- struct{}) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		defer close(done)
		for i := 0; ; i++ {
			if !yield(i, i) {
				return
			}
		}
	}
}

func TestOfSeqStops(t *testing.T) {
	done := make(chan struct{})
	s := OfSeq2(naturals(done))
	MoveNext(s)
	require.Equal(t, []int{1, 2, 3}, ToSlice(Take(s, 3)))
	select {
	case <-done:
	default:
		t.Fatal("pull iterator still running after each stopped")
	}

	done = make(chan struct{})
	next := Pull(OfSeq2(naturals(done)))
	v, _, ok := next()
	require.True(t, ok)
	require.Zero(t, v)
	next = nil
	for range 100 {
		runtime.GC()
		select {
		case <-done:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatal("pull iterator of an abandoned sequence was not stopped")
}

func TestOfMap(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	require.Equal(t, []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, collect(OfMap(m)))
	require.Equal(t, []int{3, 2, 1}, ToSlice(Reverse(OfMap(m))))
	require.Equal(t, []int{2, 3}, ToSlice(Skip(OfMap(m), 1)))

	calls := 0
	desc := func(a, b string) int {
		calls++
		return -cmpString(a, b)
	}
	s := OfMapFunc(m, desc)
	require.Zero(t, calls)
	require.Equal(t, 3, Len(s))
	require.NotZero(t, calls)
	require.Equal(t, []Pair[int, string]{{3, "c"}, {2, "b"}, {1, "a"}}, collect(s))
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type sliceCursor struct {
	keys []int
	vals []string
	i    int
	fail int
	err  error
}

var errCursor = errors.New("cursor failed")

func (c *sliceCursor) Valid() bool  { return c.err == nil && c.i >= 0 && c.i < len(c.keys) }
func (c *sliceCursor) Error() error { return c.err }
func (c *sliceCursor) Key() int     { return c.keys[c.i] }
func (c *sliceCursor) Val() string  { return c.vals[c.i] }

func (c *sliceCursor) SeekFirst() bool {
	c.i = 0
	return c.Valid()
}

func (c *sliceCursor) Next() bool {
	c.i++
	if c.fail > 0 && c.i == c.fail {
		c.err = errCursor
	}
	return c.Valid()
}

func TestOfCursor(t *testing.T) {
	c := &sliceCursor{keys: []int{1, 2, 3}, vals: []string{"a", "b", "c"}}
	require.Equal(t, []Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, collect(OfCursor[string, int](c)))
	require.NoError(t, c.Error())

	c = &sliceCursor{keys: []int{1, 2, 3}, vals: []string{"a", "b", "c"}, fail: 2}
	s := OfCursor[string, int](c)
	v, ok := Current(s)
	require.True(t, ok)
	require.Equal(t, "a", v)
	MoveNext(s)
	require.Equal(t, []string{"b"}, ToSlice(s))
	require.ErrorIs(t, c.Error(), errCursor)
}
