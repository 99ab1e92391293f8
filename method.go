package seq

import "cmp"

// The functions below observe or step a sequence without consuming it:
// they never mark it used, and panic with ErrUsed if it already is.

// Current returns the value at the front of s.
func Current[V, K any](s Seq[V, K]) (V, bool) {
	v, _, ok := CurrentKV(s)
	return v, ok
}

// CurrentKV returns the pair at the front of s.
func CurrentKV[V, K any](s Seq[V, K]) (V, K, bool) {
	check(s)
	s.init()
	return s.get()
}

// MoveNext steps s past its front pair.
func MoveNext[V, K any](s Seq[V, K]) {
	check(s)
	s.init()
	s.next()
}

// RCurrent returns the value at the right end of s.
func RCurrent[V, K any](s Bidi[V, K]) (V, bool) {
	v, _, ok := RCurrentKV(s)
	return v, ok
}

// RCurrentKV returns the pair at the right end of s.
func RCurrentKV[V, K any](s Bidi[V, K]) (V, K, bool) {
	check(s)
	s.init()
	finite(s)
	return s.back()
}

// RMoveNext drops the pair at the right end of s.
func RMoveNext[V, K any](s Bidi[V, K]) {
	check(s)
	s.init()
	finite(s)
	s.prev()
}

// Len returns the remaining length of s, Unbounded if infinite.
func Len[V, K any](s Indexed[V, K]) int {
	check(s)
	s.init()
	return s.size()
}

// Nth returns the value i positions past the front of s.
func Nth[V, K any](s Indexed[V, K], i int) (V, bool) {
	v, _, ok := NthKV(s, i)
	return v, ok
}

// NthKV returns the pair i positions past the front of s.
func NthKV[V, K any](s Indexed[V, K], i int) (V, K, bool) {
	check(s)
	s.init()
	return s.at(i)
}

// PartitionPoint returns the position of the first pair satisfying pred,
// or the length of s if there is none. s must be partitioned by pred:
// once a pair satisfies it, every later pair does.
func PartitionPoint[V, K any](s Indexed[V, K], pred func(V, K) bool) int {
	check(s)
	s.init()
	lo, hi := 0, finite(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		v, k, _ := s.at(mid)
		if pred(v, k) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// BinarySearchFunc searches s, sorted ascending under cmp, for the pair at
// which cmp returns 0. It returns the position where that pair is or would
// be, and whether it was found.
func BinarySearchFunc[V, K any](s Indexed[V, K], cmp func(V, K) int) (int, bool) {
	i := PartitionPoint(s, func(v V, k K) bool { return cmp(v, k) >= 0 })
	v, k, ok := s.at(i)
	return i, ok && cmp(v, k) == 0
}

// BinarySearchKey searches s, sorted by ascending key, for key.
func BinarySearchKey[V any, K cmp.Ordered](s Indexed[V, K], key K) (int, bool) {
	return BinarySearchFunc(s, func(_ V, k K) int { return cmp.Compare(k, key) })
}
