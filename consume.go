package seq

import (
	"cmp"
	"iter"
)

// The consumers below mark their input used and drive it to a plain value.
// Consumers that read to the end hang on an infinite forward sequence and
// panic with ErrUnbounded on an infinite Indexed one.

// First returns the first value of s.
func First[V, K any](s Seq[V, K]) (V, bool) {
	v, _, ok := FirstKV(s)
	return v, ok
}

// FirstKV returns the first pair of s.
func FirstKV[V, K any](s Seq[V, K]) (v V, k K, ok bool) {
	claim(s)
	s.each(func(v1 V, k1 K) bool {
		v, k, ok = v1, k1, true
		return false
	})
	return
}

// Last returns the last value of s.
func Last[V, K any](s Seq[V, K]) (V, bool) {
	v, _, ok := LastKV(s)
	return v, ok
}

// LastKV returns the last pair of s. A Bidi s is read from its right end
// without traversal.
func LastKV[V, K any](s Seq[V, K]) (v V, k K, ok bool) {
	claim(s)
	if b, isBidi := s.(Bidi[V, K]); isBidi {
		b.init()
		finite(b)
		return b.back()
	}
	bounded(s)
	s.each(func(v1 V, k1 K) bool {
		v, k, ok = v1, k1, true
		return true
	})
	return
}

// bounded panics if s is known to be infinite.
func bounded[V, K any](s Seq[V, K]) {
	if ix, ok := s.(Indexed[V, K]); ok {
		ix.init()
		finite(ix)
	}
}

// ForEach calls f for every pair of s.
func ForEach[V, K any](s Seq[V, K], f func(V, K)) {
	claim(s)
	s.each(func(v V, k K) bool {
		f(v, k)
		return true
	})
}

// ToSlice collects the values of s.
func ToSlice[V, K any](s Seq[V, K]) []V {
	claim(s)
	var out []V
	if ix, ok := s.(Indexed[V, K]); ok {
		ix.init()
		out = make([]V, 0, finite(ix))
	}
	s.each(func(v V, _ K) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ToMap collects the pairs of s into a map. Later pairs overwrite earlier
// pairs with the same key.
func ToMap[V any, K comparable](s Seq[V, K]) map[K]V {
	claim(s)
	bounded(s)
	out := make(map[K]V)
	s.each(func(v V, k K) bool {
		out[k] = v
		return true
	})
	return out
}

// GroupMap collects the values of s grouped by key, in order.
func GroupMap[V any, K comparable](s Seq[V, K]) map[K][]V {
	claim(s)
	bounded(s)
	out := make(map[K][]V)
	s.each(func(v V, k K) bool {
		out[k] = append(out[k], v)
		return true
	})
	return out
}

// Fold combines the pairs of s from left to right, starting from acc.
// An empty s returns acc.
func Fold[V, K, U any](s Seq[V, K], f func(acc U, v V, k K) U, acc U) U {
	claim(s)
	bounded(s)
	s.each(func(v V, k K) bool {
		acc = f(acc, v, k)
		return true
	})
	return acc
}

// Fold1 is Fold seeded with the first value of s. It reports false if s is
// empty.
func Fold1[V, K any](s Seq[V, K], f func(acc V, v V, k K) V) (V, bool) {
	claim(s)
	bounded(s)
	s.init()
	acc, _, ok := s.get()
	if !ok {
		return acc, false
	}
	s.next()
	s.each(func(v V, k K) bool {
		acc = f(acc, v, k)
		return true
	})
	return acc, true
}

// All reports whether every pair satisfies pred. It stops at the first
// that does not.
func All[V, K any](s Seq[V, K], pred func(V, K) bool) bool {
	claim(s)
	return s.each(pred)
}

// Any reports whether some pair satisfies pred. It stops at the first
// that does.
func Any[V, K any](s Seq[V, K], pred func(V, K) bool) bool {
	claim(s)
	return !s.each(func(v V, k K) bool { return !pred(v, k) })
}

// Find returns the first value satisfying pred.
func Find[V, K any](s Seq[V, K], pred func(V, K) bool) (v V, ok bool) {
	claim(s)
	s.each(func(v1 V, k1 K) bool {
		if pred(v1, k1) {
			v, ok = v1, true
			return false
		}
		return true
	})
	return
}

// FindMap returns the first result of f that reports true.
func FindMap[V, K, U any](s Seq[V, K], f func(V, K) (U, bool)) (u U, ok bool) {
	claim(s)
	s.each(func(v V, k K) bool {
		if r, found := f(v, k); found {
			u, ok = r, true
			return false
		}
		return true
	})
	return
}

// Count returns the number of pairs in s. An Indexed s is counted without
// traversal.
func Count[V, K any](s Seq[V, K]) int {
	claim(s)
	if ix, ok := s.(Indexed[V, K]); ok {
		ix.init()
		return finite(ix)
	}
	n := 0
	s.each(func(V, K) bool {
		n++
		return true
	})
	return n
}

// Sum adds up the values of s.
func Sum[N Number, K any](s Seq[N, K]) N {
	return Fold(s, func(acc N, v N, _ K) N { return acc + v }, 0)
}

// Product multiplies the values of s.
func Product[N Number, K any](s Seq[N, K]) N {
	return Fold(s, func(acc N, v N, _ K) N { return acc * v }, 1)
}

// Max returns the greatest value of s, the first one on ties.
func Max[V cmp.Ordered, K any](s Seq[V, K]) (V, bool) {
	return Fold1(s, func(acc V, v V, _ K) V {
		if v > acc {
			return v
		}
		return acc
	})
}

// Min returns the least value of s, the first one on ties.
func Min[V cmp.Ordered, K any](s Seq[V, K]) (V, bool) {
	return Fold1(s, func(acc V, v V, _ K) V {
		if acc > v {
			return v
		}
		return acc
	})
}

// MaxFunc returns the greatest value of s under cmp, the first one on ties.
func MaxFunc[V, K any](s Seq[V, K], cmp func(a, b V) int) (V, bool) {
	return Fold1(s, func(acc V, v V, _ K) V {
		if cmp(v, acc) > 0 {
			return v
		}
		return acc
	})
}

// MinFunc returns the least value of s under cmp, the first one on ties.
func MinFunc[V, K any](s Seq[V, K], cmp func(a, b V) int) (V, bool) {
	return Fold1(s, func(acc V, v V, _ K) V {
		if cmp(acc, v) > 0 {
			return v
		}
		return acc
	})
}

// Pull returns a function yielding the pairs of s one call at a time.
// Each call costs one step of s, whatever tier s had.
func Pull[V, K any](s Seq[V, K]) func() (V, K, bool) {
	claim(s)
	ready := false
	return func() (V, K, bool) {
		if !ready {
			ready = true
			s.init()
		}
		v, k, ok := s.get()
		if ok {
			s.next()
		}
		return v, k, ok
	}
}

// Values adapts s to a range-over-func iterator of its values.
func Values[V, K any](s Seq[V, K]) iter.Seq[V] {
	next := Pull(s)
	return func(yield func(V) bool) {
		for {
			v, _, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iter adapts s to a range-over-func iterator of its key/value pairs.
func Iter[V, K any](s Seq[V, K]) iter.Seq2[K, V] {
	next := Pull(s)
	return func(yield func(K, V) bool) {
		for {
			v, k, ok := next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
