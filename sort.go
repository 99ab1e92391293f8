package seq

import (
	"cmp"
	"slices"

	"github.com/dacapoday/seq/internal/bound"
)

// sortBuf is the drained parent and its sorted permutation, shared by a
// sorted sequence and every subrange taken from it.
type sortBuf[V, K any] struct {
	src   Seq[V, K]
	cmp   func(V, K, V, K) int
	vals  []V
	keys  []K
	perm  []int
	ready bool
}

func (b *sortBuf[V, K]) build() {
	if b.ready {
		return
	}
	b.ready = true
	if ix, ok := b.src.(Indexed[V, K]); ok {
		ix.init()
		finite(ix)
	}
	b.src.each(func(v V, k K) bool {
		b.vals = append(b.vals, v)
		b.keys = append(b.keys, k)
		return true
	})
	b.perm = make([]int, len(b.vals))
	for i := range b.perm {
		b.perm[i] = i
	}
	slices.SortStableFunc(b.perm, func(i, j int) int {
		return b.cmp(b.vals[i], b.keys[i], b.vals[j], b.keys[j])
	})
	b.src = nil
}

type sorted[V, K any] struct {
	flag
	buf    *sortBuf[V, K]
	lo, hi int
}

// SortBy returns the pairs of s ordered by cmp. Equal pairs keep their
// relative order.
//
// Nothing is read until the result is first used; s is then drained
// once, and cmp is never called again. Subranges share the sorted buffer.
// Panics with ErrUnbounded if s is known to be infinite.
func SortBy[V, K any](s Seq[V, K], cmp func(v1 V, k1 K, v2 V, k2 K) int) Indexed[V, K] {
	claim(s)
	return &sorted[V, K]{buf: &sortBuf[V, K]{src: s, cmp: cmp}, hi: Unbounded}
}

// SortFunc orders the pairs of s by value with cmp.
func SortFunc[V, K any](s Seq[V, K], cmp func(a, b V) int) Indexed[V, K] {
	return SortBy(s, func(v1 V, _ K, v2 V, _ K) int { return cmp(v1, v2) })
}

// Sort orders the pairs of s by ascending value.
func Sort[V cmp.Ordered, K any](s Seq[V, K]) Indexed[V, K] {
	return SortFunc(s, cmp.Compare[V])
}

func (s *sorted[V, K]) init() {
	s.buf.build()
	s.hi = min(s.hi, len(s.buf.perm))
	s.lo = min(s.lo, s.hi)
}

func (s *sorted[V, K]) size() int {
	return s.hi - s.lo
}

func (s *sorted[V, K]) at(i int) (V, K, bool) {
	if i < 0 || i >= s.size() {
		return none[V, K]()
	}
	p := s.buf.perm[s.lo+i]
	return s.buf.vals[p], s.buf.keys[p], true
}

func (s *sorted[V, K]) sub(from, to int) Indexed[V, K] {
	lo := bound.Add(s.lo, from)
	return &sorted[V, K]{
		buf: s.buf,
		lo:  lo,
		hi:  min(s.hi, bound.Add(s.lo, to)),
	}
}

func (s *sorted[V, K]) get() (V, K, bool) {
	return s.at(0)
}

func (s *sorted[V, K]) next() {
	if s.lo < s.hi {
		s.lo++
	}
}

func (s *sorted[V, K]) each(yield func(V, K) bool) bool {
	s.init()
	for s.lo < s.hi {
		p := s.buf.perm[s.lo]
		s.lo++
		if !yield(s.buf.vals[p], s.buf.keys[p]) {
			return false
		}
	}
	return true
}
