package seq

import "github.com/dacapoday/seq/internal/bound"

// sliced bounds a forward-only parent to the window [from, to), counted
// in parent pairs from where the parent stood when sliced.
type sliced[V, K any] struct {
	flag
	src      Seq[V, K]
	from, to int
	i        int
	ready    bool
}

// Slice restricts s to the pairs at positions [from, to), where 0 is the
// current position. to may be Unbounded.
//
// An Indexed s is sliced in O(1) through its own subrange. Slicing the
// result of a forward Slice again narrows the same window instead of
// stacking another one.
func Slice[V, K any](s Seq[V, K], from, to int) Seq[V, K] {
	claim(s)
	switch p := s.(type) {
	case Indexed[V, K]:
		return p.sub(from, to)
	case *sliced[V, K]:
		return p.narrow(from, to)
	}
	return &sliced[V, K]{src: s, from: from, to: to}
}

// SliceIdx is Slice for Indexed sequences.
func SliceIdx[V, K any](s Indexed[V, K], from, to int) Indexed[V, K] {
	claim(s)
	return s.sub(from, to)
}

// SliceBidi is Slice for Bidi sequences.
func SliceBidi[V, K any](s Bidi[V, K], from, to int) Bidi[V, K] {
	claim(s)
	return s.subBidi(from, to)
}

// Take keeps the first n pairs.
func Take[V, K any](s Seq[V, K], n int) Seq[V, K] {
	return Slice(s, 0, n)
}

// Skip drops the first n pairs.
func Skip[V, K any](s Seq[V, K], n int) Seq[V, K] {
	return Slice(s, n, Unbounded)
}

func (s *sliced[V, K]) narrow(from, to int) Seq[V, K] {
	skip := bound.Sub(s.from, s.i)
	return &sliced[V, K]{
		src:  s.src,
		from: bound.Add(skip, from),
		to:   min(bound.Sub(s.to, s.i), bound.Add(skip, to)),
	}
}

func (s *sliced[V, K]) init() {
	s.src.init()
	if s.ready {
		return
	}
	s.ready = true
	for ; s.i < s.from; s.i++ {
		if _, _, ok := s.src.get(); !ok {
			break
		}
		s.src.next()
	}
}

func (s *sliced[V, K]) get() (V, K, bool) {
	if s.i < s.to {
		return s.src.get()
	}
	return none[V, K]()
}

func (s *sliced[V, K]) next() {
	if s.i < s.to {
		s.i++
		s.src.next()
	}
}

func (s *sliced[V, K]) each(yield func(V, K) bool) bool {
	s.init()
	if s.i >= s.to {
		return true
	}
	ok := true
	s.src.each(func(v V, k K) bool {
		ok = yield(v, k)
		s.i++
		return ok && s.i < s.to
	})
	return ok
}
