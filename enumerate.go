package seq

import "github.com/dacapoday/seq/internal/bound"

type enumSeq[V, K any] struct {
	flag
	src Seq[V, K]
	i   int
}

type enumIdx[V, K any] struct {
	enumSeq[V, K]
	idx Indexed[V, K]
}

type enumBidi[V, K any] struct {
	enumIdx[V, K]
	bidi Bidi[V, K]
}

// Enumerate replaces keys with positions counted from 0.
func Enumerate[V, K any](s Seq[V, K]) Seq[V, int] {
	claim(s)
	return enumOf(s, 0)
}

// EnumerateIdx is Enumerate for Indexed sequences.
func EnumerateIdx[V, K any](s Indexed[V, K]) Indexed[V, int] {
	claim(s)
	return enumIdxOf(s, 0)
}

// EnumerateBidi is Enumerate for Bidi sequences.
func EnumerateBidi[V, K any](s Bidi[V, K]) Bidi[V, int] {
	claim(s)
	return enumBidiOf(s, 0)
}

func enumOf[V, K any](s Seq[V, K], i int) Seq[V, int] {
	if ix, ok := s.(Indexed[V, K]); ok {
		return enumIdxOf(ix, i)
	}
	return &enumSeq[V, K]{src: s, i: i}
}

func enumIdxOf[V, K any](s Indexed[V, K], i int) Indexed[V, int] {
	if b, ok := s.(Bidi[V, K]); ok {
		return enumBidiOf(b, i)
	}
	e := &enumIdx[V, K]{idx: s}
	e.src, e.i = s, i
	return e
}

func enumBidiOf[V, K any](s Bidi[V, K], i int) Bidi[V, int] {
	e := &enumBidi[V, K]{bidi: s}
	e.src, e.idx, e.i = s, s, i
	return e
}

func (e *enumSeq[V, K]) init() {
	e.src.init()
}

func (e *enumSeq[V, K]) get() (V, int, bool) {
	v, _, ok := e.src.get()
	if !ok {
		return none[V, int]()
	}
	return v, e.i, true
}

func (e *enumSeq[V, K]) next() {
	e.i++
	e.src.next()
}

func (e *enumSeq[V, K]) each(yield func(V, int) bool) bool {
	return e.src.each(func(v V, _ K) bool {
		r := yield(v, e.i)
		e.i++
		return r
	})
}

func (e *enumIdx[V, K]) size() int {
	return e.idx.size()
}

func (e *enumIdx[V, K]) at(i int) (V, int, bool) {
	v, _, ok := e.idx.at(i)
	if !ok {
		return none[V, int]()
	}
	return v, e.i + i, true
}

func (e *enumIdx[V, K]) sub(from, to int) Indexed[V, int] {
	return enumIdxOf(e.idx.sub(from, to), bound.Add(e.i, from))
}

func (e *enumBidi[V, K]) subBidi(from, to int) Bidi[V, int] {
	return enumBidiOf(e.bidi.subBidi(from, to), bound.Add(e.i, from))
}

func (e *enumBidi[V, K]) back() (V, int, bool) {
	v, _, ok := e.bidi.back()
	if !ok {
		return none[V, int]()
	}
	return v, e.i + e.bidi.size() - 1, true
}

func (e *enumBidi[V, K]) prev() {
	e.bidi.prev()
}

func (e *enumBidi[V, K]) eachBack(yield func(V, int) bool) bool {
	e.bidi.init()
	n := e.i + finite(e.bidi)
	return e.bidi.eachBack(func(v V, _ K) bool {
		n--
		return yield(v, n)
	})
}
