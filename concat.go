package seq

import "github.com/dacapoday/seq/internal/bound"

type concat[V, K any] struct {
	flag
	a, b  Seq[V, K]
	done1 bool
}

type concatIdx[V, K any] struct {
	concat[V, K]
	ia, ib Indexed[V, K]
}

type concatBidi[V, K any] struct {
	concatIdx[V, K]
	ba, bb Bidi[V, K]
}

// Concat yields the pairs of each sequence in turn. Every sequence is
// claimed up front. The result is Indexed when all of them are Indexed,
// Bidi when all are Bidi.
func Concat[V, K any](seqs ...Seq[V, K]) Seq[V, K] {
	switch len(seqs) {
	case 0:
		return Empty[V, K]()
	case 1:
		return seqs[0]
	}
	for _, s := range seqs {
		claim(s)
	}
	out := seqs[0]
	for _, s := range seqs[1:] {
		out = concatOf(out, s)
	}
	return out
}

// ConcatIdx is Concat for Indexed sequences.
func ConcatIdx[V, K any](seqs ...Indexed[V, K]) Indexed[V, K] {
	switch len(seqs) {
	case 0:
		return Empty[V, K]()
	case 1:
		return seqs[0]
	}
	for _, s := range seqs {
		claim(s)
	}
	out := seqs[0]
	for _, s := range seqs[1:] {
		out = concatIdxOf(out, s)
	}
	return out
}

// Append yields the pairs of s followed by those of tail.
func Append[V, K any](s, tail Seq[V, K]) Seq[V, K] {
	claim(s)
	claim(tail)
	return concatOf(s, tail)
}

// Prepend yields the pairs of head followed by those of s.
func Prepend[V, K any](s, head Seq[V, K]) Seq[V, K] {
	return Append(head, s)
}

func concatOf[V, K any](a, b Seq[V, K]) Seq[V, K] {
	if ia, ok := a.(Indexed[V, K]); ok {
		if ib, ok := b.(Indexed[V, K]); ok {
			return concatIdxOf(ia, ib)
		}
	}
	return &concat[V, K]{a: a, b: b}
}

func concatIdxOf[V, K any](a, b Indexed[V, K]) Indexed[V, K] {
	if ba, ok := a.(Bidi[V, K]); ok {
		if bb, ok := b.(Bidi[V, K]); ok {
			return concatBidiOf(ba, bb)
		}
	}
	c := &concatIdx[V, K]{ia: a, ib: b}
	c.a, c.b = a, b
	return c
}

func concatBidiOf[V, K any](a, b Bidi[V, K]) Bidi[V, K] {
	c := &concatBidi[V, K]{ba: a, bb: b}
	c.a, c.b, c.ia, c.ib = a, b, a, b
	return c
}

// cur returns the side the front currently lies in.
func (c *concat[V, K]) cur() Seq[V, K] {
	if !c.done1 {
		if _, _, ok := c.a.get(); ok {
			return c.a
		}
		c.done1 = true
		c.b.init()
	}
	return c.b
}

func (c *concat[V, K]) init() {
	c.a.init()
}

func (c *concat[V, K]) get() (V, K, bool) {
	return c.cur().get()
}

func (c *concat[V, K]) next() {
	c.cur().next()
}

func (c *concat[V, K]) each(yield func(V, K) bool) bool {
	if !c.done1 && !c.a.each(yield) {
		return false
	}
	c.done1 = true
	return c.b.each(yield)
}

func (c *concatIdx[V, K]) init() {
	c.a.init()
	c.b.init()
}

func (c *concatIdx[V, K]) size() int {
	return bound.Add(c.ia.size(), c.ib.size())
}

func (c *concatIdx[V, K]) at(i int) (V, K, bool) {
	n := c.ia.size()
	if i < n {
		return c.ia.at(i)
	}
	return c.ib.at(i - n)
}

func (c *concatIdx[V, K]) sub(from, to int) Indexed[V, K] {
	c.ia.init()
	n := c.ia.size()
	return concatIdxOf(
		c.ia.sub(min(from, n), min(to, n)),
		c.ib.sub(bound.Sub(from, n), bound.Sub(to, n)),
	)
}

func (c *concatBidi[V, K]) subBidi(from, to int) Bidi[V, K] {
	c.ba.init()
	n := c.ba.size()
	return concatBidiOf(
		c.ba.subBidi(min(from, n), min(to, n)),
		c.bb.subBidi(bound.Sub(from, n), bound.Sub(to, n)),
	)
}

func (c *concatBidi[V, K]) back() (V, K, bool) {
	finite(c)
	if c.bb.size() > 0 {
		return c.bb.back()
	}
	return c.ba.back()
}

func (c *concatBidi[V, K]) prev() {
	finite(c)
	if c.bb.size() > 0 {
		c.bb.prev()
		return
	}
	c.ba.prev()
}

func (c *concatBidi[V, K]) eachBack(yield func(V, K) bool) bool {
	c.init()
	finite(c)
	return c.bb.eachBack(yield) && c.ba.eachBack(yield)
}
