package seq

import "fmt"

// checked asserts the primitive protocol around src.
type checked[V, K any] struct {
	flag
	src      Seq[V, K]
	inited   bool
	consumed bool
	drained  bool
}

type checkedIdx[V, K any] struct {
	checked[V, K]
	idx Indexed[V, K]
}

type checkedBidi[V, K any] struct {
	checkedIdx[V, K]
	bidi     Bidi[V, K]
	rdrained bool
}

// Check wraps s in a decorator that asserts the sequence protocol on every
// primitive call and panics on the first violation:
//
//   - a positional call before init (ErrNotInitialized);
//   - any call after each, eachBack or a subrange (ErrUsed);
//   - a negative position (ErrBadIndex);
//   - a subrange with from > to (ErrBadRange);
//   - a pair reported after the end was reached (ErrRevived).
//
// The panic value wraps the sentinel with the name of the failing call.
// Results are unchanged, and subranges are checked as well. The result keeps
// the tier of s.
func Check[V, K any](s Seq[V, K]) Seq[V, K] {
	claim(s)
	return checkOf(s)
}

// CheckIdx is Check for Indexed sequences.
func CheckIdx[V, K any](s Indexed[V, K]) Indexed[V, K] {
	claim(s)
	return checkIdxOf(s)
}

// CheckBidi is Check for Bidi sequences.
func CheckBidi[V, K any](s Bidi[V, K]) Bidi[V, K] {
	claim(s)
	return checkBidiOf(s)
}

func checkOf[V, K any](s Seq[V, K]) Seq[V, K] {
	if ix, ok := s.(Indexed[V, K]); ok {
		return checkIdxOf(ix)
	}
	return &checked[V, K]{src: s}
}

func checkIdxOf[V, K any](s Indexed[V, K]) Indexed[V, K] {
	if b, ok := s.(Bidi[V, K]); ok {
		return checkBidiOf(b)
	}
	c := &checkedIdx[V, K]{idx: s}
	c.src = s
	return c
}

func checkBidiOf[V, K any](s Bidi[V, K]) Bidi[V, K] {
	c := &checkedBidi[V, K]{bidi: s}
	c.src, c.idx = s, s
	return c
}

func fault(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

// live asserts that nothing has consumed the sequence yet.
func (c *checked[V, K]) live(op string) {
	if c.consumed {
		fault(op, ErrUsed)
	}
}

// ready asserts that a positional call is allowed.
func (c *checked[V, K]) ready(op string) {
	c.live(op)
	if !c.inited {
		fault(op, ErrNotInitialized)
	}
}

func (c *checked[V, K]) init() {
	c.live("init")
	c.inited = true
	c.src.init()
}

func (c *checked[V, K]) get() (V, K, bool) {
	c.ready("get")
	v, k, ok := c.src.get()
	if ok && c.drained {
		fault("get", ErrRevived)
	}
	c.drained = !ok
	return v, k, ok
}

func (c *checked[V, K]) next() {
	c.ready("next")
	c.src.next()
}

func (c *checked[V, K]) each(yield func(V, K) bool) bool {
	c.live("each")
	c.consumed = true
	return c.src.each(yield)
}

func (c *checkedIdx[V, K]) size() int {
	c.ready("size")
	n := c.idx.size()
	if n < 0 {
		fault("size", ErrBadIndex)
	}
	if n > 0 && c.drained {
		fault("size", ErrRevived)
	}
	return n
}

func (c *checkedIdx[V, K]) at(i int) (V, K, bool) {
	c.ready("at")
	if i < 0 {
		fault("at", ErrBadIndex)
	}
	return c.idx.at(i)
}

func (c *checkedIdx[V, K]) sub(from, to int) Indexed[V, K] {
	c.bounds("sub", from, to)
	return checkIdxOf(c.idx.sub(from, to))
}

func (c *checked[V, K]) bounds(op string, from, to int) {
	c.live(op)
	if from < 0 {
		fault(op, ErrBadIndex)
	}
	if from > to {
		fault(op, ErrBadRange)
	}
	c.consumed = true
}

func (c *checkedBidi[V, K]) subBidi(from, to int) Bidi[V, K] {
	c.bounds("subBidi", from, to)
	return checkBidiOf(c.bidi.subBidi(from, to))
}

func (c *checkedBidi[V, K]) back() (V, K, bool) {
	c.ready("back")
	v, k, ok := c.bidi.back()
	if ok && c.rdrained {
		fault("back", ErrRevived)
	}
	c.rdrained = !ok
	return v, k, ok
}

func (c *checkedBidi[V, K]) prev() {
	c.ready("prev")
	c.bidi.prev()
}

func (c *checkedBidi[V, K]) eachBack(yield func(V, K) bool) bool {
	c.live("eachBack")
	c.consumed = true
	return c.bidi.eachBack(yield)
}
