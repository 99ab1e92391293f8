package seq

import "github.com/dacapoday/seq/internal/bound"

type chunk[V, K any] struct {
	flag
	src   Seq[V, K]
	n     int
	last  bool
	buf   []V
	ok    bool
	ready bool
}

type chunkIdx[V, K any] struct {
	flag
	src  Indexed[V, K]
	n    int
	last bool
}

// Chunk groups the values of s into slices of n. A shorter trailing
// chunk is kept only when last is set. Panics with ErrBadRange if n < 1.
//
// On an Indexed parent the result is Indexed too: its length is
// ceil(len/n) or floor(len/n), and chunk i is rebuilt from the parent
// positions [i*n, i*n+n) without replaying earlier chunks.
func Chunk[V, K any](s Seq[V, K], n int, last bool) Seq[[]V, Unit] {
	if n < 1 {
		panic(ErrBadRange)
	}
	claim(s)
	if ix, ok := s.(Indexed[V, K]); ok {
		return &chunkIdx[V, K]{src: ix, n: n, last: last}
	}
	return &chunk[V, K]{src: s, n: n, last: last}
}

// ChunkIdx is Chunk for Indexed sequences.
func ChunkIdx[V, K any](s Indexed[V, K], n int, last bool) Indexed[[]V, Unit] {
	if n < 1 {
		panic(ErrBadRange)
	}
	claim(s)
	return &chunkIdx[V, K]{src: s, n: n, last: last}
}

// eachChunk streams the rest of src in chunks of n.
func eachChunk[V, K any](src Seq[V, K], n int, last bool, yield func([]V, Unit) bool) bool {
	var arr []V
	ok := src.each(func(v V, _ K) bool {
		arr = append(arr, v)
		if len(arr) < n {
			return true
		}
		r := yield(arr, Unit{})
		arr = nil
		return r
	})
	return ok && (!last || len(arr) == 0 || yield(arr, Unit{}))
}

func (c *chunk[V, K]) fill() {
	var arr []V
	for len(arr) < c.n {
		v, _, ok := c.src.get()
		if !ok {
			if len(arr) == 0 || !c.last {
				c.buf, c.ok = nil, false
				return
			}
			break
		}
		arr = append(arr, v)
		c.src.next()
	}
	c.buf, c.ok = arr, true
}

func (c *chunk[V, K]) init() {
	c.src.init()
	if c.ready {
		return
	}
	c.ready = true
	c.fill()
}

func (c *chunk[V, K]) get() ([]V, Unit, bool) {
	return c.buf, Unit{}, c.ok
}

func (c *chunk[V, K]) next() {
	if c.ok {
		c.fill()
	}
}

func (c *chunk[V, K]) each(yield func([]V, Unit) bool) bool {
	if c.ok && !yield(c.buf, Unit{}) {
		return false
	}
	return eachChunk(c.src, c.n, c.last, yield)
}

func (c *chunkIdx[V, K]) init() {
	c.src.init()
}

func (c *chunkIdx[V, K]) size() int {
	if c.last {
		return bound.CeilDiv(c.src.size(), c.n)
	}
	return bound.FloorDiv(c.src.size(), c.n)
}

func (c *chunkIdx[V, K]) at(i int) ([]V, Unit, bool) {
	if i < 0 || i >= c.size() {
		return none[[]V, Unit]()
	}
	from := bound.Mul(i, c.n)
	to := min(bound.Add(from, c.n), c.src.size())
	arr := make([]V, 0, to-from)
	for j := from; j < to; j++ {
		v, _, _ := c.src.at(j)
		arr = append(arr, v)
	}
	return arr, Unit{}, true
}

func (c *chunkIdx[V, K]) sub(from, to int) Indexed[[]V, Unit] {
	return &chunkIdx[V, K]{
		src:  c.src.sub(bound.Mul(from, c.n), bound.Mul(to, c.n)),
		n:    c.n,
		last: c.last,
	}
}

func (c *chunkIdx[V, K]) get() ([]V, Unit, bool) {
	return c.at(0)
}

func (c *chunkIdx[V, K]) next() {
	if c.size() == 0 {
		return
	}
	for range c.n {
		c.src.next()
	}
}

func (c *chunkIdx[V, K]) each(yield func([]V, Unit) bool) bool {
	return eachChunk(c.src, c.n, c.last, yield)
}

type splitBy[V, K any] struct {
	flag
	src       Seq[V, K]
	pred      func(V, K) bool
	inclusive bool
	last      bool
	buf       []V
	ok        bool
	done      bool
	ready     bool
}

// SplitBy cuts s into slices at the pairs satisfying pred. The boundary
// value ends the slice it closes when inclusive is set and is dropped
// otherwise. The slice left open when s runs out is kept only when last is
// set, so a boundary at the very end produces a trailing empty slice.
//
//	SplitBy(OfSlice([]int{1, 2, 3, 4}), odd, false, true) // [] [2] [4]
func SplitBy[V, K any](s Seq[V, K], pred func(V, K) bool, inclusive, last bool) Seq[[]V, Unit] {
	claim(s)
	return &splitBy[V, K]{src: s, pred: pred, inclusive: inclusive, last: last}
}

func (s *splitBy[V, K]) fill() {
	if s.done {
		s.buf, s.ok = nil, false
		return
	}
	arr := []V{}
	for {
		v, k, ok := s.src.get()
		if !ok {
			s.done = true
			if !s.last {
				s.buf, s.ok = nil, false
				return
			}
			break
		}
		s.src.next()
		if s.pred(v, k) {
			if s.inclusive {
				arr = append(arr, v)
			}
			break
		}
		arr = append(arr, v)
	}
	s.buf, s.ok = arr, true
}

func (s *splitBy[V, K]) init() {
	s.src.init()
	if s.ready {
		return
	}
	s.ready = true
	s.fill()
}

func (s *splitBy[V, K]) get() ([]V, Unit, bool) {
	return s.buf, Unit{}, s.ok
}

func (s *splitBy[V, K]) next() {
	if s.ok {
		s.fill()
	}
}

func (s *splitBy[V, K]) each(yield func([]V, Unit) bool) bool {
	if s.ok && !yield(s.buf, Unit{}) {
		return false
	}
	if s.done {
		return true
	}
	arr := []V{}
	ok := s.src.each(func(v V, k K) bool {
		if !s.pred(v, k) {
			arr = append(arr, v)
			return true
		}
		if s.inclusive {
			arr = append(arr, v)
		}
		r := yield(arr, Unit{})
		arr = []V{}
		return r
	})
	return ok && (!s.last || yield(arr, Unit{}))
}
