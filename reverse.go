package seq

type reversed[V, K any] struct {
	flag
	src Bidi[V, K]
}

// Reverse yields the pairs of s from right to left. Every operation of the
// result panics with ErrUnbounded if s is infinite.
func Reverse[V, K any](s Bidi[V, K]) Bidi[V, K] {
	claim(s)
	return &reversed[V, K]{src: s}
}

func (r *reversed[V, K]) init() {
	r.src.init()
}

func (r *reversed[V, K]) get() (V, K, bool) {
	finite(r)
	return r.src.back()
}

func (r *reversed[V, K]) next() {
	finite(r)
	r.src.prev()
}

func (r *reversed[V, K]) each(yield func(V, K) bool) bool {
	r.src.init()
	finite(r)
	return r.src.eachBack(yield)
}

func (r *reversed[V, K]) size() int {
	return r.src.size()
}

func (r *reversed[V, K]) at(i int) (V, K, bool) {
	n := finite(r)
	if i < 0 || i >= n {
		return none[V, K]()
	}
	return r.src.at(n - 1 - i)
}

func (r *reversed[V, K]) sub(from, to int) Indexed[V, K] {
	return r.subBidi(from, to)
}

func (r *reversed[V, K]) subBidi(from, to int) Bidi[V, K] {
	r.src.init()
	n := finite(r)
	to = min(to, n)
	from = min(from, to)
	return &reversed[V, K]{src: r.src.subBidi(n-to, n-from)}
}

func (r *reversed[V, K]) back() (V, K, bool) {
	finite(r)
	return r.src.get()
}

func (r *reversed[V, K]) prev() {
	finite(r)
	r.src.next()
}

func (r *reversed[V, K]) eachBack(yield func(V, K) bool) bool {
	r.src.init()
	finite(r)
	return r.src.each(yield)
}
