package seq

type flatMap[V, K, U, L any] struct {
	flag
	src   Seq[V, K]
	f     func(V, K) Seq[U, L]
	inner Seq[U, L]
	v     U
	l     L
	ok    bool
	ready bool
}

// FlatMap replaces each pair with the pairs of the sequence f returns for
// it. Inner sequences are opened one at a time, when reached.
func FlatMap[V, K, U, L any](s Seq[V, K], f func(V, K) Seq[U, L]) Seq[U, L] {
	claim(s)
	return &flatMap[V, K, U, L]{src: s, f: f}
}

// Flatten concatenates the sequences produced by s.
func Flatten[V, K, L any](s Seq[Seq[V, K], L]) Seq[V, K] {
	return FlatMap(s, func(inner Seq[V, K], _ L) Seq[V, K] { return inner })
}

// open pulls the next outer pair and opens its inner sequence.
func (m *flatMap[V, K, U, L]) open() {
	v, k, ok := m.src.get()
	if !ok {
		m.inner = nil
		return
	}
	m.inner = m.f(v, k)
	claim(m.inner)
	m.inner.init()
	m.src.next()
}

// step caches the next inner pair, opening inner sequences as needed.
func (m *flatMap[V, K, U, L]) step() {
	for m.inner != nil {
		m.v, m.l, m.ok = m.inner.get()
		if m.ok {
			m.inner.next()
			return
		}
		m.open()
	}
	m.ok = false
}

func (m *flatMap[V, K, U, L]) init() {
	m.src.init()
	if m.ready {
		return
	}
	m.ready = true
	m.open()
	m.step()
}

func (m *flatMap[V, K, U, L]) get() (U, L, bool) {
	return m.v, m.l, m.ok
}

func (m *flatMap[V, K, U, L]) next() {
	m.step()
}

func (m *flatMap[V, K, U, L]) each(yield func(U, L) bool) bool {
	if m.ok && !yield(m.v, m.l) {
		return false
	}
	if m.inner != nil && !m.inner.each(yield) {
		return false
	}
	return m.src.each(func(v V, k K) bool {
		inner := m.f(v, k)
		claim(inner)
		return inner.each(yield)
	})
}
