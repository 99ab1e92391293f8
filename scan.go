package seq

type scan[V, K, U any] struct {
	flag
	src  Seq[V, K]
	f    func(U, V, K) U
	seed U
	acc  U
	k    K
	ok   bool
	done bool
}

// Scan emits the running fold of s. The first output is f(seed, v0), not
// seed itself; keys are kept.
func Scan[V, K, U any](s Seq[V, K], f func(acc U, v V, k K) U, seed U) Seq[U, K] {
	claim(s)
	return &scan[V, K, U]{src: s, f: f, seed: seed}
}

func (s *scan[V, K, U]) init() {
	s.src.init()
	if s.ok || s.done {
		return
	}
	v, k, ok := s.src.get()
	if !ok {
		s.done = true
		return
	}
	s.acc, s.k, s.ok = s.f(s.seed, v, k), k, true
}

func (s *scan[V, K, U]) get() (U, K, bool) {
	if !s.ok {
		return none[U, K]()
	}
	return s.acc, s.k, true
}

func (s *scan[V, K, U]) next() {
	if !s.ok {
		return
	}
	s.src.next()
	v, k, ok := s.src.get()
	if !ok {
		s.ok, s.done = false, true
		return
	}
	s.acc, s.k = s.f(s.acc, v, k), k
}

func (s *scan[V, K, U]) each(yield func(U, K) bool) bool {
	if s.done {
		return true
	}
	acc := s.seed
	if s.ok {
		if !yield(s.acc, s.k) {
			return false
		}
		acc = s.acc
		s.src.next()
	}
	return s.src.each(func(v V, k K) bool {
		acc = s.f(acc, v, k)
		return yield(acc, k)
	})
}
