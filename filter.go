package seq

type filter[V, K any] struct {
	flag
	src   Seq[V, K]
	pred  func(V, K) bool
	v     V
	k     K
	ok    bool
	ready bool
}

// Filter keeps the pairs satisfying pred. The result is forward-only:
// finding the n-th kept pair needs a scan.
func Filter[V, K any](s Seq[V, K], pred func(V, K) bool) Seq[V, K] {
	claim(s)
	return &filter[V, K]{src: s, pred: pred}
}

// Unless drops the pairs satisfying pred.
func Unless[V, K any](s Seq[V, K], pred func(V, K) bool) Seq[V, K] {
	return Filter(s, func(v V, k K) bool { return !pred(v, k) })
}

// advance moves the cached pair to the next one satisfying pred,
// leaving the parent just past it.
func (f *filter[V, K]) advance() {
	for {
		f.v, f.k, f.ok = f.src.get()
		if !f.ok {
			return
		}
		f.src.next()
		if f.pred(f.v, f.k) {
			return
		}
	}
}

func (f *filter[V, K]) init() {
	f.src.init()
	if f.ready {
		return
	}
	f.ready = true
	f.advance()
}

func (f *filter[V, K]) get() (V, K, bool) {
	return f.v, f.k, f.ok
}

func (f *filter[V, K]) next() {
	f.advance()
}

func (f *filter[V, K]) each(yield func(V, K) bool) bool {
	if f.ok && !yield(f.v, f.k) {
		return false
	}
	return f.src.each(func(v V, k K) bool {
		return !f.pred(v, k) || yield(v, k)
	})
}

type takeWhile[V, K any] struct {
	flag
	src   Seq[V, K]
	pred  func(V, K) bool
	v     V
	k     K
	ok    bool
	ready bool
}

// TakeWhile keeps pairs up to, not including, the first one failing pred.
// The parent is never advanced past that pair.
func TakeWhile[V, K any](s Seq[V, K], pred func(V, K) bool) Seq[V, K] {
	claim(s)
	return &takeWhile[V, K]{src: s, pred: pred}
}

func (t *takeWhile[V, K]) load() {
	t.v, t.k, t.ok = t.src.get()
	if t.ok && !t.pred(t.v, t.k) {
		t.ok = false
	}
}

func (t *takeWhile[V, K]) init() {
	t.src.init()
	if t.ready {
		return
	}
	t.ready = true
	t.load()
}

func (t *takeWhile[V, K]) get() (V, K, bool) {
	if !t.ok {
		return none[V, K]()
	}
	return t.v, t.k, true
}

func (t *takeWhile[V, K]) next() {
	if !t.ok {
		return
	}
	t.src.next()
	t.load()
}

func (t *takeWhile[V, K]) each(yield func(V, K) bool) bool {
	if t.ready {
		if !t.ok {
			return true
		}
		if !yield(t.v, t.k) {
			return false
		}
		t.src.next()
	}
	ok := true
	t.src.each(func(v V, k K) bool {
		if !t.pred(v, k) {
			return false
		}
		ok = yield(v, k)
		return ok
	})
	return ok
}

type skipWhile[V, K any] struct {
	flag
	src      Seq[V, K]
	pred     func(V, K) bool
	skipping bool
}

// SkipWhile drops pairs up to, not including, the first one failing pred,
// then passes the rest through.
func SkipWhile[V, K any](s Seq[V, K], pred func(V, K) bool) Seq[V, K] {
	claim(s)
	return &skipWhile[V, K]{src: s, pred: pred, skipping: true}
}

func (s *skipWhile[V, K]) init() {
	s.src.init()
	for s.skipping {
		v, k, ok := s.src.get()
		if !ok || !s.pred(v, k) {
			s.skipping = false
			return
		}
		s.src.next()
	}
}

func (s *skipWhile[V, K]) get() (V, K, bool) {
	return s.src.get()
}

func (s *skipWhile[V, K]) next() {
	s.src.next()
}

func (s *skipWhile[V, K]) each(yield func(V, K) bool) bool {
	return s.src.each(func(v V, k K) bool {
		if s.skipping {
			if s.pred(v, k) {
				return true
			}
			s.skipping = false
		}
		return yield(v, k)
	})
}
