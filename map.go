package seq

type mapSeq[V, K, U, L any] struct {
	flag
	src Seq[V, K]
	val func(V, K) U
	key func(V, K) L
}

type mapIdx[V, K, U, L any] struct {
	mapSeq[V, K, U, L]
	idx Indexed[V, K]
}

type mapBidi[V, K, U, L any] struct {
	mapIdx[V, K, U, L]
	bidi Bidi[V, K]
}

// MapKV transforms each pair with val and key. The output keeps every tier
// of s. The transforms may run more than once for a pair that is read
// repeatedly before advancing.
func MapKV[V, K, U, L any](s Seq[V, K], val func(V, K) U, key func(V, K) L) Seq[U, L] {
	claim(s)
	return mapOf(s, val, key)
}

// MapKVIdx is MapKV for Indexed sequences.
func MapKVIdx[V, K, U, L any](s Indexed[V, K], val func(V, K) U, key func(V, K) L) Indexed[U, L] {
	claim(s)
	return mapIdxOf(s, val, key)
}

// MapKVBidi is MapKV for Bidi sequences.
func MapKVBidi[V, K, U, L any](s Bidi[V, K], val func(V, K) U, key func(V, K) L) Bidi[U, L] {
	claim(s)
	return mapBidiOf(s, val, key)
}

// Map transforms each value, keeping keys.
func Map[V, K, U any](s Seq[V, K], f func(V, K) U) Seq[U, K] {
	return MapKV(s, f, keyOf[V, K])
}

// MapIdx is Map for Indexed sequences.
func MapIdx[V, K, U any](s Indexed[V, K], f func(V, K) U) Indexed[U, K] {
	return MapKVIdx(s, f, keyOf[V, K])
}

// MapBidi is Map for Bidi sequences.
func MapBidi[V, K, U any](s Bidi[V, K], f func(V, K) U) Bidi[U, K] {
	return MapKVBidi(s, f, keyOf[V, K])
}

// MapKey transforms each key, keeping values.
func MapKey[V, K, L any](s Seq[V, K], f func(V, K) L) Seq[V, L] {
	return MapKV(s, valOf[V, K], f)
}

// ToEntries turns each pair into a Pair value, keeping keys.
func ToEntries[V, K any](s Seq[V, K]) Seq[Pair[V, K], K] {
	return MapKV(s, func(v V, k K) Pair[V, K] { return Pair[V, K]{v, k} }, keyOf[V, K])
}

// OfEntries unpacks Pair values into value/key pairs.
func OfEntries[V, K, L any](s Seq[Pair[V, K], L]) Seq[V, K] {
	return MapKV(s,
		func(p Pair[V, K], _ L) V { return p.Val },
		func(p Pair[V, K], _ L) K { return p.Key },
	)
}

func valOf[V, K any](v V, _ K) V { return v }

func keyOf[V, K any](_ V, k K) K { return k }

func mapOf[V, K, U, L any](s Seq[V, K], val func(V, K) U, key func(V, K) L) Seq[U, L] {
	if ix, ok := s.(Indexed[V, K]); ok {
		return mapIdxOf(ix, val, key)
	}
	return &mapSeq[V, K, U, L]{src: s, val: val, key: key}
}

func mapIdxOf[V, K, U, L any](s Indexed[V, K], val func(V, K) U, key func(V, K) L) Indexed[U, L] {
	if b, ok := s.(Bidi[V, K]); ok {
		return mapBidiOf(b, val, key)
	}
	m := &mapIdx[V, K, U, L]{idx: s}
	m.src, m.val, m.key = s, val, key
	return m
}

func mapBidiOf[V, K, U, L any](s Bidi[V, K], val func(V, K) U, key func(V, K) L) Bidi[U, L] {
	m := &mapBidi[V, K, U, L]{bidi: s}
	m.src, m.idx, m.val, m.key = s, s, val, key
	return m
}

func (m *mapSeq[V, K, U, L]) apply(v V, k K, ok bool) (U, L, bool) {
	if !ok {
		return none[U, L]()
	}
	return m.val(v, k), m.key(v, k), true
}

func (m *mapSeq[V, K, U, L]) init() {
	m.src.init()
}

func (m *mapSeq[V, K, U, L]) get() (U, L, bool) {
	return m.apply(m.src.get())
}

func (m *mapSeq[V, K, U, L]) next() {
	m.src.next()
}

func (m *mapSeq[V, K, U, L]) each(yield func(U, L) bool) bool {
	return m.src.each(func(v V, k K) bool {
		return yield(m.val(v, k), m.key(v, k))
	})
}

func (m *mapIdx[V, K, U, L]) size() int {
	return m.idx.size()
}

func (m *mapIdx[V, K, U, L]) at(i int) (U, L, bool) {
	return m.apply(m.idx.at(i))
}

func (m *mapIdx[V, K, U, L]) sub(from, to int) Indexed[U, L] {
	return mapIdxOf(m.idx.sub(from, to), m.val, m.key)
}

func (m *mapBidi[V, K, U, L]) subBidi(from, to int) Bidi[U, L] {
	return mapBidiOf(m.bidi.subBidi(from, to), m.val, m.key)
}

func (m *mapBidi[V, K, U, L]) back() (U, L, bool) {
	return m.apply(m.bidi.back())
}

func (m *mapBidi[V, K, U, L]) prev() {
	m.bidi.prev()
}

func (m *mapBidi[V, K, U, L]) eachBack(yield func(U, L) bool) bool {
	return m.bidi.eachBack(func(v V, k K) bool {
		return yield(m.val(v, k), m.key(v, k))
	})
}
