package seq

import "github.com/dacapoday/seq/internal/bound"

type windows[V, K, U, L any] struct {
	flag
	src    Seq[V, K]
	val    func(V, K, V, K) U
	key    func(V, K, V, K) L
	v1, v2 V
	k1, k2 K
	ok     bool
	done   bool
}

type windowsIdx[V, K, U, L any] struct {
	flag
	src Indexed[V, K]
	val func(V, K, V, K) U
	key func(V, K, V, K) L
}

type windowsBidi[V, K, U, L any] struct {
	windowsIdx[V, K, U, L]
	bidi Bidi[V, K]
}

// WindowsByKV slides a window of two over s and combines each adjacent
// pair of pairs with val and key. A parent shorter than two yields nothing.
//
// Over an Indexed parent the window at i reads parent positions i and i+1
// directly, so the result is Indexed (or Bidi) as well.
func WindowsByKV[V, K, U, L any](s Seq[V, K], val func(v1 V, k1 K, v2 V, k2 K) U, key func(v1 V, k1 K, v2 V, k2 K) L) Seq[U, L] {
	claim(s)
	if ix, ok := s.(Indexed[V, K]); ok {
		return windowsIdxOf(ix, val, key)
	}
	return &windows[V, K, U, L]{src: s, val: val, key: key}
}

// WindowsByKVIdx is WindowsByKV for Indexed sequences.
func WindowsByKVIdx[V, K, U, L any](s Indexed[V, K], val func(v1 V, k1 K, v2 V, k2 K) U, key func(v1 V, k1 K, v2 V, k2 K) L) Indexed[U, L] {
	claim(s)
	return windowsIdxOf(s, val, key)
}

// Windows yields each adjacent pair of values, keyed by the first one's key.
func Windows[V, K any](s Seq[V, K]) Seq[Tuple[V, V], K] {
	return WindowsByKV(s,
		func(v1 V, _ K, v2 V, _ K) Tuple[V, V] { return Tuple[V, V]{v1, v2} },
		func(_ V, k1 K, _ V, _ K) K { return k1 },
	)
}

// Pop drops the last pair of s.
func Pop[V, K any](s Seq[V, K]) Seq[V, K] {
	return WindowsByKV(s,
		func(v1 V, _ K, _ V, _ K) V { return v1 },
		func(_ V, k1 K, _ V, _ K) K { return k1 },
	)
}

func windowsIdxOf[V, K, U, L any](s Indexed[V, K], val func(V, K, V, K) U, key func(V, K, V, K) L) Indexed[U, L] {
	if b, ok := s.(Bidi[V, K]); ok {
		w := &windowsBidi[V, K, U, L]{bidi: b}
		w.src, w.val, w.key = b, val, key
		return w
	}
	return &windowsIdx[V, K, U, L]{src: s, val: val, key: key}
}

// The parent stands on the second pair of the current window.
func (w *windows[V, K, U, L]) init() {
	w.src.init()
	if w.ok || w.done {
		return
	}
	var ok bool
	if w.v1, w.k1, ok = w.src.get(); !ok {
		w.done = true
		return
	}
	w.src.next()
	if w.v2, w.k2, ok = w.src.get(); !ok {
		w.done = true
		return
	}
	w.ok = true
}

func (w *windows[V, K, U, L]) get() (U, L, bool) {
	if !w.ok {
		return none[U, L]()
	}
	return w.val(w.v1, w.k1, w.v2, w.k2), w.key(w.v1, w.k1, w.v2, w.k2), true
}

func (w *windows[V, K, U, L]) next() {
	if !w.ok {
		return
	}
	w.src.next()
	v, k, ok := w.src.get()
	if !ok {
		w.ok, w.done = false, true
		return
	}
	w.v1, w.k1, w.v2, w.k2 = w.v2, w.k2, v, k
}

func (w *windows[V, K, U, L]) each(yield func(U, L) bool) bool {
	w.init()
	if !w.ok {
		return true
	}
	if !yield(w.val(w.v1, w.k1, w.v2, w.k2), w.key(w.v1, w.k1, w.v2, w.k2)) {
		return false
	}
	w.src.next()
	v1, k1 := w.v2, w.k2
	return w.src.each(func(v2 V, k2 K) bool {
		r := yield(w.val(v1, k1, v2, k2), w.key(v1, k1, v2, k2))
		v1, k1 = v2, k2
		return r
	})
}

func (w *windowsIdx[V, K, U, L]) init() {
	w.src.init()
}

func (w *windowsIdx[V, K, U, L]) size() int {
	return bound.Sub(w.src.size(), 1)
}

func (w *windowsIdx[V, K, U, L]) at(i int) (U, L, bool) {
	if i < 0 {
		return none[U, L]()
	}
	v1, k1, ok := w.src.at(i)
	if !ok {
		return none[U, L]()
	}
	v2, k2, ok := w.src.at(i + 1)
	if !ok {
		return none[U, L]()
	}
	return w.val(v1, k1, v2, k2), w.key(v1, k1, v2, k2), true
}

func (w *windowsIdx[V, K, U, L]) sub(from, to int) Indexed[U, L] {
	return windowsIdxOf(w.src.sub(from, bound.Add(to, 1)), w.val, w.key)
}

func (w *windowsIdx[V, K, U, L]) get() (U, L, bool) {
	return w.at(0)
}

func (w *windowsIdx[V, K, U, L]) next() {
	w.src.next()
}

func (w *windowsIdx[V, K, U, L]) each(yield func(U, L) bool) bool {
	w.src.init()
	v1, k1, ok := w.src.get()
	if !ok {
		return true
	}
	w.src.next()
	return w.src.each(func(v2 V, k2 K) bool {
		r := yield(w.val(v1, k1, v2, k2), w.key(v1, k1, v2, k2))
		v1, k1 = v2, k2
		return r
	})
}

func (w *windowsBidi[V, K, U, L]) subBidi(from, to int) Bidi[U, L] {
	b := w.bidi.subBidi(from, bound.Add(to, 1))
	x := &windowsBidi[V, K, U, L]{bidi: b}
	x.src, x.val, x.key = b, w.val, w.key
	return x
}

func (w *windowsBidi[V, K, U, L]) back() (U, L, bool) {
	n := finite(w)
	if n == 0 {
		return none[U, L]()
	}
	return w.at(n - 1)
}

func (w *windowsBidi[V, K, U, L]) prev() {
	if finite(w) > 0 {
		w.bidi.prev()
	}
}

func (w *windowsBidi[V, K, U, L]) eachBack(yield func(U, L) bool) bool {
	w.init()
	finite(w)
	v2, k2, ok := w.bidi.back()
	if !ok {
		return true
	}
	w.bidi.prev()
	return w.bidi.eachBack(func(v1 V, k1 K) bool {
		r := yield(w.val(v1, k1, v2, k2), w.key(v1, k1, v2, k2))
		v2, k2 = v1, k1
		return r
	})
}
