package seq

// Tuple holds one value from each side of a Zip.
type Tuple[A, B any] struct {
	A A
	B B
}

type zipSeq[V, K, U, L, W, M any] struct {
	flag
	a   Seq[V, K]
	b   Seq[U, L]
	val func(V, K, U, L) W
	key func(V, K, U, L) M
}

type zipIdx[V, K, U, L, W, M any] struct {
	zipSeq[V, K, U, L, W, M]
	ia Indexed[V, K]
	ib Indexed[U, L]
}

type zipBidi[V, K, U, L, W, M any] struct {
	zipIdx[V, K, U, L, W, M]
	ba      Bidi[V, K]
	bb      Bidi[U, L]
	aligned bool
}

// ZipByKV pairs up a and b in lockstep, combining each pair of pairs with
// val and key. It stops as soon as either side is exhausted.
//
// The result is Indexed when both sides are, with length
// min(len(a), len(b)), and Bidi when both sides are.
func ZipByKV[V, K, U, L, W, M any](a Seq[V, K], b Seq[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Seq[W, M] {
	claim(a)
	claim(b)
	return zipOf(a, b, val, key)
}

// ZipByKVIdx is ZipByKV for Indexed sequences.
func ZipByKVIdx[V, K, U, L, W, M any](a Indexed[V, K], b Indexed[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Indexed[W, M] {
	claim(a)
	claim(b)
	return zipIdxOf(a, b, val, key)
}

// ZipByKVBidi is ZipByKV for Bidi sequences.
func ZipByKVBidi[V, K, U, L, W, M any](a Bidi[V, K], b Bidi[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Bidi[W, M] {
	claim(a)
	claim(b)
	return zipBidiOf(a, b, val, key)
}

// Zip pairs up the values of a and b, keeping the keys of a.
func Zip[V, K, U, L any](a Seq[V, K], b Seq[U, L]) Seq[Tuple[V, U], K] {
	return ZipByKV(a, b,
		func(v1 V, _ K, v2 U, _ L) Tuple[V, U] { return Tuple[V, U]{v1, v2} },
		func(_ V, k1 K, _ U, _ L) K { return k1 },
	)
}

// ZipBy combines the values of a and b with f, keeping the keys of a.
func ZipBy[V, K, U, L, W any](a Seq[V, K], b Seq[U, L], f func(V, K, U, L) W) Seq[W, K] {
	return ZipByKV(a, b, f, func(_ V, k1 K, _ U, _ L) K { return k1 })
}

// ZipKey keys the values of a with the values of b.
func ZipKey[V, K, U, L any](a Seq[V, K], b Seq[U, L]) Seq[V, U] {
	return ZipByKV(a, b,
		func(v1 V, _ K, _ U, _ L) V { return v1 },
		func(_ V, _ K, v2 U, _ L) U { return v2 },
	)
}

func zipOf[V, K, U, L, W, M any](a Seq[V, K], b Seq[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Seq[W, M] {
	if ia, ok := a.(Indexed[V, K]); ok {
		if ib, ok := b.(Indexed[U, L]); ok {
			return zipIdxOf(ia, ib, val, key)
		}
	}
	return &zipSeq[V, K, U, L, W, M]{a: a, b: b, val: val, key: key}
}

func zipIdxOf[V, K, U, L, W, M any](a Indexed[V, K], b Indexed[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Indexed[W, M] {
	if ba, ok := a.(Bidi[V, K]); ok {
		if bb, ok := b.(Bidi[U, L]); ok {
			return zipBidiOf(ba, bb, val, key)
		}
	}
	z := &zipIdx[V, K, U, L, W, M]{ia: a, ib: b}
	z.a, z.b, z.val, z.key = a, b, val, key
	return z
}

func zipBidiOf[V, K, U, L, W, M any](a Bidi[V, K], b Bidi[U, L], val func(V, K, U, L) W, key func(V, K, U, L) M) Bidi[W, M] {
	z := &zipBidi[V, K, U, L, W, M]{ba: a, bb: b}
	z.a, z.b, z.ia, z.ib, z.val, z.key = a, b, a, b, val, key
	return z
}

func (z *zipSeq[V, K, U, L, W, M]) init() {
	z.a.init()
	z.b.init()
}

func (z *zipSeq[V, K, U, L, W, M]) get() (W, M, bool) {
	v1, k1, ok := z.a.get()
	if !ok {
		return none[W, M]()
	}
	v2, k2, ok := z.b.get()
	if !ok {
		return none[W, M]()
	}
	return z.val(v1, k1, v2, k2), z.key(v1, k1, v2, k2), true
}

func (z *zipSeq[V, K, U, L, W, M]) next() {
	z.a.next()
	z.b.next()
}

func (z *zipSeq[V, K, U, L, W, M]) each(yield func(W, M) bool) bool {
	z.b.init()
	ok := true
	z.a.each(func(v1 V, k1 K) bool {
		v2, k2, more := z.b.get()
		if !more {
			return false
		}
		z.b.next()
		ok = yield(z.val(v1, k1, v2, k2), z.key(v1, k1, v2, k2))
		return ok
	})
	return ok
}

func (z *zipIdx[V, K, U, L, W, M]) size() int {
	return min(z.ia.size(), z.ib.size())
}

func (z *zipIdx[V, K, U, L, W, M]) at(i int) (W, M, bool) {
	v1, k1, ok := z.ia.at(i)
	if !ok {
		return none[W, M]()
	}
	v2, k2, ok := z.ib.at(i)
	if !ok {
		return none[W, M]()
	}
	return z.val(v1, k1, v2, k2), z.key(v1, k1, v2, k2), true
}

func (z *zipIdx[V, K, U, L, W, M]) sub(from, to int) Indexed[W, M] {
	return zipIdxOf(z.ia.sub(from, to), z.ib.sub(from, to), z.val, z.key)
}

// align cuts the longer side so both right ends line up.
func (z *zipBidi[V, K, U, L, W, M]) align() {
	if z.aligned {
		return
	}
	z.aligned = true
	n := finite(z)
	if z.ba.size() != n {
		a := z.ba.subBidi(0, n)
		a.init()
		z.a, z.ia, z.ba = a, a, a
	}
	if z.bb.size() != n {
		b := z.bb.subBidi(0, n)
		b.init()
		z.b, z.ib, z.bb = b, b, b
	}
}

func (z *zipBidi[V, K, U, L, W, M]) subBidi(from, to int) Bidi[W, M] {
	return zipBidiOf(z.ba.subBidi(from, to), z.bb.subBidi(from, to), z.val, z.key)
}

func (z *zipBidi[V, K, U, L, W, M]) back() (W, M, bool) {
	z.align()
	v1, k1, ok := z.ba.back()
	if !ok {
		return none[W, M]()
	}
	v2, k2, ok := z.bb.back()
	if !ok {
		return none[W, M]()
	}
	return z.val(v1, k1, v2, k2), z.key(v1, k1, v2, k2), true
}

func (z *zipBidi[V, K, U, L, W, M]) prev() {
	z.align()
	z.ba.prev()
	z.bb.prev()
}

func (z *zipBidi[V, K, U, L, W, M]) eachBack(yield func(W, M) bool) bool {
	z.init()
	z.align()
	ok := true
	z.ba.eachBack(func(v1 V, k1 K) bool {
		v2, k2, more := z.bb.back()
		if !more {
			return false
		}
		z.bb.prev()
		ok = yield(z.val(v1, k1, v2, k2), z.key(v1, k1, v2, k2))
		return ok
	})
	return ok
}

// Zipped holds one value from each side of a ZipAll, with flags telling
// whether that side still had pairs.
type Zipped[V1, V2 any] struct {
	V1  V1
	Ok1 bool

	V2  V2
	Ok2 bool
}

type zipAllSeq[V, K, U, L, W, M any] struct {
	flag
	a   Seq[V, K]
	b   Seq[U, L]
	val func(V, K, U, L, bool, bool) W
	key func(V, K, U, L, bool, bool) M
}

type zipAllIdx[V, K, U, L, W, M any] struct {
	zipAllSeq[V, K, U, L, W, M]
	ia Indexed[V, K]
	ib Indexed[U, L]
}

type zipAllBidi[V, K, U, L, W, M any] struct {
	zipAllIdx[V, K, U, L, W, M]
	ba Bidi[V, K]
	bb Bidi[U, L]
}

// ZipAllByKV pairs up a and b in lockstep until both are exhausted. Once a
// side runs out, val and key receive zero values for it and a false
// continuation flag (c1 for a, c2 for b), so an exhausted side can be told
// apart from a zero value.
//
// The result is Indexed when both sides are, with length
// max(len(a), len(b)), and Bidi when both sides are.
func ZipAllByKV[V, K, U, L, W, M any](a Seq[V, K], b Seq[U, L],
	val func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) W,
	key func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) M,
) Seq[W, M] {
	claim(a)
	claim(b)
	return zipAllOf(a, b, val, key)
}

// ZipAllByKVIdx is ZipAllByKV for Indexed sequences.
func ZipAllByKVIdx[V, K, U, L, W, M any](a Indexed[V, K], b Indexed[U, L],
	val func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) W,
	key func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) M,
) Indexed[W, M] {
	claim(a)
	claim(b)
	return zipAllIdxOf(a, b, val, key)
}

// ZipAllByKVBidi is ZipAllByKV for Bidi sequences.
func ZipAllByKVBidi[V, K, U, L, W, M any](a Bidi[V, K], b Bidi[U, L],
	val func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) W,
	key func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) M,
) Bidi[W, M] {
	claim(a)
	claim(b)
	return zipAllBidiOf(a, b, val, key)
}

// ZipAll pairs up the values of a and b until both are exhausted, keeping
// the keys of a (zero once a is exhausted).
func ZipAll[V, K, U, L any](a Seq[V, K], b Seq[U, L]) Seq[Zipped[V, U], K] {
	return ZipAllByKV(a, b,
		func(v1 V, _ K, v2 U, _ L, c1, c2 bool) Zipped[V, U] { return Zipped[V, U]{v1, c1, v2, c2} },
		func(_ V, k1 K, _ U, _ L, _, _ bool) K { return k1 },
	)
}

// ZipAllBy combines the values of a and b with f until both are exhausted,
// keeping the keys of a.
func ZipAllBy[V, K, U, L, W any](a Seq[V, K], b Seq[U, L], f func(v1 V, k1 K, v2 U, k2 L, c1, c2 bool) W) Seq[W, K] {
	return ZipAllByKV(a, b, f, func(_ V, k1 K, _ U, _ L, _, _ bool) K { return k1 })
}

// ZipAllKey keys the values of a with the values of b until both are
// exhausted. Absent sides read as zero values.
func ZipAllKey[V, K, U, L any](a Seq[V, K], b Seq[U, L]) Seq[V, U] {
	return ZipAllByKV(a, b,
		func(v1 V, _ K, _ U, _ L, _, _ bool) V { return v1 },
		func(_ V, _ K, v2 U, _ L, _, _ bool) U { return v2 },
	)
}

func zipAllOf[V, K, U, L, W, M any](a Seq[V, K], b Seq[U, L], val func(V, K, U, L, bool, bool) W, key func(V, K, U, L, bool, bool) M) Seq[W, M] {
	if ia, ok := a.(Indexed[V, K]); ok {
		if ib, ok := b.(Indexed[U, L]); ok {
			return zipAllIdxOf(ia, ib, val, key)
		}
	}
	return &zipAllSeq[V, K, U, L, W, M]{a: a, b: b, val: val, key: key}
}

func zipAllIdxOf[V, K, U, L, W, M any](a Indexed[V, K], b Indexed[U, L], val func(V, K, U, L, bool, bool) W, key func(V, K, U, L, bool, bool) M) Indexed[W, M] {
	if ba, ok := a.(Bidi[V, K]); ok {
		if bb, ok := b.(Bidi[U, L]); ok {
			return zipAllBidiOf(ba, bb, val, key)
		}
	}
	z := &zipAllIdx[V, K, U, L, W, M]{ia: a, ib: b}
	z.a, z.b, z.val, z.key = a, b, val, key
	return z
}

func zipAllBidiOf[V, K, U, L, W, M any](a Bidi[V, K], b Bidi[U, L], val func(V, K, U, L, bool, bool) W, key func(V, K, U, L, bool, bool) M) Bidi[W, M] {
	z := &zipAllBidi[V, K, U, L, W, M]{ba: a, bb: b}
	z.a, z.b, z.ia, z.ib, z.val, z.key = a, b, a, b, val, key
	return z
}

// combine applies val and key, zeroing the side that is not present.
func (z *zipAllSeq[V, K, U, L, W, M]) combine(v1 V, k1 K, ok1 bool, v2 U, k2 L, ok2 bool) (W, M, bool) {
	if !ok1 && !ok2 {
		return none[W, M]()
	}
	if !ok1 {
		v1, k1, _ = none[V, K]()
	}
	if !ok2 {
		v2, k2, _ = none[U, L]()
	}
	return z.val(v1, k1, v2, k2, ok1, ok2), z.key(v1, k1, v2, k2, ok1, ok2), true
}

func (z *zipAllSeq[V, K, U, L, W, M]) init() {
	z.a.init()
	z.b.init()
}

func (z *zipAllSeq[V, K, U, L, W, M]) get() (W, M, bool) {
	v1, k1, ok1 := z.a.get()
	v2, k2, ok2 := z.b.get()
	return z.combine(v1, k1, ok1, v2, k2, ok2)
}

func (z *zipAllSeq[V, K, U, L, W, M]) next() {
	z.a.next()
	z.b.next()
}

func (z *zipAllSeq[V, K, U, L, W, M]) each(yield func(W, M) bool) bool {
	z.b.init()
	c2 := true
	ok := z.a.each(func(v1 V, k1 K) bool {
		var v2 U
		var k2 L
		if c2 {
			v2, k2, c2 = z.b.get()
			if c2 {
				z.b.next()
			}
		}
		w, m, _ := z.combine(v1, k1, true, v2, k2, c2)
		return yield(w, m)
	})
	if !ok {
		return false
	}
	return z.b.each(func(v2 U, k2 L) bool {
		var v1 V
		var k1 K
		w, m, _ := z.combine(v1, k1, false, v2, k2, true)
		return yield(w, m)
	})
}

func (z *zipAllIdx[V, K, U, L, W, M]) size() int {
	return max(z.ia.size(), z.ib.size())
}

func (z *zipAllIdx[V, K, U, L, W, M]) at(i int) (W, M, bool) {
	v1, k1, ok1 := z.ia.at(i)
	v2, k2, ok2 := z.ib.at(i)
	return z.combine(v1, k1, ok1, v2, k2, ok2)
}

func (z *zipAllIdx[V, K, U, L, W, M]) sub(from, to int) Indexed[W, M] {
	return zipAllIdxOf(z.ia.sub(from, to), z.ib.sub(from, to), z.val, z.key)
}

func (z *zipAllBidi[V, K, U, L, W, M]) subBidi(from, to int) Bidi[W, M] {
	return zipAllBidiOf(z.ba.subBidi(from, to), z.bb.subBidi(from, to), z.val, z.key)
}

func (z *zipAllBidi[V, K, U, L, W, M]) back() (W, M, bool) {
	finite(z)
	na, nb := z.ba.size(), z.bb.size()
	var v1 V
	var k1 K
	var v2 U
	var k2 L
	if na >= nb {
		v1, k1, _ = z.ba.back()
	}
	if nb >= na {
		v2, k2, _ = z.bb.back()
	}
	return z.combine(v1, k1, na >= nb && na > 0, v2, k2, nb >= na && nb > 0)
}

func (z *zipAllBidi[V, K, U, L, W, M]) prev() {
	finite(z)
	na, nb := z.ba.size(), z.bb.size()
	if na >= nb {
		z.ba.prev()
	}
	if nb >= na {
		z.bb.prev()
	}
}

func (z *zipAllBidi[V, K, U, L, W, M]) eachBack(yield func(W, M) bool) bool {
	return drainBack[W, M](z, yield)
}
