package seq

import "cmp"

// merge interleaves two key-sorted sequences in key order, the way an LSM
// merge iterator layers a newer table over an older one.
//
// States:
//
//	valid{
//		cover{ only over left, or over key < base key }
//		!cover{ only base left, or base key < over key }
//		same{ equal keys: over is current, both advance }
//	}
//	!valid{ both exhausted }
type merge[V, K any] struct {
	flag
	over, base  Seq[V, K]
	cmp         func(a, b K) int
	valid       bool
	same, cover bool
	ready       bool
}

var _ Seq[int, int] = (*merge[int, int])(nil)

// MergeFunc merges over and base, both sorted by key under cmp, into one
// sequence sorted by key. On equal keys the pair from over wins and the
// pair from base is dropped.
func MergeFunc[V, K any](over, base Seq[V, K], cmp func(a, b K) int) Seq[V, K] {
	claim(over)
	claim(base)
	return &merge[V, K]{over: over, base: base, cmp: cmp}
}

// Merge is MergeFunc for ordered keys.
func Merge[V any, K cmp.Ordered](over, base Seq[V, K]) Seq[V, K] {
	return MergeFunc(over, base, cmp.Compare[K])
}

// mergeNext picks the side holding the smaller key.
func (m *merge[V, K]) mergeNext() {
	_, ko, over := m.over.get()
	_, kb, base := m.base.get()
	m.valid = over || base
	m.same = false
	if over && base {
		c := m.cmp(ko, kb)
		m.cover = c <= 0
		m.same = c == 0
		return
	}
	m.cover = over
}

func (m *merge[V, K]) init() {
	m.over.init()
	m.base.init()
	if m.ready {
		return
	}
	m.ready = true
	m.mergeNext()
}

func (m *merge[V, K]) get() (V, K, bool) {
	if !m.valid {
		return none[V, K]()
	}
	if m.cover {
		return m.over.get()
	}
	return m.base.get()
}

func (m *merge[V, K]) next() {
	if !m.valid {
		return
	}
	switch {
	case m.same:
		m.over.next()
		m.base.next()
	case m.cover:
		m.over.next()
	default:
		m.base.next()
	}
	m.mergeNext()
}

func (m *merge[V, K]) each(yield func(V, K) bool) bool {
	m.init()
	for m.valid {
		v, k, _ := m.get()
		m.next()
		if !yield(v, k) {
			return false
		}
	}
	return true
}
