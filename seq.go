// Package seq implements lazy, single-use sequences of value/key pairs.
//
// A sequence does no work until it is consumed and may be consumed only
// once. Sequences come in three nested tiers:
//
//   - [Seq]: forward traversal.
//   - [Indexed]: adds length, positional access and lazy subranges.
//   - [Bidi]: adds traversal from the right end; requires a finite length.
//
// Sources ([OfSlice], [Range], [OfMap], ...) build sequences, combinators
// ([Map], [Filter], [Zip], [Chunk], ...) wrap them, and terminal consumers
// ([ToSlice], [Fold], [Find], ...) drive them to a plain value.
//
// Every combinator returns the strongest tier it can support for its
// parents. The forward entry points keep the richer tier dynamically, the
// Idx and Bidi variants keep it statically:
//
//	ints := seq.OfSlice([]int{1, 2, 3, 4, 5})
//	even := seq.Filter(seq.Map(ints, double), greater4) // Seq
//	idx := seq.MapIdx(seq.OfSlice(xs), double)          // Indexed
//
// Misuse is a programmer error and panics: reusing a consumed sequence
// panics with [ErrUsed], reverse traversal of an infinite sequence panics
// with [ErrUnbounded].
package seq

import (
	"github.com/dacapoday/seq/internal/bound"
	"golang.org/x/exp/constraints"
)

// Unbounded is the length of a sequence that never ends.
const Unbounded = bound.Inf

// Unit is the key of sequences without meaningful keys.
type Unit = struct{}

// Number is the set of types accepted by numeric sources and consumers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Seq is a lazy, single-use sequence of value/key pairs.
//
// Positional methods (get, next and the Indexed and Bidi extensions) may be
// called only after init; each and sub initialize on their own.
type Seq[V, K any] interface {
	state() *flag

	// init runs deferred setup. Idempotent.
	init()
	// get returns the current pair without advancing.
	// Once it reports false it reports false forever.
	get() (V, K, bool)
	// next moves past the current pair. No-op when exhausted.
	next()
	// each visits the remaining pairs until yield returns false.
	// Reports whether the traversal ran to completion.
	each(yield func(V, K) bool) bool
}

// Indexed is a Seq with a known remaining length and random access.
// Positions are relative to the current front.
type Indexed[V, K any] interface {
	Seq[V, K]

	size() int
	at(i int) (V, K, bool)
	// sub returns the window [from, to) without evaluating it.
	sub(from, to int) Indexed[V, K]
}

// Bidi is an Indexed sequence that can also be consumed from the right end.
// Right-end methods panic with ErrUnbounded on infinite sequences.
type Bidi[V, K any] interface {
	Indexed[V, K]

	back() (V, K, bool)
	prev()
	eachBack(yield func(V, K) bool) bool
	subBidi(from, to int) Bidi[V, K]
}

// Pair is a yielded value with its key.
type Pair[V, K any] struct {
	Val V
	Key K
}

type flag struct {
	used bool
}

func (f *flag) state() *flag {
	return f
}

type stateful interface {
	state() *flag
}

// claim marks s used. Panics if it already was.
func claim(s stateful) {
	f := s.state()
	if f.used {
		panic(ErrUsed)
	}
	f.used = true
}

// check panics if s is used.
func check(s stateful) {
	if s.state().used {
		panic(ErrUsed)
	}
}

// finite returns the length of s. Panics if s is infinite.
func finite(s interface{ size() int }) int {
	n := s.size()
	if n == Unbounded {
		panic(ErrUnbounded)
	}
	return n
}

// AsIndexed reports whether s supports positional access.
func AsIndexed[V, K any](s Seq[V, K]) (Indexed[V, K], bool) {
	ix, ok := s.(Indexed[V, K])
	return ix, ok
}

// AsBidi reports whether s supports traversal from the right end.
func AsBidi[V, K any](s Seq[V, K]) (Bidi[V, K], bool) {
	b, ok := s.(Bidi[V, K])
	return b, ok
}

func none[V, K any]() (v V, k K, ok bool) {
	return
}

// drainBack drives back/prev until exhaustion, for Bidi types without a
// cheaper right-end traversal.
func drainBack[V, K any](s Bidi[V, K], yield func(V, K) bool) bool {
	s.init()
	finite(s)
	for {
		v, k, ok := s.back()
		if !ok {
			return true
		}
		s.prev()
		if !yield(v, k) {
			return false
		}
	}
}
