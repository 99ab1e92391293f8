package seq

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"runtime"
	"slices"

	"github.com/dacapoday/seq/internal/bound"
)

type array[V any] struct {
	flag
	arr    []V
	lo, hi int
}

// OfSlice returns a sequence over the elements of arr, keyed by position.
// The slice is read, never copied; it must not change while in use.
func OfSlice[V any](arr []V) Bidi[V, int] {
	return &array[V]{arr: arr, hi: len(arr)}
}

func (s *array[V]) init() {}

func (s *array[V]) get() (V, int, bool) {
	if s.lo < s.hi {
		return s.arr[s.lo], s.lo, true
	}
	return none[V, int]()
}

func (s *array[V]) next() {
	if s.lo < s.hi {
		s.lo++
	}
}

func (s *array[V]) each(yield func(V, int) bool) bool {
	for ; s.lo < s.hi; s.lo++ {
		if !yield(s.arr[s.lo], s.lo) {
			return false
		}
	}
	return true
}

func (s *array[V]) size() int {
	return s.hi - s.lo
}

func (s *array[V]) at(i int) (V, int, bool) {
	if i < 0 || i >= s.hi-s.lo {
		return none[V, int]()
	}
	return s.arr[s.lo+i], s.lo + i, true
}

func (s *array[V]) sub(from, to int) Indexed[V, int] {
	return s.subBidi(from, to)
}

func (s *array[V]) subBidi(from, to int) Bidi[V, int] {
	hi := min(s.hi, bound.Add(s.lo, to))
	lo := min(bound.Add(s.lo, from), hi)
	return &array[V]{arr: s.arr, lo: lo, hi: hi}
}

func (s *array[V]) back() (V, int, bool) {
	if s.lo < s.hi {
		return s.arr[s.hi-1], s.hi - 1, true
	}
	return none[V, int]()
}

func (s *array[V]) prev() {
	if s.lo < s.hi {
		s.hi--
	}
}

func (s *array[V]) eachBack(yield func(V, int) bool) bool {
	for ; s.hi > s.lo; s.hi-- {
		if !yield(s.arr[s.hi-1], s.hi-1) {
			return false
		}
	}
	return true
}

// rng yields from + i*step for i in [lo, hi), or from - i*step when desc
// is set. Integer arithmetic wraps, so the values stay exact as long as
// they fit in N.
type rng[N Number] struct {
	flag
	from, step N
	desc       bool
	lo, hi     int
}

// Range returns the arithmetic progression from, from±1, ... stopping
// before to. The step is 1 when from < to and -1 otherwise; unsigned types
// count down.
func Range[N Number](from, to N) Bidi[N, Unit] {
	if from <= to {
		return RangeStep(from, to, 1)
	}
	var zero N
	if down := zero - 1; down < zero {
		return RangeStep(from, to, down)
	}
	return &rng[N]{from: from, step: 1, desc: true, hi: span(from, to, 1, true)}
}

// RangeStep returns from, from+step, ... stopping before to.
// A zero step repeats from forever, unless from equals to.
func RangeStep[N Number](from, to, step N) Bidi[N, Unit] {
	return &rng[N]{from: from, step: step, hi: span(from, to, step, false)}
}

// Iota returns the unbounded progression from, from+step, ...
func Iota[N Number](from, step N) Bidi[N, Unit] {
	return &rng[N]{from: from, step: step, hi: Unbounded}
}

// span counts the values of the progression, clamped to [0, Unbounded].
// Integer distances are taken in 64 bits so narrow types do not overflow.
func span[N Number](from, to, step N, desc bool) int {
	var zero N
	if step == zero {
		if from == to {
			return 0
		}
		return Unbounded
	}
	if up := (step > zero) != desc; up && from >= to || !up && from <= to {
		return 0
	}
	if half := N(1) / N(2); half != zero {
		n := math.Ceil(math.Abs(float64(to)-float64(from)) / math.Abs(float64(step)))
		if math.IsNaN(n) || n >= float64(Unbounded) {
			return Unbounded
		}
		return int(n)
	}
	dist := wide(max(from, to)) - wide(min(from, to))
	mag := wide(step)
	if step < zero {
		mag = -mag
	}
	n := dist / mag
	if dist%mag != 0 {
		n++
	}
	if n >= uint64(Unbounded) {
		return Unbounded
	}
	return int(n)
}

// wide returns the 64-bit two's complement pattern of an integer.
func wide[N Number](x N) uint64 {
	return uint64(int64(x))
}

func (r *rng[N]) val(i int) N {
	if r.desc {
		return r.from - N(i)*r.step
	}
	return r.from + N(i)*r.step
}

func (r *rng[N]) init() {}

func (r *rng[N]) get() (N, Unit, bool) {
	if r.lo < r.hi {
		return r.val(r.lo), Unit{}, true
	}
	return none[N, Unit]()
}

func (r *rng[N]) next() {
	if r.lo < r.hi {
		r.lo++
	}
}

func (r *rng[N]) each(yield func(N, Unit) bool) bool {
	for ; r.lo < r.hi; r.lo++ {
		if !yield(r.val(r.lo), Unit{}) {
			return false
		}
	}
	return true
}

func (r *rng[N]) size() int {
	if r.hi == Unbounded {
		return Unbounded
	}
	return r.hi - r.lo
}

func (r *rng[N]) at(i int) (N, Unit, bool) {
	if i < 0 || i >= r.size() {
		return none[N, Unit]()
	}
	return r.val(r.lo + i), Unit{}, true
}

func (r *rng[N]) sub(from, to int) Indexed[N, Unit] {
	return r.subBidi(from, to)
}

func (r *rng[N]) subBidi(from, to int) Bidi[N, Unit] {
	hi := min(r.hi, bound.Add(r.lo, to))
	lo := min(bound.Add(r.lo, from), hi)
	return &rng[N]{from: r.from, step: r.step, desc: r.desc, lo: lo, hi: hi}
}

func (r *rng[N]) back() (N, Unit, bool) {
	finite(r)
	if r.lo < r.hi {
		return r.val(r.hi - 1), Unit{}, true
	}
	return none[N, Unit]()
}

func (r *rng[N]) prev() {
	finite(r)
	if r.lo < r.hi {
		r.hi--
	}
}

func (r *rng[N]) eachBack(yield func(N, Unit) bool) bool {
	finite(r)
	for ; r.hi > r.lo; r.hi-- {
		if !yield(r.val(r.hi-1), Unit{}) {
			return false
		}
	}
	return true
}

// repeat yields the same pair n times.
type repeat[V, K any] struct {
	flag
	v V
	k K
	n int
}

// Empty returns a sequence with no pairs.
func Empty[V, K any]() Bidi[V, K] {
	return &repeat[V, K]{}
}

// Once returns a sequence of the single value v.
func Once[V any](v V) Bidi[V, Unit] {
	return RepeatKV(v, Unit{}, 1)
}

// OnceKV returns a sequence of the single pair (v, k).
func OnceKV[V, K any](v V, k K) Bidi[V, K] {
	return RepeatKV(v, k, 1)
}

// Repeat returns v repeated n times. n may be Unbounded.
func Repeat[V any](v V, n int) Bidi[V, Unit] {
	return RepeatKV(v, Unit{}, n)
}

// RepeatKV returns the pair (v, k) repeated n times. n may be Unbounded.
func RepeatKV[V, K any](v V, k K, n int) Bidi[V, K] {
	return &repeat[V, K]{v: v, k: k, n: max(n, 0)}
}

func (r *repeat[V, K]) init() {}

func (r *repeat[V, K]) get() (V, K, bool) {
	if r.n > 0 {
		return r.v, r.k, true
	}
	return none[V, K]()
}

func (r *repeat[V, K]) next() {
	if r.n > 0 && r.n != Unbounded {
		r.n--
	}
}

func (r *repeat[V, K]) each(yield func(V, K) bool) bool {
	for r.n > 0 {
		if !yield(r.v, r.k) {
			return false
		}
		if r.n != Unbounded {
			r.n--
		}
	}
	return true
}

func (r *repeat[V, K]) size() int {
	return r.n
}

func (r *repeat[V, K]) at(i int) (V, K, bool) {
	if i < 0 || i >= r.n {
		return none[V, K]()
	}
	return r.v, r.k, true
}

func (r *repeat[V, K]) sub(from, to int) Indexed[V, K] {
	return r.subBidi(from, to)
}

func (r *repeat[V, K]) subBidi(from, to int) Bidi[V, K] {
	return &repeat[V, K]{v: r.v, k: r.k, n: bound.Sub(min(to, r.n), from)}
}

func (r *repeat[V, K]) back() (V, K, bool) {
	finite(r)
	return r.get()
}

func (r *repeat[V, K]) prev() {
	finite(r)
	r.next()
}

func (r *repeat[V, K]) eachBack(yield func(V, K) bool) bool {
	finite(r)
	return r.each(yield)
}

type iterate[V any] struct {
	flag
	v V
	f func(V) V
}

// Iterate returns the unbounded sequence seed, f(seed), f(f(seed)), ...
func Iterate[V any](seed V, f func(V) V) Seq[V, Unit] {
	return &iterate[V]{v: seed, f: f}
}

func (s *iterate[V]) init() {}

func (s *iterate[V]) get() (V, Unit, bool) {
	return s.v, Unit{}, true
}

func (s *iterate[V]) next() {
	s.v = s.f(s.v)
}

func (s *iterate[V]) each(yield func(V, Unit) bool) bool {
	for yield(s.v, Unit{}) {
		s.v = s.f(s.v)
	}
	return false
}

type pull[V, K any] struct {
	flag
	fn        func() (V, K, bool)
	v         V
	k         K
	ok, ready bool
}

// OfPull returns a sequence that calls next for each pair until it
// reports false. next is not called again after that.
func OfPull[V, K any](next func() (V, K, bool)) Seq[V, K] {
	return &pull[V, K]{fn: next}
}

func (p *pull[V, K]) init() {
	if p.ready {
		return
	}
	p.ready = true
	p.v, p.k, p.ok = p.fn()
}

func (p *pull[V, K]) get() (V, K, bool) {
	return p.v, p.k, p.ok
}

func (p *pull[V, K]) next() {
	if p.ok {
		p.v, p.k, p.ok = p.fn()
	}
}

func (p *pull[V, K]) each(yield func(V, K) bool) bool {
	p.init()
	for p.ok {
		if !yield(p.v, p.k) {
			return false
		}
		p.v, p.k, p.ok = p.fn()
	}
	return true
}

// pulled adapts a push iterator. Traversing it with each ranges over src
// directly; positional access converts it with iter.Pull2 first.
type pulled[V, K any] struct {
	flag
	src   iter.Seq2[K, V]
	pull  func() (K, V, bool)
	stop  func()
	v     V
	k     K
	ok    bool
	ready bool
}

// OfSeq returns a sequence over the values of src.
func OfSeq[V any](src iter.Seq[V]) Seq[V, Unit] {
	return OfSeq2(func(yield func(Unit, V) bool) {
		for v := range src {
			if !yield(Unit{}, v) {
				return
			}
		}
	})
}

// OfSeq2 returns a sequence over the key/value pairs of src.
//
// Positional reads run src in a pull iterator. It is stopped when src is
// exhausted, when each stops early, or once an abandoned sequence is
// garbage collected.
func OfSeq2[K, V any](src iter.Seq2[K, V]) Seq[V, K] {
	return &pulled[V, K]{src: src}
}

func (p *pulled[V, K]) init() {
	if p.ready {
		return
	}
	p.ready = true
	p.pull, p.stop = iter.Pull2(p.src)
	runtime.AddCleanup(p, func(stop func()) { stop() }, p.stop)
	p.advance()
}

func (p *pulled[V, K]) advance() {
	p.k, p.v, p.ok = p.pull()
	if !p.ok {
		p.stop()
	}
}

func (p *pulled[V, K]) get() (V, K, bool) {
	return p.v, p.k, p.ok
}

func (p *pulled[V, K]) next() {
	if p.ok {
		p.advance()
	}
}

func (p *pulled[V, K]) each(yield func(V, K) bool) bool {
	if !p.ready {
		p.ready = true
		for k, v := range p.src {
			if !yield(v, k) {
				return false
			}
		}
		return true
	}
	for p.ok {
		if !yield(p.v, p.k) {
			p.stop()
			return false
		}
		p.advance()
	}
	return true
}

// dict enumerates map entries in key order. Keys are collected on first
// use and shared with every subrange.
type dict[V any, K comparable] struct {
	flag
	m      map[K]V
	cmp    func(a, b K) int
	keys   []K
	lo, hi int
	ready  bool
}

// OfMap returns the entries of m in ascending key order.
// Keys are enumerated lazily, on first use.
func OfMap[K cmp.Ordered, V any](m map[K]V) Bidi[V, K] {
	return OfMapFunc(m, cmp.Compare[K])
}

// OfMapFunc returns the entries of m ordered by cmp on keys.
func OfMapFunc[K comparable, V any](m map[K]V, cmp func(a, b K) int) Bidi[V, K] {
	return &dict[V, K]{m: m, cmp: cmp}
}

func (d *dict[V, K]) init() {
	if d.ready {
		return
	}
	d.ready = true
	d.keys = slices.SortedFunc(maps.Keys(d.m), d.cmp)
	d.hi = len(d.keys)
}

func (d *dict[V, K]) pair(i int) (V, K, bool) {
	k := d.keys[i]
	return d.m[k], k, true
}

func (d *dict[V, K]) get() (V, K, bool) {
	if d.lo < d.hi {
		return d.pair(d.lo)
	}
	return none[V, K]()
}

func (d *dict[V, K]) next() {
	if d.lo < d.hi {
		d.lo++
	}
}

func (d *dict[V, K]) each(yield func(V, K) bool) bool {
	d.init()
	for ; d.lo < d.hi; d.lo++ {
		k := d.keys[d.lo]
		if !yield(d.m[k], k) {
			return false
		}
	}
	return true
}

func (d *dict[V, K]) size() int {
	return d.hi - d.lo
}

func (d *dict[V, K]) at(i int) (V, K, bool) {
	if i < 0 || i >= d.hi-d.lo {
		return none[V, K]()
	}
	return d.pair(d.lo + i)
}

func (d *dict[V, K]) sub(from, to int) Indexed[V, K] {
	return d.subBidi(from, to)
}

func (d *dict[V, K]) subBidi(from, to int) Bidi[V, K] {
	d.init()
	hi := min(d.hi, bound.Add(d.lo, to))
	lo := min(bound.Add(d.lo, from), hi)
	return &dict[V, K]{m: d.m, cmp: d.cmp, keys: d.keys, lo: lo, hi: hi, ready: true}
}

func (d *dict[V, K]) back() (V, K, bool) {
	if d.lo < d.hi {
		return d.pair(d.hi - 1)
	}
	return none[V, K]()
}

func (d *dict[V, K]) prev() {
	if d.lo < d.hi {
		d.hi--
	}
}

func (d *dict[V, K]) eachBack(yield func(V, K) bool) bool {
	d.init()
	for ; d.hi > d.lo; d.hi-- {
		k := d.keys[d.hi-1]
		if !yield(d.m[k], k) {
			return false
		}
	}
	return true
}
