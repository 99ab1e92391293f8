package seq

// Cursor is a positioned iterator over a sorted dataset, such as a B-tree or
// LSM table iterator.
//
// Usage:
//
//	for c.SeekFirst(); c.Valid(); c.Next() {
//	    key, val := c.Key(), c.Val()
//	    // process key, val
//	}
//	if err := c.Error(); err != nil {
//	    // handle error
//	}
type Cursor[V, K any] interface {
	// Valid reports whether the cursor is positioned at a pair.
	Valid() bool

	// Error returns the error that stopped the cursor, if any.
	Error() error

	// Key returns the key at the current position.
	// Behavior is undefined if Valid() returns false.
	Key() K

	// Val returns the value at the current position.
	// Behavior is undefined if Valid() returns false.
	Val() V

	// Next advances the cursor and reports whether it is still valid.
	Next() bool

	// SeekFirst positions the cursor at the first pair.
	SeekFirst() bool
}

type cursor[V, K any] struct {
	flag
	c     Cursor[V, K]
	ready bool
}

// OfCursor wraps c as a forward sequence. The cursor is positioned with
// SeekFirst on first use. The sequence ends when the cursor stops being
// valid; check c.Error() afterwards to tell a failure from the end.
func OfCursor[V, K any](c Cursor[V, K]) Seq[V, K] {
	return &cursor[V, K]{c: c}
}

func (s *cursor[V, K]) init() {
	if s.ready {
		return
	}
	s.ready = true
	s.c.SeekFirst()
}

func (s *cursor[V, K]) get() (V, K, bool) {
	if !s.c.Valid() {
		return none[V, K]()
	}
	return s.c.Val(), s.c.Key(), true
}

func (s *cursor[V, K]) next() {
	if s.c.Valid() {
		s.c.Next()
	}
}

func (s *cursor[V, K]) each(yield func(V, K) bool) bool {
	s.init()
	for ; s.c.Valid(); s.c.Next() {
		if !yield(s.c.Val(), s.c.Key()) {
			return false
		}
	}
	return true
}
