package deque

import "iter"

// Iterator is a forward cursor over a deque. It is a small value capturing
// the deque's mutation epoch at creation; every advance re-checks the
// epoch and trips ErrModifiedIteration if the deque was structurally
// mutated since. Detection is best-effort under the single-threaded-use
// assumption, not a guarantee against every misuse.
type Iterator[T any] struct {
	d   *Deque[T]
	ver uint64
	idx int
	cur T
	err error
}

// Iter returns a cursor positioned before the first element.
func (d *Deque[T]) Iter() *Iterator[T] {
	return &Iterator[T]{d: d, ver: d.s.version(), idx: -1}
}

// Next advances to the next element. It returns false at the end of the
// deque or once the iterator is invalidated; check Err to tell the two
// apart.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.ver != it.d.s.version() {
		it.err = ErrModifiedIteration
		return false
	}
	if it.idx+1 >= it.d.s.length() {
		return false
	}
	it.idx++
	it.cur = it.d.s.at(it.idx)
	return true
}

// Value returns the element at the current position.
func (it *Iterator[T]) Value() T { return it.cur }

// Index returns the logical index of the current position.
func (it *Iterator[T]) Index() int { return it.idx }

// Err returns ErrModifiedIteration if the iterator was invalidated, else
// nil.
func (it *Iterator[T]) Err() error { return it.err }

// Reset repositions the cursor before the first element. It re-validates
// against the live epoch, so a stale cursor trips here rather than on the
// next advance, and it never clears an invalidation that already tripped.
func (it *Iterator[T]) Reset() {
	if it.err != nil {
		return
	}
	if it.ver != it.d.s.version() {
		it.err = ErrModifiedIteration
		return
	}
	it.idx = -1
}

// All returns an index/value sequence over the elements for use with
// range. Structural mutation mid-range panics with ErrModifiedIteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		ver := d.s.version()
		for i := 0; i < d.s.length(); i++ {
			if d.s.version() != ver {
				panic(ErrModifiedIteration)
			}
			if !yield(i, d.s.at(i)) {
				return
			}
		}
	}
}

// Values returns a value sequence over the elements for use with range.
// Structural mutation mid-range panics with ErrModifiedIteration.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		ver := d.s.version()
		for i := 0; i < d.s.length(); i++ {
			if d.s.version() != ver {
				panic(ErrModifiedIteration)
			}
			if !yield(d.s.at(i)) {
				return
			}
		}
	}
}
