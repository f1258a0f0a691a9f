package deque

import (
	"fmt"
	"iter"
)

// Strategy selects the backing implementation for a Deque.
type Strategy uint8

const (
	// StrategyRing stores elements in a circular array addressed with
	// modular arithmetic. This is the default.
	StrategyRing Strategy = iota

	// StrategyMargin keeps the live elements contiguous with explicit
	// slack at both ends, enabling zero-copy Contiguous views.
	StrategyMargin
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRing:
		return "ring"
	case StrategyMargin:
		return "margin"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Deque is a growable double-ended sequence with random access. Pushes and
// pops at either end run in amortized constant time; interior insertion
// and removal shift the shorter side of the sequence.
//
// A Deque is not safe for concurrent use. Callers sharing one across
// goroutines must provide external mutual exclusion.
type Deque[T any] struct {
	s store[T]
}

// New creates an empty deque. Without options it uses the ring strategy
// and the default capacity.
func New[T any](opts ...Option) *Deque[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Deque[T]{s: newStore[T](cfg.strategy, cfg.capacity)}
}

// FromSlice creates a deque holding a copy of items. The backing array is
// sized to roughly twice the source length, so pushes in either direction
// have room before the first reallocation.
func FromSlice[T any](items []T, opts ...Option) *Deque[T] {
	cfg := defaultConfig()
	cfg.capacity = fromSliceCapacity(len(items))
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < len(items) {
		cfg.capacity = len(items)
	}
	d := &Deque[T]{s: newStore[T](cfg.strategy, cfg.capacity)}
	// The capacity is pre-sized above, so insert cannot grow or fail.
	_ = d.s.insert(0, items)
	return d
}

// Collect creates a deque from a sequence of unknown length, growing by
// ordinary pushes as elements arrive.
func Collect[T any](seq iter.Seq[T], opts ...Option) (*Deque[T], error) {
	d := New[T](opts...)
	for v := range seq {
		if err := d.PushBack(v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.s.length() }

// Cap returns the size of the backing array.
func (d *Deque[T]) Cap() int { return d.s.capacity() }

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool { return d.s.length() == 0 }

// Strategy returns the backing strategy chosen at construction.
func (d *Deque[T]) Strategy() Strategy { return d.s.kind() }

// At returns the element at index i.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.s.length() {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return d.s.at(i), nil
}

// Set overwrites the element at index i. Overwriting in place is not a
// structural mutation and does not invalidate iterators.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.s.length() {
		return ErrIndexOutOfRange
	}
	d.s.set(i, v)
	return nil
}

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) error { return d.s.pushBack(v) }

// PushFront prepends v before the first element.
func (d *Deque[T]) PushFront(v T) error { return d.s.pushFront(v) }

// PushBackRange appends items in order after the last element.
func (d *Deque[T]) PushBackRange(items []T) error {
	return d.s.insert(d.s.length(), items)
}

// PushFrontRange prepends items before the first element, preserving their
// order: the first item becomes the new front.
func (d *Deque[T]) PushFrontRange(items []T) error {
	return d.s.insert(0, items)
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	if d.s.length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.s.popFront(), nil
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	if d.s.length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.s.popBack(), nil
}

// TryPopFront is PopFront without an error: ok is false on an empty deque.
func (d *Deque[T]) TryPopFront() (v T, ok bool) {
	if d.s.length() == 0 {
		return v, false
	}
	return d.s.popFront(), true
}

// TryPopBack is PopBack without an error: ok is false on an empty deque.
func (d *Deque[T]) TryPopBack() (v T, ok bool) {
	if d.s.length() == 0 {
		return v, false
	}
	return d.s.popBack(), true
}

// PopFrontRange removes the first len(dst) elements, copying them into dst
// in logical order.
func (d *Deque[T]) PopFrontRange(dst []T) error {
	if len(dst) > d.s.length() {
		return fmt.Errorf("pop %d of %d elements: %w", len(dst), d.s.length(), ErrRangeInvalid)
	}
	d.s.popFrontInto(dst)
	return nil
}

// PopBackRange removes the last len(dst) elements, copying them into dst
// in logical order.
func (d *Deque[T]) PopBackRange(dst []T) error {
	if len(dst) > d.s.length() {
		return fmt.Errorf("pop %d of %d elements: %w", len(dst), d.s.length(), ErrRangeInvalid)
	}
	d.s.popBackInto(dst)
	return nil
}

// PeekFront returns the first element without removing it.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.s.length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.s.at(0), nil
}

// PeekBack returns the last element without removing it.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.s.length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.s.at(d.s.length() - 1), nil
}

// TryPeekFront is PeekFront without an error.
func (d *Deque[T]) TryPeekFront() (v T, ok bool) {
	if d.s.length() == 0 {
		return v, false
	}
	return d.s.at(0), true
}

// TryPeekBack is PeekBack without an error.
func (d *Deque[T]) TryPeekBack() (v T, ok bool) {
	if d.s.length() == 0 {
		return v, false
	}
	return d.s.at(d.s.length() - 1), true
}

// Insert places v at index i, shifting later elements toward the back or
// earlier elements toward the front, whichever side is shorter. i may
// equal Len(), in which case Insert appends.
func (d *Deque[T]) Insert(i int, v T) error {
	if i < 0 || i > d.s.length() {
		return ErrIndexOutOfRange
	}
	return d.s.insert(i, []T{v})
}

// InsertRange places items in order starting at index i.
func (d *Deque[T]) InsertRange(i int, items []T) error {
	if i < 0 || i > d.s.length() {
		return ErrIndexOutOfRange
	}
	return d.s.insert(i, items)
}

// RemoveAt removes and returns the element at index i.
func (d *Deque[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= d.s.length() {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	v := d.s.at(i)
	d.s.removeRange(i, 1)
	return v, nil
}

// RemoveRange removes the n elements at [i, i+n).
func (d *Deque[T]) RemoveRange(i, n int) error {
	if i < 0 || n < 0 || i > d.s.length()-n {
		return ErrRangeInvalid
	}
	d.s.removeRange(i, n)
	return nil
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (d *Deque[T]) FindIndex(pred func(T) bool) int {
	for i := 0; i < d.s.length(); i++ {
		if pred(d.s.at(i)) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the index of the last element satisfying pred,
// or -1.
func (d *Deque[T]) FindLastIndex(pred func(T) bool) int {
	for i := d.s.length() - 1; i >= 0; i-- {
		if pred(d.s.at(i)) {
			return i
		}
	}
	return -1
}

// Find returns the first element satisfying pred.
func (d *Deque[T]) Find(pred func(T) bool) (v T, ok bool) {
	if i := d.FindIndex(pred); i >= 0 {
		return d.s.at(i), true
	}
	return v, false
}

// FindLast returns the last element satisfying pred.
func (d *Deque[T]) FindLast(pred func(T) bool) (v T, ok bool) {
	if i := d.FindLastIndex(pred); i >= 0 {
		return d.s.at(i), true
	}
	return v, false
}

// EnsureCapacity grows the backing array, if needed, so the deque can hold
// at least n elements without further reallocation. Capacity never shrinks
// except through Resize and ShrinkToFit.
func (d *Deque[T]) EnsureCapacity(n int) error {
	if n < 0 {
		return ErrCapacityInvalid
	}
	if n <= d.s.capacity() {
		return nil
	}
	return d.s.ensureSlack(0, n-d.s.length())
}

// EnsureSlack guarantees at least front free slots before the first
// element and back free slots after the last, so that many pushes in known
// directions proceed without reallocation.
func (d *Deque[T]) EnsureSlack(front, back int) error {
	if front < 0 || back < 0 {
		return ErrCapacityInvalid
	}
	return d.s.ensureSlack(front, back)
}

// Resize replaces the backing array with one of exactly n slots. n must be
// at least Len(). Resizing to the current capacity is a no-op; any other n
// reallocates, which can hand a formerly large array back to the GC.
func (d *Deque[T]) Resize(n int) error {
	switch {
	case n < d.s.length():
		return fmt.Errorf("resize to %d with %d elements: %w", n, d.s.length(), ErrCapacityInvalid)
	case n > maxCapacity:
		return ErrTooLarge
	}
	d.s.resize(n)
	return nil
}

// ShrinkToFit reduces the backing array to exactly Len() slots.
func (d *Deque[T]) ShrinkToFit() {
	d.s.resize(d.s.length())
}

// Slack reports the free slots usable by front and back pushes without
// reallocation. For the ring strategy free slots serve either end, so both
// values report the total free capacity.
func (d *Deque[T]) Slack() (front, back int) { return d.s.slack() }

// CopyTo copies up to len(dst) elements into dst in logical order and
// returns the number copied.
func (d *Deque[T]) CopyTo(dst []T) int { return d.s.copyTo(dst) }

// ToSlice returns the elements as a freshly allocated slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.s.length())
	d.s.copyTo(out)
	return out
}

// Contiguous returns the live elements as a single slice sharing the
// deque's storage, valid until the next mutation. Only the margin strategy
// guarantees a non-wrapping window, so ok is always false for the ring
// strategy. The returned slice must be treated as read-only.
func (d *Deque[T]) Contiguous() ([]T, bool) { return d.s.contiguous() }

// Clear removes all elements, keeping the backing array.
func (d *Deque[T]) Clear() { d.s.clear() }
