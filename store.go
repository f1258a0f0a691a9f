package deque

// store is the contract between the Deque facade and a backing strategy.
// The facade validates arguments and owns the public error surface; a
// store may assume indexes and counts are in range and that pops never
// see an empty buffer. Only operations that can grow the backing array
// return an error, and only for the capacity ceiling.
type store[T any] interface {
	kind() Strategy
	length() int
	capacity() int
	version() uint64

	at(i int) T
	set(i int, v T)

	pushFront(v T) error
	pushBack(v T) error
	popFront() T
	popBack() T

	// popFrontInto and popBackInto remove len(dst) elements from the
	// respective end, copying them into dst in logical order.
	popFrontInto(dst []T)
	popBackInto(dst []T)

	// insert places items at logical position i, shifting the shorter
	// side. i may equal length() (append).
	insert(i int, items []T) error

	// removeRange removes the n elements at [i, i+n), shifting the
	// shorter surviving side and clearing vacated slots.
	removeRange(i, n int)

	// ensureSlack guarantees at least the given free slots before and
	// after the live elements without changing their order.
	ensureSlack(front, back int) error

	// resize replaces the backing array with one of exactly n slots,
	// n >= length(). n == capacity() is a no-op.
	resize(n int)

	clear()
	copyTo(dst []T) int

	// contiguous returns the live elements as a single shared slice when
	// the strategy guarantees a non-wrapping window.
	contiguous() ([]T, bool)

	// slack reports the free slots usable by front and back pushes
	// without reallocation.
	slack() (front, back int)
}

func newStore[T any](strategy Strategy, capacity int) store[T] {
	if strategy == StrategyMargin {
		return newMarginStore[T](capacity)
	}
	return newRingStore[T](capacity)
}
