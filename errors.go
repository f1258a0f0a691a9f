package deque

import "errors"

// Errors returned by deque operations.
var (
	// ErrIndexOutOfRange is returned by indexed operations when the index
	// falls outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeInvalid is returned by range operations whose index and
	// count do not describe a sub-range of the live elements.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrCapacityInvalid is returned when a requested capacity or slack
	// is negative or smaller than the current element count.
	ErrCapacityInvalid = errors.New("invalid capacity")

	// ErrEmpty is returned by Pop and Peek operations on an empty deque.
	ErrEmpty = errors.New("deque is empty")

	// ErrTooLarge signals that the backing array has reached the maximum
	// length the platform supports and cannot grow to satisfy a request.
	// It is fatal: the operation is never retried internally.
	ErrTooLarge = errors.New("deque exceeds maximum capacity")

	// ErrModifiedIteration is reported by iterators whose deque was
	// structurally mutated after the iterator was created.
	ErrModifiedIteration = errors.New("deque modified during iteration")
)
