package deque

import "math"

const (
	// DefaultCapacity is the backing array size used when no explicit
	// capacity is requested.
	DefaultCapacity = 8

	// maxCapacity is the largest backing array the deque will allocate.
	maxCapacity = math.MaxInt - 8
)

// nextCapacity returns the size of the next backing array for a buffer of
// the given current capacity. Growth doubles and clamps to limit; minimum
// is the smallest acceptable result, for bulk operations that need more
// than one doubling provides. Returns ErrTooLarge when even limit cannot
// satisfy minimum.
func nextCapacity(current, minimum, limit int) (int, error) {
	if minimum > limit {
		return 0, ErrTooLarge
	}
	next := current * 2
	if next < DefaultCapacity {
		next = DefaultCapacity
	}
	// current*2 overflows for capacities past half the int range.
	if next > limit || next < 0 {
		next = limit
	}
	if next < minimum {
		next = minimum
	}
	return next, nil
}

// fromSliceCapacity sizes the first allocation for construction from a
// source of known length: roughly twice the source, never below the
// default, clamped to the platform ceiling.
func fromSliceCapacity(n int) int {
	if n > maxCapacity/2 {
		return maxCapacity
	}
	c := n * 2
	if c < DefaultCapacity {
		c = DefaultCapacity
	}
	return c
}
