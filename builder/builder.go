// Package builder provides a segmented append-only builder for
// materializing sequences from many small writes.
//
// Unlike the deque's doubling array, the builder never copies what it has
// already accumulated: appends fill a chain of progressively larger
// segments, and a single exact-size allocation happens at Build time. That
// makes it the better tool when the element count is unknown and the
// result is consumed once.
package builder

import "github.com/slowsage/deque"

const (
	firstSegmentSize = 16
	maxSegmentSize   = 8192
)

// Builder accumulates elements for a single Build. The zero value is
// ready to use. Not safe for concurrent use.
type Builder[T any] struct {
	full  [][]T // filled segments, in append order
	cur   []T   // segment currently being filled
	total int
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int { return b.total }

// Append adds v to the sequence.
func (b *Builder[T]) Append(v T) {
	if len(b.cur) == cap(b.cur) {
		b.addSegment(1)
	}
	b.cur = append(b.cur, v)
	b.total++
}

// AppendSlice adds all of vs in order.
func (b *Builder[T]) AppendSlice(vs []T) {
	for len(vs) > 0 {
		if len(b.cur) == cap(b.cur) {
			b.addSegment(len(vs))
		}
		n := cap(b.cur) - len(b.cur)
		if n > len(vs) {
			n = len(vs)
		}
		b.cur = append(b.cur, vs[:n]...)
		b.total += n
		vs = vs[n:]
	}
}

// addSegment retires the current segment and starts a new one at least
// hint elements large. Segment sizes double up to a cap so huge builds
// stay in a bounded number of segments without oversized early
// allocations.
func (b *Builder[T]) addSegment(hint int) {
	if b.cur != nil {
		b.full = append(b.full, b.cur)
	}
	size := firstSegmentSize
	if c := cap(b.cur); c > 0 {
		size = c * 2
		if size > maxSegmentSize {
			size = maxSegmentSize
		}
	}
	if size < hint {
		size = hint
	}
	b.cur = make([]T, 0, size)
}

// Build materializes the accumulated elements as one exact-size slice.
// The builder keeps its contents; call Reset to reuse it.
func (b *Builder[T]) Build() []T {
	out := make([]T, 0, b.total)
	for _, seg := range b.full {
		out = append(out, seg...)
	}
	return append(out, b.cur...)
}

// Deque materializes the accumulated elements into a deque.
func (b *Builder[T]) Deque(opts ...deque.Option) *deque.Deque[T] {
	return deque.FromSlice(b.Build(), opts...)
}

// Reset discards all accumulated elements and segments.
func (b *Builder[T]) Reset() {
	b.full = nil
	b.cur = nil
	b.total = 0
}
