package deque

// ringStore implements the buffer over a circular array: logical position
// i lives in physical slot (head+i) mod cap, so the live window may wrap
// past the end of the array. Every bulk move, copy, and clear is split at
// the wrap boundary into contiguous pieces.
type ringStore[T any] struct {
	epoch
	buf        []T
	head       int
	count      int
	clearSlots bool
}

func newRingStore[T any](capacity int) *ringStore[T] {
	s := &ringStore[T]{clearSlots: clearOnVacate[T]()}
	if capacity > 0 {
		s.buf = make([]T, capacity)
	}
	return s
}

func (s *ringStore[T]) kind() Strategy { return StrategyRing }
func (s *ringStore[T]) length() int    { return s.count }
func (s *ringStore[T]) capacity() int  { return len(s.buf) }

// slot maps a logical position to a physical index. Callers must not use
// it on a zero-capacity buffer.
func (s *ringStore[T]) slot(i int) int {
	return (s.head + i) % len(s.buf)
}

// mod wraps a possibly negative physical index into the array.
func (s *ringStore[T]) mod(i int) int {
	c := len(s.buf)
	return ((i % c) + c) % c
}

func (s *ringStore[T]) at(i int) T     { return s.buf[s.slot(i)] }
func (s *ringStore[T]) set(i int, v T) { s.buf[s.slot(i)] = v }

// grow replaces the backing array with one sized by the growth policy,
// re-linearizing the live window at slot 0.
func (s *ringStore[T]) grow(minimum int) error {
	if minimum < 0 {
		// count+k overflowed int.
		return ErrTooLarge
	}
	newCap, err := nextCapacity(len(s.buf), minimum, maxCapacity)
	if err != nil {
		return err
	}
	s.reallocate(newCap)
	return nil
}

// reallocate swaps in a fresh array of newCap slots, newCap >= count.
// The old array is released in the same step; there is never a moment
// with two live arrays.
func (s *ringStore[T]) reallocate(newCap int) {
	newBuf := make([]T, newCap)
	s.copyTo(newBuf)
	s.buf = newBuf
	s.head = 0
	s.bump()
}

func (s *ringStore[T]) pushBack(v T) error {
	if s.count == len(s.buf) {
		if err := s.grow(s.count + 1); err != nil {
			return err
		}
	}
	s.buf[s.slot(s.count)] = v
	s.count++
	s.bump()
	return nil
}

func (s *ringStore[T]) pushFront(v T) error {
	if s.count == len(s.buf) {
		if err := s.grow(s.count + 1); err != nil {
			return err
		}
	}
	s.head = s.mod(s.head - 1)
	s.buf[s.head] = v
	s.count++
	s.bump()
	return nil
}

func (s *ringStore[T]) popFront() T {
	v := s.buf[s.head]
	if s.clearSlots {
		var zero T
		s.buf[s.head] = zero
	}
	s.head = s.slot(1)
	s.count--
	s.bump()
	return v
}

func (s *ringStore[T]) popBack() T {
	p := s.slot(s.count - 1)
	v := s.buf[p]
	if s.clearSlots {
		var zero T
		s.buf[p] = zero
	}
	s.count--
	s.bump()
	return v
}

func (s *ringStore[T]) popFrontInto(dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	s.copyRangeTo(dst, 0)
	s.clearRange(0, n)
	s.head = s.slot(n)
	s.count -= n
	s.bump()
}

func (s *ringStore[T]) popBackInto(dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	start := s.count - n
	s.copyRangeTo(dst, start)
	s.clearRange(start, n)
	s.count -= n
	s.bump()
}

func (s *ringStore[T]) insert(i int, items []T) error {
	k := len(items)
	if k == 0 {
		return nil
	}
	need := s.count + k
	if need < 0 || need > len(s.buf) {
		return s.insertGrow(i, items)
	}
	if before, after := i, s.count-i; before <= after {
		// Retreat head by k, then pull the old prefix into the gap.
		// Old logical j is now logical j+k.
		s.head = s.mod(s.head - k)
		s.moveRange(0, k, before)
	} else {
		s.moveRange(i+k, i, after)
	}
	s.count = need
	s.writeRange(i, items)
	s.bump()
	return nil
}

// insertGrow reallocates with the insertion gap already in place, so the
// surviving elements move exactly once.
func (s *ringStore[T]) insertGrow(i int, items []T) error {
	k := len(items)
	need := s.count + k
	if need < 0 {
		return ErrTooLarge
	}
	newCap, err := nextCapacity(len(s.buf), need, maxCapacity)
	if err != nil {
		return err
	}
	newBuf := make([]T, newCap)
	s.copyRangeTo(newBuf[:i], 0)
	copy(newBuf[i:i+k], items)
	s.copyRangeTo(newBuf[i+k:need], i)
	s.buf = newBuf
	s.head = 0
	s.count = need
	s.bump()
	return nil
}

func (s *ringStore[T]) removeRange(i, n int) {
	if n == 0 {
		return
	}
	// Shift whichever surviving side is shorter. The vacated region is
	// cleared before head and count move, while logical positions still
	// resolve against the old window.
	if before, after := i, s.count-i-n; before <= after {
		s.moveRange(n, 0, before)
		s.clearRange(0, n)
		s.head = s.slot(n)
	} else {
		s.moveRange(i, i+n, after)
		s.clearRange(s.count-n, n)
	}
	s.count -= n
	s.bump()
}

func (s *ringStore[T]) ensureSlack(front, back int) error {
	need := s.count + front + back
	if need < 0 {
		return ErrTooLarge
	}
	// Free slots in a ring serve either end, so only the total matters.
	if need <= len(s.buf) {
		return nil
	}
	newCap, err := nextCapacity(len(s.buf), need, maxCapacity)
	if err != nil {
		return err
	}
	s.reallocate(newCap)
	return nil
}

func (s *ringStore[T]) resize(n int) {
	if n == len(s.buf) {
		return
	}
	s.reallocate(n)
}

func (s *ringStore[T]) clear() {
	s.clearRange(0, s.count)
	s.head = 0
	s.count = 0
	s.bump()
}

func (s *ringStore[T]) copyTo(dst []T) int {
	n := s.count
	if n > len(dst) {
		n = len(dst)
	}
	s.copyRangeTo(dst[:n], 0)
	return n
}

func (s *ringStore[T]) contiguous() ([]T, bool) {
	// Even an unwrapped window is not guaranteed to stay that way, so the
	// ring strategy never offers a view.
	return nil, false
}

func (s *ringStore[T]) slack() (front, back int) {
	free := len(s.buf) - s.count
	return free, free
}

// moveRange relocates n elements from logical position src to logical
// position dst within the same array. Chunks are cut wherever the source
// or destination run hits the physical end of the array, and are walked
// front-to-back for left moves and back-to-front for right moves so that
// overlapping regions copy correctly; copy itself has memmove semantics
// within a chunk.
func (s *ringStore[T]) moveRange(dst, src, n int) {
	if n == 0 || dst == src {
		return
	}
	if dst < src {
		done := 0
		for done < n {
			sp := s.slot(src + done)
			dp := s.slot(dst + done)
			run := n - done
			if rem := len(s.buf) - sp; rem < run {
				run = rem
			}
			if rem := len(s.buf) - dp; rem < run {
				run = rem
			}
			copy(s.buf[dp:dp+run], s.buf[sp:sp+run])
			done += run
		}
		return
	}
	left := n
	for left > 0 {
		sp := s.slot(src + left - 1)
		dp := s.slot(dst + left - 1)
		run := left
		if sp+1 < run {
			run = sp + 1
		}
		if dp+1 < run {
			run = dp + 1
		}
		copy(s.buf[dp+1-run:dp+1], s.buf[sp+1-run:sp+1])
		left -= run
	}
}

// writeRange copies items into the slots at logical positions
// [start, start+len(items)), splitting at the wrap boundary.
func (s *ringStore[T]) writeRange(start int, items []T) {
	done := 0
	for done < len(items) {
		p := s.slot(start + done)
		run := len(items) - done
		if rem := len(s.buf) - p; rem < run {
			run = rem
		}
		copy(s.buf[p:p+run], items[done:done+run])
		done += run
	}
}

// copyRangeTo copies len(dst) elements starting at logical position start
// into dst, splitting at the wrap boundary.
func (s *ringStore[T]) copyRangeTo(dst []T, start int) {
	n := len(dst)
	done := 0
	for done < n {
		p := s.slot(start + done)
		run := n - done
		if rem := len(s.buf) - p; rem < run {
			run = rem
		}
		copy(dst[done:done+run], s.buf[p:p+run])
		done += run
	}
}

// clearRange zeroes the n slots at logical positions [start, start+n),
// splitting at the wrap boundary. No-op for pointer-free element types.
func (s *ringStore[T]) clearRange(start, n int) {
	if !s.clearSlots || n == 0 {
		return
	}
	done := 0
	for done < n {
		p := s.slot(start + done)
		run := n - done
		if rem := len(s.buf) - p; rem < run {
			run = rem
		}
		clear(s.buf[p : p+run])
		done += run
	}
}
