package deque

// marginStore implements the buffer as a contiguous live window
// [head, head+count) inside a larger array, with explicit slack at both
// ends. Logical position i lives in physical slot head+i; the window never
// wraps, so every move is a single memmove-style copy and the live range
// can be exposed as one slice.
type marginStore[T any] struct {
	epoch
	buf        []T
	head       int
	count      int
	clearSlots bool
}

func newMarginStore[T any](capacity int) *marginStore[T] {
	s := &marginStore[T]{clearSlots: clearOnVacate[T]()}
	if capacity > 0 {
		s.buf = make([]T, capacity)
	}
	return s
}

func (s *marginStore[T]) kind() Strategy { return StrategyMargin }
func (s *marginStore[T]) length() int    { return s.count }
func (s *marginStore[T]) capacity() int  { return len(s.buf) }

func (s *marginStore[T]) frontSlack() int { return s.head }
func (s *marginStore[T]) backSlack() int  { return len(s.buf) - s.head - s.count }

func (s *marginStore[T]) at(i int) T     { return s.buf[s.head+i] }
func (s *marginStore[T]) set(i int, v T) { s.buf[s.head+i] = v }

func (s *marginStore[T]) pushBack(v T) error {
	if s.backSlack() == 0 {
		if err := s.ensureSlack(0, 1); err != nil {
			return err
		}
	}
	s.buf[s.head+s.count] = v
	s.count++
	s.bump()
	return nil
}

func (s *marginStore[T]) pushFront(v T) error {
	if s.head == 0 {
		if err := s.ensureSlack(1, 0); err != nil {
			return err
		}
	}
	s.head--
	s.buf[s.head] = v
	s.count++
	s.bump()
	return nil
}

func (s *marginStore[T]) popFront() T {
	v := s.buf[s.head]
	s.clearSeg(s.head, s.head+1)
	s.head++
	s.count--
	s.bump()
	return v
}

func (s *marginStore[T]) popBack() T {
	p := s.head + s.count - 1
	v := s.buf[p]
	s.clearSeg(p, p+1)
	s.count--
	s.bump()
	return v
}

func (s *marginStore[T]) popFrontInto(dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	copy(dst, s.buf[s.head:s.head+n])
	s.clearSeg(s.head, s.head+n)
	s.head += n
	s.count -= n
	s.bump()
}

func (s *marginStore[T]) popBackInto(dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	lo := s.head + s.count - n
	copy(dst, s.buf[lo:lo+n])
	s.clearSeg(lo, lo+n)
	s.count -= n
	s.bump()
}

func (s *marginStore[T]) insert(i int, items []T) error {
	k := len(items)
	if k == 0 {
		return nil
	}
	before, after := i, s.count-i
	fs, bs := s.frontSlack(), s.backSlack()
	switch {
	case fs >= k && (before <= after || bs < k):
		// Slide the prefix into the front slack. The hole left behind is
		// exactly where items land, so nothing is vacated.
		copy(s.buf[s.head-k:s.head-k+before], s.buf[s.head:s.head+before])
		s.head -= k
	case bs >= k:
		copy(s.buf[s.head+i+k:s.head+s.count+k], s.buf[s.head+i:s.head+s.count])
	default:
		return s.insertGrow(i, items)
	}
	copy(s.buf[s.head+i:s.head+i+k], items)
	s.count += k
	s.bump()
	return nil
}

// insertGrow reallocates with the insertion gap already in place, placing
// the enlarged window midway so both ends regain slack.
func (s *marginStore[T]) insertGrow(i int, items []T) error {
	k := len(items)
	need := s.count + k
	if need < 0 {
		return ErrTooLarge
	}
	newCap, err := nextCapacity(len(s.buf), need, maxCapacity)
	if err != nil {
		return err
	}
	newHead := (newCap - need) / 2
	newBuf := make([]T, newCap)
	copy(newBuf[newHead:], s.buf[s.head:s.head+i])
	copy(newBuf[newHead+i:], items)
	copy(newBuf[newHead+i+k:], s.buf[s.head+i:s.head+s.count])
	s.buf = newBuf
	s.head = newHead
	s.count = need
	s.bump()
	return nil
}

func (s *marginStore[T]) removeRange(i, n int) {
	if n == 0 {
		return
	}
	if before, after := i, s.count-i-n; before <= after {
		copy(s.buf[s.head+n:s.head+n+before], s.buf[s.head:s.head+before])
		s.clearSeg(s.head, s.head+n)
		s.head += n
	} else {
		copy(s.buf[s.head+i:], s.buf[s.head+i+n:s.head+s.count])
		s.clearSeg(s.head+s.count-n, s.head+s.count)
	}
	s.count -= n
	s.bump()
}

func (s *marginStore[T]) ensureSlack(front, back int) error {
	if s.head >= front && s.backSlack() >= back {
		return nil
	}
	need := s.count + front + back
	if need < 0 {
		return ErrTooLarge
	}
	if need <= len(s.buf) {
		// Capacity already suffices; the slack is just on the wrong side.
		// Redistribute by shifting the window within the same array.
		s.shift(s.placeHead(len(s.buf), front, back) - s.head)
		return nil
	}
	newCap, err := nextCapacity(len(s.buf), need, maxCapacity)
	if err != nil {
		return err
	}
	newHead := s.placeHead(newCap, front, back)
	newBuf := make([]T, newCap)
	copy(newBuf[newHead:], s.buf[s.head:s.head+s.count])
	s.buf = newBuf
	s.head = newHead
	s.bump()
	return nil
}

// placeHead picks where the live window starts in an array of c slots so
// that both requested margins are honored. Slack beyond the request is
// biased toward whichever side asked for more, which keeps alternating
// push directions from reallocating on every flip.
func (s *marginStore[T]) placeHead(c, front, back int) int {
	extra := c - s.count - front - back
	if extra <= 0 {
		return front
	}
	frontExtra := (extra - (back - front)) / 2
	if frontExtra < 0 {
		frontExtra = 0
	} else if frontExtra > extra {
		frontExtra = extra
	}
	return front + frontExtra
}

// shift moves the live window diff slots within the same array, clearing
// whatever part of the old window the new one no longer covers.
func (s *marginStore[T]) shift(diff int) {
	if diff == 0 {
		return
	}
	newHead := s.head + diff
	copy(s.buf[newHead:newHead+s.count], s.buf[s.head:s.head+s.count])
	if diff > 0 {
		hi := newHead
		if end := s.head + s.count; end < hi {
			hi = end
		}
		s.clearSeg(s.head, hi)
	} else {
		lo := newHead + s.count
		if lo < s.head {
			lo = s.head
		}
		s.clearSeg(lo, s.head+s.count)
	}
	s.head = newHead
	s.bump()
}

func (s *marginStore[T]) resize(n int) {
	if n == len(s.buf) {
		return
	}
	// Preserve as much front margin as the new capacity allows.
	newHead := s.head
	if newHead > n-s.count {
		newHead = n - s.count
	}
	newBuf := make([]T, n)
	copy(newBuf[newHead:], s.buf[s.head:s.head+s.count])
	s.buf = newBuf
	s.head = newHead
	s.bump()
}

func (s *marginStore[T]) clear() {
	s.clearSeg(s.head, s.head+s.count)
	s.head = 0
	s.count = 0
	s.bump()
}

func (s *marginStore[T]) copyTo(dst []T) int {
	n := s.count
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst, s.buf[s.head:s.head+n])
	return n
}

func (s *marginStore[T]) contiguous() ([]T, bool) {
	return s.buf[s.head : s.head+s.count], true
}

func (s *marginStore[T]) slack() (front, back int) {
	return s.frontSlack(), s.backSlack()
}

// clearSeg zeroes the physical slots [lo, hi). No-op for pointer-free
// element types.
func (s *marginStore[T]) clearSeg(lo, hi int) {
	if s.clearSlots && lo < hi {
		clear(s.buf[lo:hi])
	}
}
