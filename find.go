package deque

// Equality-based lookups are package-level functions constrained to
// comparable element types, so Deque itself stays usable with any T.

// Index returns the index of the first element equal to v, or -1.
func Index[T comparable](d *Deque[T], v T) int {
	for i := 0; i < d.s.length(); i++ {
		if d.s.at(i) == v {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last element equal to v, or -1.
func LastIndex[T comparable](d *Deque[T], v T) int {
	for i := d.s.length() - 1; i >= 0; i-- {
		if d.s.at(i) == v {
			return i
		}
	}
	return -1
}

// Contains reports whether the deque holds an element equal to v.
func Contains[T comparable](d *Deque[T], v T) bool {
	return Index(d, v) >= 0
}

// Remove removes the first element equal to v, reporting whether one was
// found.
func Remove[T comparable](d *Deque[T], v T) bool {
	i := Index(d, v)
	if i < 0 {
		return false
	}
	d.s.removeRange(i, 1)
	return true
}
