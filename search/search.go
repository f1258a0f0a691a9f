// Package search provides stateless binary-search helpers over built
// sequences: plain slices, deques, or anything addressable by index.
package search

import "github.com/slowsage/deque"

// Func searches a sorted sequence of n elements addressed by at for
// target, using cmp as the ordering (negative when a < b, zero when
// equal). It returns the position where target is found, or the position
// where it would appear, and whether it was present. The sequence must be
// sorted ascending under cmp.
func Func[T any](n int, at func(int) T, target T, cmp func(a, b T) int) (int, bool) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(at(mid), target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < n && cmp(at(lo), target) == 0
}

// Slice searches a sorted slice.
func Slice[T any](items []T, target T, cmp func(a, b T) int) (int, bool) {
	return Func(len(items), func(i int) T { return items[i] }, target, cmp)
}

// Deque searches a sorted deque.
func Deque[T any](d *deque.Deque[T], target T, cmp func(a, b T) int) (int, bool) {
	return Func(d.Len(), func(i int) T {
		v, _ := d.At(i) // i is always in [0, Len)
		return v
	}, target, cmp)
}
