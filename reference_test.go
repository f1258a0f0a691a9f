package deque

// refDeque is a trivially correct double-ended sequence backed by a plain
// slice with O(n) shifting. Tests replay operation traces against it and
// compare full contents.
type refDeque[T any] struct {
	items []T
}

func (r *refDeque[T]) len() int { return len(r.items) }

func (r *refDeque[T]) at(i int) T { return r.items[i] }

func (r *refDeque[T]) pushFront(v T) {
	r.items = append([]T{v}, r.items...)
}

func (r *refDeque[T]) pushBack(v T) {
	r.items = append(r.items, v)
}

func (r *refDeque[T]) popFront() T {
	v := r.items[0]
	r.items = r.items[1:]
	return v
}

func (r *refDeque[T]) popBack() T {
	v := r.items[len(r.items)-1]
	r.items = r.items[:len(r.items)-1]
	return v
}

func (r *refDeque[T]) insert(i int, vs []T) {
	out := make([]T, 0, len(r.items)+len(vs))
	out = append(out, r.items[:i]...)
	out = append(out, vs...)
	out = append(out, r.items[i:]...)
	r.items = out
}

func (r *refDeque[T]) removeRange(i, n int) {
	out := make([]T, 0, len(r.items)-n)
	out = append(out, r.items[:i]...)
	out = append(out, r.items[i+n:]...)
	r.items = out
}

func (r *refDeque[T]) slice() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// equalContents reports whether d and r hold the same elements in the
// same order, checked through both indexing and extraction.
func equalContents[T comparable](d *Deque[T], r *refDeque[T]) bool {
	if d.Len() != r.len() {
		return false
	}
	for i := 0; i < r.len(); i++ {
		v, err := d.At(i)
		if err != nil || v != r.at(i) {
			return false
		}
	}
	got := d.ToSlice()
	for i, v := range got {
		if v != r.at(i) {
			return false
		}
	}
	return true
}

// bothStrategies is the strategy matrix facade tests run under.
var bothStrategies = []struct {
	name string
	opt  Option
}{
	{"ring", WithRing()},
	{"margin", WithMargin()},
}
