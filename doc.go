// Package deque provides a growable, random-access, double-ended sequence.
//
// A Deque supports constant amortized time pushes and pops at both ends,
// bounds-checked indexed access, and arbitrary-index insertion and removal
// that always shifts the shorter side of the sequence. Two backing
// strategies implement the same contract:
//
//   - Ring (the default): a circular array addressed with modular
//     arithmetic, so the logical front and back can migrate without
//     shifting data.
//   - Margin: a contiguous live window with explicit slack held at both
//     ends, which additionally offers a zero-copy Contiguous view.
//
// The strategy is chosen at construction:
//
//	d := deque.New[int]()                       // ring strategy
//	d := deque.New[int](deque.WithMargin())     // margin strategy
//	d := deque.FromSlice([]int{1, 2, 3})        // sized from the source
//
// Growth doubles capacity on overflow, so the total cost of N pushes stays
// linear in N. Vacated slots are zeroed only when the element type can hold
// references, decided once per constructed deque.
//
// Iterators capture a mutation epoch at creation and report
// ErrModifiedIteration when the deque is structurally mutated underneath
// them. This is a best-effort programmer-error guard, not a concurrency
// mechanism: a Deque is not safe for concurrent use, and callers sharing
// one across goroutines must provide their own synchronization.
package deque
