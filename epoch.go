package deque

// epoch is a mutation counter consulted by iterators. Every structural
// mutation bumps it: anything that changes the element count, shifts the
// logical window, or relocates elements. Pure reads and overwrites at an
// unchanged logical position do not.
type epoch struct {
	n uint64
}

func (e *epoch) bump() { e.n++ }

func (e *epoch) version() uint64 { return e.n }
