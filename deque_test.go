package deque

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioGrowthAndWraparound(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt, WithCapacity(4))

			for _, v := range []int{1, 2, 3, 4} {
				require.NoError(t, d.PushBack(v))
			}
			require.Equal(t, 4, d.Len())
			require.Equal(t, 4, d.Cap())

			require.NoError(t, d.PushBack(5))
			assert.Equal(t, 8, d.Cap(), "growth should double")
			assert.Equal(t, []int{1, 2, 3, 4, 5}, d.ToSlice())

			require.NoError(t, d.PushFront(6))
			require.NoError(t, d.PushFront(7))
			assert.Equal(t, []int{7, 6, 1, 2, 3, 4, 5}, d.ToSlice())

			back, err := d.PopBack()
			require.NoError(t, err)
			assert.Equal(t, 5, back)

			front, err := d.PopFront()
			require.NoError(t, err)
			assert.Equal(t, 7, front)

			assert.Equal(t, []int{6, 1, 2, 3, 4}, d.ToSlice())
		})
	}
}

func TestCountLaw(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt)
			rng := rand.New(rand.NewSource(7))

			pushes, pops := 0, 0
			for step := 0; step < 2000; step++ {
				switch rng.Intn(4) {
				case 0:
					require.NoError(t, d.PushFront(step))
					pushes++
				case 1:
					require.NoError(t, d.PushBack(step))
					pushes++
				case 2:
					if _, ok := d.TryPopFront(); ok {
						pops++
					}
				case 3:
					if _, ok := d.TryPopBack(); ok {
						pops++
					}
				}
				require.Equal(t, pushes-pops, d.Len())
			}
		})
	}
}

func TestOrderLawAgainstReference(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt, WithCapacity(2))
			ref := &refDeque[int]{}
			rng := rand.New(rand.NewSource(99))

			for step := 0; step < 3000; step++ {
				switch op := rng.Intn(8); {
				case op == 0:
					require.NoError(t, d.PushFront(step))
					ref.pushFront(step)
				case op <= 2:
					require.NoError(t, d.PushBack(step))
					ref.pushBack(step)
				case op == 3 && ref.len() > 0:
					got, ok := d.TryPopFront()
					require.True(t, ok)
					require.Equal(t, ref.popFront(), got)
				case op == 4 && ref.len() > 0:
					got, ok := d.TryPopBack()
					require.True(t, ok)
					require.Equal(t, ref.popBack(), got)
				case op == 5:
					i := rng.Intn(ref.len() + 1)
					items := []int{step, step + 1}
					require.NoError(t, d.InsertRange(i, items))
					ref.insert(i, items)
				case op == 6 && ref.len() > 0:
					i := rng.Intn(ref.len())
					n := rng.Intn(ref.len() - i)
					require.NoError(t, d.RemoveRange(i, n))
					ref.removeRange(i, n)
				}

				require.True(t, equalContents(d, ref), "step %d diverged", step)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	src := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice(src, strat.opt)

			require.Equal(t, len(src), d.Len())
			assert.GreaterOrEqual(t, d.Cap(), 2*len(src)-1, "from-slice sizing should leave room")

			for i, want := range src {
				got, err := d.At(i)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			assert.Equal(t, src, d.ToSlice())

			var iterated []string
			for v := range d.Values() {
				iterated = append(iterated, v)
			}
			assert.Equal(t, src, iterated)
		})
	}
}

func TestCapacityMonotonicity(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt, WithCapacity(0))
			prev := d.Cap()
			for i := 0; i < 1000; i++ {
				require.NoError(t, d.PushBack(i))
				require.GreaterOrEqual(t, d.Cap(), prev, "capacity shrank without Resize")
				prev = d.Cap()
			}
			assert.GreaterOrEqual(t, d.Cap(), 1000)
		})
	}
}

func TestBoundaryErrors(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt)

			_, err := d.PopFront()
			assert.ErrorIs(t, err, ErrEmpty)
			_, err = d.PopBack()
			assert.ErrorIs(t, err, ErrEmpty)
			_, err = d.PeekFront()
			assert.ErrorIs(t, err, ErrEmpty)
			_, err = d.PeekBack()
			assert.ErrorIs(t, err, ErrEmpty)

			_, ok := d.TryPopFront()
			assert.False(t, ok)
			_, ok = d.TryPopBack()
			assert.False(t, ok)
			_, ok = d.TryPeekFront()
			assert.False(t, ok)
			_, ok = d.TryPeekBack()
			assert.False(t, ok)

			require.NoError(t, d.PushBack(1))

			_, err = d.At(-1)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, err = d.At(1)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, d.Set(1, 9), ErrIndexOutOfRange)
			assert.ErrorIs(t, d.Insert(2, 9), ErrIndexOutOfRange)
			assert.ErrorIs(t, d.RemoveRange(0, 2), ErrRangeInvalid)
			assert.ErrorIs(t, d.RemoveRange(-1, 1), ErrRangeInvalid)
			assert.ErrorIs(t, d.PopFrontRange(make([]int, 2)), ErrRangeInvalid)
			assert.ErrorIs(t, d.PopBackRange(make([]int, 2)), ErrRangeInvalid)
			assert.ErrorIs(t, d.EnsureCapacity(-1), ErrCapacityInvalid)
			assert.ErrorIs(t, d.EnsureSlack(-1, 0), ErrCapacityInvalid)
			assert.ErrorIs(t, d.Resize(0), ErrCapacityInvalid)

			// A rejected call leaves the deque unchanged.
			assert.Equal(t, []int{1}, d.ToSlice())
		})
	}
}

func TestRangeOperations(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := New[int](strat.opt, WithCapacity(2))

			require.NoError(t, d.PushBackRange([]int{3, 4, 5}))
			require.NoError(t, d.PushFrontRange([]int{1, 2}))
			assert.Equal(t, []int{1, 2, 3, 4, 5}, d.ToSlice())

			front := make([]int, 2)
			require.NoError(t, d.PopFrontRange(front))
			assert.Equal(t, []int{1, 2}, front)

			back := make([]int, 2)
			require.NoError(t, d.PopBackRange(back))
			assert.Equal(t, []int{4, 5}, back)

			assert.Equal(t, []int{3}, d.ToSlice())

			require.NoError(t, d.PopFrontRange(nil))
			assert.Equal(t, 1, d.Len())
		})
	}
}

func TestInsertRemove(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]int{1, 2, 5}, strat.opt)

			require.NoError(t, d.Insert(2, 4))
			require.NoError(t, d.Insert(2, 3))
			assert.Equal(t, []int{1, 2, 3, 4, 5}, d.ToSlice())

			require.NoError(t, d.Insert(d.Len(), 6))
			require.NoError(t, d.Insert(0, 0))
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, d.ToSlice())

			v, err := d.RemoveAt(3)
			require.NoError(t, err)
			assert.Equal(t, 3, v)

			require.NoError(t, d.RemoveRange(1, 2))
			assert.Equal(t, []int{0, 4, 5, 6}, d.ToSlice())

			require.NoError(t, d.RemoveRange(0, d.Len()))
			assert.True(t, d.IsEmpty())
		})
	}
}

func TestFindOperations(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]int{10, 20, 30, 20, 10}, strat.opt)

			assert.Equal(t, 1, Index(d, 20))
			assert.Equal(t, 3, LastIndex(d, 20))
			assert.Equal(t, -1, Index(d, 99))
			assert.True(t, Contains(d, 30))
			assert.False(t, Contains(d, 31))

			assert.Equal(t, 2, d.FindIndex(func(v int) bool { return v > 20 }))
			assert.Equal(t, 4, d.FindLastIndex(func(v int) bool { return v < 15 }))
			assert.Equal(t, -1, d.FindIndex(func(v int) bool { return v < 0 }))

			v, ok := d.Find(func(v int) bool { return v%3 == 0 })
			assert.True(t, ok)
			assert.Equal(t, 30, v)
			_, ok = d.FindLast(func(v int) bool { return v < 0 })
			assert.False(t, ok)

			assert.True(t, Remove(d, 20))
			assert.Equal(t, []int{10, 30, 20, 10}, d.ToSlice())
			assert.False(t, Remove(d, 99))
		})
	}
}

func TestCapacityControl(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]int{1, 2, 3}, strat.opt, WithCapacity(4))

			require.NoError(t, d.EnsureCapacity(64))
			require.GreaterOrEqual(t, d.Cap(), 64)
			assert.Equal(t, []int{1, 2, 3}, d.ToSlice())

			// Already satisfied: no change.
			capBefore := d.Cap()
			require.NoError(t, d.EnsureCapacity(10))
			assert.Equal(t, capBefore, d.Cap())

			require.NoError(t, d.EnsureSlack(5, 5))
			f, b := d.Slack()
			assert.GreaterOrEqual(t, f, 5)
			assert.GreaterOrEqual(t, b, 5)

			require.NoError(t, d.Resize(16))
			assert.Equal(t, 16, d.Cap())
			assert.Equal(t, []int{1, 2, 3}, d.ToSlice())

			d.ShrinkToFit()
			assert.Equal(t, 3, d.Cap())
			assert.Equal(t, []int{1, 2, 3}, d.ToSlice())
		})
	}
}

func TestContiguousAvailability(t *testing.T) {
	ring := FromSlice([]int{1, 2, 3}, WithRing())
	_, ok := ring.Contiguous()
	assert.False(t, ok, "ring strategy never guarantees a view")

	margin := FromSlice([]int{1, 2, 3}, WithMargin())
	view, ok := margin.Contiguous()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, view)
}

func TestCopyTo(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]int{1, 2, 3, 4}, strat.opt)

			dst := make([]int, 2)
			assert.Equal(t, 2, d.CopyTo(dst))
			assert.Equal(t, []int{1, 2}, dst)

			big := make([]int, 8)
			assert.Equal(t, 4, d.CopyTo(big))
			assert.Equal(t, []int{1, 2, 3, 4}, big[:4])

			// Copying is a pure read.
			assert.Equal(t, 4, d.Len())
		})
	}
}

func TestClear(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]string{"a", "b", "c"}, strat.opt)
			capBefore := d.Cap()

			d.Clear()
			assert.Equal(t, 0, d.Len())
			assert.Equal(t, capBefore, d.Cap(), "Clear keeps the backing array")

			require.NoError(t, d.PushBack("x"))
			assert.Equal(t, []string{"x"}, d.ToSlice())
		})
	}
}

func TestCollect(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d, err := Collect(slices.Values([]int{1, 2, 3, 4, 5}), strat.opt)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, d.ToSlice())
		})
	}
}

func TestSetDoesNotShift(t *testing.T) {
	for _, strat := range bothStrategies {
		t.Run(strat.name, func(t *testing.T) {
			d := FromSlice([]int{1, 2, 3}, strat.opt)
			require.NoError(t, d.Set(1, 20))
			assert.Equal(t, []int{1, 20, 3}, d.ToSlice())
		})
	}
}

func TestStrategyAccessors(t *testing.T) {
	assert.Equal(t, StrategyRing, New[int]().Strategy())
	assert.Equal(t, StrategyMargin, New[int](WithMargin()).Strategy())
	assert.Equal(t, "ring", StrategyRing.String())
	assert.Equal(t, "margin", StrategyMargin.String())
}
