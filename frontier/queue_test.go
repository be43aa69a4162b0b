package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/frontier"
)

var orderings = []frontier.Ordering{frontier.Heap, frontier.LinearScan}

func drain(t *testing.T, q *frontier.Queue) []arena.Handle {
	t.Helper()
	var out []arena.Handle
	for !q.IsEmpty() {
		e, err := q.PopMin()
		require.NoError(t, err)
		out = append(out, e.Handle)
	}

	return out
}

func TestQueue_EmptyPop(t *testing.T) {
	for _, ord := range orderings {
		t.Run(ord.String(), func(t *testing.T) {
			q := frontier.New(frontier.WithOrdering(ord))
			assert.True(t, q.IsEmpty())
			_, err := q.PopMin()
			assert.ErrorIs(t, err, frontier.ErrEmpty)
			_, err = q.Peek()
			assert.ErrorIs(t, err, frontier.ErrEmpty)
		})
	}
}

func TestQueue_PopsByPriority(t *testing.T) {
	for _, ord := range orderings {
		t.Run(ord.String(), func(t *testing.T) {
			q := frontier.New(frontier.WithOrdering(ord))
			q.Push(0, 30)
			q.Push(1, 10)
			q.Push(2, 20)
			assert.Equal(t, 3, q.Len())

			top, err := q.Peek()
			require.NoError(t, err)
			assert.Equal(t, arena.Handle(1), top.Handle)
			assert.Equal(t, []arena.Handle{1, 2, 0}, drain(t, q))
		})
	}
}

func TestQueue_TiesEarliestInsertedFirst(t *testing.T) {
	for _, ord := range orderings {
		t.Run(ord.String(), func(t *testing.T) {
			q := frontier.New(frontier.WithOrdering(ord))
			q.Push(0, 5)
			q.Push(1, 3)
			q.Push(2, 5)
			q.Push(3, 3)
			q.Push(4, 5)
			assert.Equal(t, []arena.Handle{1, 3, 0, 2, 4}, drain(t, q))
		})
	}
}

func TestQueue_TiesSurviveInterleavedPops(t *testing.T) {
	for _, ord := range orderings {
		t.Run(ord.String(), func(t *testing.T) {
			q := frontier.New(frontier.WithOrdering(ord))
			q.Push(0, 7)
			q.Push(1, 1)
			e, err := q.PopMin()
			require.NoError(t, err)
			assert.Equal(t, arena.Handle(1), e.Handle)

			q.Push(2, 7)
			q.Push(3, 7)
			assert.Equal(t, []arena.Handle{0, 2, 3}, drain(t, q))
		})
	}
}

func TestQueue_SeqIsMonotonic(t *testing.T) {
	q := frontier.New()
	a := q.Push(0, 1)
	b := q.Push(1, 1)
	assert.Less(t, a.Seq, b.Seq)
}

// TestQueue_OrderingsAgree feeds both layouts the same random stream of pushes
// and pops and expects identical output.
func TestQueue_OrderingsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hq := frontier.New()
	lq := frontier.New(frontier.WithLinearScan(), frontier.WithCapacityHint(16))
	assert.Equal(t, frontier.LinearScan, lq.Ordering())

	var next arena.Handle
	for step := 0; step < 2000; step++ {
		if rng.Intn(3) > 0 || hq.IsEmpty() {
			p := int64(rng.Intn(10))
			hq.Push(next, p)
			lq.Push(next, p)
			next++
			continue
		}
		he, err := hq.PopMin()
		require.NoError(t, err)
		le, err := lq.PopMin()
		require.NoError(t, err)
		require.Equal(t, le, he, "step %d", step)
	}
	assert.Equal(t, drain(t, lq), drain(t, hq))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { frontier.WithOrdering(frontier.Ordering(9)) })
	assert.Panics(t, func() { frontier.WithCapacityHint(-1) })
	assert.Equal(t, "unknown", frontier.Ordering(9).String())
}
