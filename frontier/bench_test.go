package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/frontier"
)

func benchPushPop(b *testing.B, n int, opts ...frontier.Option) {
	rng := rand.New(rand.NewSource(1))
	prio := make([]int64, n)
	for i := range prio {
		prio[i] = int64(rng.Intn(n))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := frontier.New(opts...)
		for j, p := range prio {
			q.Push(arena.Handle(j), p)
		}
		for !q.IsEmpty() {
			_, _ = q.PopMin()
		}
	}
}

func BenchmarkHeap_50(b *testing.B)     { benchPushPop(b, 50) }
func BenchmarkLinear_50(b *testing.B)   { benchPushPop(b, 50, frontier.WithLinearScan()) }
func BenchmarkHeap_1000(b *testing.B)   { benchPushPop(b, 1000) }
func BenchmarkLinear_1000(b *testing.B) { benchPushPop(b, 1000, frontier.WithLinearScan()) }
