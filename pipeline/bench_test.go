package pipeline_test

import (
	"testing"

	"github.com/hasbyte1/go-lazy-collections/pipeline"
	"github.com/hasbyte1/go-lazy-collections/source"
)

// makeItems creates the backing slice once; each benchmark iteration wraps
// it in a fresh cursor because a pipeline is one-shot.
func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilterDrain(b *testing.B) {
	items := makeItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.FromSource[int](source.FromSlice(items)).
			Filter(func(n int) bool { return n%2 == 0 }).
			ToSlice()
	}
}

func BenchmarkMapFold(b *testing.B) {
	items := makeItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := pipeline.Map(
			pipeline.FromSource[int](source.FromSlice(items)),
			func(n int) int { return n * 2 },
		)
		c.Fold(func(acc, n int) int { return acc + n }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	items := makeItems(10_000)
	// Worst-ish case for a min-heap load: reverse order.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	cmp := pipeline.NaturalOrder[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.FromSource[int](source.FromSlice(items)).Sort(cmp)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	items := makeItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.GroupBy(
			pipeline.FromSource[int](source.FromSlice(items)),
			func(n int) int { return n % 7 },
		)
	}
}

func BenchmarkFlatMap(b *testing.B) {
	items := makeItems(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.FlatMap(
			pipeline.FromSource[int](source.FromSlice(items)),
			func(n int) []int { return []int{n, -n} },
		).ToSlice()
	}
}

func BenchmarkFindShortCircuit(b *testing.B) {
	items := makeItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.FromSource[int](source.FromSlice(items)).
			Find(func(n int) bool { return n == 50 })
	}
}

func BenchmarkBuilder(b *testing.B) {
	items := makeItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bld := pipeline.NewBuilderWithCapacity[int](len(items))
		for _, v := range items {
			bld.Add(v)
		}
		bld.Build()
	}
}
