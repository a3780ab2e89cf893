package pipeline

import (
	"container/heap"

	"github.com/hasbyte1/go-lazy-collections/source"
)

// elementHeap is the two-phase priority structure behind [Collection.Sort]:
// load every element, then pop them in comparator order. It is local to a
// single Sort call; no state survives the call.
type elementHeap[T any] struct {
	items []T
	cmp   Comparator[T]
}

func (h *elementHeap[T]) Len() int           { return len(h.items) }
func (h *elementHeap[T]) Less(i, j int) bool { return h.cmp(h.items[i], h.items[j]) < 0 }
func (h *elementHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *elementHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *elementHeap[T]) Pop() any {
	n := len(h.items)
	v := h.items[n-1]
	h.items = h.items[:n-1]
	return v
}

// Sort materializes the remaining elements into a new Collection ordered by
// cmp. This is a full drain: the elements are loaded into a priority
// structure (one pass) and popped in order into a builder (one pass),
// costing O(n log n) comparator calls overall. Elements ranking equally
// under cmp come out in an order of the comparator's choosing — the
// comparator is the entire tie policy.
func (c *Collection[T]) Sort(cmp Comparator[T]) *Collection[T] {
	requireFn(cmp != nil, "comparator")
	hint, _ := source.DeclaredSize(c.src)
	if hint < 0 {
		hint = 0
	}
	h := &elementHeap[T]{items: make([]T, 0, hint), cmp: cmp}
	for c.src.Valid() {
		heap.Push(h, c.src.Current())
		c.src.Advance()
	}
	out := NewBuilderWithCapacity[T](h.Len())
	for h.Len() > 0 {
		out.Add(heap.Pop(h).(T))
	}
	return out.Build()
}
