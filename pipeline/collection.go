package pipeline

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-lazy-collections/source"
)

// Collection is a lazy pipeline facade over a one-shot [source.Source][T].
//
// Lazy transformations (Filter, Reject, the package-level Map/FlatMap
// family, Slice, Zip) return a new Collection wrapping a new stage around
// the current source; no element is read. Eager operations drain the
// remaining sequence — from wherever the cursor currently stands — exactly
// once. After either kind of operation the receiver holds only the
// already-partially-consumed remainder; keep chaining on the returned value
// and treat the receiver as spent.
//
// # Creating a collection
//
//	c := pipeline.New(1, 2, 3, 4, 5)
//	c := pipeline.From([]string{"a", "b", "c"})
//	c := pipeline.FromSource[int](source.Generate(next))
//
// # Method chaining
//
//	sum := pipeline.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Fold(func(acc, n int) int { return acc + n }, 0)
//
// The internal source is never exposed; external iteration goes through the
// read-only guard returned by [Collection.Iterator].
type Collection[T any] struct {
	src source.Source[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// FromSource creates a Collection consuming src. The Collection takes
// exclusive ownership of the cursor; the caller must not advance it.
func FromSource[T any](src source.Source[T]) *Collection[T] {
	if src == nil {
		panic(fmt.Errorf("%w: nil source", ErrInvalidArgument))
	}
	return &Collection[T]{src: src}
}

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{src: source.FromSlice(items)}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{src: source.FromSlice(items)}
}

// Empty creates an exhausted Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{src: source.Wrap[T](nil)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether no elements remain. The check is a cursor peek,
// not a drain: it may advance lazy stages past non-matching upstream
// elements, but never discards an element the pipeline would yield.
func (c *Collection[T]) IsEmpty() bool { return !c.src.Valid() }

// IsNotEmpty reports whether at least one element remains.
func (c *Collection[T]) IsNotEmpty() bool { return c.src.Valid() }

// Count returns the number of remaining elements. When the source declares
// its size the answer is O(1) and nothing is consumed; otherwise Count
// drains the collection to count it, leaving it empty for any later
// operation. Callers needing both the count and the elements should
// materialize with [Collection.ToSlice] first.
func (c *Collection[T]) Count() int {
	if n, ok := source.DeclaredSize(c.src); ok {
		return n
	}
	n := 0
	for c.src.Valid() {
		n++
		c.src.Advance()
	}
	return n
}

// Contains reports whether a remaining element equals v under eq.
// The scan is linear and short-circuits on the first match; there is no
// sorted fast path even when the input happens to be ordered.
func (c *Collection[T]) Contains(v T, eq Equality[T]) bool {
	requireFn(eq != nil, "equality")
	for c.src.Valid() {
		if eq(c.src.Current(), v) {
			return true
		}
		c.src.Advance()
	}
	return false
}

// Find returns the first remaining element satisfying pred, consuming the
// sequence through that element and no further. Repeated calls therefore
// walk successive matches. Returns None when the sequence exhausts without
// a match.
func (c *Collection[T]) Find(pred func(T) bool) Option[T] {
	requireFn(pred != nil, "predicate")
	for c.src.Valid() {
		v := c.src.Current()
		if pred(v) {
			c.src.Advance()
			return Some(v)
		}
		c.src.Advance()
	}
	return None[T]()
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new Collection yielding only the elements for which pred
// returns true. Lazy: pred does not run until the result is consumed.
func (c *Collection[T]) Filter(pred func(T) bool) *Collection[T] {
	return &Collection[T]{src: newFilterStage(c.src, pred)}
}

// Reject returns a new Collection with the elements matching pred removed.
// It is the complement of [Collection.Filter], and equally lazy.
func (c *Collection[T]) Reject(pred func(T) bool) *Collection[T] {
	requireFn(pred != nil, "predicate")
	return c.Filter(func(v T) bool { return !pred(v) })
}

// Slice returns a new Collection yielding at most length elements starting
// at position offset of the remaining sequence. Bounds are validated here —
// both must be non-negative or Slice fails with [ErrInvalidArgument] — but
// consumption stays lazy: nothing is skipped until the result is pulled.
func (c *Collection[T]) Slice(offset, length int) (*Collection[T], error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, offset)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	return &Collection[T]{src: &sliceStage[T]{upstream: c.src, skip: offset, remain: length}}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Eager traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each applies fn to every remaining element, in order, for side effects.
func (c *Collection[T]) Each(fn func(T)) {
	requireFn(fn != nil, "side effect")
	for c.src.Valid() {
		fn(c.src.Current())
		c.src.Advance()
	}
}

// Fold left-folds the remaining elements into an accumulator of the same
// element type, strictly in order. An exhausted collection returns initial
// unchanged. For accumulators of a different type use the package-level
// [Fold].
func (c *Collection[T]) Fold(fn func(carry, item T) T, initial T) T {
	return Fold(c, fn, initial)
}

// Reduce left-folds the remaining elements using the first as the seed.
// Returns [ErrEmptyCollection] when nothing remains; a sole element is
// returned directly without invoking fn.
func (c *Collection[T]) Reduce(fn func(a, b T) T) (T, error) {
	requireFn(fn != nil, "combiner")
	var acc T
	if !c.src.Valid() {
		return acc, ErrEmptyCollection
	}
	acc = c.src.Current()
	c.src.Advance()
	for c.src.Valid() {
		acc = fn(acc, c.src.Current())
		c.src.Advance()
	}
	return acc, nil
}

// Partition splits the remaining elements into two Collections in a single
// pass: first those satisfying pred, then the rest, each preserving relative
// order. Both halves are built through independent builders hinted with the
// source's declared size.
func (c *Collection[T]) Partition(pred func(T) bool) (*Collection[T], *Collection[T]) {
	requireFn(pred != nil, "predicate")
	hint, _ := source.DeclaredSize(c.src)
	pass := NewBuilderWithCapacity[T](hint)
	fail := NewBuilderWithCapacity[T](hint)
	for c.src.Valid() {
		v := c.src.Current()
		if pred(v) {
			pass.Add(v)
		} else {
			fail.Add(v)
		}
		c.src.Advance()
	}
	return pass.Build(), fail.Build()
}

// ToSlice materializes every remaining element into a plain slice, in order.
func (c *Collection[T]) ToSlice() []T {
	hint, _ := source.DeclaredSize(c.src)
	out := make([]T, 0, hint)
	for c.src.Valid() {
		out = append(out, c.src.Current())
		c.src.Advance()
	}
	return out
}

// All is an alias for [Collection.ToSlice].
func (c *Collection[T]) All() []T { return c.ToSlice() }

// Iterator returns a read-only forward cursor over the held source. The
// guard forwards Advance/Valid/Current and nothing else: it cannot be reset
// or repositioned, and iterating through it consumes the collection exactly
// like any other eager traversal.
func (c *Collection[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{src: c.src}
}

// Seq bridges the collection to a Go range-over-func sequence. Ranging
// consumes the source; breaking early leaves the cursor on the first
// unyielded element.
func (c *Collection[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.src.Valid() {
			if !yield(c.src.Current()) {
				return
			}
			c.src.Advance()
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn(c) for side effects (e.g. instrumentation hooks) and returns
// c for further chaining. fn must not consume the collection.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
