package pipeline

// This file contains package-level generic functions for operations that
// transform a Collection[T] into a Collection[U] or into another shape.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They compose with
// method-chaining calls:
//
//	result := pipeline.Map(
//	    pipeline.New(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

import "github.com/hasbyte1/go-lazy-collections/source"

// Map returns a new Collection yielding fn applied to every element.
// Lazy: fn does not run until the result is consumed.
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return &Collection[U]{src: newMapStage(c.src, fn)}
}

// MapTo returns a new Collection yielding value once per element of c.
// It is [Map] with a constant function.
func MapTo[T, U any](c *Collection[T], value U) *Collection[U] {
	return Map(c, func(T) U { return value })
}

// FlatMap applies fn to every element (producing a slice per element) and
// yields the flattened concatenation in outer-then-inner order. Lazy in
// both directions: fn runs once per outer element, when that element's
// slice is first needed. FlatMap takes ownership of each returned slice.
//
// For transforms producing a cursor rather than a slice — including
// unbounded inner sequences — use [FlatMapSources].
func FlatMap[T, U any](c *Collection[T], fn func(T) []U) *Collection[U] {
	requireFn(fn != nil, "transform")
	return FlatMapSources(c, func(v T) source.Source[U] {
		return source.Wrap(fn(v))
	})
}

// FlatMapSources applies fn to every element (producing a source per
// element) and yields the concatenation of the inner sources in order.
// Each inner source is exhausted before the outer cursor moves. A nil
// inner source is treated as empty.
func FlatMapSources[T, U any](c *Collection[T], fn func(T) source.Source[U]) *Collection[U] {
	return &Collection[U]{src: newFlatMapStage(c.src, fn)}
}

// Fold left-folds the remaining elements of c into an accumulator of type
// U, strictly in order, with no parallelism. An exhausted collection
// returns initial unchanged.
func Fold[T, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	requireFn(fn != nil, "combiner")
	acc := initial
	for c.src.Valid() {
		acc = fn(acc, c.src.Current())
		c.src.Advance()
	}
	return acc
}

// GroupBy drains c into a [Multimap] from key to the elements sharing that
// key. keyFn runs once per element; buckets preserve encounter order, and
// keys preserve first-encounter order.
func GroupBy[T any, K comparable](c *Collection[T], keyFn func(T) K) *Multimap[K, T] {
	requireFn(keyFn != nil, "key function")
	groups := NewMultimap[K, T]()
	for c.src.Valid() {
		v := c.src.Current()
		groups.Put(keyFn(v), v)
		c.src.Advance()
	}
	return groups
}

// Pluck eagerly extracts one value per element via fn, skipping elements
// for which fn reports false. A skipped element is not an error; it simply
// contributes nothing.
func Pluck[T, U any](c *Collection[T], fn func(T) (U, bool)) *Collection[U] {
	requireFn(fn != nil, "extractor")
	hint, _ := source.DeclaredSize(c.src)
	out := NewBuilderWithCapacity[U](hint)
	for c.src.Valid() {
		if v, ok := fn(c.src.Current()); ok {
			out.Add(v)
		}
		c.src.Advance()
	}
	return out.Build()
}

// PluckKey eagerly extracts the value stored under key from every [Keyed]
// element, skipping elements that lack the key entirely. Elements without
// keyed access cannot be passed here — the capability is checked by the
// type system, not probed at runtime.
func PluckKey[K comparable, T Keyed[K]](c *Collection[T], key K) *Collection[any] {
	return Pluck(c, func(v T) (any, bool) { return v.Value(key) })
}

// Zip lazily pairs two collections element-by-element. The result is
// exhausted as soon as either input is; the longer input keeps its unpaired
// remainder unconsumed.
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	return &Collection[Pair[A, B]]{src: &zipStage[A, B]{left: a.src, right: b.src}}
}
