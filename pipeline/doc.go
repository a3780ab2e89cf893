// Package pipeline provides a generic, lazily evaluated Collection type over
// a one-shot element source, inspired by Laravel's Illuminate/Collections
// and Scala/Guava-style fluent pipelines.
//
// # Overview
//
// The central type is [Collection][T], a facade over a [source.Source][T]
// cursor. Transformations (Filter, Reject, Map, FlatMap, Slice, Zip) are
// lazy: each returns a new Collection wrapping a new stage around the
// current source without reading a single element. Terminal operations
// (Count, Contains, Find, Fold, Reduce, Sort, Partition, GroupBy, Pluck,
// Each, ToSlice) drain the remaining sequence — or just enough of it, where
// short-circuiting applies:
//
//	evens, _ := pipeline.FromSource[int](source.Range(1, 1_000_000, 1)).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Slice(0, 3)
//	fmt.Println(evens.ToSlice()) // [2 4 6] — six elements read, cursor left on 7
//
// # One-shot consumption
//
// The underlying source has a single forward cursor. An eager operation
// consumes the remaining sequence exactly once; draining the same Collection
// again observes an empty remainder. Likewise, a lazy transformation moves
// ownership of the source into the new Collection — keep using the result,
// not the receiver. Callers who need multiple passes materialize first with
// [Collection.ToSlice] and rebuild with [From].
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	// Method-based, type-preserving:
//	c.Filter(func(n int) bool { return n%2 == 0 })
//
//	// Package-level, type-transforming (lazy):
//	pipeline.Map(c, strconv.Itoa)
//
// Package-level functions: [Map], [MapTo], [FlatMap], [FlatMapSources],
// [Fold], [GroupBy], [Pluck], [PluckKey], [Zip], [MapOption].
//
// # Failure semantics
//
// User-supplied predicates, transforms, comparators and combiners run
// verbatim: the engine never recovers, retries or wraps a panic raised
// inside one. A failed drain leaves the source at whatever position it had
// reached. Malformed call parameters surface as [ErrInvalidArgument];
// [Collection.Reduce] on an exhausted source reports [ErrEmptyCollection].
//
// # Concurrency
//
// Everything here is single-threaded and synchronous. A Collection must not
// be consumed from two goroutines: the cursor position is shared mutable
// state. Materialize first and share the resulting slice instead.
package pipeline
