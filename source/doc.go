// Package source defines the one-shot element cursor that the pipeline
// package consumes, together with the obvious concrete cursors (slice,
// generator, channel, integer range).
//
// # The cursor contract
//
// A [Source] is a forward-only cursor over a conceptually ordered, possibly
// unbounded sequence. A freshly constructed cursor is positioned on the
// first element:
//
//	s := source.Of(1, 2, 3)
//	for s.Valid() {
//	    fmt.Println(s.Current())
//	    s.Advance()
//	}
//
// Current is undefined (the zero value) whenever Valid reports false.
// Advancing past the end is a no-op.
//
// # Optional capabilities
//
// A cursor may additionally implement [Sized] (it knows how many elements
// remain, in O(1)) or [Resettable] (it can rewind to the first element).
// Consumers discover these by interface assertion — [DeclaredSize] wraps the
// common case. A plain Source makes no such promises: once advanced, the
// elements behind the cursor are gone.
//
// # One-shot discipline
//
// Sources are single-owner, single-consumer values. Nothing in this package
// locks; interleaved advancement from two goroutines is undefined.
package source
