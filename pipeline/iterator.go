package pipeline

import "github.com/hasbyte1/go-lazy-collections/source"

// Iterator is the read-only guard returned by [Collection.Iterator]. It
// forwards the cursor contract of the held source — and only that: the
// guard deliberately does not implement [source.Resettable] or
// [source.Sized], so a consumer holding an Iterator can read forward but
// never reposition or size the collection's internal cursor.
//
// Iterator itself satisfies [source.Source], so a guard can seed a further
// pipeline:
//
//	rest := pipeline.FromSource[int](c.Iterator())
type Iterator[T any] struct {
	src source.Source[T]
}

// Advance moves the underlying cursor to the next element.
func (it *Iterator[T]) Advance() { it.src.Advance() }

// Valid reports whether the underlying cursor is positioned on an element.
func (it *Iterator[T]) Valid() bool { return it.src.Valid() }

// Current returns the element under the cursor, or the zero value once the
// collection is exhausted.
func (it *Iterator[T]) Current() T { return it.src.Current() }
