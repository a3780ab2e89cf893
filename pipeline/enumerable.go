package pipeline

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
//
// The one-shot contract travels with the interface: eager methods consume
// the remaining sequence, and lazy ones move ownership into their result.
type Enumerable[T any] interface {
	// Count returns the number of remaining elements, draining the
	// sequence when no size is declared.
	Count() int

	// Each applies fn to every remaining element, in order.
	Each(fn func(T))

	// Filter returns a new collection lazily yielding only the elements
	// for which pred returns true.
	Filter(pred func(T) bool) *Collection[T]

	// Reject returns a new collection lazily dropping the elements for
	// which pred returns true.
	Reject(pred func(T) bool) *Collection[T]

	// Find returns the first remaining element satisfying pred, or None.
	Find(pred func(T) bool) Option[T]

	// IsEmpty reports whether no elements remain.
	IsEmpty() bool

	// IsNotEmpty reports whether at least one element remains.
	IsNotEmpty() bool

	// ToSlice materializes every remaining element, in order.
	ToSlice() []T

	// Iterator returns a read-only forward cursor over the remainder.
	Iterator() *Iterator[T]
}
