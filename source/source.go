package source

// Source is a one-shot forward cursor over a sequence of elements of type T.
//
// A freshly constructed Source is positioned on the first element, if any.
// The consuming loop is:
//
//	for s.Valid() {
//	    use(s.Current())
//	    s.Advance()
//	}
type Source[T any] interface {
	// Advance moves the cursor to the next element.
	// Advancing an exhausted cursor is a no-op.
	Advance()

	// Valid reports whether the cursor is positioned on an element.
	Valid() bool

	// Current returns the element under the cursor.
	// The result is the zero value of T when Valid reports false.
	Current() T
}

// Sized is the optional capability of a Source that knows, in O(1), how many
// elements remain from its current position.
type Sized interface {
	// DeclaredSize returns the number of elements remaining.
	DeclaredSize() int
}

// Resettable is the optional capability of a Source that can rewind to its
// first element. Most sources are one-shot and do not implement it.
type Resettable interface {
	Reset()
}

// DeclaredSize reports the remaining element count of s when s implements
// [Sized], and (0, false) otherwise.
func DeclaredSize[T any](s Source[T]) (int, bool) {
	if sized, ok := s.(Sized); ok {
		return sized.DeclaredSize(), true
	}
	return 0, false
}
