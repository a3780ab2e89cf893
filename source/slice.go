package source

// Slice is a cursor over an in-memory slice. It implements [Sized] and
// [Resettable] in addition to [Source].
type Slice[T any] struct {
	items []T
	pos   int
}

// Of creates a Slice cursor from a variadic list of items (copied).
func Of[T any](items ...T) *Slice[T] {
	return FromSlice(items)
}

// FromSlice creates a Slice cursor from items (the slice is copied, so later
// mutation of the argument does not affect the cursor).
func FromSlice[T any](items []T) *Slice[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Slice[T]{items: dst}
}

// Wrap creates a Slice cursor that takes ownership of items without copying.
// The caller must not read or mutate items afterward.
func Wrap[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Advance moves the cursor to the next element.
func (s *Slice[T]) Advance() {
	if s.pos < len(s.items) {
		s.pos++
	}
}

// Valid reports whether the cursor is positioned on an element.
func (s *Slice[T]) Valid() bool { return s.pos < len(s.items) }

// Current returns the element under the cursor, or the zero value once the
// cursor is exhausted.
func (s *Slice[T]) Current() T {
	if !s.Valid() {
		var zero T
		return zero
	}
	return s.items[s.pos]
}

// DeclaredSize returns the number of elements remaining.
func (s *Slice[T]) DeclaredSize() int { return len(s.items) - s.pos }

// Reset rewinds the cursor to the first element.
func (s *Slice[T]) Reset() { s.pos = 0 }
