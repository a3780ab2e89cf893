package pipeline

import "github.com/hasbyte1/go-lazy-collections/source"

// Builder accumulates elements and materializes them into a finished
// [Collection]. Add/AddSlice/AddAll return the builder for chaining.
//
// Build is the single terminal call: it hands the accumulated elements to
// the new Collection without copying and detaches the builder. Using a
// builder after Build is undefined; the detached builder behaves like a
// fresh empty one, but callers must not rely on that.
type Builder[T any] struct {
	items []T
}

// NewBuilder creates an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// NewBuilderWithCapacity creates a Builder pre-sized for hint elements.
// The hint is purely a capacity hint and never affects correctness; a
// negative hint is treated as zero.
func NewBuilderWithCapacity[T any](hint int) *Builder[T] {
	if hint < 0 {
		hint = 0
	}
	return &Builder[T]{items: make([]T, 0, hint)}
}

// Add appends one element.
func (b *Builder[T]) Add(v T) *Builder[T] {
	b.items = append(b.items, v)
	return b
}

// AddSlice appends every element of items, in order.
func (b *Builder[T]) AddSlice(items []T) *Builder[T] {
	b.items = append(b.items, items...)
	return b
}

// AddAll drains src into the builder, in order.
func (b *Builder[T]) AddAll(src source.Source[T]) *Builder[T] {
	for src.Valid() {
		b.items = append(b.items, src.Current())
		src.Advance()
	}
	return b
}

// Len returns the number of accumulated elements.
func (b *Builder[T]) Len() int { return len(b.items) }

// Build materializes the accumulated elements into a Collection and
// detaches the builder.
func (b *Builder[T]) Build() *Collection[T] {
	items := b.items
	b.items = nil
	return &Collection[T]{src: source.Wrap(items)}
}
