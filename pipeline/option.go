package pipeline

import "fmt"

// Option holds either one value of T or nothing. It is the result type of
// [Collection.Find].
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None creates an empty Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present reports whether the Option holds a value.
func (o Option[T]) Present() bool { return o.present }

// Get returns the held value together with a presence flag.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// OrElse returns the held value, or fallback when the Option is empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Map applies fn to the held value, if any. An empty Option passes through
// unchanged and fn is not called. For transforms that change the value type,
// use [MapOption].
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.present {
		return o
	}
	return Some(fn(o.value))
}

// MapOption applies fn to the value held by o, producing an Option[U].
// An empty input yields an empty output and fn is not called.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return Some(fn(v))
}

// String returns "Some(v)" or "None". It implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
