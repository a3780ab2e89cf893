package pipeline

import "cmp"

// Comparator is a three-valued total order over T: negative when a sorts
// before b, zero when they rank equally, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Equality reports whether two elements are equal for the purposes of
// [Collection.Contains].
type Equality[T any] func(a, b T) bool

// NaturalOrder returns the ascending order on an ordered type.
func NaturalOrder[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// ReverseOrder inverts the given order.
func ReverseOrder[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -c(a, b) }
}

// OrderBy orders elements by an extracted ordered key.
func OrderBy[T any, K cmp.Ordered](fn func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }
}

// NaturalEquality returns == on a comparable type.
func NaturalEquality[T comparable]() Equality[T] {
	return func(a, b T) bool { return a == b }
}

// EqualBy compares elements by an extracted comparable key.
func EqualBy[T any, K comparable](fn func(T) K) Equality[T] {
	return func(a, b T) bool { return fn(a) == fn(b) }
}
