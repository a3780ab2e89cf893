package pipeline

// Keyed is the capability an element type must provide for key-based
// plucking with [PluckKey]. Map-like and index-like elements implement it;
// opaque elements do not and cannot be passed to PluckKey at all — the
// closed set of element shapes is resolved at compile time, never probed at
// runtime.
type Keyed[K comparable] interface {
	// Value returns the value stored under key and whether key is present.
	Value(key K) (any, bool)
}

// MapElement is a map-like element with values addressable by key.
// It implements [Keyed].
type MapElement[K comparable] map[K]any

// Value returns the value stored under key.
func (m MapElement[K]) Value(key K) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// IndexedElement is an array-like element with values addressable by
// position. It implements [Keyed] with int keys; out-of-range positions are
// absent, not an error.
type IndexedElement []any

// Value returns the value stored at position key.
func (e IndexedElement) Value(key int) (any, bool) {
	if key < 0 || key >= len(e) {
		return nil, false
	}
	return e[key], true
}
