package pipeline

// Multimap maps comparable keys to ordered sequences of values. Keys keep
// their first-insertion order; values within a bucket keep put order.
// It is the result type of [GroupBy].
type Multimap[K comparable, V any] struct {
	keys    []K
	buckets map[K][]V
}

// NewMultimap creates an empty Multimap.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{buckets: make(map[K][]V)}
}

// Put appends value to the bucket for key, creating the bucket on first use.
func (m *Multimap[K, V]) Put(key K, value V) {
	if _, ok := m.buckets[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.buckets[key] = append(m.buckets[key], value)
}

// Get returns a copy of the bucket for key, in put order.
// The result is empty (not nil-distinguished) for an absent key.
func (m *Multimap[K, V]) Get(key K) []V {
	bucket := m.buckets[key]
	out := make([]V, len(bucket))
	copy(out, bucket)
	return out
}

// Has reports whether key has a bucket.
func (m *Multimap[K, V]) Has(key K) bool {
	_, ok := m.buckets[key]
	return ok
}

// Keys returns the distinct keys in first-insertion order.
func (m *Multimap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of distinct keys.
func (m *Multimap[K, V]) Len() int { return len(m.keys) }

// Each calls fn(key, bucket) for every key in first-insertion order.
// The bucket slice must not be mutated by fn.
func (m *Multimap[K, V]) Each(fn func(K, []V)) {
	for _, k := range m.keys {
		fn(k, m.buckets[k])
	}
}

// ToMap returns a plain map copy of the contents. Key ordering is lost;
// use [Multimap.Keys] or [Multimap.Each] where order matters.
func (m *Multimap[K, V]) ToMap() map[K][]V {
	out := make(map[K][]V, len(m.buckets))
	for k, bucket := range m.buckets {
		cp := make([]V, len(bucket))
		copy(cp, bucket)
		out[k] = cp
	}
	return out
}
