package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/pipeline"
)

func TestMultimapPutGet(t *testing.T) {
	m := pipeline.NewMultimap[string, int]()
	m.Put("odd", 1)
	m.Put("even", 2)
	m.Put("odd", 3)

	assert.Equal(t, []int{1, 3}, m.Get("odd"), "buckets keep put order")
	assert.Equal(t, []int{2}, m.Get("even"))
	assert.Empty(t, m.Get("missing"))
}

func TestMultimapKeysKeepInsertionOrder(t *testing.T) {
	m := pipeline.NewMultimap[string, int]()
	m.Put("b", 1)
	m.Put("a", 2)
	m.Put("b", 3)
	m.Put("c", 4)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMultimapHas(t *testing.T) {
	m := pipeline.NewMultimap[int, string]()
	m.Put(1, "x")
	assert.True(t, m.Has(1))
	assert.False(t, m.Has(2))
}

func TestMultimapGetReturnsCopy(t *testing.T) {
	m := pipeline.NewMultimap[string, int]()
	m.Put("k", 1)
	bucket := m.Get("k")
	bucket[0] = 99
	assert.Equal(t, []int{1}, m.Get("k"), "mutating a returned bucket must not leak inside")
}

func TestMultimapEach(t *testing.T) {
	m := pipeline.NewMultimap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 3)

	var keys []string
	var total int
	m.Each(func(k string, vs []int) {
		keys = append(keys, k)
		for _, v := range vs {
			total += v
		}
	})
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, 6, total)
}

func TestMultimapToMap(t *testing.T) {
	m := pipeline.NewMultimap[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)
	got := m.ToMap()
	require.Contains(t, got, "a")
	assert.Equal(t, []int{1, 2}, got["a"])

	got["a"][0] = 99
	assert.Equal(t, []int{1, 2}, m.Get("a"))
}
