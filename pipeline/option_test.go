package pipeline_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/pipeline"
)

func TestOptionSome(t *testing.T) {
	o := pipeline.Some(7)
	require.True(t, o.Present())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, o.OrElse(0))
}

func TestOptionNone(t *testing.T) {
	o := pipeline.None[int]()
	assert.False(t, o.Present())
	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 9, o.OrElse(9))
}

func TestOptionMap(t *testing.T) {
	assert.Equal(t, pipeline.Some(8), pipeline.Some(4).Map(func(n int) int { return n * 2 }))

	calls := 0
	got := pipeline.None[int]().Map(func(n int) int {
		calls++
		return n
	})
	assert.False(t, got.Present())
	assert.Zero(t, calls, "Map on None must not invoke fn")
}

func TestMapOption(t *testing.T) {
	assert.Equal(t, pipeline.Some("12"), pipeline.MapOption(pipeline.Some(12), strconv.Itoa))
	assert.Equal(t, pipeline.None[string](), pipeline.MapOption(pipeline.None[int](), strconv.Itoa))
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "Some(12)", pipeline.Some(12).String())
	assert.Equal(t, "None", pipeline.None[int]().String())
}
