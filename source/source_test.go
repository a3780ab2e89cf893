package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/source"
)

// drain consumes s to exhaustion and returns every element in order.
func drain[T any](s source.Source[T]) []T {
	var out []T
	for s.Valid() {
		out = append(out, s.Current())
		s.Advance()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slice
// ─────────────────────────────────────────────────────────────────────────────

func TestSliceDrain(t *testing.T) {
	s := source.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, drain[int](s))
	assert.False(t, s.Valid(), "drained cursor must be exhausted")
	assert.Zero(t, s.Current(), "Current on an exhausted cursor is the zero value")
}

func TestSliceCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	s := source.FromSlice(items)
	items[0] = "z"
	assert.Equal(t, "a", s.Current(), "FromSlice must copy the input slice")
}

func TestSliceWrapDoesNotCopy(t *testing.T) {
	items := []int{1, 2, 3}
	s := source.Wrap(items)
	assert.Equal(t, []int{1, 2, 3}, drain[int](s))
}

func TestSliceDeclaredSize(t *testing.T) {
	s := source.Of(10, 20, 30)
	n, ok := source.DeclaredSize[int](s)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	s.Advance()
	assert.Equal(t, 2, s.DeclaredSize(), "declared size tracks the remaining elements")
}

func TestSliceReset(t *testing.T) {
	s := source.Of(1, 2)
	drain[int](s)
	s.Reset()
	assert.Equal(t, []int{1, 2}, drain[int](s))
}

func TestSliceAdvancePastEnd(t *testing.T) {
	s := source.Of(1)
	s.Advance()
	s.Advance() // no-op
	assert.False(t, s.Valid())
	assert.Equal(t, 0, s.DeclaredSize())
}

// ─────────────────────────────────────────────────────────────────────────────
// Generator
// ─────────────────────────────────────────────────────────────────────────────

func TestGeneratorFinite(t *testing.T) {
	n := 0
	g := source.Generate(func() (int, bool) {
		n++
		return n, n <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, drain[int](g))
	assert.False(t, g.Valid())
}

func TestGeneratorIsLazy(t *testing.T) {
	calls := 0
	g := source.Generate(func() (int, bool) {
		calls++
		return calls, true
	})
	assert.Zero(t, calls, "next must not run before the cursor is inspected")

	require.True(t, g.Valid())
	assert.Equal(t, 1, calls, "first inspection pulls exactly one element")
	assert.Equal(t, 1, g.Current())
	assert.Equal(t, 1, calls, "Valid and Current share the pulled element")

	g.Advance()
	assert.Equal(t, 2, g.Current())
	assert.Equal(t, 2, calls)
}

func TestGeneratorExhaustedStaysExhausted(t *testing.T) {
	g := source.Generate(func() (int, bool) { return 0, false })
	assert.False(t, g.Valid())
	g.Advance()
	assert.False(t, g.Valid())
	assert.Zero(t, g.Current())
}

func TestGeneratorHasNoDeclaredSize(t *testing.T) {
	g := source.Generate(func() (int, bool) { return 1, true })
	_, ok := source.DeclaredSize[int](g)
	assert.False(t, ok, "a generator cannot know its size")
}

// ─────────────────────────────────────────────────────────────────────────────
// Chan
// ─────────────────────────────────────────────────────────────────────────────

func TestChanDrain(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)
	assert.Equal(t, []string{"a", "b", "c"}, drain[string](source.FromChan(ch)))
}

func TestChanClosedEmpty(t *testing.T) {
	ch := make(chan int)
	close(ch)
	c := source.FromChan(ch)
	assert.False(t, c.Valid())
	assert.Zero(t, c.Current())
}

// ─────────────────────────────────────────────────────────────────────────────
// IntRange
// ─────────────────────────────────────────────────────────────────────────────

func TestRangeAscending(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, drain[int](source.Range(0, 6, 2)))
}

func TestRangeDescending(t *testing.T) {
	assert.Equal(t, []int{5, 3, 1}, drain[int](source.Range(5, 0, -2)))
}

func TestRangeZeroStepIsEmpty(t *testing.T) {
	r := source.Range(0, 10, 0)
	assert.False(t, r.Valid())
	assert.Equal(t, 0, r.DeclaredSize())
}

func TestRangeDeclaredSize(t *testing.T) {
	r := source.Range(0, 5, 1)
	assert.Equal(t, 5, r.DeclaredSize())
	r.Advance()
	assert.Equal(t, 4, r.DeclaredSize())

	assert.Equal(t, 3, source.Range(5, 0, -2).DeclaredSize())
}

func TestRangeReset(t *testing.T) {
	r := source.Range(1, 4, 1)
	drain[int](r)
	r.Reset()
	assert.Equal(t, []int{1, 2, 3}, drain[int](r))
}
