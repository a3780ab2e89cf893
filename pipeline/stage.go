package pipeline

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/source"
)

// Lazy stages. Each stage wraps exactly one upstream cursor and one user
// function and is itself a valid source.Source: a chain of n transformations
// is a chain of n nested stages, none of which reads an element until the
// outermost cursor is pulled. Stages buffer at most the single element under
// the cursor and never declare a size — counting through a stage is a drain.
//
// User functions run verbatim; a panic inside one unwinds through whichever
// eager operation is currently pulling.

// requireFn front-loads nil-function errors to pipeline construction time.
// Callers pass fn != nil so the nil check happens on the typed func value.
func requireFn(notNil bool, what string) {
	if !notNil {
		panic(fmt.Errorf("%w: nil %s", ErrInvalidArgument, what))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// filterStage
// ─────────────────────────────────────────────────────────────────────────────

// filterStage yields the upstream elements satisfying pred. The predicate
// runs at most once per upstream element; the surviving element is cached
// under the cursor until the stage is advanced.
type filterStage[T any] struct {
	upstream source.Source[T]
	pred     func(T) bool
	cur      T
	have     bool
	done     bool
}

func newFilterStage[T any](upstream source.Source[T], pred func(T) bool) *filterStage[T] {
	requireFn(pred != nil, "predicate")
	return &filterStage[T]{upstream: upstream, pred: pred}
}

func (s *filterStage[T]) prime() {
	if s.have || s.done {
		return
	}
	for s.upstream.Valid() {
		v := s.upstream.Current()
		if s.pred(v) {
			s.cur, s.have = v, true
			return
		}
		s.upstream.Advance()
	}
	s.done = true
}

func (s *filterStage[T]) Advance() {
	s.prime()
	if s.done {
		return
	}
	var zero T
	s.cur, s.have = zero, false
	s.upstream.Advance()
}

func (s *filterStage[T]) Valid() bool {
	s.prime()
	return s.have
}

func (s *filterStage[T]) Current() T {
	s.prime()
	return s.cur
}

// ─────────────────────────────────────────────────────────────────────────────
// mapStage
// ─────────────────────────────────────────────────────────────────────────────

// mapStage yields fn applied to each upstream element. It buffers nothing:
// Current recomputes on every call.
type mapStage[T, U any] struct {
	upstream source.Source[T]
	fn       func(T) U
}

func newMapStage[T, U any](upstream source.Source[T], fn func(T) U) *mapStage[T, U] {
	requireFn(fn != nil, "transform")
	return &mapStage[T, U]{upstream: upstream, fn: fn}
}

func (s *mapStage[T, U]) Advance() { s.upstream.Advance() }

func (s *mapStage[T, U]) Valid() bool { return s.upstream.Valid() }

func (s *mapStage[T, U]) Current() U {
	if !s.upstream.Valid() {
		var zero U
		return zero
	}
	return s.fn(s.upstream.Current())
}

// ─────────────────────────────────────────────────────────────────────────────
// flatMapStage
// ─────────────────────────────────────────────────────────────────────────────

// flatMapStage yields the concatenation, in outer-then-inner order, of the
// inner sources produced by fn for each upstream element. The active inner
// source is exhausted before the outer cursor moves; fn runs exactly once
// per outer element. A nil inner source counts as empty.
type flatMapStage[T, U any] struct {
	upstream source.Source[T]
	fn       func(T) source.Source[U]
	inner    source.Source[U]
}

func newFlatMapStage[T, U any](upstream source.Source[T], fn func(T) source.Source[U]) *flatMapStage[T, U] {
	requireFn(fn != nil, "transform")
	return &flatMapStage[T, U]{upstream: upstream, fn: fn}
}

func (s *flatMapStage[T, U]) prime() {
	for {
		if s.inner != nil {
			if s.inner.Valid() {
				return
			}
			s.inner = nil
			s.upstream.Advance()
		}
		if !s.upstream.Valid() {
			return
		}
		s.inner = s.fn(s.upstream.Current())
		if s.inner == nil {
			s.upstream.Advance()
		}
	}
}

func (s *flatMapStage[T, U]) Advance() {
	s.prime()
	if s.inner != nil {
		s.inner.Advance()
	}
}

func (s *flatMapStage[T, U]) Valid() bool {
	s.prime()
	return s.inner != nil
}

func (s *flatMapStage[T, U]) Current() U {
	s.prime()
	if s.inner == nil {
		var zero U
		return zero
	}
	return s.inner.Current()
}

// ─────────────────────────────────────────────────────────────────────────────
// sliceStage
// ─────────────────────────────────────────────────────────────────────────────

// sliceStage yields at most length elements starting at position offset of
// the remaining upstream sequence. The skip happens on first pull, not at
// construction.
type sliceStage[T any] struct {
	upstream source.Source[T]
	skip     int
	remain   int
	skipped  bool
}

func (s *sliceStage[T]) prime() {
	if s.skipped {
		return
	}
	s.skipped = true
	for i := 0; i < s.skip && s.upstream.Valid(); i++ {
		s.upstream.Advance()
	}
}

func (s *sliceStage[T]) Advance() {
	s.prime()
	if s.remain <= 0 {
		return
	}
	s.remain--
	s.upstream.Advance()
}

func (s *sliceStage[T]) Valid() bool {
	s.prime()
	return s.remain > 0 && s.upstream.Valid()
}

func (s *sliceStage[T]) Current() T {
	s.prime()
	if s.remain <= 0 || !s.upstream.Valid() {
		var zero T
		return zero
	}
	return s.upstream.Current()
}

// ─────────────────────────────────────────────────────────────────────────────
// zipStage
// ─────────────────────────────────────────────────────────────────────────────

// zipStage pairs two cursors element-by-element and is exhausted as soon as
// either side is.
type zipStage[A, B any] struct {
	left  source.Source[A]
	right source.Source[B]
}

func (s *zipStage[A, B]) Advance() {
	if !s.Valid() {
		return
	}
	s.left.Advance()
	s.right.Advance()
}

func (s *zipStage[A, B]) Valid() bool {
	return s.left.Valid() && s.right.Valid()
}

func (s *zipStage[A, B]) Current() Pair[A, B] {
	if !s.Valid() {
		return Pair[A, B]{}
	}
	return Pair[A, B]{First: s.left.Current(), Second: s.right.Current()}
}
