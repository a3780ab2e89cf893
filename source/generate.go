package source

// Generator is a pull-based cursor over a function-produced sequence,
// possibly unbounded. It is strictly one-shot: no size is declared and there
// is no reset.
type Generator[T any] struct {
	next   func() (T, bool)
	cur    T
	primed bool
	done   bool
}

// Generate creates a Generator that pulls elements from next until next
// reports false. next is not called until the cursor is first inspected, and
// is called exactly once per produced element.
func Generate[T any](next func() (T, bool)) *Generator[T] {
	return &Generator[T]{next: next}
}

func (g *Generator[T]) prime() {
	if g.primed {
		return
	}
	g.primed = true
	g.pull()
}

func (g *Generator[T]) pull() {
	v, ok := g.next()
	if !ok {
		var zero T
		g.cur = zero
		g.done = true
		return
	}
	g.cur = v
}

// Advance moves the cursor to the next generated element.
func (g *Generator[T]) Advance() {
	g.prime()
	if g.done {
		return
	}
	g.pull()
}

// Valid reports whether the cursor is positioned on an element.
func (g *Generator[T]) Valid() bool {
	g.prime()
	return !g.done
}

// Current returns the element under the cursor, or the zero value once the
// generator is exhausted.
func (g *Generator[T]) Current() T {
	g.prime()
	return g.cur
}
