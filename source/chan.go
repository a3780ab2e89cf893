package source

// Chan is a cursor over a receive channel. Reading is as lazy as the channel
// allows: the first receive happens when the cursor is first inspected, and
// Valid blocks until an element arrives or the channel is closed.
type Chan[T any] struct {
	ch     <-chan T
	cur    T
	primed bool
	done   bool
}

// FromChan creates a Chan cursor reading from ch. The cursor is exhausted
// once ch is closed and drained.
func FromChan[T any](ch <-chan T) *Chan[T] {
	return &Chan[T]{ch: ch}
}

func (c *Chan[T]) prime() {
	if c.primed {
		return
	}
	c.primed = true
	c.pull()
}

func (c *Chan[T]) pull() {
	v, ok := <-c.ch
	if !ok {
		var zero T
		c.cur = zero
		c.done = true
		return
	}
	c.cur = v
}

// Advance moves the cursor to the next received element.
func (c *Chan[T]) Advance() {
	c.prime()
	if c.done {
		return
	}
	c.pull()
}

// Valid reports whether the cursor is positioned on an element. It may block
// waiting for the channel.
func (c *Chan[T]) Valid() bool {
	c.prime()
	return !c.done
}

// Current returns the element under the cursor, or the zero value once the
// channel is closed and drained.
func (c *Chan[T]) Current() T {
	c.prime()
	return c.cur
}
