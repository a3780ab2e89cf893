package source

// IntRange is a cursor over the integers from a starting point (inclusive)
// toward a bound (exclusive), in fixed steps. It implements [Sized] and
// [Resettable].
type IntRange struct {
	first int
	cur   int
	bound int
	step  int
}

// Range creates an IntRange yielding from, from+step, from+2*step, … while
// the value is below bound (step > 0) or above bound (step < 0).
// A zero step yields an empty range.
func Range(from, bound, step int) *IntRange {
	return &IntRange{first: from, cur: from, bound: bound, step: step}
}

// Advance moves the cursor one step forward.
func (r *IntRange) Advance() {
	if r.Valid() {
		r.cur += r.step
	}
}

// Valid reports whether the cursor is positioned on an element.
func (r *IntRange) Valid() bool {
	switch {
	case r.step > 0:
		return r.cur < r.bound
	case r.step < 0:
		return r.cur > r.bound
	default:
		return false
	}
}

// Current returns the integer under the cursor, or 0 once exhausted.
func (r *IntRange) Current() int {
	if !r.Valid() {
		return 0
	}
	return r.cur
}

// DeclaredSize returns the number of elements remaining.
func (r *IntRange) DeclaredSize() int {
	if !r.Valid() {
		return 0
	}
	if r.step > 0 {
		return (r.bound - r.cur + r.step - 1) / r.step
	}
	return (r.cur - r.bound - r.step - 1) / -r.step
}

// Reset rewinds the cursor to the first element.
func (r *IntRange) Reset() { r.cur = r.first }
