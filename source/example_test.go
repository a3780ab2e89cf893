package source_test

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/source"
)

func ExampleOf() {
	s := source.Of("a", "b", "c")
	for s.Valid() {
		fmt.Println(s.Current())
		s.Advance()
	}
	// Output:
	// a
	// b
	// c
}

func ExampleGenerate() {
	n := 0
	naturals := source.Generate(func() (int, bool) {
		n++
		return n, true
	})
	for i := 0; i < 4; i++ {
		fmt.Print(naturals.Current(), " ")
		naturals.Advance()
	}
	fmt.Println()
	// Output: 1 2 3 4
}

func ExampleRange() {
	r := source.Range(0, 10, 3)
	fmt.Println(r.DeclaredSize())
	for r.Valid() {
		fmt.Print(r.Current(), " ")
		r.Advance()
	}
	fmt.Println()
	// Output:
	// 4
	// 0 3 6 9
}
