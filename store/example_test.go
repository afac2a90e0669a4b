package store_test

import (
	"fmt"

	"github.com/katalvlaran/descry/store"
)

// Walking a key-addressed container with cursors: the loop never sees
// the B-tree, only opaque positions.
func ExampleTreeMap() {
	m := store.NewTreeMap[string, int]()
	m.Set("kyiv", 3)
	m.Set("lviv", 2)
	m.Set("odesa", 1)

	for p := m.Begin(); p != m.End(); p = p.Next() {
		fmt.Println(p.Key(), m.InnerAt(p))
	}
	// Output:
	// kyiv 3
	// lviv 2
	// odesa 1
}

// Index-addressed storage uses plain offsets; the offset is the identity.
func ExampleSlice() {
	s := store.Slice[string]{"alpha", "beta"}
	for p := s.Begin(); p != s.End(); p = p.Next() {
		fmt.Println(s.KeyAt(p), s.At(p))
	}
	// Output:
	// 0 alpha
	// 1 beta
}
