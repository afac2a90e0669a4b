package store

// Index is the position type for index-addressed storage: a plain offset
// into a container with O(1) random access. The offset doubles as the
// vertex identity, so Index satisfies Keyed[Index, int].
type Index int

// Next returns the position immediately after i.
// Complexity: O(1)
func (i Index) Next() Index { return i + 1 }

// Key returns the vertex identity carried by the position. For
// index-addressed storage the offset itself is the identity.
// Complexity: O(1)
func (i Index) Key() int { return int(i) }

// Position constrains a storage position: a comparable value that can
// advance one step forward. This is the minimum capability required of
// edge storage; both offsets and cursors satisfy it.
//
// Advancing past the end of the underlying range is caller error, the
// same as advancing a slice index past len: nothing here checks it.
type Position[P any] interface {
	comparable
	Next() P
}

// Keyed constrains a position that can surface the identity of the
// element it addresses without consulting the container: Index returns
// its own offset, cursors return the key under the cursor. Vertex
// storage must provide Keyed positions; a backend whose positions
// satisfy neither Position nor Keyed is rejected at compile time.
//
// Key must not be called on an end-of-range position.
type Keyed[P any, ID comparable] interface {
	Position[P]
	Key() ID
}
