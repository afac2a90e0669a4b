package descriptor

import (
	"cmp"

	"github.com/katalvlaran/descry/store"
)

// Vertex is a handle identifying one vertex. Its only state is a storage
// position: an offset for index-addressed backends, an opaque cursor for
// key-addressed ones. Vertex is a pure value - copy it, compare it with
// ==, use it as a map key. It never owns or references the container.
type Vertex[ID comparable, P store.Keyed[P, ID]] struct {
	pos P
}

// NewVertex wraps a raw storage position in a descriptor. Total: any
// position value of the selected kind is accepted, including the end
// position (useful as a sentinel, not dereferenceable).
//
// ID is usually not inferable from the position alone, so call sites
// name it: NewVertex[string](cursor). VertexIn infers everything from a
// container witness instead.
func NewVertex[ID comparable, P store.Keyed[P, ID]](pos P) Vertex[ID, P] {
	return Vertex[ID, P]{pos: pos}
}

// AtIndex builds an index-addressed vertex descriptor. Shorthand for
// NewVertex over store.Index.
func AtIndex(i int) Vertex[int, store.Index] {
	return Vertex[int, store.Index]{pos: store.Index(i)}
}

// VertexIn wraps a raw position of s in a descriptor. The container is a
// type witness only - nothing is read from it - letting both type
// arguments flow from the call site.
func VertexIn[ID comparable, P store.Keyed[P, ID]](_ store.VertexStore[P, ID], pos P) Vertex[ID, P] {
	return Vertex[ID, P]{pos: pos}
}

// Value returns the raw storage position.
// Complexity: O(1)
func (v Vertex[ID, P]) Value() P { return v.pos }

// VertexID returns the identity of the vertex: the offset itself for
// index-addressed storage, the key under the cursor for key-addressed
// storage. Must not be called on an end-of-range descriptor.
// Complexity: O(1)
func (v Vertex[ID, P]) VertexID() ID { return v.pos.Key() }

// Next returns the descriptor for the next storage position. The
// container is not consulted; advancing past the end is caller error,
// matching the discipline of the underlying position type.
// Complexity: O(1) for offsets, O(log n) for tree cursors.
func (v Vertex[ID, P]) Next() Vertex[ID, P] { return Vertex[ID, P]{pos: v.pos.Next()} }

// Underlying returns the full element stored at v's position: the slot
// value for index-addressed storage, the key-value entry for
// key-addressed storage. The container is supplied by the caller at
// access time and must be the one v was built over, still alive and
// structurally unmodified.
func Underlying[T any, ID comparable, P store.Keyed[P, ID]](v Vertex[ID, P], s store.Reader[P, T]) T {
	return s.At(v.pos)
}

// Inner returns the element payload at v's position with its identity
// stripped: the whole element for index-addressed storage (there is no
// key to strip), the value component for key-addressed storage.
func Inner[V any, ID comparable, P store.Keyed[P, ID]](v Vertex[ID, P], s store.InnerReader[P, V]) V {
	return s.InnerAt(v.pos)
}

// Compare orders two index-addressed vertex descriptors by offset.
// Ordering is defined only where positions themselves are ordered;
// cursor descriptors expose equality only.
func Compare(a, b Vertex[int, store.Index]) int {
	return cmp.Compare(a.pos, b.pos)
}
