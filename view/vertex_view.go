package view

import (
	"iter"

	"github.com/katalvlaran/descry/descriptor"
	"github.com/katalvlaran/descry/store"
)

// VertexView is a lazy, restartable, forward-only sequence of vertex
// descriptors over the half-open position range [begin, end). It owns no
// container and stores no descriptors; each one is synthesized at yield
// time from the current position.
type VertexView[ID comparable, P store.Keyed[P, ID]] struct {
	begin, end P
}

// Range builds a view over an explicit position range. No validation is
// performed; an inverted range is caller error. ID is usually not
// inferable from bare positions, so call sites name it:
// Range[int](store.Index(0), store.Index(4)).
// Complexity: O(1)
func Range[ID comparable, P store.Keyed[P, ID]](begin, end P) VertexView[ID, P] {
	return VertexView[ID, P]{begin: begin, end: end}
}

// Vertices builds a view covering a whole container. The adapter's
// capability set selects the representation: index-addressed containers
// yield offset positions [0, Len), key-addressed ones yield their cursor
// range. Callers never branch on the kind.
// Complexity: O(1)
func Vertices[ID comparable, P store.Keyed[P, ID]](s store.VertexStore[P, ID]) VertexView[ID, P] {
	return VertexView[ID, P]{begin: s.Begin(), end: s.End()}
}

// All returns the descriptor sequence. Each range over it restarts from
// begin; the loop state is exactly the current position.
func (v VertexView[ID, P]) All() iter.Seq[descriptor.Vertex[ID, P]] {
	return func(yield func(descriptor.Vertex[ID, P]) bool) {
		for p := v.begin; p != v.end; p = p.Next() {
			if !yield(descriptor.NewVertex[ID](p)) {
				return
			}
		}
	}
}

// Begin returns the descriptor at the view's first position. On an empty
// view this equals End() and must not be dereferenced.
func (v VertexView[ID, P]) Begin() descriptor.Vertex[ID, P] { return descriptor.NewVertex[ID](v.begin) }

// End returns the descriptor at the view's past-the-end position. It is
// a sentinel: comparable, never dereferenceable.
func (v VertexView[ID, P]) End() descriptor.Vertex[ID, P] { return descriptor.NewVertex[ID](v.end) }

// Empty reports whether the view yields nothing.
// Complexity: O(1)
func (v VertexView[ID, P]) Empty() bool { return v.begin == v.end }

// Len reports the number of positions in an index-addressed view.
// Key-addressed views do not offer a length: counting them costs a walk,
// and this package refuses to disguise that as O(1).
// Complexity: O(1)
func Len(v VertexView[int, store.Index]) int { return int(v.end - v.begin) }
