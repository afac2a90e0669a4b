package view

import (
	"iter"

	"github.com/katalvlaran/descry/descriptor"
	"github.com/katalvlaran/descry/store"
)

// EdgeView is a lazy, restartable, forward-only sequence of edge
// descriptors over the half-open edge-storage range [begin, end), all
// sharing one fixed source vertex. Like VertexView it owns no container.
type EdgeView[EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]] struct {
	begin, end EP
	src        descriptor.Vertex[ID, VP]
}

// EdgeRange builds a view over an explicit sub-range of global edge
// storage, attributed to src. No validation is performed; an inverted
// range is caller error.
// Complexity: O(1)
func EdgeRange[EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]](begin, end EP, src descriptor.Vertex[ID, VP]) EdgeView[EP, ID, VP] {
	return EdgeView[EP, ID, VP]{begin: begin, end: end, src: src}
}

// Edges builds a view covering a whole per-vertex edge container (an
// adjacency row) attributed to src. The adapter picks the
// representation; callers never branch on the storage kind.
// Complexity: O(1)
func Edges[EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]](row store.Ranger[EP], src descriptor.Vertex[ID, VP]) EdgeView[EP, ID, VP] {
	return EdgeView[EP, ID, VP]{begin: row.Begin(), end: row.End(), src: src}
}

// All returns the descriptor sequence. Every yielded edge carries the
// view's source unchanged; termination compares positions only. Each
// range over it restarts from begin.
func (v EdgeView[EP, ID, VP]) All() iter.Seq[descriptor.Edge[EP, ID, VP]] {
	return func(yield func(descriptor.Edge[EP, ID, VP]) bool) {
		for p := v.begin; p != v.end; p = p.Next() {
			if !yield(descriptor.NewEdge(p, v.src)) {
				return
			}
		}
	}
}

// Source returns the fixed source vertex shared by every yielded edge.
func (v EdgeView[EP, ID, VP]) Source() descriptor.Vertex[ID, VP] { return v.src }

// Begin returns the descriptor at the view's first position. On an empty
// view this equals End() and must not be dereferenced.
func (v EdgeView[EP, ID, VP]) Begin() descriptor.Edge[EP, ID, VP] {
	return descriptor.NewEdge(v.begin, v.src)
}

// End returns the sentinel descriptor at the past-the-end position.
func (v EdgeView[EP, ID, VP]) End() descriptor.Edge[EP, ID, VP] {
	return descriptor.NewEdge(v.end, v.src)
}

// Empty reports whether the view yields nothing.
// Complexity: O(1)
func (v EdgeView[EP, ID, VP]) Empty() bool { return v.begin == v.end }

// EdgeLen reports the number of edges in an index-addressed view.
// Offered only there, for the same reason as Len.
// Complexity: O(1)
func EdgeLen[ID comparable, VP store.Keyed[VP, ID]](v EdgeView[store.Index, ID, VP]) int {
	return int(v.end - v.begin)
}
