package descriptor

import (
	"github.com/katalvlaran/descry/store"
)

// Edge is a handle identifying one edge: a position in edge storage plus
// the descriptor of the edge's source vertex. The source is fixed at
// construction and carried unchanged through Next, so advancing an Edge
// walks the remaining edges of the same source. Edge is a pure value,
// comparable and usable as a map key; equality is structural over both
// the position and the source.
type Edge[EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]] struct {
	pos EP
	src Vertex[ID, VP]
}

// NewEdge wraps a raw edge-storage position and a source vertex in a
// descriptor. Total, no failure mode.
func NewEdge[EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]](pos EP, src Vertex[ID, VP]) Edge[EP, ID, VP] {
	return Edge[EP, ID, VP]{pos: pos, src: src}
}

// Value returns the raw edge-storage position.
// Complexity: O(1)
func (e Edge[EP, ID, VP]) Value() EP { return e.pos }

// Source returns the fixed source vertex descriptor.
// Complexity: O(1)
func (e Edge[EP, ID, VP]) Source() Vertex[ID, VP] { return e.src }

// Next returns the descriptor for the next edge of the same source: the
// storage position advances, the source is carried unchanged.
// Complexity: O(1) for offsets, O(log n) for tree cursors.
func (e Edge[EP, ID, VP]) Next() Edge[EP, ID, VP] {
	return Edge[EP, ID, VP]{pos: e.pos.Next(), src: e.src}
}

// Target resolves the identity of the edge's other endpoint from the
// payload stored at e's position. The payload shape - scalar, pair,
// tuple or key-addressed row - was bound when the edge container adapter
// was chosen, so no inspection happens here. The container must be the
// one e was built over.
func Target[TID comparable, EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]](e Edge[EP, ID, VP], s store.EdgeStore[EP, TID]) TID {
	return s.TargetAt(e.pos)
}
