package descry

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/descry/descriptor"
	"github.com/katalvlaran/descry/store"
	"github.com/katalvlaran/descry/view"
)

// Dump renders a descriptor graph in Graphviz DOT notation.
//
// vertices supplies the vertex population; adjacency maps each vertex
// descriptor to the edge view of its outgoing edges together with the
// container those edges resolve against - a per-vertex row for
// adjacency-list storage, or the same global store with sub-range views
// for flat edge storage. Vertices are emitted in view order, so output
// over deterministic containers is deterministic. A target that never
// appeared in the vertex view still gets a node, so dangling edges
// render rather than vanish.
//
// Complexity: O(V + E) view steps plus the DOT encoding itself.
func Dump[ID comparable, P store.Keyed[P, ID], EP store.Position[EP]](
	vertices view.VertexView[ID, P],
	adjacency func(descriptor.Vertex[ID, P]) (view.EdgeView[EP, ID, P], store.EdgeStore[EP, ID]),
) string {
	g := dot.NewGraph(dot.Directed)

	// First pass: one DOT node per vertex, keyed by identity.
	nodes := make(map[ID]dot.Node)
	for v := range vertices.All() {
		id := v.VertexID()
		nodes[id] = g.Node(fmt.Sprint(id))
	}

	// Second pass: edges, resolving targets through each row's container.
	for v := range vertices.All() {
		from := nodes[v.VertexID()]
		row, resolver := adjacency(v)
		for e := range row.All() {
			target := descriptor.Target(e, resolver)
			to, ok := nodes[target]
			if !ok {
				to = g.Node(fmt.Sprint(target))
				nodes[target] = to
			}
			g.Edge(from, to)
		}
	}

	return g.String()
}
