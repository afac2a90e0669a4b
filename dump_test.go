package descry_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/katalvlaran/descry"
	"github.com/katalvlaran/descry/descriptor"
	"github.com/katalvlaran/descry/store"
	"github.com/katalvlaran/descry/view"
)

// Golden strings reproduce emicklei/dot output byte-for-byte, including
// the tab it emits on the otherwise-blank separator lines.
const digraph = "digraph  {\n" +
	"\t\n" +
	"\tn1[label=\"0\"];\n" +
	"\tn2[label=\"1\"];\n" +
	"\tn3[label=\"2\"];\n" +
	"\tn1->n2;\n" +
	"\tn1->n3;\n" +
	"\tn2->n3;\n" +
	"\t\n" +
	"}\n"

func TestDump_AdjacencyList(t *testing.T) {
	t.Parallel()

	vertices := store.Slice[string]{"a", "b", "c"}
	rows := []store.Targets[int]{
		{1, 2}, // from 0
		{2},    // from 1
		{},     // from 2
	}

	got := descry.Dump(view.Vertices(vertices),
		func(v descriptor.Vertex[int, store.Index]) (view.EdgeView[store.Index, int, store.Index], store.EdgeStore[store.Index, int]) {
			row := rows[v.VertexID()]

			return view.Edges(row, v), row
		})

	if diff := deep.Equal(got, digraph); diff != nil {
		t.Error(diff)
	}
}

func TestDump_DanglingTargetGetsNode(t *testing.T) {
	t.Parallel()

	vertices := store.Slice[string]{"only"}
	row := store.Targets[int]{5} // target never listed as a vertex

	got := descry.Dump(view.Vertices(vertices),
		func(v descriptor.Vertex[int, store.Index]) (view.EdgeView[store.Index, int, store.Index], store.EdgeStore[store.Index, int]) {
			return view.Edges(row, v), row
		})

	want := "digraph  {\n" +
		"\t\n" +
		"\tn1[label=\"0\"];\n" +
		"\tn2[label=\"5\"];\n" +
		"\tn1->n2;\n" +
		"\t\n" +
		"}\n"
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}
