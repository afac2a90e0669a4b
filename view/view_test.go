package view_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/descry/descriptor"
	"github.com/katalvlaran/descry/store"
	"github.com/katalvlaran/descry/view"
)

func collectIDs[ID comparable, P store.Keyed[P, ID]](v view.VertexView[ID, P]) []ID {
	var ids []ID
	for d := range v.All() {
		ids = append(ids, d.VertexID())
	}

	return ids
}

// ------------------------------------------------------------------------
// 1. Completeness & restartability over both storage kinds.
// ------------------------------------------------------------------------

func TestVertexView_CompletenessAndRestart_Indexed(t *testing.T) {
	s := store.Slice[string]{"a", "b", "c"}
	v := view.Vertices(s)

	first := collectIDs(v)
	second := collectIDs(v) // fresh walk from begin
	require.Equal(t, []int{0, 1, 2}, first)
	require.Equal(t, first, second, "a second independent walk must repeat the sequence")
}

func TestVertexView_CompletenessAndRestart_Positional(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	for _, k := range []int{300, 100, 200} {
		m.Set(k, "v")
	}
	v := view.Vertices(m)

	first := collectIDs(v)
	require.Equal(t, []int{100, 200, 300}, first, "descriptors arrive in storage (key) order")
	require.Equal(t, first, collectIDs(v))
}

func TestVertexView_PairsBackend(t *testing.T) {
	ps := store.NewPairs(
		store.Entry[string, int]{Key: "b", Value: 2},
		store.Entry[string, int]{Key: "a", Value: 1},
	)
	require.Equal(t, []string{"a", "b"}, collectIDs(view.Vertices(ps)))
}

// ------------------------------------------------------------------------
// 2. Explicit ranges, emptiness, O(1) length.
// ------------------------------------------------------------------------

func TestVertexView_ExplicitRange(t *testing.T) {
	v := view.Range[int](store.Index(2), store.Index(5))
	require.Equal(t, []int{2, 3, 4}, collectIDs(v))
	require.Equal(t, 3, view.Len(v))
}

func TestVertexView_EmptyRange(t *testing.T) {
	v := view.Range[int](store.Index(3), store.Index(3))
	require.True(t, v.Empty())
	require.Equal(t, v.End(), v.Begin())
	require.Nil(t, collectIDs(v))
	require.Zero(t, view.Len(v))
}

func TestVertexView_BeginEndDescriptors(t *testing.T) {
	s := store.Slice[int]{10, 20}
	v := view.Vertices(s)
	require.Equal(t, descriptor.AtIndex(0), v.Begin())
	require.Equal(t, descriptor.AtIndex(2), v.End())
}

func TestVertexView_EarlyBreakThenRestart(t *testing.T) {
	v := view.Vertices(store.Slice[int]{1, 2, 3, 4})

	var got []int
	for d := range v.All() {
		if d.VertexID() == 1 {
			break
		}
		got = append(got, d.VertexID())
	}
	require.Equal(t, []int{0}, got)
	require.Equal(t, []int{0, 1, 2, 3}, collectIDs(v), "break must not poison later walks")
}

// ------------------------------------------------------------------------
// 3. Views are freely copyable; concurrent reads share nothing mutable.
// ------------------------------------------------------------------------

func TestVertexView_ConcurrentWalks(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	for k := 0; k < 64; k++ {
		m.Set(k, "v")
	}
	v := view.Vertices(m)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := collectIDs(v)
			if len(ids) != 64 {
				t.Errorf("expected 64 descriptors, got %d", len(ids))
			}
		}()
	}
	wg.Wait()
}
