package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/descry/store"
)

func TestTreeMap_SetGetDelete(t *testing.T) {
	m := store.NewTreeMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10) // replace

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestTreeMap_CursorWalkIsKeyOrdered(t *testing.T) {
	m := store.NewTreeMap[int, string](store.WithDegree(4))
	for _, k := range []int{30, 10, 20, 40} {
		m.Set(k, "v")
	}

	var keys []int
	for p := m.Begin(); p != m.End(); p = p.Next() {
		keys = append(keys, p.Key())
	}
	require.Equal(t, []int{10, 20, 30, 40}, keys)
}

func TestTreeMap_FindAndAccess(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	m.Set(100, "A")
	m.Set(200, "B")

	pos, ok := m.Find(200)
	require.True(t, ok)
	require.Equal(t, store.Entry[int, string]{Key: 200, Value: "B"}, m.At(pos))
	require.Equal(t, "B", m.InnerAt(pos))
	require.Equal(t, 200, m.KeyAt(pos))
	require.Equal(t, 200, m.TargetAt(pos))

	missing, ok := m.Find(999)
	require.False(t, ok)
	require.Equal(t, m.End(), missing)
}

func TestTreeMap_EmptyBeginEqualsEnd(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	require.Equal(t, m.End(), m.Begin())
}

func TestTreeMap_AtPanicsOnEndCursor(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	m.Set(1, "x")
	require.Panics(t, func() { m.At(m.End()) })

	// The sentinel must panic even when the zero-value key is a real
	// entry; the end check precedes any tree lookup.
	m.Set(0, "zero")
	require.Panics(t, func() { m.At(m.End()) })
	require.Panics(t, func() { m.InnerAt(m.End()) })
}

func TestTreeMap_NextSkipsDeletedKeys(t *testing.T) {
	m := store.NewTreeMap[int, string]()
	m.Set(1, "a")
	m.Set(2, "b")
	m.Set(3, "c")

	p := m.Begin()
	m.Delete(2)
	// The cursor at 1 survives; its successor is now 3.
	require.Equal(t, 1, p.Key())
	require.Equal(t, 3, p.Next().Key())
}
