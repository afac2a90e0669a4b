package store

import (
	"cmp"

	"github.com/google/btree"
)

// defaultTreeDegree is the B-tree branching factor used when the caller
// does not override it via WithDegree.
const defaultTreeDegree = 16

// TreeOption configures a TreeMap before creation.
type TreeOption func(*treeConfig)

type treeConfig struct {
	degree int
}

// WithDegree sets the B-tree branching factor. Values below 2 are
// ignored and the default is kept.
func WithDegree(degree int) TreeOption {
	return func(c *treeConfig) {
		if degree >= 2 {
			c.degree = degree
		}
	}
}

// TreeMap is an ordered key-addressed container backed by a B-tree
// (github.com/google/btree). Positions are opaque TreePos cursors whose
// movement is an O(log n) successor walk; like every key-addressed
// adapter it exposes no O(1) Len.
//
// TreeMap owns its tree, but descriptors built over it follow the usual
// rule: they hold only a cursor and are re-paired with the TreeMap at
// access time. Deleting or inserting keys invalidates cursors at or
// around the touched key, per the usual ordered-container contract.
type TreeMap[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[Entry[K, V]]
}

// NewTreeMap creates an empty TreeMap.
// Complexity: O(1)
func NewTreeMap[K cmp.Ordered, V any](opts ...TreeOption) *TreeMap[K, V] {
	cfg := treeConfig{degree: defaultTreeDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	less := func(a, b Entry[K, V]) bool { return a.Key < b.Key }

	return &TreeMap[K, V]{tree: btree.NewG(cfg.degree, less)}
}

// Set inserts or replaces the entry for key k.
// Complexity: O(log n)
func (m *TreeMap[K, V]) Set(k K, v V) {
	m.tree.ReplaceOrInsert(Entry[K, V]{Key: k, Value: v})
}

// Get returns the payload stored under k and whether k is present.
// Complexity: O(log n)
func (m *TreeMap[K, V]) Get(k K) (V, bool) {
	e, ok := m.tree.Get(Entry[K, V]{Key: k})

	return e.Value, ok
}

// Delete removes the entry for k, reporting whether it was present.
// Cursors addressing k become invalid.
// Complexity: O(log n)
func (m *TreeMap[K, V]) Delete(k K) bool {
	_, ok := m.tree.Delete(Entry[K, V]{Key: k})

	return ok
}

// TreePos is an opaque cursor into a TreeMap. It is a comparable value:
// two cursors are equal iff they address the same key of the same map
// (or are both the end cursor of the same map).
type TreePos[K cmp.Ordered, V any] struct {
	owner *TreeMap[K, V]
	key   K
	end   bool
}

// Next returns the cursor at the successor key. Advancing the end cursor
// is caller error and yields the end cursor again.
// Complexity: O(log n)
func (p TreePos[K, V]) Next() TreePos[K, V] {
	if p.end {
		return p
	}
	var succ K
	found := false
	p.owner.tree.AscendGreaterOrEqual(Entry[K, V]{Key: p.key}, func(e Entry[K, V]) bool {
		if e.Key == p.key {
			return true // skip the key under the cursor
		}
		succ, found = e.Key, true

		return false
	})
	if !found {
		return TreePos[K, V]{owner: p.owner, end: true}
	}

	return TreePos[K, V]{owner: p.owner, key: succ}
}

// Key returns the key under the cursor. Must not be called on the end
// cursor.
func (p TreePos[K, V]) Key() K { return p.key }

// Begin returns the cursor at the smallest key, or the end cursor when
// the map is empty.
// Complexity: O(log n)
func (m *TreeMap[K, V]) Begin() TreePos[K, V] {
	min, ok := m.tree.Min()
	if !ok {
		return m.End()
	}

	return TreePos[K, V]{owner: m, key: min.Key}
}

// End returns the past-the-end cursor.
func (m *TreeMap[K, V]) End() TreePos[K, V] { return TreePos[K, V]{owner: m, end: true} }

// Find returns the cursor at key k, or (end cursor, false) when k is
// absent.
// Complexity: O(log n)
func (m *TreeMap[K, V]) Find(k K) (TreePos[K, V], bool) {
	if _, ok := m.tree.Get(Entry[K, V]{Key: k}); !ok {
		return m.End(), false
	}

	return TreePos[K, V]{owner: m, key: k}, true
}

// At returns the full key-value entry under p. Panics on an end or
// foreign cursor, or when the addressed key has been deleted.
// Complexity: O(log n)
func (m *TreeMap[K, V]) At(p TreePos[K, V]) Entry[K, V] {
	if p.end {
		panic("store: dereference of invalid tree position")
	}
	e, ok := m.tree.Get(Entry[K, V]{Key: p.key})
	if !ok {
		panic("store: dereference of invalid tree position")
	}

	return e
}

// InnerAt returns the payload under p with the key stripped.
// Complexity: O(log n)
func (m *TreeMap[K, V]) InnerAt(p TreePos[K, V]) V { return m.At(p).Value }

// KeyAt returns the vertex identity of the element at p: its key.
func (m *TreeMap[K, V]) KeyAt(p TreePos[K, V]) K { return m.At(p).Key }

// TargetAt resolves the edge target identity stored at p. For a
// key-addressed edge row the key is the target.
func (m *TreeMap[K, V]) TargetAt(p TreePos[K, V]) K { return m.At(p).Key }
