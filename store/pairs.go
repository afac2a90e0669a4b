package store

import (
	"cmp"
	"sort"
)

// Entry is one key-value element of key-addressed storage. Key carries
// the identity, Value the payload.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs is a key-sorted, slice-backed associative container: the
// simplest key-addressed backend. Positions are opaque PairPos cursors;
// Pairs deliberately exposes no O(1) Len, matching its classification.
//
// Pairs exists so descriptors and views can be exercised against a
// key-addressed backend without a tree; TreeMap is the heavier sibling.
type Pairs[K cmp.Ordered, V any] struct {
	entries []Entry[K, V]
}

// NewPairs builds a Pairs container from the given entries, sorted by
// key. Duplicate keys are caller error; the container keeps whichever
// duplicate sorts later.
// Complexity: O(n log n)
func NewPairs[K cmp.Ordered, V any](entries ...Entry[K, V]) *Pairs[K, V] {
	sorted := make([]Entry[K, V], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	return &Pairs[K, V]{entries: sorted}
}

// PairPos is an opaque cursor into a Pairs container. It is a pure
// comparable value: two cursors are equal iff they address the same
// position of the same container.
type PairPos[K cmp.Ordered, V any] struct {
	owner *Pairs[K, V]
	off   int
}

// Next returns the cursor one position forward. Advancing past the end
// is caller error, as with any position.
// Complexity: O(1)
func (p PairPos[K, V]) Next() PairPos[K, V] { return PairPos[K, V]{owner: p.owner, off: p.off + 1} }

// Key returns the key under the cursor. Must not be called on the end
// cursor.
// Complexity: O(1)
func (p PairPos[K, V]) Key() K { return p.owner.entries[p.off].Key }

// Begin returns the cursor at the smallest key, or the end cursor when
// the container is empty.
func (ps *Pairs[K, V]) Begin() PairPos[K, V] { return PairPos[K, V]{owner: ps, off: 0} }

// End returns the past-the-end cursor.
func (ps *Pairs[K, V]) End() PairPos[K, V] { return PairPos[K, V]{owner: ps, off: len(ps.entries)} }

// At returns the full key-value entry under p. Panics on an end or
// foreign cursor.
// Complexity: O(1)
func (ps *Pairs[K, V]) At(p PairPos[K, V]) Entry[K, V] { return ps.entries[p.off] }

// InnerAt returns the payload under p with the key stripped.
// Complexity: O(1)
func (ps *Pairs[K, V]) InnerAt(p PairPos[K, V]) V { return ps.entries[p.off].Value }

// KeyAt returns the vertex identity of the element at p: its key.
func (ps *Pairs[K, V]) KeyAt(p PairPos[K, V]) K { return ps.entries[p.off].Key }

// TargetAt resolves the edge target identity stored at p. For a
// key-addressed edge row the key is the target.
func (ps *Pairs[K, V]) TargetAt(p PairPos[K, V]) K { return ps.entries[p.off].Key }

// Find returns the cursor at key k, or (end cursor, false) when k is
// absent.
// Complexity: O(log n)
func (ps *Pairs[K, V]) Find(k K) (PairPos[K, V], bool) {
	i := sort.Search(len(ps.entries), func(i int) bool { return ps.entries[i].Key >= k })
	if i == len(ps.entries) || ps.entries[i].Key != k {
		return ps.End(), false
	}

	return PairPos[K, V]{owner: ps, off: i}, true
}
