package store

// Edge payload shape adapters. The shape of an edge payload - where the
// target vertex identity lives inside it - is bound at compile time by
// picking one of these types; TargetAt never inspects the payload at
// runtime.

// Targets adapts a slice of bare vertex identities as edge storage: the
// scalar shape, where the stored value IS the target. It is also the
// fallback shape for payloads with no pair or tuple structure, since a
// payload treated whole as the target is exactly a scalar.
type Targets[ID comparable] []ID

// At returns the payload at p. Panics if p is out of range.
func (t Targets[ID]) At(p Index) ID { return t[p] }

// TargetAt resolves the target identity at p: the payload itself.
// Complexity: O(1)
func (t Targets[ID]) TargetAt(p Index) ID { return t[p] }

// Begin returns the first position of the row.
func (t Targets[ID]) Begin() Index { return 0 }

// End returns the past-the-end position of the row.
func (t Targets[ID]) End() Index { return Index(len(t)) }

// Len reports the edge count.
func (t Targets[ID]) Len() int { return len(t) }

// Entries adapts a slice of key-value entries as edge storage: the pair
// shape, where the first component is the target and the second carries
// edge data (weight, label, ...).
type Entries[K comparable, V any] []Entry[K, V]

// At returns the full entry at p. Panics if p is out of range.
func (e Entries[K, V]) At(p Index) Entry[K, V] { return e[p] }

// TargetAt resolves the target identity at p: the entry key.
// Complexity: O(1)
func (e Entries[K, V]) TargetAt(p Index) K { return e[p].Key }

// Begin returns the first position of the row.
func (e Entries[K, V]) Begin() Index { return 0 }

// End returns the past-the-end position of the row.
func (e Entries[K, V]) End() Index { return Index(len(e)) }

// Len reports the edge count.
func (e Entries[K, V]) Len() int { return len(e) }

// Triple is a three-component edge payload. First is the target vertex
// identity; Second and Third carry arbitrary edge data.
type Triple[A comparable, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Triples adapts a slice of Triple payloads as edge storage: the tuple
// shape, where component 0 is the target.
type Triples[A comparable, B, C any] []Triple[A, B, C]

// At returns the full payload at p. Panics if p is out of range.
func (t Triples[A, B, C]) At(p Index) Triple[A, B, C] { return t[p] }

// TargetAt resolves the target identity at p: the first component.
// Complexity: O(1)
func (t Triples[A, B, C]) TargetAt(p Index) A { return t[p].First }

// Begin returns the first position of the row.
func (t Triples[A, B, C]) Begin() Index { return 0 }

// End returns the past-the-end position of the row.
func (t Triples[A, B, C]) End() Index { return Index(len(t)) }

// Len reports the edge count.
func (t Triples[A, B, C]) Len() int { return len(t) }
